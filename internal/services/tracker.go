package rewards

import (
	"context"
	"time"

	interf "github.com/glkeru/loyalty/rewards/internal/interfaces"
)

// Дневная сумма наград по истории транзакций, если нет кэша.
// Резерв не хранится: награда попадает в сохраненную транзакцию,
// поэтому вызовы одного пользователя сериализует RewardsService.
type StoreDailyTracker struct {
	db interf.TransactionStorage
}

func NewStoreDailyTracker(db interf.TransactionStorage) *StoreDailyTracker {
	return &StoreDailyTracker{db}
}

func (s *StoreDailyTracker) Accumulated(ctx context.Context, user string, day time.Time) (float64, error) {
	txs, err := s.db.ListByUser(ctx, user)
	if err != nil {
		return 0, err
	}
	start := DayStart(day)
	end := start.Add(24 * time.Hour)
	var total float64
	for _, tx := range txs {
		created := tx.CreatedAt.UTC()
		if !created.Before(start) && created.Before(end) {
			total += tx.RewardAmount
		}
	}
	return total, nil
}

func (s *StoreDailyTracker) Reserve(ctx context.Context, user string, day time.Time, grant func(accumulated float64) float64) (float64, error) {
	accumulated, err := s.Accumulated(ctx, user, day)
	if err != nil {
		return 0, err
	}
	return grant(accumulated), nil
}

func (s *StoreDailyTracker) Release(ctx context.Context, user string, day time.Time, amount float64) error {
	return nil
}

// Начало суток по UTC
func DayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
