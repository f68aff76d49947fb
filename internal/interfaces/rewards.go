package rewards

import (
	"context"
	"time"

	model "github.com/glkeru/loyalty/rewards/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=./../services/mock_rewards_test.go -package=rewards . TransactionStorage,ProductCatalog,DailyTracker,RewardLedger,CacheStorage,VerificationDispatcher,RewardPublisher,BalanceProvider
//go:generate mockgen -destination=./../api/mock_rewards_test.go -package=rewards . TransactionStorage,ProductCatalog,DailyTracker,RewardLedger,CacheStorage,VerificationDispatcher,RewardPublisher,BalanceProvider

type TransactionStorage interface {
	Insert(ctx context.Context, tx model.Transaction) (model.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (model.Transaction, error)
	UpdateVerification(ctx context.Context, id uuid.UUID, status model.VerificationStatus) error
	ListByUser(ctx context.Context, user string) ([]model.Transaction, error)
	ListUnverified(ctx context.Context, before time.Time) ([]model.Transaction, error)
}

// Проверка наличия товара на площадке
type ProductCatalog interface {
	Exists(ctx context.Context, productId string) (bool, error)
}

// Дневной лимит наград пользователя.
// Reserve атомарно читает сумму за день, вызывает grant и добавляет его результат.
// Release возвращает резерв, если покупка не сохранилась.
type DailyTracker interface {
	Reserve(ctx context.Context, user string, day time.Time, grant func(accumulated float64) float64) (float64, error)
	Release(ctx context.Context, user string, day time.Time, amount float64) error
}

type RewardLedger interface {
	Credit(ctx context.Context, user string, amount float64, transactionId uuid.UUID) error
	GetBalance(ctx context.Context, user string) (float64, error)
	GetEntries(ctx context.Context, user string) ([]model.LedgerEntry, error)
}

type CacheStorage interface {
	GetBalance(ctx context.Context, user string) (points float64, err error)
	SetBalance(ctx context.Context, user string, points float64) (err error)
	InvalidateBalance(ctx context.Context, user string) error
}

// Запуск проверки транзакции без ожидания результата
type VerificationDispatcher interface {
	Dispatch(ctx context.Context, tx model.Transaction) error
}

// Отправка запроса на начисление токенов
type RewardPublisher interface {
	PublishDistribution(ctx context.Context, req model.DistributionRequest) error
}

// Баланс наград пользователя
type BalanceProvider interface {
	Balance(ctx context.Context, user string) (float64, error)
}
