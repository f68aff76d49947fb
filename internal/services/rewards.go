package rewards

import (
	"context"
	"fmt"
	"time"

	interf "github.com/glkeru/loyalty/rewards/internal/interfaces"
	model "github.com/glkeru/loyalty/rewards/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultPlatform = "ebay"

type RewardsService struct {
	logger     *zap.Logger
	db         interf.TransactionStorage
	daily      interf.DailyTracker
	dispatcher interf.VerificationDispatcher
	balances   interf.BalanceProvider
	platform   string
	nowFunc    func() time.Time
	users      *keyedMutex
}

// daily, dispatcher и balances необязательны
func NewRewardsService(logger *zap.Logger, db interf.TransactionStorage, daily interf.DailyTracker, dispatcher interf.VerificationDispatcher, balances interf.BalanceProvider) *RewardsService {
	return &RewardsService{
		logger:     logger,
		db:         db,
		daily:      daily,
		dispatcher: dispatcher,
		balances:   balances,
		platform:   DefaultPlatform,
		nowFunc:    time.Now,
		users:      newKeyedMutex(),
	}
}

func (s *RewardsService) Log(msg string, service string, err error) {
	s.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

// Покупка: адрес кошелька и хэш транзакции непрозрачны, проверяется только наличие
type PurchaseRequest struct {
	UserAddress    string        `json:"userAddress" validate:"required"`
	TxHash         string        `json:"txHash" validate:"required"`
	PurchaseAmount float64       `json:"purchaseAmount" validate:"gt=0"`
	Product        model.Product `json:"product"`
}

// Запись покупки с расчетом награды и запуском проверки
func (s *RewardsService) RecordPurchase(ctx context.Context, req PurchaseRequest) (model.Transaction, error) {
	if req.UserAddress == "" {
		return model.Transaction{}, fmt.Errorf("Invalid purchase: userAddress field is required")
	}
	if req.TxHash == "" {
		return model.Transaction{}, fmt.Errorf("Invalid purchase: txHash field is required")
	}

	stored, err := s.record(ctx, req)
	if err != nil {
		return model.Transaction{}, err
	}

	// проверка без ожидания
	if s.dispatcher != nil {
		err = s.dispatcher.Dispatch(ctx, stored)
		if err != nil {
			s.Log("Dispatch verification", "RecordPurchase", err)
		}
	}
	return stored, nil
}

// Расчет и сохранение покупки под блокировкой пользователя:
// покупки одного пользователя не делят один и тот же остаток дневного лимита
func (s *RewardsService) record(ctx context.Context, req PurchaseRequest) (model.Transaction, error) {
	unlock := s.users.Lock(req.UserAddress)
	defer unlock()

	now := s.nowFunc().UTC()

	// уровень по истории покупок
	history, err := s.db.ListByUser(ctx, req.UserAddress)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("user history: %w", err)
	}

	score := SustainabilityScore(req.Product)
	params := model.RewardParameters{
		PurchaseAmount:      req.PurchaseAmount,
		SustainabilityScore: float64(score),
		UserLevel:           DeriveLevel(history),
	}
	var reward float64
	if s.daily != nil {
		reward, err = s.daily.Reserve(ctx, req.UserAddress, now, func(accumulated float64) float64 {
			p := params
			p.DailyRewardsAccumulated = accumulated
			return CalculateReward(p)
		})
		if err != nil {
			return model.Transaction{}, fmt.Errorf("daily rewards: %w", err)
		}
	} else {
		reward = CalculateReward(params)
	}
	rewardAmount.Observe(reward)

	tx := model.Transaction{
		ID:                  uuid.New(),
		UserAddress:         req.UserAddress,
		ProductID:           req.Product.ID,
		ProductDetails:      req.Product,
		PurchaseAmount:      req.PurchaseAmount,
		RewardAmount:        reward,
		TxHash:              req.TxHash,
		Platform:            s.platform,
		Status:              model.TxCompleted,
		VerificationStatus:  model.Unverified,
		SustainabilityScore: score,
		CreatedAt:           now,
	}
	stored, err := s.db.Insert(ctx, tx)
	if err != nil {
		if s.daily != nil && reward > 0 {
			rerr := s.daily.Release(ctx, req.UserAddress, now, reward)
			if rerr != nil {
				s.Log("Release daily rewards", "RecordPurchase", rerr)
			}
		}
		return model.Transaction{}, fmt.Errorf("Failed to record transaction: %w", err)
	}
	return stored, nil
}

// История покупок, новые первыми
func (s *RewardsService) UserTransactions(ctx context.Context, user string) ([]model.Transaction, error) {
	return s.db.ListByUser(ctx, user)
}

func (s *RewardsService) VerificationStatus(ctx context.Context, id uuid.UUID) (model.VerificationStatus, error) {
	tx, err := s.db.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return tx.VerificationStatus, nil
}

// Повторная отправка на проверку транзакций, созданных раньше olderThan назад
func (s *RewardsService) ReverifyPending(ctx context.Context, olderThan time.Duration) (dispatched int, err error) {
	if s.dispatcher == nil {
		return 0, fmt.Errorf("verification dispatcher is not set")
	}
	txs, err := s.db.ListUnverified(ctx, s.nowFunc().UTC().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	for _, tx := range txs {
		if ctx.Err() != nil {
			return dispatched, ctx.Err()
		}
		err = s.dispatcher.Dispatch(ctx, tx)
		if err != nil {
			s.Log("Dispatch verification", "ReverifyPending", err)
			continue
		}
		dispatched++
	}
	return dispatched, nil
}

// Профиль: история и баланс запрашиваются параллельно
func (s *RewardsService) Profile(ctx context.Context, user string) (model.Profile, error) {
	var txs []model.Transaction
	var balance float64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.db.ListByUser(gctx, user)
		return err
	})
	if s.balances != nil {
		g.Go(func() error {
			var err error
			balance, err = s.balances.Balance(gctx, user)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return model.Profile{}, err
	}

	var verified int
	for _, tx := range txs {
		if tx.VerificationStatus == model.Verified {
			verified++
		}
	}
	return model.Profile{
		UserAddress:    user,
		Level:          DeriveLevel(txs),
		AverageScore:   AverageScore(txs),
		Transactions:   txs,
		Balance:        balance,
		Impact:         CalculateImpact(verified),
		CategoryImpact: CalculateCategoryImpact(txs),
	}, nil
}
