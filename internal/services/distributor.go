package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	interf "github.com/glkeru/loyalty/rewards/internal/interfaces"
	model "github.com/glkeru/loyalty/rewards/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Адрес кошелька VeChain/EVM: 0x + 40 hex
func ValidAddress(address string) bool {
	return addressPattern.MatchString(address)
}

// Начисление токенов на счет наград
type Distributor struct {
	logger *zap.Logger
	ledger interf.RewardLedger
	cache  interf.CacheStorage
}

func NewDistributor(logger *zap.Logger, ledger interf.RewardLedger, cache interf.CacheStorage) *Distributor {
	return &Distributor{logger, ledger, cache}
}

func (d *Distributor) Distribute(ctx context.Context, req model.DistributionRequest) error {
	if !ValidAddress(req.UserAddress) {
		return fmt.Errorf("%w: %q", model.ErrInvalidAddress, req.UserAddress)
	}
	if !(req.Amount > 0) {
		return fmt.Errorf("%w: %v", model.ErrInvalidAmount, req.Amount)
	}
	if req.TransactionID == uuid.Nil {
		return fmt.Errorf("Invalid distribution: transactionId field is required")
	}

	// повторное начисление по той же транзакции ledger игнорирует
	err := d.ledger.Credit(ctx, req.UserAddress, req.Amount, req.TransactionID)
	if err != nil {
		return err
	}
	distributedTotal.Add(req.Amount)

	if d.cache != nil {
		err = d.cache.InvalidateBalance(ctx, req.UserAddress)
		if err != nil {
			d.logger.Error(err.Error())
		}
	}
	return nil
}

// Обработка сообщения из очереди, transactionId возвращается для подтверждения
func (d *Distributor) HandleMessage(ctx context.Context, body []byte) (transactionId uuid.UUID, err error) {
	req := model.DistributionRequest{}
	err = json.Unmarshal(body, &req)
	if err != nil {
		return uuid.Nil, err
	}
	return req.TransactionID, d.Distribute(ctx, req)
}

// Баланс: кэш, затем база
func (d *Distributor) Balance(ctx context.Context, user string) (points float64, err error) {
	if d.cache != nil {
		points, err = d.cache.GetBalance(ctx, user)
		if err == nil {
			return points, nil
		}
	}
	points, err = d.ledger.GetBalance(ctx, user)
	if errors.Is(err, model.ErrNotFound) {
		// счета еще нет - наград не было
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if d.cache != nil {
		_ = d.cache.SetBalance(ctx, user, points)
	}
	return points, nil
}

func (d *Distributor) History(ctx context.Context, user string) ([]model.LedgerEntry, error) {
	entries, err := d.ledger.GetEntries(ctx, user)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	return entries, err
}
