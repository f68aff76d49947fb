package rewards

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	interf "github.com/glkeru/loyalty/rewards/internal/interfaces"
	model "github.com/glkeru/loyalty/rewards/internal/models"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Verifier struct {
	db        interf.TransactionStorage
	catalog   interf.ProductCatalog
	publisher interf.RewardPublisher
	logger    *zap.Logger
	tracer    trace.Tracer
}

// catalog и publisher могут быть nil: без каталога товар считается найденным,
// без publisher начисление не запускается
func NewVerifier(db interf.TransactionStorage, catalog interf.ProductCatalog, publisher interf.RewardPublisher, logger *zap.Logger) *Verifier {
	return &Verifier{
		db:        db,
		catalog:   catalog,
		publisher: publisher,
		logger:    logger,
		tracer:    otel.Tracer("rewards"),
	}
}

func (v *Verifier) Log(msg string, id uuid.UUID, err error) {
	v.logger.Error(msg,
		zap.String("service", "Verifier"),
		zap.String("transaction", id.String()),
		zap.Error(err),
	)
}

// Проверка транзакции по сохраненному снимку товара
func (v *Verifier) Verify(ctx context.Context, tx model.Transaction) (result model.Verification, err error) {
	ctx, span := v.tracer.Start(ctx, "Verify",
		trace.WithAttributes(attribute.String("transaction.id", tx.ID.String())))
	defer span.End()

	result = model.Verification{
		TransactionID:       tx.ID,
		Status:              tx.VerificationStatus,
		IsSecondHand:        IsSecondHand(tx.ProductDetails.Condition),
		SustainabilityScore: SustainabilityScore(tx.ProductDetails),
	}

	// повторная проверка не меняет статус
	if tx.VerificationStatus.Terminal() {
		result.Details = "already " + string(tx.VerificationStatus)
		return result, nil
	}

	exists := true
	if result.IsSecondHand && v.catalog != nil {
		exists, err = v.catalog.Exists(ctx, tx.ProductID)
		if err != nil {
			span.RecordError(err)
			verificationsTotal.WithLabelValues("error").Inc()
			return result, fmt.Errorf("product lookup %s: %w", tx.ProductID, err)
		}
	}

	status := model.Rejected
	switch {
	case !result.IsSecondHand:
		result.Details = "Product is new, not eligible for sustainability rewards"
	case !exists:
		result.Details = "Product not found"
	default:
		status = model.Verified
		result.Details = fmt.Sprintf("Verified second-hand %s in %s condition",
			tx.ProductDetails.Category, tx.ProductDetails.Condition)
	}

	err = v.db.UpdateVerification(ctx, tx.ID, status)
	if errors.Is(err, model.ErrAlreadyVerified) {
		// запись успели проверить раньше - возвращаем сохраненный статус
		stored, gerr := v.db.Get(ctx, tx.ID)
		if gerr != nil {
			return result, gerr
		}
		result.Status = stored.VerificationStatus
		result.Details = "already " + string(stored.VerificationStatus)
		return result, nil
	}
	if err != nil {
		span.RecordError(err)
		verificationsTotal.WithLabelValues("error").Inc()
		return result, fmt.Errorf("update verification %s: %w", tx.ID, err)
	}
	result.Status = status
	verificationsTotal.WithLabelValues(string(status)).Inc()
	span.SetAttributes(attribute.String("verification.status", string(status)))

	// начисление токенов, ошибка не отменяет проверку
	if status == model.Verified && v.publisher != nil && tx.RewardAmount > 0 {
		err := v.publisher.PublishDistribution(ctx, model.DistributionRequest{
			TransactionID: tx.ID,
			UserAddress:   tx.UserAddress,
			Amount:        tx.RewardAmount,
		})
		if err != nil {
			v.Log("Publish distribution", tx.ID, err)
		}
	}
	return result, nil
}

func (v *Verifier) VerifyByID(ctx context.Context, id uuid.UUID) (model.Verification, error) {
	tx, err := v.db.Get(ctx, id)
	if err != nil {
		return model.Verification{}, err
	}
	return v.Verify(ctx, tx)
}

// Проверка по сообщению о покупке из очереди.
// Решение принимается по сохраненной записи, из сообщения берется только ID.
func (v *Verifier) VerifyRecorded(ctx context.Context, msg model.Transaction) (model.Verification, error) {
	return v.VerifyByID(ctx, msg.ID)
}

// Повторная проверка зависших транзакций, созданных раньше before.
// Ошибки отдельных транзакций логируются, они останутся unverified до следующего запуска.
func (v *Verifier) VerifyPending(ctx context.Context, before time.Time, workers int) (processed int, err error) {
	txs, err := v.db.ListUnverified(ctx, before)
	if err != nil {
		return 0, err
	}
	if workers < 1 {
		workers = 1
	}

	var done int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, tx := range txs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return nil
			default:
				_, err := v.Verify(gctx, tx)
				if err != nil {
					v.Log("Verify pending", tx.ID, err)
					return nil
				}
				atomic.AddInt32(&done, 1)
				return nil
			}
		})
	}
	_ = g.Wait()
	return int(done), ctx.Err()
}
