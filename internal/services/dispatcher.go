package rewards

import (
	"context"
	"sync"
	"time"

	model "github.com/glkeru/loyalty/rewards/internal/models"
	"go.uber.org/zap"
)

// Проверка в отдельной горутине внутри процесса, результат только логируется
type AsyncDispatcher struct {
	verifier *Verifier
	logger   *zap.Logger
	delay    time.Duration
	wg       sync.WaitGroup
}

func NewAsyncDispatcher(verifier *Verifier, logger *zap.Logger, delay time.Duration) *AsyncDispatcher {
	return &AsyncDispatcher{verifier: verifier, logger: logger, delay: delay}
}

func (d *AsyncDispatcher) Dispatch(ctx context.Context, tx model.Transaction) error {
	// запрос покупки завершится раньше проверки
	vctx := context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if d.delay > 0 {
			time.Sleep(d.delay)
		}
		result, err := d.verifier.Verify(vctx, tx)
		if err != nil {
			d.verifier.Log("Transaction verification failed", tx.ID, err)
			return
		}
		d.logger.Info("Transaction verified",
			zap.String("transaction", tx.ID.String()),
			zap.String("status", string(result.Status)),
			zap.Int("score", result.SustainabilityScore),
		)
	}()
	return nil
}

// Ожидание запущенных проверок (shutdown, тесты)
func (d *AsyncDispatcher) Wait() {
	d.wg.Wait()
}
