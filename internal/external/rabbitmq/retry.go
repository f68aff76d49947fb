package rewards

import (
	"context"
	"time"
)

const (
	retryBaseDelay = 500 * time.Millisecond
	retryMaxDelay  = 30 * time.Second
)

// Пауза перед возвратом сообщения в очередь после attempt неудач подряд
func RetryDelay(attempt int) time.Duration {
	if attempt < 1 {
		return 0
	}
	delay := retryBaseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= retryMaxDelay {
			return retryMaxDelay
		}
	}
	return delay
}

// Ожидание перед повтором, false если контекст отменен
func WaitRetry(ctx context.Context, attempt int) bool {
	delay := RetryDelay(attempt)
	if delay == 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
