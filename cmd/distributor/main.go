// Job - начисление токенов за проверенные покупки
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	db "github.com/glkeru/loyalty/rewards/internal/db"
	rabbit "github.com/glkeru/loyalty/rewards/internal/external/rabbitmq"
	interf "github.com/glkeru/loyalty/rewards/internal/interfaces"
	model "github.com/glkeru/loyalty/rewards/internal/models"
	services "github.com/glkeru/loyalty/rewards/internal/services"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// rabbitmq
	reader, err := rabbit.NewRabbitConsumer()
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer reader.Close()

	// database
	ledger, err := db.NewLedgerDB(logger)
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer ledger.Close()

	// cache
	var cache interf.CacheStorage
	redis, err := db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
	} else {
		defer redis.Close()
		cache = redis
	}

	// services
	serv := services.NewDistributor(logger, ledger, cache)

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var semcount int
	semenv := os.Getenv("REWARDS_DISTRIBUTE_COUNT")
	if semenv == "" {
		semcount = 5
	} else {
		semcount, err = strconv.Atoi(semenv)
		if err != nil {
			semcount = 5
		}
	}
	if semcount < 1 {
		semcount = 1
	}

	// os signals
	go func() {
		<-interrupt
		cancel()
	}()

	// workers
	wg := &sync.WaitGroup{}
	wg.Add(semcount)
	for i := 0; i < semcount; i++ {
		go worker(ctx, serv, wg, logger, reader)
	}
	wg.Wait()
}

// worker for rabbitmq messages
func worker(ctx context.Context, serv *services.Distributor, wg *sync.WaitGroup, logger *zap.Logger, reader *rabbit.RabbitConsumer) {
	defer wg.Done()
	// ошибки ledger подряд, сбрасывается после успешного начисления
	failures := 0
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-reader.Msg:
			if !ok {
				return
			}
			transactionId, err := serv.HandleMessage(ctx, msg.Body)
			if err != nil {
				logger.Error("Distribution failed",
					zap.String("transaction", transactionId.String()),
					zap.Error(err),
				)
				// невалидный запрос не повторяем
				invalid := transactionId == uuid.Nil ||
					errors.Is(err, model.ErrInvalidAddress) ||
					errors.Is(err, model.ErrInvalidAmount)
				if invalid {
					_ = msg.Nack(false, false)
					if transactionId != uuid.Nil {
						_ = reader.Processed(ctx, transactionId, false)
					}
					continue
				}
				// ошибку ledger повторяем с паузой
				failures++
				logger.Warn("Distribution retry",
					zap.String("transaction", transactionId.String()),
					zap.Int("attempt", failures),
					zap.Duration("delay", rabbit.RetryDelay(failures)),
				)
				resume := rabbit.WaitRetry(ctx, failures)
				_ = msg.Nack(false, true)
				if !resume {
					return
				}
				continue
			}
			failures = 0
			_ = msg.Ack(false)
			err = reader.Processed(ctx, transactionId, true)
			if err != nil {
				logger.Error(err.Error())
			}
		}
	}
}
