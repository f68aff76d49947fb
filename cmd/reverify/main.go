// Job - повторная проверка зависших транзакций
// Непроверенные транзакции старше REWARDS_REVERIFY_AFTER отправляются в kafka или проверяются на месте
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	db "github.com/glkeru/loyalty/rewards/internal/db"
	catalog "github.com/glkeru/loyalty/rewards/internal/external/catalog"
	kafka "github.com/glkeru/loyalty/rewards/internal/external/kafka"
	rabbit "github.com/glkeru/loyalty/rewards/internal/external/rabbitmq"
	interf "github.com/glkeru/loyalty/rewards/internal/interfaces"
	services "github.com/glkeru/loyalty/rewards/internal/services"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	after := 10 * time.Minute
	if env := os.Getenv("REWARDS_REVERIFY_AFTER"); env != "" {
		after, err = time.ParseDuration(env)
		if err != nil {
			panic(err)
		}
	}

	// database
	dt, err := db.NewTransactionsDB()
	if err != nil {
		panic(err)
	}
	defer dt.Close(context.Background())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// через kafka проверяет verifier
	if os.Getenv("KAFKA_URL") != "" {
		kd, err := kafka.NewKafkaDispatcher()
		if err != nil {
			panic(err)
		}
		defer kd.Close()

		serv := services.NewRewardsService(logger, dt, nil, kd, nil)
		count, err := serv.ReverifyPending(ctx, after)
		if err != nil {
			logger.Error("reverify error", zap.Error(err))
		}
		logger.Info("reverify dispatched", zap.Int("count", count))
		return
	}

	// проверка на месте
	var products interf.ProductCatalog
	cat, err := catalog.NewCatalogClient()
	if err != nil {
		logger.Warn(err.Error())
	} else {
		products = cat
	}
	var publisher interf.RewardPublisher
	pub, err := rabbit.NewRabbitPublisher()
	if err != nil {
		logger.Error(err.Error())
	} else {
		defer pub.Close()
		publisher = pub
	}

	var workers int
	semenv := os.Getenv("REWARDS_VERIFY_COUNT")
	if semenv == "" {
		workers = 5
	} else {
		workers, err = strconv.Atoi(semenv)
		if err != nil {
			workers = 5
		}
	}

	verifier := services.NewVerifier(dt, products, publisher, logger)
	count, err := verifier.VerifyPending(ctx, time.Now().UTC().Add(-after), workers)
	if err != nil {
		logger.Error("reverify error", zap.Error(err))
	}
	logger.Info("reverify processed", zap.Int("count", count))
}
