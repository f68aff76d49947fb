// HTTP API: покупки, история, профиль, проверка транзакций
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/glkeru/loyalty/rewards/internal/api"
	db "github.com/glkeru/loyalty/rewards/internal/db"
	catalog "github.com/glkeru/loyalty/rewards/internal/external/catalog"
	kafka "github.com/glkeru/loyalty/rewards/internal/external/kafka"
	rabbit "github.com/glkeru/loyalty/rewards/internal/external/rabbitmq"
	interf "github.com/glkeru/loyalty/rewards/internal/interfaces"
	services "github.com/glkeru/loyalty/rewards/internal/services"
	tracing "github.com/glkeru/loyalty/rewards/observability/otel"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
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
	port := os.Getenv("REWARDS_PORT")
	if port == "" {
		panic("env REWARDS_PORT is not set")
	}

	// tracing
	shutdownTracer, err := tracing.InitTracer(context.Background(), "rewards", logger)
	if err != nil {
		panic(err)
	}
	defer shutdownTracer()

	// database
	dt, err := db.NewTransactionsDB()
	if err != nil {
		panic(err)
	}
	defer dt.Close(context.Background())
	var storage interf.TransactionStorage = dt

	// cache: дневные суммы и балансы, без redis - по истории транзакций
	var daily interf.DailyTracker = services.NewStoreDailyTracker(storage)
	var cache interf.CacheStorage
	redis, err := db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
	} else {
		defer redis.Close()
		daily = redis
		cache = redis
	}

	// ledger для баланса в профиле
	var balances interf.BalanceProvider
	ledger, err := db.NewLedgerDB(logger)
	if err != nil {
		logger.Error(err.Error())
	} else {
		defer ledger.Close()
		balances = services.NewDistributor(logger, ledger, cache)
	}

	// catalog
	var products interf.ProductCatalog
	cat, err := catalog.NewCatalogClient()
	if err != nil {
		logger.Warn(err.Error())
	} else {
		products = cat
	}

	// начисление токенов после проверки
	var publisher interf.RewardPublisher
	pub, err := rabbit.NewRabbitPublisher()
	if err != nil {
		logger.Error(err.Error())
	} else {
		defer pub.Close()
		publisher = pub
	}
	verifier := services.NewVerifier(storage, products, publisher, logger)

	// проверка: через kafka, если настроена, иначе в процессе
	var dispatcher interf.VerificationDispatcher
	var async *services.AsyncDispatcher
	if os.Getenv("KAFKA_URL") != "" {
		kd, err := kafka.NewKafkaDispatcher()
		if err != nil {
			panic(err)
		}
		defer kd.Close()
		dispatcher = kd
	} else {
		async = services.NewAsyncDispatcher(verifier, logger, 0)
		dispatcher = async
	}

	serv := services.NewRewardsService(logger, storage, daily, dispatcher, balances)

	// api handlers
	r := api.NewHandler(serv, verifier, logger)
	srv := &http.Server{
		Handler:      otelhttp.NewHandler(r, "rewards"),
		Addr:         ":" + port,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen error", zap.Error(err))
		}
	}()
	logger.Info("rewards server started", zap.String("port", port))

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	if async != nil {
		async.Wait()
	}
}
