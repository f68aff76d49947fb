// Job - проверка новых транзакций
// Опрос Kafka -> проверка товара -> статус verified/rejected -> запрос на начисление
package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	db "github.com/glkeru/loyalty/rewards/internal/db"
	catalog "github.com/glkeru/loyalty/rewards/internal/external/catalog"
	kafka "github.com/glkeru/loyalty/rewards/internal/external/kafka"
	rabbit "github.com/glkeru/loyalty/rewards/internal/external/rabbitmq"
	interf "github.com/glkeru/loyalty/rewards/internal/interfaces"
	model "github.com/glkeru/loyalty/rewards/internal/models"
	services "github.com/glkeru/loyalty/rewards/internal/services"
	tracing "github.com/glkeru/loyalty/rewards/observability/otel"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// tracing
	shutdownTracer, err := tracing.InitTracer(context.Background(), "rewards-verifier", logger)
	if err != nil {
		panic(err)
	}
	defer shutdownTracer()

	// kafka
	reader, err := kafka.GetNewReader("rewards_verifier")
	if err != nil {
		panic(err)
	}
	defer reader.CloseReader()

	// database
	dt, err := db.NewTransactionsDB()
	if err != nil {
		panic(err)
	}
	defer dt.Close(context.Background())

	// catalog
	var products interf.ProductCatalog
	cat, err := catalog.NewCatalogClient()
	if err != nil {
		logger.Warn(err.Error())
	} else {
		products = cat
	}

	// rabbitmq
	var publisher interf.RewardPublisher
	pub, err := rabbit.NewRabbitPublisher()
	if err != nil {
		logger.Error(err.Error())
	} else {
		defer pub.Close()
		publisher = pub
	}

	verifier := services.NewVerifier(dt, products, publisher, logger)

	// health
	grpcPort := os.Getenv("REWARDS_VERIFIER_GRPC_PORT")
	if grpcPort == "" {
		grpcPort = "50051"
	}
	lis, err := net.Listen("tcp", ":"+grpcPort)
	if err != nil {
		panic(err)
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	go func() {
		err := grpcServer.Serve(lis)
		if err != nil {
			logger.Error("grpc serve error", zap.Error(err))
		}
	}()
	defer grpcServer.GracefulStop()

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		<-interrupt
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		cancel()
	}()

	var semcount int
	semenv := os.Getenv("REWARDS_VERIFY_COUNT")
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

	wg := &sync.WaitGroup{}
	semaphore := make(chan struct{}, semcount)

	for ctx.Err() == nil {
		tx, err := reader.GetNewMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			logger.Error(err.Error())
			continue
		}

		semaphore <- struct{}{}
		wg.Add(1)
		go func(tx model.Transaction) {
			defer wg.Done()
			defer func() { <-semaphore }()
			result, err := verifier.VerifyRecorded(ctx, tx)
			if err != nil {
				verifier.Log("Transaction verification failed", tx.ID, err)
				return
			}
			logger.Info("Transaction verified",
				zap.String("transaction", tx.ID.String()),
				zap.String("status", string(result.Status)),
			)
		}(tx)
	}
	wg.Wait()
}
