package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bookhaven/loan-service/loan/config"
	"github.com/bookhaven/loan-service/loan/internal/handler"
	"github.com/bookhaven/loan-service/loan/internal/repository"
	"github.com/bookhaven/loan-service/loan/internal/server"
	"github.com/bookhaven/loan-service/loan/internal/service"
	"github.com/bookhaven/loan-service/loan/migrations"
	"github.com/bookhaven/loan-service/pkg/kafka"
	"github.com/bookhaven/loan-service/pkg/logger"
	"github.com/bookhaven/loan-service/pkg/metrics"
	"github.com/bookhaven/loan-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "loan")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	publisher := kafka.NewPublisher(producer)
	notifier := service.NewNotifier(publisher, log)

	svc := service.NewService(repo, notifier, metrics.NewLoanMetrics("loan"), log)

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.WaitlistConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	go kafka.Consume(consumer, handler.NewConsumer(svc.ReleaseWaitlist, log), kafka.ReplenishedTopic)

	h := handler.New(svc, metrics.NewServerMetrics("loan"), log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err = consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err = publisher.Close(); err != nil {
		log.Error("publisher.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
