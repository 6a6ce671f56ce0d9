package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/config"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/handler"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/repository"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/scheduler"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/server"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/service"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/storage"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/migrations"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/pkg/kafka"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/pkg/logger"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/pkg/postgres"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "rental")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	store, err := storage.NewDiskStorage(cfg.Storage.Dir)
	if err != nil {
		log.Fatal("storage init", zap.Error(err))
	}
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	svc := service.NewService(repo, producer, store, cfg, log)
	if err := svc.Auth.EnsureAdmin(context.Background()); err != nil {
		log.Fatal("ensure admin", zap.Error(err))
	}

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	go kafka.Consume(consumer, handler.NewConsumer(svc.Stats.Apply, log), kafka.BookingEventsTopic)

	sched, err := scheduler.New(repo, log)
	if err != nil {
		log.Fatal("scheduler", zap.Error(err))
	}
	sched.Start()

	h := handler.New(svc.Auth, svc.Vehicle, svc.Customer, svc.Booking, svc.Stats, log)
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
	sched.Stop()
	if err := consumer.Close(); err != nil {
		log.Error("consumer close", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
