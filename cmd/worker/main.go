package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtroode/backend-template/internal/config"
	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/queue"
	"github.com/dtroode/backend-template/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	if cfg.Redis.Addr == "" {
		logger.Fatal("REDIS_ADDR is required to run the worker")
	}
	client, err := queue.NewClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to redis", "error", err)
	}
	defer client.Close()

	broker := queue.NewBroker(client, cfg.Worker.Queue, cfg.Worker.ResultTTL)

	// Tasks left in the processing list by a crashed worker go back first.
	recovered, err := broker.RecoverProcessing(ctx)
	if err != nil {
		logger.Fatal("failed to recover unfinished tasks", "error", err)
	}
	if recovered > 0 {
		logger.Info("requeued unfinished tasks", "count", recovered)
	}

	w := worker.New(broker, broker, worker.NewDefaultRegistry(), worker.Options{
		Concurrency:  cfg.Worker.Concurrency,
		TimeLimit:    cfg.Worker.TaskTimeLimit,
		TrackStarted: cfg.Worker.TrackStarted,
	}, logger)

	if err := w.Run(ctx); err != nil {
		logger.Error("worker stopped with error", "error", err)
	}
	logger.Info("shutdown complete")
}
