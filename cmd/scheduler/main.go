package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"texportal_backend/internal/audit"
	"texportal_backend/internal/directory/repository"
	"texportal_backend/internal/events"
	"texportal_backend/internal/reminders"
	"texportal_backend/platform/config"
	"texportal_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting reminder worker", "env", cfg.Env, "queue", cfg.ReminderQueue)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repository.NewSeeded()
	if err != nil {
		log.Error("failed to load seed dataset", "error", err)
		panic("failed to load seed dataset: " + err.Error())
	}

	eventBus := events.NewInMemoryBus(log)
	audit.New(log).RegisterHandlers(eventBus)

	worker, err := reminders.NewWorker(cfg, store, eventBus, log)
	if err != nil {
		log.Error("failed to initialize reminder worker", "error", err)
		panic("failed to initialize reminder worker: " + err.Error())
	}

	queue, err := reminders.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize reminder client", "error", err)
		panic("failed to initialize reminder client: " + err.Error())
	}
	defer queue.Close()

	sweep := reminders.NewOverdueSweep(queue, log, cfg.GetOverdueSweepInterval())
	go sweep.Run(ctx)

	worker.Run(ctx)
	log.Info("reminder worker stopped")
}
