package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"texportal_backend/internal/audit"
	"texportal_backend/internal/auth"
	"texportal_backend/internal/contact"
	"texportal_backend/internal/content"
	"texportal_backend/internal/directory"
	"texportal_backend/internal/directory/repository"
	"texportal_backend/internal/events"
	apphttp "texportal_backend/internal/http"
	"texportal_backend/internal/http/router"
	"texportal_backend/internal/navigation"
	"texportal_backend/internal/reminders"
	"texportal_backend/internal/search"
	"texportal_backend/internal/search/scope"
	sessionmodule "texportal_backend/internal/session"
	sessionstore "texportal_backend/internal/session/store"
	"texportal_backend/internal/voice"
	"texportal_backend/platform/config"
	"texportal_backend/platform/logger"
	"texportal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	store, err := repository.NewSeeded()
	if err != nil {
		log.Error("failed to load seed dataset", "error", err)
		panic("failed to load seed dataset: " + err.Error())
	}
	log.Info("directory loaded",
		"leads", len(store.Leads()),
		"quotes", len(store.Quotes()),
		"customers", len(store.Customers()),
	)

	rdb, err := sessionstore.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		panic("failed to connect to redis: " + err.Error())
	}
	defer rdb.Close()

	eventBus := events.NewInMemoryBus(log)
	audit.New(log).RegisterHandlers(eventBus)
	val := validator.New()

	sessions := sessionstore.New(rdb, cfg)

	dispatcher := navigation.NewDispatcher(sessions, eventBus, log)
	dispatcher.RegisterAll(navigation.NewSessionHandlers(sessions))

	scopes := scope.NewResolver(scope.Mode(cfg.GetScopeMode()))

	followUps, closeFollowUps := initFollowUpScheduler(cfg, log)
	if closeFollowUps != nil {
		defer closeFollowUps()
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	authModule, err := auth.NewModule(rdb, cfg, log, val)
	if err != nil {
		log.Error("failed to initialize auth module", "error", err)
		panic("failed to initialize auth module: " + err.Error())
	}

	directoryModule := directory.NewModule(store, eventBus, val, cfg)
	searchModule := search.NewModule(store, scopes, dispatcher, eventBus, log, val)
	voiceModule := voice.NewModule(store, searchModule.Service(), dispatcher, eventBus, log, val)
	sessionModule := sessionmodule.NewModule(sessions)
	contentModule := content.NewModule(cfg, log)
	contactModule := contact.NewModule(cfg, eventBus, log, val)
	remindersModule := reminders.NewModule(followUps, store, eventBus, log, val)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			authModule,
			directoryModule,
			searchModule,
			voiceModule,
			sessionModule,
			contentModule,
			contactModule,
			remindersModule,
		},
	}

	engine := router.New(app)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initFollowUpScheduler(cfg config.SchedulerConfig, log *logger.Logger) (reminders.FollowUpScheduler, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; follow-up reminders disabled")
		return nil, nil
	}

	client, err := reminders.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize reminder client", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}
