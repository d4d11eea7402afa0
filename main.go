package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"riftwatch/internal/config"
	"riftwatch/internal/database"
	"riftwatch/internal/follow"
	server "riftwatch/internal/http"
	"riftwatch/internal/metrics"
	"riftwatch/internal/notifier/discord"
	"riftwatch/internal/pubsub"
	"riftwatch/internal/riot"
	"riftwatch/internal/watcher"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	store := follow.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	riotClient := riot.NewClient(cfg.Riot.APIKey)
	notifier, err := discord.NewNotifier(cfg.Discord.BotToken, metricsSvc)
	if err != nil {
		log.Fatalf("Failed to initialize Discord notifier: %s", err)
	}
	pubsubClient := pubsub.New(cfg.ProjectID)
	followSvc := follow.NewService(store, riotClient)
	w := watcher.New(store, riotClient, notifier, metricsSvc, pubsubClient, cfg.PollInterval)

	s := server.NewServer(
		store,
		followSvc,
		w,
		metricsSvc,
		metricsHandler,
		cfg,
		pubsubClient,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// The watcher runs for the lifetime of the process and stops with it.
	watcherCtx, watcherCancel := context.WithCancel(context.Background())
	defer watcherCancel()
	go w.Start(watcherCtx)

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		watcherCancel()

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
