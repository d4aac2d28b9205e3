package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transportner/extraction"
	"transportner/gazetteer"
	"transportner/internal/api/handlers/extract"
	"transportner/internal/api/routes"
	"transportner/internal/config"
	"transportner/internal/logging"
	"transportner/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logger := logging.Setup(cfg.LogLevel, os.Stdout)

	var extra []gazetteer.Entry
	if cfg.GazetteerPath != "" {
		extra, err = gazetteer.LoadFile(cfg.GazetteerPath)
		if err != nil {
			log.Fatalf("Ошибка загрузки словаря сущностей: %v", err)
		}
		logger.Info("Gazetteer loaded", "path", cfg.GazetteerPath, "entries", len(extra))
	}

	extractor, err := extraction.New(extraction.Options{
		MaxItems:             cfg.MaxItems,
		MaxTextLength:        cfg.MaxTextLength,
		Workers:              cfg.Workers,
		PreferHighConfidence: cfg.PreferHighConfidence,
	}, extra...)
	if err != nil {
		log.Fatalf("Ошибка создания экстрактора: %v", err)
	}

	// nil-интерфейс, если хранилище не настроено
	var st extract.Store
	if cfg.DatabasePath != "" {
		db, err := store.NewMentionsDBWithConfig(cfg.DatabasePath, store.DBConfig{
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		})
		if err != nil {
			log.Fatalf("Ошибка открытия базы данных: %v", err)
		}
		defer db.Close()
		st = db
		logger.Info("Mentions database opened", "path", cfg.DatabasePath)
	}

	handler := extract.NewHandler(extractor, st, extract.Config{
		MaxBatchSize:   cfg.MaxBatchSize,
		RequestTimeout: cfg.RequestTimeout,
	})
	router := routes.NewRouter(routes.RouterConfig{
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Logger:         logger,
	}, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
	}

	startErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "port", cfg.Port, "ontology_kinds", len(extractor.OntologyStats()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			startErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-startErr:
		logger.Error("Server failed", "error", err.Error())
		os.Exit(1)
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err.Error())
		return
	}
	slog.Info("Server stopped")
}
