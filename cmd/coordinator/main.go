package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kidfun/internal/adapters/httpapi"
	"kidfun/internal/application"
	"kidfun/internal/config"
	"kidfun/internal/infrastructure/database"
	"kidfun/internal/infrastructure/database/sqlc_generated"
	"kidfun/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	ctx := context.Background()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Migration error: %v", err)
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database initialization error: %v", err)
	}
	defer pool.Close()

	q := sqlc_generated.New(pool)
	threadRepo := database.NewThreadRepository(q)
	participantRepo := database.NewParticipantRepository(q)
	proposalRepo := database.NewProposalRepository(q)
	eventRepo := database.NewThreadEventRepository(q)
	profileRepo := database.NewProfileRepository(q)
	txManager := database.NewTxManager(pool, q)

	hub := httpapi.NewHub()
	service := application.NewCoordinationService(
		threadRepo,
		participantRepo,
		proposalRepo,
		eventRepo,
		profileRepo,
		txManager,
		hub,
	)

	translator := i18n.NewTranslator(cfg.DefaultLocale)
	handler := httpapi.NewHandler(service, translator, profileRepo, hub)
	server := httpapi.NewServer(cfg.HTTPAddr, handler, pool, cfg.AllowedOrigins)

	go func() {
		log.Printf("✅ Coordinator listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("❌ Server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Shutdown error: %v", err)
	}
}
