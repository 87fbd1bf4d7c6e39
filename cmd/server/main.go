package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"aurapoll/config"
	_ "aurapoll/docs"
	"aurapoll/internal/adapters/auth"
	"aurapoll/internal/adapters/backdrop"
	"aurapoll/internal/adapters/email"
	delivery "aurapoll/internal/delivery/http"
	"aurapoll/internal/delivery/http/controllers"
	"aurapoll/internal/delivery/http/middleware"
	"aurapoll/internal/repository/postgres"
	"aurapoll/internal/services"
)

const serviceTimeout = 5 * time.Second

// @title           AuraPoll API
// @version         1.0
// @description     Availability polling and aggregation service for meeting scheduling.
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to postgres")

	// run migrations
	if migration, err := os.ReadFile("db/migrations/001_init.sql"); err != nil {
		logger.Warn("migration file not found, skipping", "error", err)
	} else if _, err := db.Exec(string(migration)); err != nil {
		logger.Warn("migration warning", "error", err)
	} else {
		logger.Info("migration applied")
	}

	eventRepo := postgres.NewEventRepository(db)
	slotRepo := postgres.NewTimeSlotRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)
	voteRepo := postgres.NewVoteRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	tokens := auth.NewJWTManager(cfg.ManageTokenSecret)
	backdrops := backdrop.NewSelector()

	eventService := services.NewEventService(
		eventRepo, slotRepo, participantRepo, voteRepo,
		emailService, backdrops, tokens,
		cfg.PollBaseURL, serviceTimeout,
	)
	voteService := services.NewVoteService(eventRepo, slotRepo, voteRepo, serviceTimeout)

	eventController := controllers.NewEventController(logger, eventService)
	voteController := controllers.NewVoteController(logger, voteService)
	backdropController := controllers.NewBackdropController(logger, backdrops)

	router := delivery.NewRouter(
		eventController,
		voteController,
		backdropController,
		middleware.RequireManageToken(tokens),
	)
	handler := middleware.Logging(logger, middleware.CORS(cfg.AllowedOrigins, router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
