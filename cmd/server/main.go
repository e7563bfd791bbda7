package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"zodis/internal/config"
	"zodis/internal/database"
	"zodis/internal/handlers"
	"zodis/internal/repository"
	"zodis/internal/security"
	"zodis/internal/service"
	"zodis/internal/words"
)

func main() {
	cfg := config.Load()

	if cfg.IsProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Str("type", cfg.DatabaseType).Msg("database connection established")

	if err := db.RunMigrations(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Repositories
	gameRepo := repository.NewGameRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	userRepo := repository.NewUserRepository(db)
	wordRepo := repository.NewWordRepository(db)

	// Seed the dictionary on first run; the word repository is the word
	// source for new games
	if err := wordRepo.Seed(words.Dictionary()); err != nil {
		log.Warn().Err(err).Msg("failed to seed dictionary")
	}

	// Services
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize email service")
	}
	tokenManager := security.NewTokenManager(cfg.JWTSecret, cfg.TokenDuration)
	statsService := service.NewStatsService(statsRepo)
	gameService := service.NewGameService(gameRepo, wordRepo, statsService, cfg.WordLength)
	authService := service.NewAuthService(userRepo, tokenManager, emailService)

	router := &handlers.Router{
		Games:      gameService,
		Stats:      statsService,
		Auth:       authService,
		Production: cfg.IsProduction(),
	}

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      router.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
