package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/isdelr/auctions-be/internal/api"
	"github.com/isdelr/auctions-be/internal/auth"
	"github.com/isdelr/auctions-be/internal/config"
	"github.com/isdelr/auctions-be/internal/database"
	"github.com/isdelr/auctions-be/internal/jobs"
	"github.com/isdelr/auctions-be/internal/logger"
	"github.com/isdelr/auctions-be/internal/messaging"
	"github.com/isdelr/auctions-be/internal/services"
	"github.com/isdelr/auctions-be/internal/websocket"
	"github.com/rs/zerolog/log"
)

const tokenTTL = 24 * time.Hour

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.LogLevel)

	ctx := context.Background()

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Token revocation: Redis when configured, process memory otherwise
	var revoker auth.TokenRevoker = auth.NewMemoryRevoker()
	if cfg.RedisAddr != "" {
		rdb, err := auth.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		revoker = auth.NewRedisRevoker(rdb)
	}

	secret := cfg.JWTSecret
	if secret == "" {
		if cfg.IsProduction() {
			log.Fatal().Msg("JWT_SECRET must be set in production")
		}
		secret = randomSecret()
		log.Warn().Msg("JWT_SECRET not set; using a random secret, tokens will not survive a restart")
	}
	tokens, err := auth.NewTokenManager(secret, tokenTTL, revoker)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize token manager")
	}

	// Event publishing to the broker is optional
	var publisher services.EventPublisher
	if cfg.AMQPURL != "" {
		p, err := messaging.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to message broker")
		}
		defer p.Close()
		publisher = p
	}

	// Set up WebSocket Hub
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services
	eventService := services.NewEventService(db, publisher)
	svc := api.Services{
		Listings:  services.NewListingService(db, eventService, hub),
		Bids:      services.NewBidService(db, eventService, hub),
		Comments:  services.NewCommentService(db, eventService),
		Watchlist: services.NewWatchlistService(db),
		Users:     services.NewUserService(db, eventService),
		Events:    eventService,
	}

	// Set up and run the background scheduler
	scheduler, err := jobs.NewScheduler(eventService, cfg.EventPruneSchedule, time.Duration(cfg.EventRetentionDays)*24*time.Hour)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize scheduler")
	}
	scheduler.Start()

	// Set up router
	router := api.NewRouter(hub, tokens, svc, api.Options{
		AllowedOrigins: cfg.CORSOrigins,
		SecureCookies:  cfg.IsProduction(),
	})

	// Set up server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	hub.Stop()

	log.Info().Msg("Server exiting")
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal().Err(err).Msg("Failed to generate JWT secret")
	}
	return hex.EncodeToString(b)
}
