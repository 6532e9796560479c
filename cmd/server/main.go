package main // Entry point package

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/iliyamo/event-booking/internal/config"
	"github.com/iliyamo/event-booking/internal/database"
	"github.com/iliyamo/event-booking/internal/handler"
	"github.com/iliyamo/event-booking/internal/middleware"
	"github.com/iliyamo/event-booking/internal/queue"
	"github.com/iliyamo/event-booking/internal/repository"
	"github.com/iliyamo/event-booking/internal/router"
	"github.com/iliyamo/event-booking/internal/session"
	"github.com/iliyamo/event-booking/web"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zlog.Logger = logger

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = database.EnsureSchema(ctx, db)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("ensure schema")
	}

	// Redis backs sessions and rate limiting; without it the app still
	// serves with in-memory sessions and no limiter.
	rdb := config.NewRedisClient()
	var sessions session.Store
	if rdb != nil {
		sessions = session.NewRedisStore(rdb, cfg.SessionTTL())
	} else {
		logger.Warn().Msg("redis unavailable; using in-memory sessions, rate limiting disabled")
		sessions = session.NewMemoryStore(cfg.SessionTTL())
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	users := repository.NewUserRepo(db)
	events := repository.NewEventRepo(db)
	requests := repository.NewRequestRepo(db)

	// Background consumer writing created requests to logs/requests.log.
	go func() {
		if err := queue.StartRequestConsumer(); err != nil {
			logger.Error().Err(err).Msg("request consumer stopped")
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Renderer = web.MustRenderer()
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.LoadSession(sessions, users))

	auth := handler.NewAuthHandler(cfg, users, sessions)
	catalog := &handler.CatalogHandler{Events: events, Sessions: sessions}
	quote := &handler.QuoteHandler{
		Events:    events,
		Requests:  requests,
		Sessions:  sessions,
		Publisher: queue.NewAMQPPublisher(),
	}
	reqs := &handler.RequestHandler{Requests: requests, Sessions: sessions}

	router.RegisterRoutes(e, auth, catalog, quote, reqs, sessions, limiter)

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")

	if err := e.Start(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
