package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/techtool/opd-api/internal/catalog"
	"github.com/techtool/opd-api/internal/config"
	"github.com/techtool/opd-api/internal/followup"
	"github.com/techtool/opd-api/internal/handler"
	clinicHandler "github.com/techtool/opd-api/internal/handler/clinic"
	encounterHandler "github.com/techtool/opd-api/internal/handler/encounter"
	followupHandler "github.com/techtool/opd-api/internal/handler/followup"
	opdHandler "github.com/techtool/opd-api/internal/handler/opd"
	"github.com/techtool/opd-api/internal/llm"
	"github.com/techtool/opd-api/internal/middleware"
	"github.com/techtool/opd-api/internal/prompt"
	"github.com/techtool/opd-api/internal/repository"
	"github.com/techtool/opd-api/internal/repository/postgres"
	"github.com/techtool/opd-api/internal/router"
	followupService "github.com/techtool/opd-api/internal/service/followup"
	opdService "github.com/techtool/opd-api/internal/service/opd"
	"github.com/techtool/opd-api/pkg/logger"
	"github.com/techtool/opd-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	appLogger := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Pretty:     cfg.Log.Pretty,
	})
	log.Logger = appLogger.Zerolog()

	m := metrics.NewMetrics("opd_api")

	// Archive is optional: no database URL means summaries are not persisted.
	var encounterRepo repository.EncounterRepository
	var db *sqlx.DB
	if cfg.Database.URL != "" {
		db, err = postgres.NewDB(cfg.Database.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		if err := postgres.EnsureSchema(db); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure database schema")
		}
		encounterRepo = postgres.NewEncounterRepository(db)
	}

	cat := catalog.Default()
	if len(cfg.Clinics) > 0 {
		defaultKey := cfg.DefaultClinic
		if defaultKey == "" {
			defaultKey = catalog.DefaultClinicKey
		}
		cat, err = catalog.New(cfg.Clinics, defaultKey)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid clinic catalog in configuration")
		}
	}
	composer := prompt.NewComposer(cat)
	builder := followup.NewBuilder(cat)

	client := llm.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL)
	orchestrator := llm.NewOrchestrator(client, cfg.OpenAI.Models, cfg.OpenAI.RequestTimeout, m)
	transcriber := llm.NewFallbackTranscriber(
		client,
		cfg.OpenAI.TranscribeModel,
		cfg.OpenAI.TranscribeFallback,
		cfg.OpenAI.TranscribeLanguage,
		cfg.OpenAI.RequestTimeout,
		m,
	)

	summaryCache := gocache.New(cfg.Cache.TTL, 2*cfg.Cache.TTL)

	opdSvc := opdService.NewService(cat, composer, orchestrator, transcriber, encounterRepo, summaryCache, m)
	followupSvc := followupService.NewService(builder)

	h := handler.NewHandler(db)
	opdH := opdHandler.NewHandler(opdSvc)
	followupH := followupHandler.NewHandler(followupSvc)
	clinicH := clinicHandler.NewHandler(cat)

	var encounterH router.Handler
	if encounterRepo != nil {
		encounterH = encounterHandler.NewHandler(encounterRepo)
	}

	r := router.NewRouter(h, opdH, followupH, clinicH, encounterH, router.Config{
		RateLimit:      rate.Limit(cfg.RateLimit.RPS),
		RateBurst:      cfg.RateLimit.Burst,
		RequestTimeout: cfg.Server.RequestTimeout,
		SizeLimitConfig: middleware.SizeLimitConfig{
			MaxBodyBytes:   cfg.Server.MaxBodyBytes,
			MaxUploadBytes: cfg.Server.MaxUploadBytes,
		},
		CORSConfig: middleware.DefaultCORSConfig(),
		AuthConfig: middleware.BasicAuthConfig{
			Username: cfg.Auth.User,
			Password: cfg.Auth.Password,
		},
		MetricsPrefix: "opd_api",
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
