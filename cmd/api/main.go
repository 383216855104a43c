package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/portal-go/internal/api/handlers"
	"github.com/linskybing/portal-go/internal/api/middleware"
	"github.com/linskybing/portal-go/internal/api/routes"
	"github.com/linskybing/portal-go/internal/application"
	"github.com/linskybing/portal-go/internal/config"
	"github.com/linskybing/portal-go/internal/config/db"
	"github.com/linskybing/portal-go/internal/domain/request"
	"github.com/linskybing/portal-go/internal/events"
	"github.com/linskybing/portal-go/internal/repository"
	"github.com/linskybing/portal-go/pkg/cache"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/linskybing/portal-go/pkg/logger"
	"github.com/linskybing/portal-go/pkg/storage"
)

const shutdownTimeout = 15 * time.Second

// @title Webale customer portal API
// @version 1.0
// @description Questionnaire intake, admin console, customer dashboard and payments.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	log, err := logger.New(logger.Config{Level: config.LogLevel, Development: !config.IsProduction})
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.Init(); err != nil {
		log.Fatal("database init failed", logger.Error(err))
	}
	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatal("database handle", logger.Error(err))
	}
	defer sqlDB.Close()
	log.Info("database connected and migrated")

	health := map[string]handlers.Pinger{"database": sqlDB}

	// Redis backs the submission guard and the token denylist when configured.
	var locks, revoked cache.Store = cache.NewMemoryStore(), cache.NewMemoryStore()
	if config.RedisAddress != "" {
		client, err := cache.NewRedisClient(cache.RedisConfig{
			Address:  config.RedisAddress,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		if err != nil {
			log.Fatal("redis connect failed", logger.Error(err))
		}
		defer client.Close()
		store := cache.NewRedisStore(client, "portal:")
		locks, revoked = store, store
		health["redis"] = handlers.PingFunc(store.Ping)
		log.Info("redis connected", logger.String("address", config.RedisAddress))
	} else {
		log.Warn("REDIS_ADDRESS not set, using in-process locks")
	}

	var objects storage.ObjectStore
	if config.MinioEndpoint != "" {
		store, err := storage.NewMinioStore(ctx, storage.Config{
			Endpoint:  config.MinioEndpoint,
			AccessKey: config.MinioAccessKey,
			SecretKey: config.MinioSecretKey,
			Bucket:    config.MinioBucket,
			UseSSL:    config.MinioUseSSL,
		})
		if err != nil {
			log.Warn("object storage unavailable, attachments disabled", logger.Error(err))
		} else {
			objects = store
		}
	}

	policy, err := request.NewDeadlinePolicy(config.DeadlinePolicy, config.DeadlineFixedHours)
	if err != nil {
		log.Fatal("invalid deadline policy", logger.Error(err))
	}

	tr, err := i18n.NewTranslator()
	if err != nil {
		log.Fatal("load translations", logger.Error(err))
	}
	if missing := tr.Missing(i18n.EN); len(missing) > 0 {
		log.Warn("missing translations", logger.Any("keys", missing))
	}

	middleware.Init(revoked)

	hub := events.NewHub(log)
	go hub.Run(ctx)

	repos := repository.NewRepositories(db.DB)
	svc := application.New(repos, application.Deps{
		Translator: tr,
		Policy:     policy,
		Locks:      locks,
		Revoked:    revoked,
		Objects:    objects,
		Events:     hub,
		Logger:     log,
		LockTTL:    config.SubmissionLockTTL,
		TokenTTL:   config.JwtTTL,
	})
	unsubscribe := svc.Identity.OnSessionChange(func(e application.SessionEvent) {
		log.Info("session changed", logger.String("kind", string(e.Kind)), logger.Uint("user_id", e.UserID))
	})
	defer unsubscribe()

	defaultLang, ok := i18n.ParseLanguage(config.DefaultLanguage)
	if !ok {
		defaultLang = i18n.FR
	}

	gin.SetMode(config.GinMode)
	h := handlers.New(svc, handlers.Options{
		Responder:      handlers.NewResponder(tr, log),
		Hub:            hub,
		Health:         health,
		AllowedOrigins: config.CORSAllowedOrigins,
	})
	router := routes.NewRouter(h, middleware.NewAuth(repos), routes.Options{
		Logger:            log,
		AllowedOrigins:    config.CORSAllowedOrigins,
		DefaultLanguage:   defaultLang,
		AuthRatePerMinute: config.AuthRatePerMinute,
		MaxUploadBytes:    config.MaxUploadMB << 20,
	})

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting API server", logger.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", logger.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", logger.Error(err))
	}
}
