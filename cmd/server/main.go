package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	driver "go.mongodb.org/mongo-driver/mongo"

	_ "github.com/safenotes/notes-system/docs" // swagger docs

	"github.com/safenotes/notes-system/internal/api"
	"github.com/safenotes/notes-system/internal/api/handler"
	"github.com/safenotes/notes-system/internal/core/ports"
	"github.com/safenotes/notes-system/internal/core/service"
	mongodb "github.com/safenotes/notes-system/internal/infrastructure/db/mongo"
	redisdb "github.com/safenotes/notes-system/internal/infrastructure/db/redis"
	"github.com/safenotes/notes-system/internal/infrastructure/http/handlers"
	"github.com/safenotes/notes-system/internal/infrastructure/queue"
	"github.com/safenotes/notes-system/internal/infrastructure/store/memory"
	"github.com/safenotes/notes-system/internal/pkg/config"
	"github.com/safenotes/notes-system/pkg/logger"
)

// @title SafeNotes API
// @version 1.0
// @description Identity and note authorization service with JWT auth and role/ownership access control.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		userRepo  ports.UserRepository
		noteRepo  ports.NoteRepository
		auditRepo ports.AuditRepository
		mongoDB   *driver.Database
	)

	switch cfg.StoreDriver {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connect failed")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		users := mongodb.NewUserRepository(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo index setup failed")
		}

		userRepo = users
		noteRepo = mongodb.NewNoteRepository(db)
		auditRepo = mongodb.NewAuditRepository(db)
		mongoDB = db
	default:
		userRepo = memory.NewUserRepository()
		noteRepo = memory.NewNoteRepository()
		auditRepo = memory.NewAuditRepository()
	}

	var (
		rdb   *goredis.Client
		cache service.NoteCache
	)
	if cfg.CacheEnabled {
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		defer func() {
			_ = client.Close()
		}()
		rdb = client
		cache = redisdb.NewNoteCache(client)
	}

	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditRepo, log)
	dispatcher.Start(ctx)

	tokens := service.NewTokenIssuer(
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		time.Duration(cfg.JWT.TTLMinutes)*time.Minute,
	)
	authService := service.NewAuthService(userRepo, tokens, log)
	noteService := service.NewNoteService(userRepo, noteRepo, cache, dispatcher, log)

	e := api.NewRouter(
		log,
		api.JWTConfig{
			Secret:   cfg.JWT.Secret,
			Issuer:   cfg.JWT.Issuer,
			Audience: cfg.JWT.Audience,
		},
		handler.NewAuthHandler(authService),
		handler.NewNoteHandler(noteService),
		handlers.NewReadinessHandler(mongoDB, rdb),
	)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
