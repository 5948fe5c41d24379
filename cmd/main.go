package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"empathos/backend/internal/api/handler"
	"empathos/backend/internal/auth"
	"empathos/backend/internal/chatbot"
	"empathos/backend/internal/complaint"
	"empathos/backend/internal/config"
	"empathos/backend/internal/logger"
	"empathos/backend/internal/models"
	"empathos/backend/internal/responses"
	"empathos/backend/internal/storage"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	log := logger.Get()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Error("failed to connect PostgreSQL", "error", err)
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Error("failed to connect Redis", "addr", cfg.Redis.Addr, "error", err)
		os.Exit(1)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Complaint{},
		&models.ChatMessage{},
	)
	if err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	log.Info("database connections established, migrations complete")
	return db, rdb
}

func main() {
	envLoaded := godotenv.Load() == nil

	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	log := logger.Get()
	if !envLoaded {
		log.Warn("no .env file loaded, using process environment")
	}
	log.Info("starting Empathos backend")

	db, rdb := setupDependencies(cfg)
	store := storage.NewStorageService(db, rdb)

	library, err := responses.NewLibrary(cfg.ResponsesDir)
	if err != nil {
		log.Error("failed to load response sets", "dir", cfg.ResponsesDir, "error", err)
		os.Exit(1)
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	sessions := auth.NewSessionManager(store, tokens, cfg.Auth.SessionTTL)
	accounts := auth.NewService(store, hasher)
	complaints := complaint.NewService(store)
	chat := chatbot.NewService(store, chatbot.NewCannedResponder(library.Set("en")))

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	h := handler.NewHandler(accounts, sessions, complaints, chat, store)
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           cfg.Server.Addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Info("listening", "addr", cfg.Server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
