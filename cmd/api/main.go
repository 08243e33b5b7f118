package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"shop-interests/internal/config"
	"shop-interests/internal/db"
	"shop-interests/internal/email"
	apihttp "shop-interests/internal/http"
	"shop-interests/internal/repository"
	"shop-interests/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// devJWTSecret solo se usa fuera de producción; LoadConfig rechaza arrancar
// en producción sin JWT_SECRET.
const devJWTSecret = "12345678"

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	secret := cfg.JWTSecret
	if secret == "" {
		logger.Warn("jwt secret not configured, using development fallback")
		secret = devJWTSecret
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	categoryRepo := repository.NewPgCategoryRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var countCache service.CountCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			countCache = service.NewRedisCountCache(redisClient)
		}
		cancel()
	}

	tokenSvc := service.NewTokenService(secret)
	authSvc := service.NewAuthService(logger, userRepo, emailSender, tokenSvc)
	categorySvc := service.NewCategoryService(logger, categoryRepo, countCache)

	gate := apihttp.NewSessionGate(tokenSvc)
	authHandler := apihttp.NewAuthHandler(logger, authSvc)
	categoryHandler := apihttp.NewCategoryHandler(logger, authSvc, categorySvc)
	router := apihttp.NewRouter(logger, gate, authHandler, categoryHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
