package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	"github.com/st10068763/APDS-PEO/internal/auth"
	"github.com/st10068763/APDS-PEO/internal/cache"
	"github.com/st10068763/APDS-PEO/internal/command"
	"github.com/st10068763/APDS-PEO/internal/config"
	"github.com/st10068763/APDS-PEO/internal/events"
	"github.com/st10068763/APDS-PEO/internal/handler"
	"github.com/st10068763/APDS-PEO/internal/middleware"
	"github.com/st10068763/APDS-PEO/internal/migrations"
	"github.com/st10068763/APDS-PEO/internal/query"
	"github.com/st10068763/APDS-PEO/internal/repository"
	"github.com/st10068763/APDS-PEO/internal/throttle"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Database connection
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	if err := migrations.Up(context.Background(), db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	// Repositories and shared infrastructure
	userRepo := repository.NewUserRepository(db)
	txWriteRepo := repository.NewTransactionWriteRepository(db)
	txReadRepo := repository.NewTransactionReadRepository(db, redisClient)
	publisher := events.NewPublisher(redisClient)
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	var throttleStore throttle.Store
	if cfg.ThrottleBackend == "redis" {
		throttleStore = throttle.NewRedisStore(redisClient, cfg.ThrottleWindow)
	} else {
		throttleStore = throttle.NewMemoryStore(cfg.ThrottleWindow)
	}
	limiter := throttle.NewLimiter(throttleStore, cfg.ThrottleMax)

	// Services
	userCommands := command.NewUserCommandService(userRepo, publisher)
	paymentCommands := command.NewPaymentCommandService(userRepo, txWriteRepo, txReadRepo, publisher)
	authQueries := query.NewAuthQueryService(userRepo, issuer)
	txQueries := query.NewTransactionQueryService(txReadRepo)

	userHandler := handler.NewUserHandler(userCommands, authQueries, limiter)
	paymentHandler := handler.NewPaymentHandler(paymentCommands, txQueries)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))

	v1 := router.Group("/v1/user")
	{
		v1.POST("/signup", userHandler.Signup)
		v1.POST("/login", userHandler.Login)

		authed := v1.Group("", middleware.AuthMiddleware(issuer))
		authed.POST("/local-payment", paymentHandler.LocalPayment)
		authed.POST("/international-payment", paymentHandler.InternationalPayment)
		authed.GET("/transactions/:userId", paymentHandler.ListTransactions)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.RunTLS(":"+cfg.Port, cfg.TLSCertFile, cfg.TLSKeyFile); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
