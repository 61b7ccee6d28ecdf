package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"finledger/internal/api"        // API handlers
	"finledger/internal/clinic"     // Clinic ledger service
	"finledger/internal/config"     // Configuration
	"finledger/internal/ledger"     // Personal ledger service
	"finledger/internal/middleware" // Middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	ledgerSvc := ledger.NewService(db) // Personal ledger service
	clinicSvc := clinic.NewService(db) // Clinic ledger service

	// Auth routes
	r.POST("/user", api.RegisterHandler(db))            // Registration endpoint
	r.GET("/user", api.LoginHandler(db, cfg.JWTSecret)) // Login endpoint

	// Protected routes (JWT)
	auth := r.Group("/", middleware.JWTAuthMiddleware(cfg.JWTSecret))

	// Wallet routes
	auth.POST("/wallets", api.CreateWalletHandler(ledgerSvc, redisClient)) // Create wallet endpoint
	auth.GET("/wallets", api.ListWalletsHandler(ledgerSvc, redisClient))   // List wallets endpoint

	// Personal ledger routes
	auth.GET("/wallets/:id/transactions", api.ListTransactionsHandler(ledgerSvc, redisClient))    // Filtered ledger endpoint
	auth.POST("/wallets/:id/transactions", api.CreateTransactionHandler(ledgerSvc, redisClient))  // Record transaction endpoint
	auth.PUT("/transactions/:id", api.UpdateTransactionHandler(ledgerSvc, redisClient))           // Update transaction endpoint

	// Clinic ledger routes
	auth.GET("/clinic/transactions", api.ListClinicTransactionsHandler(clinicSvc, redisClient))        // Filtered clinic ledger endpoint
	auth.POST("/clinic/transactions", api.CreateClinicTransactionHandler(clinicSvc, redisClient))      // Record clinic transaction endpoint
	auth.PUT("/clinic/transactions/:id", api.UpdateClinicTransactionHandler(clinicSvc, redisClient))   // Update clinic transaction endpoint
	auth.GET("/clinic/transactions/export", api.ExportClinicTransactionsHandler(clinicSvc))            // xlsx export endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
