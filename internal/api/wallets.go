package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes

	"finledger/internal/ledger" // Ledger service
	"finledger/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// CreateWalletRequest represents a wallet creation request
type CreateWalletRequest struct {
	Name string `json:"name" binding:"required"` // Wallet display name
}

// CreateWalletHandler creates a wallet for the authenticated user
func CreateWalletHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		var req CreateWalletRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Wallet name is required"})
			return
		}
		wallet, err := svc.CreateWallet(userID, req.Name)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Failed to create wallet")
			respondServiceError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   userID,
			"wallet_id": wallet.ID,
		}).Info("Wallet created")
		// Invalidate the wallet list cache so the next poll sees the new wallet
		_ = utils.DeleteCacheByPrefix(context.Background(), rdb, walletsCachePrefix(userID))
		c.JSON(http.StatusCreated, gin.H{"message": "Wallet created", "wallet": wallet})
	}
}

// ListWalletsHandler returns the user's wallets with transaction counts
func ListWalletsHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		ctx := context.Background()
		cacheKey := walletsCachePrefix(userID)
		var cached []ledger.WalletSummary
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"wallets": cached, "cached": true})
			return
		}
		wallets, err := svc.ListWallets(userID)
		if err != nil {
			// Reads degrade to an empty set instead of breaking the dashboard
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Warn("Wallet list failed, returning empty")
			c.JSON(http.StatusOK, gin.H{"wallets": []ledger.WalletSummary{}, "cached": false})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, wallets, cacheTTL)
		c.JSON(http.StatusOK, gin.H{"wallets": wallets, "cached": false})
	}
}
