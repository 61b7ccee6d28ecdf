package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes

	"finledger/internal/domain" // Domain models
	"finledger/internal/ledger" // Ledger service
	"finledger/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Exact decimal arithmetic
	"github.com/sirupsen/logrus"    // Logging library
)

// TransactionRequest represents a transaction create/update payload
type TransactionRequest struct {
	WalletID    string          `json:"wallet_id"`                // Target wallet; optional on create (URL param wins)
	Type        string          `json:"type" binding:"required"`  // INCOME or EXPENSE
	Amount      decimal.Decimal `json:"amount" binding:"required"` // Strictly positive amount
	Date        string          `json:"date" binding:"required"`  // RFC 3339 or yyyy-MM-dd
	Source      string          `json:"source"`                   // Optional, for INCOME
	Category    string          `json:"category"`                 // Optional, for EXPENSE
	Description string          `json:"description"`              // Required for EXPENSE
}

// toInput converts the request into a service input, defaulting the wallet
// id to the one in the URL
func (r TransactionRequest) toInput(walletID string) (ledger.TransactionInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return ledger.TransactionInput{}, err
	}
	if r.WalletID != "" {
		walletID = r.WalletID
	}
	return ledger.TransactionInput{
		WalletID:    walletID,
		Type:        domain.TransactionType(r.Type),
		Amount:      r.Amount,
		Date:        date,
		Source:      r.Source,
		Category:    r.Category,
		Description: r.Description,
	}, nil
}

// transactionListResponse bundles the ledger rows with the dashboard
// aggregates computed over the same filtered set
type transactionListResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	Summary      ledger.Summary       `json:"summary"`
	Chart        []ledger.ChartBucket `json:"chart"`
}

// ListTransactionsHandler returns the wallet's transactions within the
// requested period, newest-first, plus totals and chart buckets
func ListTransactionsHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		walletID := c.Param("id")
		filter := parseFilter(c)
		ctx := context.Background()
		cacheKey := ledgerCachePrefix(userID) + ":wallet:" + walletID + ":" + filter.CacheKey()
		var cached transactionListResponse
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"transactions": cached.Transactions,
				"summary":      cached.Summary,
				"chart":        cached.Chart,
				"cached":       true,
			})
			return
		}
		txs, err := svc.ListTransactions(userID, walletID, filter)
		if err != nil {
			// Reads degrade to an empty set instead of breaking the dashboard
			logrus.WithFields(logrus.Fields{
				"user_id":   userID,
				"wallet_id": walletID,
				"error":     err.Error(),
			}).Warn("Transaction list failed, returning empty")
			txs = []domain.Transaction{}
		}
		resp := transactionListResponse{
			Transactions: txs,
			Summary:      ledger.Summarize(txs),
			Chart:        ledger.ChartByType(txs),
		}
		if err == nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, resp, cacheTTL)
		}
		c.JSON(http.StatusOK, gin.H{
			"transactions": resp.Transactions,
			"summary":      resp.Summary,
			"chart":        resp.Chart,
			"cached":       false,
		})
	}
}

// CreateTransactionHandler records a transaction in one of the user's wallets
func CreateTransactionHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		var req TransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		input, err := req.toInput(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		tx, err := svc.CreateTransaction(userID, input)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":   userID,
				"wallet_id": input.WalletID,
				"error":     err.Error(),
			}).Error("Failed to record transaction")
			respondServiceError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":        userID,
			"wallet_id":      tx.WalletID,
			"transaction_id": tx.ID,
			"type":           tx.Type,
			"amount":         tx.Amount,
		}).Info("Transaction recorded")
		invalidateLedger(rdb, userID)
		c.JSON(http.StatusCreated, gin.H{"message": "Transaction recorded", "transaction": tx})
	}
}

// UpdateTransactionHandler applies an update to one of the user's transactions
func UpdateTransactionHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		var req TransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		input, err := req.toInput("")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		tx, err := svc.UpdateTransaction(userID, c.Param("id"), input)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":        userID,
				"transaction_id": c.Param("id"),
				"error":          err.Error(),
			}).Error("Failed to update transaction")
			respondServiceError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":        userID,
			"transaction_id": tx.ID,
		}).Info("Transaction updated")
		invalidateLedger(rdb, userID)
		c.JSON(http.StatusOK, gin.H{"message": "Transaction updated", "transaction": tx})
	}
}

// invalidateLedger drops the user's cached ledger reads after a mutation so
// the next poll sees fresh data. Wallet counts change too.
func invalidateLedger(rdb *redis.Client, userID uint) {
	ctx := context.Background()
	_ = utils.DeleteCacheByPrefix(ctx, rdb, ledgerCachePrefix(userID))
	_ = utils.DeleteCacheByPrefix(ctx, rdb, walletsCachePrefix(userID))
}
