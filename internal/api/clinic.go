package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"

	"finledger/internal/clinic" // Clinic ledger service
	"finledger/internal/domain" // Domain models
	"finledger/internal/report" // xlsx export collaborator
	"finledger/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Exact decimal arithmetic
	"github.com/sirupsen/logrus"    // Logging library
)

// ClinicTransactionRequest represents a clinic transaction create/update payload
type ClinicTransactionRequest struct {
	Date          string          `json:"date" binding:"required"`           // RFC 3339 or yyyy-MM-dd
	ProcedureName string          `json:"procedure_name" binding:"required"` // Required procedure name
	PatientName   string          `json:"patient_name"`                      // Optional
	Fee           decimal.Decimal `json:"fee" binding:"required"`            // Strictly positive fee
	PaymentMethod string          `json:"payment_method"`                    // Optional, displays as CASH
}

// toInput converts the request into a service input
func (r ClinicTransactionRequest) toInput() (clinic.TransactionInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return clinic.TransactionInput{}, err
	}
	return clinic.TransactionInput{
		Date:          date,
		ProcedureName: r.ProcedureName,
		PatientName:   r.PatientName,
		Fee:           r.Fee,
		PaymentMethod: r.PaymentMethod,
	}, nil
}

// clinicListResponse bundles the clinic rows with the dashboard aggregates.
// The chart switches between procedure breakdown (daily view) and the
// chronological day trend depending on the active filter.
type clinicListResponse struct {
	Transactions []domain.ClinicTransaction `json:"transactions"`
	Summary      clinic.Summary             `json:"summary"`
	Chart        []clinic.ChartGroup        `json:"chart"`
	DailyView    bool                       `json:"daily_view"`
}

// ListClinicTransactionsHandler returns the user's clinic ledger for the
// requested period, with totals and the chart series
func ListClinicTransactionsHandler(svc *clinic.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		filter := parseFilter(c)
		ctx := context.Background()
		cacheKey := clinicCachePrefix(userID) + ":" + filter.CacheKey()
		var cached clinicListResponse
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"transactions": cached.Transactions,
				"summary":      cached.Summary,
				"chart":        cached.Chart,
				"daily_view":   cached.DailyView,
				"cached":       true,
			})
			return
		}
		txs, err := svc.ListTransactions(userID, filter)
		if err != nil {
			// Reads degrade to an empty set instead of breaking the dashboard
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Warn("Clinic list failed, returning empty")
			txs = []domain.ClinicTransaction{}
		}
		resp := clinicListResponse{
			Transactions: txs,
			Summary:      clinic.Summarize(txs, filter, time.Now()),
			DailyView:    filter.IsExactDay(),
		}
		if resp.DailyView {
			resp.Chart = clinic.GroupByProcedure(txs)
		} else {
			resp.Chart = clinic.GroupByDay(txs)
		}
		if err == nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, resp, cacheTTL)
		}
		c.JSON(http.StatusOK, gin.H{
			"transactions": resp.Transactions,
			"summary":      resp.Summary,
			"chart":        resp.Chart,
			"daily_view":   resp.DailyView,
			"cached":       false,
		})
	}
}

// CreateClinicTransactionHandler records a clinic transaction for the user
func CreateClinicTransactionHandler(svc *clinic.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		var req ClinicTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		input, err := req.toInput()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		tx, err := svc.CreateTransaction(userID, input)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Failed to record clinic transaction")
			respondServiceError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":        userID,
			"transaction_id": tx.ID,
			"procedure":      tx.ProcedureName,
			"fee":            tx.Fee,
		}).Info("Clinic transaction recorded")
		_ = utils.DeleteCacheByPrefix(context.Background(), rdb, clinicCachePrefix(userID))
		c.JSON(http.StatusCreated, gin.H{"message": "Clinic transaction recorded", "transaction": tx})
	}
}

// UpdateClinicTransactionHandler applies an update to a clinic transaction
func UpdateClinicTransactionHandler(svc *clinic.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		var req ClinicTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		input, err := req.toInput()
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
			}).Error("Failed to update clinic transaction")
			respondServiceError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":        userID,
			"transaction_id": tx.ID,
		}).Info("Clinic transaction updated")
		_ = utils.DeleteCacheByPrefix(context.Background(), rdb, clinicCachePrefix(userID))
		c.JSON(http.StatusOK, gin.H{"message": "Clinic transaction updated", "transaction": tx})
	}
}

// ExportClinicTransactionsHandler streams the filtered clinic ledger as an
// xlsx attachment
func ExportClinicTransactionsHandler(svc *clinic.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		txs, err := svc.ListTransactions(userID, parseFilter(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
			return
		}
		if len(txs) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No data to export"})
			return
		}
		data, err := report.WriteXLSX(report.ClinicRows(txs))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Failed to build export")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
			return
		}
		filename := report.Filename("Clinic_Report", time.Now())
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	}
}
