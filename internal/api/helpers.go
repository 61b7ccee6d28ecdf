package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"finledger/internal/domain" // Error taxonomy
	"finledger/internal/period" // Period filter resolver

	"github.com/gin-gonic/gin" // Gin web framework
)

// cacheTTL matches the client's 30s polling interval; cached reads are
// never staler than one poll.
const cacheTTL = 30 * time.Second

// currentUserID extracts the authenticated user ID set by the JWT middleware
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

// respondServiceError maps a service error to an HTTP response.
// ErrWalletNotFound and ErrNotFound cover forbidden records too, so the
// response never reveals whether a foreign record exists.
func respondServiceError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Err.Error(), "field": vErr.Field})
	case errors.Is(err, domain.ErrWalletNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

// parseFilter reads the date/month/year query params into a period filter.
// Malformed or out-of-range values are dropped, falling through to the next
// filter in precedence order.
func parseFilter(c *gin.Context) period.Filter {
	var day *time.Time
	var month, year *int
	if ds := c.Query("date"); ds != "" {
		if t, err := time.ParseInLocation("2006-01-02", ds, time.Local); err == nil {
			day = &t
		}
	}
	// Months are 0-based, matching the UI's month selector.
	if ms := c.Query("month"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v >= 0 && v <= 11 {
			month = &v
		}
	}
	if ys := c.Query("year"); ys != "" {
		if v, err := strconv.Atoi(ys); err == nil && v > 0 {
			year = &v
		}
	}
	return period.Resolve(day, month, year)
}

// parseDate accepts both RFC 3339 timestamps and plain calendar dates
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Cache key builders. Mutations invalidate by these prefixes.
func walletsCachePrefix(userID uint) string {
	return "wallets:user:" + strconv.Itoa(int(userID))
}

func ledgerCachePrefix(userID uint) string {
	return "ledger:user:" + strconv.Itoa(int(userID))
}

func clinicCachePrefix(userID uint) string {
	return "clinic:user:" + strconv.Itoa(int(userID))
}
