// Package clinic implements the clinic procedure ledger. Unlike the
// personal ledger it is scoped directly to the user, with no wallet
// indirection.
package clinic

import (
	"errors"
	"fmt"
	"time"

	"finledger/internal/domain" // Domain models and error taxonomy
	"finledger/internal/period" // Resolved period filters

	"github.com/google/uuid"        // UUIDs for record IDs
	"github.com/shopspring/decimal" // Exact decimal arithmetic
	"gorm.io/gorm"                  // GORM ORM library
)

// Service runs clinic ledger queries and mutations against the backing store
type Service struct {
	db *gorm.DB
}

// NewService builds a clinic service over an open database handle
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// TransactionInput carries the validated fields of a create/update call
type TransactionInput struct {
	Date          time.Time       `json:"date"`
	ProcedureName string          `json:"procedure_name"` // Required
	PatientName   string          `json:"patient_name"`   // Optional
	Fee           decimal.Decimal `json:"fee"`
	PaymentMethod string          `json:"payment_method"` // Optional; displays as CASH when absent
}

// ListTransactions returns the user's clinic transactions within the
// filter's range, newest-first. Unauthenticated callers get an empty slice.
func (s *Service) ListTransactions(userID uint, f period.Filter) ([]domain.ClinicTransaction, error) {
	if userID == 0 {
		return []domain.ClinicTransaction{}, nil
	}
	q := s.db.Where("user_id = ?", userID)
	if start, end, ok := f.Range(); ok {
		q = q.Where("date >= ? AND date <= ?", start, end)
	}
	var txs []domain.ClinicTransaction
	// Secondary order on id keeps same-date rows stable across queries.
	if err := q.Order("date desc").Order("id").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return txs, nil
}

// CreateTransaction validates and persists a new clinic transaction
func (s *Service) CreateTransaction(userID uint, in TransactionInput) (*domain.ClinicTransaction, error) {
	if userID == 0 {
		return nil, domain.ErrNotAuthenticated
	}
	tx := domain.ClinicTransaction{
		ID:            uuid.NewString(),
		UserID:        userID,
		Date:          in.Date,
		ProcedureName: in.ProcedureName,
		PatientName:   in.PatientName,
		Fee:           in.Fee,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     time.Now(),
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.Create(&tx).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return &tx, nil
}

// UpdateTransaction validates and applies an update to a clinic transaction.
// The record is looked up by id and owner together, so a record belonging to
// another user yields the same ErrNotFound as a nonexistent one.
func (s *Service) UpdateTransaction(userID uint, id string, in TransactionInput) (*domain.ClinicTransaction, error) {
	if userID == 0 {
		return nil, domain.ErrNotAuthenticated
	}
	updated := domain.ClinicTransaction{
		Date:          in.Date,
		ProcedureName: in.ProcedureName,
		Fee:           in.Fee,
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	var tx domain.ClinicTransaction
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	tx.Date = in.Date
	tx.ProcedureName = in.ProcedureName
	tx.PatientName = in.PatientName
	tx.Fee = in.Fee
	tx.PaymentMethod = in.PaymentMethod
	// Select forces empty optional fields to be written back too.
	err = s.db.Model(&tx).
		Select("date", "procedure_name", "patient_name", "fee", "payment_method").
		Updates(&tx).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return &tx, nil
}
