package ledger

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

// TransactionInput carries the validated fields of a create/update call
type TransactionInput struct {
	WalletID    string                 `json:"wallet_id"`
	Type        domain.TransactionType `json:"type"`
	Amount      decimal.Decimal        `json:"amount"`
	Date        time.Time              `json:"date"`
	Source      string                 `json:"source"`      // Optional, meaningful for INCOME
	Category    string                 `json:"category"`    // Optional, meaningful for EXPENSE
	Description string                 `json:"description"` // Required for EXPENSE
}

// ListTransactions returns the wallet's transactions within the filter's
// range, newest-first. The wallet id is assumed to be scoped to the user by
// an upstream check; an unauthenticated caller gets an empty slice.
func (s *Service) ListTransactions(userID uint, walletID string, f period.Filter) ([]domain.Transaction, error) {
	if userID == 0 {
		return []domain.Transaction{}, nil
	}
	q := s.db.Where("wallet_id = ?", walletID)
	if start, end, ok := f.Range(); ok {
		q = q.Where("date >= ? AND date <= ?", start, end)
	}
	var txs []domain.Transaction
	// Secondary order on id keeps same-date rows stable across queries.
	if err := q.Order("date desc").Order("id").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return txs, nil
}

// CreateTransaction validates and persists a new transaction. The target
// wallet must exist and belong to userID.
func (s *Service) CreateTransaction(userID uint, in TransactionInput) (*domain.Transaction, error) {
	if userID == 0 {
		return nil, domain.ErrNotAuthenticated
	}
	tx := domain.Transaction{
		ID:          uuid.NewString(),
		WalletID:    in.WalletID,
		Type:        in.Type,
		Amount:      in.Amount,
		Date:        in.Date,
		Source:      in.Source,
		Category:    in.Category,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.findOwnedWallet(userID, in.WalletID); err != nil {
		return nil, err
	}
	if err := s.db.Create(&tx).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return &tx, nil
}

// UpdateTransaction validates and applies an update to an existing
// transaction. Both the transaction's current wallet and the target wallet
// in the payload must belong to userID, so a record can never be read from
// or moved into another user's wallet.
func (s *Service) UpdateTransaction(userID uint, id string, in TransactionInput) (*domain.Transaction, error) {
	if userID == 0 {
		return nil, domain.ErrNotAuthenticated
	}
	updated := domain.Transaction{
		Type:        in.Type,
		Amount:      in.Amount,
		Date:        in.Date,
		Description: in.Description,
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.findOwnedWallet(userID, in.WalletID); err != nil {
		return nil, err
	}
	var tx domain.Transaction
	err := s.db.
		Joins("join wallets on wallets.id = transactions.wallet_id").
		Where("transactions.id = ? AND wallets.user_id = ?", id, userID).
		First(&tx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	tx.WalletID = in.WalletID
	tx.Type = in.Type
	tx.Amount = in.Amount
	tx.Date = in.Date
	tx.Source = in.Source
	tx.Category = in.Category
	tx.Description = in.Description
	// Select forces empty optional fields to be written back too.
	err = s.db.Model(&tx).
		Select("wallet_id", "type", "amount", "date", "source", "category", "description").
		Updates(&tx).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return &tx, nil
}
