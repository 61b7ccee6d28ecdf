// Package ledger implements the personal wallet ledger: wallet management,
// filtered transaction queries, dashboard aggregation, and validated
// create/update mutations scoped to the owning user.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"finledger/internal/domain" // Domain models and error taxonomy

	"github.com/google/uuid" // UUIDs for record IDs
	"gorm.io/gorm"           // GORM ORM library
)

// Service runs ledger queries and mutations against the backing store
type Service struct {
	db *gorm.DB
}

// NewService builds a ledger service over an open database handle
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// WalletSummary is a wallet together with its derived transaction count
type WalletSummary struct {
	domain.Wallet
	TransactionCount int64 `json:"transaction_count"` // Number of transactions in the wallet
}

// CreateWallet creates a wallet owned by userID
func (s *Service) CreateWallet(userID uint, name string) (*domain.Wallet, error) {
	if userID == 0 {
		return nil, domain.ErrNotAuthenticated
	}
	wallet := domain.Wallet{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := wallet.ValidateName(); err != nil {
		return nil, err
	}
	if err := s.db.Create(&wallet).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return &wallet, nil
}

// ListWallets returns the user's wallets newest-first, each with its
// transaction count. Unauthenticated callers get an empty slice, not an
// error, so the dashboard degrades to empty instead of breaking.
func (s *Service) ListWallets(userID uint) ([]WalletSummary, error) {
	if userID == 0 {
		return []WalletSummary{}, nil
	}
	var wallets []WalletSummary
	err := s.db.Model(&domain.Wallet{}).
		Select("wallets.*, count(transactions.id) as transaction_count").
		Joins("left join transactions on transactions.wallet_id = wallets.id").
		Where("wallets.user_id = ?", userID).
		Group("wallets.id").
		Order("wallets.created_at desc").
		Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return wallets, nil
}

// findOwnedWallet fetches a wallet by id scoped to its owner. A wallet
// that exists but belongs to another user yields the same ErrWalletNotFound
// as a nonexistent one, so callers cannot probe for other users' wallets.
func (s *Service) findOwnedWallet(userID uint, walletID string) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := s.db.Where("id = ? AND user_id = ?", walletID, userID).First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrWalletNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return &wallet, nil
}
