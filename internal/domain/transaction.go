package domain

import (
	"time"

	"github.com/shopspring/decimal" // Exact decimal arithmetic for currency
)

// Transaction types
const (
	Income  TransactionType = "INCOME"  // Money entering the wallet
	Expense TransactionType = "EXPENSE" // Money leaving the wallet
)

// TransactionType is the kind of a personal ledger entry
type TransactionType string

// Valid reports whether t is one of the known transaction types
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction Model
type Transaction struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`         // UUID primary key
	WalletID    string          `gorm:"index;size:36;not null" json:"wallet_id"` // Foreign key to Wallet
	Type        TransactionType `gorm:"size:10;not null" json:"type"`         // INCOME or EXPENSE
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"` // Strictly positive amount; sign is derived from Type
	Date        time.Time       `gorm:"index;not null" json:"date"`           // Calendar date of the transaction
	Source      string          `json:"source,omitempty"`                     // Optional, meaningful for INCOME
	Category    string          `json:"category,omitempty"`                   // Optional, meaningful for EXPENSE
	Description string          `json:"description,omitempty"`                // Free text; required for EXPENSE
	CreatedAt   time.Time       `json:"created_at"`                           // Timestamp of creation
}
