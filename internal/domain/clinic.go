package domain

import (
	"time"

	"github.com/shopspring/decimal" // Exact decimal arithmetic for currency
)

// DefaultPaymentMethod is shown when a clinic record carries no payment method
const DefaultPaymentMethod = "CASH"

// ClinicTransaction Model (clinic ledger is scoped to the user directly, no wallet)
type ClinicTransaction struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`          // UUID primary key
	UserID        uint            `gorm:"index;not null" json:"user_id"`         // Foreign key to User
	Date          time.Time       `gorm:"index;not null" json:"date"`            // Calendar date of the procedure
	ProcedureName string          `gorm:"not null" json:"procedure_name"`        // Required procedure name
	PatientName   string          `json:"patient_name,omitempty"`                // Optional patient name
	Fee           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"fee"` // Strictly positive fee
	PaymentMethod string          `json:"payment_method,omitempty"`              // Optional; displays as CASH when absent
	CreatedAt     time.Time       `json:"created_at"`                            // Timestamp of creation
}

// DisplayPaymentMethod returns the payment method, falling back to CASH
func (c ClinicTransaction) DisplayPaymentMethod() string {
	if c.PaymentMethod == "" {
		return DefaultPaymentMethod
	}
	return c.PaymentMethod
}
