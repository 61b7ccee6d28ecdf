package domain

import "strings"

// Validate checks the type-specific invariants of a personal transaction.
// EXPENSE records must carry a non-empty description; INCOME may omit it.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return invalid("type", ErrInvalidType)
	}
	if !t.Amount.IsPositive() {
		return invalid("amount", ErrInvalidAmount)
	}
	if t.Date.IsZero() {
		return invalid("date", ErrInvalidDate)
	}
	if t.Type == Expense && strings.TrimSpace(t.Description) == "" {
		return invalid("description", ErrEmptyDescription)
	}
	return nil
}

// Validate checks the invariants of a clinic transaction
func (c ClinicTransaction) Validate() error {
	if strings.TrimSpace(c.ProcedureName) == "" {
		return invalid("procedure_name", ErrEmptyProcedure)
	}
	if !c.Fee.IsPositive() {
		return invalid("fee", ErrInvalidAmount)
	}
	if c.Date.IsZero() {
		return invalid("date", ErrInvalidDate)
	}
	return nil
}

// ValidateName checks the wallet display name
func (w Wallet) ValidateName() error {
	if strings.TrimSpace(w.Name) == "" {
		return invalid("name", ErrEmptyWalletName)
	}
	return nil
}
