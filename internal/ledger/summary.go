package ledger

import (
	"finledger/internal/domain"

	"github.com/shopspring/decimal"
)

// Summary holds the dashboard totals for a filtered transaction set
type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`  // Sum of INCOME amounts
	TotalExpense decimal.Decimal `json:"total_expense"` // Sum of EXPENSE amounts
	Balance      decimal.Decimal `json:"balance"`       // TotalIncome - TotalExpense, exact
}

// ChartBucket is one bar of the income/expense chart
type ChartBucket struct {
	Type   domain.TransactionType `json:"type"`
	Amount decimal.Decimal        `json:"amount"`
}

// Summarize computes exact income/expense totals and the balance over a
// transaction set. Decimal arithmetic keeps repeated sums drift-free.
func Summarize(txs []domain.Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case domain.Income:
			income = income.Add(tx.Amount)
		case domain.Expense:
			expense = expense.Add(tx.Amount)
		}
	}
	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// ChartByType groups a transaction set into the two fixed chart buckets,
// INCOME first. There is no date dimension in the personal chart.
func ChartByType(txs []domain.Transaction) []ChartBucket {
	sums := Summarize(txs)
	return []ChartBucket{
		{Type: domain.Income, Amount: sums.TotalIncome},
		{Type: domain.Expense, Amount: sums.TotalExpense},
	}
}
