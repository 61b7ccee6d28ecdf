package clinic

import (
	"sort"
	"time"

	"finledger/internal/domain"
	"finledger/internal/period"

	"github.com/shopspring/decimal"
)

// Summary holds the clinic dashboard totals for a filtered set
type Summary struct {
	TotalFee         decimal.Decimal `json:"total_fee"`          // Sum of fees over the filtered set
	CurrentDayIncome decimal.Decimal `json:"current_day_income"` // Fees earned today, see Summarize
}

// ChartGroup is one bar of the clinic chart: a procedure name in daily
// view, a "02 Jan" date label in trend view.
type ChartGroup struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Summarize computes the clinic totals. CurrentDayIncome is the fee sum of
// records dated today; when no record is dated today but an exact-day
// filter is active, the whole filtered total stands in for it (the set is
// already scoped to that one day), and an empty set under a day filter
// yields zero.
func Summarize(txs []domain.ClinicTransaction, f period.Filter, now time.Time) Summary {
	total := decimal.Zero
	today := decimal.Zero
	y, m, d := now.Date()
	for _, tx := range txs {
		total = total.Add(tx.Fee)
		ty, tm, td := tx.Date.Date()
		if ty == y && tm == m && td == d {
			today = today.Add(tx.Fee)
		}
	}
	if today.IsZero() && f.IsExactDay() && len(txs) > 0 {
		today = total
	}
	return Summary{TotalFee: total, CurrentDayIncome: today}
}

// GroupByProcedure builds the daily-view chart: fees summed per procedure
// name, highest revenue first. Ties are broken by procedure name ascending
// so identical inputs always produce identical output.
func GroupByProcedure(txs []domain.ClinicTransaction) []ChartGroup {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		sums[tx.ProcedureName] = sums[tx.ProcedureName].Add(tx.Fee)
	}
	groups := make([]ChartGroup, 0, len(sums))
	for name, amount := range sums {
		groups = append(groups, ChartGroup{Name: name, Amount: amount})
	}
	sort.Slice(groups, func(i, j int) bool {
		if !groups[i].Amount.Equal(groups[j].Amount) {
			return groups[i].Amount.GreaterThan(groups[j].Amount)
		}
		return groups[i].Name < groups[j].Name
	})
	return groups
}

// GroupByDay builds the trend-view chart: the set is sorted chronologically
// and fees are summed per "02 Jan" day label, preserving chronological
// group order. The label omits the year, so a range spanning multiple years
// folds same-day-and-month records together; that matches how the ledger
// has always displayed the trend and is accepted.
func GroupByDay(txs []domain.ClinicTransaction) []ChartGroup {
	sorted := make([]domain.ClinicTransaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	index := make(map[string]int)
	var groups []ChartGroup
	for _, tx := range sorted {
		label := tx.Date.Format("02 Jan")
		if i, ok := index[label]; ok {
			groups[i].Amount = groups[i].Amount.Add(tx.Fee)
			continue
		}
		index[label] = len(groups)
		groups = append(groups, ChartGroup{Name: label, Amount: tx.Fee})
	}
	return groups
}
