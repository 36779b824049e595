// Package report computes summaries and renders report artifacts from the ledger.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/pennyflow/internal/common"
	"github.com/Veraticus/pennyflow/internal/model"
	"github.com/Veraticus/pennyflow/internal/service"
)

var oneHundred = decimal.NewFromInt(100)

// Engine aggregates ledger contents into summaries and reports.
type Engine struct {
	store service.Storage
}

// NewEngine creates a reporting engine backed by the given storage.
func NewEngine(store service.Storage) *Engine {
	return &Engine{store: store}
}

// MonthRange returns the inclusive first and last calendar day of a month.
// A zero month or year falls back to the current month or year in the local
// time zone.
func MonthRange(month, year int) (time.Time, time.Time, error) {
	now := time.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: month must be between 1 and 12, got %d", common.ErrInvalidInput, month)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// Summarize computes totals, net balance and the per-category expense
// breakdown for the inclusive date range. Income and expenses accumulate in
// separate decimal sums; categories with no expense activity in range are
// omitted from the breakdown. An empty range yields a zero summary, not an
// error.
func (e *Engine) Summarize(ctx context.Context, start, end time.Time) (*model.Summary, error) {
	transactions, err := e.store.GetTransactionsByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)

	for _, txn := range transactions {
		switch txn.Type {
		case model.TypeIncome:
			totalIncome = totalIncome.Add(txn.Amount)
		case model.TypeExpense:
			totalExpenses = totalExpenses.Add(txn.Amount)
			byCategory[txn.Category] = byCategory[txn.Category].Add(txn.Amount)
		}
	}

	breakdown := make([]model.CategoryTotal, 0, len(byCategory))
	for name, amount := range byCategory {
		percent := decimal.Zero
		if totalExpenses.Sign() > 0 {
			percent = amount.Mul(oneHundred).DivRound(totalExpenses, 1)
		}
		breakdown = append(breakdown, model.CategoryTotal{
			Category: name,
			Amount:   amount,
			Percent:  percent,
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Amount.Equal(breakdown[j].Amount) {
			return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
		}
		return breakdown[i].Category < breakdown[j].Category
	})

	slog.Debug("summary complete",
		"start", start.Format(model.DateFormat),
		"end", end.Format(model.DateFormat),
		"income", totalIncome,
		"expenses", totalExpenses)

	return &model.Summary{
		Start:         start,
		End:           end,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Net:           totalIncome.Sub(totalExpenses),
		ByCategory:    breakdown,
	}, nil
}

// MonthlyTrend returns income and expense totals for each month of a year.
// Months with no activity carry zero totals.
func (e *Engine) MonthlyTrend(ctx context.Context, year int) ([]model.MonthTotals, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local)

	transactions, err := e.store.GetTransactionsByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	trend := make([]model.MonthTotals, 12)
	for i := range trend {
		trend[i].Month = time.Month(i + 1)
	}

	for _, txn := range transactions {
		m := &trend[int(txn.Date.Month())-1]
		switch txn.Type {
		case model.TypeIncome:
			m.Income = m.Income.Add(txn.Amount)
		case model.TypeExpense:
			m.Expense = m.Expense.Add(txn.Amount)
		}
	}

	return trend, nil
}
