package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one row of the expense breakdown: the summed expense
// amount for a category within a range, plus its share of total expenses.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
	Percent  decimal.Decimal
}

// Summary is the derived financial picture for a date range. It is computed
// on demand from the ledger's current contents and never persisted.
type Summary struct {
	Start         time.Time
	End           time.Time
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Net           decimal.Decimal
	ByCategory    []CategoryTotal
}

// MonthTotals holds income and expense sums for a single calendar month.
type MonthTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Month   time.Month
}
