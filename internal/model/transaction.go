package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the wire format for transaction dates.
const DateFormat = "2006-01-02"

// TransactionType indicates whether a transaction is income or an expense.
// Amounts are always positive; direction is carried by the type, never by
// the sign.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType validates and converts a user-supplied type string.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	default:
		return "", fmt.Errorf("transaction type must be %q or %q, got %q", TypeIncome, TypeExpense, s)
	}
}

// Transaction represents a single ledger entry. The ledger owns the
// collection of transactions; each holds a reference to its category by id
// and carries the resolved name for display.
type Transaction struct {
	Date        time.Time
	CreatedAt   time.Time
	Description string
	Category    string
	Type        TransactionType
	Amount      decimal.Decimal
	ID          int64
	CategoryID  int64
}
