// Package storage provides the data persistence layer for the ledger.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/pennyflow/internal/common"
	"github.com/Veraticus/pennyflow/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction checks a ledger entry before any mutation is attempted.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.Amount.Sign() <= 0 {
		return fmt.Errorf("%w: got %s", common.ErrInvalidAmount, txn.Amount)
	}
	if txn.Type != model.TypeIncome && txn.Type != model.TypeExpense {
		return fmt.Errorf("%w: %q", common.ErrInvalidType, txn.Type)
	}
	if model.NormalizeCategoryName(txn.Category) == "" {
		return fmt.Errorf("%w: missing category", common.ErrInvalidInput)
	}
	return nil
}

// validateDateRange ensures a range's bounds are ordered.
func validateDateRange(start, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("%w: end date %s is before start date %s",
			common.ErrInvalidInput, end.Format(model.DateFormat), start.Format(model.DateFormat))
	}
	return nil
}
