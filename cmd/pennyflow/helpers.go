package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/pennyflow/internal/common"
	"github.com/Veraticus/pennyflow/internal/config"
	"github.com/Veraticus/pennyflow/internal/service"
	"github.com/Veraticus/pennyflow/internal/storage"
)

// initStorage opens the ledger database and brings the schema up to date.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := config.DatabasePath()

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("failed to open ledger database at %s", dbPath),
			fmt.Errorf("%w: %v", common.ErrStorage, err))
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, common.NewUserError("failed to migrate ledger database", err)
	}

	return store, nil
}

// parseAmount converts a user-supplied amount string to an exact decimal.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", common.ErrInvalidAmount, s)
	}
	if amount.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: got %s", common.ErrInvalidAmount, amount)
	}
	return amount, nil
}

// formatMoney renders an amount for display with two decimal places.
func formatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
