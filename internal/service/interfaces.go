// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/pennyflow/internal/model"
)

// Storage defines the contract for the ledger persistence layer.
type Storage interface {
	// Ledger operations
	AddTransaction(ctx context.Context, txn *model.Transaction) (int64, error)
	ListTransactions(ctx context.Context, limit int, typeFilter *model.TransactionType) ([]model.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error)
	GetAllTransactions(ctx context.Context) ([]model.Transaction, error)
	GetTransactionCount(ctx context.Context) (int, error)

	// Category registry
	GetOrCreateCategory(ctx context.Context, name string) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	GetCategories(ctx context.Context) ([]model.Category, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
