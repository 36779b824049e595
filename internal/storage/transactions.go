package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/pennyflow/internal/common"
	"github.com/Veraticus/pennyflow/internal/model"
)

const transactionColumns = `
	t.id, t.amount, t.description, t.category_id, c.name,
	t.transaction_type, t.date, t.created_at`

// AddTransaction validates and persists a new ledger entry, resolving (and
// if necessary creating) its category within the same scoped transaction.
// The assigned identifier is returned and also set on txn.
func (s *SQLiteStorage) AddTransaction(ctx context.Context, txn *model.Transaction) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransaction(txn); err != nil {
		return 0, err
	}

	// Transaction date defaults to today; the audit timestamp is separate.
	if txn.Date.IsZero() {
		txn.Date = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	cat, err := getOrCreateCategoryTx(ctx, tx, model.NormalizeCategoryName(txn.Category))
	if err != nil {
		return 0, err
	}

	now := time.Now()
	result, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (amount, description, category_id, transaction_type, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		txn.Amount, txn.Description, cat.ID, string(txn.Type),
		txn.Date.Format(model.DateFormat), now)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get transaction ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	txn.ID = id
	txn.CategoryID = cat.ID
	txn.Category = cat.Name
	txn.CreatedAt = now

	slog.Debug("added transaction",
		"id", id,
		"type", txn.Type,
		"amount", txn.Amount,
		"category", cat.Name)
	return id, nil
}

// ListTransactions returns up to limit transactions, newest first. Ordering
// is by transaction date descending with identifier descending as the tie
// breaker, so the most recently added entry wins ties. An optional type
// filter restricts results to income or expense entries.
func (s *SQLiteStorage) ListTransactions(ctx context.Context, limit int, typeFilter *model.TransactionType) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", common.ErrInvalidInput, limit)
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN categories c ON c.id = t.category_id`
	args := []any{}

	if typeFilter != nil {
		query += ` WHERE t.transaction_type = ?`
		args = append(args, string(*typeFilter))
	}

	query += `
		ORDER BY t.date DESC, t.id DESC
		LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// DeleteTransaction removes a ledger entry permanently. The referenced
// category is left in place. Returns common.ErrNotFound if no entry with
// the identifier exists.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: transaction %d", common.ErrNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	slog.Info("deleted transaction", "id", id)
	return nil
}

// GetTransactionsByDateRange returns all transactions dated within the
// inclusive range, oldest first. An empty result is not an error.
func (s *SQLiteStorage) GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.date >= ? AND t.date <= ?
		ORDER BY t.date, t.id`

	rows, err := s.db.QueryContext(ctx, query,
		start.Format(model.DateFormat), end.Format(model.DateFormat))
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by date range: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// GetAllTransactions returns the full ledger, oldest first.
func (s *SQLiteStorage) GetAllTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		ORDER BY t.date, t.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// GetTransactionCount returns the total number of ledger entries.
func (s *SQLiteStorage) GetTransactionCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var transactions []model.Transaction
	for rows.Next() {
		var (
			txn     model.Transaction
			txnType string
			dateStr string
		)
		if err := rows.Scan(
			&txn.ID, &txn.Amount, &txn.Description, &txn.CategoryID, &txn.Category,
			&txnType, &dateStr, &txn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		date, err := time.Parse(model.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transaction date %q: %w", dateStr, err)
		}
		txn.Date = date
		txn.Type = model.TransactionType(txnType)

		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return transactions, nil
}
