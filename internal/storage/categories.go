package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/pennyflow/internal/common"
	"github.com/Veraticus/pennyflow/internal/model"
)

// GetCategories returns all categories ordered by name.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, created_at
		FROM categories
		ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// GetCategoryByName returns a category by its normalized name, or nil if it
// does not exist.
func (s *SQLiteStorage) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	normalized := model.NormalizeCategoryName(name)
	if normalized == "" {
		return nil, fmt.Errorf("%w: category name cannot be empty", common.ErrInvalidInput)
	}

	return getCategoryByNameTx(ctx, s.db, normalized)
}

// GetOrCreateCategory resolves a category by its normalized name, creating it
// if it does not already exist. The lookup and insert happen inside one
// transaction so the uniqueness constraint cannot race.
func (s *SQLiteStorage) GetOrCreateCategory(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	normalized := model.NormalizeCategoryName(name)
	if normalized == "" {
		return nil, fmt.Errorf("%w: category name cannot be empty", common.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	cat, err := getOrCreateCategoryTx(ctx, tx, normalized)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit category: %w", err)
	}
	return cat, nil
}

// queryer is the subset of sql.DB/sql.Tx needed for category lookups.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func getCategoryByNameTx(ctx context.Context, q queryer, normalized string) (*model.Category, error) {
	query := `
		SELECT id, name, created_at
		FROM categories
		WHERE name = ?`

	var cat model.Category
	err := q.QueryRowContext(ctx, query, normalized).Scan(&cat.ID, &cat.Name, &cat.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &cat, nil
}

func getOrCreateCategoryTx(ctx context.Context, q queryer, normalized string) (*model.Category, error) {
	existing, err := getCategoryByNameTx(ctx, q, normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	result, err := q.ExecContext(ctx,
		`INSERT INTO categories (name, created_at) VALUES (?, ?)`,
		normalized, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category ID: %w", err)
	}

	slog.Info("created new category", "name", normalized, "id", id)
	return &model.Category{
		ID:        id,
		Name:      normalized,
		CreatedAt: now,
	}, nil
}
