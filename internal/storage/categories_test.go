package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/pennyflow/internal/common"
)

func TestSQLiteStorage_GetOrCreateCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantErr  error
	}{
		{name: "creates new category", input: "groceries", wantName: "groceries"},
		{name: "normalizes case", input: "Groceries", wantName: "groceries"},
		{name: "normalizes whitespace", input: "  groceries  ", wantName: "groceries"},
		{name: "returns seeded default", input: "food", wantName: "food"},
		{name: "rejects empty name", input: "", wantErr: common.ErrInvalidInput},
		{name: "rejects whitespace-only name", input: "   ", wantErr: common.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := createTestStorage(t)
			ctx := context.Background()

			cat, err := store.GetOrCreateCategory(ctx, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetOrCreateCategory(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetOrCreateCategory(%q) unexpected error: %v", tt.input, err)
			}
			if cat.Name != tt.wantName {
				t.Errorf("GetOrCreateCategory(%q).Name = %q, want %q", tt.input, cat.Name, tt.wantName)
			}
			if cat.ID == 0 {
				t.Error("expected a non-zero category ID")
			}
		})
	}
}

func TestSQLiteStorage_GetOrCreateCategoryIdempotent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	first, err := store.GetOrCreateCategory(ctx, "Dining Out")
	if err != nil {
		t.Fatalf("first GetOrCreateCategory failed: %v", err)
	}

	// Different casing and padding must resolve to the same row.
	for _, variant := range []string{"dining out", "DINING OUT", " Dining Out "} {
		cat, err := store.GetOrCreateCategory(ctx, variant)
		if err != nil {
			t.Fatalf("GetOrCreateCategory(%q) failed: %v", variant, err)
		}
		if cat.ID != first.ID {
			t.Errorf("GetOrCreateCategory(%q).ID = %d, want %d", variant, cat.ID, first.ID)
		}
	}
}

func TestSQLiteStorage_GetCategoryByName(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	cat, err := store.GetCategoryByName(ctx, "Food")
	if err != nil {
		t.Fatalf("GetCategoryByName failed: %v", err)
	}
	if cat == nil {
		t.Fatal("expected seeded category 'food', got nil")
	}
	if cat.Name != "food" {
		t.Errorf("GetCategoryByName(%q).Name = %q, want %q", "Food", cat.Name, "food")
	}

	missing, err := store.GetCategoryByName(ctx, "does-not-exist")
	if err != nil {
		t.Fatalf("GetCategoryByName failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown category, got %+v", missing)
	}
}

func TestSQLiteStorage_GetCategories(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	categories, err := store.GetCategories(ctx)
	if err != nil {
		t.Fatalf("GetCategories failed: %v", err)
	}

	// Migration v2 seeds the default taxonomy.
	if len(categories) != 10 {
		t.Fatalf("expected 10 seeded categories, got %d", len(categories))
	}
	for i := 1; i < len(categories); i++ {
		if categories[i-1].Name >= categories[i].Name {
			t.Errorf("categories not ordered by name: %q before %q", categories[i-1].Name, categories[i].Name)
		}
	}

	if _, err := store.GetOrCreateCategory(ctx, "zoo"); err != nil {
		t.Fatalf("GetOrCreateCategory failed: %v", err)
	}
	categories, err = store.GetCategories(ctx)
	if err != nil {
		t.Fatalf("GetCategories failed: %v", err)
	}
	if len(categories) != 11 {
		t.Errorf("expected 11 categories after create, got %d", len(categories))
	}
}
