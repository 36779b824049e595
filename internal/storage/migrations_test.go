package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestMigrate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	var version int
	if err := store.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("Failed to read schema version: %v", err)
	}
	if version != ExpectedSchemaVersion {
		t.Errorf("schema version = %d, want %d", version, ExpectedSchemaVersion)
	}

	// Running again must be a no-op.
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}

	// Both tables exist and the default categories are seeded exactly once.
	var count int
	if err := store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		t.Fatalf("Failed to count categories: %v", err)
	}
	if count != 10 {
		t.Errorf("seeded categories = %d, want 10", count)
	}

	if err := store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count); err != nil {
		t.Fatalf("transactions table missing: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty transactions table, got %d rows", count)
	}
}

func TestMigrationVersionsAreOrdered(t *testing.T) {
	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version <= migrations[i-1].Version {
			t.Errorf("migration versions out of order at index %d: %d after %d",
				i, migrations[i].Version, migrations[i-1].Version)
		}
	}
	if migrations[len(migrations)-1].Version != ExpectedSchemaVersion {
		t.Errorf("last migration version = %d, want ExpectedSchemaVersion %d",
			migrations[len(migrations)-1].Version, ExpectedSchemaVersion)
	}
}
