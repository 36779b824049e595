package model

import (
	"strings"
	"time"
)

// Category represents a named grouping for transactions. Categories are
// created lazily the first time a transaction references them and are never
// deleted, so the set of categories forms a stable taxonomy.
type Category struct {
	CreatedAt time.Time
	Name      string
	ID        int64
}

// NormalizeCategoryName applies the canonical form used for category
// uniqueness: surrounding whitespace is trimmed and letters are lower-cased.
// "Food", " food " and "FOOD" all resolve to the same category.
func NormalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
