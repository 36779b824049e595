package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pennyflow/internal/model"
)

func TestExportCSV(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	addEntry(t, store, "2024-11-01", "2500.00", "salary", model.TypeIncome)
	addEntry(t, store, "2024-11-05", "45.50", "food", model.TypeExpense)

	transactions, err := store.GetAllTransactions(ctx)
	require.NoError(t, err)

	var buf bytes.Buffer
	count, err := ExportCSV(&buf, transactions)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	assert.Equal(t, []string{"id", "date", "description", "category", "amount", "type"}, records[0])
	assert.Equal(t, "2024-11-01", records[1][1])
	assert.Equal(t, "salary", records[1][3])
	assert.Equal(t, "income", records[1][5])
}

func TestExportCSVEmptyLedger(t *testing.T) {
	var buf bytes.Buffer
	count, err := ExportCSV(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Header only.
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}

func TestExportCSVRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	addEntry(t, store, "2024-11-01", "2500.00", "salary", model.TypeIncome)
	addEntry(t, store, "2024-11-05", "45.50", "food", model.TypeExpense)
	addEntry(t, store, "2024-11-10", "15.00", "transport", model.TypeExpense)

	original, err := store.GetAllTransactions(ctx)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = ExportCSV(&buf, original)
	require.NoError(t, err)

	// Re-insert every exported row into a fresh ledger.
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	reimported := newTestStore(t)
	for _, record := range records[1:] {
		parsed, dateErr := time.Parse(model.DateFormat, record[1])
		require.NoError(t, dateErr)
		txn := model.Transaction{
			Date:        parsed,
			Description: record[2],
			Category:    record[3],
			Amount:      decimal.RequireFromString(record[4]),
			Type:        model.TransactionType(record[5]),
		}
		_, addErr := reimported.AddTransaction(ctx, &txn)
		require.NoError(t, addErr)
	}

	restored, err := reimported.GetAllTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, restored, len(original))

	// Identifiers may differ; everything else must match.
	for i := range original {
		assert.True(t, restored[i].Amount.Equal(original[i].Amount),
			"row %d amount = %s, want %s", i, restored[i].Amount, original[i].Amount)
		assert.Equal(t, original[i].Description, restored[i].Description)
		assert.Equal(t, original[i].Category, restored[i].Category)
		assert.Equal(t, original[i].Type, restored[i].Type)
		assert.Equal(t, original[i].Date.Format(model.DateFormat), restored[i].Date.Format(model.DateFormat))
	}
}
