package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Veraticus/pennyflow/internal/model"
)

// csvHeader is the fixed column order for exports. Files written with it can
// be re-parsed and re-inserted to reconstruct equivalent transactions.
var csvHeader = []string{"id", "date", "description", "category", "amount", "type"}

// ExportCSV serializes transactions to w in the fixed column order and
// returns the number of data rows written.
func ExportCSV(w io.Writer, transactions []model.Transaction) (int, error) {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range transactions {
		record := []string{
			strconv.FormatInt(txn.ID, 10),
			txn.Date.Format(model.DateFormat),
			txn.Description,
			txn.Category,
			txn.Amount.String(),
			string(txn.Type),
		}
		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return len(transactions), nil
}
