package report

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/Veraticus/pennyflow/internal/common"
	"github.com/Veraticus/pennyflow/internal/model"
)

// RenderChart writes a pie chart of the summary's expense breakdown as a PNG
// at outputPath, overwriting any existing file. Returns common.ErrEmptyData
// when the breakdown is empty rather than rendering a degenerate chart.
func RenderChart(summary *model.Summary, outputPath string) error {
	if summary == nil {
		return fmt.Errorf("%w: summary", common.ErrInvalidInput)
	}
	if len(summary.ByCategory) == 0 {
		return fmt.Errorf("%w: no expense transactions between %s and %s",
			common.ErrEmptyData,
			summary.Start.Format(model.DateFormat),
			summary.End.Format(model.DateFormat))
	}

	values := make([]chart.Value, 0, len(summary.ByCategory))
	for _, ct := range summary.ByCategory {
		// Slice proportions are display-only; exact amounts stay in decimal.
		values = append(values, chart.Value{
			Value: ct.Amount.InexactFloat64(),
			Label: fmt.Sprintf("%s (%s%%)", ct.Category, ct.Percent),
		})
	}

	pie := chart.PieChart{
		Title:  fmt.Sprintf("Expenses by Category - %s", summary.Start.Format("January 2006")),
		Width:  800,
		Height: 800,
		Values: values,
	}

	// Render fully in memory so a failure never leaves a truncated
	// artifact at outputPath.
	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write chart file: %w", err)
	}

	slog.Info("chart saved", "path", outputPath, "categories", len(values))
	return nil
}
