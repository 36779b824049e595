package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pennyflow/internal/cli"
	"github.com/Veraticus/pennyflow/internal/report"
)

func trendCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show monthly income and expense totals for a year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if year == 0 {
				year = time.Now().Year()
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("failed to close storage", "error", closeErr)
				}
			}()

			trend, err := report.NewEngine(store).MonthlyTrend(ctx, year)
			if err != nil {
				return err
			}

			cmd.Println(cli.FormatTitle(fmt.Sprintf("Monthly Trend - %d", year)))

			rows := make([][]string, 0, len(trend))
			for _, m := range trend {
				rows = append(rows, []string{
					m.Month.String(),
					cli.FormatAmount(formatMoney(m.Income), true),
					cli.FormatAmount(formatMoney(m.Expense), false),
				})
			}
			cmd.Print(cli.RenderTable([]string{"Month", "Income", "Expenses"}, rows))

			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "year (default current)")

	return cmd
}
