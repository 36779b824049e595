package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pennyflow/internal/cli"
	"github.com/Veraticus/pennyflow/internal/report"
)

func chartCmd() *cobra.Command {
	var (
		month  int
		year   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Generate an expense pie chart",
		Long: `Render the month's per-category expense breakdown as a pie chart PNG.

Fails when the range contains no expense transactions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			start, end, err := report.MonthRange(month, year)
			if err != nil {
				return err
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

			summary, err := report.NewEngine(store).Summarize(ctx, start, end)
			if err != nil {
				return err
			}

			if err := report.RenderChart(summary, output); err != nil {
				return err
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Chart saved to: %s", output)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "month (1-12, default current)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "year (default current)")
	cmd.Flags().StringVarP(&output, "output", "o", "chart.png", "output filename")

	return cmd
}
