package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pennyflow/internal/cli"
	"github.com/Veraticus/pennyflow/internal/report"
)

func summaryCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show financial summary for a month",
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

			cmd.Println(cli.FormatTitle(fmt.Sprintf("Financial Summary - %s", start.Format("January 2006"))))
			cmd.Printf("%s  %s\n", cli.IncomeStyle.Render("Total Income: "), formatMoney(summary.TotalIncome))
			cmd.Printf("%s  %s\n", cli.ExpenseStyle.Render("Total Expenses:"), formatMoney(summary.TotalExpenses))
			cmd.Printf("%s  %s\n", cli.FormatAmount("Net Balance:   ", summary.Net.Sign() >= 0), formatMoney(summary.Net))

			if len(summary.ByCategory) == 0 {
				return nil
			}

			cmd.Println()
			rows := make([][]string, 0, len(summary.ByCategory))
			for _, ct := range summary.ByCategory {
				rows = append(rows, []string{
					ct.Category,
					formatMoney(ct.Amount),
					ct.Percent.StringFixed(1) + "%",
				})
			}
			cmd.Print(cli.RenderTable([]string{"Category", "Amount", "Share"}, rows))

			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "month (1-12, default current)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "year (default current)")

	return cmd
}
