package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pennyflow/internal/cli"
	"github.com/Veraticus/pennyflow/internal/report"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all transactions to CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("failed to close storage", "error", closeErr)
				}
			}()

			transactions, err := store.GetAllTransactions(ctx)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			defer func() { _ = f.Close() }()

			count, err := report.ExportCSV(f, transactions)
			if err != nil {
				return err
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to: %s", count, output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "export.csv", "output CSV file")

	return cmd
}
