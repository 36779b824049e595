package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pennyflow/internal/cli"
	"github.com/Veraticus/pennyflow/internal/common"
	"github.com/Veraticus/pennyflow/internal/model"
)

func listCmd() *cobra.Command {
	var (
		limit   int
		typeStr string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var typeFilter *model.TransactionType
			if typeStr != "all" {
				t, err := model.ParseTransactionType(typeStr)
				if err != nil {
					return fmt.Errorf("%w: %v", common.ErrInvalidType, err)
				}
				typeFilter = &t
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

			transactions, err := store.ListTransactions(ctx, limit, typeFilter)
			if err != nil {
				return err
			}

			if len(transactions) == 0 {
				cmd.Println(cli.SubtleStyle.Render("No transactions found"))
				return nil
			}

			cmd.Println(cli.FormatTitle(fmt.Sprintf("Recent Transactions (%s)", typeStr)))

			rows := make([][]string, 0, len(transactions))
			for _, txn := range transactions {
				rows = append(rows, []string{
					strconv.FormatInt(txn.ID, 10),
					txn.Date.Format(model.DateFormat),
					txn.Description,
					txn.Category,
					string(txn.Type),
					cli.FormatAmount(formatMoney(txn.Amount), txn.Type == model.TypeIncome),
				})
			}
			cmd.Print(cli.RenderTable(
				[]string{"ID", "Date", "Description", "Category", "Type", "Amount"},
				rows))

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "number of transactions to show")
	cmd.Flags().StringVarP(&typeStr, "type", "t", "all", "filter by transaction type (income, expense, all)")

	return cmd
}
