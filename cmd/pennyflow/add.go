package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pennyflow/internal/cli"
	"github.com/Veraticus/pennyflow/internal/common"
	"github.com/Veraticus/pennyflow/internal/model"
)

func addCmd() *cobra.Command {
	var (
		amountStr   string
		description string
		category    string
		typeStr     string
		dateStr     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new transaction",
		Long: `Record an income or expense transaction in the ledger.

The category is created automatically the first time its name is used.
Dates use YYYY-MM-DD and default to today.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// All validation happens before anything is written.
			amount, err := parseAmount(amountStr)
			if err != nil {
				return err
			}

			txnType, err := model.ParseTransactionType(typeStr)
			if err != nil {
				return fmt.Errorf("%w: %v", common.ErrInvalidType, err)
			}

			var date time.Time
			if dateStr != "" {
				date, err = time.Parse(model.DateFormat, dateStr)
				if err != nil {
					return fmt.Errorf("%w: %q is not a valid YYYY-MM-DD date", common.ErrInvalidDate, dateStr)
				}
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

			txn := model.Transaction{
				Date:        date,
				Description: description,
				Category:    category,
				Type:        txnType,
				Amount:      amount,
			}

			id, err := store.AddTransaction(ctx, &txn)
			if err != nil {
				return err
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Added %s #%d: %s - %s",
				txnType, id, description, formatMoney(amount))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountStr, "amount", "a", "", "transaction amount")
	cmd.Flags().StringVarP(&description, "description", "d", "", "transaction description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category (e.g. food, transport, salary)")
	cmd.Flags().StringVarP(&typeStr, "type", "t", "", "transaction type (income or expense)")
	cmd.Flags().StringVar(&dateStr, "date", "", "transaction date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
