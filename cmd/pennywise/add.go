package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/cli"
	"github.com/pennywise-app/pennywise/internal/common"
	"github.com/pennywise-app/pennywise/internal/ledger"
	"github.com/pennywise-app/pennywise/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <amount> <description>",
		Short: "Record a new expense",
		Long: `Record a new expense. The amount is a positive dollar value, the
description free text. Category defaults to Other; the date defaults to today.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amountText, description := args[0], args[1]

			if err := ledger.Validate(amountText, description); err != nil {
				return common.NewUserError("invalid expense", err)
			}
			amount, err := strconv.ParseFloat(amountText, 64)
			if err != nil {
				return common.NewUserError("invalid expense", common.ErrInvalidAmount)
			}

			category := model.CategoryOther
			if name, _ := cmd.Flags().GetString("category"); name != "" {
				category, err = model.ParseCategory(name)
				if err != nil {
					return err
				}
			}

			date := time.Now()
			if raw, _ := cmd.Flags().GetString("date"); raw != "" {
				date, err = time.ParseInLocation(dateLayout, raw, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", raw, err)
				}
			}

			ctx := cmd.Context()
			l, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expense := model.NewExpense(amount, category, description, date)
			if err := l.Add(ctx, expense); err != nil {
				return err
			}

			fmt.Printf("%s %s %s (%s, %s)\n",
				cli.SuccessStyle.Render("Added"),
				expense.FormattedAmount(),
				expense.Description,
				cli.CategoryStyle(expense.Category).Render(string(expense.Category)),
				expense.FormattedDate())
			return nil
		},
	}

	cmd.Flags().String("category", "", "expense category (default: Other)")
	cmd.Flags().String("date", "", "expense date (YYYY-MM-DD, default: today)")

	return cmd
}
