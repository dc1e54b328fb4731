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

func updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an existing expense",
		Long: `Replace the expense with the given ID. The record keeps its ID; amount,
category, description, and date are all replaced. Omitted flags keep the
current value. Use 'pennywise list --ids' to find IDs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			ctx := cmd.Context()
			l, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var current *model.Expense
			for _, e := range l.Expenses() {
				if e.ID == id {
					e := e
					current = &e
					break
				}
			}
			if current == nil {
				// The collection manager treats an unknown ID as a no-op, but
				// the CLI can do better than silence.
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("No expense with ID %s; nothing updated.", id)))
				return nil
			}

			updated, err := applyUpdateFlags(cmd, *current)
			if err != nil {
				return err
			}

			if err := l.Update(ctx, updated); err != nil {
				return err
			}

			fmt.Printf("%s %s %s (%s, %s)\n",
				cli.SuccessStyle.Render("Updated"),
				updated.FormattedAmount(),
				updated.Description,
				cli.CategoryStyle(updated.Category).Render(string(updated.Category)),
				updated.FormattedDate())
			return nil
		},
	}

	cmd.Flags().String("amount", "", "new amount")
	cmd.Flags().String("category", "", "new category")
	cmd.Flags().String("description", "", "new description")
	cmd.Flags().String("date", "", "new date (YYYY-MM-DD)")

	return cmd
}

// applyUpdateFlags merges the update flags into the current record, then
// validates the combined amount and description as one pair, exactly as the
// record will be stored.
func applyUpdateFlags(cmd *cobra.Command, current model.Expense) (model.Expense, error) {
	updated := current

	amountText, _ := cmd.Flags().GetString("amount")
	if amountText == "" {
		amountText = strconv.FormatFloat(current.Amount, 'f', -1, 64)
	}

	if name, _ := cmd.Flags().GetString("category"); name != "" {
		c, err := model.ParseCategory(name)
		if err != nil {
			return model.Expense{}, err
		}
		updated.Category = c
	}

	if description, _ := cmd.Flags().GetString("description"); description != "" {
		updated.Description = description
	}

	if raw, _ := cmd.Flags().GetString("date"); raw != "" {
		d, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return model.Expense{}, fmt.Errorf("invalid --date %q: %w", raw, err)
		}
		updated.Date = d
	}

	if err := ledger.Validate(amountText, updated.Description); err != nil {
		return model.Expense{}, common.NewUserError("invalid expense", err)
	}
	updated.Amount, _ = strconv.ParseFloat(amountText, 64)

	return updated, nil
}
