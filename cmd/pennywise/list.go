package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/cli"
	"github.com/pennywise-app/pennywise/internal/model"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, newest first",
		Long: `List the expenses matching the active filter criteria, newest first,
with the filtered total underneath.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := filterFromFlags(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			l, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			l.SetFilter(filter)
			expenses := l.FilteredExpenses()

			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses found. Use 'pennywise add' to record one."))
				return nil
			}

			showIDs, _ := cmd.Flags().GetBool("ids")
			renderExpenseTable(expenses, showIDs)

			fmt.Printf("\n%s %s",
				cli.BoldStyle.Render("Total:"),
				model.FormatUSD(l.TotalExpenses()))
			if filter.IsActive() {
				fmt.Print(cli.SubtleStyle.Render("  (filtered)"))
			}
			fmt.Println()
			return nil
		},
	}

	addFilterFlags(cmd)
	cmd.Flags().Bool("ids", false, "show expense IDs (needed for update/delete)")

	return cmd
}

func renderExpenseTable(expenses []model.Expense, showIDs bool) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	header := table.Row{"Date", "Category", "Amount", "Description"}
	if showIDs {
		header = append(header, "ID")
	}
	t.AppendHeader(header)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Amount", Align: text.AlignRight},
	})

	for _, e := range expenses {
		row := table.Row{
			e.FormattedDate(),
			cli.CategoryStyle(e.Category).Render(string(e.Category)),
			e.FormattedAmount(),
			e.Description,
		}
		if showIDs {
			row = append(row, e.ID)
		}
		t.AppendRow(row)
	}

	t.Render()
}
