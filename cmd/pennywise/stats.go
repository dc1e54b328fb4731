package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/analytics"
	"github.com/pennywise-app/pennywise/internal/cli"
	"github.com/pennywise-app/pennywise/internal/ledger"
	"github.com/pennywise-app/pennywise/internal/model"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the spending dashboard",
		Long: `Show aggregate statistics: filtered total, this month's total, top
category, daily average, the per-category breakdown, the most recent
expenses, and the six-month spending history per category.

Filter flags narrow the total, breakdown, top category, daily average, and
recent list. The this-month figure and the history always cover everything.`,
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
			renderDashboard(l)
			return nil
		},
	}

	addFilterFlags(cmd)

	return cmd
}

func renderDashboard(l *ledger.Ledger) {
	fmt.Println(cli.TitleStyle.Render("Spending dashboard"))

	fmt.Printf("%s %s\n", cli.BoldStyle.Render("Total (filtered):"), model.FormatUSD(l.TotalExpenses()))
	fmt.Printf("%s %s\n", cli.BoldStyle.Render("This month:"), model.FormatUSD(l.MonthlyTotal()))

	if top, ok := l.TopCategory(); ok {
		fmt.Printf("%s %s (%s)\n",
			cli.BoldStyle.Render("Top category:"),
			cli.CategoryStyle(top.Category).Render(string(top.Category)),
			model.FormatUSD(top.Total))
	} else {
		fmt.Printf("%s %s\n", cli.BoldStyle.Render("Top category:"), cli.SubtleStyle.Render("none"))
	}

	fmt.Printf("%s %s\n", cli.BoldStyle.Render("Daily average:"), model.FormatUSD(l.DailyAverage()))

	if breakdown := l.CategoryBreakdown(); len(breakdown) > 0 {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render("By category"))
		renderBreakdown(breakdown, l.TotalExpenses())
	}

	if recent := l.RecentExpenses(); len(recent) > 0 {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render("Recent expenses"))
		renderExpenseTable(recent, false)
	}

	fmt.Println()
	fmt.Println(cli.BoldStyle.Render("Last 6 months"))
	renderSeries(l.MonthlyExpensesByCategory(), time.Now())
}

func renderBreakdown(breakdown []analytics.CategoryTotal, total float64) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Category", "Total", "Share"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Total", Align: text.AlignRight},
		{Name: "Share", Align: text.AlignRight},
	})

	for _, entry := range breakdown {
		share := 0.0
		if total > 0 {
			share = entry.Total / total * 100
		}
		t.AppendRow(table.Row{
			cli.CategoryStyle(entry.Category).Render(string(entry.Category)),
			model.FormatUSD(entry.Total),
			fmt.Sprintf("%.1f%%", share),
		})
	}

	t.Render()
}

// renderSeries prints the six-month per-category history, oldest month on the
// left so the row reads left to right through time.
func renderSeries(series map[model.Category][]float64, now time.Time) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	header := table.Row{"Category"}
	configs := make([]table.ColumnConfig, 0, analytics.SeriesMonths)
	for offset := analytics.SeriesMonths - 1; offset >= 0; offset-- {
		month := model.StartOfMonth(now).AddDate(0, -offset, 0)
		name := month.Format("Jan")
		header = append(header, name)
		configs = append(configs, table.ColumnConfig{Name: name, Align: text.AlignRight})
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	for _, c := range model.Categories() {
		row := table.Row{cli.CategoryStyle(c).Render(string(c))}
		totals := series[c]
		for offset := analytics.SeriesMonths - 1; offset >= 0; offset-- {
			row = append(row, fmt.Sprintf("%.2f", totals[offset]))
		}
		t.AppendRow(row)
	}

	t.Render()
}
