package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/cli"
	"github.com/pennywise-app/pennywise/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the available categories",
		Long:  `Display the fixed category set with each category's icon and color token.`,
		Run: func(_ *cobra.Command, _ []string) {
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Category", "Icon", "Color"})

			for _, c := range model.Categories() {
				t.AppendRow(table.Row{
					cli.CategoryStyle(c).Render(string(c)),
					c.Icon(),
					c.Color(),
				})
			}

			t.Render()
		},
	}
}
