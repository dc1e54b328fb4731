package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/cli"
	"github.com/pennywise-app/pennywise/internal/export"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <csv|json|xlsx>",
		Short: "Export expenses to a file",
		Long: `Export the expenses matching the active filter, newest first, to a CSV,
JSON, or XLSX file. With no --out, CSV and JSON go to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(args[0])
			if err != nil {
				return err
			}

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

			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				switch format {
				case export.FormatCSV:
					return export.WriteCSV(os.Stdout, expenses)
				case export.FormatJSON:
					return export.WriteJSON(os.Stdout, expenses)
				case export.FormatXLSX:
					// A binary workbook on a terminal helps no one.
					out = fmt.Sprintf("expenses_%d.xlsx", time.Now().Unix())
				}
			}

			if err := export.ToFile(out, format, expenses); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Exported %d expense(s) to %s", len(expenses), out)))
			return nil
		},
	}

	addFilterFlags(cmd)
	cmd.Flags().String("out", "", "output file path")

	return cmd
}
