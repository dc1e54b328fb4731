package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/cli"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id> [id...]",
		Short: "Delete one or more expenses",
		Long: `Delete the expenses with the given IDs. An unknown ID is skipped without
error. Use 'pennywise list --ids' to find IDs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			before := len(l.Expenses())
			for _, id := range args {
				if err := l.Delete(ctx, id); err != nil {
					return err
				}
			}
			removed := before - len(l.Expenses())

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted %d expense(s).", removed)))
			return nil
		},
	}
}

func clearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every expense",
		Long:  `Delete the entire expense collection, in memory and on disk. Requires --force.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				fmt.Println(cli.WarningStyle.Render("This deletes every expense. Re-run with --force to confirm."))
				return nil
			}

			ctx := cmd.Context()
			l, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := l.DeleteAll(ctx); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("All expenses deleted."))
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "actually delete everything")

	return cmd
}
