package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"reel/internal/lists"
)

func newDataCommand(ctx *commandContext) *cobra.Command {
	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Export, import, or reset your lists and ratings",
	}

	dataCmd.AddCommand(newDataExportCommand(ctx))
	dataCmd.AddCommand(newDataImportCommand(ctx))
	dataCmd.AddCommand(newDataResetCommand(ctx))

	return dataCmd
}

func newDataExportCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write lists and ratings as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLists(cmd.Context(), func(store *lists.Store) error {
				exported, err := store.Export()
				if err != nil {
					return err
				}
				if outputFlag == "" {
					fmt.Fprintln(cmd.OutOrStdout(), exported)
					return nil
				}
				if err := os.WriteFile(outputFlag, []byte(exported+"\n"), 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported lists to %s\n", outputFlag)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Destination file (default: stdout)")
	return cmd
}

func newDataImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace lists and ratings from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}
			return ctx.withLists(cmd.Context(), func(store *lists.Store) error {
				if !store.Import(cmd.Context(), string(data)) {
					return fmt.Errorf("%s is not a recognized lists export", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Import complete.")
				return nil
			})
		},
	}
}

func newDataResetCommand(ctx *commandContext) *cobra.Command {
	var yesFlag bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all lists and ratings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yesFlag {
				fmt.Fprint(cmd.OutOrStdout(), "This deletes all lists and ratings. Type 'yes' to continue: ")
				var answer string
				fmt.Fscanln(cmd.InOrStdin(), &answer)
				if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}
			return ctx.withLists(cmd.Context(), func(store *lists.Store) error {
				if err := store.Reset(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All lists and ratings deleted.")
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
