package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reel/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(cmd.Context(), func(h *history.Store) error {
				entries := h.Entries()
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No search history.")
					return nil
				}
				for i, q := range entries {
					fmt.Fprintf(out, "%2d. %s\n", i+1, q)
				}
				return nil
			})
		},
	}

	historyCmd.AddCommand(&cobra.Command{
		Use:   "rm <query>",
		Short: "Remove one query from the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(cmd.Context(), func(h *history.Store) error {
				return h.Remove(cmd.Context(), args[0])
			})
		},
	})

	historyCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear the search history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(cmd.Context(), func(h *history.Store) error {
				if err := h.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Search history cleared.")
				return nil
			})
		},
	})

	return historyCmd
}
