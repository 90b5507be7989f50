package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"reel/internal/lists"
)

func newRateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <id> <value>",
		Short: "Rate a title from 1 to 10",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rating must be a number: %q", args[1])
			}
			return ctx.withLists(cmd.Context(), func(store *lists.Store) error {
				if err := store.SetRating(cmd.Context(), args[0], value); err != nil {
					return err
				}
				stored, _ := store.Rating(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Rated %s %d/10.\n", args[0], stored)
				return nil
			})
		},
	}
}

func newUnrateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unrate <id>",
		Short: "Remove your rating for a title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLists(cmd.Context(), func(store *lists.Store) error {
				if err := store.ClearRating(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared rating for %s.\n", args[0])
				return nil
			})
		},
	}
}
