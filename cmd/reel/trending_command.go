package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTrendingCommand(ctx *commandContext) *cobra.Command {
	var (
		typeFlag   string
		windowFlag string
	)

	cmd := &cobra.Command{
		Use:   "trending",
		Short: "List trending titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mediaType, err := parseMediaType(typeFlag)
			if err != nil {
				return err
			}
			svc, err := ctx.ensureService()
			if err != nil {
				return err
			}

			items, err := svc.GetTrending(cmd.Context(), mediaType, windowFlag)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No trending titles right now.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), itemTable(items))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "movie", "Media type: movie or tv")
	cmd.Flags().StringVarP(&windowFlag, "window", "w", "day", "Trending window: day or week")
	return cmd
}
