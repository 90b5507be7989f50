package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGenresCommand(ctx *commandContext) *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "genres",
		Short: "List the genre vocabulary and ids",
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

			genres, err := svc.Genres(cmd.Context(), mediaType)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(genres))
			for _, g := range genres {
				rows = append(rows, []string{strconv.FormatInt(g.ID, 10), g.Name})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name"},
				rows,
				[]columnAlignment{alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "movie", "Media type: movie or tv")
	return cmd
}
