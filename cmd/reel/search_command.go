package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reel/internal/catalog"
	"reel/internal/history"
	"reel/internal/logging"
	"reel/internal/querystate"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var (
		typeFlag  string
		genreFlag string
		yearFlag  string
		sortFlag  string
		pageFlag  int
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search movies and TV shows",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) > 0 {
				query = args[0]
			}

			state := querystate.Normalize(querystate.State{
				Query:  query,
				Type:   typeFlag,
				Genre:  genreFlag,
				Year:   yearFlag,
				SortBy: sortFlag,
				Page:   pageFlag,
			})
			if !querystate.IsSearchable(state) {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to search: give a query or a --genre filter.")
				return nil
			}

			mediaType, err := parseMediaType(state.Type)
			if err != nil {
				return err
			}
			svc, err := ctx.ensureService()
			if err != nil {
				return err
			}

			result, err := svc.SearchTitles(cmd.Context(), state.Query, state.Page, catalog.Filters{
				Type:   mediaType,
				Genre:  state.Genre,
				Year:   state.Year,
				SortBy: state.SortBy,
			})
			if err != nil {
				return err
			}

			if strings.TrimSpace(state.Query) != "" {
				if err := ctx.withHistory(cmd.Context(), func(h *history.Store) error {
					return h.Add(cmd.Context(), state.Query)
				}); err != nil {
					ctx.ensureLogger().Warn("recording search history failed", logging.Error(err))
				}
			}

			out := cmd.OutOrStdout()
			if encoded := querystate.Encode(state); encoded != "" {
				fmt.Fprintf(out, "query: %s\n", encoded)
			}
			if len(result.Items) == 0 {
				fmt.Fprintln(out, "No results.")
				return nil
			}
			fmt.Fprintln(out, itemTable(result.Items))
			fmt.Fprintf(out, "page %d of %d (%d results)\n", state.Page, result.TotalPages, result.TotalResults)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "movie", "Media type: movie, tv, or all")
	cmd.Flags().StringVarP(&genreFlag, "genre", "g", "", "Genre id filter")
	cmd.Flags().StringVarP(&yearFlag, "year", "y", "", "Release year filter")
	cmd.Flags().StringVarP(&sortFlag, "sort", "s", "", "Sort order (popularity|vote_average|primary_release_date, .asc/.desc)")
	cmd.Flags().IntVarP(&pageFlag, "page", "p", 1, "Result page")
	return cmd
}
