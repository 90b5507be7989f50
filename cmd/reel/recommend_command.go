package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reel/internal/catalog"
	"reel/internal/lists"
	"reel/internal/recommend"
)

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var (
		typeFlag  string
		limitFlag int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Suggest titles based on your high-rated watched list",
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

			return ctx.withLists(cmd.Context(), func(store *lists.Store) error {
				out := cmd.OutOrStdout()
				items, seeds, err := suggestions(cmd.Context(), svc, store, mediaType, limitFlag)
				if err != nil {
					return err
				}
				if len(seeds) == 0 {
					fmt.Fprintln(out, "Rate a few watched titles 8 or higher first; recommendations build on those.")
					return nil
				}
				fmt.Fprintf(out, "Based on your taste for: %s\n\n", strings.Join(seeds, ", "))
				if len(items) == 0 {
					fmt.Fprintln(out, "No suggestions right now; try again later or widen your ratings.")
					return nil
				}
				fmt.Fprintln(out, itemTable(items))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "movie", "Media type: movie or tv")
	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 12, "Maximum number of suggestions")
	return cmd
}

// suggestions builds the personalized list: the user's top genres seed a
// quality-gated discover that excludes everything already on a list. The
// discover applies its own quality thresholds, including the relaxed
// fallback pass, so its output is used as returned. The seed genre names
// come back even when nothing matched, so callers can distinguish "no
// taste signal yet" from "nothing to suggest".
func suggestions(ctx context.Context, svc *catalog.Service, store *lists.Store, mediaType catalog.MediaType, limit int) ([]catalog.Item, []string, error) {
	watched := store.Entries(lists.ListWatched)
	top := recommend.TopGenresFromHighRatedWatched(watched, store.Rating, 0, 0)
	if len(top) == 0 {
		return nil, nil, nil
	}
	names := make([]string, 0, len(top))
	for _, g := range top {
		names = append(names, g.Name)
	}

	vocabulary, err := svc.Genres(ctx, mediaType)
	if err != nil {
		return nil, names, err
	}
	genreIDs := recommend.GenreNamesToIDs(vocabulary, names)
	if len(genreIDs) == 0 {
		return nil, names, nil
	}

	items := svc.DiscoverForYou(ctx, catalog.ForYouQuery{
		GenreIDs:    genreIDs,
		ExcludeKeys: excludeKeysFrom(store),
		Type:        mediaType,
		Limit:       limit,
	})
	return items, names, nil
}

// excludeKeysFrom collects the exclusion keys of everything already on any
// of the user's lists.
func excludeKeysFrom(store *lists.Store) map[string]struct{} {
	exclude := make(map[string]struct{})
	for _, list := range []lists.List{lists.ListFavorites, lists.ListWatchlist, lists.ListWatched} {
		for _, entry := range store.Entries(list) {
			if key := catalog.ExcludeKey(entry.ID); key != "" {
				exclude[key] = struct{}{}
			}
		}
	}
	return exclude
}
