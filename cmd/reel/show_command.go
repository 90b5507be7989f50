package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reel/internal/catalog"
	"reel/internal/lists"
	"reel/internal/logging"
	"reel/internal/recommend"
)

// similarPool is how many similar results feed the ranking before slicing
// to the display limit.
const similarPool = 20

func newShowCommand(ctx *commandContext) *cobra.Command {
	var (
		regionFlag  string
		similarFlag int
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show full details for a title (id form: movie-603 or tv-1396)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.ensureService()
			if err != nil {
				return err
			}
			id := args[0]

			detail, err := svc.GetDetail(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", detail.Title, detail.Year)
			if detail.Tagline != "" {
				fmt.Fprintf(out, "%s\n", detail.Tagline)
			}
			fmt.Fprintln(out)
			if detail.Plot != "" {
				fmt.Fprintf(out, "%s\n\n", detail.Plot)
			}
			if detail.Genres != "" {
				fmt.Fprintf(out, "Genres:   %s\n", detail.Genres)
			}
			if detail.Runtime > 0 {
				fmt.Fprintf(out, "Runtime:  %d min\n", detail.Runtime)
			}
			if detail.VoteCount > 0 {
				fmt.Fprintf(out, "Rating:   %s\n", formatRating(detail.VoteAverage, detail.VoteCount))
			}
			if detail.Status != "" {
				fmt.Fprintf(out, "Status:   %s\n", detail.Status)
			}
			if detail.ReleaseDate != "" {
				fmt.Fprintf(out, "Released: %s\n", detail.ReleaseDate)
			}
			if detail.IMDBID != "" {
				fmt.Fprintf(out, "IMDB:     https://www.imdb.com/title/%s\n", detail.IMDBID)
			}

			if credits := svc.GetCredits(cmd.Context(), id); credits != nil {
				if len(credits.Directors) > 0 {
					fmt.Fprintf(out, "Directors: %s\n", crewNames(credits.Directors))
				}
				if len(credits.Writers) > 0 {
					fmt.Fprintf(out, "Writers:   %s\n", crewNames(credits.Writers))
				}
				if len(credits.Cast) > 0 {
					fmt.Fprintln(out, "\nCast:")
					for _, member := range credits.Cast {
						fmt.Fprintf(out, "  %s as %s\n", member.Name, member.Character)
					}
				}
			}

			if videos := svc.GetVideos(cmd.Context(), id); len(videos) > 0 {
				fmt.Fprintln(out, "\nTrailers:")
				for _, v := range videos {
					fmt.Fprintf(out, "  %s  https://www.youtube.com/watch?v=%s\n", v.Name, v.Key)
				}
			}

			region := regionFlag
			if region == "" {
				region = svc.Region()
			}
			if providers := svc.GetWatchProviders(cmd.Context(), id, region); providers != nil {
				fmt.Fprintf(out, "\nWhere to watch (%s):\n", region)
				if names := offerNames(providers.Flatrate); names != "" {
					fmt.Fprintf(out, "  Stream: %s\n", names)
				}
				if names := offerNames(providers.Rent); names != "" {
					fmt.Fprintf(out, "  Rent:   %s\n", names)
				}
				if names := offerNames(providers.Buy); names != "" {
					fmt.Fprintf(out, "  Buy:    %s\n", names)
				}
			}

			if similarFlag > 0 {
				if similar := similarTitles(cmd, ctx, detail, similarFlag); len(similar) > 0 {
					fmt.Fprintf(out, "\nBecause you liked %s:\n", detail.Title)
					fmt.Fprintln(out, itemTable(similar))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&regionFlag, "region", "", "Watch-provider region (2-letter code)")
	cmd.Flags().IntVar(&similarFlag, "similar", 6, "How many similar titles to list (0 disables)")
	return cmd
}

// similarTitles ranks a pool of similar results by genre overlap with the
// shown title, hiding anything already on the user's lists and the title
// itself. An unreadable list store degrades to excluding only the title.
func similarTitles(cmd *cobra.Command, ctx *commandContext, detail catalog.Detail, limit int) []catalog.Item {
	svc, err := ctx.ensureService()
	if err != nil {
		return nil
	}
	pool := svc.GetSimilar(cmd.Context(), detail.ID, similarPool)
	if len(pool) == 0 {
		return nil
	}

	exclude := map[string]struct{}{catalog.ExcludeKey(detail.ID): {}}
	if err := ctx.withLists(cmd.Context(), func(store *lists.Store) error {
		for key := range excludeKeysFrom(store) {
			exclude[key] = struct{}{}
		}
		return nil
	}); err != nil {
		ctx.ensureLogger().Debug("similar exclusions unavailable", logging.Error(err))
	}

	ranked := recommend.FilterAndRankBySimilarity(pool, detail.GenreIDs, exclude)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
