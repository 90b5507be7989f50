package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"reel/internal/lists"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Manage your favorites, watchlist, and watched list",
	}

	listCmd.AddCommand(newListAddCommand(ctx))
	listCmd.AddCommand(newListRemoveCommand(ctx))
	listCmd.AddCommand(newListToggleCommand(ctx))
	listCmd.AddCommand(newListShowCommand(ctx))

	return listCmd
}

func parseListName(value string) (lists.List, error) {
	switch value {
	case "favorites", "fav":
		return lists.ListFavorites, nil
	case "watchlist", "wl":
		return lists.ListWatchlist, nil
	case "watched":
		return lists.ListWatched, nil
	default:
		return "", fmt.Errorf("unknown list %q (expected favorites, watchlist, or watched)", value)
	}
}

// entryFor builds a list entry from catalog details so stored rows carry
// title, year, and genre data up front.
func entryFor(cmd *cobra.Command, ctx *commandContext, id string) (lists.Entry, error) {
	svc, err := ctx.ensureService()
	if err != nil {
		return lists.Entry{}, err
	}
	detail, err := svc.GetDetail(cmd.Context(), id)
	if err != nil {
		return lists.Entry{}, err
	}
	return lists.Entry{
		ID:          detail.ID,
		Title:       detail.Title,
		Year:        detail.Year,
		Poster:      detail.PosterURL,
		MediaType:   string(detail.MediaType),
		Genres:      detail.Genres,
		GenreIDs:    detail.GenreIDs,
		Runtime:     detail.Runtime,
		VoteAverage: detail.VoteAverage,
		VoteCount:   detail.VoteCount,
	}, nil
}

func newListAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <list> <id>",
		Short: "Add a title to a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := parseListName(args[0])
			if err != nil {
				return err
			}
			entry, err := entryFor(cmd, ctx, args[1])
			if err != nil {
				return err
			}
			return ctx.withLists(cmd.Context(), func(store *lists.Store) error {
				if err := store.Add(cmd.Context(), list, entry); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s.\n", entry.Title, list)
				return nil
			})
		},
	}
}

func newListRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <list> <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a title from a list",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := parseListName(args[0])
			if err != nil {
				return err
			}
			return ctx.withLists(cmd.Context(), func(store *lists.Store) error {
				if err := store.Remove(cmd.Context(), list, args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s.\n", args[1], list)
				return nil
			})
		},
	}
}

func newListToggleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <list> <id>",
		Short: "Add a title to a list, or remove it if already present",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := parseListName(args[0])
			if err != nil {
				return err
			}
			return ctx.withLists(cmd.Context(), func(store *lists.Store) error {
				id := args[1]
				var entry lists.Entry
				if store.Contains(list, id) {
					entry = lists.Entry{ID: id}
				} else {
					built, err := entryFor(cmd, ctx, id)
					if err != nil {
						return err
					}
					entry = built
				}
				added, err := store.Toggle(cmd.Context(), list, entry)
				if err != nil {
					return err
				}
				if added {
					fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s.\n", id, list)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s.\n", id, list)
				}
				return nil
			})
		},
	}
}

func newListShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <list>",
		Short: "Print the entries of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := parseListName(args[0])
			if err != nil {
				return err
			}
			return ctx.withLists(cmd.Context(), func(store *lists.Store) error {
				entries := store.Entries(list)
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintf(out, "Your %s list is empty.\n", list)
					return nil
				}
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					rating := "-"
					if value, rated := store.Rating(e.ID); rated {
						rating = fmt.Sprintf("%d/10", value)
					}
					rows = append(rows, []string{
						e.ID,
						truncate(e.Title, 48),
						e.Year,
						truncate(e.Genres, 32),
						rating,
						time.UnixMilli(e.AddedAt).Format("2006-01-02"),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Title", "Year", "Genres", "My Rating", "Added"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
}
