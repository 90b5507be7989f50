package main

import (
	"fmt"
	"strings"

	"reel/internal/catalog"
)

func itemTable(items []catalog.Item) string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.ID,
			truncate(item.Title, 48),
			item.Year,
			string(item.MediaType),
			formatRating(item.VoteAverage, item.VoteCount),
		})
	}
	return renderTable(
		[]string{"ID", "Title", "Year", "Type", "Rating"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight},
	)
}

func formatRating(average float64, count int64) string {
	if count == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f (%d)", average, count)
}

// truncate shortens s to at most max runes. Titles arrive in whatever
// language the catalog serves, so slicing must never split a multibyte
// rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 0 {
		return ""
	}
	if max == 1 {
		return string(runes[:1])
	}
	return string(runes[:max-1]) + "…"
}

func crewNames(members []catalog.CrewMember) string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return strings.Join(names, ", ")
}

func offerNames(offers []catalog.ProviderOffer) string {
	names := make([]string, 0, len(offers))
	for _, o := range offers {
		names = append(names, o.Name)
	}
	return strings.Join(names, ", ")
}

func parseMediaType(value string) (catalog.MediaType, error) {
	switch value {
	case "", "movie":
		return catalog.MediaMovie, nil
	case "tv":
		return catalog.MediaTV, nil
	case "all":
		return catalog.MediaAll, nil
	default:
		return "", fmt.Errorf("unknown media type %q (expected movie, tv, or all)", value)
	}
}
