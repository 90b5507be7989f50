// Package recommend ranks catalog candidates for the "for you" section
// using the user's high-rated watched titles as a taste signal.
package recommend

import (
	"sort"
	"strings"

	"reel/internal/catalog"
	"reel/internal/lists"
)

const (
	// minVoteAverage and minVoteCount gate candidate quality.
	minVoteAverage = 7.0
	minVoteCount   = 200

	defaultMinRating = 8
	defaultTopN      = 5
)

// FilterAndRankBySimilarity drops excluded or low-quality candidates and
// orders the rest by genre overlap with the reference set, descending, then
// by vote average descending. The sort is stable beyond those two keys.
func FilterAndRankBySimilarity(candidates []catalog.Item, referenceGenreIDs []int64, excludeKeys map[string]struct{}) []catalog.Item {
	reference := make(map[int64]struct{}, len(referenceGenreIDs))
	for _, id := range referenceGenreIDs {
		reference[id] = struct{}{}
	}

	type scored struct {
		item    catalog.Item
		overlap int
	}
	kept := make([]scored, 0, len(candidates))
	for _, item := range candidates {
		if _, excluded := excludeKeys[catalog.ExcludeKey(item.ID)]; excluded {
			continue
		}
		if item.VoteAverage < minVoteAverage || item.VoteCount < minVoteCount {
			continue
		}
		overlap := 0
		for _, id := range item.GenreIDs {
			if _, hit := reference[id]; hit {
				overlap++
			}
		}
		kept = append(kept, scored{item: item, overlap: overlap})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].overlap != kept[j].overlap {
			return kept[i].overlap > kept[j].overlap
		}
		return kept[i].item.VoteAverage > kept[j].item.VoteAverage
	})

	out := make([]catalog.Item, 0, len(kept))
	for _, s := range kept {
		out = append(out, s.item)
	}
	return out
}

// GenreCount is one genre name with its occurrence count among the user's
// high-rated watched titles.
type GenreCount struct {
	Name  string
	Count int
}

// TopGenresFromHighRatedWatched counts genre names across watched entries
// whose looked-up rating is at least minRating, returning the topN by
// descending count with ties broken by first-seen order. Non-positive
// minRating and topN fall back to 8 and 5.
func TopGenresFromHighRatedWatched(watched []lists.Entry, lookup func(id string) (int, bool), minRating, topN int) []GenreCount {
	if len(watched) == 0 || lookup == nil {
		return nil
	}
	if minRating <= 0 {
		minRating = defaultMinRating
	}
	if topN <= 0 {
		topN = defaultTopN
	}

	counts := make(map[string]int)
	var order []string
	for _, entry := range watched {
		rating, rated := lookup(entry.ID)
		if !rated || rating < minRating {
			continue
		}
		for _, name := range splitGenres(entry.Genres) {
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	ranked := make([]GenreCount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, GenreCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func splitGenres(genres string) []string {
	parts := strings.Split(genres, ",")
	out := parts[:0:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GenreNamesToIDs maps genre names to their ids, matching case-insensitively
// and skipping names absent from the list.
func GenreNamesToIDs(genres []catalog.Genre, names []string) []int64 {
	if len(genres) == 0 || len(names) == 0 {
		return nil
	}
	byName := make(map[string]int64, len(genres))
	for _, g := range genres {
		byName[strings.ToLower(g.Name)] = g.ID
	}
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		if id, found := byName[strings.ToLower(name)]; found {
			ids = append(ids, id)
		}
	}
	return ids
}
