package catalog

import (
	"context"
	"strconv"
	"strings"

	"reel/internal/catalog/tmdb"
	"reel/internal/logging"
)

type qualityThreshold struct {
	voteAverageGTE float64
	voteCountGTE   int
}

// DiscoverForYou pages a rating-sorted discover query, skipping excluded
// items, under a strict quality threshold; if that pass yields nothing it
// retries once with relaxed thresholds. Both passes starving returns an
// empty list. The operation never fails: it feeds an optional
// recommendation section.
func (s *Service) DiscoverForYou(ctx context.Context, query ForYouQuery) []Item {
	if len(query.GenreIDs) == 0 {
		return nil
	}
	limit := query.Limit
	if limit <= 0 {
		limit = 12
	}
	mediaType := query.Type
	if mediaType != MediaTV {
		mediaType = MediaMovie
	}

	genreStrs := make([]string, 0, len(query.GenreIDs))
	for _, id := range query.GenreIDs {
		genreStrs = append(genreStrs, strconv.FormatInt(id, 10))
	}
	genres := strings.Join(genreStrs, ",")

	attempts := []qualityThreshold{
		{voteAverageGTE: 7, voteCountGTE: 200},
		{voteAverageGTE: 6.5, voteCountGTE: 50},
	}

	const maxPages = 5
	for _, threshold := range attempts {
		var collected []Item
		for page := 1; page <= maxPages && len(collected) < limit; page++ {
			q := tmdb.DiscoverQuery{
				Genres:         genres,
				SortBy:         "vote_average.desc",
				Page:           page,
				VoteAverageGTE: threshold.voteAverageGTE,
				VoteCountGTE:   threshold.voteCountGTE,
			}
			payload, err := s.discoverPage(ctx, mediaType, q)
			if err != nil {
				s.logger.Debug("for-you discover page failed",
					logging.Int("page", page), logging.Error(err))
				break
			}

			for _, r := range payload.Results {
				item := s.itemFrom(r, mediaType)
				if _, excluded := query.ExcludeKeys[ExcludeKey(item.ID)]; excluded {
					continue
				}
				collected = append(collected, item)
				if len(collected) >= limit {
					break
				}
			}

			if payload.TotalPages <= page {
				break
			}
		}
		if len(collected) > 0 {
			return capItems(collected, limit)
		}
	}
	return nil
}

// discoverPage fetches one discover page, memoizing by the full parameter
// set so paging passes with identical thresholds share responses.
func (s *Service) discoverPage(ctx context.Context, mediaType MediaType, q tmdb.DiscoverQuery) (*tmdb.Response, error) {
	cacheKey := "discover:" + string(mediaType) + ":" + q.CacheKey()
	if cached, hit := s.cache.Get(cacheKey); hit {
		return cached.(*tmdb.Response), nil
	}

	var (
		payload *tmdb.Response
		err     error
	)
	if mediaType == MediaTV {
		payload, err = s.client.DiscoverTV(ctx, q)
	} else {
		payload, err = s.client.DiscoverMovie(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	s.cache.Set(cacheKey, payload)
	return payload, nil
}
