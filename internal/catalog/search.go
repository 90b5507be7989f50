package catalog

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"reel/internal/catalog/tmdb"
)

const pageSize = 20

// SearchTitles searches movies and TV shows. With a query the text search
// endpoints are used; without one, discover browses by genre. A blank query
// with no genre filter resolves to an empty page without any network call.
//
// TMDB's single-type text search cannot filter by genre server-side, so
// genre is applied as a client-side post-filter there. For type "all"
// without a query, movie and TV discover pages are fetched concurrently,
// tagged, merged, and sorted client-side before slicing into pages of 20.
func (s *Service) SearchTitles(ctx context.Context, query string, page int, filters Filters) (SearchPage, error) {
	if page < 1 {
		page = 1
	}
	mediaType := filters.Type
	if mediaType == "" {
		mediaType = MediaMovie
	}
	query = strings.TrimSpace(query)

	cacheKey := fmt.Sprintf("search:%s:%d:%s:%s:%s:%s",
		query, page, filters.Year, mediaType, filters.Genre, filters.SortBy)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(SearchPage), nil
	}

	var (
		result SearchPage
		err    error
	)
	switch {
	case query != "" && mediaType == MediaAll:
		result, err = s.searchMulti(ctx, query, page, filters)
	case query != "":
		result, err = s.searchSingle(ctx, query, page, mediaType, filters)
	case filters.Genre != "" && mediaType == MediaAll:
		result, err = s.discoverMerged(ctx, page, filters)
	case filters.Genre != "":
		result, err = s.discoverSingle(ctx, page, mediaType, filters)
	default:
		return SearchPage{Items: []Item{}}, nil
	}
	if err != nil {
		return SearchPage{}, err
	}

	s.cache.Set(cacheKey, result)
	return result, nil
}

func (s *Service) searchMulti(ctx context.Context, query string, page int, filters Filters) (SearchPage, error) {
	payload, err := s.client.SearchMulti(ctx, query, page)
	if err != nil {
		return SearchPage{}, err
	}

	results := payload.Results[:0:0]
	for _, r := range payload.Results {
		if r.MediaType != string(MediaMovie) && r.MediaType != string(MediaTV) {
			continue
		}
		results = append(results, r)
	}
	results = filterByYear(results, filters.Year)
	results = filterByGenre(results, filters.Genre)

	total := payload.TotalResults
	if total == 0 {
		total = len(results)
	}
	return SearchPage{
		Items:        s.itemsFrom(results, MediaMovie),
		TotalResults: total,
		TotalPages:   pagesFor(total),
	}, nil
}

func (s *Service) searchSingle(ctx context.Context, query string, page int, mediaType MediaType, filters Filters) (SearchPage, error) {
	var (
		payload *tmdb.Response
		err     error
	)
	if mediaType == MediaTV {
		payload, err = s.client.SearchTV(ctx, query, page, filters.Year)
	} else {
		payload, err = s.client.SearchMovie(ctx, query, page, filters.Year)
	}
	if err != nil {
		return SearchPage{}, err
	}

	results := filterByGenre(payload.Results, filters.Genre)

	totalPages := payload.TotalPages
	if totalPages == 0 {
		totalPages = pagesFor(payload.TotalResults)
	}
	return SearchPage{
		Items:        s.itemsFrom(results, mediaType),
		TotalResults: payload.TotalResults,
		TotalPages:   totalPages,
	}, nil
}

func (s *Service) discoverSingle(ctx context.Context, page int, mediaType MediaType, filters Filters) (SearchPage, error) {
	q := tmdb.DiscoverQuery{
		Genres: filters.Genre,
		Year:   filters.Year,
		SortBy: sortParam(filters.SortBy),
		Page:   page,
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
		return SearchPage{}, err
	}

	totalPages := payload.TotalPages
	if totalPages == 0 {
		totalPages = pagesFor(payload.TotalResults)
	}
	return SearchPage{
		Items:        s.itemsFrom(payload.Results, mediaType),
		TotalResults: payload.TotalResults,
		TotalPages:   totalPages,
	}, nil
}

// discoverMerged issues the movie and TV discover calls concurrently, joins
// them, and paginates the merged order client-side. A failure in either call
// aborts the pair; partial merges would silently drop a whole media type.
func (s *Service) discoverMerged(ctx context.Context, page int, filters Filters) (SearchPage, error) {
	q := tmdb.DiscoverQuery{
		Genres: filters.Genre,
		Year:   filters.Year,
		SortBy: sortParam(filters.SortBy),
		Page:   page,
	}

	var movieRes, tvRes *tmdb.Response
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		payload, err := s.client.DiscoverMovie(gctx, q)
		if err != nil {
			return err
		}
		movieRes = payload
		return nil
	})
	g.Go(func() error {
		payload, err := s.client.DiscoverTV(gctx, q)
		if err != nil {
			return err
		}
		tvRes = payload
		return nil
	})
	if err := g.Wait(); err != nil {
		return SearchPage{}, err
	}

	merged := make([]tmdb.Result, 0, len(movieRes.Results)+len(tvRes.Results))
	for _, r := range movieRes.Results {
		r.MediaType = string(MediaMovie)
		merged = append(merged, r)
	}
	for _, r := range tvRes.Results {
		r.MediaType = string(MediaTV)
		merged = append(merged, r)
	}
	sortResults(merged, sortParam(filters.SortBy))

	total := movieRes.TotalResults + tvRes.TotalResults
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(merged) {
		start = len(merged)
	}
	if end > len(merged) {
		end = len(merged)
	}
	return SearchPage{
		Items:        s.itemsFrom(merged[start:end], MediaMovie),
		TotalResults: total,
		TotalPages:   pagesFor(total),
	}, nil
}

func (s *Service) itemsFrom(results []tmdb.Result, fallbackType MediaType) []Item {
	items := make([]Item, 0, len(results))
	for _, r := range results {
		items = append(items, s.itemFrom(r, fallbackType))
	}
	return items
}

func filterByYear(results []tmdb.Result, year string) []tmdb.Result {
	if year == "" {
		return results
	}
	filtered := results[:0:0]
	for _, r := range results {
		date := r.ReleaseDate
		if date == "" {
			date = r.FirstAirDate
		}
		if strings.HasPrefix(date, year) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func filterByGenre(results []tmdb.Result, genre string) []tmdb.Result {
	if genre == "" {
		return results
	}
	genreID, err := strconv.ParseInt(genre, 10, 64)
	if err != nil {
		return results
	}
	filtered := results[:0:0]
	for _, r := range results {
		for _, id := range r.GenreIDs {
			if id == genreID {
				filtered = append(filtered, r)
				break
			}
		}
	}
	return filtered
}

func sortParam(sortBy string) string {
	if sortBy == "" {
		return "popularity.desc"
	}
	return sortBy
}

// sortResults orders merged raw results by the requested sort field. Release
// dates are read from whichever of the movie or TV date fields is set.
func sortResults(results []tmdb.Result, sortBy string) {
	field, order, _ := strings.Cut(sortBy, ".")
	asc := order == "asc"

	value := func(r tmdb.Result) float64 {
		switch field {
		case "popularity":
			return r.Popularity
		case "vote_average":
			return r.VoteAverage
		case "primary_release_date", "first_air_date":
			date := r.ReleaseDate
			if date == "" {
				date = r.FirstAirDate
			}
			if date == "" {
				return 0
			}
			t, err := time.Parse("2006-01-02", date)
			if err != nil {
				return 0
			}
			return float64(t.Unix())
		default:
			return 0
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if asc {
			return value(results[i]) < value(results[j])
		}
		return value(results[i]) > value(results[j])
	})
}

func pagesFor(totalResults int) int {
	pages := (totalResults + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}
