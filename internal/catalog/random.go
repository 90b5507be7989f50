package catalog

import (
	"context"

	"reel/internal/catalog/tmdb"
	"reel/internal/faults"
)

// maxDiscoverPage is the deepest page TMDB serves for discover queries.
const maxDiscoverPage = 500

// GetRandom picks a uniformly random title matching the filters. A first
// discover call learns the total page count, a random page is fetched, and
// one of its items is sampled. TV with a person filter goes through that
// person's TV acting credits instead, since discover/tv cannot filter by
// person. Fails with the no-results marker when either stage starves.
func (s *Service) GetRandom(ctx context.Context, filters RandomFilters) (Item, error) {
	mediaType := filters.Type
	if mediaType != MediaTV {
		mediaType = MediaMovie
	}

	if mediaType == MediaTV && filters.PersonID != "" {
		return s.randomFromPersonTVCredits(ctx, filters.PersonID)
	}

	q := tmdb.DiscoverQuery{
		Genres:    filters.Genre,
		Year:      filters.Year,
		SortBy:    "popularity.desc",
		Page:      1,
		CompanyID: filters.CompanyID,
		PersonID:  filters.PersonID,
	}

	first, err := s.discoverDirect(ctx, mediaType, q)
	if err != nil {
		return Item{}, err
	}
	totalPages := first.TotalPages
	if totalPages > maxDiscoverPage {
		totalPages = maxDiscoverPage
	}
	if totalPages < 1 {
		return Item{}, faults.Wrap(faults.ErrNoResults, "catalog", "random", "no titles match those filters", nil)
	}

	q.Page = s.rng.Intn(totalPages) + 1
	page, err := s.discoverDirect(ctx, mediaType, q)
	if err != nil {
		return Item{}, err
	}
	if len(page.Results) == 0 {
		return Item{}, faults.Wrap(faults.ErrNoResults, "catalog", "random", "no titles match those filters", nil)
	}

	pick := page.Results[s.rng.Intn(len(page.Results))]
	return s.itemFrom(pick, mediaType), nil
}

func (s *Service) randomFromPersonTVCredits(ctx context.Context, personID string) (Item, error) {
	person, err := s.client.PersonWithTVCredits(ctx, personID)
	if err != nil {
		return Item{}, err
	}
	credits := person.TVCredits.Cast
	if len(credits) == 0 {
		return Item{}, faults.Wrap(faults.ErrNoResults, "catalog", "random", "no shows credit that person", nil)
	}
	pick := credits[s.rng.Intn(len(credits))]
	return s.itemFrom(pick, MediaTV), nil
}

// discoverDirect bypasses the response cache: random sampling must observe
// fresh page data rather than replay a memoized pick.
func (s *Service) discoverDirect(ctx context.Context, mediaType MediaType, q tmdb.DiscoverQuery) (*tmdb.Response, error) {
	if mediaType == MediaTV {
		return s.client.DiscoverTV(ctx, q)
	}
	return s.client.DiscoverMovie(ctx, q)
}
