package catalog

import (
	"context"
	"strings"

	"reel/internal/catalog/tmdb"
	"reel/internal/faults"
	"reel/internal/logging"
)

// GetDetail fetches the full detail view for a catalog item. It fails with
// the not-found marker when the id cannot be parsed or the upstream reports
// absence.
func (s *Service) GetDetail(ctx context.Context, id string) (Detail, error) {
	mediaType, tmdbID, ok := ParseID(id)
	if !ok {
		return Detail{}, faults.Wrap(faults.ErrNotFound, "catalog", "detail", "invalid id "+id, nil)
	}

	cacheKey := "detail:" + id
	if cached, hit := s.cache.Get(cacheKey); hit {
		return cached.(Detail), nil
	}

	payload, err := s.client.Details(ctx, string(mediaType), tmdbID)
	if err != nil {
		return Detail{}, err
	}

	title := payload.Title
	if title == "" {
		title = payload.Name
	}
	releaseDate := payload.ReleaseDate
	if releaseDate == "" {
		releaseDate = payload.FirstAirDate
	}

	genreNames := make([]string, 0, len(payload.Genres))
	genreIDs := make([]int64, 0, len(payload.Genres))
	for _, g := range payload.Genres {
		genreNames = append(genreNames, g.Name)
		genreIDs = append(genreIDs, g.ID)
	}
	countries := make([]string, 0, len(payload.ProductionCountries))
	for _, c := range payload.ProductionCountries {
		countries = append(countries, c.Name)
	}

	detail := Detail{
		Item: Item{
			ID:          id,
			Title:       title,
			Year:        yearOf(releaseDate),
			PosterURL:   s.posterURL(payload.PosterPath),
			MediaType:   mediaType,
			VoteAverage: payload.VoteAverage,
			VoteCount:   payload.VoteCount,
			GenreIDs:    genreIDs,
		},
		Plot:                payload.Overview,
		Genres:              strings.Join(genreNames, ", "),
		Runtime:             payload.Runtime,
		Status:              payload.Status,
		Tagline:             payload.Tagline,
		Homepage:            payload.Homepage,
		IMDBID:              payload.IMDBID,
		OriginalLanguage:    payload.OriginalLanguage,
		ReleaseDate:         releaseDate,
		Budget:              payload.Budget,
		Revenue:             payload.Revenue,
		ProductionCountries: strings.Join(countries, ", "),
	}

	s.cache.Set(cacheKey, detail)
	return detail, nil
}

// GetSimilar returns titles similar to the given item. Up to twenty results
// are cached; the returned slice is capped at limit. Failures of any kind
// degrade to an empty list, never an error, since similar titles feed an
// optional view.
func (s *Service) GetSimilar(ctx context.Context, id string, limit int) []Item {
	mediaType, tmdbID, ok := ParseID(id)
	if !ok {
		return nil
	}
	if limit <= 0 {
		limit = 6
	}

	cacheKey := "similar:" + id
	if cached, hit := s.cache.Get(cacheKey); hit {
		return capItems(cached.([]Item), limit)
	}

	payload, err := s.client.Similar(ctx, string(mediaType), tmdbID)
	if err != nil {
		s.logger.Debug("similar fetch failed", logging.String("id", id), logging.Error(err))
		return nil
	}

	results := payload.Results
	if len(results) > 20 {
		results = results[:20]
	}
	// Similar endpoints return items of the same kind as the subject without
	// a media_type discriminator.
	items := s.itemsFrom(results, mediaType)
	s.cache.Set(cacheKey, items)
	return capItems(items, limit)
}

func capItems(items []Item, limit int) []Item {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

// GetTrending returns trending titles for the given media type and window
// ("day" or "week").
func (s *Service) GetTrending(ctx context.Context, mediaType MediaType, window string) ([]Item, error) {
	if mediaType == "" {
		mediaType = MediaMovie
	}
	if window != "week" {
		window = "day"
	}

	cacheKey := "trending:" + string(mediaType) + ":" + window
	if cached, hit := s.cache.Get(cacheKey); hit {
		return cached.([]Item), nil
	}

	payload, err := s.client.Trending(ctx, string(mediaType), window)
	if err != nil {
		return nil, err
	}

	items := s.itemsFrom(payload.Results, mediaType)
	s.cache.Set(cacheKey, items)
	return items, nil
}

// GetVideos returns the YouTube trailers for an item. All failures degrade
// to an empty list.
func (s *Service) GetVideos(ctx context.Context, id string) []Video {
	mediaType, tmdbID, ok := ParseID(id)
	if !ok {
		return nil
	}

	cacheKey := "videos:" + id
	if cached, hit := s.cache.Get(cacheKey); hit {
		return cached.([]Video)
	}

	payload, err := s.client.Videos(ctx, string(mediaType), tmdbID)
	if err != nil {
		s.logger.Debug("videos fetch failed", logging.String("id", id), logging.Error(err))
		return nil
	}

	videos := make([]Video, 0, len(payload.Results))
	for _, v := range payload.Results {
		if v.Site != "YouTube" || v.Type != "Trailer" {
			continue
		}
		videos = append(videos, Video{Key: v.Key, Name: v.Name, Type: v.Type})
	}
	s.cache.Set(cacheKey, videos)
	return videos
}

// GetWatchProviders returns streaming/rent/buy offerings for an item in the
// given region, defaulting to the service region. It returns nil when the
// region has no data or on any failure.
func (s *Service) GetWatchProviders(ctx context.Context, id, region string) *Providers {
	mediaType, tmdbID, ok := ParseID(id)
	if !ok {
		return nil
	}
	if region == "" {
		region = s.region
	}

	cacheKey := "providers:" + id + ":" + region
	if cached, hit := s.cache.Get(cacheKey); hit {
		return cached.(*Providers)
	}

	payload, err := s.client.WatchProviders(ctx, string(mediaType), tmdbID)
	if err != nil {
		s.logger.Debug("providers fetch failed", logging.String("id", id), logging.Error(err))
		return nil
	}
	regionData, found := payload.Results[region]
	if !found {
		return nil
	}

	providers := &Providers{
		Flatrate: s.offersFrom(regionData.Flatrate),
		Rent:     s.offersFrom(regionData.Rent),
		Buy:      s.offersFrom(regionData.Buy),
	}
	s.cache.Set(cacheKey, providers)
	return providers
}

func (s *Service) offersFrom(providers []tmdb.Provider) []ProviderOffer {
	offers := make([]ProviderOffer, 0, len(providers))
	for _, p := range providers {
		offers = append(offers, ProviderOffer{ID: p.ProviderID, Name: p.ProviderName, Logo: s.logoURL(p.LogoPath)})
	}
	return offers
}

// GetCredits returns reshaped credits: all directors, writers de-duplicated
// by name, and the first twelve cast members. It returns nil on any failure.
func (s *Service) GetCredits(ctx context.Context, id string) *Credits {
	mediaType, tmdbID, ok := ParseID(id)
	if !ok {
		return nil
	}

	cacheKey := "credits:" + id
	if cached, hit := s.cache.Get(cacheKey); hit {
		return cached.(*Credits)
	}

	payload, err := s.client.Credits(ctx, string(mediaType), tmdbID)
	if err != nil {
		s.logger.Debug("credits fetch failed", logging.String("id", id), logging.Error(err))
		return nil
	}

	var directors []CrewMember
	writerSeen := make(map[string]struct{})
	var writers []CrewMember
	for _, c := range payload.Crew {
		switch c.Job {
		case "Director":
			directors = append(directors, CrewMember{Name: c.Name, ProfilePath: c.ProfilePath})
		case "Writer", "Screenplay", "Original Story", "Story":
			if _, dup := writerSeen[c.Name]; dup {
				continue
			}
			writerSeen[c.Name] = struct{}{}
			writers = append(writers, CrewMember{Name: c.Name, Job: c.Job})
		}
	}

	cast := payload.Cast
	if len(cast) > 12 {
		cast = cast[:12]
	}
	castMembers := make([]CastMember, 0, len(cast))
	for _, c := range cast {
		castMembers = append(castMembers, CastMember{
			ID:          c.ID,
			Name:        c.Name,
			Character:   c.Character,
			ProfilePath: c.ProfilePath,
		})
	}

	credits := &Credits{Directors: directors, Writers: writers, Cast: castMembers}
	s.cache.Set(cacheKey, credits)
	return credits
}
