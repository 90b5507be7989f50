// Package catalog implements the remote catalog client: typed operations
// against the TMDB API with response normalization and TTL caching.
//
// Every list-returning operation routes through the shared response cache,
// keyed by operation name plus all parameters that affect the result, so two
// logically identical requests always share a key and two different requests
// never do.
package catalog

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"reel/internal/apicache"
	"reel/internal/catalog/tmdb"
	"reel/internal/config"
	"reel/internal/logging"
)

// Service is the remote catalog client. It owns its response cache and the
// image URL bases used to resolve poster and logo path fragments.
type Service struct {
	client    *tmdb.Client
	cache     *apicache.Cache
	imageBase string
	logoBase  string
	region    string
	logger    *slog.Logger
	rng       *rand.Rand
}

// Option configures a Service.
type Option func(*Service)

// WithRand overrides the random source used by GetRandom, for tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithCache overrides the response cache instance.
func WithCache(cache *apicache.Cache) Option {
	return func(s *Service) {
		if cache != nil {
			s.cache = cache
		}
	}
}

// New creates a catalog service from configuration. Construction fails when
// the TMDB credential is missing so no unkeyed request is ever attempted.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Service, error) {
	client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
	if err != nil {
		return nil, err
	}
	svc := &Service{
		client:    client,
		cache:     apicache.New(apicache.WithTTL(cfg.CacheTTL())),
		imageBase: cfg.TMDB.ImageBaseURL,
		logoBase:  cfg.TMDB.LogoBaseURL,
		region:    cfg.TMDB.Region,
		logger:    logging.NewComponentLogger(logger, "catalog"),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Region returns the default watch-provider region.
func (s *Service) Region() string {
	return s.region
}

func (s *Service) posterURL(path string) string {
	if path == "" {
		return ""
	}
	return s.imageBase + path
}

func (s *Service) logoURL(path string) string {
	if path == "" {
		return ""
	}
	return s.logoBase + path
}

// itemFrom normalizes a raw TMDB result, using fallbackType when the payload
// carries no media_type discriminator.
func (s *Service) itemFrom(r tmdb.Result, fallbackType MediaType) Item {
	mediaType := MediaType(r.MediaType)
	if mediaType != MediaMovie && mediaType != MediaTV {
		mediaType = fallbackType
	}
	title := r.Title
	if title == "" {
		title = r.Name
	}
	return Item{
		ID:          MakeID(mediaType, r.ID),
		Title:       title,
		Year:        yearOf(r.ReleaseDate, r.FirstAirDate),
		PosterURL:   s.posterURL(r.PosterPath),
		MediaType:   mediaType,
		VoteAverage: r.VoteAverage,
		VoteCount:   r.VoteCount,
		GenreIDs:    r.GenreIDs,
	}
}

func yearOf(dates ...string) string {
	for _, d := range dates {
		if len(d) >= 4 {
			return d[:4]
		}
	}
	return ""
}

// Genres returns the genre vocabulary for the given media type. Lists are
// cached alongside other responses; tv and movie vocabularies never share a
// key.
func (s *Service) Genres(ctx context.Context, mediaType MediaType) ([]Genre, error) {
	if mediaType != MediaTV {
		mediaType = MediaMovie
	}
	cacheKey := "genres:" + string(mediaType)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.([]Genre), nil
	}

	payload, err := s.client.GenreList(ctx, string(mediaType))
	if err != nil {
		return nil, err
	}
	genres := make([]Genre, 0, len(payload.Genres))
	for _, g := range payload.Genres {
		genres = append(genres, Genre{ID: g.ID, Name: g.Name})
	}
	s.cache.Set(cacheKey, genres)
	return genres, nil
}

// SearchCompanies searches production companies by name, returning at most
// ten matches. Blank queries resolve to an empty list without a network call.
func (s *Service) SearchCompanies(ctx context.Context, query string) ([]Company, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	results, err := s.client.SearchCompany(ctx, query)
	if err != nil {
		s.logger.Debug("company search failed", logging.Error(err))
		return nil, nil
	}
	if len(results) > 10 {
		results = results[:10]
	}
	companies := make([]Company, 0, len(results))
	for _, r := range results {
		companies = append(companies, Company{ID: r.ID, Name: r.Name})
	}
	return companies, nil
}

// SearchPeople searches people by name, returning at most ten matches.
func (s *Service) SearchPeople(ctx context.Context, query string) ([]Person, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	results, err := s.client.SearchPerson(ctx, query)
	if err != nil {
		s.logger.Debug("person search failed", logging.Error(err))
		return nil, nil
	}
	if len(results) > 10 {
		results = results[:10]
	}
	people := make([]Person, 0, len(results))
	for _, r := range results {
		people = append(people, Person{ID: r.ID, Name: r.Name})
	}
	return people, nil
}
