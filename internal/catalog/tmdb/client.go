// Package tmdb implements the raw HTTP client for The Movie Database API.
//
// It deals in TMDB wire types only; normalization into reel's domain shape
// happens in the catalog package. Every call requires the api_key credential;
// construction fails without one so no request is ever attempted unkeyed.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"reel/internal/faults"
)

// Client provides access to the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, faults.Wrap(faults.ErrConfiguration, "tmdb", "new", "api key required", nil)
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, faults.Wrap(faults.ErrConfiguration, "tmdb", "new", "base url required", nil)
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   strings.TrimSpace(language),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// get issues a GET against path with the standard credential and language
// parameters and decodes the JSON payload into out. Non-success responses
// surface the upstream status_message tagged with the remote or not-found
// marker.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" && params.Get("language") == "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return faults.Wrap(faults.ErrRemote, "tmdb", path, "execute request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var payload apiError
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		message := strings.TrimSpace(payload.StatusMessage)
		if message == "" {
			message = fmt.Sprintf("tmdb returned %d", resp.StatusCode)
		}
		marker := faults.ErrRemote
		if resp.StatusCode == http.StatusNotFound {
			marker = faults.ErrNotFound
		}
		return faults.Wrap(marker, "tmdb", path, message, nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
	}
	return nil
}

// SearchMovie searches movies by title. A non-zero year constrains the
// primary release year.
func (c *Client) SearchMovie(ctx context.Context, query string, page int, year string) (*Response, error) {
	params := url.Values{}
	params.Set("query", strings.TrimSpace(query))
	params.Set("page", strconv.Itoa(normalizePage(page)))
	if year != "" {
		params.Set("year", year)
	}
	var payload Response
	if err := c.get(ctx, "/search/movie", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SearchTV searches TV shows by title.
func (c *Client) SearchTV(ctx context.Context, query string, page int, year string) (*Response, error) {
	params := url.Values{}
	params.Set("query", strings.TrimSpace(query))
	params.Set("page", strconv.Itoa(normalizePage(page)))
	if year != "" {
		params.Set("first_air_date_year", year)
	}
	var payload Response
	if err := c.get(ctx, "/search/tv", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SearchMulti searches movies and TV shows in a single query. Results carry
// a media_type discriminator and may include people, which callers filter.
func (c *Client) SearchMulti(ctx context.Context, query string, page int) (*Response, error) {
	params := url.Values{}
	params.Set("query", strings.TrimSpace(query))
	params.Set("page", strconv.Itoa(normalizePage(page)))
	var payload Response
	if err := c.get(ctx, "/search/multi", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DiscoverQuery contains the filter parameters for a discover call.
type DiscoverQuery struct {
	Genres         string // comma-joined TMDB genre ids
	Year           string
	SortBy         string
	Page           int
	VoteAverageGTE float64
	VoteCountGTE   int
	CompanyID      string
	PersonID       string // movies only; discover/tv does not support with_people
}

// CacheKey returns a stable string representation for caching.
func (q DiscoverQuery) CacheKey() string {
	var b strings.Builder
	b.WriteString("g=")
	b.WriteString(q.Genres)
	b.WriteString("|y=")
	b.WriteString(q.Year)
	b.WriteString("|s=")
	b.WriteString(q.SortBy)
	b.WriteString("|p=")
	b.WriteString(strconv.Itoa(normalizePage(q.Page)))
	b.WriteString("|va=")
	b.WriteString(strconv.FormatFloat(q.VoteAverageGTE, 'f', -1, 64))
	b.WriteString("|vc=")
	b.WriteString(strconv.Itoa(q.VoteCountGTE))
	b.WriteString("|c=")
	b.WriteString(q.CompanyID)
	b.WriteString("|w=")
	b.WriteString(q.PersonID)
	return b.String()
}

func (q DiscoverQuery) values(tv bool) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(normalizePage(q.Page)))
	if q.Genres != "" {
		params.Set("with_genres", q.Genres)
	}
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "popularity.desc"
	}
	if tv {
		sortBy = tvSortField(sortBy)
	}
	params.Set("sort_by", sortBy)
	if q.Year != "" {
		if tv {
			params.Set("first_air_date_year", q.Year)
		} else {
			params.Set("primary_release_year", q.Year)
		}
	}
	if q.VoteAverageGTE > 0 {
		params.Set("vote_average.gte", strconv.FormatFloat(q.VoteAverageGTE, 'f', -1, 64))
	}
	if q.VoteCountGTE > 0 {
		params.Set("vote_count.gte", strconv.Itoa(q.VoteCountGTE))
	}
	if q.CompanyID != "" {
		params.Set("with_companies", q.CompanyID)
	}
	if q.PersonID != "" && !tv {
		params.Set("with_people", q.PersonID)
	}
	return params
}

// tvSortField remaps movie sort fields onto their TV discover equivalents.
func tvSortField(sortBy string) string {
	switch sortBy {
	case "primary_release_date.desc":
		return "first_air_date.desc"
	case "primary_release_date.asc":
		return "first_air_date.asc"
	default:
		return sortBy
	}
}

// DiscoverMovie browses movies by filter without a text query.
func (c *Client) DiscoverMovie(ctx context.Context, q DiscoverQuery) (*Response, error) {
	var payload Response
	if err := c.get(ctx, "/discover/movie", q.values(false), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DiscoverTV browses TV shows by filter without a text query.
func (c *Client) DiscoverTV(ctx context.Context, q DiscoverQuery) (*Response, error) {
	var payload Response
	if err := c.get(ctx, "/discover/tv", q.values(true), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Details fetches the full detail payload for a movie or TV show.
func (c *Client) Details(ctx context.Context, mediaType string, id int64) (*Details, error) {
	var payload Details
	if err := c.get(ctx, fmt.Sprintf("/%s/%d", mediaType, id), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Similar fetches titles similar to the given movie or TV show.
func (c *Client) Similar(ctx context.Context, mediaType string, id int64) (*Response, error) {
	params := url.Values{}
	params.Set("page", "1")
	var payload Response
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/similar", mediaType, id), params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Videos fetches trailers and clips for a movie or TV show.
func (c *Client) Videos(ctx context.Context, mediaType string, id int64) (*VideoList, error) {
	var payload VideoList
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/videos", mediaType, id), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// WatchProviders fetches region-keyed streaming availability.
func (c *Client) WatchProviders(ctx context.Context, mediaType string, id int64) (*ProviderMap, error) {
	var payload ProviderMap
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/watch/providers", mediaType, id), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Credits fetches cast and crew for a movie or TV show.
func (c *Client) Credits(ctx context.Context, mediaType string, id int64) (*CreditList, error) {
	var payload CreditList
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/credits", mediaType, id), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Trending fetches trending titles for the given media type and time window
// (day or week).
func (c *Client) Trending(ctx context.Context, mediaType, window string) (*Response, error) {
	var payload Response
	if err := c.get(ctx, fmt.Sprintf("/trending/%s/%s", mediaType, window), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GenreList fetches the genre vocabulary for movies or TV.
func (c *Client) GenreList(ctx context.Context, mediaType string) (*GenreList, error) {
	var payload GenreList
	if err := c.get(ctx, fmt.Sprintf("/genre/%s/list", mediaType), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// PersonWithTVCredits fetches a person with their TV acting credits appended.
func (c *Client) PersonWithTVCredits(ctx context.Context, personID string) (*Person, error) {
	params := url.Values{}
	params.Set("append_to_response", "tv_credits")
	var payload Person
	if err := c.get(ctx, "/person/"+url.PathEscape(personID), params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SearchCompany searches production companies by name.
func (c *Client) SearchCompany(ctx context.Context, query string) ([]Company, error) {
	params := url.Values{}
	params.Set("query", strings.TrimSpace(query))
	var payload companyResponse
	if err := c.get(ctx, "/search/company", params, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// SearchPerson searches people by name.
func (c *Client) SearchPerson(ctx context.Context, query string) ([]PersonResult, error) {
	params := url.Values{}
	params.Set("query", strings.TrimSpace(query))
	var payload personSearchResponse
	if err := c.get(ctx, "/search/person", params, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
