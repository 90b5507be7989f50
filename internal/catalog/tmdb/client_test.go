package tmdb_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"reel/internal/catalog/tmdb"
	"reel/internal/faults"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := tmdb.New("", "https://example.test", "en-US")
	if err == nil {
		t.Fatal("expected error for missing api key")
	}
	if !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestSearchMovieSendsCredentialAndFilters(t *testing.T) {
	var captured url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		captured = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]any{
			"page":          1,
			"total_pages":   1,
			"total_results": 1,
			"results": []map[string]any{
				{"id": 862, "title": "Toy Story", "release_date": "1995-11-19", "genre_ids": []int{16, 35}},
			},
		})
	}))
	defer server.Close()

	client, err := tmdb.New("key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("tmdb.New failed: %v", err)
	}

	resp, err := client.SearchMovie(context.Background(), "Toy Story", 0, "1995")
	if err != nil {
		t.Fatalf("SearchMovie returned error: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].ID != 862 {
		t.Fatalf("unexpected results: %+v", resp.Results)
	}
	if len(resp.Results[0].GenreIDs) != 2 {
		t.Fatalf("expected genre ids decoded, got %+v", resp.Results[0].GenreIDs)
	}

	if captured.Get("api_key") != "key" {
		t.Fatalf("expected api_key param, got %q", captured.Get("api_key"))
	}
	if captured.Get("language") != "en-US" {
		t.Fatalf("expected language param, got %q", captured.Get("language"))
	}
	if captured.Get("year") != "1995" {
		t.Fatalf("expected year param, got %q", captured.Get("year"))
	}
	if captured.Get("page") != "1" {
		t.Fatalf("expected page clamped to 1, got %q", captured.Get("page"))
	}
}

func TestDiscoverTVRemapsSortAndYear(t *testing.T) {
	var captured url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]any{"page": 1, "results": []any{}})
	}))
	defer server.Close()

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("tmdb.New failed: %v", err)
	}

	_, err = client.DiscoverTV(context.Background(), tmdb.DiscoverQuery{
		Genres: "18",
		Year:   "2021",
		SortBy: "primary_release_date.desc",
		Page:   2,
	})
	if err != nil {
		t.Fatalf("DiscoverTV returned error: %v", err)
	}
	if captured.Get("sort_by") != "first_air_date.desc" {
		t.Fatalf("expected tv sort remap, got %q", captured.Get("sort_by"))
	}
	if captured.Get("first_air_date_year") != "2021" {
		t.Fatalf("expected tv year param, got %q", captured.Get("first_air_date_year"))
	}
	if captured.Get("primary_release_year") != "" {
		t.Fatal("movie year param should be absent for tv discover")
	}
}

func TestErrorCarriesUpstreamStatusMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status_code":    7,
			"status_message": "Invalid API key: You must be granted a valid key.",
		})
	}))
	defer server.Close()

	client, err := tmdb.New("bad-key", server.URL, "")
	if err != nil {
		t.Fatalf("tmdb.New failed: %v", err)
	}

	_, err = client.Trending(context.Background(), "movie", "day")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, faults.ErrRemote) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Invalid API key") {
		t.Fatalf("expected upstream message preserved, got %q", err.Error())
	}
}

func TestNotFoundStatusMapsToNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"status_message": "The resource you requested could not be found."})
	}))
	defer server.Close()

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("tmdb.New failed: %v", err)
	}

	_, err = client.Details(context.Background(), "movie", 999999)
	if !errors.Is(err, faults.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDiscoverQueryCacheKeyIsDeterministic(t *testing.T) {
	a := tmdb.DiscoverQuery{Genres: "28,12", SortBy: "vote_average.desc", Page: 3, VoteAverageGTE: 7, VoteCountGTE: 200}
	b := tmdb.DiscoverQuery{Genres: "28,12", SortBy: "vote_average.desc", Page: 3, VoteAverageGTE: 7, VoteCountGTE: 200}
	if a.CacheKey() != b.CacheKey() {
		t.Fatalf("identical queries must share a key: %q vs %q", a.CacheKey(), b.CacheKey())
	}
	c := b
	c.Page = 4
	if a.CacheKey() == c.CacheKey() {
		t.Fatal("different queries must produce different keys")
	}
}
