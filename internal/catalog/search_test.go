package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"reel/internal/catalog"
)

func page(results []map[string]any, total int) map[string]any {
	return map[string]any{
		"page":          1,
		"results":       results,
		"total_pages":   (total + 19) / 20,
		"total_results": total,
	}
}

func TestSearchTitlesBlankQueryNoGenreSkipsNetwork(t *testing.T) {
	var calls atomic.Int64
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(page(nil, 0))
	}))

	result, err := svc.SearchTitles(context.Background(), "  ", 1, catalog.Filters{Type: catalog.MediaMovie})
	if err != nil {
		t.Fatalf("SearchTitles returned error: %v", err)
	}
	if len(result.Items) != 0 {
		t.Fatalf("expected empty result, got %d items", len(result.Items))
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no network calls, got %d", calls.Load())
	}
}

func TestSearchTitlesMergesDiscoverForAllTypes(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/discover/movie":
			_ = json.NewEncoder(w).Encode(page([]map[string]any{
				{"id": 1, "title": "Movie A", "release_date": "2020-01-01", "popularity": 50.0},
				{"id": 2, "title": "Movie B", "release_date": "2019-01-01", "popularity": 10.0},
			}, 2))
		case "/discover/tv":
			_ = json.NewEncoder(w).Encode(page([]map[string]any{
				{"id": 1, "name": "Show A", "first_air_date": "2021-01-01", "popularity": 30.0},
			}, 1))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	result, err := svc.SearchTitles(context.Background(), "", 1, catalog.Filters{
		Type:  catalog.MediaAll,
		Genre: "28",
	})
	if err != nil {
		t.Fatalf("SearchTitles returned error: %v", err)
	}
	if result.TotalPages < 1 {
		t.Fatalf("expected totalPages >= 1, got %d", result.TotalPages)
	}
	if result.TotalResults != 3 {
		t.Fatalf("expected merged total of 3, got %d", result.TotalResults)
	}

	seen := map[string]struct{}{}
	for _, item := range result.Items {
		if _, dup := seen[item.ID]; dup {
			t.Fatalf("duplicate id %q in merged results", item.ID)
		}
		seen[item.ID] = struct{}{}
	}

	// Default popularity.desc ordering across the merged set.
	wantOrder := []string{"movie-1", "tv-1", "movie-2"}
	for i, want := range wantOrder {
		if result.Items[i].ID != want {
			t.Fatalf("position %d: got %q want %q", i, result.Items[i].ID, want)
		}
	}
	if result.Items[1].MediaType != catalog.MediaTV {
		t.Fatalf("expected tv tag on merged tv item, got %q", result.Items[1].MediaType)
	}
}

func TestSearchTitlesMultiFiltersYearAndGenre(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/multi" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(page([]map[string]any{
			{"id": 10, "media_type": "movie", "title": "Keeper", "release_date": "2020-06-01", "genre_ids": []int{28}},
			{"id": 11, "media_type": "movie", "title": "Wrong Year", "release_date": "2018-06-01", "genre_ids": []int{28}},
			{"id": 12, "media_type": "tv", "name": "Wrong Genre", "first_air_date": "2020-02-01", "genre_ids": []int{35}},
			{"id": 13, "media_type": "person", "name": "Someone"},
		}, 4))
	}))

	result, err := svc.SearchTitles(context.Background(), "keeper", 1, catalog.Filters{
		Type:  catalog.MediaAll,
		Year:  "2020",
		Genre: "28",
	})
	if err != nil {
		t.Fatalf("SearchTitles returned error: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].ID != "movie-10" {
		t.Fatalf("expected single filtered item movie-10, got %+v", result.Items)
	}
}

func TestSearchTitlesAppliesGenrePostFilterForSingleTypeSearch(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("with_genres") != "" {
			t.Error("genre must not be sent to the search endpoint")
		}
		_ = json.NewEncoder(w).Encode(page([]map[string]any{
			{"id": 1, "title": "Action One", "release_date": "2020-01-01", "genre_ids": []int{28, 12}},
			{"id": 2, "title": "Drama One", "release_date": "2020-01-01", "genre_ids": []int{18}},
		}, 2))
	}))

	result, err := svc.SearchTitles(context.Background(), "one", 1, catalog.Filters{
		Type:  catalog.MediaMovie,
		Genre: "28",
	})
	if err != nil {
		t.Fatalf("SearchTitles returned error: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].ID != "movie-1" {
		t.Fatalf("expected client-side genre filter to keep movie-1 only, got %+v", result.Items)
	}
}

func TestSearchTitlesCachesIdenticalRequests(t *testing.T) {
	var calls atomic.Int64
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(page([]map[string]any{
			{"id": 5, "title": "Cached", "release_date": "2022-01-01"},
		}, 1))
	}))

	filters := catalog.Filters{Type: catalog.MediaMovie}
	for i := 0; i < 3; i++ {
		if _, err := svc.SearchTitles(context.Background(), "cached", 1, filters); err != nil {
			t.Fatalf("SearchTitles returned error: %v", err)
		}
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single upstream call, got %d", calls.Load())
	}

	// A different page must not share the cache entry.
	if _, err := svc.SearchTitles(context.Background(), "cached", 2, filters); err != nil {
		t.Fatalf("SearchTitles returned error: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected second upstream call for new page, got %d", calls.Load())
	}
}
