package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"testing"

	"reel/internal/catalog"
	"reel/internal/faults"
)

func TestGetRandomSamplesFromRandomPage(t *testing.T) {
	var pagesServed []string
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/discover/movie" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		p := r.URL.Query().Get("page")
		pagesServed = append(pagesServed, p)
		n, _ := strconv.Atoi(p)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"page": n,
			"results": []map[string]any{
				{"id": n*100 + 1, "title": "Pick A", "release_date": "2020-01-01"},
				{"id": n*100 + 2, "title": "Pick B", "release_date": "2021-01-01"},
			},
			"total_pages":   40,
			"total_results": 800,
		})
	}))

	item, err := svc.GetRandom(context.Background(), catalog.RandomFilters{Type: catalog.MediaMovie, Genre: "28"})
	if err != nil {
		t.Fatalf("GetRandom returned error: %v", err)
	}
	if len(pagesServed) != 2 {
		t.Fatalf("expected two discover calls (probe + sample), got %v", pagesServed)
	}
	if pagesServed[0] != "1" {
		t.Fatalf("first call must probe page 1, got %q", pagesServed[0])
	}
	if item.MediaType != catalog.MediaMovie || item.ID == "" {
		t.Fatalf("unexpected sampled item: %+v", item)
	}
}

func TestGetRandomNoMatchesReturnsNoResults(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"page": 1, "results": []map[string]any{}, "total_pages": 0, "total_results": 0,
		})
	}))

	_, err := svc.GetRandom(context.Background(), catalog.RandomFilters{Type: catalog.MediaMovie})
	if !errors.Is(err, faults.ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
}

func TestGetRandomTVWithPersonUsesTVCredits(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/person/287" {
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.URL.Query().Get("append_to_response"); got != "tv_credits" {
			t.Errorf("append_to_response = %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":   287,
			"name": "Some Actor",
			"tv_credits": map[string]any{
				"cast": []map[string]any{
					{"id": 555, "name": "Their Show", "first_air_date": "2015-09-01"},
				},
			},
		})
	}))

	item, err := svc.GetRandom(context.Background(), catalog.RandomFilters{Type: catalog.MediaTV, PersonID: "287"})
	if err != nil {
		t.Fatalf("GetRandom returned error: %v", err)
	}
	if item.ID != "tv-555" || item.MediaType != catalog.MediaTV {
		t.Fatalf("expected tv-555 from credits, got %+v", item)
	}
}

func TestGetRandomTVWithPersonNoCredits(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 287, "name": "Some Actor", "tv_credits": map[string]any{"cast": []map[string]any{}},
		})
	}))

	_, err := svc.GetRandom(context.Background(), catalog.RandomFilters{Type: catalog.MediaTV, PersonID: "287"})
	if !errors.Is(err, faults.ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
}
