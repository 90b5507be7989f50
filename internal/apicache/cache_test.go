package apicache_test

import (
	"testing"
	"time"

	"reel/internal/apicache"
)

func TestGetReturnsValueBeforeTTL(t *testing.T) {
	now := time.Unix(1000, 0)
	cache := apicache.New(apicache.WithClock(func() time.Time { return now }))

	cache.Set("search:dune:1", []string{"movie-438631"})

	now = now.Add(29 * time.Minute)
	value, ok := cache.Get("search:dune:1")
	if !ok {
		t.Fatal("expected hit before TTL")
	}
	items, ok := value.([]string)
	if !ok || len(items) != 1 || items[0] != "movie-438631" {
		t.Fatalf("unexpected cached value: %#v", value)
	}
}

func TestGetEvictsExpiredEntry(t *testing.T) {
	now := time.Unix(1000, 0)
	cache := apicache.New(apicache.WithClock(func() time.Time { return now }))

	cache.Set("detail:movie-1", "payload")

	now = now.Add(apicache.DefaultTTL + time.Millisecond)
	if _, ok := cache.Get("detail:movie-1"); ok {
		t.Fatal("expected miss after TTL")
	}
	if cache.Len() != 0 {
		t.Fatalf("expected expired entry evicted, %d entries remain", cache.Len())
	}
}

func TestGetWithTTLOverride(t *testing.T) {
	now := time.Unix(1000, 0)
	cache := apicache.New(apicache.WithClock(func() time.Time { return now }))

	cache.Set("genres:movie", "list")

	now = now.Add(2 * time.Hour)
	if _, ok := cache.Get("genres:movie"); ok {
		t.Fatal("expected miss with default TTL")
	}

	cache.Set("genres:tv", "list")
	now = now.Add(2 * time.Hour)
	if _, ok := cache.GetWithTTL("genres:tv", 24*time.Hour); !ok {
		t.Fatal("expected hit with extended TTL")
	}
}

func TestSetReplacesExistingEntry(t *testing.T) {
	cache := apicache.New()
	cache.Set("trending:movie:day", "first")
	cache.Set("trending:movie:day", "second")

	value, ok := cache.Get("trending:movie:day")
	if !ok || value != "second" {
		t.Fatalf("expected last write to win, got %#v", value)
	}
	if cache.Len() != 1 {
		t.Fatalf("expected single entry, got %d", cache.Len())
	}
}
