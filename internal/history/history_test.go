package history_test

import (
	"context"
	"fmt"
	"testing"

	"reel/internal/history"
	"reel/internal/storage"
)

func openHistory(t *testing.T, kv storage.KV) *history.Store {
	t.Helper()
	h, err := history.Open(context.Background(), kv, nil)
	if err != nil {
		t.Fatalf("history.Open failed: %v", err)
	}
	return h
}

func TestAddPutsNewestFirstAndDeduplicates(t *testing.T) {
	ctx := context.Background()
	h := openHistory(t, storage.NewMemory())

	for _, q := range []string{"matrix", "dune", "Matrix"} {
		if err := h.Add(ctx, q); err != nil {
			t.Fatalf("Add(%q) failed: %v", q, err)
		}
	}

	got := h.Entries()
	want := []string{"Matrix", "dune"}
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entries = %v, want %v", got, want)
		}
	}
}

func TestAddIgnoresBlankAndTrims(t *testing.T) {
	ctx := context.Background()
	h := openHistory(t, storage.NewMemory())

	if err := h.Add(ctx, "   "); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := h.Add(ctx, "  dune  "); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got := h.Entries()
	if len(got) != 1 || got[0] != "dune" {
		t.Fatalf("entries = %v", got)
	}
}

func TestHistoryCapsAtTen(t *testing.T) {
	ctx := context.Background()
	h := openHistory(t, storage.NewMemory())

	for i := 0; i < 15; i++ {
		if err := h.Add(ctx, fmt.Sprintf("query %d", i)); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	got := h.Entries()
	if len(got) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(got))
	}
	if got[0] != "query 14" || got[9] != "query 5" {
		t.Fatalf("entries = %v", got)
	}
}

func TestRemoveAndClearPersist(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	h := openHistory(t, kv)

	h.Add(ctx, "matrix")
	h.Add(ctx, "dune")
	if err := h.Remove(ctx, "matrix"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	reopened := openHistory(t, kv)
	if got := reopened.Entries(); len(got) != 1 || got[0] != "dune" {
		t.Fatalf("entries after reopen = %v", got)
	}

	if err := reopened.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	final := openHistory(t, kv)
	if got := final.Entries(); len(got) != 0 {
		t.Fatalf("expected empty history, got %v", got)
	}
}

func TestOpenRecoversFromCorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	if err := kv.Set(ctx, storage.KeySearchHistory, "{broken"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	h := openHistory(t, kv)
	if got := h.Entries(); len(got) != 0 {
		t.Fatalf("expected empty history, got %v", got)
	}
}
