// Package history keeps the most recent search queries in the key-value
// store, newest first, de-duplicated case-insensitively.
package history

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"reel/internal/faults"
	"reel/internal/logging"
	"reel/internal/storage"
)

// maxEntries bounds how many queries are retained.
const maxEntries = 10

// Store is the persisted search-history list.
type Store struct {
	mu      sync.Mutex
	kv      storage.KV
	logger  *slog.Logger
	queries []string
}

// Open loads the history from kv. A missing or unreadable value starts
// empty; only storage access failures are returned.
func Open(ctx context.Context, kv storage.KV, logger *slog.Logger) (*Store, error) {
	s := &Store{kv: kv, logger: logging.NewComponentLogger(logger, "history")}

	raw, found, err := kv.Get(ctx, storage.KeySearchHistory)
	if err != nil {
		return nil, err
	}
	if found {
		if err := json.Unmarshal([]byte(raw), &s.queries); err != nil {
			wrapped := faults.Wrap(faults.ErrParse, "history", "load", "malformed history", err)
			s.logger.Warn("stored history unreadable, starting empty", logging.Error(wrapped))
			s.queries = nil
		}
	}
	return s, nil
}

// Add records a query at the front of the history. Blank queries are
// ignored; an existing entry differing only in case is replaced.
func (s *Store) Add(ctx context.Context, query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	updated := make([]string, 0, len(s.queries)+1)
	updated = append(updated, trimmed)
	for _, q := range s.queries {
		if strings.EqualFold(q, trimmed) {
			continue
		}
		updated = append(updated, q)
	}
	if len(updated) > maxEntries {
		updated = updated[:maxEntries]
	}
	s.queries = updated
	return s.persist(ctx)
}

// Remove deletes the exact query from the history, if present.
func (s *Store) Remove(ctx context.Context, query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.queries[:0:0]
	for _, q := range s.queries {
		if q != query {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(s.queries) {
		return nil
	}
	s.queries = kept
	return s.persist(ctx)
}

// Clear empties the history.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = nil
	return s.persist(ctx)
}

// Entries returns the stored queries, newest first.
func (s *Store) Entries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.queries))
	copy(out, s.queries)
	return out
}

func (s *Store) persist(ctx context.Context) error {
	queries := s.queries
	if queries == nil {
		queries = []string{}
	}
	encoded, err := json.Marshal(queries)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, storage.KeySearchHistory, string(encoded))
}
