// Package lists maintains the user's favorites, watchlist, watched list,
// and ratings on top of a key-value store, with schema migration from the
// legacy favorites-only layout and best-effort genre backfill against the
// catalog.
package lists

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sync"
	"time"

	"reel/internal/catalog"
	"reel/internal/faults"
	"reel/internal/logging"
	"reel/internal/storage"
)

// List names one of the three persisted item lists.
type List string

const (
	ListFavorites List = "favorites"
	ListWatchlist List = "watchlist"
	ListWatched   List = "watched"
)

// Entry is one persisted list item. AddedAt is a unix-millisecond timestamp
// stamped at insertion and never mutated afterwards.
type Entry struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Year        string  `json:"year,omitempty"`
	Poster      string  `json:"poster,omitempty"`
	MediaType   string  `json:"mediaType,omitempty"`
	AddedAt     int64   `json:"addedAt"`
	Genres      string  `json:"genres,omitempty"`
	GenreIDs    []int64 `json:"genreIds,omitempty"`
	Runtime     int     `json:"runtime,omitempty"`
	VoteAverage float64 `json:"voteAverage,omitempty"`
	VoteCount   int64   `json:"voteCount,omitempty"`
}

// State is the persisted aggregate. Rating keys are canonical "type:id".
type State struct {
	Favorites []Entry        `json:"favorites"`
	Watchlist []Entry        `json:"watchlist"`
	Watched   []Entry        `json:"watched"`
	Ratings   map[string]int `json:"ratings"`
}

func emptyState() State {
	return State{
		Favorites: []Entry{},
		Watchlist: []Entry{},
		Watched:   []Entry{},
		Ratings:   map[string]int{},
	}
}

// persistedState tolerates legacy on-disk shapes: fractional or null rating
// values and non-canonical rating keys.
type persistedState struct {
	Favorites []Entry             `json:"favorites"`
	Watchlist []Entry             `json:"watchlist"`
	Watched   []Entry             `json:"watched"`
	Ratings   map[string]*float64 `json:"ratings"`
}

// DetailSource supplies full item details for backfill.
type DetailSource interface {
	GetDetail(ctx context.Context, id string) (catalog.Detail, error)
}

// Store owns the list aggregate. All mutations persist the full aggregate
// and then run a backfill pass over entries missing genre data.
type Store struct {
	mu        sync.Mutex
	kv        storage.KV
	source    DetailSource
	logger    *slog.Logger
	state     State
	attempted map[string]struct{}
	now       func() time.Time
}

// Open loads the persisted aggregate from kv. A missing aggregate is
// migrated from the legacy favorites-only key when present, otherwise
// initialized empty. Parse failures of either key fall back to empty
// defaults; only storage access failures are returned.
func Open(ctx context.Context, kv storage.KV, source DetailSource, logger *slog.Logger) (*Store, error) {
	s := &Store{
		kv:        kv,
		source:    source,
		logger:    logging.NewComponentLogger(logger, "lists"),
		state:     emptyState(),
		attempted: make(map[string]struct{}),
		now:       time.Now,
	}

	raw, found, err := kv.Get(ctx, storage.KeyUserLists)
	if err != nil {
		return nil, err
	}
	if found {
		persisted, err := decodeState(raw)
		if err != nil {
			// Parse failures collapse to empty defaults at this boundary.
			s.logger.Warn("stored lists unreadable, starting empty", logging.Error(err))
		} else {
			s.state = normalizeState(persisted, s.now().UnixMilli())
		}
		s.Backfill(ctx)
		return s, nil
	}

	if err := s.migrateLegacyFavorites(ctx); err != nil {
		return nil, err
	}
	s.Backfill(ctx)
	return s, nil
}

// migrateLegacyFavorites folds the favorites-only key into the aggregate
// shape, stamping AddedAt on entries lacking one, and removes the old key.
func (s *Store) migrateLegacyFavorites(ctx context.Context) error {
	raw, found, err := s.kv.Get(ctx, storage.KeyLegacyFavorites)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	var favorites []Entry
	if err := json.Unmarshal([]byte(raw), &favorites); err != nil {
		wrapped := faults.Wrap(faults.ErrParse, "lists", "migrate", "malformed legacy favorites", err)
		s.logger.Warn("legacy favorites unreadable, starting empty", logging.Error(wrapped))
		return nil
	}

	nowMillis := s.now().UnixMilli()
	for i := range favorites {
		if favorites[i].AddedAt == 0 {
			favorites[i].AddedAt = nowMillis
		}
	}
	s.state.Favorites = favorites
	if err := s.persist(ctx); err != nil {
		return err
	}
	if err := s.kv.Delete(ctx, storage.KeyLegacyFavorites); err != nil {
		return err
	}
	s.logger.Info("migrated legacy favorites", logging.Int("entries", len(favorites)))
	return nil
}

func decodeState(raw string) (persistedState, error) {
	var persisted persistedState
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		return persistedState{}, faults.Wrap(faults.ErrParse, "lists", "load", "malformed aggregate", err)
	}
	return persisted, nil
}

// normalizeState stamps missing timestamps, canonicalizes rating keys, and
// drops null or unconvertible ratings.
func normalizeState(p persistedState, nowMillis int64) State {
	state := emptyState()
	stamp := func(entries []Entry) []Entry {
		out := make([]Entry, 0, len(entries))
		for _, e := range entries {
			if e.ID == "" {
				continue
			}
			if e.AddedAt == 0 {
				e.AddedAt = nowMillis
			}
			out = append(out, e)
		}
		return out
	}
	state.Favorites = stamp(p.Favorites)
	state.Watchlist = stamp(p.Watchlist)
	state.Watched = stamp(p.Watched)

	for key, value := range p.Ratings {
		if value == nil {
			continue
		}
		canonical := catalog.ExcludeKey(key)
		if canonical == "" {
			continue
		}
		state.Ratings[canonical] = clampRating(*value)
	}
	return state
}

func clampRating(value float64) int {
	rounded := int(math.Round(value))
	if rounded < 1 {
		return 1
	}
	if rounded > 10 {
		return 10
	}
	return rounded
}

func (s *Store) persist(ctx context.Context) error {
	encoded, err := json.Marshal(s.state)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, storage.KeyUserLists, string(encoded))
}

func (s *Store) listRef(list List) *[]Entry {
	switch list {
	case ListWatchlist:
		return &s.state.Watchlist
	case ListWatched:
		return &s.state.Watched
	default:
		return &s.state.Favorites
	}
}

// Add inserts entry into list, stamping AddedAt. Adding an id that is
// already present is a no-op.
func (s *Store) Add(ctx context.Context, list List, entry Entry) error {
	s.mu.Lock()
	target := s.listRef(list)
	for _, existing := range *target {
		if existing.ID == entry.ID {
			s.mu.Unlock()
			return nil
		}
	}
	entry.AddedAt = s.now().UnixMilli()
	*target = append(*target, entry)
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.Backfill(ctx)
	return nil
}

// Remove deletes the entry with the given id from list, if present.
func (s *Store) Remove(ctx context.Context, list List, id string) error {
	s.mu.Lock()
	target := s.listRef(list)
	kept := (*target)[:0:0]
	for _, existing := range *target {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(*target) {
		s.mu.Unlock()
		return nil
	}
	*target = kept
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.Backfill(ctx)
	return nil
}

// Toggle removes the entry when present, otherwise adds it with a fresh
// timestamp. The returned flag reports membership after the call.
func (s *Store) Toggle(ctx context.Context, list List, entry Entry) (bool, error) {
	s.mu.Lock()
	target := s.listRef(list)
	present := false
	for _, existing := range *target {
		if existing.ID == entry.ID {
			present = true
			break
		}
	}
	s.mu.Unlock()

	if present {
		return false, s.Remove(ctx, list, entry.ID)
	}
	return true, s.Add(ctx, list, entry)
}

// Contains reports whether list holds an entry with the given id.
func (s *Store) Contains(list List, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range *s.listRef(list) {
		if existing.ID == id {
			return true
		}
	}
	return false
}

// Entries returns a copy of the named list.
func (s *Store) Entries(list List) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	src := *s.listRef(list)
	out := make([]Entry, len(src))
	copy(out, src)
	return out
}

// SetRating stores a rating for the item, clamped to [1,10], under the
// canonical "type:id" key.
func (s *Store) SetRating(ctx context.Context, id string, value int) error {
	key := catalog.ExcludeKey(id)
	if key == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Ratings[key] = clampRating(float64(value))
	return s.persist(ctx)
}

// ClearRating deletes the item's rating.
func (s *Store) ClearRating(ctx context.Context, id string) error {
	key := catalog.ExcludeKey(id)
	if key == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.state.Ratings[key]; !found {
		return nil
	}
	delete(s.state.Ratings, key)
	return s.persist(ctx)
}

// Rating returns the stored rating for the item, if any.
func (s *Store) Rating(id string) (int, bool) {
	key := catalog.ExcludeKey(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	value, found := s.state.Ratings[key]
	return value, found
}

// Ratings returns a copy of the full rating map.
func (s *Store) Ratings() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.state.Ratings))
	for k, v := range s.state.Ratings {
		out[k] = v
	}
	return out
}

// Snapshot returns a deep copy of the aggregate.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := emptyState()
	out.Favorites = append(out.Favorites, s.state.Favorites...)
	out.Watchlist = append(out.Watchlist, s.state.Watchlist...)
	out.Watched = append(out.Watched, s.state.Watched...)
	for k, v := range s.state.Ratings {
		out.Ratings[k] = v
	}
	return out
}

// Export serializes the aggregate as indented JSON.
func (s *Store) Export() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	encoded, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Import replaces the aggregate wholesale with the parsed data. It accepts
// any JSON object carrying at least one of the four aggregate keys, stamps
// missing timestamps, and canonicalizes rating keys. The return reports
// whether the data was accepted and persisted; on a persist failure the
// previous aggregate stays in place.
func (s *Store) Import(ctx context.Context, data string) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &probe); err != nil {
		s.logger.Warn("import rejected, not a JSON object", logging.Error(err))
		return false
	}
	recognized := false
	for _, key := range []string{"favorites", "watchlist", "watched", "ratings"} {
		if _, ok := probe[key]; ok {
			recognized = true
			break
		}
	}
	if !recognized {
		s.logger.Warn("import rejected, no list keys present")
		return false
	}

	persisted, err := decodeState(data)
	if err != nil {
		s.logger.Warn("import rejected, malformed lists", logging.Error(err))
		return false
	}

	s.mu.Lock()
	previous := s.state
	s.state = normalizeState(persisted, s.now().UnixMilli())
	err = s.persist(ctx)
	if err != nil {
		s.state = previous
		s.mu.Unlock()
		s.logger.Warn("import rejected, persist failed", logging.Error(err))
		return false
	}
	s.mu.Unlock()
	s.Backfill(ctx)
	return true
}

// Reset replaces the aggregate with empty defaults.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = emptyState()
	return s.persist(ctx)
}
