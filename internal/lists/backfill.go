package lists

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"reel/internal/catalog"
	"reel/internal/logging"
)

// backfillBatch caps how many details one pass fetches.
const backfillBatch = 20

// Backfill reconciles entries that lack both genre ids and a genres string
// by fetching their details and merging the catalog fields in place, keeping
// each entry's original AddedAt. Ids are attempted at most once per session,
// so repeated passes converge; individual fetch failures are ignored. The
// aggregate is persisted once per batch.
func (s *Store) Backfill(ctx context.Context) {
	if s.source == nil {
		return
	}
	for {
		ids := s.takeBackfillCandidates()
		if len(ids) == 0 {
			return
		}

		details := make(map[string]catalog.Detail, len(ids))
		var mu sync.Mutex
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(4)
		for _, id := range ids {
			id := id
			g.Go(func() error {
				detail, err := s.source.GetDetail(gctx, id)
				if err != nil {
					s.logger.Debug("backfill fetch failed",
						logging.String("id", id), logging.Error(err))
					return nil
				}
				mu.Lock()
				details[id] = detail
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()

		if len(details) == 0 {
			continue
		}
		s.mergeBackfill(ctx, details)
	}
}

// takeBackfillCandidates selects up to one batch of entry ids missing genre
// data, marking each as attempted for the rest of the session.
func (s *Store) takeBackfillCandidates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	seen := make(map[string]struct{})
	for _, list := range []*[]Entry{&s.state.Favorites, &s.state.Watchlist, &s.state.Watched} {
		for _, entry := range *list {
			if len(ids) >= backfillBatch {
				return ids
			}
			if len(entry.GenreIDs) > 0 || entry.Genres != "" {
				continue
			}
			if _, done := s.attempted[entry.ID]; done {
				continue
			}
			if _, dup := seen[entry.ID]; dup {
				continue
			}
			seen[entry.ID] = struct{}{}
			s.attempted[entry.ID] = struct{}{}
			ids = append(ids, entry.ID)
		}
	}
	return ids
}

func (s *Store) mergeBackfill(ctx context.Context, details map[string]catalog.Detail) {
	s.mu.Lock()
	merged := 0
	for _, list := range []*[]Entry{&s.state.Favorites, &s.state.Watchlist, &s.state.Watched} {
		for i, entry := range *list {
			detail, found := details[entry.ID]
			if !found {
				continue
			}
			(*list)[i].Genres = detail.Genres
			(*list)[i].GenreIDs = detail.GenreIDs
			(*list)[i].Runtime = detail.Runtime
			(*list)[i].VoteAverage = detail.VoteAverage
			(*list)[i].VoteCount = detail.VoteCount
			merged++
		}
	}
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		s.logger.Warn("backfill persist failed", logging.Error(err))
		return
	}
	s.logger.Debug("backfilled genre data", logging.Int("entries", merged))
}
