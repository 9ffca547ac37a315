package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"blog-backend/internal/domain"
	"blog-backend/internal/logger"
	"blog-backend/internal/metrics"
	"blog-backend/internal/repository"
)

// AggregateMaintainer keeps the denormalized fav_count on articles in sync
// with the favorites edge set. Counts are recomputed by full scan, never
// incremented, so the stored value always converges to the truth.
//
// Two layers of serialization prevent a lost update:
//   - a per-article mutex linearizes recounts running in this process;
//   - the fav_epoch guard in the repository rejects a persist when another
//     process mutated the edge set after this recount's snapshot.
//
// A rejected persist (domain.ErrStaleAggregate) is correct behavior, not
// failure: the mutation that moved the epoch triggers its own recount.
type AggregateMaintainer struct {
	articles repository.ArticleRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewAggregateMaintainer creates a new AggregateMaintainer.
func NewAggregateMaintainer(articles repository.ArticleRepository) *AggregateMaintainer {
	return &AggregateMaintainer{
		articles: articles,
		locks:    make(map[string]*sync.Mutex),
	}
}

// SyncFavoriteCount recomputes and persists the favorite count for one
// article. Stale recounts are swallowed.
func (m *AggregateMaintainer) SyncFavoriteCount(ctx context.Context, articleID string) error {
	lock := m.lockFor(articleID)
	lock.Lock()
	defer lock.Unlock()

	start := time.Now()

	count, epoch, err := m.articles.CountFavorites(ctx, articleID)
	if err != nil {
		metrics.ObserveRecount(metrics.ResultError, time.Since(start))
		return fmt.Errorf("recount favorites: %w", err)
	}

	err = m.articles.SetFavCount(ctx, articleID, count, epoch)
	switch {
	case err == nil:
		metrics.ObserveRecount("applied", time.Since(start))
		return nil
	case errors.Is(err, domain.ErrStaleAggregate):
		// A newer edge mutation won the race; its recount owns the final value.
		metrics.ObserveRecount("stale", time.Since(start))
		logger.Debug("discarded stale favorite recount",
			slog.String("article_id", articleID),
			slog.Int("count", count))
		return nil
	default:
		metrics.ObserveRecount(metrics.ResultError, time.Since(start))
		return fmt.Errorf("persist favorite count: %w", err)
	}
}

// lockFor returns the mutex serializing recounts for one article. The map
// only grows; entries are a bare mutex each and articles with recent
// favorite activity are a bounded set in practice.
func (m *AggregateMaintainer) lockFor(articleID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[articleID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[articleID] = lock
	}
	return lock
}
