package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"certstudy-service/internal/domain"
)

// ContentLoader fetches study content from a backing store (files, Postgres).
type ContentLoader interface {
	LoadQuestionSet(ctx context.Context, course, quizID string) (domain.QuestionSet, error)
	LoadSummary(ctx context.Context, course, moduleID string) (domain.SummaryDoc, error)
	LoadModuleIndex(ctx context.Context, course string) ([]domain.ModuleInfo, error)
}

// ContentRepository caches content documents with TTL so hot quizzes and
// summaries do not hit the backing store on every request.
type ContentRepository struct {
	loader    ContentLoader
	quizzes   *cache[domain.QuestionSet]
	summaries *cache[domain.SummaryDoc]
	indexes   *cache[[]domain.ModuleInfo]
}

func NewContentRepository(loader ContentLoader, ttl time.Duration) *ContentRepository {
	return &ContentRepository{
		loader:    loader,
		quizzes:   newCache[domain.QuestionSet](ttl),
		summaries: newCache[domain.SummaryDoc](ttl),
		indexes:   newCache[[]domain.ModuleInfo](ttl),
	}
}

func (r *ContentRepository) GetQuestionSet(ctx context.Context, course, quizID string) (domain.QuestionSet, error) {
	return r.quizzes.get(course+"/"+quizID, func() (domain.QuestionSet, error) {
		return r.loader.LoadQuestionSet(ctx, course, quizID)
	})
}

func (r *ContentRepository) GetSummary(ctx context.Context, course, moduleID string) (domain.SummaryDoc, error) {
	return r.summaries.get(course+"/"+moduleID, func() (domain.SummaryDoc, error) {
		return r.loader.LoadSummary(ctx, course, moduleID)
	})
}

func (r *ContentRepository) GetModuleIndex(ctx context.Context, course string) ([]domain.ModuleInfo, error) {
	return r.indexes.get(course, func() ([]domain.ModuleInfo, error) {
		return r.loader.LoadModuleIndex(ctx, course)
	})
}

type cacheEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// cache is a TTL map with singleflight fill, so concurrent misses on one key
// trigger a single load.
type cache[T any] struct {
	ttl   time.Duration
	clock func() time.Time
	sf    singleflight.Group
	rnd   *rand.Rand

	mu      sync.RWMutex
	entries map[string]cacheEntry[T]
}

func newCache[T any](ttl time.Duration) *cache[T] {
	return &cache[T]{
		ttl:     ttl,
		clock:   time.Now,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		entries: make(map[string]cacheEntry[T]),
	}
}

func (c *cache[T]) get(key string, load func() (T, error)) (T, error) {
	now := c.clock()

	c.mu.RLock()
	if entry, ok := c.entries[key]; ok && entry.expiresAt.After(now) {
		c.mu.RUnlock()
		return entry.value, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		now := c.clock()
		c.mu.RLock()
		if entry, ok := c.entries[key]; ok && entry.expiresAt.After(now) {
			c.mu.RUnlock()
			return entry.value, nil
		}
		c.mu.RUnlock()

		value, err := load()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = cacheEntry[T]{
			value:     value,
			expiresAt: now.Add(c.ttlWithJitter()),
		}
		c.mu.Unlock()
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}

// ttlWithJitter adds up to 10% jitter to spread expirations. Callers hold
// the write lock.
func (c *cache[T]) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
