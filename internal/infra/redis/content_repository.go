package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"certstudy-service/internal/domain"
)

// ContentLoader fetches study content from a backing store (files, Postgres).
type ContentLoader interface {
	LoadQuestionSet(ctx context.Context, course, quizID string) (domain.QuestionSet, error)
	LoadSummary(ctx context.Context, course, moduleID string) (domain.SummaryDoc, error)
	LoadModuleIndex(ctx context.Context, course string) ([]domain.ModuleInfo, error)
}

// ContentRepository caches content documents in Redis as JSON blobs with TTL
// and falls back to a loader on cache miss, so several instances share one
// warm cache.
type ContentRepository struct {
	client *redis.Client
	loader ContentLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewContentRepository(client *redis.Client, loader ContentLoader, ttl time.Duration) *ContentRepository {
	return &ContentRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *ContentRepository) GetQuestionSet(ctx context.Context, course, quizID string) (domain.QuestionSet, error) {
	return fetch(ctx, r, "content:quiz:"+course+":"+quizID, func() (domain.QuestionSet, error) {
		return r.loader.LoadQuestionSet(ctx, course, quizID)
	})
}

func (r *ContentRepository) GetSummary(ctx context.Context, course, moduleID string) (domain.SummaryDoc, error) {
	return fetch(ctx, r, "content:summary:"+course+":"+moduleID, func() (domain.SummaryDoc, error) {
		return r.loader.LoadSummary(ctx, course, moduleID)
	})
}

func (r *ContentRepository) GetModuleIndex(ctx context.Context, course string) ([]domain.ModuleInfo, error) {
	return fetch(ctx, r, "content:index:"+course, func() ([]domain.ModuleInfo, error) {
		return r.loader.LoadModuleIndex(ctx, course)
	})
}

func fetch[T any](ctx context.Context, r *ContentRepository, key string, load func() (T, error)) (T, error) {
	var zero T

	if value, ok := readCached[T](ctx, r.client, key); ok {
		return value, nil
	}

	result, err, _ := r.sf.Do(key, func() (interface{}, error) {
		// Re-check in case another goroutine filled the key.
		if value, ok := readCached[T](ctx, r.client, key); ok {
			return value, nil
		}

		value, err := load()
		if err != nil {
			return nil, err
		}

		if data, err := json.Marshal(value); err == nil {
			// Cache write is best effort; a miss next time just reloads.
			_ = r.client.Set(ctx, key, data, r.ttlWithJitter()).Err()
		}
		return value, nil
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}

func readCached[T any](ctx context.Context, client *redis.Client, key string) (T, bool) {
	var value T
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return value, false
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, false
	}
	return value, true
}

func (r *ContentRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
