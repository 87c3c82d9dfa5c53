package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"esl-arcade-service/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// LevelLoader fetches level content from a backing store (e.g., Postgres).
type LevelLoader interface {
	LoadLevel(ctx context.Context, levelID string) (domain.Level, error)
	ListLevels(ctx context.Context) ([]domain.LevelSummary, error)
}

// LevelRepository caches marshaled level content in Redis and falls back to
// a loader on cache miss. Levels are stored as: SET level:{levelID} {json}.
type LevelRepository struct {
	client *redis.Client
	loader LevelLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewLevelRepository(client *redis.Client, loader LevelLoader, ttl time.Duration) *LevelRepository {
	return &LevelRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *LevelRepository) GetLevel(ctx context.Context, levelID string) (domain.Level, error) {
	key := r.levelKey(levelID)

	if raw, err := r.client.Get(ctx, key).Bytes(); err == nil && len(raw) > 0 {
		var level domain.Level
		if err := json.Unmarshal(raw, &level); err == nil {
			return level, nil
		}
	}

	result, err, _ := r.sf.Do(levelID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if raw, err := r.client.Get(ctx, key).Bytes(); err == nil && len(raw) > 0 {
			var level domain.Level
			if err := json.Unmarshal(raw, &level); err == nil {
				return level, nil
			}
		}

		level, err := r.loader.LoadLevel(ctx, levelID)
		if err != nil {
			return domain.Level{}, err
		}

		if raw, err := json.Marshal(level); err == nil {
			_ = r.client.Set(ctx, key, raw, r.ttlWithJitter()).Err()
		}
		return level, nil
	})
	if err != nil {
		return domain.Level{}, err
	}
	return result.(domain.Level), nil
}

// ListLevels goes straight to the loader; the menu is small and changes when
// the backing store is reseeded.
func (r *LevelRepository) ListLevels(ctx context.Context) ([]domain.LevelSummary, error) {
	return r.loader.ListLevels(ctx)
}

func (r *LevelRepository) levelKey(levelID string) string {
	return "level:" + levelID
}

func (r *LevelRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
