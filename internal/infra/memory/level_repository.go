package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"esl-arcade-service/internal/domain"
	"golang.org/x/sync/singleflight"
)

// LevelLoader fetches level content from a backing store (e.g., Postgres).
type LevelLoader interface {
	LoadLevel(ctx context.Context, levelID string) (domain.Level, error)
	ListLevels(ctx context.Context) ([]domain.LevelSummary, error)
}

// LevelRepository caches levels with TTL to avoid repeated backing-store hits.
type LevelRepository struct {
	loader LevelLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	cache     map[string]cachedLevel
	menu      []domain.LevelSummary
	menuUntil time.Time
}

type cachedLevel struct {
	level     domain.Level
	expiresAt time.Time
}

func NewLevelRepository(loader LevelLoader, ttl time.Duration) *LevelRepository {
	return &LevelRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedLevel),
	}
}

func (r *LevelRepository) GetLevel(ctx context.Context, levelID string) (domain.Level, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.cache[levelID]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return entry.level, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(levelID, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.cache[levelID]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.level, nil
		}
		r.mu.RUnlock()

		level, err := r.loader.LoadLevel(ctx, levelID)
		if err != nil {
			return domain.Level{}, err
		}

		r.mu.Lock()
		r.cache[levelID] = cachedLevel{
			level:     level,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return level, nil
	})
	if err != nil {
		return domain.Level{}, err
	}
	return result.(domain.Level), nil
}

func (r *LevelRepository) ListLevels(ctx context.Context) ([]domain.LevelSummary, error) {
	now := r.clock()

	r.mu.RLock()
	if r.menu != nil && r.menuUntil.After(now) {
		menu := r.menu
		r.mu.RUnlock()
		return menu, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("__menu", func() (interface{}, error) {
		menu, err := r.loader.ListLevels(ctx)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.menu = menu
		r.menuUntil = r.clock().Add(r.ttlWithJitter())
		r.mu.Unlock()
		return menu, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.LevelSummary), nil
}

func (r *LevelRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticLevelLoader serves a fixed level list (generated in-process or seeded
// for tests).
type StaticLevelLoader struct {
	levels map[string]domain.Level
	order  []string
}

func NewStaticLevelLoader(levels []domain.Level) *StaticLevelLoader {
	l := &StaticLevelLoader{levels: make(map[string]domain.Level, len(levels))}
	for _, level := range levels {
		l.levels[level.ID] = level
		l.order = append(l.order, level.ID)
	}
	return l
}

func (l *StaticLevelLoader) LoadLevel(_ context.Context, levelID string) (domain.Level, error) {
	if level, ok := l.levels[levelID]; ok {
		return level, nil
	}
	return domain.Level{}, domain.ErrLevelNotFound
}

func (l *StaticLevelLoader) ListLevels(context.Context) ([]domain.LevelSummary, error) {
	menu := make([]domain.LevelSummary, 0, len(l.order))
	for _, id := range l.order {
		menu = append(menu, l.levels[id].Summary())
	}
	return menu, nil
}
