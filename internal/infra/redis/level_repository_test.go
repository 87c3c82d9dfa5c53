package redis

import (
	"context"
	"testing"
	"time"

	"esl-arcade-service/internal/domain"
	"esl-arcade-service/internal/infra/memory"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestLevelRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)

	loader := &countingLoader{
		LevelLoader: memory.NewStaticLevelLoader([]domain.Level{sampleLevel()}),
	}
	repo := NewLevelRepository(client, loader, time.Minute)

	level, err := repo.GetLevel(context.Background(), "arena-1")
	if err != nil {
		t.Fatalf("get level: %v", err)
	}
	if len(level.Questions) != 1 {
		t.Fatalf("unexpected level: %+v", level)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if !mr.Exists("level:arena-1") {
		t.Fatalf("expected level cached in redis")
	}

	// Second call should hit the cache, loader not incremented.
	cached, err := repo.GetLevel(context.Background(), "arena-1")
	if err != nil {
		t.Fatalf("get level 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
	if cached.Questions[0].CorrectIndex != 1 {
		t.Fatalf("cached level lost data: %+v", cached.Questions[0])
	}
}

func TestLevelRepositoryMissPropagates(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	repo := NewLevelRepository(newClient(mr), memory.NewStaticLevelLoader(nil), time.Minute)
	if _, err := repo.GetLevel(context.Background(), "arena-404"); err != domain.ErrLevelNotFound {
		t.Fatalf("expected ErrLevelNotFound, got %v", err)
	}
}

type countingLoader struct {
	memory.LevelLoader
	calls int
}

func (l *countingLoader) LoadLevel(ctx context.Context, levelID string) (domain.Level, error) {
	l.calls++
	return l.LevelLoader.LoadLevel(ctx, levelID)
}

func sampleLevel() domain.Level {
	return domain.Level{
		ID:     "arena-1",
		Number: 1,
		Title:  "Novice Basics 1",
		Questions: []domain.Question{
			{
				ID:           "q1",
				Text:         "Meaning: 'Hit it off'",
				Options:      []string{"Hit someone", "Like each other immediately", "Leave quickly", "Argue loudly"},
				CorrectIndex: 1,
				TimeLimit:    10,
			},
		},
		XPReward: 110,
	}
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
