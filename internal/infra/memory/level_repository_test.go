package memory

import (
	"context"
	"testing"
	"time"

	"esl-arcade-service/internal/domain"
)

func TestLevelRepositoryCaches(t *testing.T) {
	loader := &countingLoader{
		LevelLoader: NewStaticLevelLoader([]domain.Level{sampleLevel()}),
	}
	repo := NewLevelRepository(loader, time.Minute)

	if _, err := repo.GetLevel(context.Background(), "arena-1"); err != nil {
		t.Fatalf("get level: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.GetLevel(context.Background(), "arena-1"); err != nil {
		t.Fatalf("get level 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestLevelRepositoryMenuCaches(t *testing.T) {
	loader := &countingLoader{
		LevelLoader: NewStaticLevelLoader([]domain.Level{sampleLevel()}),
	}
	repo := NewLevelRepository(loader, time.Minute)

	menu, err := repo.ListLevels(context.Background())
	if err != nil {
		t.Fatalf("list levels: %v", err)
	}
	if len(menu) != 1 || menu[0].QuestionCount != 1 {
		t.Fatalf("unexpected menu: %+v", menu)
	}

	if _, err := repo.ListLevels(context.Background()); err != nil {
		t.Fatalf("list levels 2: %v", err)
	}
	if loader.listCalls != 1 {
		t.Fatalf("expected menu cache hit, loader calls %d", loader.listCalls)
	}
}

func TestStaticLoaderUnknownLevel(t *testing.T) {
	loader := NewStaticLevelLoader(nil)
	if _, err := loader.LoadLevel(context.Background(), "arena-1"); err != domain.ErrLevelNotFound {
		t.Fatalf("expected ErrLevelNotFound, got %v", err)
	}
}

type countingLoader struct {
	LevelLoader
	calls     int
	listCalls int
}

func (l *countingLoader) LoadLevel(ctx context.Context, levelID string) (domain.Level, error) {
	l.calls++
	return l.LevelLoader.LoadLevel(ctx, levelID)
}

func (l *countingLoader) ListLevels(ctx context.Context) ([]domain.LevelSummary, error) {
	l.listCalls++
	return l.LevelLoader.ListLevels(ctx)
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
