package memory

import (
	"context"
	"testing"

	"esl-arcade-service/internal/domain"
)

func TestStatsStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStatsStore()

	stats, err := store.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("load fresh: %v", err)
	}
	if stats.XP != 0 || stats.Level != 1 || stats.DayStreak != 1 {
		t.Fatalf("unexpected fresh stats: %+v", stats)
	}

	stats.XP = 120
	stats.Level = domain.LevelForXP(stats.XP)
	stats.Badges = []domain.Badge{{ID: "novice", Name: "Rookie Talker"}}
	if err := store.Save(ctx, "p1", stats); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.XP != 120 || got.Level != 2 || len(got.Badges) != 1 {
		t.Fatalf("unexpected stats after save: %+v", got)
	}
}
