package generator

import (
	"math/rand"
	"reflect"
	"testing"

	"esl-arcade-service/internal/domain"
)

func seeded(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

func TestLevelsAreWellFormed(t *testing.T) {
	levels := seeded(1).Levels()
	if len(levels) == 0 {
		t.Fatalf("expected published levels")
	}

	lastNumber := 0
	for _, level := range levels {
		if len(level.Questions) == 0 {
			t.Fatalf("level %s published with no questions", level.ID)
		}
		if level.Number <= lastNumber {
			t.Fatalf("levels out of order: %d after %d", level.Number, lastNumber)
		}
		lastNumber = level.Number
		if level.XPReward != 100+level.Number*10 {
			t.Fatalf("level %d: unexpected xp reward %d", level.Number, level.XPReward)
		}
		for _, q := range level.Questions {
			if len(q.Options) != 4 {
				t.Fatalf("question %s has %d options", q.ID, len(q.Options))
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= 4 {
				t.Fatalf("question %s has correct index %d", q.ID, q.CorrectIndex)
			}
			if q.TimeLimit < 5 {
				t.Fatalf("question %s has time limit %d", q.ID, q.TimeLimit)
			}
			if !q.Valid() {
				t.Fatalf("question %s failed validation", q.ID)
			}
		}
	}
}

func TestGenerationIsReproducible(t *testing.T) {
	a := seeded(42).Levels()
	b := seeded(42).Levels()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed must produce identical levels")
	}
}

func TestShuffleKeepsCorrectAnswerText(t *testing.T) {
	g := seeded(7)
	tmpl := Template{
		Text:        "Meaning: 'Hit it off'",
		Correct:     "Like each other immediately",
		Distractors: [3]string{"Hit someone", "Leave quickly", "Argue loudly"},
		Category:    CategoryVocab,
	}
	for i := 0; i < 50; i++ {
		q := g.BuildQuestion(tmpl, "q", 0)
		if q.Options[q.CorrectIndex] != tmpl.Correct {
			t.Fatalf("correct index points at %q", q.Options[q.CorrectIndex])
		}
	}
}

func TestTimeLimits(t *testing.T) {
	g := seeded(3)

	indirect := Template{Text: "Indirect: 'Where is he?'", Correct: "a", Distractors: [3]string{"b", "c", "d"}, Category: CategoryIndirectQ}
	if q := g.BuildQuestion(indirect, "q", 0); q.TimeLimit != 20 {
		t.Fatalf("indirect question should get 20s, got %d", q.TimeLimit)
	}

	long := Template{Text: "Rude or Polite: Asking someone's salary immediately", Correct: "a", Distractors: [3]string{"b", "c", "d"}, Category: CategorySocial}
	if q := g.BuildQuestion(long, "q", 0); q.TimeLimit != 20 {
		t.Fatalf("long prompt should get 20s, got %d", q.TimeLimit)
	}

	short := Template{Text: "Slang: 'Bet'", Correct: "a", Distractors: [3]string{"b", "c", "d"}, Category: CategorySlang}
	if q := g.BuildQuestion(short, "q", 0); q.TimeLimit != 10 {
		t.Fatalf("short prompt should get 10s, got %d", q.TimeLimit)
	}

	// The hardest tier shaves 5 seconds but never drops below the floor.
	if q := g.BuildQuestion(short, "q", -5); q.TimeLimit != 5 {
		t.Fatalf("insane tier should floor at 5s, got %d", q.TimeLimit)
	}
	if q := g.BuildQuestion(short, "q", -20); q.TimeLimit != 5 {
		t.Fatalf("time limit must never drop below 5, got %d", q.TimeLimit)
	}
}

func TestSampleNeverPadsShortPools(t *testing.T) {
	g := seeded(9)
	got := g.Sample(100, []Category{CategorySubjectQ})
	if len(got) != len(Bank(CategorySubjectQ)) {
		t.Fatalf("expected the whole pool without repeats, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, tmpl := range got {
		if seen[tmpl.Text] {
			t.Fatalf("duplicate template in draw: %s", tmpl.Text)
		}
		seen[tmpl.Text] = true
	}
}

func TestEmptyPoolOmitsLevel(t *testing.T) {
	g := seeded(11)
	if got := g.Sample(15, []Category{Category("nonexistent")}); got != nil {
		t.Fatalf("unknown category must yield an empty draw, got %d", len(got))
	}
}

func TestInsaneTierShavesTime(t *testing.T) {
	levels := seeded(5).Levels()
	for _, level := range levels {
		if level.Difficulty != domain.DifficultyInsane {
			continue
		}
		for _, q := range level.Questions {
			if q.TimeLimit != 5 && q.TimeLimit != 15 {
				t.Fatalf("insane question %s has time limit %d, want 5 or 15", q.ID, q.TimeLimit)
			}
		}
	}
}
