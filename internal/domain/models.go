package domain

// Difficulty orders the four level tiers from easiest to hardest.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
	DifficultyInsane Difficulty = "INSANE"
)

// Question models an MCQ question with exactly four options.
type Question struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"` // always 4
	CorrectIndex int      `json:"correctIndex"`
	TimeLimit    int      `json:"timeLimit"` // seconds, never below 5
	DoublePoints bool     `json:"doublePoints"`
}

// Valid reports whether the question is safe to hand to the arena.
func (q Question) Valid() bool {
	return len(q.Options) == 4 && q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options) && q.TimeLimit >= 5
}

// Level is an immutable set of questions bound to a difficulty tier.
type Level struct {
	ID          string     `json:"id"`
	Number      int        `json:"number"`
	Title       string     `json:"title"`
	Difficulty  Difficulty `json:"difficulty"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	XPReward    int        `json:"xpReward"`
}

// LevelSummary is the menu-facing view of a level (no question content).
type LevelSummary struct {
	ID            string     `json:"id"`
	Number        int        `json:"number"`
	Title         string     `json:"title"`
	Difficulty    Difficulty `json:"difficulty"`
	Description   string     `json:"description"`
	QuestionCount int        `json:"questionCount"`
	XPReward      int        `json:"xpReward"`
}

// Summary strips the question content for menu listings.
func (l Level) Summary() LevelSummary {
	return LevelSummary{
		ID:            l.ID,
		Number:        l.Number,
		Title:         l.Title,
		Difficulty:    l.Difficulty,
		Description:   l.Description,
		QuestionCount: len(l.Questions),
		XPReward:      l.XPReward,
	}
}

// Badge is a gamification reward, unique by ID within a player's set.
type Badge struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PlayerStats is the gamification state for one player.
// Level is always derived from XP, never stored independently.
type PlayerStats struct {
	XP        int     `json:"xp"`
	Level     int     `json:"level"`
	DayStreak int     `json:"dayStreak"`
	Badges    []Badge `json:"badges"`
}

// LevelForXP derives the player level from cumulative experience.
func LevelForXP(xp int) int {
	return xp/100 + 1
}
