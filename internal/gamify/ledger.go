package gamify

import (
	"context"
	"sync"

	"esl-arcade-service/internal/domain"
)

// StatsStore abstracts how player stats persist (in-memory, Redis, etc).
type StatsStore interface {
	Load(ctx context.Context, playerID string) (domain.PlayerStats, error)
	Save(ctx context.Context, playerID string, stats domain.PlayerStats) error
}

// thresholdBadge ties a cumulative-XP threshold to its fixed badge.
type thresholdBadge struct {
	XP    int
	Badge domain.Badge
}

// thresholdBadges are evaluated in ascending order after every AddExperience.
var thresholdBadges = []thresholdBadge{
	{50, domain.Badge{ID: "novice", Icon: "🐣", Name: "Rookie Talker", Description: "Earned 50 XP"}},
	{200, domain.Badge{ID: "pro", Icon: "🎤", Name: "Chat Master", Description: "Earned 200 XP"}},
	{500, domain.Badge{ID: "arcade", Icon: "🕹️", Name: "Arcade Legend", Description: "Earned 500 XP"}},
}

// ExperienceUpdate reports the outcome of one AddExperience call.
type ExperienceUpdate struct {
	XPGained int            `json:"xpGained"`
	XP       int            `json:"xp"`
	Level    int            `json:"level"`
	LevelUp  bool           `json:"levelUp"`
	Unlocked []domain.Badge `json:"unlocked,omitempty"`
}

// Ledger owns one player's gamification state. Callers hold a handle and go
// through AddExperience/UnlockBadge; nothing else mutates the stats.
type Ledger struct {
	playerID string
	store    StatsStore

	mu    sync.Mutex
	stats domain.PlayerStats
}

// NewLedger builds a ledger for playerID, restoring persisted stats when the
// store has any. A nil store keeps the stats process-lifetime only.
func NewLedger(ctx context.Context, playerID string, store StatsStore) *Ledger {
	l := &Ledger{
		playerID: playerID,
		store:    store,
		stats:    domain.PlayerStats{Level: 1, DayStreak: 1},
	}
	if store != nil {
		if stats, err := store.Load(ctx, playerID); err == nil {
			stats.Level = domain.LevelForXP(stats.XP)
			if stats.DayStreak == 0 {
				stats.DayStreak = 1
			}
			l.stats = stats
		}
	}
	return l
}

// AddExperience adds amount to cumulative XP, recomputes the level and
// unlocks any newly-crossed threshold badges in ascending order. Crossing
// several thresholds in one call unlocks them all in the same update.
func (l *Ledger) AddExperience(ctx context.Context, amount int) ExperienceUpdate {
	l.mu.Lock()
	defer l.mu.Unlock()

	previousLevel := domain.LevelForXP(l.stats.XP)
	l.stats.XP += amount
	l.stats.Level = domain.LevelForXP(l.stats.XP)

	update := ExperienceUpdate{
		XPGained: amount,
		XP:       l.stats.XP,
		Level:    l.stats.Level,
		LevelUp:  l.stats.Level > previousLevel,
	}
	for _, tb := range thresholdBadges {
		if l.stats.XP >= tb.XP && l.unlockLocked(tb.Badge) {
			update.Unlocked = append(update.Unlocked, tb.Badge)
		}
	}

	l.persistLocked(ctx)
	return update
}

// UnlockBadge appends badge to the player's set unless a badge with the same
// ID is already present. It reports whether the badge was newly unlocked.
func (l *Ledger) UnlockBadge(ctx context.Context, badge domain.Badge) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.unlockLocked(badge) {
		return false
	}
	l.persistLocked(ctx)
	return true
}

func (l *Ledger) unlockLocked(badge domain.Badge) bool {
	for _, b := range l.stats.Badges {
		if b.ID == badge.ID {
			return false
		}
	}
	l.stats.Badges = append(l.stats.Badges, badge)
	return true
}

// Stats returns a snapshot of the player's stats.
func (l *Ledger) Stats() domain.PlayerStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	snapshot := l.stats
	snapshot.Badges = append([]domain.Badge(nil), l.stats.Badges...)
	return snapshot
}

// persistLocked saves best-effort; the in-memory ledger stays authoritative.
func (l *Ledger) persistLocked(ctx context.Context) {
	if l.store == nil {
		return
	}
	_ = l.store.Save(ctx, l.playerID, l.stats)
}
