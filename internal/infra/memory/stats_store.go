package memory

import (
	"context"
	"sync"

	"esl-arcade-service/internal/domain"
)

// StatsStore is an in-memory implementation of gamify.StatsStore; stats live
// for the process lifetime only.
type StatsStore struct {
	mu    sync.RWMutex
	stats map[string]domain.PlayerStats
}

func NewStatsStore() *StatsStore {
	return &StatsStore{stats: make(map[string]domain.PlayerStats)}
}

func (s *StatsStore) Load(_ context.Context, playerID string) (domain.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.stats[playerID]
	if !ok {
		return domain.PlayerStats{Level: 1, DayStreak: 1}, nil
	}
	return stats, nil
}

func (s *StatsStore) Save(_ context.Context, playerID string, stats domain.PlayerStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats[playerID] = stats
	return nil
}
