package redis

import (
	"context"
	"encoding/json"
	"strconv"

	"esl-arcade-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// StatsStore persists player stats in Redis so experience and badges survive
// restarts. Layout:
//
//	HSET player:{id} xp {n} daystreak {n}
//	RPUSH player:{id}:badges {badge json}   (insertion order preserved)
type StatsStore struct {
	client *redis.Client
}

func NewStatsStore(client *redis.Client) *StatsStore {
	return &StatsStore{client: client}
}

func (s *StatsStore) Load(ctx context.Context, playerID string) (domain.PlayerStats, error) {
	fields, err := s.client.HGetAll(ctx, s.statsKey(playerID)).Result()
	if err != nil {
		return domain.PlayerStats{}, err
	}

	stats := domain.PlayerStats{Level: 1, DayStreak: 1}
	if raw, ok := fields["xp"]; ok {
		if xp, err := strconv.Atoi(raw); err == nil {
			stats.XP = xp
		}
	}
	if raw, ok := fields["daystreak"]; ok {
		if streak, err := strconv.Atoi(raw); err == nil && streak > 0 {
			stats.DayStreak = streak
		}
	}
	stats.Level = domain.LevelForXP(stats.XP)

	entries, err := s.client.LRange(ctx, s.badgesKey(playerID), 0, -1).Result()
	if err != nil {
		return stats, nil
	}
	for _, entry := range entries {
		var badge domain.Badge
		if err := json.Unmarshal([]byte(entry), &badge); err == nil {
			stats.Badges = append(stats.Badges, badge)
		}
	}
	return stats, nil
}

func (s *StatsStore) Save(ctx context.Context, playerID string, stats domain.PlayerStats) error {
	pipe := s.client.Pipeline()
	pipe.HSet(ctx, s.statsKey(playerID), "xp", stats.XP, "daystreak", stats.DayStreak)
	pipe.Del(ctx, s.badgesKey(playerID))
	for _, badge := range stats.Badges {
		raw, err := json.Marshal(badge)
		if err != nil {
			continue
		}
		pipe.RPush(ctx, s.badgesKey(playerID), raw)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *StatsStore) statsKey(playerID string) string {
	return "player:" + playerID
}

func (s *StatsStore) badgesKey(playerID string) string {
	return "player:" + playerID + ":badges"
}
