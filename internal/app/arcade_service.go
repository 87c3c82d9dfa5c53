package app

import (
	"context"
	"sync"

	"esl-arcade-service/internal/arena"
	"esl-arcade-service/internal/domain"
	"esl-arcade-service/internal/gamify"
)

// LevelRepository loads level content (from cache/backing store).
type LevelRepository interface {
	GetLevel(ctx context.Context, levelID string) (domain.Level, error)
	ListLevels(ctx context.Context) ([]domain.LevelSummary, error)
}

// xpPerScore converts a final arena score into experience: floor(score/10).
const xpPerScore = 10

// ArcadeService is the arcade shell: it publishes the level menu, guards the
// one-session-per-player rule and converts final scores into experience.
type ArcadeService struct {
	levels LevelRepository
	stats  gamify.StatsStore
	cues   arena.CuePlayer

	mu      sync.Mutex
	active  map[string]*arena.Session
	ledgers map[string]*gamify.Ledger
}

func NewArcadeService(levels LevelRepository, stats gamify.StatsStore, cues arena.CuePlayer) *ArcadeService {
	if cues == nil {
		cues = arena.NopCuePlayer{}
	}
	return &ArcadeService{
		levels:  levels,
		stats:   stats,
		cues:    cues,
		active:  make(map[string]*arena.Session),
		ledgers: make(map[string]*gamify.Ledger),
	}
}

// ListLevels returns the published level menu.
func (s *ArcadeService) ListLevels(ctx context.Context) ([]domain.LevelSummary, error) {
	return s.levels.ListLevels(ctx)
}

// StartSession creates an arena session for the player. Starting a level
// while another run is in progress is rejected here, never raced inside the
// arena. The caller must Start the session after subscribing. Extra options
// (clock, timer factory) are for deterministic tests.
func (s *ArcadeService) StartSession(ctx context.Context, playerID, levelID string, opts ...arena.Option) (*arena.Session, error) {
	level, err := s.levels.GetLevel(ctx, levelID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.active[playerID]; ok {
		return nil, domain.ErrSessionActive
	}
	session := arena.NewSession(level, append([]arena.Option{arena.WithCuePlayer(s.cues)}, opts...)...)
	s.active[playerID] = session
	return session, nil
}

// Session returns the player's active arena session, if any.
func (s *ArcadeService) Session(playerID string) (*arena.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.active[playerID]
	return session, ok
}

// EndSession exits and discards the player's active session.
func (s *ArcadeService) EndSession(playerID string) {
	s.mu.Lock()
	session, ok := s.active[playerID]
	delete(s.active, playerID)
	s.mu.Unlock()
	if ok {
		session.Exit()
	}
}

// CompleteSession releases the finished session and grants experience for
// the final score. Fractional experience is discarded, never accumulated.
func (s *ArcadeService) CompleteSession(ctx context.Context, playerID string, finalScore int) gamify.ExperienceUpdate {
	s.mu.Lock()
	delete(s.active, playerID)
	s.mu.Unlock()
	return s.Ledger(ctx, playerID).AddExperience(ctx, finalScore/xpPerScore)
}

// Ledger returns (creating on first use) the player's gamification ledger.
func (s *ArcadeService) Ledger(ctx context.Context, playerID string) *gamify.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	ledger, ok := s.ledgers[playerID]
	if !ok {
		ledger = gamify.NewLedger(ctx, playerID, s.stats)
		s.ledgers[playerID] = ledger
	}
	return ledger
}
