package arena

import (
	"math"
	"sync"
	"time"

	"esl-arcade-service/internal/domain"
)

// Phase is the arena's position in one level play-through.
type Phase string

const (
	PhaseGetReady Phase = "GET_READY"
	PhaseQuestion Phase = "QUESTION"
	PhaseFeedback Phase = "FEEDBACK"
	PhaseResults  Phase = "RESULTS"
	// PhaseFaulted means the level data was malformed; only Exit works and
	// the session never completes.
	PhaseFaulted Phase = "FAULTED"
)

// TimedOut is the selection sentinel recorded when the question clock ran out.
const TimedOut = -1

const (
	getReadyDuration = 3 * time.Second
	tickInterval     = 100 * time.Millisecond

	basePoints    = 1000
	minimumPoints = 500
)

// EventType tags outbound session events.
type EventType string

const (
	EventPhaseChanged     EventType = "phaseChanged"
	EventTick             EventType = "tick"
	EventAnswerEvaluated  EventType = "answerEvaluated"
	EventSessionCompleted EventType = "sessionCompleted"
)

// Event is what the session emits for the presentation layer to react to.
type Event struct {
	Type          EventType        `json:"type"`
	Phase         Phase            `json:"phase,omitempty"`
	QuestionIndex int              `json:"questionIndex"`
	QuestionCount int              `json:"questionCount,omitempty"`
	Question      *domain.Question `json:"question,omitempty"`
	Display       int              `json:"display,omitempty"` // ceiling of remaining seconds
	DoublePoints  bool             `json:"doublePoints,omitempty"`
	TimedOut      bool             `json:"timedOut,omitempty"`
	Correct       bool             `json:"correct,omitempty"`
	Points        int              `json:"points,omitempty"`
	Streak        int              `json:"streak,omitempty"`
	Score         int              `json:"score,omitempty"`
	CorrectAnswer string           `json:"correctAnswer,omitempty"`
	FinalScore    int              `json:"finalScore,omitempty"`
}

// TimerFactory schedules the single active phase timer. The returned func
// stops the timer; stopping an already-fired timer is a no-op.
type TimerFactory func(d time.Duration, fn func()) (stop func())

func defaultTimerFactory(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Session drives one play-through of a level. All state is owned by the
// session and guarded by its mutex; timer callbacks verify the generation
// stamp before touching anything, so a callback that fires after a
// transition (or after Exit) is a guaranteed no-op.
type Session struct {
	level    domain.Level
	cues     CuePlayer
	now      func() time.Time
	newTimer TimerFactory

	mu            sync.Mutex
	gen           uint64
	phase         Phase
	qIndex        int
	deadline      time.Time
	score         int
	streak        int
	lastSelection int
	lastPoints    int
	lastCorrect   bool
	stopTimer     func()
	done          bool
	subscribers   map[chan Event]struct{}
}

// Option configures a Session.
type Option func(*Session)

// WithClock injects the time source for deterministic scoring in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithTimerFactory injects the phase timer scheduler.
func WithTimerFactory(f TimerFactory) Option {
	return func(s *Session) { s.newTimer = f }
}

// WithCuePlayer injects the sound-cue collaborator.
func WithCuePlayer(c CuePlayer) Option {
	return func(s *Session) { s.cues = c }
}

// NewSession creates a session for one play-through of level. The session is
// idle until Start is called, so callers can subscribe first.
func NewSession(level domain.Level, opts ...Option) *Session {
	s := &Session{
		level:         level,
		cues:          NopCuePlayer{},
		now:           time.Now,
		newTimer:      defaultTimerFactory,
		lastSelection: TimedOut,
		subscribers:   make(map[chan Event]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Level returns the level this session plays.
func (s *Session) Level() domain.Level {
	return s.level
}

// Start begins the play-through. A level with no questions, or with any
// malformed question, faults the session instead: the arena refuses to
// render and offers only an exit path.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done || s.phase != "" {
		return
	}
	if !levelPlayable(s.level) {
		s.phase = PhaseFaulted
		s.gen++
		s.emitLocked(Event{Type: EventPhaseChanged, Phase: PhaseFaulted})
		return
	}
	s.enterGetReadyLocked()
}

func levelPlayable(level domain.Level) bool {
	if len(level.Questions) == 0 {
		return false
	}
	for _, q := range level.Questions {
		if !q.Valid() {
			return false
		}
	}
	return true
}

// Subscribe returns a channel receiving session events. The caller must
// invoke the returned cancel function to avoid leaks.
func (s *Session) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 32)

	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// SubmitAnswer evaluates the player's option choice. Only the first
// selection during QUESTION is honored; anything else is ignored.
func (s *Session) SubmitAnswer(optionIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done || s.phase != PhaseQuestion {
		return
	}
	question := s.level.Questions[s.qIndex]
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return
	}

	remaining := s.remainingLocked()
	s.lastSelection = optionIndex
	s.lastCorrect = optionIndex == question.CorrectIndex

	if s.lastCorrect {
		s.lastPoints = scoreAnswer(remaining.Seconds(), float64(question.TimeLimit), s.streak, question.DoublePoints)
		s.score += s.lastPoints
		s.streak++
		s.cues.Play(CueCorrect)
	} else {
		s.lastPoints = 0
		s.streak = 0
		s.cues.Play(CueWrong)
	}

	s.enterFeedbackLocked(question, false)
}

// AcknowledgeFeedback advances past FEEDBACK, or finishes the session from
// RESULTS, emitting the final score exactly once.
func (s *Session) AcknowledgeFeedback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return
	}
	switch s.phase {
	case PhaseFeedback:
		if s.qIndex+1 < len(s.level.Questions) {
			s.qIndex++
			s.lastSelection = TimedOut
			s.lastPoints = 0
			s.enterGetReadyLocked()
			return
		}
		s.enterResultsLocked()
	case PhaseResults:
		s.emitLocked(Event{Type: EventSessionCompleted, FinalScore: s.score})
		s.teardownLocked()
	}
}

// Exit abandons the session from any phase. All pending timers are dead
// after the generation bump; no completion event is emitted.
func (s *Session) Exit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return
	}
	s.teardownLocked()
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Score returns the cumulative session score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Streak returns the current consecutive-correct counter.
func (s *Session) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streak
}

// QuestionIndex returns the 0-based index of the active question.
func (s *Session) QuestionIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.qIndex
}

// DisplaySeconds returns the visible countdown digit: the ceiling of the
// fractional remaining time. Scoring never uses this value.
func (s *Session) DisplaySeconds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return displaySeconds(s.remainingLocked())
}

func displaySeconds(remaining time.Duration) int {
	return int(math.Ceil(remaining.Seconds()))
}

func (s *Session) remainingLocked() time.Duration {
	remaining := s.deadline.Sub(s.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// --- transitions (all called with the mutex held) ---

func (s *Session) enterGetReadyLocked() {
	gen := s.advanceLocked(PhaseGetReady, getReadyDuration)
	question := s.level.Questions[s.qIndex]
	s.emitLocked(Event{
		Type:          EventPhaseChanged,
		Phase:         PhaseGetReady,
		QuestionIndex: s.qIndex,
		QuestionCount: len(s.level.Questions),
		Display:       displaySeconds(getReadyDuration),
		DoublePoints:  question.DoublePoints,
	})
	s.stopTimer = s.newTimer(getReadyDuration, s.guarded(gen, s.enterQuestionLocked))
	go s.tickLoop(gen)
}

func (s *Session) enterQuestionLocked() {
	question := s.level.Questions[s.qIndex]
	limit := time.Duration(question.TimeLimit) * time.Second
	gen := s.advanceLocked(PhaseQuestion, limit)

	shown := question
	s.emitLocked(Event{
		Type:          EventPhaseChanged,
		Phase:         PhaseQuestion,
		QuestionIndex: s.qIndex,
		QuestionCount: len(s.level.Questions),
		Question:      &shown,
		Display:       displaySeconds(limit),
		DoublePoints:  question.DoublePoints,
		Score:         s.score,
	})
	s.cues.Play(CueQuestionStart)

	s.stopTimer = s.newTimer(limit, s.guarded(gen, s.timeOutLocked))
	go s.tickLoop(gen)
}

func (s *Session) timeOutLocked() {
	question := s.level.Questions[s.qIndex]
	s.lastSelection = TimedOut
	s.lastCorrect = false
	s.lastPoints = 0
	s.streak = 0
	s.cues.Play(CueWrong)
	s.enterFeedbackLocked(question, true)
}

func (s *Session) enterFeedbackLocked(question domain.Question, timedOut bool) {
	s.advanceLocked(PhaseFeedback, 0)
	ev := Event{
		Type:          EventAnswerEvaluated,
		QuestionIndex: s.qIndex,
		TimedOut:      timedOut,
		Correct:       s.lastCorrect,
		Points:        s.lastPoints,
		Streak:        s.streak,
		Score:         s.score,
	}
	if !s.lastCorrect {
		ev.CorrectAnswer = question.Options[question.CorrectIndex]
	}
	s.emitLocked(ev)
	s.emitLocked(Event{
		Type:          EventPhaseChanged,
		Phase:         PhaseFeedback,
		QuestionIndex: s.qIndex,
		QuestionCount: len(s.level.Questions),
		Score:         s.score,
	})
}

func (s *Session) enterResultsLocked() {
	s.advanceLocked(PhaseResults, 0)
	s.cues.Play(CueLevelComplete)
	s.emitLocked(Event{
		Type:          EventPhaseChanged,
		Phase:         PhaseResults,
		QuestionIndex: s.qIndex,
		QuestionCount: len(s.level.Questions),
		Score:         s.score,
	})
}

// advanceLocked performs the bookkeeping every transition shares: bump the
// generation stamp (killing pending callbacks), cancel the active timer and
// reset the phase deadline.
func (s *Session) advanceLocked(phase Phase, limit time.Duration) uint64 {
	s.gen++
	if s.stopTimer != nil {
		s.stopTimer()
		s.stopTimer = nil
	}
	s.phase = phase
	if limit > 0 {
		s.deadline = s.now().Add(limit)
	} else {
		s.deadline = s.now()
	}
	return s.gen
}

// guarded wraps a locked transition so a stale timer callback cannot mutate
// a session that has already moved on or been discarded.
func (s *Session) guarded(gen uint64, fn func()) func() {
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.done || s.gen != gen {
			return
		}
		fn()
	}
}

func (s *Session) tickLoop(gen uint64) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for range ticker.C {
		s.mu.Lock()
		if s.done || s.gen != gen {
			s.mu.Unlock()
			return
		}
		s.emitLocked(Event{
			Type:          EventTick,
			Phase:         s.phase,
			QuestionIndex: s.qIndex,
			Display:       displaySeconds(s.remainingLocked()),
		})
		s.mu.Unlock()
	}
}

func (s *Session) teardownLocked() {
	s.done = true
	s.gen++
	if s.stopTimer != nil {
		s.stopTimer()
		s.stopTimer = nil
	}
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
}

func (s *Session) emitLocked(ev Event) {
	for ch := range s.subscribers {
		select {
		case ch <- ev:
		default:
			// drop the oldest so a slow subscriber never blocks the arena
			select {
			case <-ch:
			default:
			}
			ch <- ev
		}
	}
}

// scoreAnswer computes the points for a correct answer. The continuous
// fractional remaining time feeds the ratio; only the display rounds.
// Streak bonuses stack (+100 past 2, a further +200 past 4) and the
// double-points flag doubles the total after the bonuses.
func scoreAnswer(remaining, limit float64, streak int, double bool) int {
	ratio := remaining / limit
	pts := int(math.Round(basePoints * ratio))
	if pts < minimumPoints {
		pts = minimumPoints
	}
	if streak > 2 {
		pts += 100
	}
	if streak > 4 {
		pts += 200
	}
	if double {
		pts *= 2
	}
	return pts
}
