package arena

import "log"

// Cue names a sound effect the presentation layer may play. Cues are
// fire-and-forget; a player must never block the state machine.
type Cue string

const (
	CueQuestionStart Cue = "questionStart"
	CueCorrect       Cue = "correct"
	CueWrong         Cue = "wrong"
	CueLevelComplete Cue = "levelComplete"
)

// CuePlayer is the sound-cue collaborator consumed by the arena.
type CuePlayer interface {
	Play(cue Cue)
}

// NopCuePlayer discards all cues.
type NopCuePlayer struct{}

func (NopCuePlayer) Play(Cue) {}

// LogCuePlayer writes cues to the process log, handy when running headless.
type LogCuePlayer struct{}

func (LogCuePlayer) Play(cue Cue) {
	log.Printf("cue: %s", cue)
}
