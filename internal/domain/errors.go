package domain

import "errors"

var (
	// ErrLevelNotFound indicates the level content could not be loaded.
	ErrLevelNotFound = errors.New("level not found")
	// ErrSessionNotFound is returned when no arena session is active.
	ErrSessionNotFound = errors.New("arena session not found")
	// ErrSessionActive is returned when a level is selected while another run is in progress.
	ErrSessionActive = errors.New("arena session already in progress")
	// ErrMalformedLevel indicates question data the arena refuses to render.
	ErrMalformedLevel = errors.New("malformed level data")
)
