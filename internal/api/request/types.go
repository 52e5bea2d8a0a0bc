package request

import "github.com/ajmcleod/hangduel/internal/session"

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// StartSoloRequest is the request body for starting a solo game
type StartSoloRequest struct {
	MaxAttempts int `json:"max_attempts,omitempty"`
}

// GuessSoloRequest carries the solo session state and one letter guess.
// The server keeps nothing between requests; the state snapshot rides the
// request/response cycle.
type GuessSoloRequest struct {
	State  *session.SoloSnapshot `json:"state"`
	Letter string                `json:"letter"`
}

// StartDuelRequest is the request body for starting a human-vs-computer match
type StartDuelRequest struct {
	Intelligence int `json:"intelligence"`
	// Word is the human's own word, the one the computer will guess.
	// Empty means pick one from the pool.
	Word string `json:"word,omitempty"`
}

// GuessDuelRequest carries the duel session state and one letter guess
type GuessDuelRequest struct {
	State  *session.VersusSnapshot `json:"state"`
	Letter string                  `json:"letter"`
}

// SolveDuelRequest carries the duel session state for a solve attempt
type SolveDuelRequest struct {
	State *session.VersusSnapshot `json:"state"`
}

// SubmitWordRequest is the request body for submitting a room word
type SubmitWordRequest struct {
	Word string `json:"word"`
}

// GuessRoomRequest is the request body for a room letter guess
type GuessRoomRequest struct {
	Letter string `json:"letter"`
}
