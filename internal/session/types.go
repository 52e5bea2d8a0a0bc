// Package session defines the serialization boundary: explicit, versioned
// snapshot structs with exact round-trip encode/decode for every entity
// that must survive across stateless request cycles. Decoding validates
// structurally and fails loudly on malformed input instead of building a
// semantically broken state machine.
package session

import "time"

// SchemaVersion is the current snapshot schema version
const SchemaVersion = 1

// PlayerSnapshot is the wire form of a player
type PlayerSnapshot struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	Kind         string `json:"kind"`
	Intelligence int    `json:"intelligence,omitempty"`
}

// WordSnapshot is the wire form of a word state
type WordSnapshot struct {
	Secret         string   `json:"secret"`
	GuessedLetters []string `json:"guessed_letters"`
}

// SoloSnapshot is the wire form of a solo game
type SoloSnapshot struct {
	SchemaVersion int            `json:"schema_version"`
	Player        PlayerSnapshot `json:"player"`
	Word          WordSnapshot   `json:"word"`
	MaxAttempts   int            `json:"max_attempts"`
	WrongGuesses  int            `json:"wrong_guesses"`
	Finished      bool           `json:"finished"`
	Won           bool           `json:"won"`
}

// VersusSnapshot is the wire form of a versus game. Words is keyed by the
// OWNING player's ID; the mapping direction is easy to invert by mistake,
// so decode cross-checks the keys against the player list.
type VersusSnapshot struct {
	SchemaVersion int                     `json:"schema_version"`
	Players       []PlayerSnapshot        `json:"players"`
	Words         map[string]WordSnapshot `json:"words"`
	CurrentIdx    int                     `json:"current_idx"`
	TurnStartedAt time.Time               `json:"turn_started_at"`
	Finished      bool                    `json:"finished"`
	WinnerID      string                  `json:"winner_id,omitempty"`
}

// RoomSnapshot is the wire form of a match room
type RoomSnapshot struct {
	SchemaVersion int               `json:"schema_version"`
	ID            string            `json:"id"`
	Players       []PlayerSnapshot  `json:"players"`
	PendingWords  map[string]string `json:"pending_words"`
	Match         *VersusSnapshot   `json:"match,omitempty"`
	Version       int64             `json:"version"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
