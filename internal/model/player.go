package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// PlayerKind distinguishes human players from computer opponents
type PlayerKind string

const (
	KindHuman    PlayerKind = "human"
	KindComputer PlayerKind = "computer"
)

// Intelligence bounds for computer players
const (
	MinIntelligence = 0
	MaxIntelligence = 100
)

// Player represents a game participant. Players are value-like records;
// identity is by ID only.
type Player struct {
	ID          PlayerID
	DisplayName string
	Kind        PlayerKind

	// Intelligence is the 0-100 dial for computer opponents.
	// Zero and unused for humans.
	Intelligence int

	CreatedAt time.Time
}

// NewHumanPlayer creates a human player record
func NewHumanPlayer(id PlayerID, displayName string, createdAt time.Time) Player {
	return Player{
		ID:          id,
		DisplayName: displayName,
		Kind:        KindHuman,
		CreatedAt:   createdAt,
	}
}

// NewComputerPlayer creates a computer player record, clamping intelligence
// into [MinIntelligence, MaxIntelligence].
func NewComputerPlayer(id PlayerID, displayName string, intelligence int, createdAt time.Time) Player {
	return Player{
		ID:           id,
		DisplayName:  displayName,
		Kind:         KindComputer,
		Intelligence: ClampIntelligence(intelligence),
		CreatedAt:    createdAt,
	}
}

// ClampIntelligence bounds an intelligence value into the valid range
func ClampIntelligence(intelligence int) int {
	if intelligence < MinIntelligence {
		return MinIntelligence
	}
	if intelligence > MaxIntelligence {
		return MaxIntelligence
	}
	return intelligence
}

// IsComputer reports whether this player is a computer opponent
func (p Player) IsComputer() bool {
	return p.Kind == KindComputer
}
