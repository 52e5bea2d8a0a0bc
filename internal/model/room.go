package model

import "time"

// RoomID is the external, player-chosen key addressing a room
type RoomID string

// MaxRoomPlayers is the number of seats in a room
const MaxRoomPlayers = 2

// RoomPhase describes what a room is waiting on, from one player's
// perspective for the word-submission phases.
type RoomPhase string

const (
	PhaseWaitingForPlayers RoomPhase = "waiting_for_players"
	PhaseChooseWord        RoomPhase = "choose_word"
	PhaseWaitingForOther   RoomPhase = "waiting_for_other_word"
	PhasePlaying           RoomPhase = "playing"
	PhaseFinished          RoomPhase = "finished"
)

// Room pairs two human players for a versus match. It holds pre-match
// word-submission state and, once both words are in, the match itself.
// Rooms are volatile: they live for the process lifetime and are owned
// exclusively by the registry.
type Room struct {
	ID RoomID

	// Players in join order; order fixes the player-1/player-2 roles.
	Players []Player

	// PendingWords holds submitted (normalized) words before the match
	// exists, keyed by the owning player.
	PendingWords map[PlayerID]string

	Match *VersusGame

	// Version is a monotonic counter bumped once per observable mutation
	// (join, word submission, match creation, guess, solve, timeout) so
	// polling clients can cheaply detect change.
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRoom creates an empty room
func NewRoom(id RoomID, now time.Time) *Room {
	return &Room{
		ID:           id,
		PendingWords: make(map[PlayerID]string),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// GetPlayer returns the joined player with the given ID, or nil
func (r *Room) GetPlayer(id PlayerID) *Player {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i]
		}
	}
	return nil
}

// IsFull reports whether both seats are taken
func (r *Room) IsFull() bool {
	return len(r.Players) >= MaxRoomPlayers
}

// PhaseFor returns the room phase as seen by the given player
func (r *Room) PhaseFor(playerID PlayerID) RoomPhase {
	if r.Match != nil {
		if r.Match.Finished {
			return PhaseFinished
		}
		return PhasePlaying
	}
	if !r.IsFull() {
		return PhaseWaitingForPlayers
	}
	if _, submitted := r.PendingWords[playerID]; submitted {
		return PhaseWaitingForOther
	}
	return PhaseChooseWord
}
