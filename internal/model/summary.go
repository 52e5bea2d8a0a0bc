package model

import "time"

// MatchSummary is a lightweight record of a completed versus match
type MatchSummary struct {
	RoomID      RoomID
	Winner      PlayerID
	WinnerName  string
	Words       map[PlayerID]string
	GuessCounts map[PlayerID]int
	CompletedAt time.Time
}

// NewMatchSummary builds a summary from a finished versus game
func NewMatchSummary(roomID RoomID, g *VersusGame, completedAt time.Time) *MatchSummary {
	words := make(map[PlayerID]string, len(g.Words))
	counts := make(map[PlayerID]int, len(g.Words))
	for ownerID, word := range g.Words {
		words[ownerID] = word.Secret
		// Guesses against a word were made by its owner's opponent.
		if opponent, ok := g.Opponent(ownerID); ok {
			counts[opponent.ID] = len(word.Guessed)
		}
	}

	winnerName := ""
	for _, p := range g.Players {
		if p.ID == g.WinnerID {
			winnerName = p.DisplayName
		}
	}

	return &MatchSummary{
		RoomID:      roomID,
		Winner:      g.WinnerID,
		WinnerName:  winnerName,
		Words:       words,
		GuessCounts: counts,
		CompletedAt: completedAt,
	}
}
