package response

import (
	"time"

	"github.com/ajmcleod/hangduel/internal/model"
	"github.com/ajmcleod/hangduel/internal/services/engine"
	"github.com/ajmcleod/hangduel/internal/services/registry"
	"github.com/ajmcleod/hangduel/internal/session"
)

// Player represents a player in API responses
type Player struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	Kind         string `json:"kind"`
	Intelligence int    `json:"intelligence,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	out := Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		Kind:        string(p.Kind),
	}
	if p.IsComputer() {
		out.Intelligence = p.Intelligence
	}
	return out
}

// SoloState is a solo game in API responses: the opaque session snapshot
// the client must send back, plus the fields it renders. The secret word
// is disclosed only once the game is over.
type SoloState struct {
	State             *session.SoloSnapshot `json:"state"`
	MaskedWord        string                `json:"masked_word"`
	GuessedLetters    []string              `json:"guessed_letters"`
	WrongGuesses      int                   `json:"wrong_guesses"`
	RemainingAttempts int                   `json:"remaining_attempts"`
	Finished          bool                  `json:"finished"`
	Won               bool                  `json:"won"`
	SecretWord        string                `json:"secret_word,omitempty"`
}

// SoloStateFromModel converts a solo game
func SoloStateFromModel(g *model.SoloGame) SoloState {
	out := SoloState{
		State:             session.EncodeSolo(g),
		MaskedWord:        g.Word.Masked(),
		GuessedLetters:    g.Word.GuessedLetters(),
		WrongGuesses:      g.WrongGuesses,
		RemainingAttempts: g.RemainingAttempts(),
		Finished:          g.Finished,
		Won:               g.Won,
	}
	if g.Finished {
		out.SecretWord = g.Word.Secret
	}
	return out
}

// SoloGuessResult reports the outcome of a solo guess. Applied is false
// when the input was rejected and the game did not move.
type SoloGuessResult struct {
	Applied bool      `json:"applied"`
	Game    SoloState `json:"game"`
}

// MatchView is one side's view of a versus match
type MatchView struct {
	OpponentName   string   `json:"opponent_name"`
	MaskedWord     string   `json:"masked_word"`
	GuessedLetters []string `json:"guessed_letters"`
	IsCurrentTurn  bool     `json:"is_current_turn"`
	Finished       bool     `json:"finished"`
	WinnerID       string   `json:"winner_id,omitempty"`
}

// MatchViewFromModel converts a player view
func MatchViewFromModel(v model.PlayerView) MatchView {
	return MatchView{
		OpponentName:   v.OpponentName,
		MaskedWord:     v.MaskedWord,
		GuessedLetters: v.GuessedLetters,
		IsCurrentTurn:  v.IsCurrentTurn,
		Finished:       v.Finished,
		WinnerID:       string(v.WinnerID),
	}
}

// ComputerAction narrates one computer move
type ComputerAction struct {
	Type    string `json:"type"`
	Letter  string `json:"letter,omitempty"`
	Correct bool   `json:"correct,omitempty"`
}

// ComputerActionsFromEngine converts an engine action trail
func ComputerActionsFromEngine(trail []engine.ComputerAction) []ComputerAction {
	out := make([]ComputerAction, len(trail))
	for i, a := range trail {
		out[i] = ComputerAction{
			Type:    string(a.Type),
			Letter:  a.Letter,
			Correct: a.Correct,
		}
	}
	return out
}

// DuelState is a human-vs-computer match in API responses
type DuelState struct {
	State    *session.VersusSnapshot `json:"state"`
	View     MatchView               `json:"view"`
	Applied  bool                    `json:"applied"`
	Correct  bool                    `json:"correct"`
	Computer []ComputerAction        `json:"computer_actions,omitempty"`
}

// RoomState is a room snapshot in API responses
type RoomState struct {
	RoomID  string     `json:"room_id"`
	Phase   string     `json:"phase"`
	Version int64      `json:"version"`
	Players []string   `json:"players"`
	Changed bool       `json:"changed"`
	View    *MatchView `json:"view,omitempty"`
}

// RoomStateFromView converts a registry room view. since is the version
// the client last saw; Changed reports whether anything moved since.
func RoomStateFromView(v *registry.RoomView, since int64) RoomState {
	out := RoomState{
		RoomID:  string(v.RoomID),
		Phase:   string(v.Phase),
		Version: v.Version,
		Players: v.PlayerNames,
		Changed: v.Version != since,
	}
	if v.View != nil {
		mv := MatchViewFromModel(*v.View)
		out.View = &mv
	}
	return out
}

// GuessResult reports the outcome of a room guess or solve
type GuessResult struct {
	Applied bool      `json:"applied"`
	Correct bool      `json:"correct"`
	Room    RoomState `json:"room"`
}

// MatchSummary represents a completed match
type MatchSummary struct {
	RoomID      string            `json:"room_id"`
	Winner      string            `json:"winner"`
	WinnerName  string            `json:"winner_name"`
	Words       map[string]string `json:"words"`
	GuessCounts map[string]int    `json:"guess_counts"`
	CompletedAt time.Time         `json:"completed_at"`
}

// MatchSummaryFromModel converts a model.MatchSummary
func MatchSummaryFromModel(s *model.MatchSummary) MatchSummary {
	words := make(map[string]string, len(s.Words))
	for id, w := range s.Words {
		words[string(id)] = w
	}
	counts := make(map[string]int, len(s.GuessCounts))
	for id, n := range s.GuessCounts {
		counts[string(id)] = n
	}
	return MatchSummary{
		RoomID:      string(s.RoomID),
		Winner:      string(s.Winner),
		WinnerName:  s.WinnerName,
		Words:       words,
		GuessCounts: counts,
		CompletedAt: s.CompletedAt,
	}
}
