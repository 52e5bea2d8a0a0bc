package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case SoloState:
		o.printSoloState(v)
	case SoloGuessResult:
		o.printSoloGuessResult(v)
	case DuelState:
		o.printDuelState(v)
	case RoomState:
		o.printRoomState(v)
	case GuessResult:
		o.printGuessResult(v)
	case []MatchSummary:
		o.printMatchSummaries(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	Kind         string `json:"kind"`
	Intelligence int    `json:"intelligence,omitempty"`
}

// SoloState response type. State is the opaque snapshot the CLI stores
// locally and sends back with the next guess.
type SoloState struct {
	State             json.RawMessage `json:"state"`
	MaskedWord        string          `json:"masked_word"`
	GuessedLetters    []string        `json:"guessed_letters"`
	WrongGuesses      int             `json:"wrong_guesses"`
	RemainingAttempts int             `json:"remaining_attempts"`
	Finished          bool            `json:"finished"`
	Won               bool            `json:"won"`
	SecretWord        string          `json:"secret_word,omitempty"`
}

// SoloGuessResult response type
type SoloGuessResult struct {
	Applied bool      `json:"applied"`
	Game    SoloState `json:"game"`
}

// MatchView response type
type MatchView struct {
	OpponentName   string   `json:"opponent_name"`
	MaskedWord     string   `json:"masked_word"`
	GuessedLetters []string `json:"guessed_letters"`
	IsCurrentTurn  bool     `json:"is_current_turn"`
	Finished       bool     `json:"finished"`
	WinnerID       string   `json:"winner_id,omitempty"`
}

// ComputerAction response type
type ComputerAction struct {
	Type    string `json:"type"`
	Letter  string `json:"letter,omitempty"`
	Correct bool   `json:"correct,omitempty"`
}

// DuelState response type
type DuelState struct {
	State    json.RawMessage  `json:"state"`
	View     MatchView        `json:"view"`
	Applied  bool             `json:"applied"`
	Correct  bool             `json:"correct"`
	Computer []ComputerAction `json:"computer_actions,omitempty"`
}

// RoomState response type
type RoomState struct {
	RoomID  string     `json:"room_id"`
	Phase   string     `json:"phase"`
	Version int64      `json:"version"`
	Players []string   `json:"players"`
	Changed bool       `json:"changed"`
	View    *MatchView `json:"view,omitempty"`
}

// GuessResult response type
type GuessResult struct {
	Applied bool      `json:"applied"`
	Correct bool      `json:"correct"`
	Room    RoomState `json:"room"`
}

// MatchSummary response type
type MatchSummary struct {
	RoomID      string            `json:"room_id"`
	Winner      string            `json:"winner"`
	WinnerName  string            `json:"winner_name"`
	Words       map[string]string `json:"words"`
	GuessCounts map[string]int    `json:"guess_counts"`
	CompletedAt string            `json:"completed_at"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Printf("Kind: %s\n", p.Kind)
	if p.Kind == "computer" {
		fmt.Printf("Intelligence: %d\n", p.Intelligence)
	}
}

func (o *Output) printSoloState(s SoloState) {
	fmt.Printf("Word: %s\n", spaced(s.MaskedWord))
	if len(s.GuessedLetters) > 0 {
		fmt.Printf("Guessed: %s\n", strings.Join(s.GuessedLetters, ", "))
	}
	fmt.Printf("Remaining attempts: %d\n", s.RemainingAttempts)

	if s.Finished {
		if s.Won {
			fmt.Println("You won!")
		} else {
			fmt.Printf("You lost. The word was: %s\n", s.SecretWord)
		}
	}
}

func (o *Output) printSoloGuessResult(r SoloGuessResult) {
	if !r.Applied {
		fmt.Println("Guess not counted")
	}
	o.printSoloState(r.Game)
}

func (o *Output) printMatchView(v MatchView) {
	fmt.Printf("Opponent: %s\n", v.OpponentName)
	fmt.Printf("Their word: %s\n", spaced(v.MaskedWord))
	if len(v.GuessedLetters) > 0 {
		fmt.Printf("Guessed: %s\n", strings.Join(v.GuessedLetters, ", "))
	}

	if v.Finished {
		fmt.Printf("Match over. Winner: %s\n", v.WinnerID)
		return
	}
	if v.IsCurrentTurn {
		fmt.Println("Your turn")
	} else {
		fmt.Println("Waiting for opponent")
	}
}

func (o *Output) printDuelState(d DuelState) {
	if !d.Applied {
		fmt.Println("Guess not counted")
	} else if d.Correct {
		fmt.Println("Correct!")
	}

	for _, a := range d.Computer {
		switch a.Type {
		case "guess":
			result := "miss"
			if a.Correct {
				result = "hit"
			}
			fmt.Printf("Computer guessed %q (%s)\n", a.Letter, result)
		case "solve":
			fmt.Println("Computer solved your word")
		case "match_complete":
			fmt.Println("Match complete")
		}
	}

	o.printMatchView(d.View)
}

func (o *Output) printRoomState(r RoomState) {
	fmt.Printf("Room: %s\n", r.RoomID)
	fmt.Printf("Phase: %s\n", r.Phase)
	fmt.Printf("Players: %s\n", strings.Join(r.Players, ", "))

	if r.View != nil {
		fmt.Println()
		o.printMatchView(*r.View)
	}
}

func (o *Output) printGuessResult(r GuessResult) {
	if !r.Applied {
		fmt.Println("Guess not counted")
	} else if r.Correct {
		fmt.Println("Correct!")
	}
	o.printRoomState(r.Room)
}

func (o *Output) printMatchSummaries(summaries []MatchSummary) {
	if len(summaries) == 0 {
		fmt.Println("No completed matches")
		return
	}

	for _, s := range summaries {
		fmt.Printf("Room %s: won by %s\n", s.RoomID, s.WinnerName)
		for player, word := range s.Words {
			fmt.Printf("  %s's word: %s\n", player, word)
		}
		for player, n := range s.GuessCounts {
			fmt.Printf("  %s made %d guesses\n", player, n)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

// spaced renders a masked word with gaps, "_ a _ _" style
func spaced(word string) string {
	return strings.Join(strings.Split(word, ""), " ")
}
