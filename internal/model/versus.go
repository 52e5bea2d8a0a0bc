package model

import "time"

// VersusGame is the two-sided configuration. Each player owns one word that
// the opponent is trying to reveal. There is no attempt budget; instead the
// turn passes on a wrong guess, while a correct guess keeps it, so accurate
// play compounds into extra turns.
type VersusGame struct {
	Players [2]Player

	// Words maps each player's ID to the word that player OWNS,
	// i.e. the word the opponent is guessing.
	Words map[PlayerID]*WordState

	CurrentIdx    int
	TurnStartedAt time.Time
	Finished      bool
	WinnerID      PlayerID
}

// NewVersusGame creates a versus game. word1 is owned by player1 (guessed by
// player2) and word2 by player2. firstIdx selects who opens, 0 or 1.
func NewVersusGame(player1, player2 Player, word1, word2 string, firstIdx int, now time.Time) *VersusGame {
	if firstIdx != 0 && firstIdx != 1 {
		firstIdx = 0
	}
	return &VersusGame{
		Players: [2]Player{player1, player2},
		Words: map[PlayerID]*WordState{
			player1.ID: NewWordState(word1),
			player2.ID: NewWordState(word2),
		},
		CurrentIdx:    firstIdx,
		TurnStartedAt: now,
	}
}

// CurrentPlayer returns the player whose turn it is
func (g *VersusGame) CurrentPlayer() Player {
	return g.Players[g.CurrentIdx]
}

// Opponent returns the other player, or false if the ID is not in the game
func (g *VersusGame) Opponent(playerID PlayerID) (Player, bool) {
	switch playerID {
	case g.Players[0].ID:
		return g.Players[1], true
	case g.Players[1].ID:
		return g.Players[0], true
	}
	return Player{}, false
}

// opponentWord returns the word the given player is guessing, i.e. the word
// owned by their opponent.
func (g *VersusGame) opponentWord(playerID PlayerID) (*WordState, bool) {
	opponent, ok := g.Opponent(playerID)
	if !ok {
		return nil, false
	}
	return g.Words[opponent.ID], true
}

// isActing reports whether the given player may act right now
func (g *VersusGame) isActing(playerID PlayerID) bool {
	return !g.Finished && g.CurrentPlayer().ID == playerID
}

// GuessLetter applies a letter guess by the acting player against the
// opponent's word. It returns (correct, applied): applied is false, with no
// state change, when the game is finished or it is not this player's turn.
// Completing the word ends the game with the guesser as winner; a wrong
// guess passes the turn; a correct-but-incomplete guess keeps it.
func (g *VersusGame) GuessLetter(playerID PlayerID, letter string, now time.Time) (correct, applied bool) {
	if !g.isActing(playerID) {
		return false, false
	}

	normalized, ok := NormalizeLetter(letter)
	if !ok {
		return false, false
	}

	word, ok := g.opponentWord(playerID)
	if !ok {
		return false, false
	}
	if word.Guessed[normalized] {
		return false, false
	}

	correct = word.ApplyGuess(normalized)

	if word.FullyRevealed() {
		g.Finished = true
		g.WinnerID = playerID
		return correct, true
	}

	if !correct {
		g.passTurn(now)
	}
	return correct, true
}

// Solve reveals the opponent's entire word in one transition and ends the
// game with the acting player as winner. The resulting state is the same as
// guessing every remaining letter correctly, but it is exposed separately
// so callers can present it as a deduction rather than a run of guesses.
func (g *VersusGame) Solve(playerID PlayerID) bool {
	if !g.isActing(playerID) {
		return false
	}

	word, ok := g.opponentWord(playerID)
	if !ok {
		return false
	}

	word.RevealAll()
	g.Finished = true
	g.WinnerID = playerID
	return true
}

// CheckTimeout forces a turn switch when the current turn has been held
// for at least timeout, without touching either word. It reports whether a
// timeout fired. Safe and idempotent to call on every read; there is no
// background scheduler, so stale turns only resolve when someone looks.
func (g *VersusGame) CheckTimeout(now time.Time, timeout time.Duration) bool {
	if g.Finished || timeout <= 0 {
		return false
	}
	if now.Sub(g.TurnStartedAt) < timeout {
		return false
	}
	g.passTurn(now)
	return true
}

func (g *VersusGame) passTurn(now time.Time) {
	g.CurrentIdx = 1 - g.CurrentIdx
	g.TurnStartedAt = now
}

// PlayerView is the only state a given side may read: the opponent's word
// masked, never one's own mask (the player already knows their word) and
// never the opponent's raw secret. The computer opponent consumes exactly
// this view, so it has no privileged access over a human in the same seat.
type PlayerView struct {
	PlayerID       PlayerID
	OpponentName   string
	MaskedWord     string
	GuessedLetters []string
	IsCurrentTurn  bool
	Finished       bool
	WinnerID       PlayerID
}

// ViewFor builds the per-side view for the given player, or false if the
// player is not part of this game.
func (g *VersusGame) ViewFor(playerID PlayerID) (PlayerView, bool) {
	opponent, ok := g.Opponent(playerID)
	if !ok {
		return PlayerView{}, false
	}

	word := g.Words[opponent.ID]
	return PlayerView{
		PlayerID:       playerID,
		OpponentName:   opponent.DisplayName,
		MaskedWord:     word.Masked(),
		GuessedLetters: word.GuessedLetters(),
		IsCurrentTurn:  !g.Finished && g.CurrentPlayer().ID == playerID,
		Finished:       g.Finished,
		WinnerID:       g.WinnerID,
	}, true
}

// RevealedRatio returns the fraction of characters revealed in a masked
// word, 0 for an empty word.
func RevealedRatio(masked string) float64 {
	if len(masked) == 0 {
		return 0
	}
	revealed := 0
	for _, r := range masked {
		if string(r) != MaskPlaceholder {
			revealed++
		}
	}
	return float64(revealed) / float64(len(masked))
}
