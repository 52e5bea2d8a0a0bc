package model

// SoloGame is the single-player configuration: one word, a fixed budget of
// wrong guesses, terminal Won/Lost states collapsed into Finished + Won.
type SoloGame struct {
	Player       Player
	Word         *WordState
	MaxAttempts  int
	WrongGuesses int
	Finished     bool
	Won          bool
}

// NewSoloGame creates a solo game against the given secret word
func NewSoloGame(player Player, secretWord string, maxAttempts int) *SoloGame {
	return &SoloGame{
		Player:      player,
		Word:        NewWordState(secretWord),
		MaxAttempts: maxAttempts,
	}
}

// Guess processes a letter guess and reports whether the letter occurs in
// the word. Guesses after the game is finished, invalid input and repeats
// are silent no-ops returning false; a rejected guess never costs an
// attempt.
func (g *SoloGame) Guess(letter string) bool {
	if g.Finished {
		return false
	}

	normalized, ok := NormalizeLetter(letter)
	if !ok || g.Word.Guessed[normalized] {
		return false
	}

	correct := g.Word.ApplyGuess(normalized)
	if !correct {
		g.WrongGuesses++
		if g.WrongGuesses >= g.MaxAttempts {
			g.Finished = true
			g.Won = false
		}
		return false
	}

	if g.Word.FullyRevealed() {
		g.Finished = true
		g.Won = true
	}
	return true
}

// RemainingAttempts returns how many wrong guesses are left
func (g *SoloGame) RemainingAttempts() int {
	return g.MaxAttempts - g.WrongGuesses
}
