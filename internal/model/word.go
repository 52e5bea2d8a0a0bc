package model

import (
	"sort"
	"strings"
)

// MaskPlaceholder is the character shown for unrevealed letters
const MaskPlaceholder = "_"

// WordState tracks one secret word and the set of letters guessed against it.
// The secret is immutable once created; the guessed set only ever grows.
type WordState struct {
	Secret  string
	Guessed map[string]bool
}

// NewWordState creates a WordState for the given secret word.
// The secret is expected to be lowercase alphabetic; callers normalize
// via NormalizeWord before construction.
func NewWordState(secret string) *WordState {
	return &WordState{
		Secret:  secret,
		Guessed: make(map[string]bool),
	}
}

// NormalizeLetter lowercases a guess and reports whether it is exactly
// one alphabetic character a-z.
func NormalizeLetter(letter string) (string, bool) {
	letter = strings.ToLower(letter)
	if len(letter) != 1 {
		return "", false
	}
	c := letter[0]
	if c < 'a' || c > 'z' {
		return "", false
	}
	return letter, true
}

// NormalizeWord lowercases a raw word and strips every non-alphabetic
// character. The result may be empty.
func NormalizeWord(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ApplyGuess records a letter guess and reports whether the letter occurs
// in the secret word. Invalid input and repeated guesses are silent no-ops
// returning false; guesses are also replayed from decoded snapshots and by
// the computer opponent, so validation happens here regardless of what the
// boundary already checked.
func (w *WordState) ApplyGuess(letter string) bool {
	normalized, ok := NormalizeLetter(letter)
	if !ok {
		return false
	}
	if w.Guessed[normalized] {
		return false
	}

	if w.Guessed == nil {
		w.Guessed = make(map[string]bool)
	}
	w.Guessed[normalized] = true

	return strings.Contains(w.Secret, normalized)
}

// Masked renders the secret word with unguessed letters replaced by the
// placeholder, e.g. "c_t" for "cat" with "c" and "t" guessed.
func (w *WordState) Masked() string {
	var b strings.Builder
	for _, r := range w.Secret {
		if w.Guessed[string(r)] {
			b.WriteRune(r)
		} else {
			b.WriteString(MaskPlaceholder)
		}
	}
	return b.String()
}

// FullyRevealed reports whether every letter of the secret has been guessed.
func (w *WordState) FullyRevealed() bool {
	for _, r := range w.Secret {
		if !w.Guessed[string(r)] {
			return false
		}
	}
	return true
}

// RevealAll marks every letter of the secret as guessed. Used by the solve
// action, which reveals the whole word in a single transition.
func (w *WordState) RevealAll() {
	if w.Guessed == nil {
		w.Guessed = make(map[string]bool)
	}
	for _, r := range w.Secret {
		w.Guessed[string(r)] = true
	}
}

// GuessedLetters returns the guessed letters in sorted order.
func (w *WordState) GuessedLetters() []string {
	letters := make([]string, 0, len(w.Guessed))
	for letter := range w.Guessed {
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	return letters
}
