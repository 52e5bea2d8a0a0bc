// Package bot implements the computer opponent's decision policy. The
// policy is a pure function over the same per-player view a human in the
// computer's seat would see; it never reads the opponent's raw secret and
// never mutates game state. The caller applies whatever it returns through
// the versus game's transitions.
package bot

import (
	"math"

	"github.com/ajmcleod/hangduel/internal/dependencies/random"
	"github.com/ajmcleod/hangduel/internal/model"
)

// DecisionType enumerates the possible policy outputs
type DecisionType string

const (
	// DecisionNone means the policy declines to act (not its turn, or
	// the match is over)
	DecisionNone DecisionType = "none"
	// DecisionLetter means guess the carried letter
	DecisionLetter DecisionType = "letter"
	// DecisionSolve means attempt to solve the whole word at once
	DecisionSolve DecisionType = "solve"
)

// Decision is one policy output
type Decision struct {
	Type   DecisionType
	Letter string
}

// Policy decides computer moves, parameterized per call by the 0-100
// intelligence dial.
type Policy struct {
	random random.Random
}

// NewPolicy creates a policy backed by the given random source
func NewPolicy(rnd random.Random) *Policy {
	return &Policy{random: rnd}
}

// Decide returns the computer's move for the given view. Intelligence
// shapes two things: how much of the word must be revealed before the
// computer "recognizes" it and attempts a solve, and how strongly letter
// guesses are biased toward common English letters.
func (p *Policy) Decide(view model.PlayerView, intelligence int) Decision {
	if view.Finished || !view.IsCurrentTurn {
		return Decision{Type: DecisionNone}
	}

	intelligence = model.ClampIntelligence(intelligence)

	// A fully blank word is never "recognized": revealedRatio 0 gives
	// solve probability exactly 0 regardless of the draw.
	ratio := model.RevealedRatio(view.MaskedWord)
	if ratio > 0 {
		exponent := math.Max(1, 11-float64(intelligence)/10)
		if p.random.Float64() < math.Pow(ratio, exponent) {
			return Decision{Type: DecisionSolve}
		}
	}

	return Decision{
		Type:   DecisionLetter,
		Letter: p.chooseLetter(view.GuessedLetters, intelligence),
	}
}

// chooseLetter samples one unguessed letter from a convex blend of the
// uniform distribution and the English frequency table, with the blend
// weight rising with intelligence.
func (p *Policy) chooseLetter(guessed []string, intelligence int) string {
	guessedSet := make(map[string]bool, len(guessed))
	for _, letter := range guessed {
		guessedSet[letter] = true
	}

	var remaining []byte
	for i := 0; i < len(Alphabet); i++ {
		if !guessedSet[string(Alphabet[i])] {
			remaining = append(remaining, Alphabet[i])
		}
	}

	// Unreachable in a real match (the word finishes before the alphabet
	// does), but it must not crash: fall back to the least frequent letter.
	if len(remaining) == 0 {
		return leastFrequent([]byte(Alphabet))
	}

	mix := float64(intelligence) / 100

	freqTotal := 0.0
	for _, letter := range remaining {
		freqTotal += frequencyOf(letter)
	}

	weights := make([]float64, len(remaining))
	total := 0.0
	uniform := 1 / float64(len(remaining))
	for i, letter := range remaining {
		weights[i] = (1-mix)*uniform + mix*frequencyOf(letter)/freqTotal
		total += weights[i]
	}

	// Cumulative-probability draw
	draw := p.random.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if draw < cumulative {
			return string(remaining[i])
		}
	}
	// Floating point edge: the draw landed on the very end
	return leastFrequent(remaining)
}

// leastFrequent returns the rarest letter among the candidates
func leastFrequent(letters []byte) string {
	best := letters[0]
	for _, letter := range letters[1:] {
		if frequencyOf(letter) < frequencyOf(best) {
			best = letter
		}
	}
	return string(best)
}
