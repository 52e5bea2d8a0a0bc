// Package engine drives the request-scoped game modes: solo play and
// human-vs-computer duels. State lives nowhere between requests except the
// session snapshot the caller carries, so each call is a full
// decode -> transition -> encode cycle from the shell's point of view;
// this controller is the transition in the middle.
package engine

import (
	"log/slog"

	"github.com/ajmcleod/hangduel/internal/dependencies/clock"
	"github.com/ajmcleod/hangduel/internal/dependencies/random"
	"github.com/ajmcleod/hangduel/internal/model"
	"github.com/ajmcleod/hangduel/internal/services/bot"
	"github.com/ajmcleod/hangduel/internal/services/words"
)

// DefaultMaxAttempts is the solo wrong-guess budget
const DefaultMaxAttempts = 6

// MaxComputerTurns is a safety limit for the computer turn loop. The
// policy always returns a concrete action on its turn, so the loop
// terminates well before this, but a bound beats an invariant.
const MaxComputerTurns = 1000

// ActionType labels one computer move in the action trail
type ActionType string

const (
	ActionGuess         ActionType = "guess"
	ActionSolve         ActionType = "solve"
	ActionMatchComplete ActionType = "match_complete"
)

// ComputerAction records a single computer move so the shell can narrate
// what happened between the human's request and the response.
type ComputerAction struct {
	Type    ActionType
	Letter  string
	Correct bool
}

// Controller manages solo games and human-vs-computer duels
type Controller struct {
	words  *words.Service
	policy *bot.Policy
	clock  clock.Clock
	random random.Random
	logger *slog.Logger
}

// NewController creates a new engine controller
func NewController(
	wordService *words.Service,
	policy *bot.Policy,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		words:  wordService,
		policy: policy,
		clock:  clk,
		random: rnd,
		logger: logger.With(slog.String("component", "engine")),
	}
}

// NewSolo starts a solo game against a random word from the pool
func (c *Controller) NewSolo(p model.Player, maxAttempts int) (*model.SoloGame, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	secret, err := c.words.RandomWord(c.random)
	if err != nil {
		return nil, err
	}

	c.logger.Info("solo game started",
		slog.String("player_id", string(p.ID)),
		slog.Int("max_attempts", maxAttempts),
		slog.Int("word_length", len(secret)),
	)
	return model.NewSoloGame(p, secret, maxAttempts), nil
}

// GuessSolo applies one letter guess to a solo game
func (c *Controller) GuessSolo(g *model.SoloGame, letter string) bool {
	return g.Guess(letter)
}

// NewDuel starts a human-vs-computer match. The human's word (the one the
// computer will guess) may be supplied; when empty both words come from
// the pool. The opening turn is random; when it lands on the computer, the
// computer plays immediately and the trail records its moves.
func (c *Controller) NewDuel(human, computer model.Player, humanWord string) (*model.VersusGame, []ComputerAction, error) {
	humanWord = model.NormalizeWord(humanWord)
	if humanWord == "" {
		var err error
		humanWord, err = c.words.RandomWord(c.random)
		if err != nil {
			return nil, nil, err
		}
	}

	computerWord, err := c.words.RandomWord(c.random)
	if err != nil {
		return nil, nil, err
	}

	g := model.NewVersusGame(human, computer, humanWord, computerWord, c.random.Intn(2), c.clock.Now())

	c.logger.Info("duel started",
		slog.String("player_id", string(human.ID)),
		slog.Int("intelligence", computer.Intelligence),
		slog.String("first_player", string(g.CurrentPlayer().ID)),
	)

	trail := c.playComputerTurns(g)
	return g, trail, nil
}

// GuessDuel applies the human's letter guess, then lets the computer play
// until the turn comes back or the match ends. The returned trail covers
// only the computer's moves.
func (c *Controller) GuessDuel(g *model.VersusGame, humanID model.PlayerID, letter string) (correct, applied bool, trail []ComputerAction) {
	correct, applied = g.GuessLetter(humanID, letter, c.clock.Now())
	trail = c.playComputerTurns(g)
	return correct, applied, trail
}

// SolveDuel applies the human's solve action. No computer turns can follow
// a successful solve, but a rejected one (stale turn) still lets the
// computer finish its pending moves.
func (c *Controller) SolveDuel(g *model.VersusGame, humanID model.PlayerID) (applied bool, trail []ComputerAction) {
	applied = g.Solve(humanID)
	trail = c.playComputerTurns(g)
	return applied, trail
}

// playComputerTurns runs computer moves until the decision is none (turn
// passed back) or the match finishes.
func (c *Controller) playComputerTurns(g *model.VersusGame) []ComputerAction {
	var trail []ComputerAction

	computer, ok := c.computerIn(g)
	if !ok {
		return nil
	}

	for turn := 0; turn < MaxComputerTurns; turn++ {
		if g.Finished {
			if len(trail) > 0 {
				trail = append(trail, ComputerAction{Type: ActionMatchComplete})
			}
			break
		}

		view, ok := g.ViewFor(computer.ID)
		if !ok {
			break
		}

		decision := c.policy.Decide(view, computer.Intelligence)
		switch decision.Type {
		case bot.DecisionNone:
			return trail

		case bot.DecisionLetter:
			correct, applied := g.GuessLetter(computer.ID, decision.Letter, c.clock.Now())
			if !applied {
				return trail
			}
			trail = append(trail, ComputerAction{
				Type:    ActionGuess,
				Letter:  decision.Letter,
				Correct: correct,
			})

		case bot.DecisionSolve:
			if !g.Solve(computer.ID) {
				return trail
			}
			trail = append(trail, ComputerAction{Type: ActionSolve})
		}
	}

	return trail
}

// computerIn finds the computer side of a duel
func (c *Controller) computerIn(g *model.VersusGame) (model.Player, bool) {
	for _, p := range g.Players {
		if p.IsComputer() {
			return p, true
		}
	}
	return model.Player{}, false
}
