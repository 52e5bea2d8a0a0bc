package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ajmcleod/hangduel/internal/dependencies/mocks"
	"github.com/ajmcleod/hangduel/internal/model"
	"github.com/ajmcleod/hangduel/internal/services/bot"
	"github.com/ajmcleod/hangduel/internal/services/words"
	"github.com/ajmcleod/hangduel/internal/storage/memory"
	"github.com/ajmcleod/hangduel/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	words      *words.Service
	controller *Controller
	human      model.Player
	computer   model.Player
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.words = words.New(memory.New())
	s.Require().NoError(s.words.LoadWords([]string{"python", "flask", "azure"}))

	policy := bot.NewPolicy(s.random)
	s.controller = NewController(s.words, policy, s.clock, s.random, testutil.NopLogger())

	s.human = model.NewHumanPlayer("alice", "Alice", s.clock.Now())
	s.computer = model.NewComputerPlayer("cpu-1", "Computer (0)", 0, s.clock.Now())
}

// Solo tests

func (s *ControllerSuite) TestNewSoloPicksWordFromPool() {
	s.random.QueueIntn(1)

	g, err := s.controller.NewSolo(s.human, 6)
	s.Require().NoError(err)
	s.Equal("flask", g.Word.Secret)
	s.Equal(6, g.MaxAttempts)
}

func (s *ControllerSuite) TestNewSoloDefaultsAttemptBudget() {
	g, err := s.controller.NewSolo(s.human, 0)
	s.Require().NoError(err)
	s.Equal(DefaultMaxAttempts, g.MaxAttempts)
}

func (s *ControllerSuite) TestNewSoloFailsOnEmptyPool() {
	empty := NewController(words.New(memory.New()), bot.NewPolicy(s.random), s.clock, s.random, testutil.NopLogger())

	_, err := empty.NewSolo(s.human, 6)
	s.ErrorIs(err, model.ErrWordPoolEmpty)
}

func (s *ControllerSuite) TestGuessSolo() {
	s.random.QueueIntn(0)
	g, err := s.controller.NewSolo(s.human, 6)
	s.Require().NoError(err)

	s.True(s.controller.GuessSolo(g, "p"))
	s.False(s.controller.GuessSolo(g, "z"))
	s.Equal(1, g.WrongGuesses)
}

// Duel tests

func (s *ControllerSuite) TestNewDuelUsesSubmittedHumanWord() {
	// One pool pick for the computer's word, then the human opens.
	s.random.QueueIntn(2, 0)

	g, trail, err := s.controller.NewDuel(s.human, s.computer, "Hang-Man!")
	s.Require().NoError(err)
	s.Empty(trail)
	s.Equal("hangman", g.Words[s.human.ID].Secret)
	s.Equal("azure", g.Words[s.computer.ID].Secret)
	s.Equal(s.human.ID, g.CurrentPlayer().ID)
}

func (s *ControllerSuite) TestNewDuelDrawsBothWordsWhenHumanWordEmpty() {
	s.random.QueueIntn(0, 1, 0)

	g, _, err := s.controller.NewDuel(s.human, s.computer, "")
	s.Require().NoError(err)
	s.Equal("python", g.Words[s.human.ID].Secret)
	s.Equal("flask", g.Words[s.computer.ID].Secret)
}

func (s *ControllerSuite) TestNewDuelComputerOpensAndPlays() {
	// Computer word pick, then first turn lands on the computer (index 1).
	s.random.QueueIntn(2, 1)
	// Policy draws: the blank word is never solved, so only the letter
	// draw consumes a value. Draw 0 at intelligence 0 guesses "a":
	// a hit against "hangman", so the computer keeps going. The next
	// draw guesses "b", a miss, and the turn comes back.
	s.random.QueueFloat64(0.0, 0.04)

	g, trail, err := s.controller.NewDuel(s.human, s.computer, "hangman")
	s.Require().NoError(err)
	s.Require().Len(trail, 2)
	s.Equal(ActionGuess, trail[0].Type)
	s.Equal("a", trail[0].Letter)
	s.True(trail[0].Correct)
	s.Equal(ActionGuess, trail[1].Type)
	s.Equal("b", trail[1].Letter)
	s.False(trail[1].Correct)
	s.Equal(s.human.ID, g.CurrentPlayer().ID)
}

func (s *ControllerSuite) TestGuessDuelWrongGuessHandsTurnToComputer() {
	s.random.QueueIntn(2, 0)
	g, _, err := s.controller.NewDuel(s.human, s.computer, "hangman")
	s.Require().NoError(err)

	// Human misses; computer guesses "a" (hit on "hangman") then "b"
	// (miss), passing the turn back.
	s.random.QueueFloat64(0.0, 0.04)
	correct, applied, trail := s.controller.GuessDuel(g, s.human.ID, "q")
	s.True(applied)
	s.False(correct)
	s.Require().Len(trail, 2)
	s.Equal(s.human.ID, g.CurrentPlayer().ID)
}

func (s *ControllerSuite) TestGuessDuelCorrectGuessKeepsTurn() {
	s.random.QueueIntn(2, 0)
	g, _, err := s.controller.NewDuel(s.human, s.computer, "hangman")
	s.Require().NoError(err)

	correct, applied, trail := s.controller.GuessDuel(g, s.human.ID, "a")
	s.True(applied)
	s.True(correct)
	s.Empty(trail)
	s.Equal(s.human.ID, g.CurrentPlayer().ID)
}

func (s *ControllerSuite) TestGuessDuelWinEndsMatchWithoutComputerMoves() {
	s.random.QueueIntn(2, 0)
	g, _, err := s.controller.NewDuel(s.human, s.computer, "hangman")
	s.Require().NoError(err)

	for _, letter := range []string{"a", "z", "u", "r"} {
		_, applied, _ := s.controller.GuessDuel(g, s.human.ID, letter)
		s.Require().True(applied)
	}

	correct, applied, trail := s.controller.GuessDuel(g, s.human.ID, "e")
	s.True(applied)
	s.True(correct)
	s.Empty(trail)
	s.True(g.Finished)
	s.Equal(s.human.ID, g.WinnerID)
}

func (s *ControllerSuite) TestSolveDuelWins() {
	s.random.QueueIntn(2, 0)
	g, _, err := s.controller.NewDuel(s.human, s.computer, "hangman")
	s.Require().NoError(err)

	applied, trail := s.controller.SolveDuel(g, s.human.ID)
	s.True(applied)
	s.Empty(trail)
	s.True(g.Finished)
	s.Equal(s.human.ID, g.WinnerID)
}

func (s *ControllerSuite) TestStaleSolveStillLetsComputerFinish() {
	// Computer opens and completes its whole word through solve after
	// enough is revealed; a trailing match_complete action closes the
	// trail.
	s.random.QueueIntn(2, 1)
	// First letter draw guesses "a" (hit, two letters of "hangman"
	// revealed), then the solve branch fires on a 0 draw.
	s.random.QueueFloat64(0.0, 0.0)

	g, trail, err := s.controller.NewDuel(s.human, s.computer, "hangman")
	s.Require().NoError(err)
	s.Require().NotEmpty(trail)
	s.Equal(ActionMatchComplete, trail[len(trail)-1].Type)
	s.True(g.Finished)
	s.Equal(s.computer.ID, g.WinnerID)

	// The human's solve arrives after the fact and is rejected.
	applied, moreTrail := s.controller.SolveDuel(g, s.human.ID)
	s.False(applied)
	s.Empty(moreTrail)
}
