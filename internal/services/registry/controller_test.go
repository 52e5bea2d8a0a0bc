package registry

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ajmcleod/hangduel/internal/dependencies/mocks"
	"github.com/ajmcleod/hangduel/internal/model"
	"github.com/ajmcleod/hangduel/internal/storage/memory"
	"github.com/ajmcleod/hangduel/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
	alice      model.Player
	bob        model.Player
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.clock, s.random, time.Minute, testutil.NopLogger())
	s.ctx = context.Background()
	s.alice = model.NewHumanPlayer("alice", "Alice", s.clock.Now())
	s.bob = model.NewHumanPlayer("bob", "Bob", s.clock.Now())
}

// startMatch walks a room to the playing phase. Alice owns "flask",
// Bob owns "azure", Alice opens.
func (s *ControllerSuite) startMatch(roomID model.RoomID) {
	s.Require().NoError(s.controller.Join(s.ctx, roomID, s.alice))
	s.Require().NoError(s.controller.Join(s.ctx, roomID, s.bob))
	s.random.QueueIntn(0)
	s.Require().NoError(s.controller.SubmitWord(s.ctx, roomID, s.alice.ID, "flask"))
	s.Require().NoError(s.controller.SubmitWord(s.ctx, roomID, s.bob.ID, "azure"))
}

// Join tests

func (s *ControllerSuite) TestJoinCreatesRoom() {
	err := s.controller.Join(s.ctx, "room-1", s.alice)
	s.Require().NoError(err)

	view, err := s.controller.Snapshot(s.ctx, "room-1", s.alice.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseWaitingForPlayers, view.Phase)
	s.Equal([]string{"Alice"}, view.PlayerNames)
}

func (s *ControllerSuite) TestRejoinIsNoOp() {
	s.Require().NoError(s.controller.Join(s.ctx, "room-1", s.alice))

	before, _ := s.controller.Version(s.ctx, "room-1")
	s.Require().NoError(s.controller.Join(s.ctx, "room-1", s.alice))
	after, _ := s.controller.Version(s.ctx, "room-1")

	s.Equal(before, after)
}

func (s *ControllerSuite) TestThirdPlayerIsRejected() {
	s.Require().NoError(s.controller.Join(s.ctx, "room-1", s.alice))
	s.Require().NoError(s.controller.Join(s.ctx, "room-1", s.bob))

	carol := model.NewHumanPlayer("carol", "Carol", s.clock.Now())
	err := s.controller.Join(s.ctx, "room-1", carol)
	s.ErrorIs(err, model.ErrRoomFull)
}

func (s *ControllerSuite) TestRejoinWhenFullIsStillNoOp() {
	s.Require().NoError(s.controller.Join(s.ctx, "room-1", s.alice))
	s.Require().NoError(s.controller.Join(s.ctx, "room-1", s.bob))
	s.Require().NoError(s.controller.Join(s.ctx, "room-1", s.alice))
}

// SubmitWord tests

func (s *ControllerSuite) TestSubmitWordRequiresRoom() {
	err := s.controller.SubmitWord(s.ctx, "missing", s.alice.ID, "flask")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *ControllerSuite) TestSubmitWordRequiresMembership() {
	s.Require().NoError(s.controller.Join(s.ctx, "room-1", s.alice))

	err := s.controller.SubmitWord(s.ctx, "room-1", s.bob.ID, "azure")
	s.ErrorIs(err, model.ErrNotInRoom)
}

func (s *ControllerSuite) TestSubmitWordRejectsEmptyAfterNormalization() {
	s.Require().NoError(s.controller.Join(s.ctx, "room-1", s.alice))

	err := s.controller.SubmitWord(s.ctx, "room-1", s.alice.ID, "123 !?")
	s.ErrorIs(err, model.ErrEmptyWord)

	view, _ := s.controller.Snapshot(s.ctx, "room-1", s.alice.ID)
	s.Equal(model.PhaseWaitingForPlayers, view.Phase)
}

func (s *ControllerSuite) TestSubmitWordCanBeOverwrittenBeforeMatch() {
	s.Require().NoError(s.controller.Join(s.ctx, "room-1", s.alice))
	s.Require().NoError(s.controller.Join(s.ctx, "room-1", s.bob))

	s.Require().NoError(s.controller.SubmitWord(s.ctx, "room-1", s.alice.ID, "flask"))
	s.Require().NoError(s.controller.SubmitWord(s.ctx, "room-1", s.alice.ID, "azure"))

	view, _ := s.controller.Snapshot(s.ctx, "room-1", s.alice.ID)
	s.Equal(model.PhaseWaitingForOther, view.Phase)
}

func (s *ControllerSuite) TestSubmitWordRejectedOnceMatchStarted() {
	s.startMatch("room-1")

	err := s.controller.SubmitWord(s.ctx, "room-1", s.alice.ID, "letter")
	s.ErrorIs(err, model.ErrMatchStarted)
}

func (s *ControllerSuite) TestBothWordsStartMatch() {
	s.startMatch("room-1")

	view, err := s.controller.Snapshot(s.ctx, "room-1", s.alice.ID)
	s.Require().NoError(err)
	s.Equal(model.PhasePlaying, view.Phase)
	s.Require().NotNil(view.View)
	s.True(view.View.IsCurrentTurn)
	s.Equal("_____", view.View.MaskedWord)
}

func (s *ControllerSuite) TestMatchCreationBumpsVersionSeparately() {
	s.Require().NoError(s.controller.Join(s.ctx, "room-1", s.alice))
	s.Require().NoError(s.controller.Join(s.ctx, "room-1", s.bob))
	s.random.QueueIntn(0)
	s.Require().NoError(s.controller.SubmitWord(s.ctx, "room-1", s.alice.ID, "flask"))

	before, _ := s.controller.Version(s.ctx, "room-1")
	s.Require().NoError(s.controller.SubmitWord(s.ctx, "room-1", s.bob.ID, "azure"))
	after, _ := s.controller.Version(s.ctx, "room-1")

	// One bump for the word, one for the match starting
	s.Equal(before+2, after)
}

// Guess and Solve tests

func (s *ControllerSuite) TestGuessRequiresStartedMatch() {
	s.Require().NoError(s.controller.Join(s.ctx, "room-1", s.alice))

	_, _, err := s.controller.Guess(s.ctx, "room-1", s.alice.ID, "a")
	s.ErrorIs(err, model.ErrMatchNotStarted)
}

func (s *ControllerSuite) TestGuessAppliesAndBumpsVersion() {
	s.startMatch("room-1")
	before, _ := s.controller.Version(s.ctx, "room-1")

	correct, applied, err := s.controller.Guess(s.ctx, "room-1", s.alice.ID, "a")
	s.Require().NoError(err)
	s.True(applied)
	s.True(correct)

	after, _ := s.controller.Version(s.ctx, "room-1")
	s.Equal(before+1, after)
}

func (s *ControllerSuite) TestStaleGuessIsNotAnError() {
	s.startMatch("room-1")

	before, _ := s.controller.Version(s.ctx, "room-1")
	_, applied, err := s.controller.Guess(s.ctx, "room-1", s.bob.ID, "f")
	s.Require().NoError(err)
	s.False(applied)

	after, _ := s.controller.Version(s.ctx, "room-1")
	s.Equal(before, after)
}

func (s *ControllerSuite) TestWinningGuessArchivesSummary() {
	s.startMatch("room-1")

	for _, letter := range []string{"a", "z", "u", "r", "e"} {
		_, applied, err := s.controller.Guess(s.ctx, "room-1", s.alice.ID, letter)
		s.Require().NoError(err)
		s.Require().True(applied)
	}

	view, _ := s.controller.Snapshot(s.ctx, "room-1", s.alice.ID)
	s.Equal(model.PhaseFinished, view.Phase)

	summaries, err := s.controller.RecentSummaries(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(model.RoomID("room-1"), summaries[0].RoomID)
	s.Equal(s.alice.ID, summaries[0].Winner)
}

func (s *ControllerSuite) TestSolveWinsAndArchives() {
	s.startMatch("room-1")

	applied, err := s.controller.Solve(s.ctx, "room-1", s.alice.ID)
	s.Require().NoError(err)
	s.True(applied)

	view, _ := s.controller.Snapshot(s.ctx, "room-1", s.alice.ID)
	s.Equal(model.PhaseFinished, view.Phase)
	s.Equal("azure", view.View.MaskedWord)

	summaries, _ := s.controller.RecentSummaries(s.ctx, 10)
	s.Require().Len(summaries, 1)
	s.Equal(s.alice.ID, summaries[0].Winner)
}

func (s *ControllerSuite) TestSolveOutOfTurnDoesNotApply() {
	s.startMatch("room-1")

	applied, err := s.controller.Solve(s.ctx, "room-1", s.bob.ID)
	s.Require().NoError(err)
	s.False(applied)
}

// Timeout tests

func (s *ControllerSuite) TestSnapshotAppliesTimeout() {
	s.startMatch("room-1")
	before, _ := s.controller.Version(s.ctx, "room-1")

	s.clock.Advance(61 * time.Second)

	view, err := s.controller.Snapshot(s.ctx, "room-1", s.bob.ID)
	s.Require().NoError(err)
	s.True(view.View.IsCurrentTurn)
	s.Equal(before+1, view.Version)
}

func (s *ControllerSuite) TestGuessAfterTimeoutLandsOnNewTurnHolder() {
	s.startMatch("room-1")
	s.clock.Advance(61 * time.Second)

	// The turn has silently passed to Bob; Alice's guess arrives stale.
	_, applied, err := s.controller.Guess(s.ctx, "room-1", s.alice.ID, "a")
	s.Require().NoError(err)
	s.False(applied)

	correct, applied, err := s.controller.Guess(s.ctx, "room-1", s.bob.ID, "f")
	s.Require().NoError(err)
	s.True(applied)
	s.True(correct)
}

// View tests

func (s *ControllerSuite) TestSnapshotHidesOwnWordProgress() {
	s.startMatch("room-1")
	_, _, err := s.controller.Guess(s.ctx, "room-1", s.alice.ID, "a")
	s.Require().NoError(err)

	aliceView, _ := s.controller.Snapshot(s.ctx, "room-1", s.alice.ID)
	s.Equal("a____", aliceView.View.MaskedWord)

	bobView, _ := s.controller.Snapshot(s.ctx, "room-1", s.bob.ID)
	s.Equal("_____", bobView.View.MaskedWord)
	s.Empty(bobView.View.GuessedLetters)
}

func (s *ControllerSuite) TestSnapshotRequiresMembership() {
	s.Require().NoError(s.controller.Join(s.ctx, "room-1", s.alice))

	_, err := s.controller.Snapshot(s.ctx, "room-1", s.bob.ID)
	s.ErrorIs(err, model.ErrNotInRoom)
}

func (s *ControllerSuite) TestSnapshotOfMissingRoom() {
	_, err := s.controller.Snapshot(s.ctx, "missing", s.alice.ID)
	s.ErrorIs(err, model.ErrRoomNotFound)
}

// Concurrency

func (s *ControllerSuite) TestConcurrentGuessingStaysConsistent() {
	s.startMatch("room-1")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		letter := string(rune('a' + i))
		for _, player := range []model.Player{s.alice, s.bob} {
			wg.Add(1)
			go func(id model.PlayerID, letter string) {
				defer wg.Done()
				_, _, _ = s.controller.Guess(s.ctx, "room-1", id, letter)
				_, _ = s.controller.Snapshot(s.ctx, "room-1", id)
			}(player.ID, letter)
		}
	}
	wg.Wait()

	// Whatever interleaving happened, the room is still readable and
	// at most one winner was recorded.
	view, err := s.controller.Snapshot(s.ctx, "room-1", s.alice.ID)
	s.Require().NoError(err)
	s.NotNil(view.View)

	summaries, err := s.controller.RecentSummaries(s.ctx, 10)
	s.Require().NoError(err)
	s.LessOrEqual(len(summaries), 1)
}

func (s *ControllerSuite) TestIndependentRoomsDoNotInterfere() {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		roomID := model.RoomID(fmt.Sprintf("room-%d", i))
		wg.Add(1)
		go func(roomID model.RoomID) {
			defer wg.Done()
			_ = s.controller.Join(s.ctx, roomID, s.alice)
			_ = s.controller.Join(s.ctx, roomID, s.bob)
		}(roomID)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		roomID := model.RoomID(fmt.Sprintf("room-%d", i))
		view, err := s.controller.Snapshot(s.ctx, roomID, s.alice.ID)
		s.Require().NoError(err)
		s.Len(view.PlayerNames, 2)
	}
}
