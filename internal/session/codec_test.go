package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ajmcleod/hangduel/internal/model"
)

type CodecSuite struct {
	suite.Suite
	now   time.Time
	alice model.Player
	cpu   model.Player
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecSuite))
}

func (s *CodecSuite) SetupTest() {
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.alice = model.NewHumanPlayer("alice", "Alice", s.now)
	s.cpu = model.NewComputerPlayer("cpu-1", "Computer (70)", 70, s.now)
}

// Player codec

func (s *CodecSuite) TestPlayerRoundTrip() {
	decoded, err := EncodePlayer(s.cpu).Decode()
	s.Require().NoError(err)
	s.Equal(s.cpu.ID, decoded.ID)
	s.Equal(model.KindComputer, decoded.Kind)
	s.Equal(70, decoded.Intelligence)
}

func (s *CodecSuite) TestPlayerDecodeRejectsEmptyID() {
	_, err := PlayerSnapshot{Kind: "human"}.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestPlayerDecodeRejectsUnknownKind() {
	_, err := PlayerSnapshot{ID: "x", Kind: "alien"}.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestPlayerDecodeClampsIntelligence() {
	decoded, err := PlayerSnapshot{ID: "c", Kind: "computer", Intelligence: 999}.Decode()
	s.Require().NoError(err)
	s.Equal(100, decoded.Intelligence)
}

// Word codec

func (s *CodecSuite) TestWordRoundTrip() {
	w := model.NewWordState("python")
	w.ApplyGuess("p")
	w.ApplyGuess("z")

	decoded, err := EncodeWord(w).Decode()
	s.Require().NoError(err)
	s.Equal("python", decoded.Secret)
	s.Equal([]string{"p", "z"}, decoded.GuessedLetters())
}

func (s *CodecSuite) TestWordDecodeRejectsEmptySecret() {
	_, err := WordSnapshot{}.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestWordDecodeRejectsUnnormalizedSecret() {
	_, err := WordSnapshot{Secret: "Py thon"}.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestWordDecodeRejectsInvalidGuessedLetter() {
	_, err := WordSnapshot{Secret: "python", GuessedLetters: []string{"ab"}}.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

// Solo codec

func (s *CodecSuite) TestSoloRoundTrip() {
	g := model.NewSoloGame(s.alice, "python", 6)
	g.Guess("p")
	g.Guess("z")

	decoded, err := EncodeSolo(g).Decode()
	s.Require().NoError(err)
	s.Equal(s.alice.ID, decoded.Player.ID)
	s.Equal(6, decoded.MaxAttempts)
	s.Equal(1, decoded.WrongGuesses)
	s.False(decoded.Finished)
	s.Equal("p_____", decoded.Word.Masked())
}

func (s *CodecSuite) TestSoloRoundTripPreservesFinishedState() {
	g := model.NewSoloGame(s.alice, "ab", 6)
	g.Guess("a")
	g.Guess("b")
	s.Require().True(g.Won)

	decoded, err := EncodeSolo(g).Decode()
	s.Require().NoError(err)
	s.True(decoded.Finished)
	s.True(decoded.Won)
}

func (s *CodecSuite) TestSoloDecodeRejectsWrongSchemaVersion() {
	snap := EncodeSolo(model.NewSoloGame(s.alice, "python", 6))
	snap.SchemaVersion = 99

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestSoloDecodeRejectsNonPositiveMaxAttempts() {
	snap := EncodeSolo(model.NewSoloGame(s.alice, "python", 6))
	snap.MaxAttempts = 0

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestSoloDecodeRejectsExhaustedAttemptsWithoutFinish() {
	g := model.NewSoloGame(s.alice, "ab", 1)
	g.Guess("z")
	s.Require().True(g.Finished)

	snap := EncodeSolo(g)
	snap.Finished = false
	snap.Won = false

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestSoloDecodeRejectsFinishWithGameStillOpen() {
	snap := EncodeSolo(model.NewSoloGame(s.alice, "python", 6))
	snap.Finished = true

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestSoloDecodeRejectsWonFlagMismatch() {
	g := model.NewSoloGame(s.alice, "ab", 6)
	g.Guess("a")
	g.Guess("b")
	s.Require().True(g.Won)

	snap := EncodeSolo(g)
	snap.Won = false

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestSoloDecodeRejectsWrongGuessesOutOfRange() {
	snap := EncodeSolo(model.NewSoloGame(s.alice, "python", 6))
	snap.WrongGuesses = 7

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

// Versus codec

func (s *CodecSuite) versusGame() *model.VersusGame {
	return model.NewVersusGame(s.alice, s.cpu, "flask", "azure", 1, s.now)
}

func (s *CodecSuite) TestVersusRoundTrip() {
	g := s.versusGame()
	g.GuessLetter(s.cpu.ID, "f", s.now)

	decoded, err := EncodeVersus(g).Decode()
	s.Require().NoError(err)
	s.Equal(s.alice.ID, decoded.Players[0].ID)
	s.Equal(s.cpu.ID, decoded.Players[1].ID)
	s.Equal(70, decoded.Players[1].Intelligence)
	s.Equal(g.CurrentIdx, decoded.CurrentIdx)
	s.Equal(g.TurnStartedAt, decoded.TurnStartedAt)
	s.Equal([]string{"f"}, decoded.Words[s.alice.ID].GuessedLetters())
	s.Empty(decoded.Words[s.cpu.ID].GuessedLetters())
}

func (s *CodecSuite) TestVersusRoundTripPreservesWinner() {
	g := s.versusGame()
	s.Require().True(g.Solve(s.cpu.ID))

	decoded, err := EncodeVersus(g).Decode()
	s.Require().NoError(err)
	s.True(decoded.Finished)
	s.Equal(s.cpu.ID, decoded.WinnerID)
}

func (s *CodecSuite) TestVersusDecodeRejectsWrongPlayerCount() {
	snap := EncodeVersus(s.versusGame())
	snap.Players = snap.Players[:1]

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestVersusDecodeRejectsDuplicatePlayers() {
	snap := EncodeVersus(s.versusGame())
	snap.Players[1] = snap.Players[0]

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestVersusDecodeRejectsWordForUnknownOwner() {
	snap := EncodeVersus(s.versusGame())
	snap.Words["stranger"] = snap.Words["alice"]
	delete(snap.Words, "alice")

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestVersusDecodeRejectsBadCurrentIdx() {
	snap := EncodeVersus(s.versusGame())
	snap.CurrentIdx = 2

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestVersusDecodeRejectsNonPlayerWinner() {
	snap := EncodeVersus(s.versusGame())
	snap.Finished = true
	snap.WinnerID = "stranger"

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestVersusDecodeRejectsWinnerWithoutFinish() {
	snap := EncodeVersus(s.versusGame())
	snap.WinnerID = "alice"

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestVersusDecodeRejectsFinishWithoutWinner() {
	snap := EncodeVersus(s.versusGame())
	snap.Finished = true

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestVersusDecodeRejectsFinishWithUnrevealedWord() {
	g := s.versusGame()
	s.Require().True(g.Solve(s.cpu.ID))

	snap := EncodeVersus(g)
	snap.Words["alice"] = EncodeWord(model.NewWordState("flask"))

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestVersusDecodeRejectsRevealedWordWithoutFinish() {
	revealed := model.NewWordState("flask")
	revealed.RevealAll()

	snap := EncodeVersus(s.versusGame())
	snap.Words["alice"] = EncodeWord(revealed)

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

// Room codec

func (s *CodecSuite) TestRoomRoundTrip() {
	bob := model.NewHumanPlayer("bob", "Bob", s.now)
	room := model.NewRoom("room-1", s.now)
	room.Players = []model.Player{s.alice, bob}
	room.PendingWords[s.alice.ID] = "flask"
	room.Version = 3

	decoded, err := EncodeRoom(room).Decode()
	s.Require().NoError(err)
	s.Equal(room.ID, decoded.ID)
	s.Require().Len(decoded.Players, 2)
	s.Equal(s.alice.ID, decoded.Players[0].ID)
	s.Equal(bob.ID, decoded.Players[1].ID)
	s.Equal("flask", decoded.PendingWords[s.alice.ID])
	s.Equal(int64(3), decoded.Version)
	s.Nil(decoded.Match)
}

func (s *CodecSuite) TestRoomRoundTripWithMatch() {
	bob := model.NewHumanPlayer("bob", "Bob", s.now)
	room := model.NewRoom("room-1", s.now)
	room.Players = []model.Player{s.alice, bob}
	room.Match = model.NewVersusGame(s.alice, bob, "flask", "azure", 0, s.now)

	decoded, err := EncodeRoom(room).Decode()
	s.Require().NoError(err)
	s.Require().NotNil(decoded.Match)
	s.Equal(s.alice.ID, decoded.Match.CurrentPlayer().ID)
}

func (s *CodecSuite) TestRoomDecodeRejectsPendingWordForUnknownPlayer() {
	room := model.NewRoom("room-1", s.now)
	room.Players = []model.Player{s.alice}
	snap := EncodeRoom(room)
	snap.PendingWords["stranger"] = "flask"

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}

func (s *CodecSuite) TestRoomDecodeRejectsMatchPlayerNotInRoom() {
	bob := model.NewHumanPlayer("bob", "Bob", s.now)
	room := model.NewRoom("room-1", s.now)
	room.Players = []model.Player{s.alice, bob}
	room.Match = model.NewVersusGame(s.alice, bob, "flask", "azure", 0, s.now)
	snap := EncodeRoom(room)
	snap.Players = snap.Players[:1]

	_, err := snap.Decode()
	s.ErrorIs(err, model.ErrMalformedState)
}
