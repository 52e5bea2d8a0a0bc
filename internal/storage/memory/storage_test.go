package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ajmcleod/hangduel/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:          "player-1",
		DisplayName: "Alice",
		Kind:        model.KindHuman,
		CreatedAt:   time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player, retrieved)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSavePlayerOverwrites() {
	player := &model.Player{ID: "player-1", DisplayName: "Alice"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	renamed := &model.Player{ID: "player-1", DisplayName: "Alicia"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, renamed))

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal("Alicia", retrieved.DisplayName)
}

func (s *StorageSuite) TestDeletePlayer() {
	player := &model.Player{ID: "player-1", DisplayName: "Alice"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	s.Require().NoError(s.storage.DeletePlayer(s.ctx, "player-1"))

	_, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayerNonexistent() {
	s.NoError(s.storage.DeletePlayer(s.ctx, "nonexistent"))
}

// Word pool tests

func (s *StorageSuite) TestSaveAndGetWordPool() {
	words := []string{"python", "flask", "azure"}
	s.Require().NoError(s.storage.SaveWordPool(s.ctx, words))

	retrieved, err := s.storage.GetWordPool(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestGetWordPoolUnset() {
	_, err := s.storage.GetWordPool(s.ctx)
	s.ErrorIs(err, model.ErrWordPoolEmpty)
}

func (s *StorageSuite) TestWordPoolIsCopied() {
	words := []string{"python", "flask"}
	s.Require().NoError(s.storage.SaveWordPool(s.ctx, words))

	words[0] = "mutated"

	retrieved, err := s.storage.GetWordPool(s.ctx)
	s.Require().NoError(err)
	s.Equal("python", retrieved[0])

	retrieved[1] = "mutated"
	again, err := s.storage.GetWordPool(s.ctx)
	s.Require().NoError(err)
	s.Equal("flask", again[1])
}

// Match summary tests

func (s *StorageSuite) TestSummariesMostRecentFirst() {
	for i := 0; i < 3; i++ {
		summary := &model.MatchSummary{
			RoomID:      model.RoomID(fmt.Sprintf("room-%d", i)),
			Winner:      "player-1",
			CompletedAt: time.Date(2024, 1, 1, 12, i, 0, 0, time.UTC),
		}
		s.Require().NoError(s.storage.SaveMatchSummary(s.ctx, summary))
	}

	summaries, err := s.storage.GetRecentMatchSummaries(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(summaries, 3)
	s.Equal(model.RoomID("room-2"), summaries[0].RoomID)
	s.Equal(model.RoomID("room-0"), summaries[2].RoomID)
}

func (s *StorageSuite) TestSummariesLimit() {
	for i := 0; i < 5; i++ {
		summary := &model.MatchSummary{RoomID: model.RoomID(fmt.Sprintf("room-%d", i))}
		s.Require().NoError(s.storage.SaveMatchSummary(s.ctx, summary))
	}

	summaries, err := s.storage.GetRecentMatchSummaries(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)
	s.Equal(model.RoomID("room-4"), summaries[0].RoomID)
	s.Equal(model.RoomID("room-3"), summaries[1].RoomID)
}

func (s *StorageSuite) TestSummariesEmpty() {
	summaries, err := s.storage.GetRecentMatchSummaries(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(summaries)
}
