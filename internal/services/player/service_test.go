package player

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ajmcleod/hangduel/internal/dependencies/mocks"
	"github.com/ajmcleod/hangduel/internal/model"
	"github.com/ajmcleod/hangduel/internal/storage/memory"
	"github.com/ajmcleod/hangduel/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestCreateGuest() {
	p, err := s.service.CreateGuest(s.ctx, "alice")
	s.Require().NoError(err)

	s.NotEmpty(p.ID)
	s.Equal("alice", p.DisplayName)
	s.Equal(model.KindHuman, p.Kind)
	s.Equal(s.clock.Now(), p.CreatedAt)

	stored, err := s.storage.GetPlayer(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(p, stored)
}

func (s *ServiceSuite) TestCreateGuestDefaultName() {
	p, err := s.service.CreateGuest(s.ctx, "")
	s.Require().NoError(err)
	s.Equal("Guest", p.DisplayName)
}

func (s *ServiceSuite) TestCreateGuestsGetDistinctIDs() {
	p1, err := s.service.CreateGuest(s.ctx, "alice")
	s.Require().NoError(err)
	p2, err := s.service.CreateGuest(s.ctx, "bob")
	s.Require().NoError(err)
	s.NotEqual(p1.ID, p2.ID)
}

func (s *ServiceSuite) TestCreateComputer() {
	p, err := s.service.CreateComputer(s.ctx, "", 80)
	s.Require().NoError(err)

	s.True(strings.HasPrefix(string(p.ID), "cpu-"))
	s.Equal("Computer (80)", p.DisplayName)
	s.Equal(model.KindComputer, p.Kind)
	s.Equal(80, p.Intelligence)

	stored, err := s.storage.GetPlayer(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(p, stored)
}

func (s *ServiceSuite) TestCreateComputerClampsIntelligence() {
	p, err := s.service.CreateComputer(s.ctx, "", 250)
	s.Require().NoError(err)
	s.Equal(100, p.Intelligence)
	s.Equal("Computer (100)", p.DisplayName)

	p, err = s.service.CreateComputer(s.ctx, "", -5)
	s.Require().NoError(err)
	s.Equal(0, p.Intelligence)
}

func (s *ServiceSuite) TestCreateComputerCustomName() {
	p, err := s.service.CreateComputer(s.ctx, "HAL", 50)
	s.Require().NoError(err)
	s.Equal("HAL", p.DisplayName)
}

func (s *ServiceSuite) TestGetPlayerNotFound() {
	_, err := s.service.GetPlayer(s.ctx, "missing")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
