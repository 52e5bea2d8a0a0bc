package player

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ajmcleod/hangduel/internal/dependencies/clock"
	"github.com/ajmcleod/hangduel/internal/model"
	"github.com/ajmcleod/hangduel/internal/storage"
)

// Service manages player records. There is no authentication: players are
// anonymous, addressed by an opaque generated ID.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new player service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger.With(slog.String("component", "player-service")),
	}
}

// CreateGuest creates an anonymous human player
func (s *Service) CreateGuest(ctx context.Context, displayName string) (*model.Player, error) {
	if displayName == "" {
		displayName = "Guest"
	}

	p := model.NewHumanPlayer(model.PlayerID(uuid.NewString()), displayName, s.clock.Now())
	if err := s.storage.SavePlayer(ctx, &p); err != nil {
		return nil, err
	}

	s.logger.Info("guest player created",
		slog.String("player_id", string(p.ID)),
		slog.String("display_name", displayName),
	)

	return &p, nil
}

// CreateComputer creates a computer opponent with the given intelligence,
// clamped into [0, 100].
func (s *Service) CreateComputer(ctx context.Context, displayName string, intelligence int) (*model.Player, error) {
	if displayName == "" {
		displayName = fmt.Sprintf("Computer (%d)", model.ClampIntelligence(intelligence))
	}

	p := model.NewComputerPlayer(model.PlayerID("cpu-"+uuid.NewString()), displayName, intelligence, s.clock.Now())
	if err := s.storage.SavePlayer(ctx, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// GetPlayer retrieves a player by ID
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}
