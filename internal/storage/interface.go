package storage

import (
	"context"

	"github.com/ajmcleod/hangduel/internal/model"
)

// Storage defines the interface for data persistence. Live rooms are NOT
// stored here: they are volatile by design and owned exclusively by the
// match registry. Storage holds the supporting data around them.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Word pool operations
	SaveWordPool(ctx context.Context, words []string) error
	GetWordPool(ctx context.Context) ([]string, error)

	// Match summary operations, most recent first
	SaveMatchSummary(ctx context.Context, summary *model.MatchSummary) error
	GetRecentMatchSummaries(ctx context.Context, limit int) ([]*model.MatchSummary, error)
}
