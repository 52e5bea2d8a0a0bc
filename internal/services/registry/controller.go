// Package registry implements the concurrent directory of in-progress
// versus matches. It is the one place with genuine shared mutable state:
// two players' browsers poll and post against the same room. Every room is
// guarded by its own exclusive lock so independent rooms proceed fully in
// parallel, and a per-room monotonic version counter gives polling clients
// cheap change detection.
package registry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ajmcleod/hangduel/internal/dependencies/clock"
	"github.com/ajmcleod/hangduel/internal/dependencies/random"
	"github.com/ajmcleod/hangduel/internal/model"
	"github.com/ajmcleod/hangduel/internal/storage"
)

// DefaultTurnTimeout is how long a turn may be held before an
// opportunistic read or action forces it over. Zero disables timeouts.
const DefaultTurnTimeout = 60 * time.Second

// Controller owns all match rooms for the lifetime of the process. Rooms
// are never expired: the game has no real-time stakes and retention is
// bounded by process restarts, a known trade-off.
type Controller struct {
	storage     storage.Storage
	clock       clock.Clock
	random      random.Random
	logger      *slog.Logger
	turnTimeout time.Duration

	mu    sync.Mutex
	rooms map[model.RoomID]*roomHandle
}

// roomHandle pairs a room with its exclusive lock. Lock hold time is
// bounded by a single state transition; storage I/O happens outside it.
type roomHandle struct {
	mu   sync.Mutex
	room *model.Room
}

// NewController creates a new match registry
func NewController(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	turnTimeout time.Duration,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:     store,
		clock:       clk,
		random:      rnd,
		logger:      logger.With(slog.String("component", "match-registry")),
		turnTimeout: turnTimeout,
		rooms:       make(map[model.RoomID]*roomHandle),
	}
}

// getOrCreate returns the handle for a room, creating it on first
// reference. Only the map lookup is under the registry-wide lock.
func (c *Controller) getOrCreate(roomID model.RoomID) *roomHandle {
	c.mu.Lock()
	defer c.mu.Unlock()

	handle, ok := c.rooms[roomID]
	if !ok {
		handle = &roomHandle{room: model.NewRoom(roomID, c.clock.Now())}
		c.rooms[roomID] = handle
		c.logger.Info("room created", slog.String("room_id", string(roomID)))
	}
	return handle
}

// get returns the handle for an existing room
func (c *Controller) get(roomID model.RoomID) (*roomHandle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	handle, ok := c.rooms[roomID]
	return handle, ok
}

// Join adds a player to a room, creating the room on first reference.
// Joining a room you are already in is a no-op. A third distinct player
// is rejected with ErrRoomFull.
func (c *Controller) Join(ctx context.Context, roomID model.RoomID, p model.Player) error {
	handle := c.getOrCreate(roomID)

	handle.mu.Lock()
	defer handle.mu.Unlock()

	room := handle.room
	if room.GetPlayer(p.ID) != nil {
		return nil // Rejoin after refresh is routine
	}
	if room.IsFull() {
		return model.ErrRoomFull
	}

	room.Players = append(room.Players, p)
	c.bump(room)

	c.logger.Info("player joined room",
		slog.String("room_id", string(roomID)),
		slog.String("player_id", string(p.ID)),
		slog.Int("seat", len(room.Players)),
	)
	return nil
}

// SubmitWord records a player's secret word. The raw input is normalized
// to lowercase alphabetic; an empty result leaves the pending slot unset
// and returns ErrEmptyWord. When both words are in, the match is created
// with a random opening turn, which counts as its own version bump.
func (c *Controller) SubmitWord(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, rawWord string) error {
	handle, ok := c.get(roomID)
	if !ok {
		return model.ErrRoomNotFound
	}

	handle.mu.Lock()
	defer handle.mu.Unlock()

	room := handle.room
	if room.GetPlayer(playerID) == nil {
		return model.ErrNotInRoom
	}
	if room.Match != nil {
		return model.ErrMatchStarted
	}

	word := model.NormalizeWord(rawWord)
	if word == "" {
		return model.ErrEmptyWord
	}

	room.PendingWords[playerID] = word
	c.bump(room)

	if room.IsFull() && len(room.PendingWords) == model.MaxRoomPlayers {
		p1, p2 := room.Players[0], room.Players[1]
		room.Match = model.NewVersusGame(
			p1, p2,
			room.PendingWords[p1.ID], room.PendingWords[p2.ID],
			c.random.Intn(2),
			c.clock.Now(),
		)
		c.bump(room)

		c.logger.Info("match started",
			slog.String("room_id", string(roomID)),
			slog.String("first_player", string(room.Match.CurrentPlayer().ID)),
		)
	}
	return nil
}

// Guess applies a letter guess by the given player. It returns whether the
// letter was correct and whether the guess was applied at all; stale
// requests racing a turn boundary land as applied=false, not errors.
func (c *Controller) Guess(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, letter string) (correct, applied bool, err error) {
	handle, ok := c.get(roomID)
	if !ok {
		return false, false, model.ErrRoomNotFound
	}

	handle.mu.Lock()
	room := handle.room
	if room.GetPlayer(playerID) == nil {
		handle.mu.Unlock()
		return false, false, model.ErrNotInRoom
	}
	if room.Match == nil {
		handle.mu.Unlock()
		return false, false, model.ErrMatchNotStarted
	}

	c.applyTimeout(room)

	correct, applied = room.Match.GuessLetter(playerID, letter, c.clock.Now())
	var summary *model.MatchSummary
	if applied {
		c.bump(room)
		if room.Match.Finished {
			summary = model.NewMatchSummary(roomID, room.Match, c.clock.Now())
		}
	}
	handle.mu.Unlock()

	// Storage may be remote; archive outside the room lock.
	if summary != nil {
		c.archive(ctx, summary)
	}
	return correct, applied, nil
}

// Solve applies the one-shot solve action: the acting player reveals the
// opponent's entire word and wins immediately.
func (c *Controller) Solve(ctx context.Context, roomID model.RoomID, playerID model.PlayerID) (applied bool, err error) {
	handle, ok := c.get(roomID)
	if !ok {
		return false, model.ErrRoomNotFound
	}

	handle.mu.Lock()
	room := handle.room
	if room.GetPlayer(playerID) == nil {
		handle.mu.Unlock()
		return false, model.ErrNotInRoom
	}
	if room.Match == nil {
		handle.mu.Unlock()
		return false, model.ErrMatchNotStarted
	}

	c.applyTimeout(room)

	applied = room.Match.Solve(playerID)
	var summary *model.MatchSummary
	if applied {
		c.bump(room)
		summary = model.NewMatchSummary(roomID, room.Match, c.clock.Now())
	}
	handle.mu.Unlock()

	if summary != nil {
		c.archive(ctx, summary)
	}
	return applied, nil
}

// RoomView is the snapshot a polling client receives. It carries the room
// version so clients can skip re-rendering when nothing changed.
type RoomView struct {
	RoomID      model.RoomID
	Phase       model.RoomPhase
	Version     int64
	PlayerNames []string
	View        *model.PlayerView
}

// Snapshot returns the room as seen by one player. Reads take the room
// lock, evaluate the opportunistic turn timeout, copy, and return; they
// never wait for changes. Staleness up to one polling interval is by
// design.
func (c *Controller) Snapshot(ctx context.Context, roomID model.RoomID, playerID model.PlayerID) (*RoomView, error) {
	handle, ok := c.get(roomID)
	if !ok {
		return nil, model.ErrRoomNotFound
	}

	handle.mu.Lock()
	defer handle.mu.Unlock()

	room := handle.room
	if room.GetPlayer(playerID) == nil {
		return nil, model.ErrNotInRoom
	}

	c.applyTimeout(room)

	view := &RoomView{
		RoomID:  roomID,
		Phase:   room.PhaseFor(playerID),
		Version: room.Version,
	}
	for _, p := range room.Players {
		view.PlayerNames = append(view.PlayerNames, p.DisplayName)
	}
	if room.Match != nil {
		if pv, ok := room.Match.ViewFor(playerID); ok {
			view.View = &pv
		}
	}
	return view, nil
}

// Version returns the room's current version counter
func (c *Controller) Version(ctx context.Context, roomID model.RoomID) (int64, error) {
	handle, ok := c.get(roomID)
	if !ok {
		return 0, model.ErrRoomNotFound
	}

	handle.mu.Lock()
	defer handle.mu.Unlock()
	return handle.room.Version, nil
}

// RecentSummaries returns archived match results, most recent first
func (c *Controller) RecentSummaries(ctx context.Context, limit int) ([]*model.MatchSummary, error) {
	return c.storage.GetRecentMatchSummaries(ctx, limit)
}

// applyTimeout runs the opportunistic timeout check under the caller's
// room lock. A fired timeout is an observable mutation and bumps the
// version.
func (c *Controller) applyTimeout(room *model.Room) {
	if room.Match == nil || c.turnTimeout <= 0 {
		return
	}
	if room.Match.CheckTimeout(c.clock.Now(), c.turnTimeout) {
		c.bump(room)
		c.logger.Info("turn timed out",
			slog.String("room_id", string(room.ID)),
			slog.String("now_playing", string(room.Match.CurrentPlayer().ID)),
		)
	}
}

// bump records an observable mutation; must be called under the room lock
func (c *Controller) bump(room *model.Room) {
	room.Version++
	room.UpdatedAt = c.clock.Now()
}

// archive saves a finished match's summary; failures are logged, never
// surfaced to the player whose guess just won the game.
func (c *Controller) archive(ctx context.Context, summary *model.MatchSummary) {
	if err := c.storage.SaveMatchSummary(ctx, summary); err != nil {
		c.logger.Warn("failed to archive match summary",
			slog.String("room_id", string(summary.RoomID)),
			slog.String("error", err.Error()),
		)
		return
	}
	c.logger.Info("match finished",
		slog.String("room_id", string(summary.RoomID)),
		slog.String("winner", string(summary.Winner)),
	)
}
