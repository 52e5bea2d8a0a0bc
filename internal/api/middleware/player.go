package middleware

import (
	"context"
	"net/http"

	"github.com/ajmcleod/hangduel/internal/api/apierr"
	"github.com/ajmcleod/hangduel/internal/model"
	"github.com/ajmcleod/hangduel/internal/services/player"
)

type contextKey string

const playerContextKey contextKey = "player"

// PlayerHeader carries the caller's opaque player ID. There is no
// authentication layer: an ID is an anonymous handle, not an identity.
const PlayerHeader = "X-Player-Id"

// Identify creates middleware resolving the calling player from the
// request and putting it on the context. Requests without a known player
// ID are rejected.
func Identify(playerService *player.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := extractPlayerID(r)
			if id == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			p, err := playerService.GetPlayer(r.Context(), model.PlayerID(id))
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), playerContextKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractPlayerID reads the player ID from the header or, for plain
// browser GETs, the query string.
func extractPlayerID(r *http.Request) string {
	if id := r.Header.Get(PlayerHeader); id != "" {
		return id
	}
	return r.URL.Query().Get("player_id")
}

// GetPlayer retrieves the identified player from the context
func GetPlayer(ctx context.Context) (*model.Player, bool) {
	p, ok := ctx.Value(playerContextKey).(*model.Player)
	return p, ok
}

// MustGetPlayer retrieves the identified player, panicking if absent.
// Only for handlers behind the Identify middleware.
func MustGetPlayer(ctx context.Context) *model.Player {
	p, ok := GetPlayer(ctx)
	if !ok {
		panic("player not found in context: handler not behind Identify middleware")
	}
	return p
}
