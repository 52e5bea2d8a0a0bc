package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ajmcleod/hangduel/internal/api/middleware"
	"github.com/ajmcleod/hangduel/internal/api/request"
	"github.com/ajmcleod/hangduel/internal/api/response"
	"github.com/ajmcleod/hangduel/internal/services/engine"
)

// SoloHandler handles solo game endpoints. The server keeps no solo game
// state: the encoded snapshot travels in the response and comes back with
// the next guess.
type SoloHandler struct {
	engine *engine.Controller
}

// NewSoloHandler creates a new solo handler
func NewSoloHandler(engineController *engine.Controller) *SoloHandler {
	return &SoloHandler{
		engine: engineController,
	}
}

// Start handles POST /api/v1/solo
func (h *SoloHandler) Start(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.StartSoloRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Allow empty body for the default attempt budget
		req = request.StartSoloRequest{}
	}

	g, err := h.engine.NewSolo(*player, req.MaxAttempts)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SoloStateFromModel(g))
}

// Guess handles POST /api/v1/solo/guess
func (h *SoloHandler) Guess(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.GuessSoloRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.State == nil {
		WriteError(w, NewInvalidRequestError("state is required"))
		return
	}

	g, err := req.State.Decode()
	if err != nil {
		WriteError(w, err)
		return
	}
	if g.Player.ID != player.ID {
		WriteError(w, NewInvalidRequestError("state belongs to a different player"))
		return
	}

	applied := h.engine.GuessSolo(g, req.Letter)

	response.JSON(w, http.StatusOK, response.SoloGuessResult{
		Applied: applied,
		Game:    response.SoloStateFromModel(g),
	})
}
