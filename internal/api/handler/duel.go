package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ajmcleod/hangduel/internal/api/middleware"
	"github.com/ajmcleod/hangduel/internal/api/request"
	"github.com/ajmcleod/hangduel/internal/api/response"
	"github.com/ajmcleod/hangduel/internal/model"
	"github.com/ajmcleod/hangduel/internal/services/engine"
	"github.com/ajmcleod/hangduel/internal/services/player"
	"github.com/ajmcleod/hangduel/internal/session"
)

// DuelHandler handles human-vs-computer match endpoints. Like solo games,
// a duel lives entirely in the session snapshot the client carries.
type DuelHandler struct {
	engine        *engine.Controller
	playerService *player.Service
}

// NewDuelHandler creates a new duel handler
func NewDuelHandler(engineController *engine.Controller, playerService *player.Service) *DuelHandler {
	return &DuelHandler{
		engine:        engineController,
		playerService: playerService,
	}
}

// Start handles POST /api/v1/duels
func (h *DuelHandler) Start(w http.ResponseWriter, r *http.Request) {
	human := middleware.MustGetPlayer(r.Context())

	var req request.StartDuelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Allow empty body for default opponent settings
		req = request.StartDuelRequest{}
	}

	computer, err := h.playerService.CreateComputer(r.Context(), "", req.Intelligence)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, trail, err := h.engine.NewDuel(*human, *computer, req.Word)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, duelStateFor(g, human.ID, true, false, trail))
}

// Guess handles POST /api/v1/duels/guess
func (h *DuelHandler) Guess(w http.ResponseWriter, r *http.Request) {
	human := middleware.MustGetPlayer(r.Context())

	var req request.GuessDuelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.State == nil {
		WriteError(w, NewInvalidRequestError("state is required"))
		return
	}

	g, err := h.decodeFor(req.State, human.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	correct, applied, trail := h.engine.GuessDuel(g, human.ID, req.Letter)

	response.JSON(w, http.StatusOK, duelStateFor(g, human.ID, applied, correct, trail))
}

// Solve handles POST /api/v1/duels/solve
func (h *DuelHandler) Solve(w http.ResponseWriter, r *http.Request) {
	human := middleware.MustGetPlayer(r.Context())

	var req request.SolveDuelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.State == nil {
		WriteError(w, NewInvalidRequestError("state is required"))
		return
	}

	g, err := h.decodeFor(req.State, human.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	applied, trail := h.engine.SolveDuel(g, human.ID)

	response.JSON(w, http.StatusOK, duelStateFor(g, human.ID, applied, applied, trail))
}

// decodeFor decodes a duel snapshot and checks the caller is its human side
func (h *DuelHandler) decodeFor(snapshot *session.VersusSnapshot, humanID model.PlayerID) (*model.VersusGame, error) {
	g, err := snapshot.Decode()
	if err != nil {
		return nil, err
	}
	for _, p := range g.Players {
		if p.ID == humanID && !p.IsComputer() {
			return g, nil
		}
	}
	return nil, NewInvalidRequestError("state belongs to a different player")
}

// duelStateFor builds the duel response from one human's side of the match.
// The embedded snapshot is the client-held state and contains both raw
// secrets, so a client that inspects it can read the computer's word; decode
// validation on the way back in is the only tamper check. Keeping secrets
// out of the client's hands is left to whatever shell fronts this API.
func duelStateFor(g *model.VersusGame, humanID model.PlayerID, applied, correct bool, trail []engine.ComputerAction) response.DuelState {
	view, _ := g.ViewFor(humanID)
	return response.DuelState{
		State:    session.EncodeVersus(g),
		View:     response.MatchViewFromModel(view),
		Applied:  applied,
		Correct:  correct,
		Computer: response.ComputerActionsFromEngine(trail),
	}
}
