package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ajmcleod/hangduel/internal/api/middleware"
	"github.com/ajmcleod/hangduel/internal/api/request"
	"github.com/ajmcleod/hangduel/internal/api/response"
	"github.com/ajmcleod/hangduel/internal/model"
	"github.com/ajmcleod/hangduel/internal/services/registry"
)

// RoomHandler handles human-vs-human match room endpoints
type RoomHandler struct {
	registry *registry.Controller
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(registryController *registry.Controller) *RoomHandler {
	return &RoomHandler{
		registry: registryController,
	}
}

// Join handles POST /api/v1/rooms/{id}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	roomID := model.RoomID(mux.Vars(r)["id"])

	if err := h.registry.Join(r.Context(), roomID, *player); err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.registry.Snapshot(r.Context(), roomID, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomStateFromView(view, 0))
}

// Get handles GET /api/v1/rooms/{id}. Polling clients pass the version
// they last saw as ?since= and check the changed flag in the response.
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	roomID := model.RoomID(mux.Vars(r)["id"])

	var since int64
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			WriteError(w, NewInvalidRequestError("since must be an integer"))
			return
		}
		since = parsed
	}

	view, err := h.registry.Snapshot(r.Context(), roomID, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomStateFromView(view, since))
}

// SubmitWord handles POST /api/v1/rooms/{id}/word
func (h *RoomHandler) SubmitWord(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	roomID := model.RoomID(mux.Vars(r)["id"])

	var req request.SubmitWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.registry.SubmitWord(r.Context(), roomID, player.ID, req.Word); err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.registry.Snapshot(r.Context(), roomID, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomStateFromView(view, 0))
}

// Guess handles POST /api/v1/rooms/{id}/guess
func (h *RoomHandler) Guess(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	roomID := model.RoomID(mux.Vars(r)["id"])

	var req request.GuessRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	correct, applied, err := h.registry.Guess(r.Context(), roomID, player.ID, req.Letter)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.registry.Snapshot(r.Context(), roomID, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessResult{
		Applied: applied,
		Correct: correct,
		Room:    response.RoomStateFromView(view, 0),
	})
}

// Solve handles POST /api/v1/rooms/{id}/solve
func (h *RoomHandler) Solve(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	roomID := model.RoomID(mux.Vars(r)["id"])

	applied, err := h.registry.Solve(r.Context(), roomID, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.registry.Snapshot(r.Context(), roomID, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessResult{
		Applied: applied,
		Correct: applied,
		Room:    response.RoomStateFromView(view, 0),
	})
}
