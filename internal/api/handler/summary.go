package handler

import (
	"net/http"
	"strconv"

	"github.com/ajmcleod/hangduel/internal/api/response"
	"github.com/ajmcleod/hangduel/internal/services/registry"
)

// DefaultSummaryLimit is how many recent matches are returned by default
const DefaultSummaryLimit = 20

// MaxSummaryLimit caps the recent match page size
const MaxSummaryLimit = 100

// SummaryHandler handles completed match history endpoints
type SummaryHandler struct {
	registry *registry.Controller
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(registryController *registry.Controller) *SummaryHandler {
	return &SummaryHandler{
		registry: registryController,
	}
}

// Recent handles GET /api/v1/matches/recent
func (h *SummaryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := DefaultSummaryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = min(parsed, MaxSummaryLimit)
	}

	summaries, err := h.registry.RecentSummaries(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.MatchSummary, len(summaries))
	for i, s := range summaries {
		out[i] = response.MatchSummaryFromModel(s)
	}
	response.JSON(w, http.StatusOK, out)
}
