package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ajmcleod/hangduel/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodePlayerNotFound  = "PLAYER_NOT_FOUND"
	CodeRoomNotFound    = "ROOM_NOT_FOUND"
	CodeRoomFull        = "ROOM_FULL"
	CodeNotInRoom       = "NOT_IN_ROOM"
	CodeEmptyWord       = "EMPTY_WORD"
	CodeMatchStarted    = "MATCH_STARTED"
	CodeMatchNotStarted = "MATCH_NOT_STARTED"
	CodeMalformedState  = "MALFORMED_STATE"
	CodeWordPoolEmpty   = "WORD_POOL_EMPTY"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrRoomNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoomNotFound, "Room not found"}}
	case errors.Is(err, model.ErrRoomFull):
		return &httpError{http.StatusConflict, APIError{CodeRoomFull, "Room already has two players"}}
	case errors.Is(err, model.ErrNotInRoom):
		return &httpError{http.StatusForbidden, APIError{CodeNotInRoom, "Not a player in this room"}}
	case errors.Is(err, model.ErrEmptyWord):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyWord, "Word must contain at least one letter"}}
	case errors.Is(err, model.ErrMatchStarted):
		return &httpError{http.StatusConflict, APIError{CodeMatchStarted, "Match has already started"}}
	case errors.Is(err, model.ErrMatchNotStarted):
		return &httpError{http.StatusConflict, APIError{CodeMatchNotStarted, "Match has not started yet"}}
	case errors.Is(err, model.ErrMalformedState):
		return &httpError{http.StatusBadRequest, APIError{CodeMalformedState, err.Error()}}
	case errors.Is(err, model.ErrWordPoolEmpty):
		return &httpError{http.StatusInternalServerError, APIError{CodeWordPoolEmpty, "No candidate words are loaded"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Player identification required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
