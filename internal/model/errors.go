package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Room errors
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomFull        = errors.New("room already has two players")
	ErrNotInRoom       = errors.New("player is not in room")
	ErrEmptyWord       = errors.New("submitted word has no letters")
	ErrMatchStarted    = errors.New("match has already started")
	ErrMatchNotStarted = errors.New("match has not started")

	// Serialization errors; decode failures indicate a storage or
	// transport bug, so they fail loudly unlike gameplay rejections.
	ErrMalformedState = errors.New("malformed serialized state")

	// Word pool errors
	ErrWordPoolEmpty = errors.New("word pool is empty")
)
