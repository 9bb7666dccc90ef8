package model

import "errors"

// Common errors used across the application
var (
	// Room errors
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is full")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidName    = errors.New("name must be 2-30 characters")

	// Day errors
	ErrInvalidDay     = errors.New("day must be between 1 and 8")
	ErrInvalidPayload = errors.New("submission is missing required fields")
)
