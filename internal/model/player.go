package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// PlayerRef identifies one of the two participants in a room
type PlayerRef struct {
	ID       PlayerID  `json:"id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joined_at"`
}

// Name length limits, applied after trimming
const (
	MinNameLength = 2
	MaxNameLength = 30
)
