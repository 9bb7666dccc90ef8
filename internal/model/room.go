package model

import (
	"strings"
	"time"
)

// RoomCode is a human-readable identifier for joining rooms
type RoomCode string

// TotalDays is the fixed length of the ritual
const TotalDays = 8

// RoomLifetime is how long a room stays live after creation
const RoomLifetime = TotalDays * 24 * time.Hour

// Room is a two-party session spanning eight days
type Room struct {
	Code      RoomCode                `json:"code"`
	Player1   *PlayerRef              `json:"player1"`
	Player2   *PlayerRef              `json:"player2"`
	Progress  [TotalDays]*DayProgress `json:"progress"`
	CreatedAt time.Time               `json:"created_at"`
	ExpiresAt time.Time               `json:"expires_at"`
}

// NewRoom creates a room with all eight day entries populated and empty
func NewRoom(code RoomCode, now time.Time) *Room {
	r := &Room{
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(RoomLifetime),
	}
	for i := range r.Progress {
		r.Progress[i] = &DayProgress{Day: i + 1}
	}
	return r
}

// Day returns the progress entry for a 1-based day, or nil if out of range
func (r *Room) Day(day int) *DayProgress {
	if day < 1 || day > TotalDays {
		return nil
	}
	return r.Progress[day-1]
}

// IsFull reports whether both player slots are occupied
func (r *Room) IsFull() bool {
	return r.Player1 != nil && r.Player2 != nil
}

// FindPlayerByName returns the occupant whose name matches case-insensitively,
// or nil if neither does
func (r *Room) FindPlayerByName(name string) *PlayerRef {
	for _, p := range []*PlayerRef{r.Player1, r.Player2} {
		if p != nil && strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// PartyIndex resolves a player id to party 0 (player1) or 1 (player2).
// Unrecognized ids resolve to party 2, matching the registry's rule that
// player1's id is the only authority for party 1.
func (r *Room) PartyIndex(playerID PlayerID) int {
	if r.Player1 != nil && r.Player1.ID == playerID {
		return 0
	}
	return 1
}

// Expired reports whether the room is past its lifetime
func (r *Room) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// Clone returns a deep copy of the room. Storage backends return
// clones so no two callers ever share a mutable Room.
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}
	c := *r
	c.Player1 = r.Player1.clone()
	c.Player2 = r.Player2.clone()
	for i, p := range r.Progress {
		c.Progress[i] = p.clone()
	}
	return &c
}

func (p *PlayerRef) clone() *PlayerRef {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
