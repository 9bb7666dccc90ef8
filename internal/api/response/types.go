package response

import (
	"time"

	"github.com/petrichorlab/eightdays/internal/model"
	"github.com/petrichorlab/eightdays/internal/services/day"
)

// Player represents a room occupant in API responses
type Player struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joined_at"`
}

// PlayerFromModel converts a model.PlayerRef to a response Player
func PlayerFromModel(p *model.PlayerRef) *Player {
	if p == nil {
		return nil
	}
	return &Player{
		ID:       string(p.ID),
		Name:     p.Name,
		JoinedAt: p.JoinedAt,
	}
}

// DayProgress represents one day's state in API responses.
// Submission contents stay private; only completion and the shared
// reflection are exposed.
type DayProgress struct {
	Day         int        `json:"day"`
	Completed   bool       `json:"completed"`
	Reflection  string     `json:"reflection,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// DayProgressFromModel converts model.DayProgress
func DayProgressFromModel(p *model.DayProgress) DayProgress {
	return DayProgress{
		Day:         p.Day,
		Completed:   p.Completed,
		Reflection:  p.Reflection,
		CompletedAt: p.CompletedAt,
	}
}

// Room represents a room in API responses
type Room struct {
	Code      string        `json:"code"`
	Player1   *Player       `json:"player1"`
	Player2   *Player       `json:"player2"`
	Progress  []DayProgress `json:"progress"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// RoomFromModel converts model.Room
func RoomFromModel(r *model.Room) Room {
	progress := make([]DayProgress, len(r.Progress))
	for i, p := range r.Progress {
		progress[i] = DayProgressFromModel(p)
	}
	return Room{
		Code:      string(r.Code),
		Player1:   PlayerFromModel(r.Player1),
		Player2:   PlayerFromModel(r.Player2),
		Progress:  progress,
		CreatedAt: r.CreatedAt,
		ExpiresAt: r.ExpiresAt,
	}
}

// CreateRoomResponse is the response for room creation
type CreateRoomResponse struct {
	Room     Room   `json:"room"`
	PlayerID string `json:"player_id"`
}

// JoinRoomResponse is the response for joining a room
type JoinRoomResponse struct {
	Room     Room   `json:"room"`
	PlayerID string `json:"player_id"`
	Rejoined bool   `json:"rejoined"`
}

// SubmitResponse is the response for a day submission
type SubmitResponse struct {
	Completed  bool   `json:"completed"`
	Reflection string `json:"reflection,omitempty"`
}

// SubmitResponseFromResult converts a day.SubmitResult
func SubmitResponseFromResult(r *day.SubmitResult) SubmitResponse {
	return SubmitResponse{
		Completed:  r.Completed,
		Reflection: r.Reflection,
	}
}

// StatusResponse is the response for a day status query
type StatusResponse struct {
	Submitted        bool   `json:"submitted"`
	PartnerSubmitted bool   `json:"partner_submitted"`
	Completed        bool   `json:"completed"`
	Reflection       string `json:"reflection,omitempty"`
}

// StatusResponseFromStatus converts a day.Status
func StatusResponseFromStatus(s *day.Status) StatusResponse {
	return StatusResponse{
		Submitted:        s.Submitted,
		PartnerSubmitted: s.PartnerSubmitted,
		Completed:        s.Completed,
		Reflection:       s.Reflection,
	}
}
