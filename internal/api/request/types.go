package request

import "encoding/json"

// CreateRoomRequest is the request body for creating a room
type CreateRoomRequest struct {
	Name string `json:"name"`
}

// JoinRoomRequest is the request body for joining a room
type JoinRoomRequest struct {
	Name string `json:"name"`
}

// SubmitRequest is the request body for a day submission.
// Which field matters depends on the day's shape; the rest are ignored.
type SubmitRequest struct {
	PlayerID string          `json:"player_id"`
	Accepted bool            `json:"accepted,omitempty"`
	Message  string          `json:"message,omitempty"`
	Name     string          `json:"name,omitempty"`
	Choice   string          `json:"choice,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}
