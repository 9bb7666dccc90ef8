package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// EventDayCompleted fires when a day's predicate is first satisfied
	// and its reflection has been generated
	EventDayCompleted EventType = "day-completed"

	// EventPartnerActed fires when one party submits but the day is not
	// yet complete, so the other party's client can re-poll
	EventPartnerActed EventType = "partner-acted"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	RoomCode  RoomCode  `json:"room_code"`
	Payload   any       `json:"payload"`
}

// DayCompletedPayload contains data for day completed events
type DayCompletedPayload struct {
	Day        int    `json:"day"`
	Reflection string `json:"reflection"`
}

// PartnerActedPayload contains data for partner acted events
type PartnerActedPayload struct {
	PlayerID PlayerID `json:"player_id"`
	Day      int      `json:"day"`
}
