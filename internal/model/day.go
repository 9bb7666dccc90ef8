package model

import (
	"encoding/json"
	"time"
	"unicode/utf8"
)

// DayKind describes the submission shape a day expects
type DayKind string

const (
	DayKindAccept     DayKind = "accept"     // day 1: both must accept
	DayKindMessage    DayKind = "message"    // day 2: both write a message
	DayKindChoice     DayKind = "choice"     // days 3, 5, 6: pick a choice, optional message
	DayKindStructured DayKind = "structured" // days 4, 7: arbitrary JSON payload
	DayKindNone       DayKind = "none"       // day 8: finale, no two-party gate
)

// Submission is one party's contribution to a day. Which fields are
// meaningful depends on the day's kind.
type Submission struct {
	Accepted bool            `json:"accepted,omitempty"`
	Message  string          `json:"message,omitempty"`
	Name     string          `json:"name,omitempty"`
	Choice   string          `json:"choice,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`

	SubmittedAt time.Time `json:"submitted_at"`
}

// DayData holds both parties' submissions for a day.
// Index 0 is player1's slot, index 1 is player2's.
type DayData struct {
	Parties [2]*Submission `json:"parties"`
}

// DayProgress tracks one day of the ritual
type DayProgress struct {
	Day         int        `json:"day"`
	Completed   bool       `json:"completed"`
	Data        *DayData   `json:"data"`
	Reflection  string     `json:"ai_reflection,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (p *DayProgress) clone() *DayProgress {
	if p == nil {
		return nil
	}
	c := *p
	if p.Data != nil {
		data := &DayData{}
		for i, s := range p.Data.Parties {
			data.Parties[i] = s.clone()
		}
		c.Data = data
	}
	if p.CompletedAt != nil {
		t := *p.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}

func (s *Submission) clone() *Submission {
	if s == nil {
		return nil
	}
	c := *s
	if s.Payload != nil {
		c.Payload = append(json.RawMessage(nil), s.Payload...)
	}
	return &c
}

// DayShape couples a day's submission kind with its completion predicate
type DayShape struct {
	Kind     DayKind
	Complete func(d *DayData) bool
}

var dayShapes = [TotalDays]DayShape{
	{Kind: DayKindAccept, Complete: bothParties(func(s *Submission) bool { return s.Accepted })},
	{Kind: DayKindMessage, Complete: bothParties(func(s *Submission) bool { return s.Message != "" })},
	{Kind: DayKindChoice, Complete: bothParties(func(s *Submission) bool { return s.Choice != "" })},
	{Kind: DayKindStructured, Complete: bothParties(func(s *Submission) bool { return s.Payload != nil })},
	{Kind: DayKindChoice, Complete: bothParties(func(s *Submission) bool { return s.Choice != "" })},
	{Kind: DayKindChoice, Complete: bothParties(func(s *Submission) bool { return s.Choice != "" })},
	{Kind: DayKindStructured, Complete: bothParties(func(s *Submission) bool { return s.Payload != nil })},
	{Kind: DayKindNone, Complete: func(d *DayData) bool { return true }},
}

func bothParties(sat func(s *Submission) bool) func(d *DayData) bool {
	return func(d *DayData) bool {
		if d == nil {
			return false
		}
		for _, s := range d.Parties {
			if s == nil || !sat(s) {
				return false
			}
		}
		return true
	}
}

// ShapeForDay returns the shape for a 1-based day
func ShapeForDay(day int) (DayShape, error) {
	if day < 1 || day > TotalDays {
		return DayShape{}, ErrInvalidDay
	}
	return dayShapes[day-1], nil
}

// Validate checks that a submission carries the fields its day's kind requires
func (s *Submission) Validate(kind DayKind) error {
	switch kind {
	case DayKindAccept:
		if !s.Accepted {
			return ErrInvalidPayload
		}
	case DayKindMessage:
		if s.Message == "" {
			return ErrInvalidPayload
		}
	case DayKindChoice:
		if s.Choice == "" {
			return ErrInvalidPayload
		}
	case DayKindStructured:
		if len(s.Payload) == 0 || string(s.Payload) == "null" {
			return ErrInvalidPayload
		}
	case DayKindNone:
		// Finale accepts anything, including an empty submission
	}
	return nil
}

// Headline returns the party's most relevant answer: the first non-empty
// of message, choice, or a summary of the structured payload
func (s *Submission) Headline() string {
	if s == nil {
		return ""
	}
	if s.Message != "" {
		return s.Message
	}
	if s.Choice != "" {
		return s.Choice
	}
	if len(s.Payload) > 0 && string(s.Payload) != "null" {
		return truncate(string(s.Payload), 120)
	}
	if s.Accepted {
		return "accepted"
	}
	return ""
}

// truncate cuts s to at most max bytes without splitting a rune
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
