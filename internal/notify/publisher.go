// Package notify defines the outbound notification channel. Delivery is
// fire-and-forget: the barrier's correctness never depends on an event
// reaching a client.
package notify

import "github.com/petrichorlab/eightdays/internal/model"

// Publisher pushes room events to whoever is listening
type Publisher interface {
	Publish(code model.RoomCode, event model.Event)
}

// Nop is a Publisher that drops every event
type Nop struct{}

var _ Publisher = Nop{}

// Publish does nothing
func (Nop) Publish(code model.RoomCode, event model.Event) {}
