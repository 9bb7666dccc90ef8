package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/petrichorlab/eightdays/internal/model"
	"github.com/petrichorlab/eightdays/internal/notify"
)

// Broadcaster publishes room events to connected SSE clients. It
// implements notify.Publisher; delivery is best-effort.
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

var _ notify.Publisher = (*Broadcaster)(nil)

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Publish sends the event to every client connected to the room's hub.
// Rooms with no hub have no listeners; the event is dropped.
func (b *Broadcaster) Publish(code model.RoomCode, event model.Event) {
	hub := b.hubManager.GetHub(code)
	if hub == nil {
		return
	}

	data, err := json.Marshal(event.Payload)
	if err != nil {
		b.logger.Error("sse failed to marshal event payload",
			slog.String("room", string(code)),
			slog.String("event", string(event.Type)),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(string(event.Type), string(data))
}
