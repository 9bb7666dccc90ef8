// Package day implements the submission barrier: it tracks each
// party's contribution to a day, applies the day's completion
// predicate, and triggers reflection generation exactly once on the
// first satisfying transition.
package day

import (
	"context"
	"log/slog"
	"sync"

	"github.com/petrichorlab/eightdays/internal/dependencies/clock"
	"github.com/petrichorlab/eightdays/internal/model"
	"github.com/petrichorlab/eightdays/internal/notify"
	"github.com/petrichorlab/eightdays/internal/services/reflection"
	"github.com/petrichorlab/eightdays/internal/storage"
)

// Controller serializes day submissions per room and owns the
// completion state machine
type Controller struct {
	storage   storage.Storage
	pipeline  *reflection.Pipeline
	publisher notify.Publisher
	clock     clock.Clock
	logger    *slog.Logger

	// Per-room locks held across the read-merge-evaluate-write sequence
	// so two near-simultaneous submissions cannot both claim the
	// completing transition. The map is append-only; rooms live 8 days.
	mu    sync.Mutex
	locks map[model.RoomCode]*sync.Mutex
}

// NewController creates a new day Controller
func NewController(
	storage storage.Storage,
	pipeline *reflection.Pipeline,
	publisher notify.Publisher,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		pipeline:  pipeline,
		publisher: publisher,
		clock:     clock,
		logger:    logger.With(slog.String("component", "day")),
		locks:     make(map[model.RoomCode]*sync.Mutex),
	}
}

// SubmitResult is what a submission caller gets back
type SubmitResult struct {
	Completed  bool   `json:"completed"`
	Reflection string `json:"reflection,omitempty"`
}

// Status describes one day from one party's point of view
type Status struct {
	Submitted        bool   `json:"submitted"`
	PartnerSubmitted bool   `json:"partner_submitted"`
	Completed        bool   `json:"completed"`
	Reflection       string `json:"reflection,omitempty"`
}

// Submit writes one party's contribution to a day and evaluates the
// day's completion predicate. On the first satisfying transition it
// generates the reflection, marks the day complete, and publishes a
// day-completed event; otherwise it publishes partner-acted.
// Submitting to an already-completed day is idempotent: the stored
// reflection is returned and nothing is re-merged.
func (c *Controller) Submit(ctx context.Context, code model.RoomCode, playerID model.PlayerID, dayNum int, sub model.Submission) (*SubmitResult, error) {
	shape, err := model.ShapeForDay(dayNum)
	if err != nil {
		return nil, err
	}
	if err := sub.Validate(shape.Kind); err != nil {
		return nil, err
	}

	lock := c.roomLock(code)
	lock.Lock()
	defer lock.Unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.Expired(c.clock.Now()) {
		return nil, model.ErrRoomNotFound
	}

	progress := room.Day(dayNum)
	if progress.Completed {
		return &SubmitResult{Completed: true, Reflection: progress.Reflection}, nil
	}

	party := room.PartyIndex(playerID)
	if progress.Data == nil {
		progress.Data = &model.DayData{}
	}
	sub.SubmittedAt = c.clock.Now()
	progress.Data.Parties[party] = &sub

	if !shape.Complete(progress.Data) {
		if err := c.storage.SaveRoom(ctx, room); err != nil {
			return nil, err
		}
		c.publish(code, model.EventPartnerActed, model.PartnerActedPayload{
			PlayerID: playerID,
			Day:      dayNum,
		})
		return &SubmitResult{Completed: false}, nil
	}

	// First satisfying transition: generate while still holding the
	// room lock. The provider call is timeout-bounded, and holding the
	// lock guarantees a concurrent submitter cannot observe the day as
	// incomplete and regenerate.
	text := c.pipeline.Generate(ctx, dayNum, progress.Data)
	now := c.clock.Now()
	progress.Completed = true
	progress.Reflection = text
	progress.CompletedAt = &now

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	c.logger.Info("day completed",
		slog.String("room", string(code)),
		slog.Int("day", dayNum),
	)
	c.publish(code, model.EventDayCompleted, model.DayCompletedPayload{
		Day:        dayNum,
		Reflection: text,
	})

	return &SubmitResult{Completed: true, Reflection: text}, nil
}

// GetStatus reports a day's state from the given player's perspective.
// Unlike Submit, the player id must belong to a room occupant: the
// answer distinguishes "you" from your partner.
func (c *Controller) GetStatus(ctx context.Context, code model.RoomCode, playerID model.PlayerID, dayNum int) (*Status, error) {
	if _, err := model.ShapeForDay(dayNum); err != nil {
		return nil, err
	}

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.Expired(c.clock.Now()) {
		return nil, model.ErrRoomNotFound
	}
	if !isOccupant(room, playerID) {
		return nil, model.ErrPlayerNotFound
	}

	party := room.PartyIndex(playerID)
	progress := room.Day(dayNum)

	status := &Status{
		Completed:  progress.Completed,
		Reflection: progress.Reflection,
	}
	if progress.Data != nil {
		status.Submitted = progress.Data.Parties[party] != nil
		status.PartnerSubmitted = progress.Data.Parties[1-party] != nil
	}
	return status, nil
}

func (c *Controller) publish(code model.RoomCode, t model.EventType, payload any) {
	c.publisher.Publish(code, model.Event{
		Type:      t,
		Timestamp: c.clock.Now(),
		RoomCode:  code,
		Payload:   payload,
	})
}

// roomLock returns the mutex serializing submissions for a room
func (c *Controller) roomLock(code model.RoomCode) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.locks[code]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[code] = lock
	}
	return lock
}

func isOccupant(room *model.Room, playerID model.PlayerID) bool {
	for _, p := range []*model.PlayerRef{room.Player1, room.Player2} {
		if p != nil && p.ID == playerID {
			return true
		}
	}
	return false
}

// ControllerInterface for dependency injection
type ControllerInterface interface {
	Submit(ctx context.Context, code model.RoomCode, playerID model.PlayerID, dayNum int, sub model.Submission) (*SubmitResult, error)
	GetStatus(ctx context.Context, code model.RoomCode, playerID model.PlayerID, dayNum int) (*Status, error)
}

var _ ControllerInterface = (*Controller)(nil)
