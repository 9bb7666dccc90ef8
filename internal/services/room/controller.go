package room

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/petrichorlab/eightdays/internal/dependencies/clock"
	"github.com/petrichorlab/eightdays/internal/dependencies/random"
	"github.com/petrichorlab/eightdays/internal/model"
	"github.com/petrichorlab/eightdays/internal/storage"
)

const (
	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6
	// RoomCodeAlphabet is the characters used in room codes
	// (no 0/O/1/I, those read ambiguously when shared out loud)
	RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Controller is the room registry: it owns room creation, player
// identity resolution, and room lookup
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	// Per-room locks held across the name-match, fullness check, and
	// slot fill so two concurrent joins cannot both claim the second
	// slot. Same discipline as the submission barrier.
	mu    sync.Mutex
	locks map[model.RoomCode]*sync.Mutex
}

// NewController creates a new room Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With(slog.String("component", "room")),
		locks:   make(map[model.RoomCode]*sync.Mutex),
	}
}

// CreateRoom creates a room with the named player as player1
func (c *Controller) CreateRoom(ctx context.Context, name string) (*model.Room, model.PlayerID, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, "", err
	}

	now := c.clock.Now()

	// Generate unique room code
	var code model.RoomCode
	for {
		code = model.RoomCode(c.random.String(RoomCodeLength, RoomCodeAlphabet))
		exists, err := c.storage.RoomExists(ctx, code)
		if err != nil {
			return nil, "", err
		}
		if !exists {
			break
		}
	}

	room := model.NewRoom(code, now)
	playerID := model.PlayerID(uuid.NewString())
	room.Player1 = &model.PlayerRef{
		ID:       playerID,
		Name:     name,
		JoinedAt: now,
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, "", err
	}

	c.logger.Info("room created",
		slog.String("room", string(code)),
		slog.String("player_id", string(playerID)),
	)

	return room, playerID, nil
}

// JoinRoom resolves a player's identity in a room. A name matching an
// existing occupant (case-insensitive) returns that occupant's id with
// rejoined=true, before any fullness check, so a returning party is
// never blocked by a nominally full room.
func (c *Controller) JoinRoom(ctx context.Context, code model.RoomCode, name string) (model.PlayerID, bool, error) {
	name, err := validateName(name)
	if err != nil {
		return "", false, err
	}

	lock := c.roomLock(code)
	lock.Lock()
	defer lock.Unlock()

	room, err := c.liveRoom(ctx, code)
	if err != nil {
		return "", false, err
	}

	if existing := room.FindPlayerByName(name); existing != nil {
		return existing.ID, true, nil
	}

	if room.IsFull() {
		return "", false, model.ErrRoomFull
	}

	playerID := model.PlayerID(uuid.NewString())
	ref := &model.PlayerRef{
		ID:       playerID,
		Name:     name,
		JoinedAt: c.clock.Now(),
	}
	if room.Player1 == nil {
		room.Player1 = ref
	} else {
		room.Player2 = ref
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return "", false, err
	}

	c.logger.Info("player joined",
		slog.String("room", string(code)),
		slog.String("player_id", string(playerID)),
	)

	return playerID, false, nil
}

// GetRoom retrieves a room by code. The returned room is a snapshot;
// callers must not mutate it outside the submission barrier.
func (c *Controller) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	return c.liveRoom(ctx, code)
}

// liveRoom fetches a room and reaps it if its lifetime has elapsed.
// Redis storage expires rooms on its own; the memory backend relies on
// this check.
func (c *Controller) liveRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.Expired(c.clock.Now()) {
		if err := c.storage.DeleteRoom(ctx, code); err != nil {
			c.logger.Warn("failed to reap expired room",
				slog.String("room", string(code)),
				slog.String("error", err.Error()))
		}
		return nil, model.ErrRoomNotFound
	}
	return room, nil
}

// roomLock returns the mutex serializing joins for a room
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

// validateName trims and length-checks a player name
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n < model.MinNameLength || n > model.MaxNameLength {
		return "", model.ErrInvalidName
	}
	return name, nil
}

// ControllerInterface for dependency injection
type ControllerInterface interface {
	CreateRoom(ctx context.Context, name string) (*model.Room, model.PlayerID, error)
	JoinRoom(ctx context.Context, code model.RoomCode, name string) (model.PlayerID, bool, error)
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)
}

var _ ControllerInterface = (*Controller)(nil)
