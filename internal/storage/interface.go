package storage

import (
	"context"

	"github.com/petrichorlab/eightdays/internal/model"
)

// Storage defines the interface for room persistence. The core is
// agnostic to the backend: volatile memory and Redis are both provided.
type Storage interface {
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)
	DeleteRoom(ctx context.Context, code model.RoomCode) error
	RoomExists(ctx context.Context, code model.RoomCode) (bool, error)
}
