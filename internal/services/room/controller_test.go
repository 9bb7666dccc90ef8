package room

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/petrichorlab/eightdays/internal/dependencies/mocks"
	"github.com/petrichorlab/eightdays/internal/model"
	"github.com/petrichorlab/eightdays/internal/storage/memory"
	"github.com/petrichorlab/eightdays/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

// CreateRoom tests

func (s *ControllerSuite) TestCreateRoomSucceeds() {
	s.random.QueueString("WBN7QX")

	room, playerID, err := s.controller.CreateRoom(s.ctx, "Alice")
	s.Require().NoError(err)

	s.Equal(model.RoomCode("WBN7QX"), room.Code)
	s.Require().NotNil(room.Player1)
	s.Equal(playerID, room.Player1.ID)
	s.Equal("Alice", room.Player1.Name)
	s.Nil(room.Player2)
}

func (s *ControllerSuite) TestCreateRoomInitializesAllDays() {
	s.random.QueueString("WBN7QX")

	room, _, err := s.controller.CreateRoom(s.ctx, "Alice")
	s.Require().NoError(err)

	for day := 1; day <= model.TotalDays; day++ {
		p := room.Day(day)
		s.Require().NotNil(p, "day %d", day)
		s.Equal(day, p.Day)
		s.False(p.Completed)
		s.Nil(p.Data)
		s.Empty(p.Reflection)
		s.Nil(p.CompletedAt)
	}
}

func (s *ControllerSuite) TestCreateRoomSetsExpiry() {
	s.random.QueueString("WBN7QX")

	room, _, _ := s.controller.CreateRoom(s.ctx, "Alice")

	s.True(room.ExpiresAt.Equal(s.clock.Now().Add(8 * 24 * time.Hour)))
}

func (s *ControllerSuite) TestCreateRoomTrimsName() {
	s.random.QueueString("WBN7QX")

	room, _, err := s.controller.CreateRoom(s.ctx, "  Alice  ")
	s.Require().NoError(err)
	s.Equal("Alice", room.Player1.Name)
}

func (s *ControllerSuite) TestCreateRoomRejectsBadNames() {
	for _, name := range []string{"", "A", "   ", strings.Repeat("x", 31)} {
		_, _, err := s.controller.CreateRoom(s.ctx, name)
		s.ErrorIs(err, model.ErrInvalidName, "name %q", name)
	}
}

func (s *ControllerSuite) TestCreateRoomRetriesOnCodeCollision() {
	s.random.QueueString("WBN7QX")
	_, _, err := s.controller.CreateRoom(s.ctx, "Alice")
	s.Require().NoError(err)

	s.random.QueueString("WBN7QX", "XK2PQR")
	room, _, err := s.controller.CreateRoom(s.ctx, "Bella")
	s.Require().NoError(err)
	s.Equal(model.RoomCode("XK2PQR"), room.Code)
}

func (s *ControllerSuite) TestCreateRoomIsPersisted() {
	s.random.QueueString("WBN7QX")
	room, _, _ := s.controller.CreateRoom(s.ctx, "Alice")

	got, err := s.controller.GetRoom(s.ctx, room.Code)
	s.Require().NoError(err)
	s.Equal(room.Code, got.Code)
}

// JoinRoom tests

func (s *ControllerSuite) TestJoinRoomFillsSecondSlot() {
	s.random.QueueString("WBN7QX")
	room, p1, _ := s.controller.CreateRoom(s.ctx, "Alice")

	p2, rejoined, err := s.controller.JoinRoom(s.ctx, room.Code, "Bella")
	s.Require().NoError(err)
	s.False(rejoined)
	s.NotEqual(p1, p2)

	got, _ := s.controller.GetRoom(s.ctx, room.Code)
	s.Require().NotNil(got.Player2)
	s.Equal(p2, got.Player2.ID)
	s.Equal("Bella", got.Player2.Name)
}

func (s *ControllerSuite) TestJoinRoomNotFound() {
	_, _, err := s.controller.JoinRoom(s.ctx, "ZZZZZZ", "Bella")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *ControllerSuite) TestRejoinByNameReturnsExistingIdentity() {
	s.random.QueueString("WBN7QX")
	room, p1, _ := s.controller.CreateRoom(s.ctx, "Alice")

	got, rejoined, err := s.controller.JoinRoom(s.ctx, room.Code, "alice")
	s.Require().NoError(err)
	s.True(rejoined)
	s.Equal(p1, got)

	// No mutation: second slot stays empty
	updated, _ := s.controller.GetRoom(s.ctx, room.Code)
	s.Nil(updated.Player2)
}

func (s *ControllerSuite) TestRejoinWorksWhenRoomIsFull() {
	s.random.QueueString("WBN7QX")
	room, _, _ := s.controller.CreateRoom(s.ctx, "Alice")
	p2, _, _ := s.controller.JoinRoom(s.ctx, room.Code, "Bella")

	got, rejoined, err := s.controller.JoinRoom(s.ctx, room.Code, "BELLA")
	s.Require().NoError(err)
	s.True(rejoined)
	s.Equal(p2, got)
}

func (s *ControllerSuite) TestThirdNameIsRejectedWithoutMutation() {
	s.random.QueueString("WBN7QX")
	room, p1, _ := s.controller.CreateRoom(s.ctx, "Alice")
	p2, _, _ := s.controller.JoinRoom(s.ctx, room.Code, "Bella")

	_, _, err := s.controller.JoinRoom(s.ctx, room.Code, "Mallory")
	s.ErrorIs(err, model.ErrRoomFull)

	got, _ := s.controller.GetRoom(s.ctx, room.Code)
	s.Equal(p1, got.Player1.ID)
	s.Equal(p2, got.Player2.ID)
}

func (s *ControllerSuite) TestSimultaneousJoinsFillExactlyOneSlot() {
	type joinResult struct {
		id  model.PlayerID
		err error
	}

	for i := 0; i < 50; i++ {
		code := model.RoomCode(fmt.Sprintf("RM%04d", i))
		s.random.QueueString(string(code))
		_, p1, err := s.controller.CreateRoom(s.ctx, "Alice")
		s.Require().NoError(err)

		results := make(chan joinResult, 2)
		var wg sync.WaitGroup
		wg.Add(2)
		for _, name := range []string{"Bella", "Mallory"} {
			go func(name string) {
				defer wg.Done()
				id, _, err := s.controller.JoinRoom(s.ctx, code, name)
				results <- joinResult{id, err}
			}(name)
		}
		wg.Wait()
		close(results)

		var winners []model.PlayerID
		var losses int
		for r := range results {
			if r.err == nil {
				winners = append(winners, r.id)
			} else {
				s.ErrorIs(r.err, model.ErrRoomFull)
				losses++
			}
		}
		s.Require().Len(winners, 1, "iteration %d: exactly one join may take the second slot", i)
		s.Equal(1, losses, "iteration %d", i)

		room, err := s.controller.GetRoom(s.ctx, code)
		s.Require().NoError(err)
		s.Equal(p1, room.Player1.ID, "iteration %d", i)
		s.Require().NotNil(room.Player2, "iteration %d", i)
		s.Equal(winners[0], room.Player2.ID, "iteration %d", i)
	}
}

func (s *ControllerSuite) TestGetRoomReapsExpiredRoom() {
	s.random.QueueString("WBN7QX")
	room, _, _ := s.controller.CreateRoom(s.ctx, "Alice")

	s.clock.Advance(model.RoomLifetime + time.Minute)

	_, err := s.controller.GetRoom(s.ctx, room.Code)
	s.ErrorIs(err, model.ErrRoomNotFound)

	// Reaped from storage, not just hidden
	exists, err := s.storage.RoomExists(s.ctx, room.Code)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *ControllerSuite) TestJoinRoomRejectsExpiredRoom() {
	s.random.QueueString("WBN7QX")
	room, _, _ := s.controller.CreateRoom(s.ctx, "Alice")

	s.clock.Advance(model.RoomLifetime + time.Minute)

	_, _, err := s.controller.JoinRoom(s.ctx, room.Code, "Bella")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *ControllerSuite) TestJoinRoomRejectsBadName() {
	s.random.QueueString("WBN7QX")
	room, _, _ := s.controller.CreateRoom(s.ctx, "Alice")

	_, _, err := s.controller.JoinRoom(s.ctx, room.Code, "B")
	s.ErrorIs(err, model.ErrInvalidName)
}

// GetRoom tests

func (s *ControllerSuite) TestGetRoomNotFound() {
	_, err := s.controller.GetRoom(s.ctx, "ZZZZZZ")
	s.ErrorIs(err, model.ErrRoomNotFound)
}
