package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/petrichorlab/eightdays/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.RoomTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSaveAndGetRoom() {
	room := model.NewRoom("WBN7QX", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	room.Player1 = &model.PlayerRef{ID: "p1", Name: "Alice", JoinedAt: room.CreatedAt}
	room.Day(2).Data = &model.DayData{Parties: [2]*model.Submission{
		{Message: "hello", Name: "Alice"},
		nil,
	}}

	err := s.storage.SaveRoom(s.ctx, room)
	s.Require().NoError(err)

	got, err := s.storage.GetRoom(s.ctx, "WBN7QX")
	s.Require().NoError(err)
	s.Equal(room.Code, got.Code)
	s.Equal("Alice", got.Player1.Name)
	s.Require().NotNil(got.Day(2).Data)
	s.Equal("hello", got.Day(2).Data.Parties[0].Message)
	s.Nil(got.Day(2).Data.Parties[1])
}

func (s *StorageSuite) TestGetRoomNotFound() {
	_, err := s.storage.GetRoom(s.ctx, "XXXXXX")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestRoomHasTTL() {
	room := model.NewRoom("WBN7QX", time.Now())
	_ = s.storage.SaveRoom(s.ctx, room)

	ttl := s.mini.TTL(roomKey("WBN7QX"))
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Hour)
}

func (s *StorageSuite) TestRoomExpires() {
	room := model.NewRoom("WBN7QX", time.Now())
	_ = s.storage.SaveRoom(s.ctx, room)

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetRoom(s.ctx, "WBN7QX")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestDeleteRoom() {
	room := model.NewRoom("WBN7QX", time.Now())
	_ = s.storage.SaveRoom(s.ctx, room)

	err := s.storage.DeleteRoom(s.ctx, "WBN7QX")
	s.Require().NoError(err)

	exists, err := s.storage.RoomExists(s.ctx, "WBN7QX")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *StorageSuite) TestRoomExists() {
	exists, err := s.storage.RoomExists(s.ctx, "WBN7QX")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveRoom(s.ctx, model.NewRoom("WBN7QX", time.Now()))

	exists, err = s.storage.RoomExists(s.ctx, "WBN7QX")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestCompletedDayRoundTrips() {
	now := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	room := model.NewRoom("WBN7QX", now)
	day := room.Day(1)
	day.Completed = true
	day.Reflection = "You both said yes."
	day.CompletedAt = &now

	_ = s.storage.SaveRoom(s.ctx, room)

	got, err := s.storage.GetRoom(s.ctx, "WBN7QX")
	s.Require().NoError(err)
	s.True(got.Day(1).Completed)
	s.Equal("You both said yes.", got.Day(1).Reflection)
	s.Require().NotNil(got.Day(1).CompletedAt)
	s.True(got.Day(1).CompletedAt.Equal(now))
}
