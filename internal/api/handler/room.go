package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/petrichorlab/eightdays/internal/api/apierr"
	"github.com/petrichorlab/eightdays/internal/api/request"
	"github.com/petrichorlab/eightdays/internal/api/response"
	"github.com/petrichorlab/eightdays/internal/model"
	"github.com/petrichorlab/eightdays/internal/services/room"
	"github.com/petrichorlab/eightdays/internal/sse"
)

// RoomHandler handles room-related endpoints
type RoomHandler struct {
	roomController room.ControllerInterface
	hubManager     *sse.HubManager
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomController room.ControllerInterface, hubManager *sse.HubManager) *RoomHandler {
	return &RoomHandler{
		roomController: roomController,
		hubManager:     hubManager,
	}
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	created, playerID, err := h.roomController.CreateRoom(r.Context(), req.Name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreateRoomResponse{
		Room:     response.RoomFromModel(created),
		PlayerID: string(playerID),
	})
}

// Get handles GET /api/v1/rooms/{code}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := model.RoomCode(mux.Vars(r)["code"])

	found, err := h.roomController.GetRoom(r.Context(), code)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(found))
}

// Join handles POST /api/v1/rooms/{code}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	code := model.RoomCode(mux.Vars(r)["code"])

	var req request.JoinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	playerID, rejoined, err := h.roomController.JoinRoom(r.Context(), code, req.Name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	joined, err := h.roomController.GetRoom(r.Context(), code)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.JoinRoomResponse{
		Room:     response.RoomFromModel(joined),
		PlayerID: string(playerID),
		Rejoined: rejoined,
	})
}

// Events handles GET /api/v1/rooms/{code}/events
// Streams room events over SSE until the client disconnects.
func (h *RoomHandler) Events(w http.ResponseWriter, r *http.Request) {
	code := model.RoomCode(mux.Vars(r)["code"])
	playerID := model.PlayerID(r.URL.Query().Get("player_id"))

	found, err := h.roomController.GetRoom(r.Context(), code)
	if err != nil {
		if errors.Is(err, model.ErrRoomNotFound) {
			// Room is gone (or expired and reaped); drop any hub
			// still holding listeners for it.
			h.hubManager.CloseHub(code)
		}
		apierr.WriteError(w, err)
		return
	}
	if playerID != "" && !roomHasPlayer(found, playerID) {
		apierr.WriteError(w, model.ErrPlayerNotFound)
		return
	}

	hub := h.hubManager.GetOrCreateHub(code)
	sse.ServeSSE(w, r, hub, playerID)
}

func roomHasPlayer(r *model.Room, playerID model.PlayerID) bool {
	for _, p := range []*model.PlayerRef{r.Player1, r.Player2} {
		if p != nil && p.ID == playerID {
			return true
		}
	}
	return false
}
