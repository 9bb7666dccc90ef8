package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petrichorlab/eightdays/internal/api/apierr"
	"github.com/petrichorlab/eightdays/internal/api/request"
	"github.com/petrichorlab/eightdays/internal/api/response"
	"github.com/petrichorlab/eightdays/internal/model"
	"github.com/petrichorlab/eightdays/internal/services/day"
)

// DayHandler handles day submission and status endpoints
type DayHandler struct {
	dayController day.ControllerInterface
}

// NewDayHandler creates a new day handler
func NewDayHandler(dayController day.ControllerInterface) *DayHandler {
	return &DayHandler{dayController: dayController}
}

// Submit handles POST /api/v1/rooms/{code}/days/{day}/submit
func (h *DayHandler) Submit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := model.RoomCode(vars["code"])
	dayNum, err := strconv.Atoi(vars["day"])
	if err != nil {
		apierr.WriteError(w, model.ErrInvalidDay)
		return
	}

	var req request.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("player_id is required"))
		return
	}

	sub := model.Submission{
		Accepted: req.Accepted,
		Message:  req.Message,
		Name:     req.Name,
		Choice:   req.Choice,
		Payload:  req.Payload,
	}

	result, err := h.dayController.Submit(r.Context(), code, model.PlayerID(req.PlayerID), dayNum, sub)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmitResponseFromResult(result))
}

// Status handles GET /api/v1/rooms/{code}/days/{day}/status
func (h *DayHandler) Status(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := model.RoomCode(vars["code"])
	dayNum, err := strconv.Atoi(vars["day"])
	if err != nil {
		apierr.WriteError(w, model.ErrInvalidDay)
		return
	}

	playerID := r.URL.Query().Get("player_id")
	if playerID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("player_id query parameter is required"))
		return
	}

	status, err := h.dayController.GetStatus(r.Context(), code, model.PlayerID(playerID), dayNum)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatusResponseFromStatus(status))
}
