package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/petrichorlab/eightdays/internal/api/handler"
	"github.com/petrichorlab/eightdays/internal/api/middleware"
	"github.com/petrichorlab/eightdays/internal/services/day"
	"github.com/petrichorlab/eightdays/internal/services/room"
	"github.com/petrichorlab/eightdays/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	RoomController room.ControllerInterface
	DayController  day.ControllerInterface
	HubManager     *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	roomHandler := handler.NewRoomHandler(cfg.RoomController, cfg.HubManager)
	dayHandler := handler.NewDayHandler(cfg.DayController)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Room routes
	api.HandleFunc("/rooms", roomHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}", roomHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{code}/join", roomHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}/events", roomHandler.Events).Methods(http.MethodGet)

	// Day routes
	api.HandleFunc("/rooms/{code}/days/{day}/submit", dayHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}/days/{day}/status", dayHandler.Status).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
