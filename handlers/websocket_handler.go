package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/matchdaybr/campeonato-system/brackets"
	"github.com/matchdaybr/campeonato-system/metrics"
	"github.com/matchdaybr/campeonato-system/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin checking is delegated to the CORS layer of the deployment;
	// the service itself accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebSocketHandler struct {
	hub            *brackets.Hub
	refreshService services.RefreshService
}

func NewWebSocketHandler(hub *brackets.Hub, rs services.RefreshService) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, refreshService: rs}
}

// ServeWs upgrades GET /ws/competitions/{competitionID} into a live view
// subscription. Subscribing marks the competition as followed so the
// refresh scheduler starts polling it.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	competitionID := chi.URLParam(r, "competitionID")
	if competitionID == "" {
		http.Error(w, "Missing competitionID", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed",
			slog.String("competition_id", competitionID), slog.Any("error", err))
		return
	}

	client := brackets.NewClient(h.hub, conn, services.RoomForCompetition(competitionID))
	h.hub.Register <- client
	h.refreshService.Follow(competitionID)

	metrics.WSClientConnected()
	go func() {
		client.WritePump()
		metrics.WSClientDisconnected()
	}()
	go client.ReadPump()
}
