package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/brewhr/brewhr-backend-go/internal/handler/http/response"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/cron"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/jwt"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/sse"
	espressosvc "github.com/brewhr/brewhr-backend-go/internal/service/espresso"
)

type SSEHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type sseHandlerImpl struct {
	hub        *sse.Hub
	jwtService jwt.Service
}

func NewSSEHandler(hub *sse.Hub, jwtService jwt.Service) SSEHandler {
	return &sseHandlerImpl{
		hub:        hub,
		jwtService: jwtService,
	}
}

// Stream serves the dashboard event stream. EventSource cannot set an
// Authorization header, so the short-lived token travels as a query
// parameter.
func (h *sseHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		response.Unauthorized(w, "Missing token")
		return
	}
	if err := h.jwtService.ValidateSSEToken(token); err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	attendanceCh, cancelAttendance := h.hub.Subscribe(cron.TopicAttendance)
	defer cancelAttendance()
	leaderboardCh, cancelLeaderboard := h.hub.Subscribe(espressosvc.TopicLeaderboard)
	defer cancelLeaderboard()

	fmt.Fprint(w, "event: connected\ndata: {}\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-attendanceCh:
			writeEvent(w, flusher, event)
		case event := <-leaderboardCh:
			writeEvent(w, flusher, event)
		}
	}
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, event sse.Event) {
	data, err := json.Marshal(event.Data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
	flusher.Flush()
}
