package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/universitio/hr-backend-go/internal/domain/user"
	"github.com/universitio/hr-backend-go/internal/pkg/jwt"
	"github.com/universitio/hr-backend-go/internal/pkg/sse"
)

type EventsHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type EventsHandlerImpl struct {
	jwtService jwt.Service
	hub        *sse.Hub
}

func NewEventsHandler(jwtService jwt.Service, hub *sse.Hub) EventsHandler {
	return &EventsHandlerImpl{
		jwtService: jwtService,
		hub:        hub,
	}
}

// Stream implements EventsHandler. Clients subscribe with a short-lived
// token in the query string because EventSource cannot set headers.
// Admin sessions additionally receive leave request change events.
func (h *EventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	userID, role, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	attendanceEvents, cleanupAttendance := h.hub.Subscribe(sse.TopicAttendance)
	defer cleanupAttendance()

	var leaveEvents chan sse.Event
	if role == user.RoleAdmin {
		var cleanupLeave func()
		leaveEvents, cleanupLeave = h.hub.Subscribe(sse.TopicLeaveRequests)
		defer cleanupLeave()
	}

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"user_id\":%q}\n\n", userID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-attendanceEvents:
			if !ok {
				return
			}
			writeEvent(w, flusher, event)

		case event, ok := <-leaveEvents:
			if !ok {
				return
			}
			writeEvent(w, flusher, event)

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, event sse.Event) {
	data, err := json.Marshal(event.Data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s:%s\ndata: %s\n\n", event.Topic, event.Event, data)
	flusher.Flush()
}
