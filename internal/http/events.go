package http

import (
	"net/http"
	"time"
)

func (h *Handler) handleEventsList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "events_list"

	events, err := h.Events.List(r.Context())
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, listEventsResponse{
		Success:     true,
		Count:       len(events),
		Data:        events,
		LastFetched: time.Now().UTC().Format(time.RFC3339),
	})
}
