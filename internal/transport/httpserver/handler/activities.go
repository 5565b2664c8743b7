package handler

import (
	"net/http"
	"time"

	activitydomain "github.com/yurykissin/RecrutTrack/internal/domain/activity"
)

type activityResponse struct {
	ID          int       `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	RelatedID   *int      `json:"relatedId"`
	RelatedType *string   `json:"relatedType"`
}

func toActivityResponse(entry activitydomain.Activity) activityResponse {
	return activityResponse{
		ID:          entry.ID,
		Type:        entry.Type,
		Description: entry.Description,
		Timestamp:   entry.Timestamp,
		RelatedID:   entry.RelatedID,
		RelatedType: entry.RelatedType,
	}
}

func (h *Handlers) ListActivities(w http.ResponseWriter, r *http.Request) {
	// No limit parameter means the full trail.
	limit, err := parseIntParam(r.URL.Query().Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid limit")
		return
	}

	items, err := h.Activities.ListActivities(r.Context(), limit)
	if err != nil {
		h.log.InternalError("activities.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]activityResponse, 0, len(items))
	for _, entry := range items {
		response = append(response, toActivityResponse(entry))
	}
	writeJSON(w, http.StatusOK, response)
}
