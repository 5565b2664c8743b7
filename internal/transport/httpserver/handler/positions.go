package handler

import (
	"errors"
	"net/http"
	"time"

	positiondomain "github.com/yurykissin/RecrutTrack/internal/domain/position"
)

type createPositionRequest struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	SalaryMin   int        `json:"salaryMin"`
	SalaryMax   int        `json:"salaryMax"`
	Status      string     `json:"status"`
	DateAdded   *time.Time `json:"dateAdded"`
}

type updatePositionRequest struct {
	Title       *string    `json:"title"`
	Company     *string    `json:"company"`
	Location    *string    `json:"location"`
	Description *string    `json:"description"`
	SalaryMin   *int       `json:"salaryMin"`
	SalaryMax   *int       `json:"salaryMax"`
	Status      *string    `json:"status"`
	DateAdded   *time.Time `json:"dateAdded"`
}

type positionResponse struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	SalaryMin   int       `json:"salaryMin"`
	SalaryMax   int       `json:"salaryMax"`
	Status      string    `json:"status"`
	DateAdded   time.Time `json:"dateAdded"`
}

func toPositionResponse(pos positiondomain.Position) positionResponse {
	return positionResponse{
		ID:          pos.ID,
		Title:       pos.Title,
		Company:     pos.Company,
		Location:    pos.Location,
		Description: pos.Description,
		SalaryMin:   pos.SalaryMin,
		SalaryMax:   pos.SalaryMax,
		Status:      pos.Status,
		DateAdded:   pos.DateAdded,
	}
}

func (h *Handlers) ListPositions(w http.ResponseWriter, r *http.Request) {
	items, err := h.Positions.ListPositions(r.Context())
	if err != nil {
		h.log.InternalError("positions.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]positionResponse, 0, len(items))
	for _, pos := range items {
		response = append(response, toPositionResponse(pos))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetPosition(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid position id")
		return
	}

	pos, err := h.Positions.GetPosition(r.Context(), id)
	if err != nil {
		if errors.Is(err, positiondomain.ErrPositionNotFound) {
			writeError(w, http.StatusNotFound, "position_not_found", "position not found")
			return
		}
		h.log.InternalError("positions.get: get failed", err, "position_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toPositionResponse(*pos))
}

func (h *Handlers) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req createPositionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	pos, err := h.Positions.CreatePosition(r.Context(), positiondomain.CreatePositionInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		Status:      req.Status,
		DateAdded:   req.DateAdded,
	})
	if err != nil {
		h.log.BusinessError("positions.create: create failed", err)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toPositionResponse(*pos))
}

func (h *Handlers) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid position id")
		return
	}

	var req updatePositionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	pos, err := h.Positions.UpdatePosition(r.Context(), id, positiondomain.UpdatePositionInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		Status:      req.Status,
		DateAdded:   req.DateAdded,
	})
	if err != nil {
		if errors.Is(err, positiondomain.ErrPositionNotFound) {
			writeError(w, http.StatusNotFound, "position_not_found", "position not found")
			return
		}
		h.log.InternalError("positions.update: update failed", err, "position_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toPositionResponse(*pos))
}

func (h *Handlers) DeletePosition(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid position id")
		return
	}

	if err := h.Positions.DeletePosition(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, positiondomain.ErrPositionNotFound):
			writeError(w, http.StatusNotFound, "position_not_found", "position not found")
		case errors.Is(err, positiondomain.ErrPositionHasReferrals):
			h.log.BusinessError("positions.delete: blocked by referrals", err, "position_id", id)
			writeError(w, http.StatusConflict, "position_has_referrals", "cannot delete position with referrals")
		default:
			h.log.InternalError("positions.delete: delete failed", err, "position_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
