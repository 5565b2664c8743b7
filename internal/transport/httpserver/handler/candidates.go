package handler

import (
	"errors"
	"net/http"

	candidatedomain "github.com/yurykissin/RecrutTrack/internal/domain/candidate"
)

type createCandidateRequest struct {
	FullName          string   `json:"fullName"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	CurrentRole       string   `json:"currentRole"`
	Skills            string   `json:"skills"`
	Experience        int      `json:"experience"`
	SalaryExpectation *float64 `json:"salaryExpectation"`
	Notes             *string  `json:"notes"`
	Availability      string   `json:"availability"`
	Status            string   `json:"status"`
}

type updateCandidateRequest struct {
	FullName          *string                `json:"fullName"`
	Email             *string                `json:"email"`
	Phone             *string                `json:"phone"`
	CurrentRole       *string                `json:"currentRole"`
	Skills            *string                `json:"skills"`
	Experience        *int                   `json:"experience"`
	SalaryExpectation optionalNullableFloat  `json:"salaryExpectation"`
	Notes             optionalNullableString `json:"notes"`
	Availability      *string                `json:"availability"`
	Status            *string                `json:"status"`
}

type candidateResponse struct {
	ID                int      `json:"id"`
	FullName          string   `json:"fullName"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	CurrentRole       string   `json:"currentRole"`
	Skills            string   `json:"skills"`
	Experience        int      `json:"experience"`
	SalaryExpectation *float64 `json:"salaryExpectation"`
	Notes             *string  `json:"notes"`
	Availability      string   `json:"availability"`
	Status            string   `json:"status"`
}

func toCandidateResponse(cand candidatedomain.Candidate) candidateResponse {
	return candidateResponse{
		ID:                cand.ID,
		FullName:          cand.FullName,
		Email:             cand.Email,
		Phone:             cand.Phone,
		CurrentRole:       cand.CurrentRole,
		Skills:            cand.Skills,
		Experience:        cand.Experience,
		SalaryExpectation: cand.SalaryExpectation,
		Notes:             cand.Notes,
		Availability:      cand.Availability,
		Status:            cand.Status,
	}
}

func (h *Handlers) ListCandidates(w http.ResponseWriter, r *http.Request) {
	items, err := h.Candidates.ListCandidates(r.Context())
	if err != nil {
		h.log.InternalError("candidates.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]candidateResponse, 0, len(items))
	for _, cand := range items {
		response = append(response, toCandidateResponse(cand))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid candidate id")
		return
	}

	cand, err := h.Candidates.GetCandidate(r.Context(), id)
	if err != nil {
		if errors.Is(err, candidatedomain.ErrCandidateNotFound) {
			writeError(w, http.StatusNotFound, "candidate_not_found", "candidate not found")
			return
		}
		h.log.InternalError("candidates.get: get failed", err, "candidate_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toCandidateResponse(*cand))
}

func (h *Handlers) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req createCandidateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	cand, err := h.Candidates.CreateCandidate(r.Context(), candidatedomain.CreateCandidateInput{
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		CurrentRole:       req.CurrentRole,
		Skills:            req.Skills,
		Experience:        req.Experience,
		SalaryExpectation: req.SalaryExpectation,
		Notes:             req.Notes,
		Availability:      req.Availability,
		Status:            req.Status,
	})
	if err != nil {
		h.log.BusinessError("candidates.create: create failed", err)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toCandidateResponse(*cand))
}

func (h *Handlers) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid candidate id")
		return
	}

	var req updateCandidateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	cand, err := h.Candidates.UpdateCandidate(r.Context(), id, candidatedomain.UpdateCandidateInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		CurrentRole: req.CurrentRole,
		Skills:      req.Skills,
		Experience:  req.Experience,
		SalaryExpectation: candidatedomain.OptionalNullableFloat{
			Set:   req.SalaryExpectation.Set,
			Value: req.SalaryExpectation.Value,
		},
		Notes: candidatedomain.OptionalNullableString{
			Set:   req.Notes.Set,
			Value: req.Notes.Value,
		},
		Availability: req.Availability,
		Status:       req.Status,
	})
	if err != nil {
		if errors.Is(err, candidatedomain.ErrCandidateNotFound) {
			writeError(w, http.StatusNotFound, "candidate_not_found", "candidate not found")
			return
		}
		h.log.InternalError("candidates.update: update failed", err, "candidate_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toCandidateResponse(*cand))
}

func (h *Handlers) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid candidate id")
		return
	}

	if err := h.Candidates.DeleteCandidate(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, candidatedomain.ErrCandidateNotFound):
			writeError(w, http.StatusNotFound, "candidate_not_found", "candidate not found")
		case errors.Is(err, candidatedomain.ErrCandidateHasReferrals):
			h.log.BusinessError("candidates.delete: blocked by referrals", err, "candidate_id", id)
			writeError(w, http.StatusConflict, "candidate_has_referrals", "cannot delete candidate with referrals")
		default:
			h.log.InternalError("candidates.delete: delete failed", err, "candidate_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
