package handler

import (
	"errors"
	"net/http"
	"time"

	referraldomain "github.com/yurykissin/RecrutTrack/internal/domain/referral"
)

type createReferralRequest struct {
	CandidateID  int        `json:"candidateId"`
	PositionID   int        `json:"positionId"`
	ReferralDate *time.Time `json:"referralDate"`
	Status       string     `json:"status"`
	Notes        *string    `json:"notes"`
	FeeEarned    *float64   `json:"feeEarned"`
	Mode         string     `json:"mode"`
	FeeType      string     `json:"feeType"`
	FeeMonths    *int       `json:"feeMonths"`
}

type updateReferralRequest struct {
	CandidateID  *int                   `json:"candidateId"`
	PositionID   *int                   `json:"positionId"`
	ReferralDate *time.Time             `json:"referralDate"`
	Status       *string                `json:"status"`
	Notes        optionalNullableString `json:"notes"`
	FeeEarned    optionalNullableFloat  `json:"feeEarned"`
	Mode         *string                `json:"mode"`
	FeeType      *string                `json:"feeType"`
	FeeMonths    optionalNullableInt    `json:"feeMonths"`
}

type referralResponse struct {
	ID           int       `json:"id"`
	CandidateID  int       `json:"candidateId"`
	PositionID   int       `json:"positionId"`
	ReferralDate time.Time `json:"referralDate"`
	Status       string    `json:"status"`
	Notes        *string   `json:"notes"`
	FeeEarned    *float64  `json:"feeEarned"`
	Mode         string    `json:"mode"`
	FeeType      string    `json:"feeType"`
	FeeMonths    *int      `json:"feeMonths"`
}

type referralDetailsResponse struct {
	referralResponse
	Candidate candidateResponse `json:"candidate"`
	Position  positionResponse  `json:"position"`
}

func toReferralResponse(ref referraldomain.Referral) referralResponse {
	return referralResponse{
		ID:           ref.ID,
		CandidateID:  ref.CandidateID,
		PositionID:   ref.PositionID,
		ReferralDate: ref.ReferralDate,
		Status:       ref.Status,
		Notes:        ref.Notes,
		FeeEarned:    ref.FeeEarned,
		Mode:         ref.Mode,
		FeeType:      ref.FeeType,
		FeeMonths:    ref.FeeMonths,
	}
}

func toReferralDetailsResponse(ref referraldomain.ReferralWithDetails) referralDetailsResponse {
	return referralDetailsResponse{
		referralResponse: toReferralResponse(ref.Referral),
		Candidate:        toCandidateResponse(ref.Candidate),
		Position:         toPositionResponse(ref.Position),
	}
}

func (h *Handlers) ListReferrals(w http.ResponseWriter, r *http.Request) {
	items, err := h.Referrals.ListReferrals(r.Context())
	if err != nil {
		h.log.InternalError("referrals.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]referralDetailsResponse, 0, len(items))
	for _, ref := range items {
		response = append(response, toReferralDetailsResponse(ref))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetReferral(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid referral id")
		return
	}

	ref, err := h.Referrals.GetReferral(r.Context(), id)
	if err != nil {
		if errors.Is(err, referraldomain.ErrReferralNotFound) {
			writeError(w, http.StatusNotFound, "referral_not_found", "referral not found")
			return
		}
		h.log.InternalError("referrals.get: get failed", err, "referral_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toReferralDetailsResponse(*ref))
}

func (h *Handlers) CreateReferral(w http.ResponseWriter, r *http.Request) {
	var req createReferralRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	ref, err := h.Referrals.CreateReferral(r.Context(), referraldomain.CreateReferralInput{
		CandidateID:  req.CandidateID,
		PositionID:   req.PositionID,
		ReferralDate: req.ReferralDate,
		Status:       req.Status,
		Notes:        req.Notes,
		FeeEarned:    req.FeeEarned,
		Mode:         req.Mode,
		FeeType:      req.FeeType,
		FeeMonths:    req.FeeMonths,
	})
	if err != nil {
		h.log.BusinessError("referrals.create: create failed", err)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toReferralResponse(*ref))
}

func (h *Handlers) UpdateReferral(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid referral id")
		return
	}

	var req updateReferralRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	ref, err := h.Referrals.UpdateReferral(r.Context(), id, referraldomain.UpdateReferralInput{
		CandidateID:  req.CandidateID,
		PositionID:   req.PositionID,
		ReferralDate: req.ReferralDate,
		Status:       req.Status,
		Notes: referraldomain.OptionalNullableString{
			Set:   req.Notes.Set,
			Value: req.Notes.Value,
		},
		FeeEarned: referraldomain.OptionalNullableFloat{
			Set:   req.FeeEarned.Set,
			Value: req.FeeEarned.Value,
		},
		Mode:    req.Mode,
		FeeType: req.FeeType,
		FeeMonths: referraldomain.OptionalNullableInt{
			Set:   req.FeeMonths.Set,
			Value: req.FeeMonths.Value,
		},
	})
	if err != nil {
		if errors.Is(err, referraldomain.ErrReferralNotFound) {
			writeError(w, http.StatusNotFound, "referral_not_found", "referral not found")
			return
		}
		h.log.InternalError("referrals.update: update failed", err, "referral_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toReferralResponse(*ref))
}

func (h *Handlers) DeleteReferral(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid referral id")
		return
	}

	if err := h.Referrals.DeleteReferral(r.Context(), id); err != nil {
		if errors.Is(err, referraldomain.ErrReferralNotFound) {
			writeError(w, http.StatusNotFound, "referral_not_found", "referral not found")
			return
		}
		h.log.InternalError("referrals.delete: delete failed", err, "referral_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
