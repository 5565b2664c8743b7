package handler

import (
	"errors"
	"net/http"
	"time"

	userdomain "github.com/yurykissin/RecrutTrack/internal/domain/user"
	"github.com/yurykissin/RecrutTrack/internal/transport/httpserver/middleware"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Provider  string     `json:"provider"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toUserResponse(usr userdomain.User) userResponse {
	return userResponse{
		ID:        usr.ID,
		Name:      usr.Name,
		Email:     usr.Email,
		Provider:  usr.Provider,
		Role:      usr.Role,
		LastLogin: usr.LastLogin,
		CreatedAt: usr.CreatedAt,
	}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	usr, err := h.Users.Register(r.Context(), userdomain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, userdomain.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "email_taken", "email is already registered")
			return
		}
		h.log.BusinessError("auth.register: register failed", err)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	h.sessions.Issue(w, usr.ID)
	writeJSON(w, http.StatusCreated, toUserResponse(*usr))
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	usr, err := h.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userdomain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
			return
		}
		h.log.InternalError("auth.login: authenticate failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	h.sessions.Issue(w, usr.ID)
	writeJSON(w, http.StatusOK, toUserResponse(*usr))
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w, r)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "no active session")
		return
	}

	usr, err := h.Users.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			// The session outlived the account.
			h.sessions.Clear(w, r)
			writeError(w, http.StatusUnauthorized, "unauthorized", "no active session")
			return
		}
		h.log.InternalError("auth.me: lookup failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*usr))
}
