package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

type contextKey int

const sessionUserIDKey contextKey = iota

type session struct {
	userID    int
	expiresAt time.Time
}

// SessionStore keeps opaque session tokens in process memory, the same role
// the original deployment's cookie-session middleware played. Tokens are
// random uuids; expired entries are dropped lazily on lookup.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]session
	cookie   string
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(cookieName string, ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]session),
		cookie:   cookieName,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue creates a session for the user and sets the cookie.
func (s *SessionStore) Issue(w http.ResponseWriter, userID int) {
	token := uuid.NewString()
	expiresAt := s.now().Add(s.ttl)

	s.mu.Lock()
	s.sessions[token] = session{userID: userID, expiresAt: expiresAt}
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear drops the session named by the request cookie and expires the cookie.
func (s *SessionStore) Clear(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(s.cookie); err == nil {
		s.mu.Lock()
		delete(s.sessions, cookie.Value)
		s.mu.Unlock()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// UserID resolves the request's session cookie to a user id.
func (s *SessionStore) UserID(r *http.Request) (int, bool) {
	cookie, err := r.Cookie(s.cookie)
	if err != nil {
		return 0, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[cookie.Value]
	if !ok {
		return 0, false
	}
	if !sess.expiresAt.After(s.now()) {
		delete(s.sessions, cookie.Value)
		return 0, false
	}
	return sess.userID, true
}

// RequireSession rejects requests without a live session.
func (s *SessionStore) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.UserID(r)
		if !ok {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
			return
		}

		ctx := context.WithValue(r.Context(), sessionUserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(sessionUserIDKey).(int)
	return userID, ok
}
