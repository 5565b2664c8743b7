package httpserver

import (
	"net/http"
	"time"

	"github.com/yurykissin/RecrutTrack/internal/transport/httpserver/handler"
	appmw "github.com/yurykissin/RecrutTrack/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(handlers *handler.Handlers, sessions *appmw.SessionStore) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(appmw.NewCORS([]string{"http://localhost:5173"}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/auth/register", handlers.Register)
		r.Post("/auth/login", handlers.Login)
		r.Post("/auth/logout", handlers.Logout)
		r.Group(func(r chi.Router) {
			r.Use(sessions.RequireSession)
			r.Get("/auth/me", handlers.CurrentUser)
		})

		r.Get("/positions", handlers.ListPositions)
		r.Get("/positions/{id}", handlers.GetPosition)
		r.Post("/positions", handlers.CreatePosition)
		r.Put("/positions/{id}", handlers.UpdatePosition)
		r.Delete("/positions/{id}", handlers.DeletePosition)

		r.Get("/candidates", handlers.ListCandidates)
		r.Get("/candidates/{id}", handlers.GetCandidate)
		r.Post("/candidates", handlers.CreateCandidate)
		r.Put("/candidates/{id}", handlers.UpdateCandidate)
		r.Delete("/candidates/{id}", handlers.DeleteCandidate)

		r.Get("/referrals", handlers.ListReferrals)
		r.Get("/referrals/{id}", handlers.GetReferral)
		r.Post("/referrals", handlers.CreateReferral)
		r.Put("/referrals/{id}", handlers.UpdateReferral)
		r.Delete("/referrals/{id}", handlers.DeleteReferral)

		r.Get("/activities", handlers.ListActivities)

		r.Get("/dashboard/stats", handlers.DashboardStats)
	})

	return r
}
