package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health check (no auth required)
		r.Get("/health", s.handleHealth)

		// Auth endpoints (no auth required)
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		// WebSocket upgrade. Browsers cannot set an Authorization header
		// on WebSocket connections, so auth is a single-use ticket in the
		// query string, validated in the handler.
		r.Get("/ws", s.handleWebSocket)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			// WS ticket requires authentication - user must be logged in to request a ticket
			r.Post("/auth/ws-ticket", s.handleWSTicket)

			// Own account
			r.Route("/users/me", func(r chi.Router) {
				r.Get("/", s.handleMe)
				r.Put("/", s.handleUpdateProfile)
				r.Post("/change-password", s.handleChangePassword)
			})

			// Own todos
			r.Route("/todos", func(r chi.Router) {
				r.Get("/", s.handleListTodos)
				r.Post("/", s.handleCreateTodo)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.handleGetTodo)
					r.Put("/", s.handleUpdateTodo)
					r.Delete("/", s.handleDeleteTodo)
				})
			})

			// Admin surface
			r.Route("/admin", func(r chi.Router) {
				r.Use(s.requireAdminMiddleware)

				r.Get("/users", s.handleAdminListUsers)
				r.Delete("/users/{id}", s.handleAdminDeleteUser)
				r.Get("/todos", s.handleAdminListTodos)
				r.Delete("/todos/{id}", s.handleAdminDeleteTodo)
			})
		})
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
