/*
server.go - HTTP router and middleware configuration

ROUTER: chi

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the frontend
  5. Session:    Bearer-token auth on everything except /api/auth/login

ROUTE GROUPS:
  /api/auth/*        Demo login (public)
  /api/employees/*   Employees, month stats, payslips
  /api/attendance/*  Clock in/out, monthly records
  /api/leaves/*      Apply and review
  /api/holidays/*    Calendar (creation is owner only)

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/emsdesk/hr-engine/auth"
	"github.com/emsdesk/hr-engine/hr"
)

// NewRouter creates a router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Login)

		// Everything below requires a session.
		r.Group(func(r chi.Router) {
			r.Use(h.Auth.Middleware)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.ListEmployees)
				r.Get("/{id}", h.GetEmployee)
				r.Get("/{id}/stats", h.GetStats)
				r.Get("/{id}/payslip", h.GetPayslip)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.ListAttendance)
				r.Post("/clock-in", h.ClockIn)
				r.Post("/clock-out", h.ClockOut)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.ListLeaves)
				r.Post("/", h.ApplyLeave)
				r.Post("/{id}/approve", h.ApproveLeave)
				r.Post("/{id}/reject", h.RejectLeave)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.ListHolidays)
				r.With(auth.RequireRole(hr.RoleOwner)).Post("/", h.AddHoliday)
			})
		})
	})

	return r
}
