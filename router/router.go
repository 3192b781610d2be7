package router

import (
	"net/http"

	"dinnerpoll/clock"
	"dinnerpoll/config"
	"dinnerpoll/handlers"
	"dinnerpoll/middleware"
	"dinnerpoll/poll"
	"dinnerpoll/report"
	"dinnerpoll/store"
)

func NewRouter(s *store.Store, clk clock.Clock, cfg config.Config) *http.ServeMux {
	mux := http.NewServeMux()

	engine := poll.NewEngine(s)
	reporter := report.New(s)

	// Initialize handlers
	submissionHandler := handlers.NewSubmissionHandler(s, engine, clk)
	adminHandler := handlers.NewAdminHandler(s, engine, clk, cfg)
	rosterHandler := handlers.NewRosterHandler(s)
	statsHandler := handlers.NewStatsHandler(s, reporter, clk)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(cfg.JWTSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public poll surface
	mux.HandleFunc("GET /api/status", middleware.WithLogging(submissionHandler.Status))
	mux.HandleFunc("POST /api/submissions", middleware.WithLogging(submissionHandler.Submit))
	mux.HandleFunc("DELETE /api/submissions/{empID}", middleware.WithLogging(submissionHandler.ResetMine))
	mux.HandleFunc("GET /api/participants", middleware.WithLogging(submissionHandler.ListParticipants))

	// Admin session
	mux.HandleFunc("POST /api/admin/login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("PUT /api/admin/password", admin(adminHandler.ChangePassword))

	// Poll lifecycle controls
	mux.HandleFunc("POST /api/admin/poll/end", admin(adminHandler.EndPoll))
	mux.HandleFunc("POST /api/admin/poll/reset", admin(adminHandler.ResetSubmissions))
	mux.HandleFunc("POST /api/admin/poll/reactivate", admin(adminHandler.Reactivate))
	mux.HandleFunc("POST /api/admin/poll/extend", admin(adminHandler.Extend))
	mux.HandleFunc("POST /api/admin/poll/reset-time", admin(adminHandler.ResetTime))

	// Roster management
	mux.HandleFunc("POST /api/participants", admin(rosterHandler.Add))
	mux.HandleFunc("POST /api/participants/bulk", admin(rosterHandler.BulkAdd))
	mux.HandleFunc("DELETE /api/participants/{empID}", admin(rosterHandler.Remove))

	// Reporting
	mux.HandleFunc("GET /api/admin/stats", admin(statsHandler.Stats))
	mux.HandleFunc("GET /api/admin/stats/history", admin(statsHandler.History))
	mux.HandleFunc("GET /api/admin/participants/{empID}/history", admin(statsHandler.ParticipantHistory))
	mux.HandleFunc("GET /api/admin/export", admin(statsHandler.Export))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("dinnerpoll API v1"))
	})

	return mux
}
