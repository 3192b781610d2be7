package handlers

import (
	"log/slog"
	"net/http"

	"dinnerpoll/auth"
	"dinnerpoll/clock"
	"dinnerpoll/config"
	"dinnerpoll/db"
	"dinnerpoll/middleware"
	"dinnerpoll/models"
	"dinnerpoll/poll"
	"dinnerpoll/store"
)

// AdminHandler serves login, password management and the poll lifecycle
// controls.
type AdminHandler struct {
	store  *store.Store
	engine *poll.Engine
	clk    clock.Clock
	cfg    config.Config
}

func NewAdminHandler(s *store.Store, e *poll.Engine, clk clock.Clock, cfg config.Config) *AdminHandler {
	return &AdminHandler{store: s, engine: e, clk: clk, cfg: cfg}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	set, err := h.store.GetSettings()
	if err != nil {
		slog.Error("failed to read settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(req.Password, set.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := auth.IssueToken(h.cfg.JWTSecret, h.clk.Now(), h.cfg.TokenTTL)
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue session token")
		return
	}

	slog.Info("admin logged in", "remote", r.RemoteAddr)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Token: token})
}

// ChangePassword handles PUT /api/admin/password
// The new/confirm equality check happens here, above the engine.
func (h *AdminHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.NewPassword == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please enter a new password")
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Passwords do not match")
		return
	}

	if err := h.engine.ChangeCredential(req.NewPassword); err != nil {
		slog.Error("failed to change password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to change password")
		return
	}

	slog.Info("admin password changed")

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Password updated successfully",
	})
}

// EndPoll handles POST /api/admin/poll/end
// Purges today's submissions and closes the poll until reactivation.
func (h *AdminHandler) EndPoll(w http.ResponseWriter, r *http.Request) {
	today := clock.Day(h.clk.Now())

	purged, err := h.engine.EndPoll(today)
	if err != nil {
		slog.Error("failed to end poll", "error", err, "day", today)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to end poll")
		return
	}

	slog.Info("poll ended", "day", today, "purged", purged)

	middleware.JSONResponse(w, http.StatusOK, models.EndPollResponse{Purged: purged})
}

// ResetSubmissions handles POST /api/admin/poll/reset
// Clears today's submissions but leaves the poll's open/closed state
// alone, restarting the day's poll.
func (h *AdminHandler) ResetSubmissions(w http.ResponseWriter, r *http.Request) {
	today := clock.Day(h.clk.Now())

	purged, err := h.engine.ResetSubmissions(today)
	if err != nil {
		slog.Error("failed to reset submissions", "error", err, "day", today)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset submissions")
		return
	}

	slog.Info("submissions reset", "day", today, "purged", purged)

	middleware.JSONResponse(w, http.StatusOK, models.EndPollResponse{Purged: purged})
}

// Reactivate handles POST /api/admin/poll/reactivate
func (h *AdminHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Reactivate(); err != nil {
		slog.Error("failed to reactivate poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reactivate poll")
		return
	}

	slog.Info("poll reactivated")

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Poll reactivated",
	})
}

// Extend handles POST /api/admin/poll/extend
func (h *AdminHandler) Extend(w http.ResponseWriter, r *http.Request) {
	var req models.ExtendRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Minutes <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "minutes must be positive")
		return
	}

	cutoff, err := h.engine.Extend(req.Minutes)
	if err != nil {
		slog.Error("failed to extend poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to extend poll")
		return
	}

	slog.Info("poll extended", "minutes", req.Minutes, "poll_end_time", cutoff)

	middleware.JSONResponse(w, http.StatusOK, models.ExtendResponse{PollEndTime: cutoff})
}

// ResetTime handles POST /api/admin/poll/reset-time
func (h *AdminHandler) ResetTime(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.ResetCutoff(); err != nil {
		slog.Error("failed to reset cutoff", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset poll time")
		return
	}

	slog.Info("cutoff reset", "poll_end_time", db.DefaultCutoff)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Poll time reset to " + db.DefaultCutoff,
	})
}
