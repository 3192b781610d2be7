package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"dinnerpoll/clock"
	"dinnerpoll/middleware"
	"dinnerpoll/models"
	"dinnerpoll/poll"
	"dinnerpoll/report"
	"dinnerpoll/store"
)

// SubmissionHandler serves the public surface: poll status, the gated
// submit, self-service reset and the roster listing.
type SubmissionHandler struct {
	store  *store.Store
	engine *poll.Engine
	clk    clock.Clock
}

func NewSubmissionHandler(s *store.Store, e *poll.Engine, clk clock.Clock) *SubmissionHandler {
	return &SubmissionHandler{store: s, engine: e, clk: clk}
}

// Status handles GET /api/status
// Everything a client needs to render the countdown and today's lists,
// computed from a single clock reading.
func (h *SubmissionHandler) Status(w http.ResponseWriter, r *http.Request) {
	now := h.clk.Now()
	today := clock.Day(now)

	accepting, set, err := h.engine.IsAccepting(now)
	if err != nil {
		slog.Error("failed to read settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	stats, err := h.store.StatsFor(today)
	if err != nil {
		slog.Error("failed to query stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	submitted := []string{}
	pending := []string{}
	for _, row := range stats {
		entry := fmt.Sprintf("%d: %s", row.EmpID, row.Name)
		if row.Submitted {
			submitted = append(submitted, entry)
		} else {
			pending = append(pending, entry)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		Day:              today,
		PollEndTime:      set.Cutoff,
		Accepting:        accepting,
		RemainingSeconds: int(poll.Remaining(now, set.Cutoff).Seconds()),
		Counts:           report.Summarize(today, stats),
		Submitted:        submitted,
		Pending:          pending,
	})
}

// Submit handles POST /api/submissions
// The gate and the day are derived from one now() reading, so a request
// can't be judged open by one check and closed by the next.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.EmpID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "emp_id is required")
		return
	}

	now := h.clk.Now()
	today := clock.Day(now)

	accepting, set, err := h.engine.IsAccepting(now)
	if err != nil {
		slog.Error("failed to read settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !accepting {
		middleware.ErrorResponse(w, http.StatusForbidden,
			fmt.Sprintf("Poll is not active. It ended at %s IST.", set.Cutoff))
		return
	}

	participant, found, err := h.store.FindByEmpID(req.EmpID)
	if err != nil {
		slog.Error("failed to query participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Employee ID not found")
		return
	}

	already, err := h.store.GetStatus(req.EmpID, today)
	if err != nil {
		slog.Error("failed to query submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if already {
		middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
			Message: participant.Name + " has already submitted.",
		})
		return
	}

	if err := h.store.Submit(req.EmpID, today); err != nil {
		slog.Error("failed to record submission", "error", err, "emp_id", req.EmpID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record submission")
		return
	}

	slog.Info("submission recorded", "emp_id", req.EmpID, "day", today)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: fmt.Sprintf("Thanks %s, your response has been recorded.", participant.Name),
	})
}

// ResetMine handles DELETE /api/submissions/{empID}
// Self-service correction: removes today's record so the participant can
// submit again. Also reachable by the admin.
func (h *SubmissionHandler) ResetMine(w http.ResponseWriter, r *http.Request) {
	empID, err := strconv.Atoi(r.PathValue("empID"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Employee ID must be a number")
		return
	}

	today := clock.Day(h.clk.Now())

	reset, err := h.store.ResetOne(empID, today)
	if err != nil {
		slog.Error("failed to reset submission", "error", err, "emp_id", empID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !reset {
		middleware.ErrorResponse(w, http.StatusNotFound, "No submission found for today")
		return
	}

	slog.Info("submission reset", "emp_id", empID, "day", today)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Submission reset, you can submit again.",
	})
}

// ListParticipants handles GET /api/participants
func (h *SubmissionHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := h.store.ListParticipants()
	if err != nil {
		slog.Error("failed to query participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, participants)
}
