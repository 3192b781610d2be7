package handlers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strconv"

	"dinnerpoll/clock"
	"dinnerpoll/middleware"
	"dinnerpoll/models"
	"dinnerpoll/report"
	"dinnerpoll/store"
)

const (
	defaultHistoryDays = 7
	maxHistoryDays     = 90
)

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// StatsHandler serves the admin reporting views: day stats, history and
// CSV export. All read-only.
type StatsHandler struct {
	store  *store.Store
	report *report.Reporter
	clk    clock.Clock
}

func NewStatsHandler(s *store.Store, rep *report.Reporter, clk clock.Clock) *StatsHandler {
	return &StatsHandler{store: s, report: rep, clk: clk}
}

// Stats handles GET /api/admin/stats?day=YYYY-MM-DD (default today)
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	day, ok := h.dayParam(w, r)
	if !ok {
		return
	}

	rows, err := h.store.StatsFor(day)
	if err != nil {
		slog.Error("failed to query stats", "error", err, "day", day)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
		Counts: report.Summarize(day, rows),
		Rows:   rows,
	})
}

// History handles GET /api/admin/stats/history?days=N
func (h *StatsHandler) History(w http.ResponseWriter, r *http.Request) {
	days, ok := h.daysParam(w, r)
	if !ok {
		return
	}

	today := clock.Day(h.clk.Now())
	history, err := h.report.History(today, days)
	if err != nil {
		slog.Error("failed to query history", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HistoryResponse{Days: history})
}

// ParticipantHistory handles GET /api/admin/participants/{empID}/history?days=N
func (h *StatsHandler) ParticipantHistory(w http.ResponseWriter, r *http.Request) {
	empID, err := strconv.Atoi(r.PathValue("empID"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Employee ID must be a number")
		return
	}
	days, ok := h.daysParam(w, r)
	if !ok {
		return
	}

	_, found, err := h.store.FindByEmpID(empID)
	if err != nil {
		slog.Error("failed to query participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Employee ID not found")
		return
	}

	today := clock.Day(h.clk.Now())
	history, err := h.report.ParticipantHistory(empID, today, days)
	if err != nil {
		slog.Error("failed to query participant history", "error", err, "emp_id", empID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ParticipantHistoryResponse{
		EmpID: empID,
		Days:  history,
	})
}

// Export handles GET /api/admin/export?day=YYYY-MM-DD (default today)
// Streams the day's full (emp_id, name, submitted) view as a CSV
// download.
func (h *StatsHandler) Export(w http.ResponseWriter, r *http.Request) {
	day, ok := h.dayParam(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="poll-`+day+`.csv"`)

	if err := h.report.WriteCSV(w, day); err != nil {
		// Headers may already be out; just log.
		slog.Error("failed to export csv", "error", err, "day", day)
	}
}

func (h *StatsHandler) dayParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	day := r.URL.Query().Get("day")
	if day == "" {
		return clock.Day(h.clk.Now()), true
	}
	if !dayPattern.MatchString(day) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "day must be YYYY-MM-DD")
		return "", false
	}
	return day, true
}

func (h *StatsHandler) daysParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	daysStr := r.URL.Query().Get("days")
	if daysStr == "" {
		return defaultHistoryDays, true
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil || days < 1 || days > maxHistoryDays {
		middleware.ErrorResponse(w, http.StatusBadRequest, "days must be between 1 and 90")
		return 0, false
	}
	return days, true
}
