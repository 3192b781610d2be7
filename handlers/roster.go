package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"dinnerpoll/bulkparse"
	"dinnerpoll/middleware"
	"dinnerpoll/models"
	"dinnerpoll/store"
)

// RosterHandler serves the admin roster mutations.
type RosterHandler struct {
	store *store.Store
}

func NewRosterHandler(s *store.Store) *RosterHandler {
	return &RosterHandler{store: s}
}

// Add handles POST /api/participants
func (h *RosterHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddParticipantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.EmpID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "emp_id must be a positive number")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	added, err := h.store.AddParticipant(req.EmpID, req.Name)
	if err != nil {
		slog.Error("failed to add participant", "error", err, "emp_id", req.EmpID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add participant")
		return
	}
	if !added {
		middleware.ErrorResponse(w, http.StatusConflict, "Employee ID already exists")
		return
	}

	slog.Info("participant added", "emp_id", req.EmpID, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, store.Participant{EmpID: req.EmpID, Name: req.Name})
}

// BulkAdd handles POST /api/participants/bulk
// Parse errors and duplicate ids are collected per entry; valid entries
// are committed even when others fail.
func (h *RosterHandler) BulkAdd(w http.ResponseWriter, r *http.Request) {
	var req models.BulkAddRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	entries, parseErrs := bulkparse.Parse(req.Text)

	added, dupErrs, err := h.store.BulkAdd(entries)
	if err != nil {
		slog.Error("failed to bulk add participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add participants")
		return
	}

	errs := append(parseErrs, dupErrs...)

	slog.Info("bulk add completed", "added", len(added), "errors", len(errs))

	if added == nil {
		added = []store.Participant{}
	}
	if errs == nil {
		errs = []string{}
	}
	middleware.JSONResponse(w, http.StatusOK, models.BulkAddResponse{
		Added:  added,
		Errors: errs,
	})
}

// Remove handles DELETE /api/participants/{empID}
// Deletes the participant and all of their submission history.
func (h *RosterHandler) Remove(w http.ResponseWriter, r *http.Request) {
	empID, err := strconv.Atoi(r.PathValue("empID"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Employee ID must be a number")
		return
	}

	removed, err := h.store.RemoveParticipant(empID)
	if err != nil {
		slog.Error("failed to remove participant", "error", err, "emp_id", empID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove participant")
		return
	}
	if !removed {
		middleware.ErrorResponse(w, http.StatusNotFound, "Employee ID not found")
		return
	}

	slog.Info("participant removed", "emp_id", empID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Participant removed",
	})
}
