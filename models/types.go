package models

import (
	"dinnerpoll/report"
	"dinnerpoll/store"
)

// Request types

type LoginRequest struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type AddParticipantRequest struct {
	EmpID int    `json:"emp_id"`
	Name  string `json:"name"`
}

// Bulk roster text, one "ID:Name" entry per line or comma-separated.
type BulkAddRequest struct {
	Text string `json:"text"`
}

type SubmitRequest struct {
	EmpID int `json:"emp_id"`
}

type ExtendRequest struct {
	Minutes int `json:"minutes"`
}

// Response types

type LoginResponse struct {
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type BulkAddResponse struct {
	Added  []store.Participant `json:"added"`
	Errors []string            `json:"errors"`
}

type ExtendResponse struct {
	PollEndTime string `json:"poll_end_time"`
}

type EndPollResponse struct {
	Purged int64 `json:"purged"`
}

// StatusResponse is the public poll status view: everything a client
// needs to render the countdown and the submitted/pending lists.
type StatusResponse struct {
	Day              string           `json:"day"`
	PollEndTime      string           `json:"poll_end_time"`
	Accepting        bool             `json:"accepting"`
	RemainingSeconds int              `json:"remaining_seconds"`
	Counts           report.DayCounts `json:"counts"`
	Submitted        []string         `json:"submitted"`
	Pending          []string         `json:"pending"`
}

type StatsResponse struct {
	Counts report.DayCounts  `json:"counts"`
	Rows   []store.StatusRow `json:"rows"`
}

type HistoryResponse struct {
	Days []report.DayCount `json:"days"`
}

type ParticipantHistoryResponse struct {
	EmpID int                `json:"emp_id"`
	Days  []report.DayStatus `json:"days"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
