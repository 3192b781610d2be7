package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"dinnerpoll/clock"
	"dinnerpoll/models"
	"dinnerpoll/poll"
	"dinnerpoll/store"
	"dinnerpoll/testutil"
)

func TestStatus(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)
	clk := &clock.Fixed{T: clock.At("2024-01-01", 12, 0)}
	handler := NewSubmissionHandler(s, poll.NewEngine(s), clk)

	testutil.AddTestParticipant(t, conn, 1001, "Alice")
	testutil.AddTestParticipant(t, conn, 1002, "Bob")
	testutil.AddTestSubmission(t, conn, 1001, "2024-01-01")

	req := testutil.MakeRequest("GET", "/api/status", nil, nil)
	w := httptest.NewRecorder()
	handler.Status(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.StatusResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Day != "2024-01-01" {
		t.Errorf("Day = %s, want 2024-01-01", resp.Day)
	}
	if resp.PollEndTime != "18:30" {
		t.Errorf("PollEndTime = %s, want 18:30", resp.PollEndTime)
	}
	if !resp.Accepting {
		t.Error("Expected accepting before cutoff")
	}
	// 12:00 to 18:30 is six and a half hours
	if resp.RemainingSeconds != 6*3600+1800 {
		t.Errorf("RemainingSeconds = %d, want %d", resp.RemainingSeconds, 6*3600+1800)
	}
	if resp.Counts.Total != 2 || resp.Counts.Submitted != 1 {
		t.Errorf("Unexpected counts %+v", resp.Counts)
	}
	if len(resp.Submitted) != 1 || resp.Submitted[0] != "1001: Alice" {
		t.Errorf("Submitted list = %v", resp.Submitted)
	}
	if len(resp.Pending) != 1 || resp.Pending[0] != "1002: Bob" {
		t.Errorf("Pending list = %v", resp.Pending)
	}
}

func TestStatusEmptyRoster(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)
	clk := &clock.Fixed{T: clock.At("2024-01-01", 12, 0)}
	handler := NewSubmissionHandler(s, poll.NewEngine(s), clk)

	req := testutil.MakeRequest("GET", "/api/status", nil, nil)
	w := httptest.NewRecorder()
	handler.Status(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.StatusResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Counts.Total != 0 || len(resp.Submitted) != 0 || len(resp.Pending) != 0 {
		t.Errorf("Expected empty status, got %+v", resp)
	}
}

func TestSubmit(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)
	clk := &clock.Fixed{T: clock.At("2024-01-01", 12, 0)}
	handler := NewSubmissionHandler(s, poll.NewEngine(s), clk)

	testutil.AddTestParticipant(t, conn, 1001, "Alice")

	req := testutil.MakeRequest("POST", "/api/submissions", models.SubmitRequest{EmpID: 1001}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	testutil.AssertStatus(t, w, 201)

	var resp models.MessageResponse
	testutil.AssertJSON(t, w, &resp)
	if !strings.Contains(resp.Message, "Alice") {
		t.Errorf("Expected message to name the participant, got %q", resp.Message)
	}

	submitted, err := s.GetStatus(1001, "2024-01-01")
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if !submitted {
		t.Error("Expected submission recorded")
	}
}

func TestSubmitAlreadySubmitted(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)
	clk := &clock.Fixed{T: clock.At("2024-01-01", 12, 0)}
	handler := NewSubmissionHandler(s, poll.NewEngine(s), clk)

	testutil.AddTestParticipant(t, conn, 1001, "Alice")
	testutil.AddTestSubmission(t, conn, 1001, "2024-01-01")

	req := testutil.MakeRequest("POST", "/api/submissions", models.SubmitRequest{EmpID: 1001}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.MessageResponse
	testutil.AssertJSON(t, w, &resp)
	if !strings.Contains(resp.Message, "already submitted") {
		t.Errorf("Expected already-submitted message, got %q", resp.Message)
	}
	if n := testutil.CountSubmissions(t, conn, 1001, "2024-01-01"); n != 1 {
		t.Errorf("Expected exactly 1 record, got %d", n)
	}
}

func TestSubmitGate(t *testing.T) {
	tests := []struct {
		name          string
		hour, min     int // time of day on 2024-01-01
		manuallyEnded bool
		expectClosed  bool
	}{
		{"before cutoff", 12, 0, false, false},
		{"one minute before cutoff", 18, 29, false, false},
		{"at cutoff", 18, 30, false, true},
		{"after cutoff", 22, 0, false, true},
		{"manually ended before cutoff", 12, 0, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := testutil.SetupTestDB(t)
			s := store.New(conn)
			testutil.SetTestManuallyEnded(t, conn, tt.manuallyEnded)

			clk := &clock.Fixed{T: clock.At("2024-01-01", tt.hour, tt.min)}
			handler := NewSubmissionHandler(s, poll.NewEngine(s), clk)

			testutil.AddTestParticipant(t, conn, 1001, "Alice")

			req := testutil.MakeRequest("POST", "/api/submissions", models.SubmitRequest{EmpID: 1001}, nil)
			w := httptest.NewRecorder()
			handler.Submit(w, req)

			if tt.expectClosed {
				testutil.AssertStatus(t, w, 403)
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if !strings.Contains(resp.Message, "18:30") {
					t.Errorf("Expected closed message to carry the cutoff, got %q", resp.Message)
				}
				// The refused write never reached the ledger
				if n := testutil.CountSubmissions(t, conn, 1001, "2024-01-01"); n != 0 {
					t.Errorf("Gate failure still wrote %d records", n)
				}
			} else {
				testutil.AssertStatus(t, w, 201)
			}
		})
	}
}

func TestSubmitUnknownEmpID(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)
	clk := &clock.Fixed{T: clock.At("2024-01-01", 12, 0)}
	handler := NewSubmissionHandler(s, poll.NewEngine(s), clk)

	req := testutil.MakeRequest("POST", "/api/submissions", models.SubmitRequest{EmpID: 4242}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	testutil.AssertStatus(t, w, 404)
}

func TestSubmitInvalidBody(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)
	clk := &clock.Fixed{T: clock.At("2024-01-01", 12, 0)}
	handler := NewSubmissionHandler(s, poll.NewEngine(s), clk)

	req := testutil.MakeRequest("POST", "/api/submissions", models.SubmitRequest{}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	testutil.AssertStatus(t, w, 400)
}

func TestResetMine(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)
	clk := &clock.Fixed{T: clock.At("2024-01-01", 12, 0)}
	handler := NewSubmissionHandler(s, poll.NewEngine(s), clk)

	testutil.AddTestParticipant(t, conn, 1001, "Alice")
	testutil.AddTestSubmission(t, conn, 1001, "2024-01-01")

	req := testutil.MakeRequest("DELETE", "/api/submissions/1001", nil, nil)
	req.SetPathValue("empID", "1001")
	w := httptest.NewRecorder()
	handler.ResetMine(w, req)

	testutil.AssertStatus(t, w, 200)

	if submitted, _ := s.GetStatus(1001, "2024-01-01"); submitted {
		t.Error("Expected submission cleared after reset")
	}

	// A second reset has nothing to delete
	req = testutil.MakeRequest("DELETE", "/api/submissions/1001", nil, nil)
	req.SetPathValue("empID", "1001")
	w = httptest.NewRecorder()
	handler.ResetMine(w, req)

	testutil.AssertStatus(t, w, 404)
}

func TestListParticipants(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)
	clk := &clock.Fixed{T: clock.At("2024-01-01", 12, 0)}
	handler := NewSubmissionHandler(s, poll.NewEngine(s), clk)

	testutil.AddTestParticipant(t, conn, 1002, "Bob")
	testutil.AddTestParticipant(t, conn, 1001, "Alice")

	req := testutil.MakeRequest("GET", "/api/participants", nil, nil)
	w := httptest.NewRecorder()
	handler.ListParticipants(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp []store.Participant
	testutil.AssertJSON(t, w, &resp)
	if len(resp) != 2 || resp[0].EmpID != 1001 || resp[1].EmpID != 1002 {
		t.Errorf("Unexpected roster %v", resp)
	}
}
