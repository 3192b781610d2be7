package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dinnerpoll/auth"
	"dinnerpoll/models"
	"dinnerpoll/testutil"
)

func TestRequireAdmin(t *testing.T) {
	secret := testutil.GetTestConfig().JWTSecret

	valid, err := auth.IssueToken(secret, time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	expired, err := auth.IssueToken(secret, time.Now().Add(-2*time.Hour), time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	wrongSecret, err := auth.IssueToken("some-other-secret", time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		expectCode int
	}{
		{"no header", "", 401},
		{"not bearer", "Basic abc123", 401},
		{"empty token", "Bearer ", 401},
		{"garbage token", "Bearer not-a-jwt", 401},
		{"expired token", "Bearer " + expired, 401},
		{"wrong secret", "Bearer " + wrongSecret, 401},
		{"valid token", "Bearer " + valid, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := RequireAdmin(secret, func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/api/admin/stats", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler(w, req)

			if w.Code != tt.expectCode {
				t.Errorf("Status = %d, want %d", w.Code, tt.expectCode)
			}
			if called != (tt.expectCode == 200) {
				t.Errorf("Handler called = %v with status %d", called, tt.expectCode)
			}
		})
	}
}

func TestWithLoggingPassesThrough(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest("GET", "/api/status", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusTeapot)
	}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, 201, models.MessageResponse{Message: "created"})

	if w.Code != 201 {
		t.Errorf("Status = %d, want 201", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %s, want application/json", ct)
	}

	var resp models.MessageResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "created" {
		t.Errorf("Message = %q, want created", resp.Message)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, 404, "Employee ID not found")

	if w.Code != 404 {
		t.Errorf("Status = %d, want 404", w.Code)
	}

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "Not Found" {
		t.Errorf("Error = %q, want Not Found", resp.Error)
	}
	if resp.Message != "Employee ID not found" {
		t.Errorf("Message = %q", resp.Message)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := testutil.MakeRequest("POST", "/api/submissions", models.SubmitRequest{EmpID: 1001}, nil)

	var parsed models.SubmitRequest
	if err := ParseJSONBody(req, &parsed); err != nil {
		t.Fatalf("ParseJSONBody failed: %v", err)
	}
	if parsed.EmpID != 1001 {
		t.Errorf("EmpID = %d, want 1001", parsed.EmpID)
	}
}

func TestCORS(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/status", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Allow-Origin = %s", got)
	}
	if w.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Error("Expected Allow-Headers set")
	}
}

func TestCORSPreflight(t *testing.T) {
	nextCalled := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	req := httptest.NewRequest("OPTIONS", "/api/submissions", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Errorf("Status = %d, want 200", w.Code)
	}
	if nextCalled {
		t.Error("Preflight should short-circuit before the handler")
	}
}
