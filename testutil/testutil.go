package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"dinnerpoll/config"
	"dinnerpoll/db"
)

// Each test database gets its own shared-cache name so parallel tests
// never see each other's data.
var dbSeq atomic.Int64

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema and the seeded settings row (password "admin123", cutoff 18:30,
// not manually ended).
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps the in-memory database alive and
	// serializes writers, which sqlite requires anyway.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.SeedSettings(conn); err != nil {
		t.Fatalf("Failed to seed settings: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() config.Config {
	return config.Config{
		Port:         8643,
		DatabaseType: "sqlite",
		JWTSecret:    "test-jwt-secret",
		TokenTTL:     time.Hour,
		SweepEvery:   time.Hour,
	}
}

// AddTestParticipant inserts a roster entry directly.
func AddTestParticipant(t *testing.T, conn *sql.DB, empID int, name string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO participant (emp_id, name)
		VALUES ($1, $2)
	`, empID, name)
	if err != nil {
		t.Fatalf("Failed to create test participant: %v", err)
	}
}

// AddTestSubmission inserts a submitted record for (participant, day).
func AddTestSubmission(t *testing.T, conn *sql.DB, empID int, day string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO submission (emp_id, day, submitted)
		VALUES ($1, $2, TRUE)
	`, empID, day)
	if err != nil {
		t.Fatalf("Failed to create test submission: %v", err)
	}
}

// SetTestCutoff overwrites the stored cutoff.
func SetTestCutoff(t *testing.T, conn *sql.DB, cutoff string) {
	t.Helper()

	if _, err := conn.Exec(`UPDATE settings SET poll_end_time = $1 WHERE id = 1`, cutoff); err != nil {
		t.Fatalf("Failed to set test cutoff: %v", err)
	}
}

// SetTestManuallyEnded overwrites the manual-end flag.
func SetTestManuallyEnded(t *testing.T, conn *sql.DB, ended bool) {
	t.Helper()

	if _, err := conn.Exec(`UPDATE settings SET poll_manually_ended = $1 WHERE id = 1`, ended); err != nil {
		t.Fatalf("Failed to set test manual end flag: %v", err)
	}
}

// CountSubmissions returns the number of ledger rows for (participant, day).
func CountSubmissions(t *testing.T, conn *sql.DB, empID int, day string) int {
	t.Helper()

	var n int
	err := conn.QueryRow(`
		SELECT COUNT(*) FROM submission WHERE emp_id = $1 AND day = $2
	`, empID, day).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count submissions: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
