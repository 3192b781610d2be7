package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"dinnerpoll/clock"
	"dinnerpoll/store"
)

// Reporter computes read-only derived views over the ledger. Every view
// is evaluated on demand against the store, mutates nothing, and returns
// zeros or empty slices for an empty roster or ledger.
type Reporter struct {
	store *store.Store
}

func New(s *store.Store) *Reporter {
	return &Reporter{store: s}
}

// DayCounts summarizes one day's completion.
type DayCounts struct {
	Day       string  `json:"day"`
	Total     int     `json:"total"`
	Submitted int     `json:"submitted"`
	Pending   int     `json:"pending"`
	Rate      float64 `json:"rate"` // percent, 0 for an empty roster
}

// CountsFor aggregates the day's status view into counts and a
// completion rate.
func (r *Reporter) CountsFor(day string) (DayCounts, error) {
	stats, err := r.store.StatsFor(day)
	if err != nil {
		return DayCounts{}, err
	}
	return Summarize(day, stats), nil
}

// Summarize reduces an already-fetched status view to counts, for
// callers that need both the rows and the totals from one read.
func Summarize(day string, rows []store.StatusRow) DayCounts {
	counts := DayCounts{Day: day, Total: len(rows)}
	for _, row := range rows {
		if row.Submitted {
			counts.Submitted++
		}
	}
	counts.Pending = counts.Total - counts.Submitted
	if counts.Total > 0 {
		counts.Rate = float64(counts.Submitted) / float64(counts.Total) * 100
	}
	return counts
}

// DayCount is one entry of a submissions-per-day history.
type DayCount struct {
	Day       string `json:"day"`
	Submitted int    `json:"submitted"`
}

// History returns submitted counts for the last n days ending at today,
// oldest first.
func (r *Reporter) History(today string, n int) ([]DayCount, error) {
	history := []DayCount{}
	for _, day := range lastDays(today, n) {
		count, err := r.store.CountForDay(day)
		if err != nil {
			return nil, err
		}
		history = append(history, DayCount{Day: day, Submitted: count})
	}
	return history, nil
}

// DayStatus is one entry of a single participant's history.
type DayStatus struct {
	Day       string `json:"day"`
	Submitted bool   `json:"submitted"`
}

// ParticipantHistory returns one participant's submitted flags over the
// last n days ending at today, oldest first. Unknown ids yield all-false
// rows rather than an error; callers check roster membership separately.
func (r *Reporter) ParticipantHistory(empID int, today string, n int) ([]DayStatus, error) {
	history := []DayStatus{}
	for _, day := range lastDays(today, n) {
		submitted, err := r.store.GetStatus(empID, day)
		if err != nil {
			return nil, err
		}
		history = append(history, DayStatus{Day: day, Submitted: submitted})
	}
	return history, nil
}

// WriteCSV streams the day's full (emp_id, name, submitted) view as CSV,
// ordered by emp_id.
func (r *Reporter) WriteCSV(w io.Writer, day string) error {
	stats, err := r.store.StatsFor(day)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"emp_id", "name", "submitted"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range stats {
		record := []string{strconv.Itoa(row.EmpID), row.Name, strconv.FormatBool(row.Submitted)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// lastDays lists the n day strings ending at today, oldest first.
func lastDays(today string, n int) []string {
	if n < 1 {
		n = 1
	}
	end := clock.At(today, 0, 0)
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, clock.Day(end.AddDate(0, 0, -i)))
	}
	return days
}
