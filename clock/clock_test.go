package clock

import (
	"testing"
	"time"
)

func TestDayAndHMArePinnedToIST(t *testing.T) {
	// 2024-01-01 20:00 UTC is already 2024-01-02 01:30 in IST
	utc := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)

	if got := Day(utc); got != "2024-01-02" {
		t.Errorf("Day = %s, want 2024-01-02", got)
	}
	if got := HM(utc); got != "01:30" {
		t.Errorf("HM = %s, want 01:30", got)
	}
}

func TestHMZeroPadded(t *testing.T) {
	at := At("2024-03-05", 9, 5)
	if got := HM(at); got != "09:05" {
		t.Errorf("HM = %s, want 09:05", got)
	}
	if got := Day(at); got != "2024-03-05" {
		t.Errorf("Day = %s, want 2024-03-05", got)
	}
}

func TestSystemClockUsesIST(t *testing.T) {
	now := System{}.Now()
	if name, offset := now.Zone(); name != "IST" || offset != 5*3600+30*60 {
		t.Errorf("System clock zone = %s (%d), want IST (+05:30)", name, offset)
	}
}

func TestFixedClock(t *testing.T) {
	f := &Fixed{T: At("2024-01-01", 12, 0)}
	if got := Day(f.Now()); got != "2024-01-01" {
		t.Errorf("Day = %s, want 2024-01-01", got)
	}

	f.Set(At("2024-01-02", 8, 30))
	if got := Day(f.Now()); got != "2024-01-02" {
		t.Errorf("Day after Set = %s, want 2024-01-02", got)
	}
	if got := HM(f.Now()); got != "08:30" {
		t.Errorf("HM after Set = %s, want 08:30", got)
	}
}

func TestDayStringOrderingIsChronological(t *testing.T) {
	earlier := At("2023-12-31", 23, 59)
	later := At("2024-01-01", 0, 0)
	if !(Day(earlier) < Day(later)) {
		t.Errorf("Expected %s < %s", Day(earlier), Day(later))
	}
}
