package poll

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dinnerpoll/clock"
	"dinnerpoll/db"
	"dinnerpoll/store"
)

const minutesPerDay = 24 * 60

// Engine implements the poll lifecycle: whether submissions are being
// accepted right now, and the admin transitions (end, reset, reactivate,
// extend, reset cutoff, change credential). It owns the settings
// singleton; nothing else writes it.
type Engine struct {
	store *store.Store
}

func NewEngine(s *store.Store) *Engine {
	return &Engine{store: s}
}

// IsAccepting reports whether the poll accepts submissions at the given
// instant: before the stored cutoff and not manually ended. The settings
// read is returned so a caller can gate and render from one consistent
// snapshot.
func (e *Engine) IsAccepting(now time.Time) (bool, store.Settings, error) {
	set, err := e.store.GetSettings()
	if err != nil {
		return false, store.Settings{}, err
	}
	// Zero-padded HH:MM strings compare chronologically.
	accepting := clock.HM(now) < set.Cutoff && !set.ManuallyEnded
	return accepting, set, nil
}

// Remaining is the time left until the day's cutoff, zero once passed.
func Remaining(now time.Time, cutoff string) time.Duration {
	mins, err := parseCutoff(cutoff)
	if err != nil {
		return 0
	}
	end := clock.At(clock.Day(now), mins/60, mins%60)
	if d := end.Sub(now); d > 0 {
		return d
	}
	return 0
}

// EndPoll force-closes the day: purges its submissions and raises the
// manual-end flag in one transaction. Idempotent; the poll stays closed
// until Reactivate regardless of the clock. Returns the purged count.
func (e *Engine) EndPoll(day string) (int64, error) {
	return e.store.EndDay(day)
}

// ResetSubmissions clears the day's records without touching the
// manual-end flag, restarting the day's poll.
func (e *Engine) ResetSubmissions(day string) (int64, error) {
	return e.store.PurgeDay(day)
}

// Reactivate clears the manual-end flag. Purged records stay gone; the
// poll is open again only while the cutoff is still ahead.
func (e *Engine) Reactivate() error {
	return e.store.SetManuallyEnded(false)
}

// Extend pushes the cutoff by the given number of minutes and returns the
// new HH:MM value. Wall-clock addition modulo 24h: extending past
// midnight wraps, an accepted simplification since polls are same-day.
func (e *Engine) Extend(minutes int) (string, error) {
	set, err := e.store.GetSettings()
	if err != nil {
		return "", err
	}
	mins, err := parseCutoff(set.Cutoff)
	if err != nil {
		return "", err
	}

	mins = ((mins+minutes)%minutesPerDay + minutesPerDay) % minutesPerDay
	cutoff := fmt.Sprintf("%02d:%02d", mins/60, mins%60)

	if err := e.store.SetCutoff(cutoff); err != nil {
		return "", err
	}
	return cutoff, nil
}

// ResetCutoff restores the default 18:30 cutoff.
func (e *Engine) ResetCutoff() error {
	return e.store.SetCutoff(db.DefaultCutoff)
}

// ChangeCredential replaces the admin credential unconditionally. The
// caller is responsible for requiring a confirmed matching pair first.
func (e *Engine) ChangeCredential(secret string) error {
	return e.store.SetPassword(secret)
}

func parseCutoff(cutoff string) (int, error) {
	hStr, mStr, found := strings.Cut(cutoff, ":")
	if !found {
		return 0, fmt.Errorf("malformed cutoff %q", cutoff)
	}
	h, err := strconv.Atoi(hStr)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("malformed cutoff %q", cutoff)
	}
	m, err := strconv.Atoi(mStr)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("malformed cutoff %q", cutoff)
	}
	return h*60 + m, nil
}
