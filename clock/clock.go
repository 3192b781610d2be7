package clock

import "time"

// IST is the civil timezone every poll computation runs in. The poll's day
// boundary and cutoff must not depend on where the server happens to run.
var IST = time.FixedZone("IST", 5*3600+30*60)

// Clock supplies the current time. Handlers read it exactly once per
// request so a single operation can't straddle the cutoff.
type Clock interface {
	Now() time.Time
}

// System is the production clock, pinned to IST.
type System struct{}

func (System) Now() time.Time {
	return time.Now().In(IST)
}

// Fixed is a settable clock for tests.
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time {
	return f.T
}

// Set replaces the fake's current time.
func (f *Fixed) Set(t time.Time) {
	f.T = t
}

// At builds an IST instant from a day string and hour/minute, for tests
// and cutoff comparisons.
func At(day string, hour, min int) time.Time {
	d, _ := time.ParseInLocation("2006-01-02", day, IST)
	return d.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

// Day formats t as the canonical YYYY-MM-DD day string. Lexicographic
// order on these strings matches chronological order.
func Day(t time.Time) string {
	return t.In(IST).Format("2006-01-02")
}

// HM formats t's time of day as zero-padded 24h HH:MM.
func HM(t time.Time) string {
	return t.In(IST).Format("15:04")
}
