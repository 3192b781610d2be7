package sweeper

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize/english"

	"dinnerpoll/clock"
	"dinnerpoll/store"
)

// Sweeper periodically deletes submission records older than the current
// IST day. The cadence is deployment policy; the sweep itself is
// idempotent, so overlapping or repeated runs are harmless.
type Sweeper struct {
	store *store.Store
	clk   clock.Clock
}

func New(s *store.Store, clk clock.Clock) *Sweeper {
	return &Sweeper{store: s, clk: clk}
}

// Sweep purges every record dated strictly before today and returns the
// number removed.
func (s *Sweeper) Sweep(today string) (int64, error) {
	return s.store.PurgeBefore(today)
}

// Run sweeps once immediately, then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context, every time.Duration) {
	s.sweepNow()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.sweepNow()
		}
	}
}

func (s *Sweeper) sweepNow() {
	today := clock.Day(s.clk.Now())
	purged, err := s.Sweep(today)
	if err != nil {
		// A failed sweep is retried on the next tick.
		slog.Error("retention sweep failed", "error", err, "before", today)
		return
	}
	slog.Info("retention sweep completed",
		"before", today,
		"purged", english.Plural(int(purged), "stale record", ""),
	)
}
