package terminal

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"drafts/internal/domain"
	"drafts/internal/logging"
)

// Lister produces a fresh listing on every call
type Lister interface {
	Execute(ctx context.Context) (domain.Listing, error)
}

// Watcher clears the screen and reprints the listing on a fixed interval.
// It is used when stdout is not an interactive terminal.
type Watcher struct {
	lister   Lister
	out      *termenv.Output
	interval time.Duration
}

// NewWatcher creates a new Watcher writing to w
func NewWatcher(w io.Writer, lister Lister, interval time.Duration) *Watcher {
	return &Watcher{
		lister:   lister,
		out:      termenv.NewOutput(w),
		interval: interval,
	}
}

// Run refreshes until ctx is cancelled or a scan fails.
// Cancellation is a clean stop and returns nil.
func (w *Watcher) Run(ctx context.Context) error {
	if w.interval <= 0 {
		return fmt.Errorf("invalid interval: %s", w.interval)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for tick := 0; ; tick++ {
		listing, err := w.lister.Execute(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		if err := w.render(listing); err != nil {
			return err
		}
		logging.Debug("listing refreshed", zap.Int("tick", tick), zap.Int("count", len(listing)))

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *Watcher) render(listing domain.Listing) error {
	w.out.ClearScreen()
	_, err := listing.WriteTo(w.out)
	return err
}
