package session

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper periodically removes expired entries from a MemoryLedger.
// Purely an optimization: IsLive is self-healing, so a stopped sweeper only
// costs memory, never correctness.
type Sweeper struct {
	ledger   *MemoryLedger
	interval time.Duration
	logger   *slog.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewSweeper creates a sweeper for the given ledger.
func NewSweeper(ledger *MemoryLedger, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		ledger:   ledger,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the sweep loop in a background goroutine.
func (s *Sweeper) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := s.ledger.Sweep(); removed > 0 {
					s.logger.Debug("swept expired session entries",
						slog.Int("removed", removed))
				}
			}
		}
	}()
}

// Stop terminates the sweep loop and waits for it to exit.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}
