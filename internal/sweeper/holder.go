package sweeper

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/pixelpepes/holderbot/internal/adapter"
	"github.com/pixelpepes/holderbot/internal/logger"
	"github.com/pixelpepes/holderbot/internal/reconcile"
)

// HolderSweeperConfig holds configuration for the holder role sweeper
type HolderSweeperConfig struct {
	Interval time.Duration // Time to sleep between sweep cycles
}

// holderSweeper implements the Sweeper interface for periodic holder
// role verification
type holderSweeper struct {
	config    *HolderSweeperConfig
	engine    reconcile.Engine
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewHolderSweeper creates a new holder role sweeper
func NewHolderSweeper(config *HolderSweeperConfig, engine reconcile.Engine, clock adapter.Clock) Sweeper {
	return &holderSweeper{
		config:    config,
		engine:    engine,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *holderSweeper) Name() string {
	return "holder-sweeper"
}

// Start begins the sweeper's main loop: sweep all registered users, sleep
// for the configured interval, repeat until stopped
func (s *holderSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting holder sweeper",
		zap.Duration("interval", s.config.Interval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Holder sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Holder sweeper stop requested")
			return nil
		default:
			// A failed cycle is logged and retried next interval, the
			// loop itself never exits on sweep failure
			if err := s.runSweepCycle(ctx); err != nil {
				logger.ErrorCtx(ctx, fmt.Errorf("sweep cycle failed: %w", err))
			}
			if !s.sleep(ctx, s.config.Interval) {
				continue // Interrupted, loop to pick up the stop reason
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *holderSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping holder sweeper")

	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Holder sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Holder sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle runs a single verification sweep over all registered users
func (s *holderSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()
	logger.InfoCtx(ctx, "Starting sweep cycle")

	summary, err := s.engine.SweepAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to sweep registered users: %w", err)
	}

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("users", summary.Users),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Int("granted", summary.Granted),
		zap.Int("revoked", summary.Revoked),
		zap.Int("role_errors", summary.RoleErrors),
	)

	return nil
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns true if sleep completed normally.
func (s *holderSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
