package sweeper

import (
	"context"
)

// Sweeper is a long-running background loop that performs periodic work,
// such as re-verifying holder roles on a schedule
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs the sweep loop. It blocks until the context is canceled
	// or Stop is called.
	Start(ctx context.Context) error

	// Stop requests a graceful shutdown and waits for the loop to exit,
	// bounded by the context
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
