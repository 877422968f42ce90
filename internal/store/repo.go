package store

import (
	"context"
	"time"
)

// StateRepo persists the encoded app state as a single durable record.
type StateRepo interface {
	// LoadState returns the saved payload, or nil if none exists.
	LoadState(ctx context.Context) ([]byte, error)

	// SaveState replaces the saved payload.
	SaveState(ctx context.Context, payload []byte) error

	// ClearState removes the saved payload.
	ClearState(ctx context.Context) error
}

// Attempt is one finished quiz session.
type Attempt struct {
	ID         string
	Score      int
	Total      int
	FinishedAt time.Time
}

// AttemptStats aggregates the attempt log.
type AttemptStats struct {
	Count     int
	BestScore int
}

// AttemptRepo appends to and reads the quiz attempt log.
type AttemptRepo interface {
	// Append records a finished attempt.
	Append(ctx context.Context, a Attempt) error

	// Recent returns attempts newest first. limit 0 means unlimited.
	Recent(ctx context.Context, limit int) ([]Attempt, error)

	// Stats returns the attempt count and best score.
	Stats(ctx context.Context) (AttemptStats, error)
}
