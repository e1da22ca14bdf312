package domain

import (
	"context"
	"time"
)

// DeadLetter is an event the reconciler gave up on, kept for inspection and replay.
type DeadLetter struct {
	ID         int64
	EventID    int64
	TargetID   string
	Payload    []byte
	Reason     string
	Attempts   int
	CreatedAt  time.Time
	ReplayedAt *time.Time

	// SupersededAt is set when a later action of the same user made the event obsolete
	SupersededAt *time.Time
}

type DeadLetterRepository interface {
	Store(ctx context.Context, dl *DeadLetter) error
	// FetchPending returns dead letters that were neither replayed nor superseded, oldest first.
	FetchPending(ctx context.Context, limit int) ([]DeadLetter, error)
	MarkReplayed(ctx context.Context, id int64) error
	MarkSuperseded(ctx context.Context, id int64) error
}

// Publisher re-sends a raw, already encoded event payload.
type Publisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}
