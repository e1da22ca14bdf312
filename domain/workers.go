package domain

import (
	"context"
	"strings"
)

type Action int8

const (
	ActionAdd    Action = 1
	ActionRemove Action = -1
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "ADD"
	case ActionRemove:
		return "REMOVE"
	default:
		return "UNKNOWN"
	}
}

// Delta is the counter change a binary interaction applies.
func (a Action) Delta() int64 {
	return int64(a)
}

func ParseAction(s string) (Action, error) {
	switch strings.ToUpper(s) {
	case "ADD":
		return ActionAdd, nil
	case "REMOVE":
		return ActionRemove, nil
	default:
		return 0, ErrUnknownAction
	}
}

// Reconciler applies interaction events to the durable store.
type Reconciler interface {
	// Start consumes until ctx is done, then drains what was already dispatched.
	Start(ctx context.Context) error

	// Handle applies a single event. It is idempotent under redelivery.
	Handle(ctx context.Context, evt InteractionEvent) error
}
