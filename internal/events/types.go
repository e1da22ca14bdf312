package events

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
)

const (
	InteractionTopic = "interaction_events"
	ReconcilerGroup  = "interaction_reconciler"
)

// InteractionEvent is the JSON shape carried on the channel.
type InteractionEvent struct {
	EventID    int64    `json:"eventId"`
	UserID     int64    `json:"userId" validate:"gt=0"`
	TargetID   string   `json:"targetId" validate:"required,max=64"`
	Kind       string   `json:"kind" validate:"required"`
	Action     string   `json:"action" validate:"required"`
	Value      *float64 `json:"value"`
	OccurredAt int64    `json:"occurredAt"`
}

var validate = validator.New()

func NewInteractionEvent(evt domain.InteractionEvent) InteractionEvent {
	return InteractionEvent{
		EventID:    evt.ID,
		UserID:     evt.UserID,
		TargetID:   evt.TargetID,
		Kind:       string(evt.Kind),
		Action:     evt.Action.String(),
		Value:      evt.Value,
		OccurredAt: evt.OccurredAt.UnixMilli(),
	}
}

func Encode(evt domain.InteractionEvent) ([]byte, error) {
	return json.Marshal(NewInteractionEvent(evt))
}

// Decode rejects malformed payloads, unknown kinds and actions, and ratings
// that carry no score or one outside the allowed range.
func Decode(data []byte) (domain.InteractionEvent, error) {
	var wire InteractionEvent
	if err := json.Unmarshal(data, &wire); err != nil {
		return domain.InteractionEvent{}, errors.Wrap(domain.ErrBadParamInput, err.Error())
	}
	if err := validate.Struct(wire); err != nil {
		return domain.InteractionEvent{}, errors.Wrap(domain.ErrBadParamInput, err.Error())
	}
	kind, err := domain.ParseKind(wire.Kind)
	if err != nil {
		return domain.InteractionEvent{}, errors.Wrapf(err, "kind %q", wire.Kind)
	}
	action, err := domain.ParseAction(wire.Action)
	if err != nil {
		return domain.InteractionEvent{}, errors.Wrapf(err, "action %q", wire.Action)
	}
	if kind == domain.KindRatePost && action == domain.ActionAdd {
		if wire.Value == nil {
			return domain.InteractionEvent{}, errors.Wrap(domain.ErrBadParamInput, "rating without score")
		}
		if *wire.Value < domain.MinScore || *wire.Value > domain.MaxScore {
			return domain.InteractionEvent{}, errors.Wrapf(domain.ErrBadParamInput, "score %v out of range", *wire.Value)
		}
	}
	return domain.InteractionEvent{
		ID:         wire.EventID,
		UserID:     wire.UserID,
		TargetID:   wire.TargetID,
		Kind:       kind,
		Action:     action,
		Value:      wire.Value,
		OccurredAt: time.UnixMilli(wire.OccurredAt),
	}, nil
}
