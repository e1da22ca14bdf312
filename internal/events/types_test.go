package events

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
		want    domain.InteractionEvent
		wantErr error
	}{
		{
			name:    "like add",
			payload: `{"eventId":9,"userId":7,"targetId":"p1","kind":"LIKE_POST","action":"ADD","value":null,"occurredAt":1700000000000}`,
			want: domain.InteractionEvent{
				ID: 9, UserID: 7, TargetID: "p1", Kind: domain.KindLikePost, Action: domain.ActionAdd,
				OccurredAt: time.UnixMilli(1700000000000),
			},
		},
		{
			name:    "lower case action",
			payload: `{"userId":7,"targetId":"c1","kind":"LIKE_COMMENT","action":"remove"}`,
			want: domain.InteractionEvent{
				UserID: 7, TargetID: "c1", Kind: domain.KindLikeComment, Action: domain.ActionRemove,
				OccurredAt: time.UnixMilli(0),
			},
		},
		{
			name:    "unknown kind",
			payload: `{"userId":7,"targetId":"p1","kind":"SHARE_POST","action":"ADD"}`,
			wantErr: domain.ErrUnknownKind,
		},
		{
			name:    "unknown action",
			payload: `{"userId":7,"targetId":"p1","kind":"LIKE_POST","action":"TOGGLE"}`,
			wantErr: domain.ErrUnknownAction,
		},
		{
			name:    "missing target",
			payload: `{"userId":7,"kind":"LIKE_POST","action":"ADD"}`,
			wantErr: domain.ErrBadParamInput,
		},
		{
			name:    "rating without score",
			payload: `{"userId":7,"targetId":"p1","kind":"RATE_POST","action":"ADD"}`,
			wantErr: domain.ErrBadParamInput,
		},
		{
			name:    "rating out of range",
			payload: `{"userId":7,"targetId":"p1","kind":"RATE_POST","action":"ADD","value":7}`,
			wantErr: domain.ErrBadParamInput,
		},
		{
			name:    "not json",
			payload: `{"userId":`,
			wantErr: domain.ErrBadParamInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode([]byte(tc.payload))
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.want.ID, got.ID)
			assert.Equal(t, tc.want.UserID, got.UserID)
			assert.Equal(t, tc.want.TargetID, got.TargetID)
			assert.Equal(t, tc.want.Kind, got.Kind)
			assert.Equal(t, tc.want.Action, got.Action)
			assert.True(t, tc.want.OccurredAt.Equal(got.OccurredAt))
		})
	}
}

func TestEncode_RatingCarriesScore(t *testing.T) {
	score := 4.5
	data, err := Encode(domain.InteractionEvent{
		ID: 1, UserID: 3, TargetID: "p1", Kind: domain.KindRatePost, Action: domain.ActionAdd,
		Value: &score, OccurredAt: time.UnixMilli(1700000000000),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"eventId":1,"userId":3,"targetId":"p1","kind":"RATE_POST","action":"ADD","value":4.5,"occurredAt":1700000000000}`, string(data))

	evt, err := Decode(data)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, evt.Score(), 1e-9)
}

func TestInteractionProducer_Produce(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, InteractionTopic, 1))
	consumer, err := q.Consumer(InteractionTopic, ReconcilerGroup)
	require.NoError(t, err)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	producer, err := NewInteractionProducer(q, InteractionTopic, node)
	require.NoError(t, err)

	err = producer.Produce(ctx, domain.InteractionEvent{
		UserID: 7, TargetID: "p1", Kind: domain.KindLikePost, Action: domain.ActionAdd,
	})
	require.NoError(t, err)

	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p1", string(msg.Key))

	evt, err := Decode(msg.Value)
	require.NoError(t, err)
	assert.NotZero(t, evt.ID)
	assert.False(t, evt.OccurredAt.IsZero())
	assert.Equal(t, domain.ActionAdd, evt.Action)
}
