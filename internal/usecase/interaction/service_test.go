package interaction

import (
	"context"
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
	"github.com/Guyuepp/Go-Social-Interaction/domain/mocks"
	"github.com/Guyuepp/Go-Social-Interaction/internal/metrics"
)

func newTestService(t *testing.T) (*Service, *mocks.MockDedupCache, *mocks.MockInteractionStore, *mocks.MockEventProducer) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockDedupCache(ctrl)
	store := mocks.NewMockInteractionStore(ctrl)
	producer := mocks.NewMockEventProducer(ctrl)
	return NewService(cache, store, producer), cache, store, producer
}

func randomUID(t *testing.T) int64 {
	ids, err := faker.RandomInt(1, 10000, 1)
	require.NoError(t, err)
	return int64(ids[0])
}

func TestService_Like(t *testing.T) {
	uid := randomUID(t)
	testCases := []struct {
		name        string
		mock        func(cache *mocks.MockDedupCache, store *mocks.MockInteractionStore, producer *mocks.MockEventProducer)
		wantChanged bool
		wantErr     error
	}{
		{
			name: "first like emits ADD",
			mock: func(cache *mocks.MockDedupCache, store *mocks.MockInteractionStore, producer *mocks.MockEventProducer) {
				cache.EXPECT().AddMember(gomock.Any(), domain.KindLikePost, "p1", uid).Return(true, nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, evt domain.InteractionEvent) error {
						assert.Equal(t, uid, evt.UserID)
						assert.Equal(t, "p1", evt.TargetID)
						assert.Equal(t, domain.KindLikePost, evt.Kind)
						assert.Equal(t, domain.ActionAdd, evt.Action)
						assert.Nil(t, evt.Value)
						return nil
					})
			},
			wantChanged: true,
		},
		{
			name: "repeated like is a silent no-op",
			mock: func(cache *mocks.MockDedupCache, store *mocks.MockInteractionStore, producer *mocks.MockEventProducer) {
				cache.EXPECT().AddMember(gomock.Any(), domain.KindLikePost, "p1", uid).Return(false, nil)
			},
		},
		{
			name: "cold key is warmed then retried",
			mock: func(cache *mocks.MockDedupCache, store *mocks.MockInteractionStore, producer *mocks.MockEventProducer) {
				records := []domain.InteractionRecord{{UserID: uid + 1, TargetID: "p1", Kind: domain.KindLikePost}}
				gomock.InOrder(
					cache.EXPECT().AddMember(gomock.Any(), domain.KindLikePost, "p1", uid).Return(false, domain.ErrCacheMiss),
					store.EXPECT().ListMembers(gomock.Any(), domain.KindLikePost, "p1").Return(records, nil),
					cache.EXPECT().Warm(gomock.Any(), domain.KindLikePost, "p1", records).Return(nil),
					cache.EXPECT().AddMember(gomock.Any(), domain.KindLikePost, "p1", uid).Return(true, nil),
				)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantChanged: true,
		},
		{
			name: "cache down",
			mock: func(cache *mocks.MockDedupCache, store *mocks.MockInteractionStore, producer *mocks.MockEventProducer) {
				cache.EXPECT().AddMember(gomock.Any(), domain.KindLikePost, "p1", uid).Return(false, errors.New("dial tcp: connection refused"))
			},
			wantErr: domain.ErrCacheUnavailable,
		},
		{
			name: "warm fails on store",
			mock: func(cache *mocks.MockDedupCache, store *mocks.MockInteractionStore, producer *mocks.MockEventProducer) {
				cache.EXPECT().AddMember(gomock.Any(), domain.KindLikePost, "p1", uid).Return(false, domain.ErrCacheMiss)
				store.EXPECT().ListMembers(gomock.Any(), domain.KindLikePost, "p1").Return(nil, errors.New("db down"))
			},
			wantErr: domain.ErrInternalServerError,
		},
		{
			name: "publish failure reverts the cache",
			mock: func(cache *mocks.MockDedupCache, store *mocks.MockInteractionStore, producer *mocks.MockEventProducer) {
				cache.EXPECT().AddMember(gomock.Any(), domain.KindLikePost, "p1", uid).Return(true, nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
				cache.EXPECT().RemoveMember(gomock.Any(), domain.KindLikePost, "p1", uid).Return(true, nil)
			},
			wantErr: domain.ErrEventPublish,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, cache, store, producer := newTestService(t)
			tc.mock(cache, store, producer)

			changed, err := svc.Like(context.Background(), uid, "p1")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantChanged, changed)
		})
	}
}

func TestService_Unlike(t *testing.T) {
	svc, cache, _, producer := newTestService(t)

	cache.EXPECT().RemoveMember(gomock.Any(), domain.KindLikePost, "p1", int64(3)).Return(true, nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, evt domain.InteractionEvent) error {
			assert.Equal(t, domain.ActionRemove, evt.Action)
			return nil
		})
	changed, err := svc.Unlike(context.Background(), 3, "p1")
	require.NoError(t, err)
	assert.True(t, changed)

	// not liked before: no event
	cache.EXPECT().RemoveMember(gomock.Any(), domain.KindLikePost, "p1", int64(3)).Return(false, nil)
	changed, err = svc.Unlike(context.Background(), 3, "p1")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestService_CollectAndCommentLikeUseTheirOwnNamespace(t *testing.T) {
	svc, cache, _, producer := newTestService(t)

	cache.EXPECT().AddMember(gomock.Any(), domain.KindCollectPost, "p1", int64(3)).Return(true, nil)
	cache.EXPECT().RemoveMember(gomock.Any(), domain.KindCollectPost, "p1", int64(3)).Return(true, nil)
	cache.EXPECT().AddMember(gomock.Any(), domain.KindLikeComment, "c1", int64(3)).Return(true, nil)
	cache.EXPECT().RemoveMember(gomock.Any(), domain.KindLikeComment, "c1", int64(3)).Return(false, nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	_, err := svc.Collect(context.Background(), 3, "p1")
	require.NoError(t, err)
	_, err = svc.Uncollect(context.Background(), 3, "p1")
	require.NoError(t, err)
	_, err = svc.LikeComment(context.Background(), 3, "c1")
	require.NoError(t, err)
	changed, err := svc.UnlikeComment(context.Background(), 3, "c1")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestService_Rate(t *testing.T) {
	testCases := []struct {
		name    string
		score   float64
		mock    func(cache *mocks.MockDedupCache, producer *mocks.MockEventProducer)
		wantErr error
	}{
		{
			name:  "valid score always emits",
			score: 4.5,
			mock: func(cache *mocks.MockDedupCache, producer *mocks.MockEventProducer) {
				cache.EXPECT().PutRating(gomock.Any(), "p1", int64(3), 4.5).Return(nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, evt domain.InteractionEvent) error {
						require.NotNil(t, evt.Value)
						assert.InDelta(t, 4.5, *evt.Value, 1e-9)
						assert.Equal(t, domain.ActionAdd, evt.Action)
						return nil
					})
			},
		},
		{
			name:  "bounds are inclusive",
			score: 0,
			mock: func(cache *mocks.MockDedupCache, producer *mocks.MockEventProducer) {
				cache.EXPECT().PutRating(gomock.Any(), "p1", int64(3), 0.0).Return(nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "above range has no side effects",
			score:   7.0,
			mock:    func(cache *mocks.MockDedupCache, producer *mocks.MockEventProducer) {},
			wantErr: domain.ErrBadParamInput,
		},
		{
			name:    "below range has no side effects",
			score:   -0.5,
			mock:    func(cache *mocks.MockDedupCache, producer *mocks.MockEventProducer) {},
			wantErr: domain.ErrBadParamInput,
		},
		{
			name:  "publish failure keeps the rating",
			score: 3,
			mock: func(cache *mocks.MockDedupCache, producer *mocks.MockEventProducer) {
				cache.EXPECT().PutRating(gomock.Any(), "p1", int64(3), 3.0).Return(nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			wantErr: domain.ErrEventPublish,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, cache, _, producer := newTestService(t)
			tc.mock(cache, producer)
			err := svc.Rate(context.Background(), 3, "p1", tc.score)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_InvalidIdentity(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Like(context.Background(), 0, "p1")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	_, err = svc.Collect(context.Background(), 3, "")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	err = svc.Rate(context.Background(), -1, "p1", 3)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestService_Status(t *testing.T) {
	svc, cache, store, _ := newTestService(t)

	cache.EXPECT().IsMember(gomock.Any(), domain.KindLikePost, "p1", int64(3)).Return(false, domain.ErrCacheMiss)
	store.EXPECT().ListMembers(gomock.Any(), domain.KindLikePost, "p1").
		Return([]domain.InteractionRecord{{UserID: 3, TargetID: "p1", Kind: domain.KindLikePost}}, nil)
	cache.EXPECT().Warm(gomock.Any(), domain.KindLikePost, "p1", gomock.Any()).Return(nil)
	cache.EXPECT().IsMember(gomock.Any(), domain.KindLikePost, "p1", int64(3)).Return(true, nil)

	liked, err := svc.Status(context.Background(), 3, domain.KindLikePost, "p1")
	require.NoError(t, err)
	assert.True(t, liked)

	cache.EXPECT().GetRating(gomock.Any(), "p1", int64(3)).Return(4.0, true, nil)
	rated, err := svc.Status(context.Background(), 3, domain.KindRatePost, "p1")
	require.NoError(t, err)
	assert.True(t, rated)

	_, err = svc.Status(context.Background(), 3, domain.Kind("SHARE_POST"), "p1")
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestService_MyRating(t *testing.T) {
	svc, cache, _, _ := newTestService(t)

	cache.EXPECT().GetRating(gomock.Any(), "p1", int64(3)).Return(0.0, false, nil)
	_, ok, err := svc.MyRating(context.Background(), 3, "p1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_Aggregates(t *testing.T) {
	svc, _, store, _ := newTestService(t)

	want := domain.Aggregates{TargetID: "p1", LikeCount: 2, RatingAverage: 3.5, RatingCount: 2}
	store.EXPECT().GetAggregates(gomock.Any(), domain.TargetPost, "p1").Return(want, nil)

	got, err := svc.Aggregates(context.Background(), domain.TargetPost, "p1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_TransitionMetricFollowsPublishOutcome(t *testing.T) {
	uid := randomUID(t)
	changed := metrics.GateTransitions.WithLabelValues(string(domain.KindCollectPost), domain.ActionAdd.String(), "true")
	unchanged := metrics.GateTransitions.WithLabelValues(string(domain.KindCollectPost), domain.ActionAdd.String(), "false")

	svc, cache, _, producer := newTestService(t)
	cache.EXPECT().AddMember(gomock.Any(), domain.KindCollectPost, "p1", uid).Return(true, nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	cache.EXPECT().RemoveMember(gomock.Any(), domain.KindCollectPost, "p1", uid).Return(true, nil)

	beforeChanged, beforeUnchanged := testutil.ToFloat64(changed), testutil.ToFloat64(unchanged)
	_, err := svc.Collect(context.Background(), uid, "p1")
	require.ErrorIs(t, err, domain.ErrEventPublish)
	assert.Equal(t, beforeChanged, testutil.ToFloat64(changed))
	assert.Equal(t, beforeUnchanged+1, testutil.ToFloat64(unchanged))

	cache.EXPECT().AddMember(gomock.Any(), domain.KindCollectPost, "p1", uid).Return(true, nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
	_, err = svc.Collect(context.Background(), uid, "p1")
	require.NoError(t, err)
	assert.Equal(t, beforeChanged+1, testutil.ToFloat64(changed))
}
