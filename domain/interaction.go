package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=./interaction.go -destination=./mocks/interaction.mock.go -package=mocks

const (
	// MinScore and MaxScore bound a RATE_POST score
	MinScore = 0.0
	MaxScore = 5.0
)

// Kind is the interaction namespace a record or event belongs to.
type Kind string

const (
	KindLikePost    Kind = "LIKE_POST"
	KindCollectPost Kind = "COLLECT_POST"
	KindRatePost    Kind = "RATE_POST"
	KindLikeComment Kind = "LIKE_COMMENT"
)

// Kinds lists every supported kind.
var Kinds = []Kind{KindLikePost, KindCollectPost, KindRatePost, KindLikeComment}

// ParseKind returns ErrUnknownKind for anything outside Kinds.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", ErrUnknownKind
	}
	return k, nil
}

func (k Kind) Valid() bool {
	switch k {
	case KindLikePost, KindCollectPost, KindRatePost, KindLikeComment:
		return true
	default:
		return false
	}
}

// Binary reports whether the kind is a member/not-member set (everything but ratings).
func (k Kind) Binary() bool {
	return k.Valid() && k != KindRatePost
}

// Counter is the aggregate counter a binary kind maintains.
func (k Kind) Counter() CounterField {
	switch k {
	case KindLikePost:
		return PostLikeCount
	case KindCollectPost:
		return PostCollectCount
	case KindLikeComment:
		return CommentLikeCount
	case KindRatePost:
		return PostRatingCount
	default:
		return ""
	}
}

// TargetType is the entity that carries the aggregates for this kind.
func (k Kind) TargetType() TargetType {
	if k == KindLikeComment {
		return TargetComment
	}
	return TargetPost
}

type TargetType string

const (
	TargetPost    TargetType = "post"
	TargetComment TargetType = "comment"
)

// CounterField names one aggregate column on a target entity.
type CounterField string

const (
	PostLikeCount     CounterField = "post.like_count"
	PostCollectCount  CounterField = "post.collect_count"
	PostRatingAverage CounterField = "post.rating_average"
	PostRatingCount   CounterField = "post.rating_count"
	CommentLikeCount  CounterField = "comment.like_count"
)

// InteractionRecord is one user's active interaction with one target.
type InteractionRecord struct {
	UserID    int64
	TargetID  string
	Kind      Kind
	Score     float64 // RATE_POST only
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Aggregates are the denormalized counters stored on a post or comment.
type Aggregates struct {
	TargetID      string
	LikeCount     int64
	CollectCount  int64
	RatingAverage float64
	RatingCount   int64
}

// InteractionEvent is what the gate emits on a real state transition.
type InteractionEvent struct {
	ID         int64
	UserID     int64
	TargetID   string
	Kind       Kind
	Action     Action
	Value      *float64
	OccurredAt time.Time
}

// Score returns the carried value, zero when absent.
func (e InteractionEvent) Score() float64 {
	if e.Value == nil {
		return 0
	}
	return *e.Value
}

// DedupCache answers "has this user already done X to this target?".
type DedupCache interface {
	// AddMember returns true only if uid was not a member before.
	// Returns ErrCacheMiss if the target's set has not been loaded.
	AddMember(ctx context.Context, kind Kind, targetID string, uid int64) (bool, error)
	// RemoveMember returns true only if uid was a member.
	// Returns ErrCacheMiss if the target's set has not been loaded.
	RemoveMember(ctx context.Context, kind Kind, targetID string, uid int64) (bool, error)
	IsMember(ctx context.Context, kind Kind, targetID string, uid int64) (bool, error)
	// Members lists the user ids of a loaded set.
	Members(ctx context.Context, kind Kind, targetID string) ([]int64, error)

	PutRating(ctx context.Context, targetID string, uid int64, score float64) error
	// GetRating returns ErrCacheMiss if the rating hash has not been loaded.
	GetRating(ctx context.Context, targetID string, uid int64) (score float64, ok bool, err error)

	// Warm loads the durable membership of a target unless it was loaded concurrently.
	Warm(ctx context.Context, kind Kind, targetID string, records []InteractionRecord) error
}

// InteractionStore is the durable system of record.
type InteractionStore interface {
	// Transaction runs fn against a store bound to one database transaction.
	Transaction(ctx context.Context, fn func(tx InteractionStore) error) error

	// FindInteraction returns ErrNotFound if the user holds no record.
	FindInteraction(ctx context.Context, uid int64, targetID string, kind Kind) (InteractionRecord, error)
	// InsertInteraction returns ErrConflict if the record already exists.
	InsertInteraction(ctx context.Context, r *InteractionRecord) error
	UpdateScore(ctx context.Context, uid int64, targetID string, score float64) error
	// DeleteInteraction reports whether a row was removed.
	DeleteInteraction(ctx context.Context, uid int64, targetID string, kind Kind) (bool, error)

	// IncrementCounter adds delta in place. Returns ErrNotFound if the target does not exist.
	IncrementCounter(ctx context.Context, targetID string, field CounterField, delta int64) error
	SetField(ctx context.Context, targetID string, field CounterField, value any) error

	// LockAggregates reads the target's aggregates holding a row lock until the transaction ends.
	LockAggregates(ctx context.Context, targetType TargetType, targetID string) (Aggregates, error)
	GetAggregates(ctx context.Context, targetType TargetType, targetID string) (Aggregates, error)

	ListMembers(ctx context.Context, kind Kind, targetID string) ([]InteractionRecord, error)
	CountInteractions(ctx context.Context, kind Kind, targetID string) (int64, error)
	RatingStats(ctx context.Context, targetID string) (sum float64, count int64, err error)
	// FetchTargetIDs pages through target ids in ascending order, starting after cursor.
	FetchTargetIDs(ctx context.Context, targetType TargetType, cursor string, limit int) ([]string, error)
}

// EventProducer hands events to the asynchronous transport.
type EventProducer interface {
	Produce(ctx context.Context, evt InteractionEvent) error
}

// InteractionUsecase is the synchronous gate used by request handlers.
type InteractionUsecase interface {
	Like(ctx context.Context, uid int64, postID string) (bool, error)
	Unlike(ctx context.Context, uid int64, postID string) (bool, error)
	Collect(ctx context.Context, uid int64, postID string) (bool, error)
	Uncollect(ctx context.Context, uid int64, postID string) (bool, error)
	Rate(ctx context.Context, uid int64, postID string, score float64) error
	LikeComment(ctx context.Context, uid int64, commentID string) (bool, error)
	UnlikeComment(ctx context.Context, uid int64, commentID string) (bool, error)

	Status(ctx context.Context, uid int64, kind Kind, targetID string) (bool, error)
	MyRating(ctx context.Context, uid int64, postID string) (float64, bool, error)
	Aggregates(ctx context.Context, targetType TargetType, targetID string) (Aggregates, error)
}
