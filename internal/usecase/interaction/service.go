package interaction

import (
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
	"github.com/Guyuepp/Go-Social-Interaction/internal/metrics"
)

const scoreRule = "gte=0,lte=5"

// Service is the synchronous gate. It only touches the dedup cache and the
// event channel; durable state is left to the reconciler.
type Service struct {
	cache     domain.DedupCache
	store     domain.InteractionStore
	producer  domain.EventProducer
	validate  *validator.Validate
	warmGroup singleflight.Group
}

var _ domain.InteractionUsecase = (*Service)(nil)

func NewService(c domain.DedupCache, s domain.InteractionStore, p domain.EventProducer) *Service {
	return &Service{
		cache:    c,
		store:    s,
		producer: p,
		validate: validator.New(),
	}
}

func (s *Service) Like(ctx context.Context, uid int64, postID string) (bool, error) {
	return s.toggle(ctx, domain.KindLikePost, domain.ActionAdd, uid, postID)
}

func (s *Service) Unlike(ctx context.Context, uid int64, postID string) (bool, error) {
	return s.toggle(ctx, domain.KindLikePost, domain.ActionRemove, uid, postID)
}

func (s *Service) Collect(ctx context.Context, uid int64, postID string) (bool, error) {
	return s.toggle(ctx, domain.KindCollectPost, domain.ActionAdd, uid, postID)
}

func (s *Service) Uncollect(ctx context.Context, uid int64, postID string) (bool, error) {
	return s.toggle(ctx, domain.KindCollectPost, domain.ActionRemove, uid, postID)
}

func (s *Service) LikeComment(ctx context.Context, uid int64, commentID string) (bool, error) {
	return s.toggle(ctx, domain.KindLikeComment, domain.ActionAdd, uid, commentID)
}

func (s *Service) UnlikeComment(ctx context.Context, uid int64, commentID string) (bool, error) {
	return s.toggle(ctx, domain.KindLikeComment, domain.ActionRemove, uid, commentID)
}

// toggle flips membership in the dedup set and emits an event only when the
// set actually changed.
func (s *Service) toggle(ctx context.Context, kind domain.Kind, action domain.Action, uid int64, targetID string) (bool, error) {
	if err := checkIdentity(uid, targetID); err != nil {
		return false, err
	}

	mutate := s.cache.AddMember
	if action == domain.ActionRemove {
		mutate = s.cache.RemoveMember
	}

	var changed bool
	err := s.withWarmCache(ctx, kind, targetID, func() error {
		var err error
		changed, err = mutate(ctx, kind, targetID, uid)
		return err
	})
	if err != nil {
		return false, err
	}
	if !changed {
		recordTransition(kind, action, false)
		return false, nil
	}

	err = s.producer.Produce(ctx, domain.InteractionEvent{
		UserID:   uid,
		TargetID: targetID,
		Kind:     kind,
		Action:   action,
	})
	if err != nil {
		logrus.Errorf("failed to publish %s %s of user %d on %s: %v", kind, action, uid, targetID, err)
		s.revert(ctx, kind, action, uid, targetID)
		recordTransition(kind, action, false)
		return false, errors.Wrap(domain.ErrEventPublish, err.Error())
	}
	recordTransition(kind, action, true)
	return true, nil
}

// recordTransition counts a gate call once its outcome is final.
func recordTransition(kind domain.Kind, action domain.Action, changed bool) {
	metrics.GateTransitions.WithLabelValues(string(kind), action.String(), strconv.FormatBool(changed)).Inc()
}

// revert undoes a cache transition whose event never left, so that a retry
// by the client produces the event again.
func (s *Service) revert(ctx context.Context, kind domain.Kind, action domain.Action, uid int64, targetID string) {
	var err error
	if action == domain.ActionAdd {
		_, err = s.cache.RemoveMember(ctx, kind, targetID, uid)
	} else {
		_, err = s.cache.AddMember(ctx, kind, targetID, uid)
	}
	if err != nil {
		logrus.Errorf("failed to revert %s %s of user %d on %s: %v", kind, action, uid, targetID, err)
	}
}

// Rate always emits: the score may have changed even if the user rated before.
func (s *Service) Rate(ctx context.Context, uid int64, postID string, score float64) error {
	if err := checkIdentity(uid, postID); err != nil {
		return err
	}
	if err := s.validate.Var(score, scoreRule); err != nil {
		return errors.Wrapf(domain.ErrBadParamInput, "score %v must be within [%v, %v]", score, domain.MinScore, domain.MaxScore)
	}

	err := s.withWarmCache(ctx, domain.KindRatePost, postID, func() error {
		return s.cache.PutRating(ctx, postID, uid, score)
	})
	if err != nil {
		return err
	}

	err = s.producer.Produce(ctx, domain.InteractionEvent{
		UserID:   uid,
		TargetID: postID,
		Kind:     domain.KindRatePost,
		Action:   domain.ActionAdd,
		Value:    &score,
	})
	if err != nil {
		logrus.Errorf("failed to publish rating %v of user %d on %s: %v", score, uid, postID, err)
		recordTransition(domain.KindRatePost, domain.ActionAdd, false)
		return errors.Wrap(domain.ErrEventPublish, err.Error())
	}
	recordTransition(domain.KindRatePost, domain.ActionAdd, true)
	return nil
}

func (s *Service) Status(ctx context.Context, uid int64, kind domain.Kind, targetID string) (bool, error) {
	if err := checkIdentity(uid, targetID); err != nil {
		return false, err
	}
	if !kind.Valid() {
		return false, domain.ErrUnknownKind
	}
	if kind == domain.KindRatePost {
		_, ok, err := s.MyRating(ctx, uid, targetID)
		return ok, err
	}

	var member bool
	err := s.withWarmCache(ctx, kind, targetID, func() error {
		var err error
		member, err = s.cache.IsMember(ctx, kind, targetID, uid)
		return err
	})
	return member, err
}

func (s *Service) MyRating(ctx context.Context, uid int64, postID string) (float64, bool, error) {
	if err := checkIdentity(uid, postID); err != nil {
		return 0, false, err
	}
	var (
		score float64
		ok    bool
	)
	err := s.withWarmCache(ctx, domain.KindRatePost, postID, func() error {
		var err error
		score, ok, err = s.cache.GetRating(ctx, postID, uid)
		return err
	})
	return score, ok, err
}

// Aggregates reads the counters straight from the durable store.
func (s *Service) Aggregates(ctx context.Context, targetType domain.TargetType, targetID string) (domain.Aggregates, error) {
	if targetID == "" {
		return domain.Aggregates{}, domain.ErrBadParamInput
	}
	return s.store.GetAggregates(ctx, targetType, targetID)
}

// withWarmCache runs op, and if the key has not been loaded yet, warms it from
// the durable store and runs op once more.
func (s *Service) withWarmCache(ctx context.Context, kind domain.Kind, targetID string, op func() error) error {
	err := op()
	if errors.Is(err, domain.ErrCacheMiss) {
		// 未命中缓存, 从数据库加载后重试
		if err = s.warm(ctx, kind, targetID); err != nil {
			return err
		}
		err = op()
	}
	if err != nil {
		logrus.Errorf("dedup cache failed for %s on %s: %v", kind, targetID, err)
		return errors.Wrap(domain.ErrCacheUnavailable, err.Error())
	}
	return nil
}

func (s *Service) warm(ctx context.Context, kind domain.Kind, targetID string) error {
	key := string(kind) + ":" + targetID
	_, err, _ := s.warmGroup.Do(key, func() (any, error) {
		records, err := s.store.ListMembers(ctx, kind, targetID)
		if err != nil {
			logrus.Errorf("failed to load %s members of %s: %v", kind, targetID, err)
			return nil, errors.Wrap(domain.ErrInternalServerError, err.Error())
		}
		if err = s.cache.Warm(ctx, kind, targetID, records); err != nil {
			logrus.Errorf("failed to warm %s of %s: %v", kind, targetID, err)
			return nil, errors.Wrap(domain.ErrCacheUnavailable, err.Error())
		}
		metrics.CacheWarms.WithLabelValues(string(kind)).Inc()
		return nil, nil
	})
	return err
}

func checkIdentity(uid int64, targetID string) error {
	if uid <= 0 {
		return errors.Wrapf(domain.ErrBadParamInput, "invalid user id %d", uid)
	}
	if targetID == "" {
		return errors.Wrap(domain.ErrBadParamInput, "empty target id")
	}
	return nil
}
