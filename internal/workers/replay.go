package workers

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
	"github.com/Guyuepp/Go-Social-Interaction/internal/events"
)

// ReplayWorker puts dead-lettered payloads back on the event channel.
// A letter whose intent the dedup cache no longer holds is superseded instead.
type ReplayWorker struct {
	dead      domain.DeadLetterRepository
	cache     domain.DedupCache
	publisher domain.Publisher
}

func NewReplayWorker(dead domain.DeadLetterRepository, cache domain.DedupCache, publisher domain.Publisher) *ReplayWorker {
	return &ReplayWorker{
		dead:      dead,
		cache:     cache,
		publisher: publisher,
	}
}

// Replay re-publishes up to limit pending dead letters, oldest first, and
// returns how many were sent. It stops at the first publish or cache failure.
func (w *ReplayWorker) Replay(ctx context.Context, limit int) (int, error) {
	letters, err := w.dead.FetchPending(ctx, limit)
	if err != nil {
		return 0, err
	}
	replayed, superseded := 0, 0
	for _, dl := range letters {
		// undecodable payloads go back as they are, a newer consumer may understand them
		if evt, decodeErr := events.Decode(dl.Payload); decodeErr == nil {
			current, err := w.stillIntended(ctx, evt)
			if err != nil {
				return replayed, errors.Wrapf(err, "check dead letter %d", dl.ID)
			}
			if !current {
				logrus.Infof("dead letter %d superseded: %s %s of user %d on %s", dl.ID, evt.Kind, evt.Action, evt.UserID, evt.TargetID)
				if err = w.dead.MarkSuperseded(ctx, dl.ID); err != nil {
					logrus.Warnf("failed to mark dead letter %d superseded: %v", dl.ID, err)
				}
				superseded++
				continue
			}
		}

		if err = w.publisher.Publish(ctx, dl.TargetID, dl.Payload); err != nil {
			return replayed, errors.Wrapf(err, "replay dead letter %d", dl.ID)
		}
		if err = w.dead.MarkReplayed(ctx, dl.ID); err != nil {
			logrus.Warnf("failed to mark dead letter %d replayed: %v", dl.ID, err)
		}
		replayed++
	}
	logrus.Infof("replayed %d dead letters, %d superseded", replayed, superseded)
	return replayed, nil
}

// stillIntended reports whether the cache still shows what evt asked for.
// A cold key means the cache will be rebuilt from the durable store, which
// never saw the event, so the event no longer describes a visible state.
func (w *ReplayWorker) stillIntended(ctx context.Context, evt domain.InteractionEvent) (bool, error) {
	if evt.Kind == domain.KindRatePost {
		score, ok, err := w.cache.GetRating(ctx, evt.TargetID, evt.UserID)
		if errors.Is(err, domain.ErrCacheMiss) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if evt.Action == domain.ActionRemove {
			return !ok, nil
		}
		return ok && sameScore(score, evt.Score()), nil
	}

	member, err := w.cache.IsMember(ctx, evt.Kind, evt.TargetID, evt.UserID)
	if errors.Is(err, domain.ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return member == (evt.Action == domain.ActionAdd), nil
}
