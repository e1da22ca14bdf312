package workers

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
	"github.com/Guyuepp/Go-Social-Interaction/internal/events"
	"github.com/Guyuepp/Go-Social-Interaction/internal/metrics"
)

// Consumer is the part of mq.Consumer the reconciler reads from.
type Consumer interface {
	Consume(ctx context.Context) (*mq.Message, error)
	Close() error
}

type ReconcilerConfig struct {
	Workers int
	// Buffer is the capacity of each shard's queue
	Buffer        int
	RetryInterval time.Duration
	RetryMax      time.Duration
	MaxRetries    int32
}

func DefaultReconcilerConfig() ReconcilerConfig {
	return ReconcilerConfig{
		Workers:       8,
		Buffer:        256,
		RetryInterval: 100 * time.Millisecond,
		RetryMax:      time.Second,
		MaxRetries:    3,
	}
}

type job struct {
	evt     domain.InteractionEvent
	payload []byte
}

type reconciler struct {
	store    domain.InteractionStore
	dead     domain.DeadLetterRepository
	consumer Consumer
	cfg      ReconcilerConfig
}

var _ domain.Reconciler = (*reconciler)(nil)

func NewReconciler(store domain.InteractionStore, dead domain.DeadLetterRepository, consumer Consumer, cfg ReconcilerConfig) *reconciler {
	def := DefaultReconcilerConfig()
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = def.Buffer
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = def.RetryInterval
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = def.MaxRetries
	}
	if cfg.RetryMax < cfg.RetryInterval {
		cfg.RetryMax = cfg.RetryInterval
	}
	return &reconciler{
		store:    store,
		dead:     dead,
		consumer: consumer,
		cfg:      cfg,
	}
}

// Start reads events until ctx is done. Each target hashes to one shard so
// events of the same target are never applied concurrently. On shutdown the
// shards finish everything already dispatched before Start returns.
func (r *reconciler) Start(ctx context.Context) error {
	// shards outlive ctx so that dispatched events are drained
	drainCtx := context.WithoutCancel(ctx)

	var eg errgroup.Group
	shards := make([]chan job, r.cfg.Workers)
	for i := range shards {
		ch := make(chan job, r.cfg.Buffer)
		shards[i] = ch
		eg.Go(func() error {
			for j := range ch {
				r.process(drainCtx, ctx.Done(), j)
			}
			return nil
		})
	}

	logrus.Infof("reconciler started with %d shards", len(shards))
	for ctx.Err() == nil {
		msg, err := r.consumer.Consume(ctx)
		if err == nil {
			r.dispatch(drainCtx, shards, msg)
			continue
		}
		if ctx.Err() != nil {
			break
		}
		logrus.Errorf("failed to consume interaction event: %v", err)
		select {
		case <-ctx.Done():
		case <-time.After(r.cfg.RetryInterval):
		}
	}

	logrus.Info("shutting down reconciler, draining dispatched events...")
	for _, ch := range shards {
		close(ch)
	}
	return eg.Wait()
}

// Stop releases the underlying consumer.
func (r *reconciler) Stop() error {
	return r.consumer.Close()
}

func (r *reconciler) dispatch(ctx context.Context, shards []chan job, msg *mq.Message) {
	evt, err := events.Decode(msg.Value)
	if err != nil {
		logrus.Warnf("dropping undecodable interaction event %q: %v", msg.Value, err)
		r.deadLetter(ctx, job{evt: domain.InteractionEvent{TargetID: string(msg.Key)}, payload: msg.Value}, err, 0)
		return
	}
	shards[shardOf(evt.TargetID, len(shards))] <- job{evt: evt, payload: msg.Value}
}

func shardOf(targetID string, n int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(targetID))
	return int(h.Sum32() % uint32(n))
}

// process applies one event with backoff, and dead-letters it once retries run
// out. Closing stop cuts the backoff short so that shutdown is not held up; the
// event is dead-lettered for replay.
func (r *reconciler) process(ctx context.Context, stop <-chan struct{}, j job) {
	kind := string(j.evt.Kind)
	start := time.Now()
	defer func() {
		metrics.ReconcileDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}()

	strategy, err := retry.NewExponentialBackoffRetryStrategy(r.cfg.RetryInterval, r.cfg.RetryMax, r.cfg.MaxRetries)
	if err != nil {
		logrus.Errorf("invalid reconciler retry config: %v", err)
		r.deadLetter(ctx, j, err, 0)
		return
	}

	attempts := 0
	for {
		attempts++
		var applied bool
		applied, err = r.apply(ctx, j.evt)
		if err == nil {
			result := metrics.ResultNoop
			if applied {
				result = metrics.ResultApplied
			}
			metrics.Reconciled.WithLabelValues(kind, result).Inc()
			return
		}
		if permanent(err) {
			break
		}
		next, ok := strategy.Next()
		if !ok {
			break
		}
		logrus.Warnf("reconcile event %d failed (attempt %d), retrying in %v: %v", j.evt.ID, attempts, next, err)
		metrics.Reconciled.WithLabelValues(kind, metrics.ResultRetried).Inc()
		if !wait(stop, next) {
			err = errors.Wrap(err, "shutting down before retry")
			break
		}
	}

	logrus.Errorf("giving up on event %d after %d attempts: %v", j.evt.ID, attempts, err)
	metrics.Reconciled.WithLabelValues(kind, metrics.ResultDeadLetter).Inc()
	r.deadLetter(ctx, j, err, attempts)
}

// wait sleeps for d and reports false if stop closed first.
func wait(stop <-chan struct{}, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-stop:
		return false
	}
}

// permanent errors will fail the same way on every retry.
func permanent(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrBadParamInput) ||
		errors.Is(err, domain.ErrUnknownKind) ||
		errors.Is(err, domain.ErrUnknownAction)
}

func (r *reconciler) deadLetter(ctx context.Context, j job, cause error, attempts int) {
	metrics.DeadLetters.WithLabelValues(deadLetterReason(cause)).Inc()
	dl := &domain.DeadLetter{
		EventID:  j.evt.ID,
		TargetID: j.evt.TargetID,
		Payload:  j.payload,
		Reason:   cause.Error(),
		Attempts: attempts,
	}
	if err := r.dead.Store(ctx, dl); err != nil {
		logrus.WithFields(logrus.Fields{
			"event_id": j.evt.ID,
			"payload":  string(j.payload),
		}).Errorf("failed to store dead letter: %v", err)
	}
}

func deadLetterReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownKind), errors.Is(err, domain.ErrUnknownAction), errors.Is(err, domain.ErrBadParamInput):
		return "invalid"
	case errors.Is(err, domain.ErrNotFound):
		return "target_not_found"
	default:
		return "storage"
	}
}

// Handle applies a single event synchronously, without retries.
func (r *reconciler) Handle(ctx context.Context, evt domain.InteractionEvent) error {
	_, err := r.apply(ctx, evt)
	return err
}

// apply reports whether the durable state changed.
func (r *reconciler) apply(ctx context.Context, evt domain.InteractionEvent) (bool, error) {
	switch {
	case evt.Kind.Binary():
		return r.applyBinary(ctx, evt)
	case evt.Kind == domain.KindRatePost && evt.Action == domain.ActionAdd:
		return r.applyRating(ctx, evt)
	case evt.Kind == domain.KindRatePost && evt.Action == domain.ActionRemove:
		return r.removeRating(ctx, evt)
	case evt.Kind == domain.KindRatePost:
		return false, domain.ErrUnknownAction
	default:
		return false, domain.ErrUnknownKind
	}
}

func (r *reconciler) applyBinary(ctx context.Context, evt domain.InteractionEvent) (bool, error) {
	var changed bool
	err := r.store.Transaction(ctx, func(tx domain.InteractionStore) error {
		switch evt.Action {
		case domain.ActionAdd:
			_, err := tx.FindInteraction(ctx, evt.UserID, evt.TargetID, evt.Kind)
			if err == nil {
				return nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			err = tx.InsertInteraction(ctx, &domain.InteractionRecord{
				UserID:    evt.UserID,
				TargetID:  evt.TargetID,
				Kind:      evt.Kind,
				CreatedAt: evt.OccurredAt,
			})
			if errors.Is(err, domain.ErrConflict) {
				return nil
			}
			if err != nil {
				return err
			}
		case domain.ActionRemove:
			deleted, err := tx.DeleteInteraction(ctx, evt.UserID, evt.TargetID, evt.Kind)
			if err != nil {
				return err
			}
			if !deleted {
				return nil
			}
		default:
			return domain.ErrUnknownAction
		}
		changed = true
		return tx.IncrementCounter(ctx, evt.TargetID, evt.Kind.Counter(), evt.Action.Delta())
	})
	return changed, err
}

// applyRating keeps rating_average and rating_count in step with the stored
// scores. The target row stays locked until the transaction ends.
func (r *reconciler) applyRating(ctx context.Context, evt domain.InteractionEvent) (bool, error) {
	var changed bool
	score := evt.Score()
	err := r.store.Transaction(ctx, func(tx domain.InteractionStore) error {
		agg, err := tx.LockAggregates(ctx, domain.TargetPost, evt.TargetID)
		if err != nil {
			return err
		}
		rec, err := tx.FindInteraction(ctx, evt.UserID, evt.TargetID, domain.KindRatePost)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			avg := insertAverage(agg.RatingAverage, agg.RatingCount, score)
			err = tx.InsertInteraction(ctx, &domain.InteractionRecord{
				UserID:    evt.UserID,
				TargetID:  evt.TargetID,
				Kind:      domain.KindRatePost,
				Score:     score,
				CreatedAt: evt.OccurredAt,
			})
			if err != nil {
				return err
			}
			if err = tx.SetField(ctx, evt.TargetID, domain.PostRatingAverage, avg); err != nil {
				return err
			}
			if err = tx.SetField(ctx, evt.TargetID, domain.PostRatingCount, agg.RatingCount+1); err != nil {
				return err
			}
		case err != nil:
			return err
		case sameScore(rec.Score, score):
			return nil
		default:
			avg := updateAverage(agg.RatingAverage, agg.RatingCount, rec.Score, score)
			if err = tx.UpdateScore(ctx, evt.UserID, evt.TargetID, score); err != nil {
				return err
			}
			if err = tx.SetField(ctx, evt.TargetID, domain.PostRatingAverage, avg); err != nil {
				return err
			}
		}
		changed = true
		return nil
	})
	return changed, err
}

// removeRating is never produced by the gate but keeps the average right if
// such an event is replayed by an operator.
func (r *reconciler) removeRating(ctx context.Context, evt domain.InteractionEvent) (bool, error) {
	var changed bool
	err := r.store.Transaction(ctx, func(tx domain.InteractionStore) error {
		agg, err := tx.LockAggregates(ctx, domain.TargetPost, evt.TargetID)
		if err != nil {
			return err
		}
		rec, err := tx.FindInteraction(ctx, evt.UserID, evt.TargetID, domain.KindRatePost)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err = tx.DeleteInteraction(ctx, evt.UserID, evt.TargetID, domain.KindRatePost); err != nil {
			return err
		}
		count := agg.RatingCount - 1
		if count < 0 {
			count = 0
		}
		if err = tx.SetField(ctx, evt.TargetID, domain.PostRatingAverage, removeAverage(agg.RatingAverage, agg.RatingCount, rec.Score)); err != nil {
			return err
		}
		if err = tx.SetField(ctx, evt.TargetID, domain.PostRatingCount, count); err != nil {
			return err
		}
		changed = true
		return nil
	})
	return changed, err
}
