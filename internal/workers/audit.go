package workers

import (
	"context"
	"math"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
	"github.com/Guyuepp/Go-Social-Interaction/internal/metrics"
)

const defaultAuditBatch = 200

// AuditWorker recounts aggregates from the interaction records and rewrites
// any that drifted. It also compares loaded dedup sets with the records and
// reports, without repairing, those that disagree.
type AuditWorker struct {
	store    domain.InteractionStore
	cache    domain.DedupCache
	interval time.Duration
	batch    int
}

// AuditReport sums up one pass.
type AuditReport struct {
	// Corrected counts aggregate fields rewritten
	Corrected int
	// Divergent counts dedup sets whose members differ from the records
	Divergent int
}

func NewAuditWorker(store domain.InteractionStore, cache domain.DedupCache, interval time.Duration, batch int) *AuditWorker {
	if batch <= 0 {
		batch = defaultAuditBatch
	}
	return &AuditWorker{
		store:    store,
		cache:    cache,
		interval: interval,
		batch:    batch,
	}
}

func (a *AuditWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			report, err := a.RunOnce(ctx)
			if err != nil {
				logrus.Errorf("audit pass aborted: %v", err)
				continue
			}
			logrus.Infof("audit pass done, %d fields corrected, %d dedup sets diverged", report.Corrected, report.Divergent)
		case <-ctx.Done():
			logrus.Info("shutting down AuditWorker")
			return
		}
	}
}

// RunOnce walks every post and comment once.
func (a *AuditWorker) RunOnce(ctx context.Context) (AuditReport, error) {
	var report AuditReport
	for _, tt := range []domain.TargetType{domain.TargetPost, domain.TargetComment} {
		cursor := ""
		for {
			ids, err := a.store.FetchTargetIDs(ctx, tt, cursor, a.batch)
			if err != nil {
				return report, err
			}
			for _, id := range ids {
				n, err := a.auditTarget(ctx, tt, id)
				if err != nil {
					logrus.Warnf("failed to audit %s %s: %v", tt, id, err)
					continue
				}
				report.Corrected += n
				report.Divergent += a.auditMembership(ctx, tt, id)
			}
			if len(ids) < a.batch {
				break
			}
			cursor = ids[len(ids)-1]
		}
	}
	return report, nil
}

func (a *AuditWorker) auditTarget(ctx context.Context, tt domain.TargetType, targetID string) (int, error) {
	corrected := 0
	err := a.store.Transaction(ctx, func(tx domain.InteractionStore) error {
		corrected = 0
		agg, err := tx.LockAggregates(ctx, tt, targetID)
		if err != nil {
			return err
		}

		fix := func(field domain.CounterField, value any) error {
			logrus.WithFields(logrus.Fields{
				"target": targetID,
				"field":  field,
				"value":  value,
			}).Warn("aggregate drift corrected")
			metrics.AuditCorrections.WithLabelValues(string(field)).Inc()
			corrected++
			return tx.SetField(ctx, targetID, field, value)
		}

		if tt == domain.TargetComment {
			likes, err := tx.CountInteractions(ctx, domain.KindLikeComment, targetID)
			if err != nil {
				return err
			}
			if likes != agg.LikeCount {
				return fix(domain.CommentLikeCount, likes)
			}
			return nil
		}

		likes, err := tx.CountInteractions(ctx, domain.KindLikePost, targetID)
		if err != nil {
			return err
		}
		collects, err := tx.CountInteractions(ctx, domain.KindCollectPost, targetID)
		if err != nil {
			return err
		}
		sum, count, err := tx.RatingStats(ctx, targetID)
		if err != nil {
			return err
		}
		avg := 0.0
		if count > 0 {
			avg = sum / float64(count)
		}

		if likes != agg.LikeCount {
			if err = fix(domain.PostLikeCount, likes); err != nil {
				return err
			}
		}
		if collects != agg.CollectCount {
			if err = fix(domain.PostCollectCount, collects); err != nil {
				return err
			}
		}
		if count != agg.RatingCount {
			if err = fix(domain.PostRatingCount, count); err != nil {
				return err
			}
		}
		// incremental averaging accumulates float error, only rewrite real drift
		if math.Abs(avg-agg.RatingAverage) > 1e-6 {
			if err = fix(domain.PostRatingAverage, avg); err != nil {
				return err
			}
		}
		return nil
	})
	return corrected, err
}

// auditMembership returns how many of the target's loaded dedup sets disagree
// with the durable records. Events still in flight show up here too, so a
// divergence is only logged.
func (a *AuditWorker) auditMembership(ctx context.Context, tt domain.TargetType, targetID string) int {
	kinds := []domain.Kind{domain.KindLikePost, domain.KindCollectPost}
	if tt == domain.TargetComment {
		kinds = []domain.Kind{domain.KindLikeComment}
	}

	divergent := 0
	for _, kind := range kinds {
		cached, err := a.cache.Members(ctx, kind, targetID)
		if errors.Is(err, domain.ErrCacheMiss) {
			continue
		}
		if err != nil {
			logrus.Warnf("failed to read cached %s members of %s: %v", kind, targetID, err)
			continue
		}
		records, err := a.store.ListMembers(ctx, kind, targetID)
		if err != nil {
			logrus.Warnf("failed to list %s records of %s: %v", kind, targetID, err)
			continue
		}

		durable := recordUserIDs(records)
		missing, extra := slice.DiffSet(cached, durable), slice.DiffSet(durable, cached)
		if len(missing) == 0 && len(extra) == 0 {
			continue
		}
		logrus.WithFields(logrus.Fields{
			"target":      targetID,
			"kind":        kind,
			"not_durable": missing,
			"not_cached":  extra,
		}).Warn("dedup cache and durable records disagree")
		metrics.CacheDivergences.WithLabelValues(string(kind)).Inc()
		divergent++
	}
	return divergent
}

func recordUserIDs(records []domain.InteractionRecord) []int64 {
	return slice.Map(records, func(_ int, r domain.InteractionRecord) int64 {
		return r.UserID
	})
}
