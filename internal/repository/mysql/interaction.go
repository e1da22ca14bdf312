package mysql

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
	"github.com/Guyuepp/Go-Social-Interaction/internal/repository/mysql/model"
)

const errDuplicateEntry = 1062

type interactionRepository struct {
	DB *gorm.DB
}

var _ domain.InteractionStore = (*interactionRepository)(nil)

// NewInteractionRepository creates the durable store backed by gorm
func NewInteractionRepository(db *gorm.DB) *interactionRepository {
	return &interactionRepository{DB: db}
}

func (m *interactionRepository) Transaction(ctx context.Context, fn func(tx domain.InteractionStore) error) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&interactionRepository{DB: tx})
	})
}

func (m *interactionRepository) FindInteraction(ctx context.Context, uid int64, targetID string, kind domain.Kind) (domain.InteractionRecord, error) {
	var rec model.InteractionRecord
	err := m.DB.WithContext(ctx).
		Where("user_id = ? AND target_id = ? AND kind = ?", uid, targetID, string(kind)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.InteractionRecord{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.InteractionRecord{}, errors.Wrapf(err, "find %s of user %d on %s", kind, uid, targetID)
	}
	return rec.ToDomain(), nil
}

func (m *interactionRepository) InsertInteraction(ctx context.Context, r *domain.InteractionRecord) error {
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	err := m.DB.WithContext(ctx).Create(model.NewInteractionRecordFromDomain(r)).Error
	if err == nil {
		return nil
	}
	var mysqlErr *mysqlDriver.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
		return domain.ErrConflict
	}
	return errors.Wrapf(err, "insert %s of user %d on %s", r.Kind, r.UserID, r.TargetID)
}

func (m *interactionRepository) UpdateScore(ctx context.Context, uid int64, targetID string, score float64) error {
	result := m.DB.WithContext(ctx).
		Model(&model.InteractionRecord{}).
		Where("user_id = ? AND target_id = ? AND kind = ?", uid, targetID, string(domain.KindRatePost)).
		Updates(map[string]any{
			"score":      score,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "update score of user %d on %s", uid, targetID)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *interactionRepository) DeleteInteraction(ctx context.Context, uid int64, targetID string, kind domain.Kind) (bool, error) {
	result := m.DB.WithContext(ctx).
		Where("user_id = ? AND target_id = ? AND kind = ?", uid, targetID, string(kind)).
		Delete(&model.InteractionRecord{})
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "delete %s of user %d on %s", kind, uid, targetID)
	}
	return result.RowsAffected > 0, nil
}

// counterColumn maps a domain counter onto its table model and column.
func counterColumn(field domain.CounterField) (any, string, error) {
	switch field {
	case domain.PostLikeCount:
		return &model.Post{}, "like_count", nil
	case domain.PostCollectCount:
		return &model.Post{}, "collect_count", nil
	case domain.PostRatingAverage:
		return &model.Post{}, "rating_average", nil
	case domain.PostRatingCount:
		return &model.Post{}, "rating_count", nil
	case domain.CommentLikeCount:
		return &model.Comment{}, "like_count", nil
	default:
		return nil, "", errors.Wrapf(domain.ErrBadParamInput, "unknown counter %q", field)
	}
}

func (m *interactionRepository) IncrementCounter(ctx context.Context, targetID string, field domain.CounterField, delta int64) error {
	tbl, col, err := counterColumn(field)
	if err != nil {
		return err
	}
	result := m.DB.WithContext(ctx).
		Model(tbl).
		Where("id = ?", targetID).
		UpdateColumn(col, gorm.Expr(col+" + ?", delta))
	if result.Error != nil {
		return errors.Wrapf(result.Error, "increment %s of %s", field, targetID)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *interactionRepository) SetField(ctx context.Context, targetID string, field domain.CounterField, value any) error {
	tbl, col, err := counterColumn(field)
	if err != nil {
		return err
	}
	err = m.DB.WithContext(ctx).
		Model(tbl).
		Where("id = ?", targetID).
		UpdateColumn(col, value).Error
	return errors.Wrapf(err, "set %s of %s", field, targetID)
}

func (m *interactionRepository) LockAggregates(ctx context.Context, targetType domain.TargetType, targetID string) (domain.Aggregates, error) {
	return m.getAggregates(m.DB.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), targetType, targetID)
}

func (m *interactionRepository) GetAggregates(ctx context.Context, targetType domain.TargetType, targetID string) (domain.Aggregates, error) {
	return m.getAggregates(m.DB.WithContext(ctx), targetType, targetID)
}

func (m *interactionRepository) getAggregates(db *gorm.DB, targetType domain.TargetType, targetID string) (domain.Aggregates, error) {
	var err error
	var res domain.Aggregates
	switch targetType {
	case domain.TargetPost:
		var post model.Post
		err = db.Select("id, like_count, collect_count, rating_average, rating_count").First(&post, "id = ?", targetID).Error
		res = post.ToAggregates()
	case domain.TargetComment:
		var comment model.Comment
		err = db.Select("id, like_count").First(&comment, "id = ?", targetID).Error
		res = comment.ToAggregates()
	default:
		return domain.Aggregates{}, domain.ErrBadParamInput
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Aggregates{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Aggregates{}, errors.Wrapf(err, "get aggregates of %s %s", targetType, targetID)
	}
	return res, nil
}

func (m *interactionRepository) ListMembers(ctx context.Context, kind domain.Kind, targetID string) ([]domain.InteractionRecord, error) {
	var rows []model.InteractionRecord
	err := m.DB.WithContext(ctx).
		Where("target_id = ? AND kind = ?", targetID, string(kind)).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list %s members of %s", kind, targetID)
	}
	return slice.Map(rows, func(_ int, src model.InteractionRecord) domain.InteractionRecord {
		return src.ToDomain()
	}), nil
}

func (m *interactionRepository) CountInteractions(ctx context.Context, kind domain.Kind, targetID string) (int64, error) {
	var cnt int64
	err := m.DB.WithContext(ctx).
		Model(&model.InteractionRecord{}).
		Where("target_id = ? AND kind = ?", targetID, string(kind)).
		Count(&cnt).Error
	return cnt, errors.Wrapf(err, "count %s of %s", kind, targetID)
}

func (m *interactionRepository) RatingStats(ctx context.Context, targetID string) (float64, int64, error) {
	var stats struct {
		Total float64
		Cnt   int64
	}
	err := m.DB.WithContext(ctx).
		Model(&model.InteractionRecord{}).
		Select("COALESCE(SUM(score), 0) AS total, COUNT(*) AS cnt").
		Where("target_id = ? AND kind = ?", targetID, string(domain.KindRatePost)).
		Scan(&stats).Error
	if err != nil {
		return 0, 0, errors.Wrapf(err, "rating stats of %s", targetID)
	}
	return stats.Total, stats.Cnt, nil
}

func (m *interactionRepository) FetchTargetIDs(ctx context.Context, targetType domain.TargetType, cursor string, limit int) (ids []string, err error) {
	var tbl any
	switch targetType {
	case domain.TargetPost:
		tbl = &model.Post{}
	case domain.TargetComment:
		tbl = &model.Comment{}
	default:
		return nil, domain.ErrBadParamInput
	}
	err = m.DB.WithContext(ctx).
		Model(tbl).
		Where("id > ?", cursor).
		Order("id").
		Limit(limit).
		Pluck("id", &ids).Error
	return ids, errors.Wrapf(err, "fetch %s ids", targetType)
}
