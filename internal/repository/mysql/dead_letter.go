package mysql

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
	"github.com/Guyuepp/Go-Social-Interaction/internal/repository/mysql/model"
)

const maxReasonLen = 512

type deadLetterRepository struct {
	DB *gorm.DB
}

var _ domain.DeadLetterRepository = (*deadLetterRepository)(nil)

func NewDeadLetterRepository(db *gorm.DB) *deadLetterRepository {
	return &deadLetterRepository{DB: db}
}

func (d *deadLetterRepository) Store(ctx context.Context, dl *domain.DeadLetter) error {
	if dl.CreatedAt.IsZero() {
		dl.CreatedAt = time.Now()
	}
	if len(dl.Reason) > maxReasonLen {
		dl.Reason = dl.Reason[:maxReasonLen]
	}
	row := model.NewDeadLetterFromDomain(dl)
	if err := d.DB.WithContext(ctx).Create(row).Error; err != nil {
		return errors.Wrap(err, "store dead letter")
	}
	dl.ID = row.ID
	return nil
}

func (d *deadLetterRepository) FetchPending(ctx context.Context, limit int) ([]domain.DeadLetter, error) {
	var rows []model.DeadLetter
	err := d.DB.WithContext(ctx).
		Where("replayed_at IS NULL AND superseded_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetch pending dead letters")
	}
	return slice.Map(rows, func(_ int, src model.DeadLetter) domain.DeadLetter {
		return src.ToDomain()
	}), nil
}

func (d *deadLetterRepository) MarkReplayed(ctx context.Context, id int64) error {
	return d.resolve(ctx, id, "replayed_at")
}

func (d *deadLetterRepository) MarkSuperseded(ctx context.Context, id int64) error {
	return d.resolve(ctx, id, "superseded_at")
}

// resolve stamps column on a still pending letter.
func (d *deadLetterRepository) resolve(ctx context.Context, id int64, column string) error {
	result := d.DB.WithContext(ctx).
		Model(&model.DeadLetter{}).
		Where("id = ? AND replayed_at IS NULL AND superseded_at IS NULL", id).
		UpdateColumn(column, time.Now())
	if result.Error != nil {
		return errors.Wrapf(result.Error, "set %s on dead letter %d", column, id)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
