package model

import (
	"time"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
)

// InteractionRecord is unique per (user_id, target_id, kind).
type InteractionRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uid_target_kind"`
	TargetID  string    `gorm:"column:target_id;type:varchar(64);not null;uniqueIndex:uid_target_kind;index:target_kind"`
	Kind      string    `gorm:"column:kind;type:varchar(16);not null;uniqueIndex:uid_target_kind;index:target_kind"`
	Score     float64   `gorm:"column:score;default:0"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime;index"`
}

func (InteractionRecord) TableName() string {
	return "interaction_record"
}

func NewInteractionRecordFromDomain(r *domain.InteractionRecord) *InteractionRecord {
	return &InteractionRecord{
		UserID:    r.UserID,
		TargetID:  r.TargetID,
		Kind:      string(r.Kind),
		Score:     r.Score,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (m *InteractionRecord) ToDomain() domain.InteractionRecord {
	return domain.InteractionRecord{
		UserID:    m.UserID,
		TargetID:  m.TargetID,
		Kind:      domain.Kind(m.Kind),
		Score:     m.Score,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
