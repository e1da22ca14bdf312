package model

import (
	"time"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
)

type DeadLetter struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	EventID    int64      `gorm:"column:event_id;index"`
	TargetID   string     `gorm:"column:target_id;type:varchar(64)"`
	Payload    []byte     `gorm:"column:payload;type:blob"`
	Reason     string     `gorm:"column:reason;type:varchar(512)"`
	Attempts   int        `gorm:"column:attempts"`
	CreatedAt  time.Time  `gorm:"type:datetime"`
	ReplayedAt *time.Time `gorm:"type:datetime;index"`

	SupersededAt *time.Time `gorm:"type:datetime"`
}

func (DeadLetter) TableName() string {
	return "interaction_dead_letter"
}

func NewDeadLetterFromDomain(dl *domain.DeadLetter) *DeadLetter {
	return &DeadLetter{
		ID:         dl.ID,
		EventID:    dl.EventID,
		TargetID:   dl.TargetID,
		Payload:    dl.Payload,
		Reason:     dl.Reason,
		Attempts:   dl.Attempts,
		CreatedAt:  dl.CreatedAt,
		ReplayedAt: dl.ReplayedAt,

		SupersededAt: dl.SupersededAt,
	}
}

func (m *DeadLetter) ToDomain() domain.DeadLetter {
	return domain.DeadLetter{
		ID:         m.ID,
		EventID:    m.EventID,
		TargetID:   m.TargetID,
		Payload:    m.Payload,
		Reason:     m.Reason,
		Attempts:   m.Attempts,
		CreatedAt:  m.CreatedAt,
		ReplayedAt: m.ReplayedAt,

		SupersededAt: m.SupersededAt,
	}
}
