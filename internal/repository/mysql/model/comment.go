package model

import (
	"time"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	PostID    string    `gorm:"column:post_id;type:varchar(64);not null"`
	UserID    int64     `gorm:"column:user_id;not null"`
	LikeCount int64     `gorm:"column:like_count;default:0"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment"
}

func (m *Comment) ToAggregates() domain.Aggregates {
	return domain.Aggregates{
		TargetID:  m.ID,
		LikeCount: m.LikeCount,
	}
}
