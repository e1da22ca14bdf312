package model

import (
	"time"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
)

// Post carries the post-level aggregates. Content columns belong to the content service.
type Post struct {
	ID            string    `gorm:"primaryKey;type:varchar(64)"`
	UserID        int64     `gorm:"column:user_id;not null"`
	LikeCount     int64     `gorm:"column:like_count;default:0"`
	CollectCount  int64     `gorm:"column:collect_count;default:0"`
	RatingAverage float64   `gorm:"column:rating_average;default:0"`
	RatingCount   int64     `gorm:"column:rating_count;default:0"`
	UpdatedAt     time.Time `gorm:"type:datetime"`
	CreatedAt     time.Time `gorm:"type:datetime"`
}

func (Post) TableName() string {
	return "post"
}

func (m *Post) ToAggregates() domain.Aggregates {
	return domain.Aggregates{
		TargetID:      m.ID,
		LikeCount:     m.LikeCount,
		CollectCount:  m.CollectCount,
		RatingAverage: m.RatingAverage,
		RatingCount:   m.RatingCount,
	}
}
