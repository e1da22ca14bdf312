package response

import (
	"github.com/Guyuepp/Go-Social-Interaction/domain"
)

// PostInteractions is the interaction summary shown on a post.
type PostInteractions struct {
	PostID        string   `json:"post_id"`
	LikeCount     int64    `json:"like_count"`
	CollectCount  int64    `json:"collect_count"`
	RatingAverage float64  `json:"rating_average"`
	RatingCount   int64    `json:"rating_count"`
	Liked         *bool    `json:"liked,omitempty"`
	Collected     *bool    `json:"collected,omitempty"`
	MyRating      *float64 `json:"my_rating,omitempty"`
}

func NewPostInteractionsFromDomain(a *domain.Aggregates) PostInteractions {
	return PostInteractions{
		PostID:        a.TargetID,
		LikeCount:     a.LikeCount,
		CollectCount:  a.CollectCount,
		RatingAverage: a.RatingAverage,
		RatingCount:   a.RatingCount,
	}
}

type CommentInteractions struct {
	CommentID string `json:"comment_id"`
	LikeCount int64  `json:"like_count"`
	Liked     *bool  `json:"liked,omitempty"`
}

func NewCommentInteractionsFromDomain(a *domain.Aggregates) CommentInteractions {
	return CommentInteractions{
		CommentID: a.TargetID,
		LikeCount: a.LikeCount,
	}
}

// Toggle reports whether the call changed the user's state.
type Toggle struct {
	IsChanged bool `json:"is_changed"`
}
