package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
	"github.com/Guyuepp/Go-Social-Interaction/internal/rest/middleware"
	"github.com/Guyuepp/Go-Social-Interaction/internal/rest/request"
	"github.com/Guyuepp/Go-Social-Interaction/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// InteractionHandler serves likes, collects, ratings and comment likes
type InteractionHandler struct {
	Service domain.InteractionUsecase
}

func NewInteractionHandler(svc domain.InteractionUsecase) *InteractionHandler {
	return &InteractionHandler{
		Service: svc,
	}
}

// RegisterRoutes mounts the interaction endpoints on r
func (h *InteractionHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/posts/:id/interactions", h.PostInteractions)
	r.GET("/comments/:id/interactions", h.CommentInteractions)

	r.POST("/posts/:id/like", h.Like)
	r.DELETE("/posts/:id/like", h.Unlike)
	r.POST("/posts/:id/collect", h.Collect)
	r.DELETE("/posts/:id/collect", h.Uncollect)
	r.PUT("/posts/:id/rating", h.Rate)
	r.POST("/comments/:id/like", h.LikeComment)
	r.DELETE("/comments/:id/like", h.UnlikeComment)
}

type toggleFunc func(ctx context.Context, uid int64, targetID string) (bool, error)

func (h *InteractionHandler) toggle(c *gin.Context, fn toggleFunc) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: domain.ErrUnauthorized.Error()})
		return
	}
	changed, err := fn(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.Toggle{IsChanged: changed})
}

// Like adds the caller to the post's likes; repeating it is a no-op
func (h *InteractionHandler) Like(c *gin.Context) {
	h.toggle(c, h.Service.Like)
}

func (h *InteractionHandler) Unlike(c *gin.Context) {
	h.toggle(c, h.Service.Unlike)
}

func (h *InteractionHandler) Collect(c *gin.Context) {
	h.toggle(c, h.Service.Collect)
}

func (h *InteractionHandler) Uncollect(c *gin.Context) {
	h.toggle(c, h.Service.Uncollect)
}

func (h *InteractionHandler) LikeComment(c *gin.Context) {
	h.toggle(c, h.Service.LikeComment)
}

func (h *InteractionHandler) UnlikeComment(c *gin.Context) {
	h.toggle(c, h.Service.UnlikeComment)
}

// Rate sets or replaces the caller's score for a post
func (h *InteractionHandler) Rate(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: domain.ErrUnauthorized.Error()})
		return
	}
	var req request.Rate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	if err := h.Service.Rate(c.Request.Context(), uid, c.Param("id"), *req.Score); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// PostInteractions returns the post's counters, plus the caller's own state when known
func (h *InteractionHandler) PostInteractions(c *gin.Context) {
	ctx := c.Request.Context()
	postID := c.Param("id")

	agg, err := h.Service.Aggregates(ctx, domain.TargetPost, postID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	res := response.NewPostInteractionsFromDomain(&agg)

	if uid, ok := userID(c); ok {
		liked, err := h.Service.Status(ctx, uid, domain.KindLikePost, postID)
		if err != nil {
			c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
			return
		}
		collected, err := h.Service.Status(ctx, uid, domain.KindCollectPost, postID)
		if err != nil {
			c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
			return
		}
		score, rated, err := h.Service.MyRating(ctx, uid, postID)
		if err != nil {
			c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
			return
		}
		res.Liked = &liked
		res.Collected = &collected
		if rated {
			res.MyRating = &score
		}
	}
	c.JSON(http.StatusOK, res)
}

func (h *InteractionHandler) CommentInteractions(c *gin.Context) {
	ctx := c.Request.Context()
	commentID := c.Param("id")

	agg, err := h.Service.Aggregates(ctx, domain.TargetComment, commentID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	res := response.NewCommentInteractionsFromDomain(&agg)

	if uid, ok := userID(c); ok {
		liked, err := h.Service.Status(ctx, uid, domain.KindLikeComment, commentID)
		if err != nil {
			c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
			return
		}
		res.Liked = &liked
	}
	c.JSON(http.StatusOK, res)
}

// Replayer re-publishes dead-lettered events.
type Replayer interface {
	Replay(ctx context.Context, limit int) (int, error)
}

const (
	defaultReplayLimit = 100
	maxReplayLimit     = 1000
)

// ReplayDeadLetters handles POST /admin/dead-letters/replay?limit=N
func ReplayDeadLetters(r Replayer) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultReplayLimit)))
		if err != nil || limit <= 0 || limit > maxReplayLimit {
			c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
			return
		}
		n, err := r.Replay(c.Request.Context(), limit)
		if err != nil {
			logrus.Errorf("dead letter replay stopped after %d: %v", n, err)
			c.JSON(http.StatusInternalServerError, gin.H{"replayed": n, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"replayed": n})
	}
}

func userID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return 0, false
	}
	uid, ok := v.(int64)
	return uid, ok
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrBadParamInput), errors.Is(err, domain.ErrUnknownKind):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrCacheUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
