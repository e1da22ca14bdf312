package request

// Rate is the body of PUT /posts/:id/rating. Range is checked by the usecase.
type Rate struct {
	Score *float64 `json:"score" binding:"required"`
}
