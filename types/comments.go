package types

import "time"

type CreateCommentRequest struct {
	Content *string `json:"content" binding:"required"`
}

type CommentResponse struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
