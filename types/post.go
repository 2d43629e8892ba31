package types

import "time"

// UnknownUsername stands in for an author row that no longer exists.
const UnknownUsername = "Unknown"

type CreatePostRequest struct {
	Content *string `json:"content" binding:"required"`
}

type PostResponse struct {
	ID        uint64             `json:"id"`
	UserID    uint64             `json:"user_id"`
	Username  string             `json:"username"`
	Content   string             `json:"content"`
	Likes     int                `json:"likes"`
	Timestamp time.Time          `json:"timestamp"`
	Comments  []*CommentResponse `json:"comments"`
	IsLiked   bool               `json:"is_liked"`
}

type ToggleLikeResponse struct {
	Likes   int  `json:"likes"`
	IsLiked bool `json:"is_liked"`
}
