package models

// PostLike 点赞记录
// 唯一键: post_id + user_id, so a pair can never be counted twice.
type PostLike struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID uint64 `gorm:"column:post_id;not null;uniqueIndex:idx_post_like_post_user,priority:1" json:"post_id"`
	UserID uint64 `gorm:"column:user_id;not null;uniqueIndex:idx_post_like_post_user,priority:2;index:idx_post_like_user_id" json:"user_id"`
}

func (PostLike) TableName() string {
	return "post_likes"
}
