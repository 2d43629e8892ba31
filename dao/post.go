package dao

import (
	"BrainRotBGone/models"
	"context"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// ListAll 全部帖子, newest first.
func (d *PostDAO) ListAll(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Order("timestamp DESC").
		Order("id DESC").
		Find(&posts).Error
	return posts, err
}

// ListByUser 某个用户的帖子, newest first.
func (d *PostDAO) ListByUser(ctx context.Context, userID uint64) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Order("id DESC").
		Find(&posts).Error
	return posts, err
}

// AddLikes adjusts the counter in place with an SQL expression.
func (d *PostDAO) AddLikes(tx *gorm.DB, postID uint64, delta int) error {
	return tx.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("likes", gorm.Expr("likes + ?", delta)).
		Error
}
