package dao

import (
	"BrainRotBGone/models"
	"context"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// BatchGetByPostIDs 批量获取评论, grouped by post and oldest first.
func (d *Comment) BatchGetByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64][]*models.Comment, error) {
	result := make(map[uint64][]*models.Comment)
	if len(postIDs) == 0 {
		return result, nil
	}

	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("post_id IN ?", postIDs).
		Order("timestamp ASC").
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	for _, comment := range comments {
		result[comment.PostID] = append(result[comment.PostID], comment)
	}
	return result, nil
}

func (d *Comment) DeleteByID(ctx context.Context, commentID uint64) error {
	return d.Db.WithContext(ctx).Delete(&models.Comment{}, commentID).Error
}
