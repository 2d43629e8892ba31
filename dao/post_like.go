package dao

import (
	"BrainRotBGone/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostLikeDAO struct {
	Repo[models.PostLike]
}

func NewPostLikeDAO(db *gorm.DB) *PostLikeDAO {
	return &PostLikeDAO{Repo: NewRepo[models.PostLike](db)}
}

// GetByPostUser 查询指定用户对指定帖子的点赞记录, nil when absent.
func (d *PostLikeDAO) GetByPostUser(tx *gorm.DB, postID, userID uint64) (*models.PostLike, error) {
	var item models.PostLike
	err := tx.Where("post_id = ? AND user_id = ?", postID, userID).Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// DeleteByPostUser 删除点赞记录, returning how many rows were really removed.
// A concurrent unlike may have removed the row already.
func (d *PostLikeDAO) DeleteByPostUser(tx *gorm.DB, postID, userID uint64) (int64, error) {
	result := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.PostLike{})
	return result.RowsAffected, result.Error
}

// BatchCheckLiked 批量检查点赞状态
func (d *PostLikeDAO) BatchCheckLiked(ctx context.Context, postIDs []uint64, userID uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool)
	if len(postIDs) == 0 {
		return result, nil
	}

	var likes []*models.PostLike
	err := d.Db.WithContext(ctx).
		Where("post_id IN ? AND user_id = ?", postIDs, userID).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}

	for _, like := range likes {
		result[like.PostID] = true
	}
	return result, nil
}

func (d *PostLikeDAO) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	return d.FindCount(ctx, "post_id = ?", postID)
}
