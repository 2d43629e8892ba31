package service

import (
	"BrainRotBGone/dao"
	"BrainRotBGone/models"
	"BrainRotBGone/types"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	likeLockKey = "lock:post:like:%d:%d"
	likeLockTTL = 5 * time.Second
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	ToggleLike(ctx context.Context, postID, userID uint64) (*types.ToggleLikeResponse, error)
}

type LikeService struct {
	PostDAO     *dao.PostDAO
	PostLikeDAO *dao.PostLikeDAO
	// Redis is optional. When set, toggles for the same pair are serialised
	// across processes.
	Redis *redis.Client
}

// ToggleLike likes the post if the user has not liked it yet, otherwise
// removes the like. Row and counter change in the same transaction.
func (s *LikeService) ToggleLike(ctx context.Context, postID, userID uint64) (*types.ToggleLikeResponse, error) {
	if s.Redis != nil {
		lockKey := fmt.Sprintf(likeLockKey, postID, userID)
		lock, err := s.Redis.SetNX(ctx, lockKey, 1, likeLockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire like lock: %w", err)
		}
		if !lock {
			return nil, ErrLikeBusy
		}
		defer s.Redis.Del(context.WithoutCancel(ctx), lockKey)
	}

	resp := &types.ToggleLikeResponse{}
	err := s.PostDAO.Transaction(ctx, func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id").First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		existing, err := s.PostLikeDAO.GetByPostUser(tx, postID, userID)
		if err != nil {
			return err
		}

		if existing != nil {
			removed, err := s.PostLikeDAO.DeleteByPostUser(tx, postID, userID)
			if err != nil {
				return err
			}
			// 0 rows: another unlike got there first and already decremented
			if removed > 0 {
				if err := s.PostDAO.AddLikes(tx, postID, -int(removed)); err != nil {
					return err
				}
			}
			resp.IsLiked = false
		} else {
			if err := tx.Create(&models.PostLike{PostID: postID, UserID: userID}).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrLikeBusy
				}
				return err
			}
			if err := s.PostDAO.AddLikes(tx, postID, 1); err != nil {
				return err
			}
			resp.IsLiked = true
		}

		var updated models.Post
		if err := tx.Select("likes").First(&updated, postID).Error; err != nil {
			return err
		}
		resp.Likes = updated.Likes
		return nil
	})
	if errors.Is(err, ErrPostNotFound) || errors.Is(err, ErrLikeBusy) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("toggle like: %w", err)
	}
	return resp, nil
}
