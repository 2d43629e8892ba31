package service

import (
	"BrainRotBGone/dao"
	"BrainRotBGone/models"
	"BrainRotBGone/pkg/log"
	"BrainRotBGone/types"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetUser(ctx context.Context, userID uint64) (*types.UserResponse, error)
	DeleteUser(ctx context.Context, userID uint64) error
}

type UserService struct {
	UsersRepo   *dao.Users
	PostDAO     *dao.PostDAO
	PostLikeDAO *dao.PostLikeDAO
}

func (s *UserService) GetUser(ctx context.Context, userID uint64) (*types.UserResponse, error) {
	user, err := s.UsersRepo.FindById(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return types.NewUserResponse(user), nil
}

// DeleteUser removes the account together with everything it owns. The steps
// run in one transaction, so a failure leaves nothing half deleted.
func (s *UserService) DeleteUser(ctx context.Context, userID uint64) error {
	exist, err := s.UsersRepo.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !exist {
		return ErrUserNotFound
	}

	var removedPosts int
	err = s.UsersRepo.Transaction(ctx, func(tx *gorm.DB) error {
		// 1. 用户的点赞, keeping the counters of other authors' posts in step
		var likedPostIDs []uint64
		if err := tx.Model(&models.PostLike{}).Where("user_id = ?", userID).Pluck("post_id", &likedPostIDs).Error; err != nil {
			return err
		}
		for _, postID := range likedPostIDs {
			removed, err := s.PostLikeDAO.DeleteByPostUser(tx, postID, userID)
			if err != nil {
				return err
			}
			if removed == 0 {
				continue
			}
			if err := s.PostDAO.AddLikes(tx, postID, -int(removed)); err != nil {
				return err
			}
		}

		// 2. 用户的评论
		if err := tx.Where("user_id = ?", userID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		// 3. 用户的帖子以及帖子下的评论和点赞
		var posts []*models.Post
		if err := tx.Where("user_id = ?", userID).Find(&posts).Error; err != nil {
			return err
		}
		for _, post := range posts {
			if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostLike{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Post{}, post.ID).Error; err != nil {
				return err
			}
		}
		removedPosts = len(posts)

		// 4. 用户本身
		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return fmt.Errorf("delete user %d: %w", userID, err)
	}

	log.L.Info("user deleted", zap.Uint64("user_id", userID), zap.Int("posts", removedPosts))
	return nil
}
