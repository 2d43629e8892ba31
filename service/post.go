package service

import (
	"BrainRotBGone/dao"
	"BrainRotBGone/models"
	"BrainRotBGone/pkg/log"
	"BrainRotBGone/types"
	"context"
	"errors"
	"fmt"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	ListPosts(ctx context.Context, viewerID uint64) ([]*types.PostResponse, error)
	ListUserPosts(ctx context.Context, userID, viewerID uint64) ([]*types.PostResponse, error)
	CreatePost(ctx context.Context, userID uint64, req *types.CreatePostRequest) (*types.PostResponse, error)
	DeletePost(ctx context.Context, postID, userID uint64) error
}

type PostService struct {
	UsersRepo   *dao.Users
	PostDAO     *dao.PostDAO
	CommentDAO  *dao.Comment
	PostLikeDAO *dao.PostLikeDAO
}

// ListPosts 全部帖子. viewerID 0 means nobody is looking, so nothing is liked.
func (s *PostService) ListPosts(ctx context.Context, viewerID uint64) ([]*types.PostResponse, error) {
	posts, err := s.PostDAO.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return s.buildPostResponses(ctx, posts, viewerID)
}

func (s *PostService) ListUserPosts(ctx context.Context, userID, viewerID uint64) ([]*types.PostResponse, error) {
	exist, err := s.UsersRepo.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exist {
		return nil, ErrUserNotFound
	}

	posts, err := s.PostDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user posts: %w", err)
	}
	return s.buildPostResponses(ctx, posts, viewerID)
}

func (s *PostService) CreatePost(ctx context.Context, userID uint64, req *types.CreatePostRequest) (*types.PostResponse, error) {
	if term, ok := FlaggedTerm(*req.Content); ok {
		log.L.Info("post rejected", zap.Uint64("user_id", userID), zap.String("term", term))
		return nil, ErrBrainrot
	}

	user, err := s.UsersRepo.FindById(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	post := &models.Post{
		UserID:  userID,
		Content: *req.Content,
		Likes:   0,
	}
	if err := s.PostDAO.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	return &types.PostResponse{
		ID:        post.ID,
		UserID:    post.UserID,
		Username:  user.Username,
		Content:   post.Content,
		Likes:     post.Likes,
		Timestamp: post.Timestamp,
		Comments:  make([]*types.CommentResponse, 0),
		IsLiked:   false,
	}, nil
}

// DeletePost 只有作者可以删除. Comments and likes on the post go with it.
func (s *PostService) DeletePost(ctx context.Context, postID, userID uint64) error {
	post, err := s.PostDAO.FindById(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return fmt.Errorf("find post: %w", err)
	}
	if post.UserID != userID {
		return ErrForbiddenPost
	}

	err = s.PostDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, postID).Error
	})
	if err != nil {
		return fmt.Errorf("delete post %d: %w", postID, err)
	}
	return nil
}

func (s *PostService) buildPostResponses(ctx context.Context, posts []*models.Post, viewerID uint64) ([]*types.PostResponse, error) {
	result := make([]*types.PostResponse, 0, len(posts))
	if len(posts) == 0 {
		return result, nil
	}

	postIDs := make([]uint64, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	// 并发获取评论和点赞状态
	var (
		commentMap map[uint64][]*models.Comment
		likedMap   map[uint64]bool
		commentErr error
		likeErr    error
		wg         conc.WaitGroup
	)
	wg.Go(func() {
		commentMap, commentErr = s.CommentDAO.BatchGetByPostIDs(ctx, postIDs)
	})
	if viewerID > 0 {
		wg.Go(func() {
			likedMap, likeErr = s.PostLikeDAO.BatchCheckLiked(ctx, postIDs, viewerID)
		})
	}
	wg.Wait()

	if commentErr != nil {
		return nil, fmt.Errorf("load comments: %w", commentErr)
	}
	if likeErr != nil {
		return nil, fmt.Errorf("load likes: %w", likeErr)
	}

	userIDs := make([]uint64, 0, len(posts))
	for _, post := range posts {
		userIDs = append(userIDs, post.UserID)
		for _, comment := range commentMap[post.ID] {
			userIDs = append(userIDs, comment.UserID)
		}
	}
	usernames, err := s.UsersRepo.BatchGetUsernames(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		comments := make([]*types.CommentResponse, 0, len(commentMap[post.ID]))
		for _, comment := range commentMap[post.ID] {
			comments = append(comments, newCommentResponse(comment, usernameOr(usernames, comment.UserID)))
		}

		result = append(result, &types.PostResponse{
			ID:        post.ID,
			UserID:    post.UserID,
			Username:  usernameOr(usernames, post.UserID),
			Content:   post.Content,
			Likes:     post.Likes,
			Timestamp: post.Timestamp,
			Comments:  comments,
			IsLiked:   likedMap[post.ID],
		})
	}

	return result, nil
}

func usernameOr(usernames map[uint64]string, userID uint64) string {
	if name, ok := usernames[userID]; ok {
		return name
	}
	return types.UnknownUsername
}
