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

var _ ICommentsService = (*CommentsService)(nil)

type ICommentsService interface {
	CreateComment(ctx context.Context, postID, userID uint64, req *types.CreateCommentRequest) (*types.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID, userID uint64) error
}

type CommentsService struct {
	UsersRepo  *dao.Users
	PostDAO    *dao.PostDAO
	CommentDAO *dao.Comment
}

func (s *CommentsService) CreateComment(ctx context.Context, postID, userID uint64, req *types.CreateCommentRequest) (*types.CommentResponse, error) {
	if term, ok := FlaggedTerm(*req.Content); ok {
		log.L.Info("comment rejected", zap.Uint64("user_id", userID), zap.String("term", term))
		return nil, ErrBrainrot
	}

	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return nil, fmt.Errorf("check post: %w", err)
	}
	if !exist {
		return nil, ErrPostNotFound
	}

	user, err := s.UsersRepo.FindById(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: *req.Content,
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return newCommentResponse(comment, user.Username), nil
}

func (s *CommentsService) DeleteComment(ctx context.Context, commentID, userID uint64) error {
	comment, err := s.CommentDAO.FindById(ctx, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCommentNotFound
	}
	if err != nil {
		return fmt.Errorf("find comment: %w", err)
	}
	if comment.UserID != userID {
		return ErrForbiddenComment
	}

	if err := s.CommentDAO.DeleteByID(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment %d: %w", commentID, err)
	}
	return nil
}

func newCommentResponse(comment *models.Comment, username string) *types.CommentResponse {
	return &types.CommentResponse{
		ID:        comment.ID,
		UserID:    comment.UserID,
		Username:  username,
		Content:   comment.Content,
		Timestamp: comment.Timestamp,
	}
}
