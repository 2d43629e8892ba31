package service

import (
	"BrainRotBGone/dao"
	"BrainRotBGone/models"
	"BrainRotBGone/types"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Login(ctx context.Context, req *types.LoginRequest) (*types.UserResponse, error)
	Signup(ctx context.Context, req *types.SignupRequest) (*types.UserResponse, error)
}

type AuthService struct {
	UsersRepo *dao.Users
}

// Login 邮箱和密码必须完全一致
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.UserResponse, error) {
	user, err := s.UsersRepo.FindByCredentials(ctx, *req.Email, *req.Password)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user by credentials: %w", err)
	}
	return types.NewUserResponse(user), nil
}

// Signup 注册用户
func (s *AuthService) Signup(ctx context.Context, req *types.SignupRequest) (*types.UserResponse, error) {
	username, email := *req.Username, *req.Email
	if err := s.checkTaken(ctx, email, username); err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  username,
		Email:     email,
		Password:  *req.Password,
		Bio:       models.DefaultBio,
		Followers: 0,
		Following: 0,
	}
	err := s.UsersRepo.Create(ctx, user)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost a race with a concurrent signup, report which field collided
		if err := s.checkTaken(ctx, email, username); err != nil {
			return nil, err
		}
		return nil, ErrUsernameExists
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return types.NewUserResponse(user), nil
}

func (s *AuthService) checkTaken(ctx context.Context, email, username string) error {
	exist, err := s.UsersRepo.IsEmailExist(ctx, email)
	if err != nil {
		return err
	}
	if exist {
		return ErrEmailExists
	}

	exist, err = s.UsersRepo.IsUsernameExist(ctx, username)
	if err != nil {
		return err
	}
	if exist {
		return ErrUsernameExists
	}
	return nil
}
