package dao

import (
	"BrainRotBGone/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByCredentials 邮箱 + 明文密码查询
func (u *Users) FindByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "email = ? AND password = ?", email, password)
}

func (u *Users) IsEmailExist(ctx context.Context, email string) (bool, error) {
	return u.Repo.IsExist(ctx, "email = ?", email)
}

func (u *Users) IsUsernameExist(ctx context.Context, username string) (bool, error) {
	return u.Repo.IsExist(ctx, "username = ?", username)
}

// BatchGetUsernames returns id -> username for the ids that still exist.
func (u *Users) BatchGetUsernames(ctx context.Context, ids []uint64) (map[uint64]string, error) {
	result := make(map[uint64]string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var users []*models.User
	err := u.Db.WithContext(ctx).
		Select("id", "username").
		Where("id IN ?", ids).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("dao.Users.BatchGetUsernames error: %w", err)
	}

	for _, user := range users {
		result[user.ID] = user.Username
	}
	return result, nil
}
