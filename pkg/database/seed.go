package database

import (
	"BrainRotBGone/models"
	"BrainRotBGone/pkg/log"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Seed inserts the demo users, posts and comment when the users table is
// empty. It reports whether anything was written.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	now := time.Now().UTC()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		john := &models.User{
			Username:  "john_doe",
			Email:     "john@example.com",
			Password:  "password123",
			Bio:       "Quality content creator",
			Followers: 234,
			Following: 189,
		}
		jane := &models.User{
			Username:  "jane_smith",
			Email:     "jane@example.com",
			Password:  "pass456",
			Bio:       "Tech enthusiast | Coffee lover",
			Followers: 567,
			Following: 234,
		}
		if err := tx.Create(john).Error; err != nil {
			return err
		}
		if err := tx.Create(jane).Error; err != nil {
			return err
		}

		philosophy := &models.Post{
			UserID:    john.ID,
			Content:   "Just finished reading a great book on philosophy. Highly recommend!",
			Likes:     45,
			Timestamp: now.Add(-1 * time.Hour),
		}
		sunset := &models.Post{
			UserID:    jane.ID,
			Content:   "Beautiful sunset today. Nature is amazing! 🌅",
			Likes:     89,
			Timestamp: now.Add(-2 * time.Hour),
		}
		if err := tx.Create(philosophy).Error; err != nil {
			return err
		}
		if err := tx.Create(sunset).Error; err != nil {
			return err
		}

		return tx.Create(&models.Comment{
			PostID:    philosophy.ID,
			UserID:    jane.ID,
			Content:   "Which book was it? I love philosophy!",
			Timestamp: now.Add(-50 * time.Minute),
		}).Error
	})
	if err != nil {
		return false, fmt.Errorf("seed default data: %w", err)
	}

	log.L.Info("default data initialized")
	return true, nil
}
