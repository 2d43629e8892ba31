package models

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_posts_user_id" json:"user_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	Likes     int       `gorm:"column:likes;not null;default:0" json:"likes"`
	Timestamp time.Time `gorm:"column:timestamp;not null;index:idx_posts_timestamp" json:"timestamp"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now().UTC()
	}
	return nil
}
