package database

import (
	"BrainRotBGone/config"
	"BrainRotBGone/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_SQLiteMigrates(t *testing.T) {
	db, err := NewDB(&config.Database{Driver: config.DriverSQLite, Path: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)

	for _, table := range []interface{}{&models.User{}, &models.Post{}, &models.Comment{}, &models.PostLike{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
	assert.True(t, db.Migrator().HasIndex(&models.PostLike{}, "idx_post_like_post_user"))
}

func TestNewDB_UnknownDriver(t *testing.T) {
	_, err := NewDB(&config.Database{Driver: "oracle"})
	assert.Error(t, err)
}

func TestSeed_OnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	db, err := NewDB(&config.Database{Driver: config.DriverSQLite, Path: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)

	seeded, err := Seed(ctx, db)
	require.NoError(t, err)
	assert.True(t, seeded)

	var users, posts, comments int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	assert.EqualValues(t, 2, users)
	assert.EqualValues(t, 2, posts)
	assert.EqualValues(t, 1, comments)

	var john models.User
	require.NoError(t, db.Where("username = ?", "john_doe").First(&john).Error)
	assert.Equal(t, "password123", john.Password)
	assert.Equal(t, 234, john.Followers)

	seeded, err = Seed(ctx, db)
	require.NoError(t, err)
	assert.False(t, seeded)
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 2, users)
}
