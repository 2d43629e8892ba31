package dao

import (
	"BrainRotBGone/config"
	"BrainRotBGone/models"
	"BrainRotBGone/pkg/database"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewDB(&config.Database{Driver: config.DriverSQLite, Path: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	return db
}

func TestUsers_LookupsAndBatch(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUsers(db)

	alice := &models.User{Username: "alice", Email: "alice@example.com", Password: "pw", Bio: models.DefaultBio}
	bob := &models.User{Username: "bob", Email: "bob@example.com", Password: "pw2", Bio: models.DefaultBio}
	require.NoError(t, users.Create(ctx, alice))
	require.NoError(t, users.Create(ctx, bob))

	got, err := users.FindByCredentials(ctx, "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	_, err = users.FindByCredentials(ctx, "alice@example.com", "PW")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	exist, err := users.IsEmailExist(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.True(t, exist)

	exist, err = users.IsUsernameExist(ctx, "carol")
	require.NoError(t, err)
	assert.False(t, exist)

	names, err := users.BatchGetUsernames(ctx, []uint64{alice.ID, bob.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, map[uint64]string{alice.ID: "alice", bob.ID: "bob"}, names)
}

func TestPostDAO_OrderingAndLikes(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	posts := NewPostDAO(db)

	now := time.Now().UTC()
	older := &models.Post{UserID: 1, Content: "older", Timestamp: now.Add(-time.Hour)}
	newer := &models.Post{UserID: 2, Content: "newer", Timestamp: now}
	require.NoError(t, posts.Create(ctx, older))
	require.NoError(t, posts.Create(ctx, newer))

	all, err := posts.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "newer", all[0].Content)
	assert.Equal(t, "older", all[1].Content)

	mine, err := posts.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, older.ID, mine[0].ID)

	require.NoError(t, posts.AddLikes(db, older.ID, 1))
	require.NoError(t, posts.AddLikes(db, older.ID, 1))
	require.NoError(t, posts.AddLikes(db, older.ID, -1))
	got, err := posts.FindById(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Likes)
}

func TestComment_BatchGetByPostIDs(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	comments := NewComment(db)

	now := time.Now().UTC()
	require.NoError(t, comments.Create(ctx, &models.Comment{PostID: 1, UserID: 1, Content: "second", Timestamp: now}))
	require.NoError(t, comments.Create(ctx, &models.Comment{PostID: 1, UserID: 2, Content: "first", Timestamp: now.Add(-time.Minute)}))
	require.NoError(t, comments.Create(ctx, &models.Comment{PostID: 2, UserID: 1, Content: "other"}))

	grouped, err := comments.BatchGetByPostIDs(ctx, []uint64{1, 3})
	require.NoError(t, err)
	require.Len(t, grouped[1], 2)
	assert.Equal(t, "first", grouped[1][0].Content)
	assert.Equal(t, "second", grouped[1][1].Content)
	assert.Empty(t, grouped[3])
	assert.NotContains(t, grouped, uint64(2))
}

func TestPostLikeDAO_UniquePair(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	likes := NewPostLikeDAO(db)

	require.NoError(t, likes.Create(ctx, &models.PostLike{PostID: 1, UserID: 7}))
	assert.Error(t, likes.Create(ctx, &models.PostLike{PostID: 1, UserID: 7}))

	got, err := likes.GetByPostUser(db.WithContext(ctx), 1, 7)
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = likes.GetByPostUser(db.WithContext(ctx), 1, 8)
	require.NoError(t, err)
	assert.Nil(t, got)

	liked, err := likes.BatchCheckLiked(ctx, []uint64{1, 2}, 7)
	require.NoError(t, err)
	assert.True(t, liked[1])
	assert.False(t, liked[2])

	count, err := likes.CountByPost(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
