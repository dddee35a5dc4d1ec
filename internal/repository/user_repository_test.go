package repository

import (
	"context"
	"testing"

	"go_course_craft/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(email string) *model.User {
	return &model.User{
		UserID:       uuid.New(),
		Email:        email,
		FullName:     "テスト ユーザー",
		Emoji:        "🙂",
		PasswordHash: "$2a$10$dummyhashdummyhashdummyhashdummyhashdummyhashdummyha",
		Hearts:       5,
	}
}

func Test_gormUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormUserRepository()

	t.Run("正常系: ユーザーを作成できる", func(t *testing.T) {
		user := newTestUser("create@example.com")
		err := repo.Create(ctx, db, user)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, db, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, found.Email)
		assert.Equal(t, user.FullName, found.FullName)
		assert.Equal(t, 5, found.Hearts)
	})

	t.Run("異常系: Emailの重複はErrConflictになる", func(t *testing.T) {
		first := newTestUser("dup@example.com")
		require.NoError(t, repo.Create(ctx, db, first))

		second := newTestUser("dup@example.com")
		err := repo.Create(ctx, db, second)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
	})
}

func Test_gormUserRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormUserRepository()

	user := newTestUser("find@example.com")
	require.NoError(t, repo.Create(ctx, db, user))

	t.Run("正常系: Emailで取得できる", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, db, "find@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.UserID, found.UserID)
	})

	t.Run("異常系: 存在しないEmailはErrNotFound", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, db, "missing@example.com")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 大文字小文字が違うEmailでは取得できない", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, db, "FIND@example.com")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_gormUserRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormUserRepository()

	user := newTestUser("byid@example.com")
	require.NoError(t, repo.Create(ctx, db, user))

	t.Run("正常系: IDで取得できる", func(t *testing.T) {
		found, err := repo.FindByID(ctx, db, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, found.Email)
	})

	t.Run("異常系: 存在しないIDはErrNotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
