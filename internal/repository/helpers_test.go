package repository

import (
	"fmt"
	"testing"

	"go_course_craft/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリSQLiteのDBを作ります。
// DSNに一意な名前をつけて、テスト間でDBが共有されないようにする。
// TranslateError によりドライバの一意制約違反が gorm.ErrDuplicatedKey に変換される。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database for testing")

	err = db.AutoMigrate(&model.User{}, &model.Course{}, &model.CourseProgress{})
	require.NoError(t, err, "failed to migrate database for testing")

	return db
}
