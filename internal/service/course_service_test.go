// internal/service/course_service_test.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go_course_craft/internal/model"
	"go_course_craft/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Test SaveCourse ---
func Test_courseService_SaveCourse(t *testing.T) {
	ctx := context.Background()
	db := setupServiceTestDB(t)
	cfg := testConfig()

	ownerID := uuid.New()
	name := "アリス"

	tests := []struct {
		name      string
		req       *model.SaveCourseRequest
		setupMock func(courseRepo *mocks.CourseRepository)
		wantErr   error
	}{
		{
			name: "正常系: コースを保存してIDが返る",
			req: &model.SaveCourseRequest{
				ID:              "course-1",
				Topic:           "ローマ帝国の歴史",
				Depth:           3,
				Icon:            "🏛️",
				Data:            json.RawMessage(`{"modules":[]}`),
				UserID:          &ownerID,
				GeneratedByName: &name,
			},
			setupMock: func(courseRepo *mocks.CourseRepository) {
				courseRepo.On("Upsert", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Course")).
					Run(func(args mock.Arguments) {
						course := args.Get(2).(*model.Course)
						assert.Equal(t, "course-1", course.ID)
						assert.Equal(t, "ローマ帝国の歴史", course.Topic)
						assert.Equal(t, `{"modules":[]}`, course.Data)
						require.NotNil(t, course.UserID)
						assert.Equal(t, ownerID, *course.UserID)
					}).Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: IDが空",
			req:  &model.SaveCourseRequest{ID: "", Topic: "topic"},
			setupMock: func(courseRepo *mocks.CourseRepository) {
				// リポジトリは呼ばれないはず
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "異常系: Topicが空",
			req:  &model.SaveCourseRequest{ID: "course-1", Topic: ""},
			setupMock: func(courseRepo *mocks.CourseRepository) {
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "異常系: UpsertでDBエラー",
			req:  &model.SaveCourseRequest{ID: "course-1", Topic: "topic"},
			setupMock: func(courseRepo *mocks.CourseRepository) {
				courseRepo.On("Upsert", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Course")).
					Return(errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courseRepo := new(mocks.CourseRepository)
			userRepo := new(mocks.UserRepository)
			if tt.setupMock != nil {
				tt.setupMock(courseRepo)
			}
			courseService := NewCourseService(db, courseRepo, userRepo, cfg)

			id, err := courseService.SaveCourse(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.req.ID, id)
			}

			courseRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

// --- Test GetCourse ---
func Test_courseService_GetCourse(t *testing.T) {
	ctx := context.Background()
	db := setupServiceTestDB(t)
	cfg := testConfig()

	ownerID := uuid.New()
	attribution := "アリス"

	tests := []struct {
		name      string
		courseID  string
		setupMock func(courseRepo *mocks.CourseRepository, userRepo *mocks.UserRepository)
		wantErr   error
		wantName  string
	}{
		{
			name:     "正常系: generated_by_nameが優先される",
			courseID: "course-1",
			setupMock: func(courseRepo *mocks.CourseRepository, userRepo *mocks.UserRepository) {
				courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "course-1").
					Return(&model.Course{
						ID:              "course-1",
						Topic:           "topic",
						UserID:          &ownerID,
						GeneratedByName: &attribution,
					}, nil).Once()
				// generated_by_name があるので userRepo は呼ばれない
			},
			wantName: "アリス",
		},
		{
			name:     "正常系: 名前がなければ所有者の名前を引く",
			courseID: "course-2",
			setupMock: func(courseRepo *mocks.CourseRepository, userRepo *mocks.UserRepository) {
				courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "course-2").
					Return(&model.Course{ID: "course-2", Topic: "topic", UserID: &ownerID}, nil).Once()
				userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), ownerID).
					Return(&model.User{UserID: ownerID, FullName: "ボブ"}, nil).Once()
			},
			wantName: "ボブ",
		},
		{
			name:     "正常系: 所有者が消えていても空文字で返る (弱い参照)",
			courseID: "course-3",
			setupMock: func(courseRepo *mocks.CourseRepository, userRepo *mocks.UserRepository) {
				courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "course-3").
					Return(&model.Course{ID: "course-3", Topic: "topic", UserID: &ownerID}, nil).Once()
				userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), ownerID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantName: "",
		},
		{
			name:     "正常系: 匿名コースは作成者名なし",
			courseID: "course-4",
			setupMock: func(courseRepo *mocks.CourseRepository, userRepo *mocks.UserRepository) {
				courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "course-4").
					Return(&model.Course{ID: "course-4", Topic: "topic"}, nil).Once()
			},
			wantName: "",
		},
		{
			name:     "異常系: 存在しないコースはErrNotFound",
			courseID: "missing",
			setupMock: func(courseRepo *mocks.CourseRepository, userRepo *mocks.UserRepository) {
				courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), "missing").
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courseRepo := new(mocks.CourseRepository)
			userRepo := new(mocks.UserRepository)
			if tt.setupMock != nil {
				tt.setupMock(courseRepo, userRepo)
			}
			courseService := NewCourseService(db, courseRepo, userRepo, cfg)

			resp, err := courseService.GetCourse(ctx, tt.courseID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.Equal(t, tt.courseID, resp.Course.ID)
				assert.Equal(t, tt.wantName, resp.GeneratedByName)
			}

			courseRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

// --- Test ListCourses ---
func Test_courseService_ListCourses(t *testing.T) {
	ctx := context.Background()
	db := setupServiceTestDB(t)
	cfg := testConfig()

	seed := []*model.Course{
		{ID: "c1", Topic: "topic 1", CreatedAt: time.Now()},
		{ID: "c2", Topic: "topic 2", CreatedAt: time.Now().Add(-time.Hour)},
	}

	t.Run("正常系: 一覧取得の前に期限切れ掃除が走る", func(t *testing.T) {
		courseRepo := new(mocks.CourseRepository)
		userRepo := new(mocks.UserRepository)

		courseRepo.On("DeleteExpired", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("time.Time")).
			Run(func(args mock.Arguments) {
				// cutoffはだいたい7日前のはず
				cutoff := args.Get(2).(time.Time)
				assert.WithinDuration(t, time.Now().Add(-cfg.App.CourseTTL), cutoff, 5*time.Second)
			}).Return(int64(2), nil).Once()
		courseRepo.On("List", ctx, mock.AnythingOfType("*gorm.DB"), "", cfg.App.CourseListLimit).
			Return(seed, nil).Once()

		courseService := NewCourseService(db, courseRepo, userRepo, cfg)
		courses, err := courseService.ListCourses(ctx, "", 0)

		require.NoError(t, err)
		require.Len(t, courses, 2)
		assert.Equal(t, "c1", courses[0].ID)

		courseRepo.AssertExpectations(t)
	})

	t.Run("正常系: 掃除が失敗しても一覧は返る", func(t *testing.T) {
		courseRepo := new(mocks.CourseRepository)
		userRepo := new(mocks.UserRepository)

		courseRepo.On("DeleteExpired", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("time.Time")).
			Return(int64(0), errors.New("sweep failed")).Once()
		courseRepo.On("List", ctx, mock.AnythingOfType("*gorm.DB"), "", cfg.App.CourseListLimit).
			Return(seed, nil).Once()

		courseService := NewCourseService(db, courseRepo, userRepo, cfg)
		courses, err := courseService.ListCourses(ctx, "", 0)

		require.NoError(t, err)
		assert.Len(t, courses, 2)

		courseRepo.AssertExpectations(t)
	})

	t.Run("正常系: 上限を超えるlimitはデフォルトに丸められる", func(t *testing.T) {
		courseRepo := new(mocks.CourseRepository)
		userRepo := new(mocks.UserRepository)

		courseRepo.On("DeleteExpired", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("time.Time")).
			Return(int64(0), nil).Once()
		// limit=10000 はそのまま使われず上限に丸められる
		courseRepo.On("List", ctx, mock.AnythingOfType("*gorm.DB"), "", cfg.App.CourseListLimit).
			Return([]*model.Course{}, nil).Once()

		courseService := NewCourseService(db, courseRepo, userRepo, cfg)
		courses, err := courseService.ListCourses(ctx, "", 10000)

		require.NoError(t, err)
		assert.Empty(t, courses)

		courseRepo.AssertExpectations(t)
	})

	t.Run("正常系: トピックフィルタと有効なlimitはそのまま渡る", func(t *testing.T) {
		courseRepo := new(mocks.CourseRepository)
		userRepo := new(mocks.UserRepository)

		courseRepo.On("DeleteExpired", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("time.Time")).
			Return(int64(0), nil).Once()
		courseRepo.On("List", ctx, mock.AnythingOfType("*gorm.DB"), "history", 10).
			Return([]*model.Course{seed[0]}, nil).Once()

		courseService := NewCourseService(db, courseRepo, userRepo, cfg)
		courses, err := courseService.ListCourses(ctx, "history", 10)

		require.NoError(t, err)
		assert.Len(t, courses, 1)

		courseRepo.AssertExpectations(t)
	})

	t.Run("異常系: ListでDBエラー", func(t *testing.T) {
		courseRepo := new(mocks.CourseRepository)
		userRepo := new(mocks.UserRepository)

		courseRepo.On("DeleteExpired", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("time.Time")).
			Return(int64(0), nil).Once()
		courseRepo.On("List", ctx, mock.AnythingOfType("*gorm.DB"), "", cfg.App.CourseListLimit).
			Return(nil, errors.New("db error")).Once()

		courseService := NewCourseService(db, courseRepo, userRepo, cfg)
		courses, err := courseService.ListCourses(ctx, "", 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInternalServer)
		assert.Nil(t, courses)

		courseRepo.AssertExpectations(t)
	})
}
