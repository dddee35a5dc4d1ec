// internal/repository/progress_repository.go
//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_course_craft/internal/middleware"
	"go_course_craft/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	// Upsert は (user_id, course_id) をキーに進捗を保存します。
	// 既存行がある場合は progress_data を丸ごと置き換える (部分マージはしない)。
	Upsert(ctx context.Context, db *gorm.DB, progress *model.CourseProgress) error
	FindByUserAndCourse(ctx context.Context, db *gorm.DB, userID uuid.UUID, courseID string) (*model.CourseProgress, error)
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.CourseProgress, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Upsert(ctx context.Context, db *gorm.DB, progress *model.CourseProgress) error {
	logger := middleware.GetLogger(ctx)

	// 複合ユニークキーでのON CONFLICT。同じ組への同時書き込みは
	// ストア側の原子性により最後の書き込みが勝つ (行の重複は起きない)。
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"progress_data": progress.ProgressData,
			"updated_at":    time.Now(),
		}),
	}).Create(progress)

	if result.Error != nil {
		logger.Error(
			"Error upserting progress in DB",
			"error", result.Error,
			"user_id", progress.UserID.String(),
			"course_id", progress.CourseID,
		)
		return fmt.Errorf("gormProgressRepository.Upsert: %w", result.Error)
	}

	return nil
}

func (r *gormProgressRepository) FindByUserAndCourse(ctx context.Context, db *gorm.DB, userID uuid.UUID, courseID string) (*model.CourseProgress, error) {
	var progress model.CourseProgress

	result := db.WithContext(ctx).Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormProgressRepository.FindByUserAndCourse: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.CourseProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progresses []*model.CourseProgress

	result := db.WithContext(ctx).Where("user_id = ?", userID).Find(&progresses)
	if result.Error != nil {
		logger.Error(
			"Error listing progress in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.ListByUser: %w", result.Error)
	}
	return progresses, nil
}
