//go:generate mockery --name CourseRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_course_craft/internal/middleware"
	"go_course_craft/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourseRepository interface {
	// Upsert は単一のINSERT ... ON CONFLICT文でコースを保存します。
	// 衝突解決はストアのキー単位の原子性に依存する (同一IDへの同時書き込みでも行は重複しない)。
	Upsert(ctx context.Context, db *gorm.DB, course *model.Course) error
	FindByID(ctx context.Context, db *gorm.DB, id string) (*model.Course, error)
	List(ctx context.Context, db *gorm.DB, topicFilter string, limit int) ([]*model.Course, error)
	// DeleteExpired は createdAt が cutoff より前の行を削除します (期限切れ掃除)
	DeleteExpired(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error)
}

type gormCourseRepository struct{}

func NewGormCourseRepository() CourseRepository {
	return &gormCourseRepository{}
}

func (r *gormCourseRepository) Upsert(ctx context.Context, db *gorm.DB, course *model.Course) error {
	logger := middleware.GetLogger(ctx)

	// マージ規則:
	//   topic / depth / icon / data は常に新しい値で上書き
	//   user_id / generated_by_name / is_public は新しい値がNULLでない場合のみ上書き
	//   (匿名での再保存が既存の作成者情報を消さないようにするため)
	//   created_at は初回INSERTの値を維持、updated_at は常に更新
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"topic":             course.Topic,
			"depth":             course.Depth,
			"icon":              course.Icon,
			"data":              course.Data,
			"user_id":           gorm.Expr("COALESCE(excluded.user_id, courses.user_id)"),
			"generated_by_name": gorm.Expr("COALESCE(excluded.generated_by_name, courses.generated_by_name)"),
			"is_public":         gorm.Expr("COALESCE(excluded.is_public, courses.is_public)"),
			"updated_at":        time.Now(),
		}),
	}).Create(course)

	if result.Error != nil {
		logger.Error(
			"Error upserting course in DB",
			"error", result.Error,
			"course_id", course.ID,
		)
		return fmt.Errorf("gormCourseRepository.Upsert: %w", result.Error)
	}

	return nil
}

func (r *gormCourseRepository) FindByID(ctx context.Context, db *gorm.DB, id string) (*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var course model.Course

	result := db.WithContext(ctx).Where("id = ?", id).First(&course)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding course by ID in DB",
			"error", result.Error,
			"course_id", id,
		)
		return nil, fmt.Errorf("gormCourseRepository.FindByID: %w", result.Error)
	}
	return &course, nil
}

func (r *gormCourseRepository) List(ctx context.Context, db *gorm.DB, topicFilter string, limit int) ([]*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var courses []*model.Course

	query := db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if topicFilter != "" {
		query = query.Where("topic LIKE ?", "%"+topicFilter+"%")
	}

	result := query.Find(&courses)
	if result.Error != nil {
		logger.Error(
			"Error listing courses in DB",
			"error", result.Error,
			"topic_filter", topicFilter,
		)
		return nil, fmt.Errorf("gormCourseRepository.List: %w", result.Error)
	}
	return courses, nil
}

func (r *gormCourseRepository) DeleteExpired(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.Course{})
	if result.Error != nil {
		return 0, fmt.Errorf("gormCourseRepository.DeleteExpired: %w", result.Error)
	}
	return result.RowsAffected, nil
}
