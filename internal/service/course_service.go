package service

import (
	"context"
	"errors"
	"time"

	"go_course_craft/internal/config"
	"go_course_craft/internal/middleware"
	"go_course_craft/internal/model"
	"go_course_craft/internal/repository"

	"gorm.io/gorm"
)

type CourseService interface {
	SaveCourse(ctx context.Context, req *model.SaveCourseRequest) (string, error)
	GetCourse(ctx context.Context, id string) (*model.CourseDetailResponse, error)
	ListCourses(ctx context.Context, topicFilter string, limit int) ([]*model.CourseResponse, error)
}

type courseService struct {
	db         *gorm.DB
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
	cfg        *config.Config
}

func NewCourseService(db *gorm.DB, courseRepo repository.CourseRepository, userRepo repository.UserRepository, cfg *config.Config) CourseService {
	return &courseService{
		db:         db,
		courseRepo: courseRepo,
		userRepo:   userRepo,
		cfg:        cfg,
	}
}

// SaveCourse はコースを保存します。同じIDへの再送信は複製ではなくマージになる。
func (s *courseService) SaveCourse(ctx context.Context, req *model.SaveCourseRequest) (string, error) {
	logger := middleware.GetLogger(ctx)

	if req.ID == "" {
		return "", model.NewAppError("VALIDATION_ERROR", "コースIDは必須です。", "id", model.ErrInvalidInput)
	}
	if req.Topic == "" {
		return "", model.NewAppError("VALIDATION_ERROR", "トピックは必須です。", "topic", model.ErrInvalidInput)
	}

	course := &model.Course{
		ID:              req.ID,
		Topic:           req.Topic,
		Depth:           req.Depth,
		Icon:            req.Icon,
		Data:            string(req.Data),
		UserID:          req.UserID,
		GeneratedByName: req.GeneratedByName,
		IsPublic:        req.IsPublic,
	}

	if err := s.courseRepo.Upsert(ctx, s.db, course); err != nil {
		logger.Error("Failed to upsert course", "error", err, "course_id", req.ID)
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "コースの保存に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Course saved", "course_id", req.ID)
	return req.ID, nil
}

// GetCourse は単一コースを取得します。
// 期限切れ掃除は一覧取得時にのみ行うため、掃除前であれば期限切れのコースもここでは返る。
func (s *courseService) GetCourse(ctx context.Context, id string) (*model.CourseDetailResponse, error) {
	logger := middleware.GetLogger(ctx)

	course, err := s.courseRepo.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("COURSE_NOT_FOUND", "コースが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error finding course by ID", "error", err, "course_id", id)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", model.ErrInternalServer)
	}

	return &model.CourseDetailResponse{
		Course:          model.NewCourseResponse(course),
		GeneratedByName: s.resolveAttribution(ctx, course),
	}, nil
}

// ListCourses は期限切れ掃除を行ってからコース一覧を返します
func (s *courseService) ListCourses(ctx context.Context, topicFilter string, limit int) ([]*model.CourseResponse, error) {
	logger := middleware.GetLogger(ctx)

	if limit <= 0 || limit > s.cfg.App.CourseListLimit {
		limit = s.cfg.App.CourseListLimit
	}

	// 読み取り前のベストエフォート掃除。
	// 掃除の失敗でリクエスト自体を失敗させない (エラーはログに残して握りつぶす)。
	cutoff := time.Now().Add(-s.cfg.App.CourseTTL)
	if deleted, err := s.courseRepo.DeleteExpired(ctx, s.db, cutoff); err != nil {
		logger.Warn("Course expiry sweep failed, continuing with read", "error", err)
	} else if deleted > 0 {
		logger.Info("Expired courses swept", "deleted", deleted)
	}

	courses, err := s.courseRepo.List(ctx, s.db, topicFilter, limit)
	if err != nil {
		logger.Error("Failed to list courses", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コース一覧の取得に失敗しました。", "", model.ErrInternalServer)
	}

	responses := make([]*model.CourseResponse, 0, len(courses))
	for _, c := range courses {
		responses = append(responses, model.NewCourseResponse(c))
	}
	return responses, nil
}

// resolveAttribution は表示用の作成者名を解決します。
// generated_by_name があればそれを優先し、なければ所有者の名前を引く。
// 所有者は弱い参照なので、見つからなくてもエラーにはしない。
func (s *courseService) resolveAttribution(ctx context.Context, course *model.Course) string {
	if course.GeneratedByName != nil && *course.GeneratedByName != "" {
		return *course.GeneratedByName
	}
	if course.UserID == nil {
		return ""
	}

	logger := middleware.GetLogger(ctx)
	owner, err := s.userRepo.FindByID(ctx, s.db, *course.UserID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Warn("Failed to resolve course owner for attribution", "error", err, "course_id", course.ID)
		}
		return ""
	}
	return owner.FullName
}
