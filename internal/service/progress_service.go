package service

import (
	"context"
	"encoding/json"
	"errors"

	"go_course_craft/internal/middleware"
	"go_course_craft/internal/model"
	"go_course_craft/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressService interface {
	SyncProgress(ctx context.Context, userID uuid.UUID, courseID string, progressData json.RawMessage) error
	GetProgress(ctx context.Context, userID uuid.UUID, courseID string) (json.RawMessage, error)
	ListProgress(ctx context.Context, userID uuid.UUID) (map[string]json.RawMessage, error)
}

type progressService struct {
	db       *gorm.DB
	progRepo repository.ProgressRepository
}

func NewProgressService(db *gorm.DB, progRepo repository.ProgressRepository) ProgressService {
	return &progressService{
		db:       db,
		progRepo: progRepo,
	}
}

// SyncProgress は (userID, courseID) の進捗を丸ごと置き換えます。
// 部分マージはしない: 常に最後の送信が勝つ。
func (s *progressService) SyncProgress(ctx context.Context, userID uuid.UUID, courseID string, progressData json.RawMessage) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "course_id", courseID)

	if courseID == "" {
		return model.NewAppError("VALIDATION_ERROR", "コースIDは必須です。", "course_id", model.ErrInvalidInput)
	}
	if len(progressData) == 0 {
		return model.NewAppError("VALIDATION_ERROR", "学習進捗は必須です。", "progress_data", model.ErrInvalidInput)
	}

	progress := &model.CourseProgress{
		ProgressID:   uuid.New(), // 既存行がある場合はON CONFLICTで無視される
		UserID:       userID,
		CourseID:     courseID,
		ProgressData: string(progressData),
	}

	if err := s.progRepo.Upsert(ctx, s.db, progress); err != nil {
		logger.Error("Failed to upsert progress", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の保存に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Progress synced")
	return nil
}

// GetProgress は単一コースの進捗を返します。存在しない場合はエラーではなく nil を返す。
func (s *progressService) GetProgress(ctx context.Context, userID uuid.UUID, courseID string) (json.RawMessage, error) {
	logger := middleware.GetLogger(ctx)

	progress, err := s.progRepo.FindByUserAndCourse(ctx, s.db, userID, courseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		logger.Error("Failed to find progress", "error", err, "user_id", userID, "course_id", courseID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の取得に失敗しました。", "", model.ErrInternalServer)
	}
	return json.RawMessage(progress.ProgressData), nil
}

// ListProgress はユーザーの全進捗を courseID → ペイロード のマップで返します
func (s *progressService) ListProgress(ctx context.Context, userID uuid.UUID) (map[string]json.RawMessage, error) {
	logger := middleware.GetLogger(ctx)

	progresses, err := s.progRepo.ListByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list progress", "error", err, "user_id", userID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の取得に失敗しました。", "", model.ErrInternalServer)
	}

	result := make(map[string]json.RawMessage, len(progresses))
	for _, p := range progresses {
		result[p.CourseID] = json.RawMessage(p.ProgressData)
	}
	return result, nil
}
