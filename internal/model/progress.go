// internal/model/progress.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CourseProgress はユーザーごとのコース学習進捗を表します
// (user_id, course_id) の組が実質的な識別子で、常に丸ごと置き換える
type CourseProgress struct {
	ProgressID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_user_course,unique"` // 複合ユニークインデックスの一部
	CourseID     string    `gorm:"not null;index:idx_user_course,unique"`           // 複合ユニークインデックスの一部
	ProgressData string    `gorm:"type:text;not null"` // シリアライズ済みの進捗 (ストアは中身を解釈しない)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CourseProgress) TableName() string {
	return "course_progress"
}

// 進捗同期リクエストDTO
type SyncProgressRequest struct {
	ProgressData json.RawMessage `json:"progress_data" validate:"required"`
}
