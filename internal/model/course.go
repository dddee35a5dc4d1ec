// internal/model/course.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Course は生成された共有可能なコースを表します
// UserID / GeneratedByName / IsPublic はポインタ型にして、
// 「未指定 (NULL)」とゼロ値を区別できるようにする (マージ時のCOALESCE用)
type Course struct {
	ID              string     `gorm:"primaryKey" json:"id"`
	Topic           string     `gorm:"not null" json:"topic"`
	Depth           int        `json:"depth"`
	Icon            string     `json:"icon"`
	Data            string     `gorm:"type:text" json:"-"` // シリアライズ済みのコース本体 (ストアは中身を解釈しない)
	UserID          *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	GeneratedByName *string    `json:"generated_by_name,omitempty"`
	IsPublic        *bool      `json:"is_public,omitempty"`
	CreatedAt       time.Time  `gorm:"index" json:"created_at"` // 有効期限の起点
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}

// コース保存リクエストDTO
// 任意項目はポインタ/RawMessageで受け、未指定をNULLとして永続化する
type SaveCourseRequest struct {
	ID              string          `json:"id" validate:"required"`
	Topic           string          `json:"topic" validate:"required"`
	Depth           int             `json:"depth"`
	Icon            string          `json:"icon"`
	Data            json.RawMessage `json:"data"`
	UserID          *uuid.UUID      `json:"user_id,omitempty"`
	GeneratedByName *string         `json:"generated_by_name,omitempty"`
	IsPublic        *bool           `json:"is_public,omitempty"`
}

// SaveCourseResponse は保存したコースのIDを返します
type SaveCourseResponse struct {
	ID string `json:"id"`
}

// CourseResponse は一覧用のレスポンスDTO
type CourseResponse struct {
	ID              string          `json:"id"`
	Topic           string          `json:"topic"`
	Depth           int             `json:"depth"`
	Icon            string          `json:"icon"`
	Data            json.RawMessage `json:"data,omitempty"`
	GeneratedByName *string         `json:"generated_by_name,omitempty"`
	IsPublic        bool            `json:"is_public"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewCourseResponse は Course からレスポンスDTOを作ります
func NewCourseResponse(c *Course) *CourseResponse {
	resp := &CourseResponse{
		ID:              c.ID,
		Topic:           c.Topic,
		Depth:           c.Depth,
		Icon:            c.Icon,
		GeneratedByName: c.GeneratedByName,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	if c.Data != "" {
		resp.Data = json.RawMessage(c.Data)
	}
	if c.IsPublic != nil {
		resp.IsPublic = *c.IsPublic
	}
	return resp
}

// CourseDetailResponse は単一コース取得時のレスポンス (表示用の作成者名を解決済み)
type CourseDetailResponse struct {
	Course          *CourseResponse `json:"course"`
	GeneratedByName string          `json:"generated_by_name,omitempty"`
}
