package model

import (
	"time"

	"github.com/google/uuid"
)

// ユーザーの基本情報
type User struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	FullName     string    `gorm:"not null" json:"full_name"`
	Emoji        string    `json:"emoji"`
	PasswordHash string    `gorm:"not null" json:"-"` // クライアントには絶対に返さない
	XP           int       `gorm:"not null;default:0" json:"xp"`
	Streak       int       `gorm:"not null;default:0" json:"streak"`
	Hearts       int       `gorm:"not null;default:5" json:"hearts"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// UserResponse はクライアントに返すユーザー情報の構造体 (パスワードハッシュは含めない)
type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Emoji     string    `json:"emoji"`
	XP        int       `json:"xp"`
	Streak    int       `json:"streak"`
	Hearts    int       `json:"hearts"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse は User から公開用のレスポンスを作ります
func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		UserID:    u.UserID,
		Email:     u.Email,
		FullName:  u.FullName,
		Emoji:     u.Emoji,
		XP:        u.XP,
		Streak:    u.Streak,
		Hearts:    u.Hearts,
		CreatedAt: u.CreatedAt,
	}
}
