package model

// RegisterRequest は新規登録APIのリクエストボディの構造体 (DTO)
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,min=1,max=100"`
	Emoji    string `json:"emoji" validate:"omitempty,max=16"`
}

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse は登録・ログイン成功時のレスポンス
type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}
