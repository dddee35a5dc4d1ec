// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "CourseCraft"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultTokenTTL        = 30 * 24 * time.Hour // Bearerトークンの有効期限 (30日)
	DefaultCourseTTL       = 7 * 24 * time.Hour  // コースの保持期間 (作成から7日)
	DefaultCourseListLimit = 50
	DefaultEmoji           = "🙂"
)

// DevJWTSecret は署名キー未設定時の開発用フォールバック。
// 周知のハードコード値であり、本番環境では必ず jwt.secret_key を設定すること。
const DevJWTSecret = "dev-only-insecure-secret"
