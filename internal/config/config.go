// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type JWTConfig struct {
	SecretKey      string        `mapstructure:"secret_key"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
}

type AppConfig struct {
	CourseTTL       time.Duration `mapstructure:"course_ttl"`        // コースの保持期間
	CourseListLimit int           `mapstructure:"course_list_limit"` // 一覧取得の上限件数
	DefaultEmoji    string        `mapstructure:"default_emoji"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	App      AppConfig      `mapstructure:"app"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数からも読み込めるようにする (例: APP_JWT_SECRET_KEY)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.JWT.AccessTokenTTL <= 0 {
		Cfg.JWT.AccessTokenTTL = DefaultTokenTTL
	}
	if Cfg.App.CourseTTL <= 0 {
		Cfg.App.CourseTTL = DefaultCourseTTL
	}
	if Cfg.App.CourseListLimit <= 0 {
		log.Printf("Course list limit not set or invalid, using default '%d'", DefaultCourseListLimit)
		Cfg.App.CourseListLimit = DefaultCourseListLimit
	}
	if Cfg.App.DefaultEmoji == "" {
		Cfg.App.DefaultEmoji = DefaultEmoji
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	// 署名キー未設定時は開発用フォールバックを使う。
	// この値は公開リポジトリに含まれる既知の文字列なので、本番では必ず上書きすること。
	if Cfg.JWT.SecretKey == "" {
		log.Println("WARNING: jwt.secret_key is not set. Falling back to the built-in development secret. DO NOT use this in production.")
		Cfg.JWT.SecretKey = DevJWTSecret
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Course TTL: %s", Cfg.App.CourseTTL)
	log.Printf("Course List Limit: %d", Cfg.App.CourseListLimit)

	return nil
}
