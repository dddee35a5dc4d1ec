package service

import (
	"context"
	"errors"

	"go_course_craft/internal/auth"
	"go_course_craft/internal/config"
	"go_course_craft/internal/middleware"
	"go_course_craft/internal/model"
	"go_course_craft/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
	tokens   auth.TokenManager
	cfg      *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, hasher auth.PasswordHasher, tokens auth.TokenManager, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		cfg:      cfg,
	}
}

// errInvalidCredentials はログイン失敗時の共通エラーを返します。
// ユーザー不在とパスワード不一致で同一のエラーを返し、アカウントの存在を推測させない。
func errInvalidCredentials() *model.AppError {
	return model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)
}

// Register は新しいユーザーを登録し、Bearerトークンを発行します
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx)

	// ストアに触れる前の早期バリデーション
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "メールアドレス・パスワード・名前は必須です。", "", model.ErrInvalidInput)
	}

	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Emailでの重複チェック (保存値との完全一致)
		_, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", model.ErrInternalServer)
		}

		// パスワードのハッシュ化
		hashedPassword, err := s.hasher.Hash(req.Password)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", model.ErrInternalServer)
		}

		emoji := req.Emoji
		if emoji == "" {
			emoji = s.cfg.App.DefaultEmoji
		}

		// カウンタは初期値で作成する (xp=0, streak=0, hearts=5)
		user := &model.User{
			UserID:       uuid.New(),
			Email:        req.Email,
			FullName:     req.FullName,
			Emoji:        emoji,
			PasswordHash: hashedPassword,
			XP:           0,
			Streak:       0,
			Hearts:       5,
		}

		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			// Create内で重複エラーが検知された場合 (同時登録のレース対策)
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation (race condition)", "email", req.Email)
				return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", model.ErrInternalServer)
		}
		newUser = user
		return nil
	})

	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(newUser.UserID)
	if err != nil {
		logger.Error("Failed to issue token", "error", err, "user_id", newUser.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("User registered", "user_id", newUser.UserID, "email", newUser.Email)
	return &model.AuthResponse{
		User:  model.NewUserResponse(newUser),
		Token: token,
	}, nil
}

// Login はユーザーを認証し、Bearerトークンを返します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	if req.Email == "" || req.Password == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "メールアドレスとパスワードは必須です。", "", model.ErrInvalidInput)
	}

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, errInvalidCredentials()
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", model.ErrInternalServer)
	}

	// 照合はハッシュプリミティブに委譲 (タイミング攻撃対策)
	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, errInvalidCredentials()
	}

	token, err := s.tokens.Issue(user.UserID)
	if err != nil {
		logger.Error("Failed to issue token", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Login successful", "user_id", user.UserID)
	return &model.AuthResponse{
		User:  model.NewUserResponse(user),
		Token: token,
	}, nil
}

// GetUser は指定されたIDのユーザーの公開情報を取得します
func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found", "user_id", userID.String())
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error finding user by ID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", model.ErrInternalServer)
	}
	return model.NewUserResponse(user), nil
}
