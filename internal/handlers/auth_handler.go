package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_course_craft/internal/middleware"
	"go_course_craft/internal/model"
	"go_course_craft/internal/service"
	"go_course_craft/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		service: s,
		logger:  logger,
	}
}

// Register は新規ユーザーを登録し、ユーザー情報とトークンを返します
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.RegisterRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Registration successful", "user_id", resp.User.UserID)
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// Login はユーザーを認証し、ユーザー情報とトークンを返します
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.LoginRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode login request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// サービス層でログは出力済みなので、ここではエラー処理に専念
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetMe は認証済みユーザー自身の情報を返します
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

// handleValidationError はバリデーション結果をAppErrorに変換して返す共通ヘルパー
func handleValidationError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", "errors", validationErrors.Error())

		// 最初のエラーを代表としてクライアントに返す
		firstErr := validationErrors[0]
		translatedMsg := firstErr.Translate(webutil.Trans)

		appErr := model.NewAppError(
			"VALIDATION_ERROR",
			translatedMsg,
			firstErr.Field(),
			model.ErrInvalidInput,
		)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger.Error("Unexpected error during validation", "error", err)
	webutil.HandleError(w, logger, err)
}
