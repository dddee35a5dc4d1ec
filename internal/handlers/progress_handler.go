// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_course_craft/internal/middleware"
	"go_course_craft/internal/model"
	"go_course_craft/internal/service"
	"go_course_craft/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// SyncProgress は認証済みユーザーのコース進捗を同期するハンドラ
func (h *ProgressHandler) SyncProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	courseID := chi.URLParam(r, "course_id")

	var req model.SyncProgressRequest
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

	if err := h.service.SyncProgress(r.Context(), userID, courseID, req.ProgressData); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "学習進捗を保存しました。",
	}, logger)
}

// GetProgress は認証済みユーザーの単一コースの進捗を返すハンドラ。
// 進捗が存在しない場合は null を返す (エラーにはしない)。
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	courseID := chi.URLParam(r, "course_id")

	payload, err := h.service.GetProgress(r.Context(), userID, courseID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, payload, logger)
}

// ListProgress は認証済みユーザーの全進捗を courseID → ペイロード のマップで返すハンドラ
func (h *ProgressHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	progresses, err := h.service.ListProgress(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, progresses, logger)
}
