// internal/handlers/course_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_course_craft/internal/middleware"
	"go_course_craft/internal/model"
	"go_course_craft/internal/service"
	"go_course_craft/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type CourseHandler struct {
	service service.CourseService
	logger  *slog.Logger
}

func NewCourseHandler(s service.CourseService, logger *slog.Logger) *CourseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseHandler{
		service: s,
		logger:  logger,
	}
}

// SaveCourse はコースの保存 (新規作成または再送信によるマージ) を行うハンドラ
func (h *CourseHandler) SaveCourse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.SaveCourseRequest
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

	id, err := h.service.SaveCourse(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, model.SaveCourseResponse{ID: id}, logger)
}

// GetCourse は単一コースを取得するハンドラ
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	courseID := chi.URLParam(r, "course_id")
	if courseID == "" {
		appErr := model.NewAppError("VALIDATION_ERROR", "コースIDは必須です。", "course_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	detail, err := h.service.GetCourse(r.Context(), courseID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

// ListCourses はコース一覧を取得するハンドラ (topic部分一致フィルタと件数上限に対応)
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	topicFilter := r.URL.Query().Get("topic")

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			appErr := model.NewAppError("VALIDATION_ERROR", "limitは数値で指定してください。", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		limit = parsed
	}

	courses, err := h.service.ListCourses(r.Context(), topicFilter, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, courses, logger)
}
