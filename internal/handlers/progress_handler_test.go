// internal/handlers/progress_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_course_craft/internal/auth"
	"go_course_craft/internal/handlers"
	"go_course_craft/internal/middleware"
	"go_course_craft/internal/model"
	"go_course_craft/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 進捗APIはすべて認証必須なので、実物のミドルウェアを通してテストする
func newProgressRouter(progressService *mocks.ProgressService, tm auth.TokenManager) *chi.Mux {
	handler := handlers.NewProgressHandler(progressService, nil)
	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuthMiddleware(tm))
		r.Put("/api/v1/progress/{course_id}", handler.SyncProgress)
		r.Get("/api/v1/progress/{course_id}", handler.GetProgress)
		r.Get("/api/v1/progress", handler.ListProgress)
	})
	return router
}

func TestProgressHandler_SyncProgress(t *testing.T) {
	tm := auth.NewJWTTokenManager("progress-test-secret", time.Hour, "test")
	userID := uuid.New()
	validToken, err := tm.Issue(userID)
	require.NoError(t, err)

	validBody := model.SyncProgressRequest{
		ProgressData: json.RawMessage(`{"completed":["m1"]}`),
	}

	tests := []struct {
		name           string
		token          string
		body           interface{}
		setupMock      func(progressService *mocks.ProgressService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:  "Success - 進捗を同期できる",
			token: validToken,
			body:  validBody,
			setupMock: func(progressService *mocks.ProgressService) {
				progressService.On("SyncProgress", mock.Anything, userID, "course-1", mock.AnythingOfType("json.RawMessage")).
					Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Fail - トークンなしは401でServiceに到達しない",
			token:          "",
			body:           validBody,
			setupMock:      func(progressService *mocks.ProgressService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "Fail - progress_dataなしは400",
			token:          validToken,
			body:           model.SyncProgressRequest{},
			setupMock:      func(progressService *mocks.ProgressService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			progressService := mocks.NewProgressService(t)
			tc.setupMock(progressService)
			router := newProgressRouter(progressService, tm)

			req := createRequest(t, "PUT", "/api/v1/progress/course-1", tc.body, tc.token)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedCode != "" {
				assertErrorCode(t, rr.Body.Bytes(), tc.expectedCode)
			}
		})
	}
}

func TestProgressHandler_GetProgress(t *testing.T) {
	tm := auth.NewJWTTokenManager("progress-test-secret", time.Hour, "test")
	userID := uuid.New()
	validToken, err := tm.Issue(userID)
	require.NoError(t, err)

	t.Run("Success - 進捗が返る", func(t *testing.T) {
		progressService := mocks.NewProgressService(t)
		progressService.On("GetProgress", mock.Anything, userID, "course-1").
			Return(json.RawMessage(`{"completed":["m1"]}`), nil).Once()
		router := newProgressRouter(progressService, tm)

		req := createRequest(t, "GET", "/api/v1/progress/course-1", nil, validToken)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"completed":["m1"]}`, rr.Body.String())
	})

	t.Run("Success - 進捗がない場合はnullが返る", func(t *testing.T) {
		progressService := mocks.NewProgressService(t)
		progressService.On("GetProgress", mock.Anything, userID, "course-2").
			Return(nil, nil).Once()
		router := newProgressRouter(progressService, tm)

		req := createRequest(t, "GET", "/api/v1/progress/course-2", nil, validToken)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "null", rr.Body.String())
	})

	t.Run("Fail - トークンなしは401", func(t *testing.T) {
		progressService := mocks.NewProgressService(t)
		router := newProgressRouter(progressService, tm)

		req := createRequest(t, "GET", "/api/v1/progress/course-1", nil, "")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestProgressHandler_ListProgress(t *testing.T) {
	tm := auth.NewJWTTokenManager("progress-test-secret", time.Hour, "test")
	userID := uuid.New()
	validToken, err := tm.Issue(userID)
	require.NoError(t, err)

	t.Run("Success - コースIDをキーにしたマップが返る", func(t *testing.T) {
		progressService := mocks.NewProgressService(t)
		progressService.On("ListProgress", mock.Anything, userID).
			Return(map[string]json.RawMessage{
				"c1": json.RawMessage(`{"p":1}`),
				"c2": json.RawMessage(`{"p":2}`),
			}, nil).Once()
		router := newProgressRouter(progressService, tm)

		req := createRequest(t, "GET", "/api/v1/progress", nil, validToken)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.JSONEq(t, `{"p":1}`, string(resp["c1"]))
	})

	t.Run("Success - 進捗がなければ空のマップ", func(t *testing.T) {
		progressService := mocks.NewProgressService(t)
		progressService.On("ListProgress", mock.Anything, userID).
			Return(map[string]json.RawMessage{}, nil).Once()
		router := newProgressRouter(progressService, tm)

		req := createRequest(t, "GET", "/api/v1/progress", nil, validToken)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{}`, rr.Body.String())
	})
}
