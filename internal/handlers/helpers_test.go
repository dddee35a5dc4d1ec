// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"go_course_craft/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createRequest はテスト用のHTTPリクエストを作ります。
// token が空でなければ Authorization: Bearer ヘッダーを付与する。
func createRequest(t *testing.T, method, path string, body interface{}, token string) *http.Request {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// assertErrorCode はエラーレスポンスのボディを検証します
func assertErrorCode(t *testing.T, body []byte, wantCode string) {
	t.Helper()

	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "error response should be valid JSON: %s", string(body))
	assert.Equal(t, wantCode, errResp.Error.Code)
	assert.NotEmpty(t, errResp.Error.Message)
}
