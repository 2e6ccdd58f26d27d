package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewRouter(Config{}, log)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestListAlgorithms(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/algorithms", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Algorithms []AlgorithmInfo `json:"algorithms"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Algorithms, 15)
	assert.Equal(t, "atbash", resp.Algorithms[0].Name)
	assert.Equal(t, "grille", resp.Algorithms[14].Name)
}

func TestTransform(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		req  TransformRequest
		want string
	}{
		{
			name: "caesar encrypt",
			req:  TransformRequest{Cipher: "caesar", Key: "3", Text: "Hello"},
			want: "Khoor",
		},
		{
			name: "caesar decrypt",
			req:  TransformRequest{Cipher: "caesar", Key: "3", Text: "Khoor", Mode: "decrypt"},
			want: "Hello",
		},
		{
			name: "vigenere",
			req:  TransformRequest{Cipher: "vigenere", Key: "LEMON", Text: "ATTACKATDAWN"},
			want: "LXFOPVEFRNHR",
		},
		{
			name: "atbash ignores mode",
			req:  TransformRequest{Cipher: "atbash", Text: "WIZARD", Mode: "decrypt"},
			want: "DRAZIW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/v1/transform", tt.req)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp TransformResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Output)
			assert.Empty(t, resp.Steps)
		})
	}
}

func TestTransformWithTrace(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/transform",
		TransformRequest{Cipher: "caesar", Key: "3", Text: "Ab", Trace: true})
	require.Equal(t, http.StatusOK, w.Code)

	var resp TransformResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "De", resp.Output)
	require.NotEmpty(t, resp.Steps)
	assert.Contains(t, resp.Steps[0], "encrypt with shift 3")
}

func TestTransformErrors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name     string
		req      TransformRequest
		wantCode string
	}{
		{
			name:     "unknown cipher",
			req:      TransformRequest{Cipher: "enigma", Text: "HELLO"},
			wantCode: "UNKNOWN_CIPHER",
		},
		{
			name:     "bad mode",
			req:      TransformRequest{Cipher: "caesar", Key: "3", Text: "HELLO", Mode: "sideways"},
			wantCode: "BAD_MODE",
		},
		{
			name:     "empty key",
			req:      TransformRequest{Cipher: "vigenere", Key: "123", Text: "HELLO"},
			wantCode: "EMPTY_KEY",
		},
		{
			name:     "invalid key",
			req:      TransformRequest{Cipher: "affine", Key: "13,5", Text: "HELLO"},
			wantCode: "INVALID_KEY",
		},
		{
			name:     "no inverse",
			req:      TransformRequest{Cipher: "hill", Key: "2,4,6,8", Text: "HELP"},
			wantCode: "INVALID_KEY",
		},
		{
			name:     "text too long",
			req:      TransformRequest{Cipher: "route", Key: "2x2", Text: "TOOLONGTEXT"},
			wantCode: "TEXT_TOO_LONG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/v1/transform", tt.req)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestTransformMissingFields(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/transform", map[string]string{"cipher": "caesar"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BAD_REQUEST", resp.Code)
}

func TestCORSHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)
	router := NewRouter(Config{AllowOrigins: []string{"http://localhost:3000"}}, log)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/transform", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
