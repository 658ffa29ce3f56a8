package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/academy/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "validation carries details",
			err:    apperrors.NewValidationError([]apperrors.FieldError{{Field: "rating", Message: "must be at most 5"}}),
			status: http.StatusBadRequest,
			body:   `{"error":"validation failed: rating: must be at most 5","details":[{"field":"rating","message":"must be at most 5"}]}`,
		},
		{
			name:   "duplicate email",
			err:    fmt.Errorf("creating: %w", apperrors.ErrEmailAlreadyExists),
			status: http.StatusBadRequest,
			body:   `{"error":"Email already exists"}`,
		},
		{
			name:   "entity not found",
			err:    apperrors.ErrStudentOrCourseNotFound,
			status: http.StatusNotFound,
			body:   `{"error":"Student or course not found"}`,
		},
		{
			name:   "bad request",
			err:    apperrors.NewBadRequestError("Invalid request body: EOF"),
			status: http.StatusBadRequest,
			body:   `{"error":"Invalid request body: EOF"}`,
		},
		{
			name:   "unexpected",
			err:    errors.New("connection refused"),
			status: http.StatusInternalServerError,
			body:   `{"error":"connection refused"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}

func TestParamObjectID(t *testing.T) {
	r := gin.New()
	r.GET("/:id", func(c *gin.Context) {
		id, err := ParamObjectID(c, "id")
		if err != nil {
			HandleAPIError(c, err)
			return
		}
		c.String(http.StatusOK, id.Hex())
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/6650c0ffee0ddba11a5e0001", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/42", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid id: 42"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"*"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "/api/courses", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}
