package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/academy/internal/app/repositories/memory"
	"github.com/yigit/academy/internal/config"
	appMiddleware "github.com/yigit/academy/internal/middleware"
)

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Server.Mode = "development"

	deps := BuildDependencies(memory.NewRepositories(), nil, zerolog.Nop())
	router, err := SetupRouter(cfg, deps, zerolog.Nop())
	require.NoError(t, err)

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/health", http.StatusOK, `"status":"ok"`},
		{"/", http.StatusOK, "Academy Admin"},
		{"/api/courses", http.StatusOK, "[]"},
		{"/swagger/doc.json", http.StatusOK, "/students/{studentId}/enroll/{courseId}"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
			assert.NotEmpty(t, w.Header().Get(appMiddleware.RequestIDHeader))
		})
	}
}

func TestSetupDatabaseMemoryDriverSeeds(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverMemory
	cfg.Seed.Enabled = true

	repos, database, err := SetupDatabase(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, database)

	courses, err := repos.CourseRepository.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, courses)
}
