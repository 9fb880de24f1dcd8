package utilities

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"jobboard-backend/internal/apperr"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestExtractBearerToken(t *testing.T) {
	testCases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def", "abc.def", true},
		{"bearer abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}
	for _, tc := range testCases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", tc.header)

		token, err := ExtractBearerToken(c)
		if tc.ok {
			require.NoError(t, err, tc.header)
			assert.Equal(t, tc.token, token)
		} else {
			assert.Error(t, err, tc.header)
		}
	}
}

func TestExtractUser(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := ExtractUser(c)
	assert.Error(t, err)

	c.Set("user", "not a user")
	_, err = ExtractUser(c)
	assert.Error(t, err)

	want := model.User{ID: uuid.New(), Role: model.RoleApplicant}
	c.Set("user", want)
	got, err := ExtractUser(c)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRespondError(t *testing.T) {
	r := gin.New()
	r.GET("/validation", func(c *gin.Context) {
		RespondError(c, apperr.Validation("Invalid job", map[string]string{"title": "title is required"}))
	})
	r.GET("/internal", func(c *gin.Context) {
		RespondError(c, errors.New("pq: connection refused"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/validation", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid job","fields":{"title":"title is required"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/internal", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestRespondError_LogsInternalWithRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := logger.Logger
	logger.Logger = zap.New(core)
	t.Cleanup(func() { logger.Logger = prev })

	r := gin.New()
	r.GET("/internal", func(c *gin.Context) {
		c.Set("request_id", "req-42")
		RespondError(c, errors.New("pq: connection refused"))
	})
	r.GET("/forbidden", func(c *gin.Context) {
		RespondError(c, apperr.Forbidden("nope"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/forbidden", nil))
	assert.Equal(t, 0, logs.Len())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/internal", nil))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Request failed", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, "/internal", fields["path"])
}
