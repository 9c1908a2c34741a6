//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/u4rad/camp-service/internal/domain/model"
)

type recordingSink struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (s *recordingSink) Log(entry *model.LogEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return true
}

func (s *recordingSink) all() []*model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*model.LogEntry(nil), s.entries...)
}

func TestLevelForStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected zerolog.Level
	}{
		{http.StatusOK, zerolog.InfoLevel},
		{http.StatusMovedPermanently, zerolog.InfoLevel},
		{http.StatusBadRequest, zerolog.WarnLevel},
		{http.StatusNotFound, zerolog.WarnLevel},
		{http.StatusInternalServerError, zerolog.ErrorLevel},
		{http.StatusServiceUnavailable, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, levelForStatus(tt.status), "status %d", tt.status)
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sink := &recordingSink{}
	router := gin.New()
	router.Use(RequestID(), RequestLogger(sink, "/healthz"))
	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/api/service-selection", func(c *gin.Context) {
		c.Set(string(UserIDKey), int64(3))
		c.Set(string(UsernameKey), "coordinator")
		c.Status(http.StatusCreated)
	})
	router.GET("/api/companies/:id", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	for _, r := range []struct{ method, path string }{
		{http.MethodGet, "/healthz"},
		{http.MethodPost, "/api/service-selection"},
		{http.MethodGet, "/api/companies/9"},
	} {
		req := httptest.NewRequest(r.method, r.path, nil)
		req.Header.Set(RequestIDHeader, "req-"+r.method)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	entries := sink.all()
	require.Len(t, entries, 2, "skipped paths are not persisted")

	assert.Equal(t, "/api/service-selection", entries[0].Path)
	assert.Equal(t, http.StatusCreated, entries[0].StatusCode)
	assert.Equal(t, "info", entries[0].Level)
	assert.Equal(t, "req-POST", entries[0].RequestID)
	assert.Equal(t, int64(3), entries[0].UserID)
	assert.Equal(t, "coordinator", entries[0].Username)

	assert.Equal(t, "/api/companies/9", entries[1].Path)
	assert.Equal(t, "warn", entries[1].Level)
	assert.Zero(t, entries[1].UserID)
}

func TestRequestLogger_NilSink(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(nil))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
