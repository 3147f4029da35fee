package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"healthplan-backend/internal/shared/telemetry"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	telemetry.SetLogger(zap.New(core))
	t.Cleanup(func() { telemetry.SetLogger(nil) })

	router := gin.New()
	router.Use(RequestID(), Identity(), Logging())
	router.POST("/api/v1/recommendations/generate", func(c *gin.Context) {
		c.Set("planSource", "rules")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/generate", nil)
	req.Header.Set("X-User-Id", "user-1")
	req.Header.Set("X-Request-Id", "req-42")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	entries := logs.FilterMessage("request.complete").All()
	if len(entries) != 1 {
		t.Fatalf("expected one request log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()

	want := map[string]any{
		"request_id":  "req-42",
		"user_id":     "user-1",
		"plan_source": "rules",
		"route":       "/api/v1/recommendations/generate",
	}
	for key, val := range want {
		if fields[key] != val {
			t.Fatalf("field %s: expected %v, got %v", key, val, fields[key])
		}
	}
	for _, key := range []string{"status", "duration_ms", "method"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("missing field %s", key)
		}
	}
}
