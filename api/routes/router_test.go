package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"queuesmart/internal/dashboard"
	"queuesmart/internal/shared/config"
	"queuesmart/pkg/cache"
	"queuesmart/pkg/llm"
	"queuesmart/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newTestEngine(t *testing.T, withCache bool) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deps := Dependencies{
		Responder: llm.Unavailable{},
		Logger:    logger.Discard(),
	}

	var mr *miniredis.Miniredis
	if withCache {
		mr = miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		deps.Cache = cache.NewService(client)
	}

	appRouter := NewRouter(config.Load(), deps)
	t.Cleanup(appRouter.Wait)

	engine := gin.New()
	appRouter.SetupRoutes(engine)
	return engine, mr
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRoutesRespond(t *testing.T) {
	engine, _ := newTestEngine(t, false)

	tests := []struct {
		path     string
		wantCode int
		contains string
	}{
		{path: "/ping", wantCode: http.StatusOK, contains: "pong"},
		{path: "/status", wantCode: http.StatusOK, contains: `"session_store":"memory"`},
		{path: "/health", wantCode: http.StatusOK, contains: "healthy"},
		{path: "/", wantCode: http.StatusOK, contains: "QueueSmart"},
		{path: "/api/v1/canteens", wantCode: http.StatusOK, contains: "North Spine Plaza"},
		{path: "/api/v1/canteens/nearest?latitude=1.3500&longitude=103.6832", wantCode: http.StatusOK, contains: "The Hive"},
		{path: "/api/v1/canteens/nearest", wantCode: http.StatusBadRequest},
		{path: "/api/v1/dashboard", wantCode: http.StatusOK, contains: dashboard.DefaultCanteen},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(engine, tt.path)
			if w.Code != tt.wantCode {
				t.Fatalf("GET %s = %d, want %d: %s", tt.path, w.Code, tt.wantCode, w.Body.String())
			}
			if tt.contains != "" && !strings.Contains(w.Body.String(), tt.contains) {
				t.Errorf("GET %s body missing %q: %s", tt.path, tt.contains, w.Body.String())
			}
		})
	}
}

func TestAnalyticsFallsBackWithoutResponder(t *testing.T) {
	engine, _ := newTestEngine(t, false)

	w := get(engine, "/api/v1/analytics/series")
	if w.Code != http.StatusOK {
		t.Fatalf("GET series = %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Data struct {
			Points   []map[string]any `json:"points"`
			Fallback bool             `json:"fallback"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Data.Fallback || len(body.Data.Points) != 3 {
		t.Errorf("series = %+v, want the three-point fallback", body.Data)
	}
}

func TestHealthReportsCacheOutage(t *testing.T) {
	engine, mr := newTestEngine(t, true)

	if w := get(engine, "/health"); w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d with Redis up", w.Code)
	}

	mr.Close()

	w := get(engine, "/health")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("GET /health = %d with Redis down, want 503", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unhealthy") {
		t.Errorf("body = %s, want unhealthy status", w.Body.String())
	}
}
