package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/zuup-ai/zuup-collect/internal/collector"
)

// stubPipeline implements handlers.Pipeline for routing tests
type stubPipeline struct{}

func (stubPipeline) Submit(collector.Comparison) bool { return true }
func (stubPipeline) Flush() int                       { return 0 }
func (stubPipeline) Stats() collector.Stats           { return collector.Stats{} }
func (stubPipeline) Domain() string                   { return "procurement" }

func testRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := NewServer(&Config{
		BindAddr:  "127.0.0.1",
		BindPort:  8090,
		APIKey:    apiKey,
		Collector: stubPipeline{},
	})
	router := gin.New()
	s.setupRoutes(router)
	return router
}

// TestConfigValidate tests API server configuration validation
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		expectErr bool
	}{
		{"valid config", &Config{BindAddr: "127.0.0.1", BindPort: 8090, Collector: stubPipeline{}}, false},
		{"missing bind address", &Config{BindPort: 8090, Collector: stubPipeline{}}, true},
		{"invalid port", &Config{BindAddr: "127.0.0.1", BindPort: 70000, Collector: stubPipeline{}}, true},
		{"missing collector", &Config{BindAddr: "127.0.0.1", BindPort: 8090}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

// TestRouteRegistration verifies all expected routes respond
func TestRouteRegistration(t *testing.T) {
	router := testRouter("")

	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/health"},
		{"GET", "/api/v1/stats"},
		{"GET", "/api/v1/domains"},
		{"GET", "/api/v1/domains/procurement"},
		{"GET", "/api/v1/domains/procurement/prompts"},
		{"GET", "/api/v1/runtime"},
		{"POST", "/api/v1/flush"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code == http.StatusNotFound {
			t.Errorf("%s %s not registered", tt.method, tt.path)
		}
	}
}

// TestAuthMiddleware verifies API key enforcement on pipeline endpoints
func TestAuthMiddleware(t *testing.T) {
	router := testRouter("secret-key")

	tests := []struct {
		name       string
		path       string
		key        string
		wantStatus int
	}{
		{"pipeline endpoint without key", "/api/v1/stats", "", http.StatusUnauthorized},
		{"pipeline endpoint with wrong key", "/api/v1/stats", "wrong", http.StatusUnauthorized},
		{"pipeline endpoint with key", "/api/v1/stats", "secret-key", http.StatusOK},
		{"runtime endpoint without key", "/api/v1/runtime", "", http.StatusUnauthorized},
		{"health stays open", "/api/v1/health", "", http.StatusOK},
		{"domains stay open", "/api/v1/domains", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

// TestCORSPreflight verifies OPTIONS requests short-circuit with 204
func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewServer(&Config{BindAddr: "127.0.0.1", BindPort: 8090, Collector: stubPipeline{}})
	router := gin.New()
	router.Use(s.corsMiddleware())
	s.setupRoutes(router)

	req := httptest.NewRequest("OPTIONS", "/api/v1/preferences", strings.NewReader(""))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("OPTIONS status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Missing CORS allow-origin header")
	}
}
