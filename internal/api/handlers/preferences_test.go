package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/zuup-ai/zuup-collect/internal/collector"
)

// stubPipeline implements Pipeline with scripted behavior for handler tests
type stubPipeline struct {
	acceptAll bool
	submitted []collector.Comparison
	flushed   int
	stats     collector.Stats
}

func (s *stubPipeline) Submit(cmp collector.Comparison) bool {
	s.submitted = append(s.submitted, cmp)
	return s.acceptAll
}

func (s *stubPipeline) Flush() int             { return s.flushed }
func (s *stubPipeline) Stats() collector.Stats { return s.stats }
func (s *stubPipeline) Domain() string         { return "procurement" }

func submitBody() string {
	body, _ := json.Marshal(SubmitRequest{
		Category:   "rfp_analysis",
		Prompt:     "What are the protest risks in this sole-source justification?",
		ResponseA:  strings.Repeat("The primary protest risk stems from inadequate market research. ", 3),
		ResponseB:  strings.Repeat("Protest risk centers on the J&A's justification quality. ", 3),
		Preference: "A",
		UserID:     "user-42",
		Confidence: 0.8,
	})
	return string(body)
}

// TestHandleSubmit tests the preference submission handler
func TestHandleSubmit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		body       string
		acceptAll  bool
		wantStatus int
	}{
		{"accepted comparison", submitBody(), true, http.StatusAccepted},
		{"rejected comparison", submitBody(), false, http.StatusUnprocessableEntity},
		{"missing required fields", `{"prompt": "only a prompt"}`, true, http.StatusBadRequest},
		{"invalid preference side", strings.Replace(submitBody(), `"A"`, `"C"`, 1), true, http.StatusBadRequest},
		{"malformed JSON", `{not json`, true, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := &stubPipeline{acceptAll: tt.acceptAll}
			router := gin.New()
			router.POST("/preferences", HandleSubmit(pipeline))

			req := httptest.NewRequest("POST", "/preferences", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("HandleSubmit() status = %d, want %d (body: %s)",
					w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

// TestHandleSubmitPassesComparison verifies the request fields reach the
// pipeline intact
func TestHandleSubmitPassesComparison(t *testing.T) {
	gin.SetMode(gin.TestMode)

	pipeline := &stubPipeline{acceptAll: true}
	router := gin.New()
	router.POST("/preferences", HandleSubmit(pipeline))

	req := httptest.NewRequest("POST", "/preferences", strings.NewReader(submitBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if len(pipeline.submitted) != 1 {
		t.Fatalf("Expected 1 submission, got %d", len(pipeline.submitted))
	}
	cmp := pipeline.submitted[0]
	if cmp.Preference != collector.SideA {
		t.Errorf("Preference = %q, want A", cmp.Preference)
	}
	if cmp.UserID != "user-42" {
		t.Errorf("UserID = %q, want user-42", cmp.UserID)
	}
	if cmp.Category != "rfp_analysis" {
		t.Errorf("Category = %q, want rfp_analysis", cmp.Category)
	}
	if cmp.Confidence != 0.8 {
		t.Errorf("Confidence = %v, want 0.8", cmp.Confidence)
	}
}

// TestHandleFlush tests the manual flush handler
func TestHandleFlush(t *testing.T) {
	gin.SetMode(gin.TestMode)

	pipeline := &stubPipeline{flushed: 7}
	router := gin.New()
	router.POST("/flush", HandleFlush(pipeline))

	req := httptest.NewRequest("POST", "/flush", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("HandleFlush() status = %d, want %d", w.Code, http.StatusOK)
	}

	var response FlushResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Flushed != 7 {
		t.Errorf("HandleFlush() flushed = %d, want 7", response.Flushed)
	}
}
