package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pep299/vc-briefing/internal/application"
	"github.com/pep299/vc-briefing/internal/config"
)

// newUpstreams starts stand-ins for the Gemini and OpenAI endpoints
func newUpstreams(t *testing.T) (geminiURL, openaiURL string) {
	t.Helper()

	geminiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"candidates": [{
				"content": {
					"role": "model",
					"parts": [{"text": "- Problem: X\n- Solution: Y\n- Market: $1B\n- Team: ex-FAANG\n- Traction: $10k MRR"}]
				}
			}]
		}`)
	}))
	t.Cleanup(geminiSrv.Close)

	openaiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "**Acme** is raising a seed round."},
				"finish_reason": "stop"
			}]
		}`)
	}))
	t.Cleanup(openaiSrv.Close)

	return geminiSrv.URL, openaiSrv.URL
}

func newTestApp(t *testing.T) *application.Application {
	t.Helper()

	geminiURL, openaiURL := newUpstreams(t)
	cfg := config.Default()
	cfg.GeminiAPIKey = "test-key"
	cfg.GeminiBaseURL = geminiURL
	cfg.OpenAIAPIKey = "sk-test"
	cfg.OpenAIBaseURL = openaiURL

	app, err := application.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to create application: %v", err)
	}
	return app
}

func resetHandler() {
	mu.Lock()
	handler = nil
	mu.Unlock()
}

// TestCreateHandler_Generate runs the whole pipeline against stand-in model endpoints
func TestCreateHandler_Generate(t *testing.T) {
	h := CreateHandler(newTestApp(t))

	body := `{"deckText":"Problem: X. Solution: Y. Market: $1B. Team: ex-FAANG. Traction: $10k MRR.","vcPersona":"Seed-stage B2B SaaS investor"}`
	req := httptest.NewRequest("POST", "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result struct {
		Bullets []string `json:"bullets"`
		Brief   string   `json:"brief"`
	}
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if len(result.Bullets) != 5 {
		t.Errorf("Expected 5 bullets, got %d", len(result.Bullets))
	}
	if result.Brief != "**Acme** is raising a seed round." {
		t.Errorf("Unexpected brief %q", result.Brief)
	}
}

func TestCreateHandler_Routes(t *testing.T) {
	h := CreateHandler(newTestApp(t))

	tests := []struct {
		method string
		path   string
		status int
	}{
		{"GET", "/", http.StatusOK},
		{"GET", "/api/health", http.StatusOK},
		{"OPTIONS", "/api/generate", http.StatusOK},
		{"GET", "/api/generate", http.StatusMethodNotAllowed},
		{"GET", "/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, w.Code)
			}
		})
	}
}

func TestCreateHandler_CORS(t *testing.T) {
	h := CreateHandler(newTestApp(t))

	req := httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set("Origin", "https://any.example")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected Allow-Origin '*', got '%s'", got)
	}
}

// TestHandleRequest tests the Cloud Functions entry point
func TestHandleRequest(t *testing.T) {
	resetHandler()
	t.Cleanup(resetHandler)

	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DRAFT_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	HandleRequest(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if result["status"] != "ok" {
		t.Errorf("Expected status 'ok', got '%v'", result["status"])
	}
}

// TestHandleRequest_InvalidEnv tests HandleRequest with invalid environment
func TestHandleRequest_InvalidEnv(t *testing.T) {
	resetHandler()
	t.Cleanup(resetHandler)

	t.Setenv("CONFIG_FILE", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	HandleRequest(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
}
