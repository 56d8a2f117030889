package main

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/trendpulse/internal/api"
	"github.com/phrazzld/trendpulse/internal/config"
	"github.com/phrazzld/trendpulse/internal/content"
	"github.com/phrazzld/trendpulse/internal/platform/gemini"
	"github.com/phrazzld/trendpulse/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

const liveTrendsJSON = `[
	{"keyword": "탕후루", "category": "Food", "volume": "10만+", "growth": 150},
	{"keyword": "여름 페스티벌", "category": "Event", "volume": "5만+", "growth": 80}
]`

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8080,
			LogLevel:               "debug",
			LogFormat:              "json",
			CORSAllowedOrigins:     []string{"*"},
			ShutdownTimeoutSeconds: 1,
		},
		LLM: config.LLMConfig{
			TrendsModel:      "gemini-2.5-flash",
			PlanModel:        "gemini-2.5-flash",
			ImageModel:       "gemini-3-pro-image-preview",
			ImageAspectRatio: "9:16",
			TrendRegion:      "한국",
		},
		Content: config.ContentConfig{
			TrendCount:       5,
			EmptyInputPolicy: config.EmptyInputForward,
			SanitizeHTML:     true,
		},
	}
}

// stubModels answers every call with the same text.
type stubModels struct {
	mu    sync.Mutex
	text  string
	calls int
}

func (s *stubModels) GenerateContent(
	_ context.Context,
	_ string,
	_ []*genai.Content,
	_ *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: s.text}}},
		}},
	}, nil
}

func newTestApp(t *testing.T, cfg *config.Config, models *stubModels) *application {
	t.Helper()
	log, _ := logger.GetTestLogger(t)

	factory := func(context.Context, string) (gemini.ModelsAPI, error) { return models, nil }
	app, err := newApplication(cfg, log, withClientFactory(factory))
	require.NoError(t, err)
	return app
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNewApplicationValidation(t *testing.T) {
	log, _ := logger.GetTestLogger(t)

	_, err := newApplication(nil, log)
	assert.Error(t, err)

	_, err = newApplication(testConfig(), nil)
	assert.Error(t, err)

	cfg := testConfig()
	cfg.LLM.ImageModel = ""
	_, err = newApplication(cfg, log)
	assert.Error(t, err, "builder rejects empty model names")
}

func TestHealth(t *testing.T) {
	router := newTestApp(t, testConfig(), &stubModels{}).setupRouter()

	w := do(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestDemoModeWithoutKey(t *testing.T) {
	models := &stubModels{text: liveTrendsJSON}
	router := newTestApp(t, testConfig(), models).setupRouter()

	w := do(t, router, http.MethodGet, "/api/trends", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "demo", w.Header().Get(api.ModeHeader))

	var body content.TrendsResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, content.MockTrends(), body.Trends)
	assert.Equal(t, 0, models.calls, "no backend call without a credential")

	w = do(t, router, http.MethodPost, "/api/plans", `{"keyword": "탕후루"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), content.DemoMarker)

	w = do(t, router, http.MethodPost, "/api/thumbnails", `{"prompt": "a cup", "size": "1K"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mode":"demo"`)
}

func TestLiveModeAfterSelectingKey(t *testing.T) {
	models := &stubModels{text: liveTrendsJSON}
	cfg := testConfig()
	cfg.Server.CredentialAPIEnabled = true
	router := newTestApp(t, cfg, models).setupRouter()

	w := do(t, router, http.MethodPut, "/api/credentials", `{"api_key": "AIza-test-key"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available": true}`, w.Body.String())

	w = do(t, router, http.MethodGet, "/api/trends", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "live", w.Header().Get(api.ModeHeader))

	var body content.TrendsResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Trends, 2)
	assert.Equal(t, "탕후루", body.Trends[0].Keyword)
	assert.Equal(t, 1, models.calls)

	w = do(t, router, http.MethodDelete, "/api/credentials", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available": false}`, w.Body.String())

	w = do(t, router, http.MethodGet, "/api/trends", "")
	assert.Equal(t, "demo", w.Header().Get(api.ModeHeader))
}

func TestCredentialMutationDisabledByDefault(t *testing.T) {
	cfg := testConfig()
	cfg.LLM.GeminiAPIKey = "AIza-configured"
	app := newTestApp(t, cfg, &stubModels{})
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/credentials", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = do(t, router, http.MethodPut, "/api/credentials", `{"api_key": "AIza-attacker"}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	assert.Equal(t, "AIza-configured", app.credentials.APIKey())

	w = do(t, router, http.MethodGet, "/api/credentials", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available": true}`, w.Body.String())
}

func preflight(router http.Handler, origin, method string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/api/credentials", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", method)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCrossOriginCredentialChangeRefusedWithWildcardOrigins(t *testing.T) {
	cfg := testConfig()
	cfg.Server.CredentialAPIEnabled = true
	router := newTestApp(t, cfg, &stubModels{}).setupRouter()

	for _, method := range []string{http.MethodPut, http.MethodDelete} {
		w := preflight(router, "https://evil.example", method)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), method)
		assert.NotContains(t, w.Header().Get("Access-Control-Allow-Methods"), method)
	}

	w := preflight(router, "https://evil.example", http.MethodPost)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), "content endpoints stay open")
}

func TestCredentialChangeAllowedForListedOrigin(t *testing.T) {
	cfg := testConfig()
	cfg.Server.CredentialAPIEnabled = true
	cfg.Server.CORSAllowedOrigins = []string{"http://localhost:5173"}
	router := newTestApp(t, cfg, &stubModels{}).setupRouter()

	w := preflight(router, "http://localhost:5173", http.MethodDelete)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.MethodDelete, w.Header().Get("Access-Control-Allow-Methods"))

	w = preflight(router, "https://evil.example", http.MethodDelete)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRejectPolicyAtEdge(t *testing.T) {
	cfg := testConfig()
	cfg.Content.EmptyInputPolicy = config.EmptyInputReject
	router := newTestApp(t, cfg, &stubModels{}).setupRouter()

	w := do(t, router, http.MethodPost, "/api/plans", `{"keyword": ""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPost, "/api/thumbnails", `{"prompt": " ", "size": "1K"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestApp(t, testConfig(), &stubModels{}).setupRouter()

	do(t, router, http.MethodGet, "/api/trends", "")

	w := do(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `trendpulse_operations_total{mode="demo",operation="trends"} 1`)
	assert.Contains(t, w.Body.String(), "trendpulse_operation_duration_seconds")
}

func TestCORSPreflight(t *testing.T) {
	router := newTestApp(t, testConfig(), &stubModels{}).setupRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/plans", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestTraceIDOnResponses(t *testing.T) {
	router := newTestApp(t, testConfig(), &stubModels{}).setupRouter()

	w := do(t, router, http.MethodGet, "/api/trends", "")
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}

func TestServeGracefulShutdown(t *testing.T) {
	app := newTestApp(t, testConfig(), &stubModels{})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, listener, app.setupRouter()) }()

	url := "http://" + listener.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
