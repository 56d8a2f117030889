package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/phrazzld/trendpulse/internal/config"
	"github.com/phrazzld/trendpulse/internal/content"
	"github.com/phrazzld/trendpulse/internal/credential"
	"github.com/phrazzld/trendpulse/internal/domain"
	"github.com/phrazzld/trendpulse/internal/platform/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

const trendsJSON = `[{"keyword": "탕후루", "category": "Food", "volume": "10만+", "growth": 150}]`

type stubModels struct {
	mu    sync.Mutex
	keys  []string
	calls int
}

func (s *stubModels) factory(_ context.Context, apiKey string) (gemini.ModelsAPI, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = append(s.keys, apiKey)
	return s, nil
}

func (s *stubModels) GenerateContent(
	context.Context,
	string,
	[]*genai.Content,
	*genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: trendsJSON}}},
		}},
	}, nil
}

func testConfig(apiKey string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error", LogFormat: "text", CORSAllowedOrigins: []string{"*"}},
		LLM: config.LLMConfig{
			GeminiAPIKey:     apiKey,
			TrendsModel:      "gemini-2.5-flash",
			PlanModel:        "gemini-2.5-flash",
			ImageModel:       "gemini-3-pro-image-preview",
			ImageAspectRatio: "9:16",
			TrendRegion:      "한국",
		},
		Content: config.ContentConfig{TrendCount: 5, EmptyInputPolicy: config.EmptyInputForward},
	}
}

type run struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	models *stubModels
}

func execute(t *testing.T, apiKey, stdin string, args ...string) (*run, error) {
	t.Helper()

	r := &run{models: &stubModels{}}
	cmd := newRootCmd(cliOptions{
		clientFactory: r.models.factory,
		loadConfig:    func(string) (*config.Config, error) { return testConfig(apiKey), nil },
	})
	cmd.SetOut(&r.stdout)
	cmd.SetErr(&r.stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	return r, cmd.Execute()
}

func TestTrendsDemo(t *testing.T) {
	r, err := execute(t, "", "", "trends")
	require.NoError(t, err)

	var result content.TrendsResult
	require.NoError(t, json.Unmarshal(r.stdout.Bytes(), &result))
	assert.Equal(t, domain.ModeDemo, result.Mode)
	assert.Equal(t, content.MockTrends(), result.Trends)
	assert.Zero(t, r.models.calls)
}

func TestTrendsLive(t *testing.T) {
	r, err := execute(t, "AIza-configured", "", "trends")
	require.NoError(t, err)

	var result content.TrendsResult
	require.NoError(t, json.Unmarshal(r.stdout.Bytes(), &result))
	assert.Equal(t, domain.ModeLive, result.Mode)
	require.Len(t, result.Trends, 1)
	assert.Equal(t, "탕후루", result.Trends[0].Keyword)
	assert.Equal(t, []string{"AIza-configured"}, r.models.keys)
}

func TestPromptKey(t *testing.T) {
	r, err := execute(t, "", "AIza-prompted\n", "--prompt-key", "trends")
	require.NoError(t, err)

	assert.Contains(t, r.stderr.String(), "Gemini API key: ")
	assert.Equal(t, []string{"AIza-prompted"}, r.models.keys)
	assert.Contains(t, r.stdout.String(), `"mode": "live"`)
}

func TestPromptKeySkippedWhenConfigured(t *testing.T) {
	r, err := execute(t, "AIza-configured", "ignored\n", "--prompt-key", "trends")
	require.NoError(t, err)

	assert.NotContains(t, r.stderr.String(), "Gemini API key: ")
	assert.Equal(t, []string{"AIza-configured"}, r.models.keys)
}

func TestPromptKeyEmptyAnswer(t *testing.T) {
	_, err := execute(t, "", "\n", "--prompt-key", "trends")
	assert.ErrorIs(t, err, credential.ErrEmptyKey)
}

func TestPlanDemoWithLocation(t *testing.T) {
	r, err := execute(t, "", "", "plan", "탕후루", "--lat", "37.55", "--lng", "126.92")
	require.NoError(t, err)

	var result content.PlanResult
	require.NoError(t, json.Unmarshal(r.stdout.Bytes(), &result))
	assert.Equal(t, domain.ModeDemo, result.Mode)
	assert.Contains(t, result.Plan.Title, content.DemoMarker)
}

func TestPlanRequiresBothCoordinates(t *testing.T) {
	_, err := execute(t, "", "", "plan", "탕후루", "--lat", "37.55")
	assert.Error(t, err)

	_, err = execute(t, "", "", "plan")
	assert.Error(t, err, "keyword argument is required")
}

func TestThumbnailInvalidSize(t *testing.T) {
	_, err := execute(t, "", "", "thumbnail", "a cup", "--size", "8K")
	assert.ErrorIs(t, err, domain.ErrInvalidImageSize)
}

func TestThumbnailPrintsDataURI(t *testing.T) {
	r, err := execute(t, "", "", "thumbnail", "a cup")
	require.NoError(t, err)

	var result content.ThumbnailResult
	require.NoError(t, json.Unmarshal(r.stdout.Bytes(), &result))
	assert.Equal(t, content.PlaceholderImage, result.ImageURI)
	assert.Equal(t, domain.ModeDemo, result.Mode)
}

func TestThumbnailWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "thumb.svg")

	r, err := execute(t, "", "", "thumbnail", "a cup", "--size", "2K", "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<svg"), "placeholder is decoded to SVG markup")

	var printed map[string]string
	require.NoError(t, json.Unmarshal(r.stdout.Bytes(), &printed))
	assert.Equal(t, "demo", printed["mode"])
	assert.Equal(t, "image/svg+xml", printed["mime_type"])
	assert.Equal(t, out, printed["file"])
}

func TestDecodeDataURI(t *testing.T) {
	data, mime, err := decodeDataURI("data:image/png;base64,iVBORw==")
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)

	data, mime, err = decodeDataURI("data:text/plain,100%25")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", mime)
	assert.Equal(t, "100%", string(data))

	for _, bad := range []string{"https://example.com/a.png", "data:image/png;base64", "data:image/png;base64,***"} {
		_, _, err := decodeDataURI(bad)
		assert.Error(t, err, bad)
	}
}
