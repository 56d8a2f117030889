package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/trendpulse/internal/content"
	"github.com/phrazzld/trendpulse/internal/domain"
)

// PlanCall records the arguments of one GeneratePlan call
type PlanCall struct {
	Keyword  string
	Location *domain.LatLng
}

// ThumbnailCall records the arguments of one GenerateThumbnail call
type ThumbnailCall struct {
	Prompt string
	Size   domain.ImageSize
}

// MockContentService implements content.Service for testing
type MockContentService struct {
	FetchTrendsFn       func(ctx context.Context) content.TrendsResult
	GeneratePlanFn      func(ctx context.Context, keyword string, loc *domain.LatLng) content.PlanResult
	GenerateThumbnailFn func(ctx context.Context, prompt string, size domain.ImageSize) content.ThumbnailResult
	CredentialStatusFn  func(ctx context.Context) content.CredentialStatus

	mu             sync.Mutex
	PlanCalls      []PlanCall
	ThumbnailCalls []ThumbnailCall
	TrendsCalls    int
}

// FetchTrends implements content.Service
func (m *MockContentService) FetchTrends(ctx context.Context) content.TrendsResult {
	m.mu.Lock()
	m.TrendsCalls++
	m.mu.Unlock()

	if m.FetchTrendsFn != nil {
		return m.FetchTrendsFn(ctx)
	}
	return content.TrendsResult{Trends: content.MockTrends(), Mode: domain.ModeDemo}
}

// GeneratePlan implements content.Service
func (m *MockContentService) GeneratePlan(
	ctx context.Context,
	keyword string,
	loc *domain.LatLng,
) content.PlanResult {
	m.mu.Lock()
	m.PlanCalls = append(m.PlanCalls, PlanCall{Keyword: keyword, Location: loc})
	m.mu.Unlock()

	if m.GeneratePlanFn != nil {
		return m.GeneratePlanFn(ctx, keyword, loc)
	}
	return content.PlanResult{Plan: content.MockPlan(), Mode: domain.ModeDemo}
}

// GenerateThumbnail implements content.Service
func (m *MockContentService) GenerateThumbnail(
	ctx context.Context,
	prompt string,
	size domain.ImageSize,
) content.ThumbnailResult {
	m.mu.Lock()
	m.ThumbnailCalls = append(m.ThumbnailCalls, ThumbnailCall{Prompt: prompt, Size: size})
	m.mu.Unlock()

	if m.GenerateThumbnailFn != nil {
		return m.GenerateThumbnailFn(ctx, prompt, size)
	}
	return content.ThumbnailResult{ImageURI: content.PlaceholderImage, Mode: domain.ModeDemo}
}

// CredentialStatus implements content.Service
func (m *MockContentService) CredentialStatus(ctx context.Context) content.CredentialStatus {
	if m.CredentialStatusFn != nil {
		return m.CredentialStatusFn(ctx)
	}
	return content.CredentialStatus{}
}
