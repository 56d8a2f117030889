package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/trendpulse/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, req *generation.Request) (*generation.Response, error)

	// Default response values
	Response *generation.Response
	Err      error

	// Call tracking for verification
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Requests contains all requests passed to Generate calls
		Requests []*generation.Request
	}
}

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(ctx context.Context, req *generation.Request) (*generation.Response, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Requests = append(m.GenerateCalls.Requests, req)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}
	return m.Response, m.Err
}

// CallCount returns how many times Generate was called
func (m *MockGenerator) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// LastRequest returns the most recent request, or nil when Generate was never called
func (m *MockGenerator) LastRequest() *generation.Request {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Requests) == 0 {
		return nil
	}
	return m.GenerateCalls.Requests[len(m.GenerateCalls.Requests)-1]
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()

	m.GenerateCalls.Count = 0
	m.GenerateCalls.Requests = nil
}

// NewMockGeneratorWithText creates a MockGenerator whose response body is text
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{
		Response: &generation.Response{Text: text},
	}
}

// NewMockGeneratorWithResponse creates a MockGenerator that returns resp
func NewMockGeneratorWithResponse(resp *generation.Response) *MockGenerator {
	return &MockGenerator{
		Response: resp,
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// MockGeneratorThatFails creates a MockGenerator that simulates a provider failure
func MockGeneratorThatFails() *MockGenerator {
	return NewMockGeneratorWithError(generation.ErrCallFailure)
}

// MockGeneratorSource implements generation.GeneratorSource for testing
type MockGeneratorSource struct {
	// GeneratorFn allows test cases to mock the Generator behavior
	GeneratorFn func(ctx context.Context) (generation.Generator, error)

	// Default return values
	Gen generation.Generator
	Err error

	mu    sync.Mutex
	calls int
}

// NewMockGeneratorSource creates a source that always hands out gen
func NewMockGeneratorSource(gen generation.Generator) *MockGeneratorSource {
	return &MockGeneratorSource{Gen: gen}
}

// Generator implements the generation.GeneratorSource interface
func (m *MockGeneratorSource) Generator(ctx context.Context) (generation.Generator, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.GeneratorFn != nil {
		return m.GeneratorFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Gen, nil
}

// CallCount returns how many times Generator was called
func (m *MockGeneratorSource) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
