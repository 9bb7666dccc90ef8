package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/petrichorlab/eightdays/internal/provider"
)

// MockProvider is a mock implementation of TextProvider for testing.
// Safe for concurrent use.
type MockProvider struct {
	mu      sync.Mutex
	results []string
	index   int
	prompts []string

	// Err, when set, is returned by every call
	Err error
}

var _ provider.TextProvider = (*MockProvider)(nil)

// NewMockProvider creates a new MockProvider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Complete returns the next queued result, or Err if set
func (p *MockProvider) Complete(ctx context.Context, prompt string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompts = append(p.prompts, prompt)
	if p.Err != nil {
		return "", p.Err
	}
	if p.index >= len(p.results) {
		return "", errors.New("mock provider: no queued results")
	}
	result := p.results[p.index]
	p.index++
	return result, nil
}

// QueueResult adds completions to the result queue
func (p *MockProvider) QueueResult(results ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.results = append(p.results, results...)
}

// Prompts returns a copy of every prompt the mock was called with
func (p *MockProvider) Prompts() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.prompts))
	copy(out, p.prompts)
	return out
}

// CallCount returns how many times Complete was called
func (p *MockProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.prompts)
}
