package testutils

import (
	"context"
	"sync"

	"github.com/edelwud/pillar-validator/internal/domain"
)

// MockPillarSource implements domain.PillarSource for testing.
type MockPillarSource struct {
	mu     sync.Mutex
	name   string
	pillar domain.Pillar
	err    error
	loads  int
}

// NewMockPillarSource returns a source serving p.
func NewMockPillarSource(name string, p domain.Pillar) *MockPillarSource {
	return &MockPillarSource{name: name, pillar: p}
}

// NewFailingPillarSource returns a source whose loads fail with err.
func NewFailingPillarSource(name string, err error) *MockPillarSource {
	return &MockPillarSource{name: name, err: err}
}

// Name implements domain.PillarSource.
func (m *MockPillarSource) Name() string {
	return m.name
}

// Load implements domain.PillarSource.
func (m *MockPillarSource) Load(ctx context.Context) (domain.Pillar, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}

	return m.pillar, nil
}

// Loads returns how many times Load was called.
func (m *MockPillarSource) Loads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}
