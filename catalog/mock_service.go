package catalog

import (
	"context"
	"sync"
)

// MockCatalogService is a test double for CatalogService.
// Each method can be overridden with a custom function.
// If not overridden, methods return empty defaults.
// Thread-safe for use in concurrent tests.
type MockCatalogService struct {
	FetchCategoryTreeFunc func(ctx context.Context, maxLevels int) ([]Category, error)
	ClassifyPathFunc      func(ctx context.Context, path string) (*PageType, error)

	mu sync.Mutex

	// Calls tracks all method invocations for assertions
	Calls []MockCall
}

// MockCall records a method call for test assertions.
type MockCall struct {
	Method string
	Args   []any
}

// Ensure MockCatalogService implements CatalogService
var _ CatalogService = (*MockCatalogService)(nil)

func (m *MockCatalogService) FetchCategoryTree(ctx context.Context, maxLevels int) ([]Category, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: "FetchCategoryTree", Args: []any{maxLevels}})
	fn := m.FetchCategoryTreeFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, maxLevels)
	}
	return nil, nil
}

func (m *MockCatalogService) ClassifyPath(ctx context.Context, path string) (*PageType, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: "ClassifyPath", Args: []any{path}})
	fn := m.ClassifyPathFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, path)
	}
	return nil, nil
}

// CallsTo returns the number of calls recorded for a method.
func (m *MockCatalogService) CallsTo(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.Calls {
		if c.Method == method {
			n++
		}
	}
	return n
}
