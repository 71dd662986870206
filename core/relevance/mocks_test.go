package relevance

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"jobfinder-api/core/domain"
	"jobfinder-api/core/interfaces"
)

// mockCache is an in-memory Cache implementation with call counting
type mockCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	gets    int
	sets    int
}

func newMockCache() *mockCache {
	return &mockCache{entries: map[string][]byte{}}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if data, ok := m.entries[key]; ok {
		return data, nil
	}
	return nil, errCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	m.entries[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

var errCacheMiss = cacheMissError{}

type cacheMissError struct{}

func (cacheMissError) Error() string { return "key not found" }

// mockProvider is a scriptable ScoreProvider with call counting
type mockProvider struct {
	mu        sync.Mutex
	calls     int
	batchFunc func(ctx context.Context, req *domain.JobRequest, jobs []domain.Job) ([]*Assessment, error)
}

func (m *mockProvider) ScoreBatch(ctx context.Context, req *domain.JobRequest, jobs []domain.Job) ([]*Assessment, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.batchFunc != nil {
		return m.batchFunc(ctx, req, jobs)
	}
	return nil, nil
}

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc  func(ctx context.Context, url string) (interfaces.Response, error)
	postFunc func(ctx context.Context, url string, body io.Reader) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	if m.postFunc != nil {
		return m.postFunc(ctx, url, body)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}
