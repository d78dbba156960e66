package mocks

import (
	"context"
	"sync"

	"github.com/user/captcha-relay/internal/domain"
)

// MockSiteRegistry is a mock implementation of domain.SiteRegistry for testing.
type MockSiteRegistry struct {
	mu          sync.Mutex
	Records     map[string]domain.SiteRecord
	RegisterErr error
	LookupErr   error
	ListErr     error
}

func (m *MockSiteRegistry) Register(ctx context.Context, record domain.SiteRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RegisterErr != nil {
		return m.RegisterErr
	}
	if m.Records == nil {
		m.Records = make(map[string]domain.SiteRecord)
	}
	m.Records[record.SiteKey] = record
	return nil
}

func (m *MockSiteRegistry) Lookup(ctx context.Context, siteKey string) (domain.SiteRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LookupErr != nil {
		return domain.SiteRecord{}, m.LookupErr
	}
	record, ok := m.Records[siteKey]
	if !ok {
		return domain.SiteRecord{}, domain.ErrSiteNotFound
	}
	return record, nil
}

func (m *MockSiteRegistry) List(ctx context.Context) ([]domain.SiteSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	summaries := make([]domain.SiteSummary, 0, len(m.Records))
	for _, record := range m.Records {
		summaries = append(summaries, record.Summary())
	}
	return summaries, nil
}

func (m *MockSiteRegistry) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Records), nil
}

// MockChallengeVerifier is a mock implementation of domain.ChallengeVerifier.
// It records every invocation so tests can assert the relay never calls
// upstream for rejected requests.
type MockChallengeVerifier struct {
	mu        sync.Mutex
	Calls     int
	LastToken string
	LastKey   string
	Result    domain.UpstreamResult
	Err       error
}

func (m *MockChallengeVerifier) Verify(ctx context.Context, secretKey, token string) (domain.UpstreamResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.LastKey = secretKey
	m.LastToken = token
	if m.Err != nil {
		return domain.UpstreamResult{}, m.Err
	}
	return m.Result, nil
}
