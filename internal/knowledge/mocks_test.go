package knowledge

import (
	"context"
	"sync"
	"sync/atomic"
)

type mockIngester struct {
	uploadFunc func(ctx context.Context, path, mimeType string) (Document, error)
	statusFunc func(ctx context.Context, name string) (Document, error)

	mu          sync.Mutex
	uploaded    []string
	statusCalls int
}

func (m *mockIngester) Upload(ctx context.Context, path, mimeType string) (Document, error) {
	m.mu.Lock()
	m.uploaded = append(m.uploaded, path)
	m.mu.Unlock()
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, path, mimeType)
	}
	return Document{Name: "files/" + path, URI: "https://files.example/" + path, MIMEType: mimeType, State: StateActive}, nil
}

func (m *mockIngester) Status(ctx context.Context, name string) (Document, error) {
	m.mu.Lock()
	m.statusCalls++
	m.mu.Unlock()
	if m.statusFunc != nil {
		return m.statusFunc(ctx, name)
	}
	return Document{Name: name, State: StateActive}, nil
}

type mockSummarizer struct {
	summarizeFunc func(ctx context.Context, notes string, docs []Document) (string, error)
	calls         atomic.Int32
}

func (m *mockSummarizer) Summarize(ctx context.Context, notes string, docs []Document) (string, error) {
	m.calls.Add(1)
	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, notes, docs)
	}
	return "summary of " + notes, nil
}
