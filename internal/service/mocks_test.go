package service

import (
	"context"
	"sync"

	"github.com/shinyyama/street-transform/internal/ai"
	"github.com/shinyyama/street-transform/internal/preset"
	"github.com/shinyyama/street-transform/internal/storage"
)

type mockResolver struct {
	presets map[string]preset.Preset
	calls   int
	lastKey string
}

func (m *mockResolver) Resolve(key string) (preset.Preset, string, bool) {
	m.calls++
	m.lastKey = key
	p, ok := m.presets[key]
	return p, "test-catalog", ok
}

type mockKnowledge struct {
	text  string
	calls int
}

func (m *mockKnowledge) Context(ctx context.Context) string {
	m.calls++
	return m.text
}

type mockGenerator struct {
	generateFunc func(ctx context.Context, req ai.GenerateRequest) (*ai.GenerateResult, error)
	calls        int
	last         ai.GenerateRequest
}

func (m *mockGenerator) Generate(ctx context.Context, req ai.GenerateRequest) (*ai.GenerateResult, error) {
	m.calls++
	m.last = req
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return &ai.GenerateResult{Image: []byte("generated"), MIMEType: "image/png"}, nil
}

type mockGenerators struct {
	gen   *mockGenerator
	err   error
	calls int
	mode  string
}

func (m *mockGenerators) ImageGenerator(mode string) (ai.ImageGenerator, error) {
	m.calls++
	m.mode = mode
	if m.err != nil {
		return nil, m.err
	}
	return m.gen, nil
}

type savedObject struct {
	kind        storage.Kind
	name        string
	data        []byte
	contentType string
}

type mockStore struct {
	mu      sync.Mutex
	saved   []savedObject
	failFor storage.Kind
	err     error
}

func (m *mockStore) Save(ctx context.Context, kind storage.Kind, name string, data []byte, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil && kind == m.failFor {
		return "", m.err
	}
	m.saved = append(m.saved, savedObject{kind: kind, name: name, data: data, contentType: contentType})
	return "/static/" + string(kind) + "/" + name, nil
}
