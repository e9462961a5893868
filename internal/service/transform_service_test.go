package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinyyama/street-transform/internal/ai"
	"github.com/shinyyama/street-transform/internal/config"
	"github.com/shinyyama/street-transform/internal/model"
	"github.com/shinyyama/street-transform/internal/preset"
	"github.com/shinyyama/street-transform/internal/prompt"
	"github.com/shinyyama/street-transform/internal/storage"
)

type fixture struct {
	resolver   *mockResolver
	knowledge  *mockKnowledge
	gen        *mockGenerator
	generators *mockGenerators
	store      *mockStore
	svc        TransformService
}

func newFixture() *fixture {
	f := &fixture{
		resolver: &mockResolver{presets: map[string]preset.Preset{
			"Parklet": {
				Key:            "Parklet",
				EnglishName:    "Parklet",
				Typology:       preset.RepurposingParking,
				Description:    "Convert parking spaces into seating.",
				Keywords:       "wooden parklet, curbside seating",
				NegativePrompt: "parked cars",
			},
		}},
		knowledge: &mockKnowledge{},
		gen:       &mockGenerator{},
		store:     &mockStore{},
	}
	f.generators = &mockGenerators{gen: f.gen}
	f.svc = NewTransformService(f.resolver, f.knowledge, f.generators, f.store, config.ModeEdit)
	return f
}

func TestTransformWithPreset(t *testing.T) {
	f := newFixture()
	f.knowledge.text = "Prefer permeable paving."

	res, err := f.svc.Transform(context.Background(), model.TransformRequest{
		Filename:     "street.jpg",
		Image:        []byte("jpeg"),
		CustomPrompt: "Parklet",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, f.resolver.calls)
	assert.Equal(t, 1, f.knowledge.calls)
	assert.Equal(t, 1, f.gen.calls)
	assert.Equal(t, config.ModeEdit, f.generators.mode)

	assert.Contains(t, f.gen.last.Prompt, "wooden parklet, curbside seating")
	assert.Contains(t, f.gen.last.Prompt, "Prefer permeable paving.")
	assert.Equal(t, "parked cars", f.gen.last.NegativePrompt)
	assert.Equal(t, []byte("jpeg"), f.gen.last.Image)
	assert.Equal(t, "image/jpeg", f.gen.last.MIMEType)

	require.Len(t, f.store.saved, 2)
	upload, generated := f.store.saved[0], f.store.saved[1]
	assert.Equal(t, storage.KindUpload, upload.kind)
	assert.True(t, strings.HasSuffix(upload.name, "_street.jpg"))
	assert.Equal(t, storage.KindGenerated, generated.kind)
	assert.Equal(t, "gen_"+upload.name, generated.name)
	assert.Equal(t, []byte("generated"), generated.data)

	assert.Equal(t, "/static/generated/gen_"+upload.name, res.ImageURL)
	assert.Equal(t, "Parklet", res.PresetKey)
	assert.Equal(t, "test-catalog", res.Catalog)
}

func TestTransformFallbackPrompt(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Transform(context.Background(), model.TransformRequest{
		Filename:     "photo.png",
		Image:        []byte("png"),
		CustomPrompt: "add more trees",
	})
	require.NoError(t, err)
	assert.Contains(t, f.gen.last.Prompt, "add more trees")
	assert.Contains(t, f.gen.last.Prompt, prompt.NoGuidelines)
	assert.Empty(t, f.gen.last.NegativePrompt)
	assert.Equal(t, "image/png", f.gen.last.MIMEType)
}

func TestTransformEmptyPromptUsesDefault(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Transform(context.Background(), model.TransformRequest{Filename: "x.jpg", Image: []byte("x")})
	require.NoError(t, err)
	assert.Contains(t, f.gen.last.Prompt, prompt.DefaultUserRequest)
}

func TestTransformExplicitPresetKey(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Transform(context.Background(), model.TransformRequest{
		Filename:     "x.jpg",
		Image:        []byte("x"),
		PresetKey:    "Parklet",
		CustomPrompt: "add plants",
		PromptType:   model.PromptTypePreset,
	})
	require.NoError(t, err)
	assert.Equal(t, "Parklet", f.resolver.lastKey)
	assert.Contains(t, f.gen.last.Prompt, "wooden parklet, curbside seating")
	assert.Contains(t, f.gen.last.Prompt, "add plants")
	assert.Equal(t, "parked cars", f.gen.last.NegativePrompt)
}

func TestTransformInvalidInputMakesNoCalls(t *testing.T) {
	tests := []struct {
		name string
		req  model.TransformRequest
	}{
		{"no image", model.TransformRequest{Filename: "x.jpg"}},
		{"empty filename", model.TransformRequest{Image: []byte("x")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.svc.Transform(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Equal(t, 0, f.generators.calls)
			assert.Equal(t, 0, f.gen.calls)
			assert.Equal(t, 0, f.knowledge.calls)
			assert.Empty(t, f.store.saved)
		})
	}
}

func TestTransformUnavailableClient(t *testing.T) {
	f := newFixture()
	f.generators.err = ai.ErrUnavailable
	_, err := f.svc.Transform(context.Background(), model.TransformRequest{Filename: "x.jpg", Image: []byte("x")})
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Empty(t, f.store.saved)
	assert.Equal(t, 0, f.knowledge.calls)
}

func TestTransformGenerationFailure(t *testing.T) {
	f := newFixture()
	f.gen.generateFunc = func(ctx context.Context, req ai.GenerateRequest) (*ai.GenerateResult, error) {
		return nil, ai.ErrNoImage
	}
	_, err := f.svc.Transform(context.Background(), model.TransformRequest{Filename: "x.jpg", Image: []byte("x")})
	assert.True(t, errors.Is(err, ErrGeneration))
	assert.Equal(t, 1, f.gen.calls)
	require.Len(t, f.store.saved, 1)
	assert.Equal(t, storage.KindUpload, f.store.saved[0].kind)
}

func TestTransformStorageFailure(t *testing.T) {
	tests := []struct {
		name      string
		failFor   storage.Kind
		wantCalls int
	}{
		{"upload", storage.KindUpload, 0},
		{"generated", storage.KindGenerated, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.store.failFor = tt.failFor
			f.store.err = errors.New("disk full")
			_, err := f.svc.Transform(context.Background(), model.TransformRequest{Filename: "x.jpg", Image: []byte("x")})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrStorage))
			assert.Contains(t, err.Error(), "disk full")
			assert.Equal(t, tt.wantCalls, f.gen.calls)
		})
	}
}
