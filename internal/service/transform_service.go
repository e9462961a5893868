package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shinyyama/street-transform/internal/ai"
	"github.com/shinyyama/street-transform/internal/knowledge"
	"github.com/shinyyama/street-transform/internal/model"
	"github.com/shinyyama/street-transform/internal/preset"
	"github.com/shinyyama/street-transform/internal/prompt"
	"github.com/shinyyama/street-transform/internal/reqctx"
	"github.com/shinyyama/street-transform/internal/storage"
)

var (
	ErrInvalidInput = errors.New("invalid_input")
	ErrUnavailable  = errors.New("unavailable")
	ErrStorage      = errors.New("storage_error")
	ErrGeneration   = errors.New("generation_failed")
)

type TransformService interface {
	Transform(ctx context.Context, req model.TransformRequest) (*model.TransformResult, error)
}

// PresetResolver finds a preset by exact key and names the catalog it came from.
type PresetResolver interface {
	Resolve(key string) (preset.Preset, string, bool)
}

// GeneratorSource hands out the image generator for a transform mode.
// ai.Status satisfies it.
type GeneratorSource interface {
	ImageGenerator(mode string) (ai.ImageGenerator, error)
}

type transformService struct {
	presets    PresetResolver
	knowledge  knowledge.Provider
	generators GeneratorSource
	store      storage.Store
	mode       string
}

func NewTransformService(presets PresetResolver, kp knowledge.Provider, generators GeneratorSource, store storage.Store, mode string) TransformService {
	if kp == nil {
		kp = knowledge.Static("")
	}
	return &transformService{
		presets:    presets,
		knowledge:  kp,
		generators: generators,
		store:      store,
		mode:       mode,
	}
}

func (s *transformService) Transform(ctx context.Context, req model.TransformRequest) (*model.TransformResult, error) {
	rid := reqctx.RID(ctx)
	start := time.Now()

	if len(req.Image) == 0 {
		return nil, fmt.Errorf("%w: no image uploaded", ErrInvalidInput)
	}
	if req.Filename == "" {
		return nil, fmt.Errorf("%w: invalid file", ErrInvalidInput)
	}
	gen, err := s.generators.ImageGenerator(s.mode)
	if err != nil {
		log.Printf("[transform] rid=%s stage=client_check err=%v", rid, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	uploadName := storage.UploadName(req.Filename)
	mimeType := storage.DetectMIME(req.Filename)
	ctx = reqctx.WithUpload(ctx, uploadName)
	uploadURL, err := s.store.Save(ctx, storage.KindUpload, uploadName, req.Image, mimeType)
	if err != nil {
		log.Printf("[transform] rid=%s upload=%s stage=save_upload err=%v", rid, uploadName, err)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	var resolved *preset.Preset
	var catalog string
	if p, src, ok := s.presets.Resolve(req.LookupKey()); ok {
		resolved, catalog = &p, src
	}

	kctx := s.knowledge.Context(ctx)
	composed := prompt.Compose(resolved, req.CustomPrompt, kctx)
	presetKey := ""
	if resolved != nil {
		presetKey = resolved.Key
	}
	log.Printf("[transform] rid=%s upload=%s stage=prompt_ready mode=%s prompt_type=%s preset=%q catalog=%s knowledge=%t negative=%t promptLen=%d",
		rid, uploadName, s.mode, req.PromptType, presetKey, catalog, kctx != "", composed.HasNegativePrompt(), len(composed.Text))

	log.Printf("[transform] rid=%s upload=%s stage=generate_start mode=%s", rid, uploadName, s.mode)
	res, err := gen.Generate(ctx, ai.GenerateRequest{
		Prompt:         composed.Text,
		NegativePrompt: composed.NegativePrompt,
		Image:          req.Image,
		MIMEType:       mimeType,
	})
	if err != nil {
		log.Printf("[transform] rid=%s upload=%s stage=generate_fail mode=%s err=%v", rid, uploadName, s.mode, err)
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if res == nil || len(res.Image) == 0 {
		log.Printf("[transform] rid=%s upload=%s stage=generate_fail mode=%s err=empty image", rid, uploadName, s.mode)
		return nil, fmt.Errorf("%w: no image generated", ErrGeneration)
	}
	log.Printf("[transform] rid=%s upload=%s stage=generate_done mode=%s genMs=%d", rid, uploadName, s.mode, res.ElapsedMs)

	genName := storage.GeneratedName(uploadName)
	imageURL, err := s.store.Save(ctx, storage.KindGenerated, genName, res.Image, res.MIMEType)
	if err != nil {
		log.Printf("[transform] rid=%s upload=%s stage=save_generated err=%v", rid, uploadName, err)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	total := time.Since(start).Milliseconds()
	log.Printf("[transform] rid=%s upload=%s stage=done totalMs=%d", rid, uploadName, total)
	return &model.TransformResult{
		UploadName: uploadName,
		UploadURL:  uploadURL,
		ImageURL:   imageURL,
		MIMEType:   res.MIMEType,
		PresetKey:  presetKey,
		Catalog:    catalog,
		Mode:       s.mode,
		ElapsedMs:  total,
	}, nil
}
