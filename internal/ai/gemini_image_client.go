package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/shinyyama/street-transform/internal/config"
	"github.com/shinyyama/street-transform/internal/reqctx"
)

var ErrUnknownMode = errors.New("unknown transform mode")

type GenerateRequest struct {
	Prompt         string
	NegativePrompt string
	Image          []byte
	MIMEType       string
}

type GenerateResult struct {
	Image     []byte
	MIMEType  string
	ElapsedMs int64
}

// ImageGenerator is one logical transform(image, prompt) -> image call.
type ImageGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

// ImageGenerator builds the generator for one of the transform modes.
func (c *Client) ImageGenerator(mode string) (ImageGenerator, error) {
	switch mode {
	case config.ModeEdit:
		return &EditClient{models: c.models, model: c.names.Image}, nil
	case config.ModeGenerate:
		return c.imagen(), nil
	case config.ModeAnalyze:
		return &AnalyzeClient{models: c.models, model: c.names.Text, imagen: c.imagen()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func (c *Client) imagen() *ImagenClient {
	return &ImagenClient{
		models:                 c.models,
		model:                  c.names.Imagen,
		supportsNegativePrompt: c.backend == genai.BackendVertexAI,
	}
}

// EditClient sends the uploaded photo and the prompt to an image-output
// Gemini model in a single request.
type EditClient struct {
	models contentModel
	model  string
}

func (c *EditClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if len(req.Image) == 0 {
		return nil, errors.New("image is required")
	}
	mimeType := strings.TrimSpace(req.MIMEType)
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(req.Image, mimeType),
		genai.NewPartFromText(withAvoidList(req.Prompt, req.NegativePrompt)),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, c.model, contents, cfg)
	elapsed := time.Since(start).Milliseconds()
	logCall(ctx, "edit", c.model, elapsed, err)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	blob, err := firstInlineImage(resp)
	if err != nil {
		return nil, err
	}
	return &GenerateResult{Image: blob.Data, MIMEType: blob.MIMEType, ElapsedMs: elapsed}, nil
}

// ImagenClient renders text-to-image. The uploaded photo is not sent.
type ImagenClient struct {
	models                 contentModel
	model                  string
	supportsNegativePrompt bool
}

func (c *ImagenClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	prompt := req.Prompt
	cfg := &genai.GenerateImagesConfig{NumberOfImages: 1}
	if req.NegativePrompt != "" {
		if c.supportsNegativePrompt {
			cfg.NegativePrompt = req.NegativePrompt
		} else {
			prompt = withAvoidList(prompt, req.NegativePrompt)
		}
	}

	start := time.Now()
	resp, err := c.models.GenerateImages(ctx, c.model, prompt, cfg)
	elapsed := time.Since(start).Milliseconds()
	logCall(ctx, "imagen", c.model, elapsed, err)
	if err != nil {
		return nil, fmt.Errorf("imagen generate: %w", err)
	}
	img, err := firstGeneratedImage(resp)
	if err != nil {
		return nil, err
	}
	mimeType := img.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}
	return &GenerateResult{Image: img.ImageBytes, MIMEType: mimeType, ElapsedMs: elapsed}, nil
}

// AnalyzeClient describes the photo with the text model, then renders the
// description plus the prompt with Imagen.
type AnalyzeClient struct {
	models contentModel
	model  string
	imagen *ImagenClient
}

func (c *AnalyzeClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if len(req.Image) == 0 {
		return nil, errors.New("image is required")
	}
	mimeType := strings.TrimSpace(req.MIMEType)
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(req.Image, mimeType),
		genai.NewPartFromText(sceneAnalysisPrompt),
	}
	temp := float32(0.2)
	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{Temperature: &temp})
	logCall(ctx, "scene_analysis", c.model, time.Since(start).Milliseconds(), err)
	if err != nil {
		return nil, fmt.Errorf("scene analysis: %w", err)
	}
	var scene string
	if resp != nil {
		scene = strings.TrimSpace(resp.Text())
	}
	if scene == "" {
		return nil, fmt.Errorf("scene analysis: %w", ErrEmptyText)
	}

	res, err := c.imagen.Generate(ctx, GenerateRequest{
		Prompt:         BuildAnalyzedPrompt(scene, req.Prompt),
		NegativePrompt: req.NegativePrompt,
	})
	if err != nil {
		return nil, err
	}
	res.ElapsedMs = time.Since(start).Milliseconds()
	return res, nil
}

func logCall(ctx context.Context, stage, model string, ms int64, err error) {
	if err != nil {
		log.Printf("[ai] rid=%s upload=%s stage=%s_fail model=%s ms=%d err=%v", reqctx.RID(ctx), reqctx.Upload(ctx), stage, model, ms, err)
		return
	}
	log.Printf("[ai] rid=%s upload=%s stage=%s_ok model=%s ms=%d", reqctx.RID(ctx), reqctx.Upload(ctx), stage, model, ms)
}
