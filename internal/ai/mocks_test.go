package ai

import (
	"context"

	"google.golang.org/genai"
)

type mockModels struct {
	generateContentFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	generateImagesFunc  func(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)

	contentCalls int
	imageCalls   int
}

func (m *mockModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.contentCalls++
	if m.generateContentFunc != nil {
		return m.generateContentFunc(ctx, model, contents, config)
	}
	return imageResponse("image/png", []byte("fake")), nil
}

func (m *mockModels) GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	m.imageCalls++
	if m.generateImagesFunc != nil {
		return m.generateImagesFunc(ctx, model, prompt, config)
	}
	return &genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{{Image: &genai.Image{ImageBytes: []byte("imagen"), MIMEType: "image/png"}}},
	}, nil
}

type mockFiles struct {
	uploadFunc func(ctx context.Context, path string, config *genai.UploadFileConfig) (*genai.File, error)
	getFunc    func(ctx context.Context, name string, config *genai.GetFileConfig) (*genai.File, error)
}

func (m *mockFiles) UploadFromPath(ctx context.Context, path string, config *genai.UploadFileConfig) (*genai.File, error) {
	return m.uploadFunc(ctx, path, config)
}

func (m *mockFiles) Get(ctx context.Context, name string, config *genai.GetFileConfig) (*genai.File, error) {
	return m.getFunc(ctx, name, config)
}

func imageResponse(mimeType string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{
					{Text: "here you go"},
					{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
				},
			},
		}},
	}
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}
