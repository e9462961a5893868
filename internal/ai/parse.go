package ai

import (
	"errors"
	"fmt"

	"google.golang.org/genai"
)

var (
	ErrNoImage   = errors.New("response did not include an image")
	ErrEmptyText = errors.New("response did not include text")
)

// firstInlineImage returns the first inline image part across all candidates.
func firstInlineImage(resp *genai.GenerateContentResponse) (*genai.Blob, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates", ErrNoImage)
	}
	var finish genai.FinishReason
	for _, cand := range resp.Candidates {
		if cand == nil {
			continue
		}
		if cand.FinishReason != "" {
			finish = cand.FinishReason
		}
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				blob := *part.InlineData
				if blob.MIMEType == "" {
					blob.MIMEType = "image/png"
				}
				return &blob, nil
			}
		}
	}
	if text := truncate(resp.Text(), 200); text != "" {
		return nil, fmt.Errorf("%w: finish=%s text=%q", ErrNoImage, finish, text)
	}
	return nil, fmt.Errorf("%w: finish=%s", ErrNoImage, finish)
}

func firstGeneratedImage(resp *genai.GenerateImagesResponse) (*genai.Image, error) {
	if resp == nil {
		return nil, ErrNoImage
	}
	for _, g := range resp.GeneratedImages {
		if g == nil {
			continue
		}
		if g.Image != nil && len(g.Image.ImageBytes) > 0 {
			return g.Image, nil
		}
		if g.RAIFilteredReason != "" {
			return nil, fmt.Errorf("%w: filtered: %s", ErrNoImage, truncate(g.RAIFilteredReason, 200))
		}
	}
	return nil, ErrNoImage
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
