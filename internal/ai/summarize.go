package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/shinyyama/street-transform/internal/knowledge"
)

// Summarizer condenses knowledge notes and ingested documents into design guidelines.
type Summarizer struct {
	models contentModel
	model  string
}

func (s *Summarizer) Summarize(ctx context.Context, notes string, docs []knowledge.Document) (string, error) {
	if s == nil || s.models == nil {
		return "", ErrUnavailable
	}
	parts := summaryParts(notes, docs)
	resp, err := s.models.GenerateContent(ctx, s.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, nil)
	if err != nil {
		return "", fmt.Errorf("knowledge summary: %w", err)
	}
	var text string
	if resp != nil {
		text = strings.TrimSpace(resp.Text())
	}
	if text == "" {
		return "", fmt.Errorf("knowledge summary: %w", ErrEmptyText)
	}
	return text, nil
}

func summaryParts(notes string, docs []knowledge.Document) []*genai.Part {
	var parts []*genai.Part
	if notes != "" {
		parts = append(parts, genai.NewPartFromText(notesIntro+notes))
	}
	if len(docs) > 0 {
		parts = append(parts, genai.NewPartFromText(documentsIntro))
		for _, d := range docs {
			parts = append(parts, genai.NewPartFromURI(d.URI, d.MIMEType))
		}
	}
	return append(parts, genai.NewPartFromText(knowledgeSummaryPrompt))
}
