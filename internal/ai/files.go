package ai

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"google.golang.org/genai"

	"github.com/shinyyama/street-transform/internal/knowledge"
)

// FileIngester uploads knowledge documents through the Files API.
type FileIngester struct {
	files fileService
}

func (f *FileIngester) Upload(ctx context.Context, path, mimeType string) (knowledge.Document, error) {
	if f == nil || f.files == nil {
		return knowledge.Document{}, ErrUnavailable
	}
	file, err := f.files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType:    mimeType,
		DisplayName: filepath.Base(path),
	})
	if err != nil {
		return knowledge.Document{}, fmt.Errorf("upload %s: %w", filepath.Base(path), err)
	}
	return toDocument(file)
}

func (f *FileIngester) Status(ctx context.Context, name string) (knowledge.Document, error) {
	if f == nil || f.files == nil {
		return knowledge.Document{}, ErrUnavailable
	}
	file, err := f.files.Get(ctx, name, nil)
	if err != nil {
		return knowledge.Document{}, fmt.Errorf("get %s: %w", name, err)
	}
	return toDocument(file)
}

func toDocument(file *genai.File) (knowledge.Document, error) {
	if file == nil {
		return knowledge.Document{}, errors.New("files api returned no file")
	}
	return knowledge.Document{
		Name:        file.Name,
		DisplayName: file.DisplayName,
		URI:         file.URI,
		MIMEType:    file.MIMEType,
		State:       toState(file.State),
	}, nil
}

func toState(s genai.FileState) knowledge.State {
	switch s {
	case genai.FileStateActive:
		return knowledge.StateActive
	case genai.FileStateFailed:
		return knowledge.StateFailed
	default:
		return knowledge.StateProcessing
	}
}
