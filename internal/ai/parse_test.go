package ai

import (
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestFirstInlineImage(t *testing.T) {
	tests := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		wantMIME string
		wantErr  bool
	}{
		{"image part", imageResponse("image/jpeg", []byte("x")), "image/jpeg", false},
		{"missing mime defaults to png", imageResponse("", []byte("x")), "image/png", false},
		{"text only", textResponse("I cannot do that"), "", true},
		{"empty data", imageResponse("image/png", nil), "", true},
		{"no candidates", &genai.GenerateContentResponse{}, "", true},
		{"nil response", nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := firstInlineImage(tt.resp)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrNoImage) {
					t.Fatalf("err=%v want ErrNoImage", err)
				}
				return
			}
			if blob.MIMEType != tt.wantMIME {
				t.Fatalf("mime=%q want=%q", blob.MIMEType, tt.wantMIME)
			}
		})
	}
}

func TestFirstGeneratedImage(t *testing.T) {
	_, err := firstGeneratedImage(&genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{{RAIFilteredReason: "blocked"}},
	})
	if !errors.Is(err, ErrNoImage) {
		t.Fatalf("err=%v want ErrNoImage", err)
	}
	if _, err := firstGeneratedImage(nil); !errors.Is(err, ErrNoImage) {
		t.Fatalf("err=%v want ErrNoImage", err)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"abcdef", 3, "abc..."},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q,%d)=%q want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
