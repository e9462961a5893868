package storage

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

type Kind string

const (
	KindUpload    Kind = "uploads"
	KindGenerated Kind = "generated"

	generatedPrefix = "gen_"
	defaultMIME     = "image/jpeg"
)

var (
	ErrInvalidName = errors.New("invalid object name")
	ErrEmptyData   = errors.New("empty image data")

	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
	safeExt     = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)
)

// Store persists transient images and returns a reference a client can fetch.
type Store interface {
	Save(ctx context.Context, kind Kind, name string, data []byte, contentType string) (string, error)
}

// UploadName prefixes a sanitized client filename with a random UUID. The
// extension survives even when the stem is entirely non-ASCII.
func UploadName(original string) string {
	base := original
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	ext := filepath.Ext(base)
	if safeExt.MatchString(ext) {
		base = strings.TrimSuffix(base, ext)
		ext = strings.ToLower(ext)
	} else {
		ext = ""
	}
	stem := strings.Trim(unsafeChars.ReplaceAllString(base, "_"), "._")
	if stem == "" {
		stem = "image"
	}
	return uuid.NewString() + "_" + stem + ext
}

// GeneratedName is the output counterpart of an upload name.
func GeneratedName(uploadName string) string {
	return generatedPrefix + uploadName
}

// DetectMIME guesses an image MIME type from the file extension.
func DetectMIME(name string) string {
	t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if t == "" {
		return defaultMIME
	}
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	if !strings.HasPrefix(t, "image/") {
		return defaultMIME
	}
	return t
}

func validate(kind Kind, name string, data []byte) error {
	if kind != KindUpload && kind != KindGenerated {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidName, kind)
	}
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if len(data) == 0 {
		return ErrEmptyData
	}
	return nil
}
