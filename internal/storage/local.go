package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes images under root/<kind>/ and returns URLs under urlPrefix.
type LocalStore struct {
	root      string
	urlPrefix string
}

func NewLocalStore(root, urlPrefix string) (*LocalStore, error) {
	for _, k := range []Kind{KindUpload, KindGenerated} {
		if err := os.MkdirAll(filepath.Join(root, string(k)), 0o755); err != nil {
			return nil, fmt.Errorf("create %s dir: %w", k, err)
		}
	}
	return &LocalStore{root: root, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

func (s *LocalStore) Save(ctx context.Context, kind Kind, name string, data []byte, contentType string) (string, error) {
	if err := validate(kind, name, data); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := filepath.Join(s.root, string(kind), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return s.urlPrefix + "/" + string(kind) + "/" + name, nil
}

// Path returns where Save wrote name.
func (s *LocalStore) Path(kind Kind, name string) string {
	return filepath.Join(s.root, string(kind), name)
}
