package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// GCSStore writes images to a Cloud Storage bucket and returns Firebase
// download-token URLs so objects are fetchable without signing.
type GCSStore struct {
	client     *gcs.Client
	bucketName string
	prefix     string
}

func NewGCSStore(ctx context.Context, bucketName, prefix string, opts ...option.ClientOption) (*GCSStore, error) {
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("init storage client: %w", err)
	}
	return &GCSStore{client: client, bucketName: bucketName, prefix: strings.Trim(prefix, "/")}, nil
}

func (s *GCSStore) Save(ctx context.Context, kind Kind, name string, data []byte, contentType string) (string, error) {
	if err := validate(kind, name, data); err != nil {
		return "", err
	}
	objectPath := s.objectPath(kind, name)
	token := uuid.NewString()

	w := s.client.Bucket(s.bucketName).Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = map[string]string{
		"firebaseStorageDownloadTokens": token,
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write gs://%s/%s: %w", s.bucketName, objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close gs://%s/%s: %w", s.bucketName, objectPath, err)
	}
	return DownloadURL(s.bucketName, objectPath, token), nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}

func (s *GCSStore) objectPath(kind Kind, name string) string {
	if s.prefix == "" {
		return string(kind) + "/" + name
	}
	return s.prefix + "/" + string(kind) + "/" + name
}

func DownloadURL(bucketName, objectPath, token string) string {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		bucketName, url.PathEscape(objectPath), token)
}
