package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/auth/credentials"
	"golang.org/x/oauth2/google"
	"google.golang.org/genai"

	"github.com/shinyyama/street-transform/internal/config"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

var ErrUnavailable = errors.New("generative client unavailable")

// contentModel is the subset of *genai.Models the generators call.
type contentModel interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// fileService is the subset of *genai.Files used for document ingestion.
type fileService interface {
	UploadFromPath(ctx context.Context, path string, config *genai.UploadFileConfig) (*genai.File, error)
	Get(ctx context.Context, name string, config *genai.GetFileConfig) (*genai.File, error)
}

type Models struct {
	Image  string
	Imagen string
	Text   string
}

// Client is the process-wide handle to the generative service.
type Client struct {
	models          contentModel
	files           fileService
	backend         genai.Backend
	names           Models
	credentialsFile string
	tempCredentials bool
}

func (c *Client) Backend() genai.Backend {
	return c.backend
}

// Close removes the service-account file written from inline JSON. The file
// is needed by storage clients until shutdown.
func (c *Client) Close() error {
	if !c.tempCredentials || c.credentialsFile == "" {
		return nil
	}
	if err := os.Remove(c.credentialsFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove inline credentials: %w", err)
	}
	return nil
}

// CredentialsFile is the service-account file used for the Vertex backend, if any.
func (c *Client) CredentialsFile() string {
	return c.credentialsFile
}

func (c *Client) Ingester() *FileIngester {
	return &FileIngester{files: c.files}
}

func (c *Client) Summarizer() *Summarizer {
	return &Summarizer{models: c.models, model: c.names.Text}
}

// Status is the outcome of Init: either a ready client or the reason there is none.
type Status struct {
	client *Client
	reason string
}

func Ready(c *Client) Status {
	return Status{client: c}
}

func Unavailable(reason string) Status {
	return Status{reason: reason}
}

func (s Status) Ready() bool {
	return s.client != nil
}

func (s Status) Reason() string {
	if s.client != nil {
		return ""
	}
	return s.reason
}

// Close releases the client's temporary files. Safe on an unavailable Status.
func (s Status) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s Status) Client() (*Client, error) {
	if s.client == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, s.reason)
	}
	return s.client, nil
}

// ImageGenerator returns the generator for mode, or ErrUnavailable.
func (s Status) ImageGenerator(mode string) (ImageGenerator, error) {
	c, err := s.Client()
	if err != nil {
		return nil, err
	}
	return c.ImageGenerator(mode)
}

// Init resolves credentials once at startup. Order: API key, service-account
// file, inline service-account JSON. It never fails; misconfiguration is
// reported through the returned Status.
func Init(ctx context.Context, cfg *config.Config) Status {
	names := Models{Image: cfg.ImageModel, Imagen: cfg.ImagenModel, Text: cfg.TextModel}

	if key := cfg.APIKey(); key != "" {
		gc, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			log.Printf("[ai] stage=client_init backend=gemini err=%v", err)
			return Unavailable(fmt.Sprintf("gemini client init failed: %v", err))
		}
		log.Printf("[ai] stage=client_ready backend=gemini")
		return Ready(newClient(gc, genai.BackendGeminiAPI, names, ""))
	}

	path := strings.TrimSpace(cfg.CredentialsFile)
	temp := false
	if path == "" && strings.TrimSpace(cfg.CredentialsJSON) != "" {
		p, err := materializeCredentials(cfg.CredentialsJSON)
		if err != nil {
			log.Printf("[ai] stage=credentials_write err=%v", err)
			return Unavailable(fmt.Sprintf("write inline credentials: %v", err))
		}
		path, temp = p, true
	}
	if path == "" {
		log.Printf("[ai] stage=client_init err=no credentials configured")
		return Unavailable("no API key or service-account credentials configured")
	}

	gc, err := newVertexClient(ctx, path, cfg.CloudProject, cfg.CloudLocation)
	if err != nil {
		log.Printf("[ai] stage=client_init backend=vertex err=%v", err)
		if temp {
			os.Remove(path)
		}
		return Unavailable(err.Error())
	}
	log.Printf("[ai] stage=client_ready backend=vertex location=%s", cfg.CloudLocation)
	c := newClient(gc, genai.BackendVertexAI, names, path)
	c.tempCredentials = temp
	return Ready(c)
}

func newClient(gc *genai.Client, backend genai.Backend, names Models, credentialsFile string) *Client {
	return &Client{
		models:          gc.Models,
		files:           gc.Files,
		backend:         backend,
		names:           names,
		credentialsFile: credentialsFile,
	}
}

func newVertexClient(ctx context.Context, path, project, location string) (*genai.Client, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials %s: %w", path, err)
	}
	gcreds, err := google.CredentialsFromJSON(ctx, data, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	if project == "" {
		project = gcreds.ProjectID
	}
	if project == "" {
		return nil, errors.New("credentials carry no project id and GOOGLE_CLOUD_PROJECT is not set")
	}

	creds, err := credentials.DetectDefault(&credentials.DetectOptions{
		Scopes:          []string{cloudPlatformScope},
		CredentialsFile: path,
	})
	if err != nil {
		return nil, fmt.Errorf("detect credentials: %w", err)
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		Backend:     genai.BackendVertexAI,
		Project:     project,
		Location:    location,
		Credentials: creds,
	})
}

// materializeCredentials writes inline JSON to a 0600 temp file. The caller
// owns the file; Client.Close removes it.
func materializeCredentials(raw string) (string, error) {
	f, err := os.CreateTemp("", "street-transform-sa-*.json")
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := f.Chmod(0o600); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	if _, err := f.WriteString(raw); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
