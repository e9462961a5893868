package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	ModeEdit     = "edit"
	ModeGenerate = "generate"
	ModeAnalyze  = "analyze"

	StorageLocal = "local"
	StorageGCS   = "gcs"
)

type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	StaticDir      string   `env:"STATIC_DIR" envDefault:"static"`
	PublicBaseURL  string   `env:"PUBLIC_BASE_URL"`
	MaxUploadMB    int      `env:"MAX_UPLOAD_MB" envDefault:"25"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	GoogleAPIKey    string `env:"GOOGLE_API_KEY"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	CloudProject    string `env:"GOOGLE_CLOUD_PROJECT"`
	CloudLocation   string `env:"GOOGLE_CLOUD_LOCATION" envDefault:"us-central1"`
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	CredentialsJSON string `env:"GOOGLE_CREDENTIALS_JSON"`

	TransformMode string `env:"TRANSFORM_MODE" envDefault:"edit"`
	ImageModel    string `env:"IMAGE_MODEL" envDefault:"gemini-2.5-flash-image"`
	ImagenModel   string `env:"IMAGEN_MODEL" envDefault:"imagen-4.0-generate-001"`
	TextModel     string `env:"TEXT_MODEL" envDefault:"gemini-2.0-flash"`

	KnowledgeEnabled         bool          `env:"KNOWLEDGE_ENABLED" envDefault:"true"`
	KnowledgeDir             string        `env:"KNOWLEDGE_BASE_DIR" envDefault:"knowledge_base"`
	KnowledgePollInterval    time.Duration `env:"KNOWLEDGE_POLL_INTERVAL" envDefault:"1s"`
	KnowledgePollMaxAttempts int           `env:"KNOWLEDGE_POLL_MAX_ATTEMPTS" envDefault:"120"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"local"`
	StorageBucket  string `env:"STORAGE_BUCKET"`

	AuthRequired      bool   `env:"AUTH_REQUIRED" envDefault:"false"`
	FirebaseProjectID string `env:"FIREBASE_PROJECT_ID"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// APIKey prefers GOOGLE_API_KEY and falls back to GEMINI_API_KEY.
func (c *Config) APIKey() string {
	if k := strings.TrimSpace(c.GoogleAPIKey); k != "" {
		return k
	}
	return strings.TrimSpace(c.GeminiAPIKey)
}

func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func (c *Config) validate() error {
	c.TransformMode = strings.ToLower(strings.TrimSpace(c.TransformMode))
	switch c.TransformMode {
	case ModeEdit, ModeGenerate, ModeAnalyze:
	default:
		return fmt.Errorf("TRANSFORM_MODE must be one of edit, generate, analyze: got %q", c.TransformMode)
	}

	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	switch c.StorageBackend {
	case StorageLocal:
	case StorageGCS:
		if strings.TrimSpace(c.StorageBucket) == "" {
			return errors.New("STORAGE_BUCKET is required when STORAGE_BACKEND=gcs")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be local or gcs: got %q", c.StorageBackend)
	}

	if c.AuthRequired && strings.TrimSpace(c.FirebaseProjectID) == "" {
		return errors.New("FIREBASE_PROJECT_ID is required when AUTH_REQUIRED=true")
	}
	if c.MaxUploadMB <= 0 {
		c.MaxUploadMB = 25
	}
	if c.KnowledgePollInterval <= 0 {
		c.KnowledgePollInterval = time.Second
	}
	if c.KnowledgePollMaxAttempts <= 0 {
		c.KnowledgePollMaxAttempts = 120
	}
	return nil
}
