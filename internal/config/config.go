// Package config loads environment driven configuration. Variables carry the
// COWORKING_ prefix and are parsed with envconfig; every field has a default
// so the binary runs out of the box in development.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every configuration variable.
const envPrefix = "COWORKING"

// Config captures the runtime configuration of the hub service.
type Config struct {
	// HTTP Configuration
	HTTPPort        int           `envconfig:"HTTP_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// AdminPassword is the shared operator secret. The default matches the
	// password the branches already hand out; deployments override it.
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"app5286!@#"`

	// Backup archive sink
	BlobDriver          string `envconfig:"BLOB_DRIVER" default:"memory"`
	BlobRoot            string `envconfig:"BLOB_ROOT" default:"./backups"`
	BlobBucket          string `envconfig:"BLOB_S3_BUCKET" default:""`
	BlobRegion          string `envconfig:"BLOB_S3_REGION" default:""`
	BlobEndpoint        string `envconfig:"BLOB_S3_ENDPOINT" default:""`
	BlobAccessKeyID     string `envconfig:"BLOB_S3_ACCESS_KEY_ID" default:""`
	BlobSecretAccessKey string `envconfig:"BLOB_S3_SECRET_ACCESS_KEY" default:""`
	BlobPathStyle       bool   `envconfig:"BLOB_S3_PATH_STYLE" default:"false"`

	// Assistant Configuration
	AssistantAPIKey  string        `envconfig:"ASSISTANT_API_KEY" default:""`
	AssistantBaseURL string        `envconfig:"ASSISTANT_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	AssistantModel   string        `envconfig:"ASSISTANT_MODEL" default:"gemini-2.5-flash"`
	AssistantTimeout time.Duration `envconfig:"ASSISTANT_TIMEOUT" default:"30s"`

	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load parses the configuration from the current process environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("config: HTTP_PORT %d out of range", c.HTTPPort)
	}
	switch c.BlobDriver {
	case "memory", "filesystem":
	case "s3":
		if c.BlobBucket == "" {
			return fmt.Errorf("config: BLOB_S3_BUCKET required for the s3 driver")
		}
	default:
		return fmt.Errorf("config: unknown BLOB_DRIVER %q", c.BlobDriver)
	}
	return nil
}
