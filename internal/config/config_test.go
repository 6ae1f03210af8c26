package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTPPort != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.HTTPPort)
	}
	if cfg.AdminPassword == "" {
		t.Fatal("expected a default admin password")
	}
	if cfg.BlobDriver != "memory" {
		t.Fatalf("expected default blob driver memory, got %q", cfg.BlobDriver)
	}
	if cfg.AssistantTimeout != 30*time.Second {
		t.Fatalf("expected default assistant timeout 30s, got %v", cfg.AssistantTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("COWORKING_HTTP_PORT", "9090")
	t.Setenv("COWORKING_ADMIN_PASSWORD", "override")
	t.Setenv("COWORKING_BLOB_DRIVER", "filesystem")
	t.Setenv("COWORKING_BLOB_ROOT", "/tmp/hub-backups")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTPPort != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.HTTPPort)
	}
	if cfg.AdminPassword != "override" {
		t.Fatalf("expected overridden password, got %q", cfg.AdminPassword)
	}
	if cfg.BlobDriver != "filesystem" || cfg.BlobRoot != "/tmp/hub-backups" {
		t.Fatalf("unexpected blob config: %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantMsg string
	}{
		{
			name:    "port out of range",
			env:     map[string]string{"COWORKING_HTTP_PORT": "70000"},
			wantMsg: "HTTP_PORT",
		},
		{
			name:    "unknown blob driver",
			env:     map[string]string{"COWORKING_BLOB_DRIVER": "tape"},
			wantMsg: "BLOB_DRIVER",
		},
		{
			name:    "s3 without bucket",
			env:     map[string]string{"COWORKING_BLOB_DRIVER": "s3"},
			wantMsg: "BLOB_S3_BUCKET",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("expected message naming %q, got %v", tc.wantMsg, err)
			}
		})
	}
}
