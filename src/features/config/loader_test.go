package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
soundcloud:
  clientId: "cid"
  clientSecret: "secret"
  redirectUri: "http://localhost:3636/oauth2/callback"
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	manager, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := manager.Get()
	if cfg.SoundCloud.SearchLimit != 50 {
		t.Errorf("expected default search limit 50, got %d", cfg.SoundCloud.SearchLimit)
	}
	if cfg.SoundCloud.PollIntervalSeconds != 180 {
		t.Errorf("expected default poll interval 180, got %d", cfg.SoundCloud.PollIntervalSeconds)
	}
	if cfg.Server.Port != 3636 {
		t.Errorf("expected default port 3636, got %d", cfg.Server.Port)
	}
	if cfg.Database.Path == "" {
		t.Error("expected default database path")
	}
}

func TestLoadRejectsMissingClientID(t *testing.T) {
	t.Setenv("SOUNDCLOUD_CLIENT_ID", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
soundcloud:
  redirectUri: "http://localhost:3636/oauth2/callback"
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for missing client id")
	}
}

func TestLoadCreatesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	manager, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manager.Get().SoundCloud.RedirectURI == "" {
		t.Error("default config must carry a redirect uri")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file must be written: %v", err)
	}
}
