package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", filepath.Join(t.TempDir(), "home"))
	t.Setenv(homeEnvVar, "")
	t.Setenv(APIURLEnvVar, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL() != "http://localhost:5000" {
		t.Fatalf("unexpected base url: %q", cfg.APIBaseURL())
	}
	if cfg.APITimeout() != 10*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.APITimeout())
	}
	if cfg.DarkTheme() {
		t.Fatalf("expected light theme by default")
	}
	if !cfg.RenderMarkdown() {
		t.Fatalf("expected markdown rendering by default")
	}
	if cfg.SidebarWidth() != defaultSidebarWidth {
		t.Fatalf("unexpected sidebar width: %d", cfg.SidebarWidth())
	}
}

func TestLoadFromTOML(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)
	t.Setenv(homeEnvVar, "")
	t.Setenv(APIURLEnvVar, "")

	dataDir := filepath.Join(home, ".notes")
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	content := []byte("[api]\nbase_url = \"notes.internal:8080/\"\ntimeout = \"3s\"\n\n[ui]\ntheme = \"Dark\"\nrender_markdown = false\nsidebar_width = 500\n\n[logging]\nlevel = \"DEBUG\"\n")
	if err := os.WriteFile(filepath.Join(dataDir, "config.toml"), content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL() != "http://notes.internal:8080" {
		t.Fatalf("unexpected base url: %q", cfg.APIBaseURL())
	}
	if cfg.APITimeout() != 3*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.APITimeout())
	}
	if !cfg.DarkTheme() {
		t.Fatalf("expected dark theme")
	}
	if cfg.RenderMarkdown() {
		t.Fatalf("expected markdown rendering disabled")
	}
	if cfg.SidebarWidth() != maxSidebarWidth {
		t.Fatalf("expected sidebar width clamped to %d, got %d", maxSidebarWidth, cfg.SidebarWidth())
	}
	if cfg.LogLevel() != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel())
	}
}

func TestEnvOverridesBaseURL(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(homeEnvVar, dir)
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[api]\nbase_url = \"http://file:1\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(APIURLEnvVar, "https://api.example.com/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL() != "https://api.example.com" {
		t.Fatalf("unexpected base url: %q", cfg.APIBaseURL())
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(homeEnvVar, dir)
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[api\nbase_url="), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestInvalidTimeoutFallsBack(t *testing.T) {
	cfg := Default()
	cfg.API.Timeout = "soon"
	if cfg.APITimeout() != defaultAPITimeout {
		t.Fatalf("expected default timeout, got %v", cfg.APITimeout())
	}
	cfg.API.Timeout = "-1s"
	if cfg.APITimeout() != defaultAPITimeout {
		t.Fatalf("expected default timeout for negative, got %v", cfg.APITimeout())
	}
}
