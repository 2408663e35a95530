package config

import (
	"path/filepath"
	"testing"
)

func TestDataDirDefaultsUnderHome(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)
	t.Setenv(homeEnvVar, "")

	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if want := filepath.Join(home, ".notes"); dir != want {
		t.Fatalf("unexpected data dir: got=%q want=%q", dir, want)
	}
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath: %v", err)
	}
	if want := filepath.Join(home, ".notes", "config.toml"); path != want {
		t.Fatalf("unexpected config path: got=%q want=%q", path, want)
	}
}

func TestDataDirHonorsOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(homeEnvVar, dir)

	logPath, err := UILogPath()
	if err != nil {
		t.Fatalf("UILogPath: %v", err)
	}
	if want := filepath.Join(dir, "ui.log"); logPath != want {
		t.Fatalf("unexpected log path: got=%q want=%q", logPath, want)
	}
}
