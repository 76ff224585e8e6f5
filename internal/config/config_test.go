package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGetConfigPath_UsesXDGPath_When_FileExists(t *testing.T) {
	tempDir := t.TempDir()
	xdgRoot := filepath.Join(tempDir, "xdg")
	configHome := filepath.Join(xdgRoot, AppDirName)
	if err := os.MkdirAll(configHome, 0o755); err != nil {
		t.Fatalf("failed to create XDG config directory: %v", err)
	}
	configPath := filepath.Join(configHome, SettingsFileName)
	if err := os.WriteFile(configPath, []byte("debug: true\n"), 0o600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	t.Setenv("XDG_CONFIG_HOME", xdgRoot)
	t.Setenv("HOME", filepath.Join(tempDir, "home"))

	got := getConfigPath()
	if got != configPath {
		t.Fatalf("expected XDG settings path %q, got %q", configPath, got)
	}
}

func TestGetConfigPath_ReturnsEmpty_When_NoSettingsFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tempDir, "home"))

	got := getConfigPath()
	if got != "" {
		t.Fatalf("expected empty settings path, got %q", got)
	}
}

func TestLoad_MergesYAMLOverrides_When_FilePresent(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	yamlContent := "" +
		"config_file: ~/custom.json\n" +
		"init_file: /tmp/zshrc\n" +
		"loading: 0s\n" +
		"error_pause: 500ms\n" +
		"no_color: true\n" +
		"debug: true\n"
	path := filepath.Join(tempDir, SettingsFileName)
	if err := os.WriteFile(path, []byte(yamlContent), 0o600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	var warn bytes.Buffer
	got := load(path, &warn)

	if warn.Len() != 0 {
		t.Fatalf("unexpected warning: %s", warn.String())
	}
	if got.ConfigFile != filepath.Join(tempDir, "custom.json") {
		t.Fatalf("config_file not expanded: %q", got.ConfigFile)
	}
	if got.InitFile != "/tmp/zshrc" {
		t.Fatalf("unexpected init_file: %q", got.InitFile)
	}
	if got.Loading != 0 || got.ErrorPause != 500*time.Millisecond {
		t.Fatalf("unexpected durations: loading=%s error_pause=%s", got.Loading, got.ErrorPause)
	}
	if !got.NoColor || !got.Debug {
		t.Fatalf("unexpected flags: %+v", got)
	}
}

func TestLoad_KeepsDefaults_When_KeysMissing(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	path := filepath.Join(tempDir, SettingsFileName)
	if err := os.WriteFile(path, []byte("no_color: true\n"), 0o600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	got := load(path, &bytes.Buffer{})

	if got.Loading != DefaultLoading || got.ErrorPause != DefaultErrorPause {
		t.Fatalf("expected default durations, got %+v", got)
	}
	if got.InitFile != filepath.Join(tempDir, ".bashrc") {
		t.Fatalf("expected default init file, got %q", got.InitFile)
	}
	if !got.NoColor {
		t.Fatal("expected no_color from file")
	}
}

func TestLoad_ReturnsDefaults_When_NoSettingsFound(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	var warn bytes.Buffer
	got := load("", &warn)

	if warn.Len() != 0 {
		t.Fatalf("missing settings must not warn, got %q", warn.String())
	}
	if got.ConfigFile != filepath.Join(tempDir, ".doctor_config.json") {
		t.Fatalf("unexpected default config file: %q", got.ConfigFile)
	}
	if got.NoColor || got.Debug {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestLoad_WarnsAndUsesDefaults_When_FileMalformed(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	path := filepath.Join(tempDir, SettingsFileName)
	if err := os.WriteFile(path, []byte("loading: [not, a, duration]\n"), 0o600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	var warn bytes.Buffer
	got := load(path, &warn)

	if !strings.Contains(warn.String(), "Warning: Error unmarshalling settings file") {
		t.Fatalf("expected unmarshal warning, got %q", warn.String())
	}
	if got.Loading != DefaultLoading {
		t.Fatalf("expected default loading, got %s", got.Loading)
	}
}

func TestLoad_WarnsAndUsesDefaults_When_DurationNegative(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	path := filepath.Join(tempDir, SettingsFileName)
	if err := os.WriteFile(path, []byte("loading: -1s\n"), 0o600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	var warn bytes.Buffer
	got := load(path, &warn)

	if !strings.Contains(warn.String(), "loading must not be negative") {
		t.Fatalf("expected validation warning, got %q", warn.String())
	}
	if got.Loading != DefaultLoading {
		t.Fatalf("expected default loading, got %s", got.Loading)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := map[string]string{
		"~/.bashrc":        filepath.Join(home, ".bashrc"),
		"~":                home,
		"/etc/bash.bashrc": "/etc/bash.bashrc",
		"relative/path":    "relative/path",
		"~other/file":      "~other/file",
	}
	for in, want := range tests {
		if got := expandHome(in); got != want {
			t.Errorf("expandHome(%q) = %q, want %q", in, got, want)
		}
	}
}
