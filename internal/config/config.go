package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings represents the application's settings from settings.yaml.
type Settings struct {
	ConfigFile string        `yaml:"config_file"`
	InitFile   string        `yaml:"init_file"`
	Loading    time.Duration `yaml:"loading"`
	ErrorPause time.Duration `yaml:"error_pause"`
	NoColor    bool          `yaml:"no_color"`
	Debug      bool          `yaml:"debug"`
	LogFile    string        `yaml:"log_file"`
}

// Constants for default values.
const (
	AppDirName         = "doctor"
	SettingsFileName   = "settings.yaml"
	DefaultConfigFile  = "~/.doctor_config.json"
	DefaultInitFile    = "~/.bashrc"
	DefaultLogFileName = "doctor.log"
	DefaultLoading     = 2 * time.Second
	DefaultErrorPause  = 2 * time.Second
)

// Defaults returns the hardcoded settings before any file is applied.
func Defaults() *Settings {
	return &Settings{
		ConfigFile: DefaultConfigFile,
		InitFile:   DefaultInitFile,
		Loading:    DefaultLoading,
		ErrorPause: DefaultErrorPause,
		NoColor:    false,
		Debug:      false,
		LogFile:    defaultLogFile(),
	}
}

// LoadConfig loads settings.yaml from the user config directory, printing
// warnings for unusable files to stderr. The returned paths are expanded.
func LoadConfig() *Settings {
	return load(getConfigPath(), os.Stderr)
}

func load(path string, warn io.Writer) *Settings {
	settings := Defaults()
	if path == "" {
		return settings.expand()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(warn, "Warning: Error reading settings file %s: %v. Using defaults.\n", path, err)
		}
		return settings.expand()
	}

	// Keys absent from the file keep their defaults.
	fromFile := *settings
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		fmt.Fprintf(warn, "Warning: Error unmarshalling settings file %s: %v. Using defaults.\n", path, err)
		return settings.expand()
	}
	if err := fromFile.validate(); err != nil {
		fmt.Fprintf(warn, "Warning: Invalid settings file %s: %v. Using defaults.\n", path, err)
		return settings.expand()
	}

	return fromFile.expand()
}

func (s *Settings) validate() error {
	if s.Loading < 0 {
		return fmt.Errorf("loading must not be negative, got %s", s.Loading)
	}
	if s.ErrorPause < 0 {
		return fmt.Errorf("error_pause must not be negative, got %s", s.ErrorPause)
	}
	if strings.TrimSpace(s.ConfigFile) == "" {
		return errors.New("config_file must not be empty")
	}
	if strings.TrimSpace(s.InitFile) == "" {
		return errors.New("init_file must not be empty")
	}
	return nil
}

func (s *Settings) expand() *Settings {
	s.ConfigFile = expandHome(s.ConfigFile)
	s.InitFile = expandHome(s.InitFile)
	s.LogFile = expandHome(s.LogFile)
	return s
}

// expandHome replaces a leading "~/" with the user's home directory. Paths
// are returned unchanged when the home directory cannot be determined.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// configDir returns <user config dir>/doctor, or "" when the user config
// directory is unavailable or unsuitable.
func configDir() string {
	configHome, err := os.UserConfigDir()
	// If UserConfigDir fails OR returns an empty path or "/", it's not suitable for path construction here.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	return filepath.Join(configHome, AppDirName)
}

// getConfigPath returns the settings file path if the file exists.
func getConfigPath() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	path := filepath.Join(dir, SettingsFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func defaultLogFile() string {
	dir := configDir()
	if dir == "" {
		return filepath.Join(os.TempDir(), DefaultLogFileName)
	}
	return filepath.Join(dir, DefaultLogFileName)
}
