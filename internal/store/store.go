// Package store persists the customization record as a JSON file.
//
// Loading is deliberately permissive: a missing, unreadable or corrupt file
// yields the default record and the failure is only logged. Saving overwrites
// the whole file and reports failures to the caller.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dkoosis/doctor/internal/profile"
)

var (
	// ErrConfigRead marks a missing or corrupt configuration file. Load never
	// returns it; it only appears in the debug log.
	ErrConfigRead = errors.New("config read failed")

	// ErrConfigWrite marks an I/O failure while saving the configuration.
	ErrConfigWrite = errors.New("config write failed")
)

// Store reads and writes the configuration file at Path.
type Store struct {
	Path   string
	Logger *slog.Logger
}

// New returns a Store for path. A nil logger discards.
func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{Path: path, Logger: logger}
}

// Load reads the configuration file. Any failure returns profile.Default().
// Keys absent from the file keep their default values and unknown keys are
// ignored, so older and newer files both load.
func (s *Store) Load() profile.Config {
	cfg, err := s.read()
	if err != nil {
		s.Logger.Debug("store.load.defaults", "path", s.Path, "error", err)
		return profile.Default()
	}
	s.Logger.Debug("store.load", "path", s.Path)
	return cfg
}

func (s *Store) read() (profile.Config, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return profile.Config{}, fmt.Errorf("%w: %w", ErrConfigRead, err)
	}

	cfg := profile.Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return profile.Config{}, fmt.Errorf("%w: %s: %w", ErrConfigRead, s.Path, err)
	}
	return cfg.Normalize(), nil
}

// Save serializes cfg and overwrites the configuration file.
func (s *Store) Save(cfg profile.Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigWrite, err)
	}
	if err := os.WriteFile(s.Path, data, 0o600); err != nil {
		s.Logger.Error("store.save", "path", s.Path, "error", err)
		return fmt.Errorf("%w: %w", ErrConfigWrite, err)
	}
	s.Logger.Info("store.save", "path", s.Path)
	return nil
}

// Encode renders cfg as four-space indented JSON without HTML escaping, so
// non-ASCII names are written as-is.
func Encode(cfg profile.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
