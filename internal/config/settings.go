// Settings file handling for the editor
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Well-known setting keys.
const (
	KeyLogLevel            = "editor.log_level"
	KeyFavouriteSchedulers = "editor.favourite_schedulers"
	KeyAPIAddress          = "editor.api_address"
)

const settingsFileName = "settings.json"

// Settings reads editor configuration from a JSON file. A missing or
// malformed file is not an error: every getter falls back to its default,
// so the editor always starts.
type Settings struct {
	logger *logrus.Logger

	mu     sync.RWMutex
	path   string
	values map[string]json.RawMessage
}

// Load locates and reads the settings file. The working directory is
// checked first, then the user config directory.
func Load(logger *logrus.Logger) *Settings {
	s := &Settings{
		logger: logger,
		values: make(map[string]json.RawMessage),
	}

	for _, path := range candidatePaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		s.path = path
		break
	}

	if s.path == "" {
		logger.WithField("file", settingsFileName).Warn("Settings file not found, using defaults")
		return s
	}

	s.Reload()
	return s
}

func candidatePaths() []string {
	paths := []string{settingsFileName}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "scheduler-node-editor", settingsFileName))
	}
	return paths
}

// Path returns the settings file path, or "" when no file was found.
func (s *Settings) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Reload re-reads the settings file in place. Parse failures keep the
// previously loaded values and are returned so callers can tell a
// half-written file from an applied reload.
func (s *Settings) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.WithError(err).WithField("path", s.path).Warn("Failed to read settings file")
		return err
	}

	values := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &values); err != nil {
		s.logger.WithError(err).WithField("path", s.path).Warn("Failed to decode settings file")
		return err
	}

	s.values = values
	return nil
}

// String returns the string setting for key, or def when absent.
func (s *Settings) String(key, def string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.values[key]
	if !ok {
		return def
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		s.logger.WithField("key", key).Warn("Setting has unexpected type, using default")
		return def
	}
	return v
}

// Strings returns the string-list setting for key, or def when absent.
func (s *Settings) Strings(key string, def []string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.values[key]
	if !ok {
		return def
	}
	var v []string
	if err := json.Unmarshal(raw, &v); err != nil {
		s.logger.WithField("key", key).Warn("Setting has unexpected type, using default")
		return def
	}
	return v
}

// Float returns the numeric setting for key, or def when absent.
func (s *Settings) Float(key string, def float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.values[key]
	if !ok {
		return def
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		s.logger.WithField("key", key).Warn("Setting has unexpected type, using default")
		return def
	}
	return v
}

// LogLevel parses the configured log level, defaulting to info.
func (s *Settings) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(s.String(KeyLogLevel, "info"))
	if err != nil {
		s.logger.WithError(err).Warn("Invalid log level in settings, using info")
		return logrus.InfoLevel
	}
	return level
}
