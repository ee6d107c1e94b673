package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/headcursor/internal/logging"
)

const (
	appName    = "headcursor"
	configFile = "config.yaml"
)

var (
	// ErrUnknownKey is returned when a setting key isn't recognised.
	ErrUnknownKey = errors.New("unknown setting key")
	// ErrUnknownProfile is returned when switching to a profile that doesn't exist.
	ErrUnknownProfile = errors.New("unknown profile")
	// ErrProfileExists is returned when adding a profile whose name is taken.
	ErrProfileExists = errors.New("profile already exists")
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/headcursor or $HOME/.config/headcursor
//   - macOS: $HOME/.config/headcursor (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\headcursor
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the default configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Store is the shared configuration store. Values are read from the
// active profile, changes are staged and then applied as one commit.
//
// Store is safe for concurrent use; the config watcher reloads it from
// its own goroutine while the panel reads it on the UI goroutine.
type Store struct {
	mu        sync.Mutex
	path      string
	file      *File
	staged    Settings
	lastSaved []byte
	// saves counts writes by this store; Reload drops a read that a save
	// overtook.
	saves uint64

	read func(path string) (*File, []byte, error)
}

// Open loads the store at path. An empty path selects GetConfigPath().
// A missing file yields the default configuration; it is written on the
// first Apply.
func Open(path string) (*Store, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	s := &Store{
		path:   path,
		staged: make(Settings),
		read:   readFile,
	}

	file, data, err := s.read(path)
	if err != nil {
		return nil, err
	}
	s.file = file
	s.lastSaved = data

	return s, nil
}

// readFile reads and validates the file at path. A missing file returns
// the defaults and nil data.
func readFile(path string) (*File, []byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewFile(), nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if file.Version != CurrentVersion {
		return nil, nil, fmt.Errorf("unsupported config version: %d (expected %d)", file.Version, CurrentVersion)
	}

	file.normalize()
	return &file, data, nil
}

// Path returns the file backing this store.
func (s *Store) Path() string {
	return s.path
}

// Get returns the applied value of key in the active profile.
// Unknown keys read as zero.
func (s *Store) Get(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Profiles[s.file.CurrentProfile][key]
}

// Value is like Get but reports unknown keys.
func (s *Store) Value(key string) (int, error) {
	if !IsKnownKey(key) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return s.Get(key), nil
}

// Stage records a pending value for key. It takes effect on Apply.
func (s *Store) Stage(key string, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged[key] = value
}

// Discard drops all staged values.
func (s *Store) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged = make(Settings)
}

// Apply commits staged values to the active profile and persists the
// file. Values stay committed in memory when the write fails.
func (s *Store) Apply() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := s.file.Profiles[s.file.CurrentProfile]
	for k, v := range s.staged {
		profile[k] = v
		logging.LogCommit(s.file.CurrentProfile, k, v, "apply")
	}
	s.staged = make(Settings)
	return s.saveLocked()
}

// Snapshot returns a copy of the active profile's settings.
func (s *Store) Snapshot() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Profiles[s.file.CurrentProfile].Clone()
}

// CurrentProfile returns the name of the active profile.
func (s *Store) CurrentProfile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.CurrentProfile
}

// Profiles returns all profile names, default first, others sorted.
func (s *Store) Profiles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.profileNames()
}

// UseProfile makes name the active profile and persists the choice.
// Staged values belong to the old profile and are dropped.
func (s *Store) UseProfile(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.file.Profiles[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	s.file.CurrentProfile = name
	s.staged = make(Settings)
	logging.LogProfileChange(name, "switched")
	return s.saveLocked()
}

// AddProfile creates a profile named name seeded from the active profile.
func (s *Store) AddProfile(name string) error {
	if name == "" {
		return fmt.Errorf("profile name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.file.Profiles[name]; ok {
		return fmt.Errorf("%w: %q", ErrProfileExists, name)
	}
	s.file.Profiles[name] = s.file.Profiles[s.file.CurrentProfile].Clone()
	logging.LogProfileChange(name, "added")
	return s.saveLocked()
}

// ExportProfile renders the active profile as YAML.
func (s *Store) ExportProfile() ([]byte, error) {
	s.mu.Lock()
	out := struct {
		Profile  string   `yaml:"profile"`
		Settings Settings `yaml:"settings"`
	}{
		Profile:  s.file.CurrentProfile,
		Settings: s.file.Profiles[s.file.CurrentProfile].Clone(),
	}
	s.mu.Unlock()

	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	return data, nil
}

// Reload re-reads the file from disk. It reports false when the file
// content is what this store last wrote, so its own saves don't echo
// back as external changes.
func (s *Store) Reload() (bool, error) {
	s.mu.Lock()
	saves := s.saves
	s.mu.Unlock()

	file, data, err := s.read(s.path)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	if s.saves != saves {
		// A save landed while reading; the file now holds our state.
		s.mu.Unlock()
		logging.Debug("Reload overtaken by save", zap.String("path", s.path))
		return false, nil
	}
	if data != nil && bytes.Equal(data, s.lastSaved) {
		s.mu.Unlock()
		return false, nil
	}
	s.file = file
	s.lastSaved = data
	s.staged = make(Settings)
	profile := file.CurrentProfile
	s.mu.Unlock()

	logging.LogProfileChange(profile, "reloaded")
	return true, nil
}

// saveLocked writes the file atomically. Caller holds s.mu.
func (s *Store) saveLocked() error {
	// Counted before writing: memory changed even if the write fails.
	s.saves++

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(s.file)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# headcursor configuration file
# Cursor speed, smoothing and gesture timing, grouped by profile.
#
# Location: ` + s.path + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename config file: %w", err)
	}

	s.lastSaved = data
	logging.Debug("Config saved", zap.String("path", s.path), zap.Int("bytes", len(data)))
	return nil
}
