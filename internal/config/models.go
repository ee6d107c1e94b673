package config

import (
	"sort"
)

// CurrentVersion is the config file format version written by this build.
const CurrentVersion = 1

// DefaultProfile is the profile created for new installs. It can't be removed.
const DefaultProfile = "default"

// Setting keys understood by the mouse-control service.
const (
	KeySpeedUp       = "spd_up"
	KeySpeedDown     = "spd_down"
	KeySpeedRight    = "spd_right"
	KeySpeedLeft     = "spd_left"
	KeyPointerSmooth = "pointer_smooth"
	KeyShapeSmooth   = "shape_smooth"
	KeyHoldTriggerMs = "hold_trigger_ms"
)

// File represents the entire configuration file.
type File struct {
	Version        int                 `yaml:"version"`
	CurrentProfile string              `yaml:"current_profile"`
	Profiles       map[string]Settings `yaml:"profiles"`
}

// Settings maps a setting key to its integer value within one profile.
type Settings map[string]int

// DefaultSettings returns the values a fresh profile starts with.
func DefaultSettings() Settings {
	return Settings{
		KeySpeedUp:       40,
		KeySpeedDown:     40,
		KeySpeedRight:    40,
		KeySpeedLeft:     40,
		KeyPointerSmooth: 15,
		KeyShapeSmooth:   30,
		KeyHoldTriggerMs: 500,
	}
}

// KnownKeys returns every setting key in display order.
func KnownKeys() []string {
	return []string{
		KeySpeedUp,
		KeySpeedDown,
		KeySpeedRight,
		KeySpeedLeft,
		KeyPointerSmooth,
		KeyShapeSmooth,
		KeyHoldTriggerMs,
	}
}

// IsKnownKey reports whether key is a setting this application understands.
func IsKnownKey(key string) bool {
	_, ok := DefaultSettings()[key]
	return ok
}

// NewFile creates a File holding only the default profile.
func NewFile() *File {
	return &File{
		Version:        CurrentVersion,
		CurrentProfile: DefaultProfile,
		Profiles: map[string]Settings{
			DefaultProfile: DefaultSettings(),
		},
	}
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// fillDefaults adds any missing known key with its default value.
func (s Settings) fillDefaults() {
	for k, v := range DefaultSettings() {
		if _, ok := s[k]; !ok {
			s[k] = v
		}
	}
}

// normalize repairs a file read from disk so every invariant holds:
// the default profile exists, every profile carries every known key,
// and the current profile points at an existing profile.
func (f *File) normalize() {
	if f.Profiles == nil {
		f.Profiles = make(map[string]Settings)
	}
	if _, ok := f.Profiles[DefaultProfile]; !ok {
		f.Profiles[DefaultProfile] = DefaultSettings()
	}
	for name, s := range f.Profiles {
		if s == nil {
			s = make(Settings)
			f.Profiles[name] = s
		}
		s.fillDefaults()
	}
	if _, ok := f.Profiles[f.CurrentProfile]; !ok {
		f.CurrentProfile = DefaultProfile
	}
}

// profileNames returns profile names sorted, default first.
func (f *File) profileNames() []string {
	names := make([]string, 0, len(f.Profiles))
	for name := range f.Profiles {
		if name != DefaultProfile {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{DefaultProfile}, names...)
}
