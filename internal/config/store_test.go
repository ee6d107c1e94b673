package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "headcursor") {
		t.Errorf("GetConfigDir() = %v, should contain 'headcursor'", configDir)
	}

	switch runtime.GOOS {
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDirHonoursXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux and other Unix systems")
	}

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(xdg, "headcursor"); got != want {
		t.Errorf("GetConfigDir() = %v, want %v", got, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestOpenMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if got := store.CurrentProfile(); got != DefaultProfile {
		t.Errorf("CurrentProfile() = %q, want %q", got, DefaultProfile)
	}

	for key, want := range DefaultSettings() {
		if got := store.Get(key); got != want {
			t.Errorf("Get(%q) = %d, want %d", key, got, want)
		}
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Open() should not create the file before the first Apply")
	}
}

func TestStageDoesNotChangeGetUntilApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	store.Stage(KeyPointerSmooth, 77)
	if got := store.Get(KeyPointerSmooth); got != 15 {
		t.Errorf("Get() after Stage = %d, want unchanged 15", got)
	}

	if err := store.Apply(); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := store.Get(KeyPointerSmooth); got != 77 {
		t.Errorf("Get() after Apply = %d, want 77", got)
	}
}

func TestDiscardDropsStagedValues(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	store.Stage(KeySpeedUp, 99)
	store.Discard()
	if err := store.Apply(); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := store.Get(KeySpeedUp); got != 40 {
		t.Errorf("Get() = %d, want 40 after Discard", got)
	}
}

func TestApplyPersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	store.Stage(KeyHoldTriggerMs, 1200)
	store.Stage(KeySpeedLeft, 12)
	if err := store.Apply(); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
		t.Errorf("config file mode = %v, want 0600", info.Mode().Perm())
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after Apply")
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() second time error = %v", err)
	}
	if got := reopened.Get(KeyHoldTriggerMs); got != 1200 {
		t.Errorf("hold_trigger_ms = %d, want 1200", got)
	}
	if got := reopened.Get(KeySpeedLeft); got != 12 {
		t.Errorf("spd_left = %d, want 12", got)
	}
}

func TestOpenFillsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: 1
current_profile: gaming
profiles:
  gaming:
    spd_up: 80
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if got := store.CurrentProfile(); got != "gaming" {
		t.Errorf("CurrentProfile() = %q, want gaming", got)
	}
	if got := store.Get(KeySpeedUp); got != 80 {
		t.Errorf("spd_up = %d, want 80", got)
	}
	if got := store.Get(KeyShapeSmooth); got != 30 {
		t.Errorf("shape_smooth = %d, want default 30", got)
	}

	profiles := store.Profiles()
	if len(profiles) != 2 || profiles[0] != DefaultProfile || profiles[1] != "gaming" {
		t.Errorf("Profiles() = %v, want [default gaming]", profiles)
	}
}

func TestOpenRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"wrong version", "version: 7\n", "unsupported config version"},
		{"not yaml", "version: [\n", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			_, err := Open(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Open() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestUnknownCurrentProfileFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\ncurrent_profile: ghost\n"), 0600); err != nil {
		t.Fatal(err)
	}

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got := store.CurrentProfile(); got != DefaultProfile {
		t.Errorf("CurrentProfile() = %q, want %q", got, DefaultProfile)
	}
}

func TestValueUnknownKey(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.Value("warp_speed"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Value(unknown) error = %v, want ErrUnknownKey", err)
	}
	if v, err := store.Value(KeySpeedDown); err != nil || v != 40 {
		t.Errorf("Value(spd_down) = %d, %v; want 40, nil", v, err)
	}
}

func TestProfiles(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	store.Stage(KeySpeedUp, 70)
	if err := store.Apply(); err != nil {
		t.Fatal(err)
	}

	if err := store.AddProfile("reading"); err != nil {
		t.Fatalf("AddProfile() error = %v", err)
	}
	if err := store.AddProfile("reading"); !errors.Is(err, ErrProfileExists) {
		t.Errorf("AddProfile(duplicate) error = %v, want ErrProfileExists", err)
	}
	if err := store.AddProfile(""); err == nil {
		t.Error("AddProfile(\"\") should fail")
	}
	if err := store.UseProfile("missing"); !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("UseProfile(missing) error = %v, want ErrUnknownProfile", err)
	}

	if err := store.UseProfile("reading"); err != nil {
		t.Fatalf("UseProfile() error = %v", err)
	}
	// Seeded from the profile that was active
	if got := store.Get(KeySpeedUp); got != 70 {
		t.Errorf("new profile spd_up = %d, want 70", got)
	}

	store.Stage(KeySpeedUp, 10)
	if err := store.Apply(); err != nil {
		t.Fatal(err)
	}
	if err := store.UseProfile(DefaultProfile); err != nil {
		t.Fatal(err)
	}
	if got := store.Get(KeySpeedUp); got != 70 {
		t.Errorf("default profile spd_up = %d, want 70 (untouched)", got)
	}
}

func TestUseProfileDropsStaged(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.AddProfile("other"); err != nil {
		t.Fatal(err)
	}

	store.Stage(KeySpeedRight, 5)
	if err := store.UseProfile("other"); err != nil {
		t.Fatal(err)
	}
	if err := store.Apply(); err != nil {
		t.Fatal(err)
	}
	if got := store.Get(KeySpeedRight); got != 40 {
		t.Errorf("spd_right = %d, want 40; staged value leaked across profiles", got)
	}
}

func TestExportProfile(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	data, err := store.ExportProfile()
	if err != nil {
		t.Fatalf("ExportProfile() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{"profile: default", "pointer_smooth: 15", "hold_trigger_ms: 500"} {
		if !strings.Contains(out, want) {
			t.Errorf("ExportProfile() missing %q in:\n%s", want, out)
		}
	}
}

func TestReloadIgnoresOwnWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	store.Stage(KeySpeedUp, 61)
	if err := store.Apply(); err != nil {
		t.Fatal(err)
	}

	changed, err := store.Reload()
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if changed {
		t.Error("Reload() after own Apply should report no change")
	}
}

func TestReloadPicksUpExternalProfileSwitch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.AddProfile("night"); err != nil {
		t.Fatal(err)
	}

	// A second process switches profile and changes a value
	other, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := other.UseProfile("night"); err != nil {
		t.Fatal(err)
	}
	other.Stage(KeyPointerSmooth, 90)
	if err := other.Apply(); err != nil {
		t.Fatal(err)
	}

	changed, err := store.Reload()
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if !changed {
		t.Fatal("Reload() should report the external change")
	}
	if got := store.CurrentProfile(); got != "night" {
		t.Errorf("CurrentProfile() = %q, want night", got)
	}
	if got := store.Get(KeyPointerSmooth); got != 90 {
		t.Errorf("pointer_smooth = %d, want 90", got)
	}
}

func TestReloadDiscardsReadOvertakenBySave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	store.Stage(KeySpeedUp, 50)
	if err := store.Apply(); err != nil {
		t.Fatal(err)
	}

	// Another process writes the file; our read of it is then overtaken
	// by a local commit before the reload can install it.
	other, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	other.Stage(KeySpeedUp, 10)
	if err := other.Apply(); err != nil {
		t.Fatal(err)
	}

	store.read = func(p string) (*File, []byte, error) {
		file, data, err := readFile(p)
		store.Stage(KeySpeedUp, 51)
		if err := store.Apply(); err != nil {
			t.Fatalf("Apply() during read error = %v", err)
		}
		return file, data, err
	}

	changed, err := store.Reload()
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if changed {
		t.Error("Reload() should drop a read that a save overtook")
	}
	if got := store.Get(KeySpeedUp); got != 51 {
		t.Errorf("spd_up = %d, want the local commit 51", got)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := reopened.Get(KeySpeedUp); got != 51 {
		t.Errorf("spd_up on disk = %d, want 51", got)
	}
}
