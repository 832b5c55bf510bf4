package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so a
// test starts with no config files anywhere on the search path.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadJezzball("")
	if err != nil {
		t.Fatalf("Embedded fallback should not error: %v", err)
	}
	want := DefaultJezzballConfig()
	if cfg.Width != want.Width || cfg.Lives != want.Lives || cfg.TargetPercent != want.TargetPercent {
		t.Errorf("Embedded default mismatch: got %+v", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)

	path := writeConfig(t, t.TempDir(), "mine.yaml", "lives: 7\nwidth: 30\n")
	cfg, err := LoadJezzball(path)
	if err != nil {
		t.Fatalf("Custom path should load: %v", err)
	}
	if cfg.Lives != 7 || cfg.Width != 30 {
		t.Errorf("Custom values should win: got lives=%d width=%d", cfg.Lives, cfg.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadJezzball(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("A missing custom path should surface an error")
	}

	bad := writeConfig(t, t.TempDir(), "bad.yaml", "lives: [not a number\n")
	if _, err := LoadJezzball(bad); err == nil {
		t.Error("Unparseable custom config should surface an error")
	}
}

func TestLoadWorkingDirConfigs(t *testing.T) {
	isolate(t)

	writeConfig(t, "configs", "jezzball.yaml", "lives: 5\n")
	cfg, err := LoadJezzball("")
	if err != nil {
		t.Fatalf("Working-dir config should load: %v", err)
	}
	if cfg.Lives != 5 {
		t.Errorf("./configs should override the embedded default, got lives=%d", cfg.Lives)
	}
}

func TestLoadUserConfigBeatsWorkingDir(t *testing.T) {
	isolate(t)

	home := os.Getenv("HOME")
	writeConfig(t, filepath.Join(home, ".arcade", "configs"), "jezzball.yaml", "lives: 9\n")
	writeConfig(t, "configs", "jezzball.yaml", "lives: 5\n")

	cfg, err := LoadJezzball("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Lives != 9 {
		t.Errorf("User config should win over ./configs, got lives=%d", cfg.Lives)
	}
}

func TestLoadCustomPathBeatsEverything(t *testing.T) {
	isolate(t)

	home := os.Getenv("HOME")
	writeConfig(t, filepath.Join(home, ".arcade", "configs"), "jezzball.yaml", "lives: 9\n")
	writeConfig(t, "configs", "jezzball.yaml", "lives: 5\n")
	custom := writeConfig(t, t.TempDir(), "mine.yaml", "lives: 2\n")

	cfg, err := LoadJezzball(custom)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Lives != 2 {
		t.Errorf("Custom path should win the search order, got lives=%d", cfg.Lives)
	}
}
