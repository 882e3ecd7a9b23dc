package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"

	"github.com/csheth/petcli/internal/events"
	"github.com/csheth/petcli/internal/store"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("petcli", pflag.ContinueOnError)
	RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return flags
}

// isolate points config discovery at an empty directory and clears the
// environment variables Load reads.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(configPathEnv, dir)
	for _, key := range []string{"PETCLI_DB", "PETCLI_TICK", "PETCLI_NO_ALT_SCREEN", "PETCLI_LOG_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(newFlags(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != store.DefaultPath {
		t.Fatalf("db path: got %q want %q", cfg.DBPath, store.DefaultPath)
	}
	if cfg.TickInterval != events.DefaultTickInterval {
		t.Fatalf("tick: got %s want %s", cfg.TickInterval, events.DefaultTickInterval)
	}
	if !cfg.AltScreen {
		t.Fatal("alt screen should be on by default")
	}
	if cfg.LogFile != "" {
		t.Fatalf("log file: got %q want empty", cfg.LogFile)
	}
}

func TestLoadFlagsOverride(t *testing.T) {
	isolate(t)

	cfg, err := Load(newFlags(t, "--db", "/tmp/pets.json", "--tick", "50ms", "--no-alt-screen", "--log-file", "/tmp/petcli.log"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != "/tmp/pets.json" || cfg.TickInterval != 50*time.Millisecond || cfg.AltScreen || cfg.LogFile != "/tmp/petcli.log" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestLoadEnvAndFile(t *testing.T) {
	dir := isolate(t)
	content := "db: " + filepath.Join(dir, "from-file.json") + "\ntick: 1s\n"
	if err := os.WriteFile(filepath.Join(dir, "petcli.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PETCLI_TICK", "300ms")

	cfg, err := Load(newFlags(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, "from-file.json") {
		t.Fatalf("db path from file: got %q", cfg.DBPath)
	}
	if cfg.TickInterval != 300*time.Millisecond {
		t.Fatalf("env should beat the config file: got %s", cfg.TickInterval)
	}
}

func TestLoadRejectsNonPositiveTick(t *testing.T) {
	isolate(t)

	if _, err := Load(newFlags(t, "--tick", "0s")); err == nil {
		t.Fatal("expected error for zero tick interval")
	}
}

func TestLoadExpandsHome(t *testing.T) {
	isolate(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	cfg, err := Load(newFlags(t, "--db", "~/pets.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != filepath.Join(home, "pets.json") {
		t.Fatalf("db path: got %q want %q", cfg.DBPath, filepath.Join(home, "pets.json"))
	}
}
