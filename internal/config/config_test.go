package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/faizmokh/prio/internal/kv"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("PRIO_HOME", home)
	t.Setenv(PathEnv, "")
	t.Setenv("PRIO_BACKEND", "")
	t.Setenv("PRIO_LOG_LEVEL", "")
	t.Setenv("PRIO_COLOR", "")
	return home
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("prio", pflag.ContinueOnError)
	flags.String("home", "", "")
	flags.String("backend", "", "")
	flags.String("log-level", "", "")
	flags.Bool("no-color", false, "")
	if err := flags.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return flags
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Home != home {
		t.Fatalf("Home = %q, want %q", cfg.Home, home)
	}
	if cfg.Backend != kv.BackendDiskv {
		t.Fatalf("Backend = %q, want diskv", cfg.Backend)
	}
	if cfg.LogLevel != log.WarnLevel {
		t.Fatalf("LogLevel = %v, want warn", cfg.LogLevel)
	}
	if !cfg.Color {
		t.Fatalf("Color = false, want true")
	}
	if cfg.File != "" {
		t.Fatalf("File = %q, want none", cfg.File)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Setenv(PathEnv, dir)

	contents := "backend: bolt\ncolor: false\nlog:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, ".prio.yaml"), []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != kv.BackendBolt {
		t.Fatalf("Backend = %q, want bolt", cfg.Backend)
	}
	if cfg.LogLevel != log.DebugLevel {
		t.Fatalf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.Color {
		t.Fatalf("Color = true, want false")
	}
	if filepath.Base(cfg.File) != ".prio.yaml" {
		t.Fatalf("File = %q, want .prio.yaml", cfg.File)
	}
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Setenv(PathEnv, dir)
	if err := os.WriteFile(filepath.Join(dir, ".prio.yaml"), []byte("backend: bolt\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("PRIO_BACKEND", "sqlite")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != kv.BackendSQLite {
		t.Fatalf("Backend = %q, want sqlite", cfg.Backend)
	}
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("PRIO_BACKEND", "sqlite")
	custom := filepath.Join(t.TempDir(), "data")

	cfg, err := Load(testFlags(t, "--backend", "memory", "--home", custom, "--log-level", "error", "--no-color"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != kv.BackendMemory {
		t.Fatalf("Backend = %q, want memory", cfg.Backend)
	}
	if cfg.Home != custom {
		t.Fatalf("Home = %q, want %q", cfg.Home, custom)
	}
	if cfg.LogLevel != log.ErrorLevel {
		t.Fatalf("LogLevel = %v, want error", cfg.LogLevel)
	}
	if cfg.Color {
		t.Fatalf("Color = true, want false")
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	isolate(t)
	t.Setenv("PRIO_BACKEND", "redis")

	if _, err := Load(nil); err == nil {
		t.Fatalf("Load expected error for unknown backend")
	}
}
