package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsAreComplete(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("default server port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("default server mode = %q, want release", cfg.Server.Mode)
	}
	if cfg.Analysis.MaxClauses != 20 || cfg.Analysis.FallbackMaxClauses != 10 {
		t.Errorf("clause caps = %d/%d, want 20/10",
			cfg.Analysis.MaxClauses, cfg.Analysis.FallbackMaxClauses)
	}
	if cfg.Analysis.MinClauseLength != 100 || cfg.Analysis.MinSubstantialLength != 50 {
		t.Errorf("length thresholds = %d/%d, want 100/50",
			cfg.Analysis.MinClauseLength, cfg.Analysis.MinSubstantialLength)
	}
	if cfg.Analysis.DefaultJurisdiction != "indian" {
		t.Errorf("default jurisdiction = %q, want indian", cfg.Analysis.DefaultJurisdiction)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9999
	cfg.Analysis.MaxClauses = 5
	ApplyDefaults(cfg)

	if cfg.Server.Port != 9999 {
		t.Errorf("explicit port overridden: %d", cfg.Server.Port)
	}
	if cfg.Analysis.MaxClauses != 5 {
		t.Errorf("explicit clause cap overridden: %d", cfg.Analysis.MaxClauses)
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: 8080
  mode: debug
analysis:
  max_clauses: 15
  default_jurisdiction: us
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Mode != "debug" {
		t.Errorf("mode = %q, want debug", cfg.Server.Mode)
	}
	if cfg.Analysis.MaxClauses != 15 {
		t.Errorf("max_clauses = %d, want 15", cfg.Analysis.MaxClauses)
	}
	if cfg.Analysis.DefaultJurisdiction != "us" {
		t.Errorf("default_jurisdiction = %q, want us", cfg.Analysis.DefaultJurisdiction)
	}
	// Unset fields still receive defaults.
	if cfg.Database.Port != 5432 {
		t.Errorf("database port default missing: %d", cfg.Database.Port)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  mode: bogus\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for invalid mode")
	}
}

func TestWatchDeliversReloadedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: info\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changes := make(chan *Config, 4)
	Watch(path, func(cfg *Config) {
		select {
		case changes <- cfg:
		default:
		}
	})

	// Let the watcher register the file before rewriting it.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-changes:
		if cfg.Log.Level != "debug" {
			t.Errorf("reloaded log level = %q, want debug", cfg.Log.Level)
		}
		// Defaults still apply to fields the file does not set.
		if cfg.Server.Port != 8000 {
			t.Errorf("reloaded server port = %d, want 8000", cfg.Server.Port)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatchSkipsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: info\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changes := make(chan *Config, 4)
	Watch(path, func(cfg *Config) {
		select {
		case changes <- cfg:
		default:
		}
	})

	time.Sleep(100 * time.Millisecond)
	// A mode that fails validation must not reach the callback.
	if err := os.WriteFile(path, []byte("server:\n  mode: bogus\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-changes:
		t.Errorf("callback invoked for invalid config: mode %q", cfg.Server.Mode)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		wantOK bool
	}{
		{"valid defaults", func(*Config) {}, true},
		{"zero port", func(c *Config) { c.Server.Port = -1 }, false},
		{"bad mode", func(c *Config) { c.Server.Mode = "production" }, false},
		{"zero max clauses", func(c *Config) { c.Analysis.MaxClauses = -3 }, false},
		{"negative threshold", func(c *Config) { c.Analysis.MinClauseLength = -1 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantOK && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.wantOK && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
