package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/notelist/internal/config"
	"github.com/Paintersrp/notelist/internal/filter"
	"github.com/Paintersrp/notelist/internal/window"
)

func writeConfig(t *testing.T, home string, data map[string]any) {
	t.Helper()
	configPath := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}
	raw, err := yaml.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal config data: %v", err)
	}
	if err := os.WriteFile(configPath, raw, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("expected defaults, got error: %v", err)
	}
	if cfg.DisplayMode() != window.Comfy {
		t.Fatalf("expected comfy display, got %s", cfg.Display)
	}
	if cfg.SortOptions() != (filter.SortOptions{Mode: filter.SortByModified}) {
		t.Fatalf("unexpected sort %+v", cfg.SortOptions())
	}
	if cfg.Debounce.Short != 50*time.Millisecond || cfg.Debounce.Long != 500*time.Millisecond {
		t.Fatalf("unexpected debounce defaults %+v", cfg.Debounce)
	}
}

func TestLoadReadsFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"vault_dir":     filepath.Join(home, "vault"),
		"display":       "condensed",
		"sort":          "alphabetical",
		"sort_reversed": true,
		"overscan":      5,
		"debounce":      map[string]any{"short": "20ms"},
	})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DisplayMode() != window.Condensed {
		t.Fatalf("expected condensed, got %s", cfg.Display)
	}
	if cfg.SortOptions() != (filter.SortOptions{Mode: filter.SortAlphabetical, Reversed: true}) {
		t.Fatalf("unexpected sort %+v", cfg.SortOptions())
	}
	if cfg.Overscan != 5 {
		t.Fatalf("expected overscan 5, got %d", cfg.Overscan)
	}
	if cfg.Debounce.Short != 20*time.Millisecond || cfg.Debounce.Long != 500*time.Millisecond {
		t.Fatalf("expected partial debounce override, got %+v", cfg.Debounce)
	}
	if cfg.ExcerptCacheSize != config.DefaultExcerptCacheSize {
		t.Fatalf("missing keys should keep defaults, got %d", cfg.ExcerptCacheSize)
	}
}

func TestOverlayPrefersViperValues(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{"editor": "nvim", "display": "comfy"})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	v := viper.New()
	v.Set("display", "expanded")
	v.Set("markdown", false)
	v.Set("debounce.long", "1s")
	cfg.Overlay(v)

	if cfg.Display != "expanded" || cfg.Markdown {
		t.Fatalf("overlay not applied: %+v", cfg)
	}
	if cfg.Editor != "nvim" {
		t.Fatalf("unset keys should keep file values, got %q", cfg.Editor)
	}
	if cfg.Debounce.Long != time.Second {
		t.Fatalf("expected 1s long delay, got %s", cfg.Debounce.Long)
	}
}

func TestValidate(t *testing.T) {
	vault := t.TempDir()

	tests := []struct {
		name      string
		mutate    func(*config.Config)
		wantInit  bool
		wantField string
	}{
		{"missing vault", func(c *config.Config) { c.VaultDir = "" }, true, ""},
		{"vault does not exist", func(c *config.Config) { c.VaultDir = filepath.Join(vault, "nope") }, true, ""},
		{"bad display", func(c *config.Config) { c.Display = "roomy" }, false, "display"},
		{"bad sort", func(c *config.Config) { c.Sort = "size" }, false, "sort"},
		{"negative overscan", func(c *config.Config) { c.Overscan = -1 }, false, "overscan"},
		{"valid", func(c *config.Config) {}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.VaultDir = vault
			tt.mutate(cfg)

			err := cfg.Validate()

			var initErr *config.ConfigInitError
			if got := errors.As(err, &initErr); got != tt.wantInit {
				t.Fatalf("expected init error %v, got %v", tt.wantInit, err)
			}

			var validationErr *config.ValidationError
			if tt.wantField == "" {
				if errors.As(err, &validationErr) {
					t.Fatalf("unexpected validation error %v", err)
				}
				return
			}
			if !errors.As(err, &validationErr) || validationErr.Field != tt.wantField {
				t.Fatalf("expected validation error for %s, got %v", tt.wantField, err)
			}
		})
	}
}

func TestEnsureConfigExistsAndSave(t *testing.T) {
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if _, err := os.Stat(config.GetConfigPath(home)); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.SetListSettings(window.Expanded, filter.SortOptions{Mode: filter.SortByCreated, Reversed: true})
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := config.Load(home)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.DisplayMode() != window.Expanded {
		t.Fatalf("display not persisted: %s", reloaded.Display)
	}
	if reloaded.SortOptions() != (filter.SortOptions{Mode: filter.SortByCreated, Reversed: true}) {
		t.Fatalf("sort not persisted: %+v", reloaded.SortOptions())
	}
	if reloaded.Debounce.Short != 50*time.Millisecond {
		t.Fatalf("durations should round trip, got %s", reloaded.Debounce.Short)
	}

	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("second ensure should be a no-op: %v", err)
	}
}
