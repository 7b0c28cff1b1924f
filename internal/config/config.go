package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/notelist/internal/constants"
	"github.com/Paintersrp/notelist/internal/debounce"
	"github.com/Paintersrp/notelist/internal/filter"
	"github.com/Paintersrp/notelist/internal/window"
)

const (
	DefaultExcerptCacheSize = 2048
	DefaultLogLevel         = "info"
)

type DebounceConfig struct {
	Short time.Duration `yaml:"short" json:"short"`
	Long  time.Duration `yaml:"long"  json:"long"`
}

type Config struct {
	VaultDir         string         `yaml:"vault_dir"          json:"vault_dir"`
	Editor           string         `yaml:"editor"             json:"editor"`
	EditorArgs       string         `yaml:"editor_args"        json:"editor_args"`
	Display          string         `yaml:"display"            json:"display"`
	Sort             string         `yaml:"sort"               json:"sort"`
	SortReversed     bool           `yaml:"sort_reversed"      json:"sort_reversed"`
	Markdown         bool           `yaml:"markdown"           json:"markdown"`
	Overscan         int            `yaml:"overscan"           json:"overscan"`
	ExcerptCacheSize int            `yaml:"excerpt_cache_size" json:"excerpt_cache_size"`
	Debounce         DebounceConfig `yaml:"debounce"           json:"debounce"`
	LogFile          string         `yaml:"log_file"           json:"log_file"`
	LogLevel         string         `yaml:"log_level"          json:"log_level"`

	path string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		Display:          window.Comfy.String(),
		Sort:             filter.SortByModified.String(),
		Markdown:         true,
		Overscan:         window.DefaultOverscan,
		ExcerptCacheSize: DefaultExcerptCacheSize,
		Debounce: DebounceConfig{
			Short: debounce.DefaultShortDelay,
			Long:  debounce.DefaultLongDelay,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads the config file under home. Keys missing from the file keep
// their defaults, and a missing file yields the defaults.
func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	return cfg, nil
}

// Overlay copies every key explicitly set in v (flags, NOTELIST_* env vars)
// over the file values.
func (cfg *Config) Overlay(v *viper.Viper) {
	if v == nil {
		return
	}

	strs := map[string]*string{
		constants.KeyVaultDir:   &cfg.VaultDir,
		constants.KeyEditor:     &cfg.Editor,
		constants.KeyEditorArgs: &cfg.EditorArgs,
		constants.KeyDisplay:    &cfg.Display,
		constants.KeySort:       &cfg.Sort,
		constants.KeyLogFile:    &cfg.LogFile,
		constants.KeyLogLevel:   &cfg.LogLevel,
	}
	for key, field := range strs {
		if v.IsSet(key) {
			*field = v.GetString(key)
		}
	}

	bools := map[string]*bool{
		constants.KeySortReversed: &cfg.SortReversed,
		constants.KeyMarkdown:     &cfg.Markdown,
	}
	for key, field := range bools {
		if v.IsSet(key) {
			*field = v.GetBool(key)
		}
	}

	ints := map[string]*int{
		constants.KeyOverscan:         &cfg.Overscan,
		constants.KeyExcerptCacheSize: &cfg.ExcerptCacheSize,
	}
	for key, field := range ints {
		if v.IsSet(key) {
			*field = v.GetInt(key)
		}
	}

	if v.IsSet(constants.KeyDebounceShort) {
		cfg.Debounce.Short = v.GetDuration(constants.KeyDebounceShort)
	}
	if v.IsSet(constants.KeyDebounceLong) {
		cfg.Debounce.Long = v.GetDuration(constants.KeyDebounceLong)
	}
}

// Validate reports the first invalid setting.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.VaultDir) == "" {
		return &ConfigInitError{msg: fmt.Sprintf("required config variable %q is not set", constants.KeyVaultDir)}
	}
	info, err := os.Stat(cfg.VaultDir)
	if err != nil || !info.IsDir() {
		return &ConfigInitError{msg: fmt.Sprintf("vault directory %q does not exist", cfg.VaultDir)}
	}

	if _, err := window.ParseDisplayMode(cfg.Display); err != nil {
		return &ValidationError{Field: constants.KeyDisplay, Value: cfg.Display, Err: err}
	}
	if _, err := filter.ParseSortMode(cfg.Sort); err != nil {
		return &ValidationError{Field: constants.KeySort, Value: cfg.Sort, Err: err}
	}
	if cfg.Overscan < 0 {
		return &ValidationError{Field: constants.KeyOverscan, Value: fmt.Sprint(cfg.Overscan), Err: errNegative}
	}
	if cfg.ExcerptCacheSize < 0 {
		return &ValidationError{Field: constants.KeyExcerptCacheSize, Value: fmt.Sprint(cfg.ExcerptCacheSize), Err: errNegative}
	}
	if cfg.Debounce.Short < 0 || cfg.Debounce.Long < 0 {
		return &ValidationError{Field: "debounce", Value: fmt.Sprintf("%s/%s", cfg.Debounce.Short, cfg.Debounce.Long), Err: errNegative}
	}
	return nil
}

// DisplayMode falls back to comfy for unknown values.
func (cfg *Config) DisplayMode() window.DisplayMode {
	mode, err := window.ParseDisplayMode(cfg.Display)
	if err != nil {
		return window.Comfy
	}
	return mode
}

func (cfg *Config) SortOptions() filter.SortOptions {
	mode, _ := filter.ParseSortMode(cfg.Sort)
	return filter.SortOptions{Mode: mode, Reversed: cfg.SortReversed}
}

// SetListSettings stores the display and sort choices made in the list.
func (cfg *Config) SetListSettings(mode window.DisplayMode, opts filter.SortOptions) {
	cfg.Display = mode.String()
	cfg.Sort = opts.Mode.String()
	cfg.SortReversed = opts.Reversed
}

func (cfg *Config) GetConfigPath() string {
	return cfg.path
}

func (cfg *Config) Save() error {
	if cfg.path == "" {
		return errors.New("config has no file path")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(cfg.path, data, 0o644)
}
