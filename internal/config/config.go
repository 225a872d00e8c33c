package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/jask/tuikit/inputfield"
	"github.com/jask/tuikit/keys"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Data sources the gallery can read users from.
const (
	SourceBuiltin = "builtin"
	SourceTOML    = "toml"
	SourceSQLite  = "sqlite"
)

// Config holds gallery configuration.
type Config struct {
	Data DataConfig `mapstructure:"data"`
	UI   UIConfig   `mapstructure:"ui"`
	Log  LogConfig  `mapstructure:"log"`
	Keys KeysConfig `mapstructure:"keys"`
}

// DataConfig selects where the demo users come from.
type DataConfig struct {
	Source     string `mapstructure:"source"`
	Path       string `mapstructure:"path"`
	Migrations string `mapstructure:"migrations"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale       string `mapstructure:"locale"`
	EmptyMessage string `mapstructure:"empty_message"`
	InputVariant string `mapstructure:"input_variant"`
	InputSize    string `mapstructure:"input_size"`
	Story        string `mapstructure:"story"`
}

// LogConfig holds the structured log destination.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// KeysConfig holds key binding overrides.
type KeysConfig struct {
	Overrides []keys.Override `mapstructure:"overrides"`
}

// DefaultPath is where Load looks when neither an explicit path nor
// TUIKIT_CONFIG is set.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "tuikit", "config.toml")
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "tuikit", "gallery.log")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.source", SourceBuiltin)
	v.SetDefault("data.path", "")
	v.SetDefault("data.migrations", "")
	v.SetDefault("ui.locale", "en")
	v.SetDefault("ui.empty_message", "No data available")
	v.SetDefault("ui.input_variant", "outlined")
	v.SetDefault("ui.input_size", "md")
	v.SetDefault("ui.story", "")
	v.SetDefault("log.path", defaultLogPath())
	v.SetDefault("log.level", "info")
}

// Load reads configuration from file and env. An explicit path must
// exist; otherwise TUIKIT_CONFIG or the default location is read when
// present. Env var overrides use prefix TUIKIT_.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("TUIKIT_CONFIG")
	}
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("TUIKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Data.Source {
	case SourceBuiltin:
	case SourceTOML, SourceSQLite:
		if strings.TrimSpace(c.Data.Path) == "" {
			return fmt.Errorf("%w: data.path is required for source %q", ErrInvalid, c.Data.Source)
		}
	default:
		return fmt.Errorf("%w: unknown data.source %q", ErrInvalid, c.Data.Source)
	}
	if _, err := language.Parse(c.UI.Locale); err != nil {
		return fmt.Errorf("%w: ui.locale: %v", ErrInvalid, err)
	}
	if _, err := inputfield.ParseVariant(c.UI.InputVariant); err != nil {
		return fmt.Errorf("%w: ui.input_variant: %v", ErrInvalid, err)
	}
	if _, err := inputfield.ParseSize(c.UI.InputSize); err != nil {
		return fmt.Errorf("%w: ui.input_size: %v", ErrInvalid, err)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

// SlogLevel parses the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(l.Level))
	return level, err
}

// Language returns the parsed UI locale, English when it does not parse.
func (u UIConfig) Language() language.Tag {
	tag, err := language.Parse(u.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// Save writes the provided config to path, creating the directory if
// needed. An empty path uses TUIKIT_CONFIG or the default location.
func Save(cfg Config, path string) error {
	if path == "" {
		path = os.Getenv("TUIKIT_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("data.source", cfg.Data.Source)
	v.Set("data.path", cfg.Data.Path)
	v.Set("data.migrations", cfg.Data.Migrations)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("ui.empty_message", cfg.UI.EmptyMessage)
	v.Set("ui.input_variant", cfg.UI.InputVariant)
	v.Set("ui.input_size", cfg.UI.InputSize)
	v.Set("ui.story", cfg.UI.Story)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	if len(cfg.Keys.Overrides) > 0 {
		overrides := make([]map[string]any, 0, len(cfg.Keys.Overrides))
		for _, o := range cfg.Keys.Overrides {
			overrides = append(overrides, map[string]any{
				"scope":  o.Scope,
				"action": o.Action,
				"keys":   o.Keys,
			})
		}
		v.Set("keys.overrides", overrides)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
