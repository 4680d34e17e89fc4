// Package config loads keychord settings.
//
// Settings come from, in increasing priority: built-in defaults, the
// keychord.toml file, and KEYCHORD_* environment variables.
//
//	format = "json"        # text, json or auto
//
//	[log]
//	level = "debug"        # debug, info, warn or error
//
//	[[keysym]]
//	name = "kana_A"
//	codepoint = 0x30a2
//
// Keysym entries are layered over the built-in keysym table.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/dshills/keychord/internal/input/keysym"
)

const (
	// AppName is the application name.
	AppName = "keychord"
	// EnvPrefix prefixes environment overrides, e.g. KEYCHORD_FORMAT.
	EnvPrefix = "KEYCHORD"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatAuto = "auto"
)

// KeysymEntry is a user-defined keysym.
type KeysymEntry struct {
	Name      string `mapstructure:"name"`
	Codepoint int64  `mapstructure:"codepoint"`
}

// Config holds keychord settings.
type Config struct {
	// Format selects parse output: text, json or auto.
	Format string

	// LogLevel is debug, info, warn or error.
	LogLevel string

	// Keysyms are extra keysym names layered over the built-in table.
	Keysyms []KeysymEntry

	// File is the config file that was read, empty if none.
	File string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Format:   FormatAuto,
		LogLevel: "warn",
	}
}

// Dir returns the directory searched for keychord.toml:
// $XDG_CONFIG_HOME/keychord or the platform equivalent.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// Load reads settings. An empty path searches Dir() and the working
// directory; a missing file there is not an error. An explicit path must
// exist.
func Load(path string) (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault("format", def.Format)
	v.SetDefault("log.level", def.LogLevel)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("toml")
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(AppName)
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// A search that finds nothing leaves defaults and environment.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Format:   strings.ToLower(v.GetString("format")),
		LogLevel: strings.ToLower(v.GetString("log.level")),
		File:     v.ConfigFileUsed(),
	}
	if err := v.UnmarshalKey("keysym", &cfg.Keysyms); err != nil {
		return nil, fmt.Errorf("read config: keysym: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatAuto:
	default:
		return &ValidationError{Path: "format", Message: "must be text, json or auto", Value: c.Format}
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "fatal" {
		return &ValidationError{Path: "log.level", Message: "must be debug, info, warn or error", Value: c.LogLevel}
	}

	for i, k := range c.Keysyms {
		path := fmt.Sprintf("keysym[%d]", i)
		if k.Name == "" {
			return &ValidationError{Path: path + ".name", Message: "must not be empty", Value: k.Name}
		}
		if k.Codepoint < 0 || k.Codepoint > utf8.MaxRune {
			return &ValidationError{Path: path + ".codepoint", Message: "must be a Unicode codepoint", Value: k.Codepoint}
		}
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// Resolver returns the keysym resolver: user keysyms first, then the
// built-in table.
func (c *Config) Resolver() keysym.Resolver {
	if len(c.Keysyms) == 0 {
		return keysym.Default()
	}
	user := make(keysym.Map, len(c.Keysyms))
	for _, k := range c.Keysyms {
		user[k.Name] = rune(k.Codepoint)
	}
	return keysym.Chain(user, keysym.Default())
}
