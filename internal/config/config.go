package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/idilsaglam/shoplist/internal/paths"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme         = "classic"
	DefaultOutput        = "panel"
	DefaultToastDuration = 2 * time.Second
	DefaultLogLevel      = "info"
)

var (
	validThemes  = []string{"classic", "neon", "mono"}
	validOutputs = []string{"panel", "table", "json", "none"}
	validLevels  = []string{"debug", "info", "warn", "error"}
)

type UIConfig struct {
	Theme         string        `yaml:"theme"`
	ToastDuration time.Duration `yaml:"toast_duration"`
	AltScreen     *bool         `yaml:"alt_screen,omitempty"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

type Config struct {
	UI     UIConfig  `yaml:"ui"`
	Log    LogConfig `yaml:"log"`
	Output string    `yaml:"output"` // summary printed on quit
}

func Defaults() Config {
	alt := true
	return Config{
		UI:     UIConfig{Theme: DefaultTheme, ToastDuration: DefaultToastDuration, AltScreen: &alt},
		Log:    LogConfig{Level: DefaultLogLevel},
		Output: DefaultOutput,
	}
}

// Path returns the expected path to the config.yaml file.
func Path() string {
	return filepath.Join(paths.Home(), "config.yaml")
}

// Load reads configuration from config.yaml under the shoplist home.
// Missing file is not an error; defaults are returned.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile reads configuration from p, merged over Defaults. Values are not
// validated here so that flags can still override them; call Validate once
// everything is merged.
func LoadFile(p string) (Config, error) {
	cfg := Defaults()
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(b, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	// Merge: override defaults with provided values if non-zero
	if fileCfg.UI.Theme != "" {
		cfg.UI.Theme = fileCfg.UI.Theme
	}
	if fileCfg.UI.ToastDuration != 0 {
		cfg.UI.ToastDuration = fileCfg.UI.ToastDuration
	}
	if fileCfg.UI.AltScreen != nil {
		cfg.UI.AltScreen = fileCfg.UI.AltScreen
	}
	if fileCfg.Log.File != "" {
		cfg.Log.File = fileCfg.Log.File
	}
	if fileCfg.Log.Level != "" {
		cfg.Log.Level = fileCfg.Log.Level
	}
	if fileCfg.Output != "" {
		cfg.Output = fileCfg.Output
	}
	return cfg, nil
}

// Validate checks enumerated fields and durations.
func (c Config) Validate() error {
	if !oneOf(c.UI.Theme, validThemes) {
		return fmt.Errorf("unknown theme %q (want %s)", c.UI.Theme, strings.Join(validThemes, ", "))
	}
	if !oneOf(c.Output, validOutputs) {
		return fmt.Errorf("unknown output %q (want %s)", c.Output, strings.Join(validOutputs, ", "))
	}
	if !oneOf(c.Log.Level, validLevels) {
		return fmt.Errorf("unknown log level %q (want %s)", c.Log.Level, strings.Join(validLevels, ", "))
	}
	if c.UI.ToastDuration < 0 {
		return fmt.Errorf("toast_duration must not be negative, got %s", c.UI.ToastDuration)
	}
	return nil
}

// UseAltScreen reports whether the TUI should take over the full terminal.
func (c Config) UseAltScreen() bool {
	return c.UI.AltScreen == nil || *c.UI.AltScreen
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
