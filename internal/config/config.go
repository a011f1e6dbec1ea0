// Package config loads tidebuf settings from defaults, a TOML file and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tidebuf/internal/logger"
	"github.com/bethropolis/tidebuf/internal/text"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config `toml:"logger"`  // [logger] table
	Session SessionConfig `toml:"session"` // [session] table
}

// SessionConfig holds settings for one editing session.
type SessionConfig struct {
	Units           string `toml:"units"`     // grapheme, rune or byte
	Interface       string `toml:"interface"` // auto, stream or tui
	SystemClipboard bool   `toml:"system_clipboard"`
	ReportStats     bool   `toml:"report_stats"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Session: SessionConfig{
			Units:           DefaultUnits,
			Interface:       DefaultInterface,
			SystemClipboard: SystemClipboard,
			ReportStats:     ReportStats,
		},
	}
}

// DefaultPath returns the config file location under the user config directory.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
}

// loadFromFile decodes a TOML file over cfg. A missing file is not an error.
// Undecoded keys are returned so they can be reported once logging is up.
func loadFromFile(filePath string, cfg *Config) (undecoded []string, err error) {
	_, err = os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate checks config values and resets invalid ones to defaults.
// It returns a description of every value it reset.
func (c *Config) validate() []string {
	defaults := NewDefaultConfig()
	var fixes []string

	if _, err := text.Parse(c.Session.Units); err != nil {
		fixes = append(fixes, fmt.Sprintf("session.units %q invalid, using %q", c.Session.Units, defaults.Session.Units))
		c.Session.Units = defaults.Session.Units
	}
	c.Session.Units = strings.ToLower(strings.TrimSpace(c.Session.Units))
	if c.Session.Units == "" {
		c.Session.Units = defaults.Session.Units
	}

	switch strings.ToLower(c.Session.Interface) {
	case InterfaceAuto, InterfaceStream, InterfaceTUI:
		c.Session.Interface = strings.ToLower(c.Session.Interface)
	default:
		fixes = append(fixes, fmt.Sprintf("session.interface %q invalid, using %q", c.Session.Interface, defaults.Session.Interface))
		c.Session.Interface = defaults.Session.Interface
	}

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		fixes = append(fixes, fmt.Sprintf("logger.log_level %q invalid, using %q", c.Logger.LogLevel, defaults.Logger.LogLevel))
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	return fixes
}

// Result is a loaded configuration plus the notes gathered before logging was available.
type Result struct {
	Config    *Config
	Path      string   // Config file that was consulted, may not exist
	Undecoded []string // Unrecognized keys in the file
	Fixes     []string // Values reset by validation
}

// Report logs the notes collected while loading. Call it after logger.Init.
func (r *Result) Report() {
	logger.DebugTagf("config", "Config: using file %q", r.Path)
	if len(r.Undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", r.Path, r.Undecoded)
	}
	for _, fix := range r.Fixes {
		logger.Warnf("Config: %s", fix)
	}
}

// Load merges defaults, the config file and flag overrides, then validates.
// An empty configFilePath selects DefaultPath.
func Load(configFilePath string, flags *Flags) (*Result, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultPath()
	}

	res := &Result{Config: cfg, Path: effectivePath}
	if effectivePath != "" {
		undecoded, err := loadFromFile(effectivePath, cfg)
		if err != nil {
			return nil, err
		}
		res.Undecoded = undecoded
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	res.Fixes = cfg.validate()
	return res, nil
}
