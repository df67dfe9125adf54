// ============================================================================
// minipy - Python Subset Front End
// ============================================================================
//
// Package:     config
// Description: TOML and YAML configuration of the minipy tool
// Author:      Mike Stoffels with Claude
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/minipy/foundation/core/error"
	mdwlog "github.com/msto63/minipy/foundation/core/log"
)

// EnvConfig names the environment variable holding the config path
const EnvConfig = "MINIPY_CONFIG"

// Config holds the complete tool configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Lexer   LexerConfig   `toml:"lexer" yaml:"lexer"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Watch   WatchConfig   `toml:"watch" yaml:"watch"`

	// path is the file the configuration was loaded from
	path string
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	LogFile   string `toml:"log_file" yaml:"log_file"`

	// Requires is a semantic version constraint the tool must satisfy
	Requires string `toml:"requires" yaml:"requires"`
}

// LexerConfig mirrors the lexer options
type LexerConfig struct {
	PromoteConstants bool `toml:"promote_constants" yaml:"promote_constants"`
	DigitNames       bool `toml:"digit_names" yaml:"digit_names"`
}

// OutputConfig controls how parse results are printed
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"` // text, json or yaml
	Color  string `toml:"color" yaml:"color"`   // auto, always or never
	Indent int    `toml:"indent" yaml:"indent"`
}

// WatchConfig holds settings of the watch command
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// MarshalYAML formats the duration as a string scalar
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

var (
	outputFormats = []string{"text", "json", "yaml"}
	colorModes    = []string{"auto", "always", "never"}
)

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Wrap(err, "config file not found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeIO).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	default:
		err = decodeTOML(data, &cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.path = path
	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, mdwerror.Wrap(err, "invalid config "+path).WithDetail("path", path)
	}
	return &cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	return decoder.Decode(cfg)
}

// LoadFromEnv loads configuration from the MINIPY_CONFIG environment
// variable or the first default location that exists. Without any file
// the defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./minipy.toml",
			"./configs/minipy.toml",
			filepath.Join(os.Getenv("HOME"), ".config/minipy/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "minipy"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
	if c.Output.Indent == 0 {
		c.Output.Indent = 2
	}

	// Watch
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 100 * time.Millisecond
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
}

// Validate checks that every setting holds a supported value
func (c *Config) Validate() error {
	var problems []string

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("general.log_level %q is not a log level", c.General.LogLevel))
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		problems = append(problems, fmt.Sprintf("general.log_format %q is not a log format", c.General.LogFormat))
	}
	if c.General.Requires != "" {
		if _, err := semver.NewConstraint(c.General.Requires); err != nil {
			problems = append(problems, fmt.Sprintf("general.requires %q is not a version constraint", c.General.Requires))
		}
	}
	if !contains(outputFormats, c.Output.Format) {
		problems = append(problems, fmt.Sprintf("output.format must be one of %s", strings.Join(outputFormats, ", ")))
	}
	if !contains(colorModes, c.Output.Color) {
		problems = append(problems, fmt.Sprintf("output.color must be one of %s", strings.Join(colorModes, ", ")))
	}
	if c.Output.Indent < 0 {
		problems = append(problems, "output.indent should not be negative")
	}
	if c.Watch.Debounce.Duration < 0 {
		problems = append(problems, "watch.debounce should not be negative")
	}

	if len(problems) > 0 {
		return mdwerror.New(strings.Join(problems, "; ")).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("problems", problems)
	}
	return nil
}

// CheckRequires verifies that version satisfies general.requires
func (c *Config) CheckRequires(version string) error {
	if c.General.Requires == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(c.General.Requires)
	if err != nil {
		return mdwerror.Wrap(err, "invalid version constraint").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.CheckRequires")
	}
	current, err := semver.NewVersion(version)
	if err != nil {
		return mdwerror.Wrap(err, "invalid tool version").
			WithCode(mdwerror.CodeInternal).
			WithOperation("config.CheckRequires").
			WithDetail("version", version)
	}

	if !constraint.Check(current) {
		return mdwerror.Newf("minipy %s does not satisfy %s", version, c.General.Requires).
			WithCode(mdwerror.CodeIncompatible).
			WithOperation("config.CheckRequires").
			WithDetail("version", version).
			WithDetail("requires", c.General.Requires)
	}
	return nil
}

// Path returns the file the configuration was loaded from, or an empty
// string for defaults
func (c *Config) Path() string {
	return c.path
}

// Encode writes the configuration as TOML
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
