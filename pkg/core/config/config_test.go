package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/minipy/foundation/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{5 * time.Minute}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "5m0s" {
		t.Errorf("MarshalText() = %v, want 5m0s", string(result))
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.General.Name != "minipy" {
		t.Errorf("General.Name = %v, want minipy", cfg.General.Name)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "console" {
		t.Errorf("General.LogFormat = %v, want console", cfg.General.LogFormat)
	}
	if cfg.Output.Format != "text" || cfg.Output.Color != "auto" || cfg.Output.Indent != 2 {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Watch.Debounce.Duration != 100*time.Millisecond {
		t.Errorf("Watch.Debounce = %v, want 100ms", cfg.Watch.Debounce.Duration)
	}
	if cfg.Lexer.PromoteConstants || cfg.Lexer.DigitNames {
		t.Errorf("lexer options should default to off: %+v", cfg.Lexer)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "minipy.toml", `
[general]
log_level = "debug"
requires = ">= 0.1.0"

[lexer]
promote_constants = true

[output]
format = "json"

[watch]
debounce = "250ms"
`},
		{"yaml", "minipy.yaml", `
general:
  log_level: debug
  requires: ">= 0.1.0"
lexer:
  promote_constants: true
output:
  format: json
watch:
  debounce: 250ms
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if cfg.General.LogLevel != "debug" {
				t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
			}
			if !cfg.Lexer.PromoteConstants {
				t.Error("Lexer.PromoteConstants should be true")
			}
			if cfg.Output.Format != "json" {
				t.Errorf("Output.Format = %v, want json", cfg.Output.Format)
			}
			if cfg.Watch.Debounce.Duration != 250*time.Millisecond {
				t.Errorf("Watch.Debounce = %v, want 250ms", cfg.Watch.Debounce.Duration)
			}
			// defaults still apply to missing keys
			if cfg.Output.Color != "auto" {
				t.Errorf("Output.Color = %v, want auto", cfg.Output.Color)
			}
			if cfg.Path() != path {
				t.Errorf("Path() = %v, want %v", cfg.Path(), path)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    mdwerror.Code
	}{
		{"unknown toml key", "a.toml", "[output]\nstyle = \"fancy\"\n", mdwerror.CodeConfigError},
		{"unknown yaml key", "a.yaml", "output:\n  style: fancy\n", mdwerror.CodeConfigError},
		{"malformed toml", "a.toml", "[general\n", mdwerror.CodeConfigError},
		{"bad duration", "a.toml", "[watch]\ndebounce = \"soon\"\n", mdwerror.CodeConfigError},
		{"bad format", "a.toml", "[output]\nformat = \"xml\"\n", mdwerror.CodeInvalidConfig},
		{"bad level", "a.yml", "general:\n  log_level: loud\n", mdwerror.CodeInvalidConfig},
		{"bad constraint", "a.toml", "[general]\nrequires = \"newest\"\n", mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("error = %v, want code %v", err, tt.code)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing file error = %v, want code %v", err, mdwerror.CodeNotFound)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "custom.toml", "[output]\nformat = \"yaml\"\n")
	t.Setenv(EnvConfig, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %v, want yaml", cfg.Output.Format)
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Path() != "" || cfg.Output.Format != "text" {
		t.Errorf("expected defaults, got %+v from %q", cfg.Output, cfg.Path())
	}
}

func TestConfig_CheckRequires(t *testing.T) {
	tests := []struct {
		name     string
		requires string
		version  string
		code     mdwerror.Code
	}{
		{"no constraint", "", "0.1.0", ""},
		{"satisfied", ">= 0.1.0", "0.1.0", ""},
		{"too old", ">= 0.2.0", "0.1.0", mdwerror.CodeIncompatible},
		{"bad version", ">= 0.1.0", "dev", mdwerror.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.General.Requires = tt.requires

			err := cfg.CheckRequires(tt.version)
			if tt.code == "" {
				if err != nil {
					t.Errorf("CheckRequires() error = %v", err)
				}
				return
			}
			if mdwerror.GetCode(err) != tt.code {
				t.Errorf("CheckRequires() = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestConfig_Encode(t *testing.T) {
	data, err := Default().Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `debounce = "100ms"`) || !strings.Contains(out, "[output]") {
		t.Errorf("Encode() = %s", out)
	}
}
