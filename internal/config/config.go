package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"dangle/internal/rule"
)

// FileName is the project manifest discovered upward from the lint target.
const FileName = "dangle.toml"

// Config is the decoded dangle.toml.
type Config struct {
	Check  CheckConfig  `toml:"check"`
	Output OutputConfig `toml:"output"`
}

// CheckConfig configures the rule itself.
type CheckConfig struct {
	Mode           string `toml:"mode"`
	Functions      bool   `toml:"functions"`
	MaxDiagnostics int    `toml:"max-diagnostics"`
}

// OutputConfig configures how findings are rendered.
type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
	Paths  string `toml:"paths"`
}

// Manifest pairs a decoded config with where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Default returns the configuration used when no dangle.toml exists: mode
// "never", literals and patterns only, pretty output.
func Default() Config {
	return Config{
		Check:  CheckConfig{Mode: "never", MaxDiagnostics: 256},
		Output: OutputConfig{Format: "pretty", Color: true, Paths: "auto"},
	}
}

// Discover walks from startDir upward looking for dangle.toml.
func Discover(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load discovers and decodes the manifest for startDir. The second result is
// false when no manifest exists; callers then run on Default().
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Discover(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := decode(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

func decode(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := validate(meta, cfg, path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(meta toml.MetaData, cfg Config, path string) error {
	if meta.IsDefined("check", "mode") {
		if _, err := rule.ParseMode(cfg.Check.Mode); err != nil {
			return fmt.Errorf("%s: [check].mode: %w", path, err)
		}
	}
	if meta.IsDefined("check", "max-diagnostics") && cfg.Check.MaxDiagnostics < 0 {
		return fmt.Errorf("%s: [check].max-diagnostics must not be negative", path)
	}
	if meta.IsDefined("output", "format") {
		switch strings.TrimSpace(cfg.Output.Format) {
		case "pretty", "json", "short", "sarif":
		default:
			return fmt.Errorf("%s: [output].format must be pretty, json, short or sarif, got %q", path, cfg.Output.Format)
		}
	}
	if meta.IsDefined("output", "paths") {
		switch strings.TrimSpace(cfg.Output.Paths) {
		case "auto", "absolute", "relative", "basename":
		default:
			return fmt.Errorf("%s: [output].paths must be auto, absolute, relative or basename, got %q", path, cfg.Output.Paths)
		}
	}
	return nil
}

// RuleOptions converts the check section into resolved rule options. The
// mode string is validated at decode time, so this cannot fail for loaded
// manifests.
func (c Config) RuleOptions() (rule.Options, error) {
	mode, err := rule.ParseMode(c.Check.Mode)
	if err != nil {
		return rule.Options{}, err
	}
	return rule.Options{Mode: mode, Functions: c.Check.Functions}, nil
}
