// Package config resolves mpass settings from mpass.toml, the environment
// and built-in defaults.
//
// Precedence, highest first: command-line flags (applied by the CLI), MPASS_*
// environment variables (a .env file next to the working directory is loaded
// first and never overrides variables already set), mpass.toml found by
// walking up from the working directory, defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// FileName is the manifest looked up by Find.
const FileName = "mpass.toml"

// DefaultSpec is used when neither flags, env nor mpass.toml give one.
const DefaultSpec = "i w w ###$"

type Config struct {
	Generate GenerateConfig `toml:"generate"`
	Lists    ListsConfig    `toml:"lists"`

	// Path of the mpass.toml that was applied; empty if none.
	Path string `toml:"-"`
}

type GenerateConfig struct {
	Spec   string `toml:"spec" env:"MPASS_SPEC"`
	Count  int    `toml:"count" env:"MPASS_COUNT"`
	Source string `toml:"source" env:"MPASS_SOURCE"`
	Seed   uint64 `toml:"seed" env:"MPASS_SEED"`
}

type ListsConfig struct {
	Words    string   `toml:"words" env:"MPASS_WORDS"`
	Symbols  []string `toml:"symbols" env:"MPASS_SYMBOLS" envSeparator:" "`
	Cache    bool     `toml:"cache" env:"MPASS_CACHE"`
	CacheDir string   `toml:"cache_dir" env:"MPASS_CACHE_DIR"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Generate: GenerateConfig{Spec: DefaultSpec, Count: 1, Source: "default"},
	}
}

// Find walks up from startDir looking for mpass.toml.
func Find(startDir string) (string, bool, error) {
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

// Load applies mpass.toml (if found from startDir), .env and the environment
// on top of Default.
func Load(startDir string) (Config, error) {
	cfg := Default()

	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if ok {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	return ApplyEnv(cfg, startDir)
}

// ApplyEnv loads dir/.env (never overriding variables already set) and then
// applies MPASS_* variables on top of cfg.
func ApplyEnv(cfg Config, dir string) (Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes a single mpass.toml on top of Default, without env overrides.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if err := decodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func decodeFile(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	// относительный путь к словарю считается от каталога mpass.toml
	if w := cfg.Lists.Words; w != "" && !filepath.IsAbs(w) {
		cfg.Lists.Words = filepath.Join(filepath.Dir(path), filepath.FromSlash(w))
	}
	cfg.Path = path
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Generate.Count < 1 {
		return fmt.Errorf("generate.count must be at least 1, got %d", c.Generate.Count)
	}
	switch c.Generate.Source {
	case "", "default", "crypto", "seeded":
	default:
		return fmt.Errorf("generate.source must be default, crypto or seeded, got %q", c.Generate.Source)
	}
	return nil
}

// Template returns a starter mpass.toml.
func Template() string {
	return fmt.Sprintf(`# mpass configuration
[generate]
# w W i r: words (lower, UPPER, Proper, rAndom cap); a A: letters; x: alphanumeric;
# z: alphanumeric or symbol; #: digit; $: symbol; space: literal space; ?: shuffle
spec = %q
count = 1
source = "default"

[lists]
# words = "words.txt"
# symbols = ["!", "@", "#", "$", "%%", "&", "*", "+", "-"]
cache = false
`, DefaultSpec)
}
