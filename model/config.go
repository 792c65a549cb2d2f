package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidConfig     = errors.New("invalid config")
)

type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log" json:"log"`
	Search SearchConfig `toml:"search" yaml:"search" json:"search"`
	Cache  CacheConfig  `toml:"cache" yaml:"cache" json:"cache"`
	Input  InputConfig  `toml:"input" yaml:"input" json:"input"`
}

type LogConfig struct {
	Level string `toml:"level,omitempty" yaml:"level,omitempty" json:"level,omitempty"`
}

type SearchConfig struct {
	// MaxExpansions stops the search with ErrBudgetExceeded once this many
	// states have been expanded. Zero means no limit.
	MaxExpansions int `toml:"max_expansions,omitempty" yaml:"max_expansions,omitempty" json:"max_expansions,omitempty"`
	// RecordPath keeps parent links so the winning move sequence can be rebuilt.
	RecordPath bool `toml:"record_path,omitempty" yaml:"record_path,omitempty" json:"record_path,omitempty"`
	// ProgressEvery reports progress after this many expansions. Zero disables it.
	ProgressEvery int `toml:"progress_every,omitempty" yaml:"progress_every,omitempty" json:"progress_every,omitempty"`
}

type CacheConfig struct {
	Size int `toml:"size,omitempty" yaml:"size,omitempty" json:"size,omitempty"`
}

type InputConfig struct {
	Unfold bool `toml:"unfold,omitempty" yaml:"unfold,omitempty" json:"unfold,omitempty"`
}

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func DefaultConfig() *Config {
	return &Config{
		Log:   LogConfig{Level: "info"},
		Cache: CacheConfig{Size: 10000},
	}
}

func (c *Config) Validate() error {
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions is negative", ErrInvalidConfig)
	}
	if c.Search.ProgressEvery < 0 {
		return fmt.Errorf("%w: search.progress_every is negative", ErrInvalidConfig)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("%w: cache.size is negative", ErrInvalidConfig)
	}
	return nil
}

// LogLevel is the parsed log.level. Empty or unknown levels fall back to info.
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || c.Log.Level == "" {
		return zerolog.InfoLevel
	}
	return level
}

// parseConfig decodes r on top of the defaults.
func parseConfig(r io.Reader, format Format) (*Config, error) {
	out := DefaultConfig()
	var err error
	switch format {
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(out)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(out)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case FormatJSON:
		err = json.NewDecoder(r).Decode(out)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s config: %w", format, err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func formatForPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// LoadConfigFromFile reads a config file, choosing the decoder by extension.
func LoadConfigFromFile(path string) (*Config, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseConfig(f, format)
}
