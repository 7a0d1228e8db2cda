package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/xiam/minilisp/parser"
)

// EnvConfig names the environment variable that points to a config file.
const EnvConfig = "MINILISP_CONFIG"

// DefaultPath is looked up when EnvConfig is not set.
const DefaultPath = "./minilisp.toml"

// Config holds the complete command line configuration
type Config struct {
	Output OutputConfig `toml:"output" yaml:"output"`
	Parser ParserConfig `toml:"parser" yaml:"parser"`
}

// OutputConfig controls what gets printed and how
type OutputConfig struct {
	Color  bool `toml:"color" yaml:"color"`
	Tokens bool `toml:"tokens" yaml:"tokens"`
	Table  bool `toml:"table" yaml:"table"`
}

// ParserConfig mirrors parser.Options
type ParserConfig struct {
	AutoCloseOnEOF bool `toml:"auto_close_on_eof" yaml:"auto_close_on_eof"`
	MaxDepth       int  `toml:"max_depth" yaml:"max_depth"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Color:  true,
			Tokens: true,
			Table:  true,
		},
	}
}

// Load loads configuration from a TOML or YAML file. The format is picked
// by extension; anything but .yaml and .yml is read as TOML. Keys missing
// from the file keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by MINILISP_CONFIG, falls back to
// ./minilisp.toml and finally to the defaults.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return Load(DefaultPath)
	}
	return Default(), nil
}

// Validate reports values that make no sense
func (c *Config) Validate() error {
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("parser.max_depth must not be negative, got %d", c.Parser.MaxDepth)
	}
	return nil
}

// ParserOptions converts the parser section into parser.Options
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{
		AutoCloseOnEOF: c.Parser.AutoCloseOnEOF,
		MaxDepth:       c.Parser.MaxDepth,
	}
}
