package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danmuck/bitsctl/internal/bits"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// MaxDepthLimit caps decoder.max_depth so a config cannot reintroduce
// unbounded recursion.
const MaxDepthLimit = 4096

type Config struct {
	Decoder DecoderConfig `toml:"decoder" yaml:"decoder"`
	Server  ServerConfig  `toml:"server" yaml:"server"`
}

type DecoderConfig struct {
	MaxDepth       int  `toml:"max_depth" yaml:"max_depth"`
	MaxInputDigits int  `toml:"max_input_digits" yaml:"max_input_digits"`
	StrictPadding  bool `toml:"strict_padding" yaml:"strict_padding"`
}

type ServerConfig struct {
	Name        string   `toml:"name" yaml:"name"`
	Addr        string   `toml:"addr" yaml:"addr"`
	CorsOrigins []string `toml:"cors_origins" yaml:"cors_origins"`
}

func Default() Config {
	return Config{
		Decoder: DecoderConfig{
			MaxDepth:       bits.DefaultMaxDepth,
			MaxInputDigits: 1 << 16,
		},
		Server: ServerConfig{
			Name:        "bitsd",
			Addr:        ":9400",
			CorsOrigins: []string{"http://localhost:3000"},
		},
	}
}

// Load reads a TOML or YAML file (chosen by extension) over Default and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := loadFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func loadFile(path string, out *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, out)
	default:
		err = toml.Unmarshal(data, out)
	}
	if err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateConfig(cfg Config) error {
	if err := ValidateDecoderConfig(cfg.Decoder); err != nil {
		return fmt.Errorf("decoder: %w", err)
	}
	if strings.TrimSpace(cfg.Server.Name) == "" {
		return fmt.Errorf("server config missing name")
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return fmt.Errorf("server config missing addr")
	}
	return nil
}

func ValidateDecoderConfig(cfg DecoderConfig) error {
	if cfg.MaxDepth < 1 || cfg.MaxDepth > MaxDepthLimit {
		return fmt.Errorf("max_depth must be in [1, %d], got %d", MaxDepthLimit, cfg.MaxDepth)
	}
	if cfg.MaxInputDigits < 0 {
		return fmt.Errorf("max_input_digits must not be negative, got %d", cfg.MaxInputDigits)
	}
	return nil
}

// Options converts the decoder section into bits.DecoderOptions.
func (c DecoderConfig) Options() bits.DecoderOptions {
	return bits.DecoderOptions{
		MaxDepth:             c.MaxDepth,
		MaxInputDigits:       c.MaxInputDigits,
		RejectNonZeroPadding: c.StrictPadding,
	}
}
