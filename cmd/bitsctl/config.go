package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/bitsctl/internal/config"
)

type fileConfig struct {
	Input          string `toml:"input"`
	Tree           bool   `toml:"tree"`
	MaxDepth       int    `toml:"max_depth"`
	MaxInputDigits int    `toml:"max_input_digits"`
	StrictPadding  bool   `toml:"strict_padding"`
}

type cliConfig struct {
	Input   string
	Tree    bool
	Decoder config.DecoderConfig
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		Input:   "input.txt",
		Decoder: config.Default().Decoder,
	}
}

func loadCLIConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cliConfig{}, fmt.Errorf("load bitsctl config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cliConfig{}, fmt.Errorf("load bitsctl config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("input") {
		if in := strings.TrimSpace(raw.Input); in != "" {
			cfg.Input = in
		}
	}
	if meta.IsDefined("tree") {
		cfg.Tree = raw.Tree
	}
	if meta.IsDefined("max_depth") {
		cfg.Decoder.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("max_input_digits") {
		cfg.Decoder.MaxInputDigits = raw.MaxInputDigits
	}
	if meta.IsDefined("strict_padding") {
		cfg.Decoder.StrictPadding = raw.StrictPadding
	}

	if err := config.ValidateDecoderConfig(cfg.Decoder); err != nil {
		return cliConfig{}, fmt.Errorf("load bitsctl config: %w", err)
	}
	return cfg, nil
}
