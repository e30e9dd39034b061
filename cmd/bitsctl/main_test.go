package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/bitsctl/internal/bits"
	"github.com/danmuck/bitsctl/internal/testutil/testlog"
)

func TestLoadCLIConfigDefaultsAndOverrides(t *testing.T) {
	testlog.Start(t)
	cfg, err := loadCLIConfig("ex.config.toml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Input != "message.hex" {
		t.Fatalf("unexpected input: %q", cfg.Input)
	}
	if !cfg.Tree {
		t.Fatalf("expected tree enabled")
	}
	if cfg.Decoder.MaxDepth != 64 {
		t.Fatalf("unexpected max depth: %d", cfg.Decoder.MaxDepth)
	}
	if !cfg.Decoder.StrictPadding {
		t.Fatalf("expected strict padding")
	}
	if cfg.Decoder.MaxInputDigits != defaultCLIConfig().Decoder.MaxInputDigits {
		t.Fatalf("expected default max input digits, got %d", cfg.Decoder.MaxInputDigits)
	}
}

func TestLoadCLIConfigEmptyPath(t *testing.T) {
	testlog.Start(t)
	cfg, err := loadCLIConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Input != "input.txt" || cfg.Decoder.MaxDepth != bits.DefaultMaxDepth {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadCLIConfigRejectsUnknownAndInvalid(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	cases := map[string]string{
		"unknown.toml": "inputs = \"x\"\n",
		"depth.toml":   "max_depth = 0\n",
	}
	for name, body := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := loadCLIConfig(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestRunPrintsBothParts(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("A0016C880162017C3686B18A3D4780\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-input", path}, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "Part 1: 31\nPart 2: ") {
		t.Fatalf("unexpected output: %q", stdout.String())
	}
}

func TestRunReadsStdinAndPrintsTree(t *testing.T) {
	testlog.Start(t)
	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("  C200B40A82\r\n")
	if code := run([]string{"-input", "-", "-tree"}, stdin, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	want := "(sum v6 (literal v6 1) (literal v2 2))\nPart 1: 14\nPart 2: 3\n"
	if stdout.String() != want {
		t.Fatalf("unexpected output:\n%s", stdout.String())
	}
}

func TestRunReportsDecodeError(t *testing.T) {
	testlog.Start(t)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-input", "-"}, strings.NewReader("D2FE"), &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.HasPrefix(stderr.String(), "bitsctl: ") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected no stdout, got %q", stdout.String())
	}
}

func TestRunMissingInput(t *testing.T) {
	testlog.Start(t)
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "nope.txt")
	if code := run([]string{"-input", missing}, nil, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
}
