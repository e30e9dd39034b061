package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/bitsctl/internal/testutil/testlog"
	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTemplatesMatchDefaults(t *testing.T) {
	testlog.Start(t)
	for _, format := range []string{"toml", "yaml"} {
		path := filepath.Join(t.TempDir(), "bits."+format)
		if err := WriteTemplate(path, format, false); err != nil {
			t.Fatalf("%s: write template: %v", format, err)
		}
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("%s: load: %v", format, err)
		}
		if diff := cmp.Diff(Default(), cfg); diff != "" {
			t.Fatalf("%s: template drifted from defaults (-want +got):\n%s", format, diff)
		}
	}
}

func TestWriteTemplateRefusesOverwrite(t *testing.T) {
	testlog.Start(t)
	path := writeFile(t, "bits.toml", "")
	if err := WriteTemplate(path, "toml", false); err == nil {
		t.Fatalf("expected overwrite refusal")
	}
	if err := WriteTemplate(path, "toml", true); err != nil {
		t.Fatalf("forced write: %v", err)
	}
	if _, err := Template("ini"); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestLoadPartialOverridesKeepDefaults(t *testing.T) {
	testlog.Start(t)
	path := writeFile(t, "bits.toml", "[decoder]\nmax_depth = 12\nstrict_padding = true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Decoder.MaxDepth != 12 || !cfg.Decoder.StrictPadding {
		t.Fatalf("unexpected decoder config: %+v", cfg.Decoder)
	}
	if cfg.Decoder.MaxInputDigits != Default().Decoder.MaxInputDigits {
		t.Fatalf("expected default max_input_digits, got %d", cfg.Decoder.MaxInputDigits)
	}
	if cfg.Server.Addr != ":9400" {
		t.Fatalf("expected default addr, got %q", cfg.Server.Addr)
	}

	opts := cfg.Decoder.Options()
	if opts.MaxDepth != 12 || !opts.RejectNonZeroPadding {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestLoadYAML(t *testing.T) {
	testlog.Start(t)
	path := writeFile(t, "bits.yml", "server:\n  name: edge\n  addr: 127.0.0.1:9999\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Name != "edge" || cfg.Server.Addr != "127.0.0.1:9999" {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	testlog.Start(t)
	cases := map[string]string{
		"depth":  "[decoder]\nmax_depth = 0\n",
		"huge":   "[decoder]\nmax_depth = 100000\n",
		"digits": "[decoder]\nmax_input_digits = -1\n",
		"addr":   "[server]\naddr = \"  \"\n",
		"syntax": "[decoder\n",
	}
	for name, body := range cases {
		path := writeFile(t, name+".toml", body)
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	testlog.Start(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "config load failed") {
		t.Fatalf("expected load failure, got %v", err)
	}
}
