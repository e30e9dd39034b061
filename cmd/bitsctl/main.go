package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/danmuck/bitsctl/internal/observability"
	"github.com/danmuck/bitsctl/internal/service"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bitsctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "optional TOML config path")
	input := fs.String("input", "", "hex input file, - for stdin (default input.txt)")
	tree := fs.Bool("tree", false, "print the decoded packet tree")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadCLIConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "bitsctl: %v\n", err)
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "tree":
			cfg.Tree = *tree
		}
	})

	logger := observability.InitLogger("bitsctl")
	hex, err := readInput(cfg.Input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "bitsctl: %v\n", err)
		return 1
	}

	res, err := service.New(cfg.Decoder, logger, "cli").Process(hex)
	if err != nil {
		fmt.Fprintf(stderr, "bitsctl: %v\n", err)
		return 1
	}

	if cfg.Tree {
		fmt.Fprintln(stdout, res.Root)
	}
	fmt.Fprintf(stdout, "Part 1: %d\n", res.VersionSum)
	fmt.Fprintf(stdout, "Part 2: %d\n", res.Value)
	return 0
}

// readInput loads the message and strips surrounding whitespace, which the
// decoder itself rejects.
func readInput(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimFunc(string(data), unicode.IsSpace), nil
}
