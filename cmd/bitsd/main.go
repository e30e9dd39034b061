package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/bitsctl/internal/config"
	"github.com/danmuck/bitsctl/internal/observability"
	"github.com/danmuck/bitsctl/internal/server"
)

func main() {
	configPath := flag.String("config", "", "TOML or YAML config path (defaults built in)")
	writeTemplate := flag.String("write-template", "", "write a config template to this path and exit")
	format := flag.String("format", "toml", "template format: toml|yaml")
	force := flag.Bool("force", false, "overwrite an existing template")
	flag.Parse()

	if *writeTemplate != "" {
		if err := config.WriteTemplate(*writeTemplate, *format, *force); err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("Wrote %s config template to %s\n", *format, *writeTemplate)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fatalf("%v", err)
		}
		cfg = loaded
	}

	logger := observability.InitLogger("bitsd")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, logger).Run(ctx); err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "bitsd: "+format+"\n", args...)
	os.Exit(1)
}
