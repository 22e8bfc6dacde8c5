package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/claude/fitforge/internal/config"
	"github.com/claude/fitforge/internal/generator"
	fitmcp "github.com/claude/fitforge/internal/mcp"
	"github.com/claude/fitforge/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("fitforge-mcp", Version)
		return
	}

	// stdout carries the MCP protocol, so logs go to stderr
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := storage.New(context.Background(), cfg.Database.DSN())
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var gen generator.RawGenerator
	if cfg.Generator.BaseURL != "" {
		gen = generator.NewClient(cfg.Generator.BaseURL, cfg.Generator.APIKey,
			time.Duration(cfg.Generator.TimeoutSeconds)*time.Second)
	}
	synth := generator.NewSynthesizer(gen, log)

	s := fitmcp.New(db, synth, Version, log)

	log.Info("FitForge MCP server starting", "version", Version)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
