package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/claude/fitforge/internal/generator"
	"github.com/claude/fitforge/internal/models"
	"github.com/claude/fitforge/internal/plancache"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	input := flag.String("input", "", "file with raw generator output to fit ('-' for stdin); empty uses the built-in library")
	groups := flag.String("groups", "", "comma-separated muscle groups (chest, back, legs, shoulders, arms, core)")
	minutes := flag.Int("minutes", 45, "target workout duration in minutes")
	recent := flag.Int("recent", 0, "show the N most recent cached plans and exit")
	cacheDir := flag.String("cache-dir", "", "plan cache directory (default ~/.fitforge)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("fitforge-plan", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cache, err := openCache(*cacheDir)
	if err != nil {
		log.Error("failed to open plan cache", "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	if *recent > 0 {
		plans, err := cache.Recent(*recent)
		if err != nil {
			log.Error("failed to read plan cache", "error", err)
			os.Exit(1)
		}
		for _, p := range plans {
			fmt.Printf("#%d  %s  (%d min target, %d min estimated, %s)\n",
				p.ID, p.Title, p.TargetMinutes, p.EstimatedMinutes, p.CreatedAt.Format("2006-01-02 15:04"))
		}
		return
	}

	if *minutes <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -minutes must be positive")
		os.Exit(1)
	}

	req := models.GenerationRequest{
		SelectedMuscleGroups: splitGroups(*groups),
		TargetMinutes:        *minutes,
	}

	synth := generator.NewSynthesizer(nil, log)

	var result models.PlanSynthesisResult
	if *input != "" {
		raw, err := readInput(*input)
		if err != nil {
			log.Error("failed to read input", "error", err)
			os.Exit(1)
		}
		result = synth.Resynthesize(raw, req)
	} else {
		result = synth.Synthesize(context.Background(), req)
	}

	if _, err := cache.Save(req, result); err != nil {
		log.Warn("failed to cache plan", "error", err)
	}

	printPlan(result)
}

func openCache(dir string) (*plancache.Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		dir = filepath.Join(home, ".fitforge")
	}
	return plancache.Open(dir)
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func splitGroups(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printPlan(result models.PlanSynthesisResult) {
	fmt.Printf("%s (~%d min)\n\n", result.Title, result.EstimatedMinutes)
	for i, item := range result.Items {
		reps := "10"
		if len(item.Sets) > 0 && item.Sets[0].RepsText != "" {
			reps = item.Sets[0].RepsText
		}
		fmt.Printf("%2d. %-32s %d x %s  (rest %ds)\n", i+1, item.Name, len(item.Sets), reps, item.RestSeconds)
	}
}
