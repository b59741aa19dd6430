package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/chmbuild/internal/build"
	"git.home.luguber.info/inful/chmbuild/internal/config"
	"git.home.luguber.info/inful/chmbuild/internal/outline"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Input  string `arg:"" optional:"" help:"Outline file to convert (default: first *.md in current directory)"`
		Output string `short:"o" help:"Build directory for the generated help project (default: from config)"`
	} `cmd:"" help:"Convert a glossary outline into an HTML site plus help-project files"`

	Parse struct {
		Input string `arg:"" optional:"" help:"Outline file to parse (default: first *.md in current directory)"`
	} `cmd:"" help:"Parse the outline and report the recovered structure without writing output"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	switch ctx.Command() {
	case "build", "build <input>":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if CLI.Build.Input != "" {
			cfg.Input = CLI.Build.Input
		}
		if err := runBuild(cfg, CLI.Build.Output); err != nil {
			if errors.Is(err, build.ErrNoInput) {
				fmt.Fprintln(os.Stderr, "No .md file found in current directory.")
				os.Exit(2)
			}
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}
	case "parse", "parse <input>":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if CLI.Parse.Input != "" {
			cfg.Input = CLI.Parse.Input
		}
		if err := runParse(cfg); err != nil {
			if errors.Is(err, build.ErrNoInput) {
				fmt.Fprintln(os.Stderr, "No .md file found in current directory.")
				os.Exit(2)
			}
			slog.Error("Parse failed", "error", err)
			os.Exit(1)
		}
	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
	}
}

func runBuild(cfg *config.Config, outputDir string) error {
	builder := build.NewBuilder(cfg, outputDir)
	report, err := builder.Run(context.Background())
	if err != nil {
		return err
	}

	buildDir, err := filepath.Abs(builder.BuildDir())
	if err != nil {
		buildDir = builder.BuildDir()
	}
	fmt.Printf("OK: categories=%d subcategories=%d groups=%d\n",
		report.Categories, report.Subcategories, report.Groups)
	fmt.Printf("Build dir: %s\n", buildDir)
	fmt.Printf("Project:   %s\n", filepath.Join(buildDir, "project.hhp"))
	return nil
}

// runParse resolves and parses the input, logging the recovered tree
// instead of rendering it.
func runParse(cfg *config.Config) error {
	path, err := build.ResolveInput(cfg.Input)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	res, err := outline.Parse(f)
	if err != nil {
		return fmt.Errorf("parse outline: %w", err)
	}

	stats := outline.CountNodes(res.Categories)
	slog.Info("Outline parsed",
		slog.String("input", path),
		slog.Int("categories", stats.Categories),
		slog.Int("subcategories", stats.Subcategories),
		slog.Int("groups", stats.Groups),
		slog.Int("entries", stats.Entries),
		slog.Int("orphan_groups", res.OrphanGroups))
	for _, cat := range res.Categories {
		slog.Info("Category", slog.String("title", cat.Title), slog.Int("groups", cat.GroupCount()))
		for _, sub := range cat.Subcategories {
			slog.Info("  Subcategory", slog.String("title", sub.Title), slog.Int("groups", len(sub.Groups)))
			for _, g := range sub.Groups {
				slog.Debug("    Group", slog.String("title", g.Title), slog.Int("entries", len(g.Entries)))
			}
		}
	}
	return nil
}
