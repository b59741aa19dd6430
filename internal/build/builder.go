// Package build wires the conversion pipeline: resolve the input outline,
// parse it, render the HTML site, then emit the help-project documents.
// Execution is single-threaded and batch; the first fatal error aborts the
// whole run.
package build

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/chmbuild/internal/config"
	"git.home.luguber.info/inful/chmbuild/internal/helpproj"
	"git.home.luguber.info/inful/chmbuild/internal/outline"
	"git.home.luguber.info/inful/chmbuild/internal/site"
)

// BuildState carries mutable state across stages.
type BuildState struct {
	Config   *config.Config
	BuildDir string
	Input    string // resolved outline path

	Tree  []*outline.Category // owned by the parser stage, handed to render
	Files []string            // backslash-relative paths written by render

	Report *BuildReport
}

// Builder executes the full conversion for one input.
type Builder struct {
	cfg      *config.Config
	buildDir string
}

// NewBuilder creates a builder writing into buildDir. An empty buildDir
// falls back to the configured output directory.
func NewBuilder(cfg *config.Config, buildDir string) *Builder {
	if buildDir == "" {
		buildDir = cfg.Output.Directory
	}
	return &Builder{cfg: cfg, buildDir: filepath.Clean(buildDir)}
}

// BuildDir returns the resolved build directory.
func (b *Builder) BuildDir() string { return b.buildDir }

// Run executes the pipeline and returns the final report. The report is
// returned even on failure so callers can inspect partial progress.
func (b *Builder) Run(ctx context.Context) (*BuildReport, error) {
	bs := &BuildState{
		Config:   b.cfg,
		BuildDir: b.buildDir,
		Report:   newBuildReport(),
	}

	stages := []StageDef{
		{StageResolveInput, stageResolveInput},
		{StageParseOutline, stageParseOutline},
		{StageRenderSite, stageRenderSite},
		{StageWriteContents, stageWriteContents},
		{StageWriteProject, stageWriteProject},
	}

	err := runStages(ctx, bs, stages)
	var se *StageError
	if errors.As(err, &se) && se.Kind == StageErrorCanceled {
		bs.Report.Outcome = OutcomeCanceled
	}
	bs.Report.finish()
	if err == nil {
		if perr := bs.Report.Persist(b.buildDir); perr != nil {
			slog.Warn("Failed to persist build report", "error", perr)
		}
	}
	return bs.Report, err
}

func stageResolveInput(_ context.Context, bs *BuildState) error {
	path, err := ResolveInput(bs.Config.Input)
	if err != nil {
		return err
	}
	bs.Input = path
	bs.Report.Input = path
	slog.Info("Input resolved", slog.String("path", path))
	return nil
}

func stageParseOutline(_ context.Context, bs *BuildState) error {
	f, err := os.Open(bs.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	res, err := outline.Parse(f)
	if err != nil {
		return fmt.Errorf("parse outline: %w", err)
	}
	bs.Tree = res.Categories

	stats := outline.CountNodes(res.Categories)
	bs.Report.Categories = stats.Categories
	bs.Report.Subcategories = stats.Subcategories
	bs.Report.Groups = stats.Groups
	bs.Report.Entries = stats.Entries
	bs.Report.OrphanGroups = res.OrphanGroups
	bs.Report.ImplicitCategories = res.ImplicitCategories
	slog.Info("Outline parsed",
		slog.Int("categories", stats.Categories),
		slog.Int("subcategories", stats.Subcategories),
		slog.Int("groups", stats.Groups),
		slog.Int("entries", stats.Entries))
	return nil
}

func stageRenderSite(_ context.Context, bs *BuildState) error {
	renderer := site.NewRenderer(bs.BuildDir, bs.Config.Help.Title)
	files, err := renderer.Render(bs.Tree)
	if err != nil {
		return err
	}
	bs.Files = files
	bs.Report.FilesWritten = len(files)
	return nil
}

func stageWriteContents(_ context.Context, bs *BuildState) error {
	return helpproj.WriteContents(bs.Tree, filepath.Join(bs.BuildDir, "contents.hhc"))
}

func stageWriteProject(_ context.Context, bs *BuildState) error {
	return helpproj.WriteProject(bs.Files, bs.Config.Help, filepath.Join(bs.BuildDir, "project.hhp"))
}
