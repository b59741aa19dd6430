package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/chmbuild/internal/build"
	"git.home.luguber.info/inful/chmbuild/internal/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

const sampleOutline = `**一、人体类**
**1. 手臂动作**
**挥手**
抬起手臂 3
放下手臂
`

func TestRunBuildEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "glossary.md")
	require.NoError(t, os.WriteFile(input, []byte(sampleOutline), 0o644))

	cfg := config.Default()
	cfg.Input = input
	out := filepath.Join(dir, "out")

	require.NoError(t, runBuild(cfg, out))

	for _, name := range []string{
		filepath.Join("site", "index.html"),
		"contents.hhc",
		"project.hhp",
	} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, "missing %s", name)
	}
}

func TestRunParseDoesNotWriteOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "glossary.md")
	require.NoError(t, os.WriteFile(input, []byte(sampleOutline), 0o644))
	chdir(t, dir)

	cfg := config.Default()
	cfg.Input = input
	require.NoError(t, runParse(cfg))

	_, err := os.Stat(filepath.Join(dir, "chm_build"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunBuildNoInput(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := config.Default()
	err := runBuild(cfg, "")
	assert.ErrorIs(t, err, build.ErrNoInput)
}
