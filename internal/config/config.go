// Package config loads the builder configuration. Every setting has a
// default matching the historical converter, so running without a config
// file is fully supported.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Input is the outline file to convert. Empty means auto-discover the
	// first *.md file (lexical order) in the current directory.
	Input  string       `yaml:"input,omitempty"`
	Output OutputConfig `yaml:"output"`
	Help   HelpConfig   `yaml:"help"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// HelpConfig carries the [OPTIONS] values for the generated help project.
// Paths inside use backslash separators; HTML Help Workshop expects them.
type HelpConfig struct {
	Title          string `yaml:"title"`
	CompiledFile   string `yaml:"compiled_file"`
	DefaultTopic   string `yaml:"default_topic"`
	Language       string `yaml:"language"`
	FullTextSearch bool   `yaml:"full_text_search"`
}

// Default returns the configuration the historical converter hardcoded.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Directory: "chm_build"},
		Help: HelpConfig{
			Title:          "分类细目动词词表",
			CompiledFile:   "output.chm",
			DefaultTopic:   `site\index.html`,
			Language:       "0x804 Chinese (PRC)",
			FullTextSearch: true,
		},
	}
}

// Load reads configuration from the given path. A missing file is not an
// error; the defaults are returned instead. Environment variables referenced
// in the YAML ($VAR / ${VAR}) are expanded, with .env files honored first.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err == nil {
		slog.Debug("Loaded environment variables from .env")
	}

	cfg := Default()
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		slog.Debug("No configuration file, using defaults", slog.String("path", configPath))
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Re-apply defaults for required values a sparse file left empty.
	def := Default()
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = def.Output.Directory
	}
	if cfg.Help.Title == "" {
		cfg.Help.Title = def.Help.Title
	}
	if cfg.Help.CompiledFile == "" {
		cfg.Help.CompiledFile = def.Help.CompiledFile
	}
	if cfg.Help.DefaultTopic == "" {
		cfg.Help.DefaultTopic = def.Help.DefaultTopic
	}
	if cfg.Help.Language == "" {
		cfg.Help.Language = def.Help.Language
	}
	return cfg, nil
}

const exampleConfig = `# chmbuild configuration
# input: glossary.md          # omit to auto-discover the first *.md in cwd
output:
  directory: chm_build
help:
  title: 分类细目动词词表
  compiled_file: output.chm
  default_topic: site\index.html
  language: "0x804 Chinese (PRC)"
  full_text_search: true
`

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	slog.Info("Configuration file created", slog.String("path", configPath))
	return nil
}
