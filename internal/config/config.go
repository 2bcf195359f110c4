// Package config loads the ema configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/emalang/ema/internal/log"
	"github.com/emalang/ema/lisp"
)

// FileName is the name of the configuration file in the user's home
// directory.
const FileName = ".ema.yaml"

// DefaultPrompt is the REPL prompt used when none is configured.
const DefaultPrompt = "ema> "

// Config holds settings read from the configuration file.  Command line flags
// override these values.
type Config struct {
	Prompt      string `yaml:"prompt"`
	ModuleExt   string `yaml:"module_ext"`
	MaxDepth    int    `yaml:"max_depth"`
	HistoryFile string `yaml:"history_file"`
	Color       bool   `yaml:"color"`
	Log         Log    `yaml:"log"`
}

// Log configures diagnostic logging.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Prompt:    DefaultPrompt,
		ModuleExt: lisp.DefaultModuleExt,
		MaxDepth:  lisp.DefaultMaxDepth,
		Color:     true,
		Log: Log{
			Level:  log.DefaultLevel.String(),
			Format: log.DefaultFormat.String(),
		},
	}
}

// DefaultPath returns the path of the configuration file in the user's home
// directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Load reads the configuration file at path.  Values missing from the file
// keep their defaults.  A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	err = Parse(b, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// document mirrors Config with optional fields so that settings absent from
// a file, or a file without any settings, leave the current values alone.
type document struct {
	Prompt      *string      `yaml:"prompt"`
	ModuleExt   *string      `yaml:"module_ext"`
	MaxDepth    *int         `yaml:"max_depth"`
	HistoryFile *string      `yaml:"history_file"`
	Color       *bool        `yaml:"color"`
	Log         *logDocument `yaml:"log"`
}

type logDocument struct {
	Level  *string `yaml:"level"`
	Format *string `yaml:"format"`
}

// Parse decodes YAML document b over the values in c and validates the
// result.  Keys missing from b keep their values in c.
func Parse(b []byte, c *Config) error {
	var doc document
	err := yaml.UnmarshalWithOptions(b, &doc, yaml.Strict())
	if err != nil {
		return err
	}
	doc.apply(c)
	return c.Validate()
}

func (doc *document) apply(c *Config) {
	setString(&c.Prompt, doc.Prompt)
	setString(&c.ModuleExt, doc.ModuleExt)
	setString(&c.HistoryFile, doc.HistoryFile)
	if doc.MaxDepth != nil {
		c.MaxDepth = *doc.MaxDepth
	}
	if doc.Color != nil {
		c.Color = *doc.Color
	}
	if doc.Log != nil {
		setString(&c.Log.Level, doc.Log.Level)
		setString(&c.Log.Format, doc.Log.Format)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Validate reports invalid settings.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative: %d", c.MaxDepth)
	}
	if c.ModuleExt == "" {
		return fmt.Errorf("module_ext must not be empty")
	}
	return nil
}

// Marshal returns c encoded as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.MarshalWithOptions(c, yaml.Indent(2))
}

// EvaluatorConfigs returns the lisp.Config values that apply c to an
// evaluator.
func (c *Config) EvaluatorConfigs() []lisp.Config {
	return []lisp.Config{
		lisp.WithModuleExt(c.ModuleExt),
		lisp.WithMaxDepth(c.MaxDepth),
	}
}

// LogOptions returns the logger options described by c.
func (c *Config) LogOptions() []log.Option {
	return []log.Option{
		log.WithLevel(log.ParseLevel(c.Log.Level)),
		log.WithFormat(log.ParseFormat(c.Log.Format)),
	}
}
