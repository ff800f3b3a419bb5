// Package config holds runtime settings: defaults, environment overrides and validation.
// Command-line flags are applied on top by main.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"lightemall/pkg/game/generator"
)

// ErrInvalidConfig is wrapped by every validation and parse error
var ErrInvalidConfig = errors.New("invalid config")

// Limits on board dimensions
const (
	MinSize = 1
	MaxSize = 30
)

// Renderer names
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Environment variable names
const (
	EnvWidth     = "LIGHTEMALL_WIDTH"
	EnvHeight    = "LIGHTEMALL_HEIGHT"
	EnvSeed      = "LIGHTEMALL_SEED"
	EnvGenerator = "LIGHTEMALL_GENERATOR"
	EnvRenderer  = "LIGHTEMALL_RENDERER"
	EnvBindings  = "LIGHTEMALL_BINDINGS"
)

// Config is the full runtime configuration
type Config struct {
	Width     int
	Height    int
	Seed      int64 // 0 picks a time-based seed
	Generator string
	Renderer  string
	Level     int
	TileSize  int // pixel size of one tile in the windowed front-end
	Debug     bool

	// Bindings holds key overrides such as "hint=h,reset=x"
	Bindings string
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		Width:     5,
		Height:    5,
		Generator: generator.DefaultGenerator.Name(),
		Renderer:  RendererTUI,
		Level:     1,
		TileSize:  50,
	}
}

// ApplyEnv overrides fields from LIGHTEMALL_* environment variables.
// Unset or empty variables leave the field unchanged.
func (c *Config) ApplyEnv() error {
	return c.applyLookup(os.LookupEnv)
}

func (c *Config) applyLookup(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvWidth, v, err)
		}
		c.Width = n
	}
	if v, ok := get(EnvHeight); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvHeight, v, err)
		}
		c.Height = n
	}
	if v, ok := get(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
		c.Seed = n
	}
	if v, ok := get(EnvGenerator); ok {
		c.Generator = v
	}
	if v, ok := get(EnvRenderer); ok {
		c.Renderer = strings.ToLower(v)
	}
	if v, ok := get(EnvBindings); ok {
		c.Bindings = v
	}
	return nil
}

// FromEnv returns the defaults with environment overrides applied
func FromEnv() (Config, error) {
	c := Default()
	err := c.ApplyEnv()
	return c, err
}

// Validate checks the configuration and returns an error wrapping ErrInvalidConfig
func (c Config) Validate() error {
	if c.Width < MinSize || c.Width > MaxSize {
		return fmt.Errorf("%w: width must be between %d and %d, got %d", ErrInvalidConfig, MinSize, MaxSize, c.Width)
	}
	if c.Height < MinSize || c.Height > MaxSize {
		return fmt.Errorf("%w: height must be between %d and %d, got %d", ErrInvalidConfig, MinSize, MaxSize, c.Height)
	}
	if _, err := generator.ByName(c.Generator); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("%w: renderer must be %q or %q, got %q", ErrInvalidConfig, RendererTUI, RendererEbiten, c.Renderer)
	}
	if c.Level < 1 {
		return fmt.Errorf("%w: level must be at least 1, got %d", ErrInvalidConfig, c.Level)
	}
	if c.TileSize < 8 {
		return fmt.Errorf("%w: tile size must be at least 8, got %d", ErrInvalidConfig, c.TileSize)
	}
	return nil
}

// BoardGenerator resolves the configured generator. Call Validate first.
func (c Config) BoardGenerator() generator.BoardGenerator {
	g, err := generator.ByName(c.Generator)
	if err != nil {
		return generator.DefaultGenerator
	}
	return g
}
