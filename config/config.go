// Package config loads the application settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"shading-lab/materials"
)

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type Render struct {
	Scene       int                 `toml:"scene"`
	Shading     materials.Algorithm `toml:"shading"`
	HeightScale float32             `toml:"height_scale"`
}

type Config struct {
	// BaseURL is the directory heightmaps are resolved against.
	BaseURL  string `toml:"base_url"`
	LogLevel string `toml:"log_level"`
	Window   Window `toml:"window"`
	Render   Render `toml:"render"`
}

// SceneCount is the number of selectable scenes.
const SceneCount = 3

func Default() Config {
	return Config{
		BaseURL:  "assets/",
		LogLevel: "info",
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Shading Lab",
			VSync:  true,
		},
		Render: Render{
			Scene:       0,
			Shading:     materials.Gouraud,
			HeightScale: 1,
		},
	}
}

// Load reads path over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("parse config: %s", strict.String())
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Render.Scene < 0 || c.Render.Scene >= SceneCount {
		return fmt.Errorf("render.scene %d out of range [0,%d)", c.Render.Scene, SceneCount)
	}
	if !c.Render.Shading.Valid() {
		return fmt.Errorf("render.shading: %w", materials.ErrUnknownAlgorithm)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
