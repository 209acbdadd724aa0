// Package config loads .planview/config.yaml. Every project that uses
// planview gets a .planview/ folder created by `planview init`.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pablasso/planview/internal/plan"
	"github.com/pablasso/planview/internal/render"
)

// FileName is the config file inside the .planview directory.
const FileName = "config.yaml"

// DefaultYAML is written by `planview init`.
const DefaultYAML = `# planview project configuration
version: 1

view:
  # structured shows phase cards and the risk table; raw shows the markdown.
  mode: structured
  # glamour style for the raw view: auto, dark, light or notty.
  style: auto
  # word wrap width. 0 uses the terminal width in the viewer and 100 elsewhere.
  width: 0
  # reload the viewer when the plan file changes on disk.
  watch: false

show:
  # hide risks below this severity: low, medium or high. Empty shows all.
  min_severity: ""
`

// ViewConfig holds rendering preferences.
type ViewConfig struct {
	Mode  string `yaml:"mode"`
	Style string `yaml:"style"`
	Width int    `yaml:"width"`
	Watch bool   `yaml:"watch"`
}

// ShowConfig holds filters for `planview show`.
type ShowConfig struct {
	MinSeverity string `yaml:"min_severity"`
}

// Config models .planview/config.yaml.
type Config struct {
	Version int        `yaml:"version"`
	View    ViewConfig `yaml:"view"`
	Show    ShowConfig `yaml:"show"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Version: 1,
		View: ViewConfig{
			Mode:  render.ModeStructured.String(),
			Style: "auto",
		},
	}
}

// Path returns the config file location for a project directory.
func Path(projectDir string) string {
	return filepath.Join(projectDir, plan.DirName, FileName)
}

// Load reads the project config, falling back to defaults when the file
// does not exist.
func Load(projectDir string) (Config, error) {
	cfg := Default()

	path := Path(projectDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// WriteDefault writes DefaultYAML unless a config file already exists.
func WriteDefault(projectDir string) error {
	path := Path(projectDir)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: ensure dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(DefaultYAML), 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Mode returns the configured view mode.
func (c Config) Mode() render.Mode {
	m, _ := render.ParseMode(c.View.Mode)
	return m
}

// MinSeverity returns the configured risk filter.
func (c Config) MinSeverity() plan.Level {
	l, _ := plan.ParseLevel(c.Show.MinSeverity)
	return l
}

func (c *Config) normalize() {
	if c.Version == 0 {
		c.Version = 1
	}
	c.View.Mode = strings.ToLower(strings.TrimSpace(c.View.Mode))
	if c.View.Mode == "" {
		c.View.Mode = render.ModeStructured.String()
	}
	c.View.Style = strings.ToLower(strings.TrimSpace(c.View.Style))
	if c.View.Style == "" {
		c.View.Style = "auto"
	}
}

func (c Config) validate() error {
	if c.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if _, err := render.ParseMode(c.View.Mode); err != nil {
		return fmt.Errorf("view.mode: %w", err)
	}
	if !render.ValidStyle(c.View.Style) {
		return fmt.Errorf("view.style: unknown style %q", c.View.Style)
	}
	if c.View.Width < 0 {
		return fmt.Errorf("view.width must be >= 0")
	}
	if _, err := plan.ParseLevel(c.Show.MinSeverity); err != nil {
		return fmt.Errorf("show.min_severity: %w", err)
	}
	return nil
}
