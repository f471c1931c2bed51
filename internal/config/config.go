package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"rotlab/internal/mathutil"
	"rotlab/internal/output"
	"rotlab/internal/scene"
)

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the scene choice and render settings for one run.
type Config struct {
	// Scene
	Scene       string  `json:"scene"`
	Axis        string  `json:"axis"`
	StepDegrees float32 `json:"step_degrees"`
	Frames      int     `json:"frames"`

	// Render settings
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Supersample int    `json:"supersample"`
	Format      string `json:"format"`
	Texture     string `json:"texture"`
	Light       bool   `json:"light"`

	// Output
	OutputDir string `json:"output_dir"`
	ThumbSize int    `json:"thumb_size"`
	Animate   bool   `json:"animate"`
	FrameMS   int    `json:"frame_ms"`
	Workers   int    `json:"workers"`

	Debug bool `json:"debug"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scene     string
	Axis      string
	Step      float64
	Frames    int
	Format    string
	OutputDir string
	Texture   string
	Workers   int
	Debug     bool
}

// Resolve applies non-zero flags over the file values, then fills in defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Axis != "" {
		c.Axis = flags.Axis
	}
	if flags.Step != 0 {
		c.StepDegrees = float32(flags.Step)
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Debug {
		c.Debug = true
	}

	// Defaults
	if c.Scene == "" {
		c.Scene = "triangle"
	}
	if c.StepDegrees == 0 {
		c.StepDegrees = scene.DefaultStep
	}
	if c.Frames <= 0 {
		c.Frames = 72
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Format == "" {
		c.Format = string(output.WebP)
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.FrameMS <= 0 {
		c.FrameMS = 40
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate checks a resolved config. The axis may be empty, meaning the
// scene's own axis.
func (c *Config) Validate() error {
	if _, err := scene.ByName(c.Scene); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Axis != "" {
		if _, err := mathutil.ParseAxis(c.Axis); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if _, err := output.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var problems []string
	if c.StepDegrees <= 0 || c.StepDegrees >= 360 {
		problems = append(problems, fmt.Sprintf("step_degrees %g outside (0, 360)", c.StepDegrees))
	}
	if c.Frames <= 0 {
		problems = append(problems, "frames must be positive")
	}
	if c.Width <= 0 || c.Height <= 0 {
		problems = append(problems, fmt.Sprintf("size %dx%d", c.Width, c.Height))
	}
	if c.Supersample < 1 || c.Supersample > 8 {
		problems = append(problems, fmt.Sprintf("supersample %d outside 1..8", c.Supersample))
	}
	if c.ThumbSize < 0 {
		problems = append(problems, "thumb_size must not be negative")
	}
	if c.Animate && !strings.EqualFold(c.Format, string(output.WebP)) {
		problems = append(problems, "animate requires format webp")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
