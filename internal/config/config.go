package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/rpsim/internal/core/observability/log"
)

var ErrInvalid = errors.New("invalid config")

// Config holds everything needed to set up and drive a match.
type Config struct {
	Field         FieldConfig  `json:"field" yaml:"field"`
	Agents        AgentsConfig `json:"agents" yaml:"agents"`
	CaptureRadius float64      `json:"capture_radius" yaml:"capture_radius"`

	// Driver settings
	TickRate    int   `json:"tick_rate" yaml:"tick_rate"`
	MaxFrames   int64 `json:"max_frames,omitempty" yaml:"max_frames,omitempty"`
	StopOnWin   bool  `json:"stop_on_win" yaml:"stop_on_win"`
	ReportEvery int64 `json:"report_every" yaml:"report_every"`

	// Seed fixes initial placement. Zero picks a random seed.
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	Log   LogConfig   `json:"log" yaml:"log"`
	Batch BatchConfig `json:"batch" yaml:"batch"`
}

type FieldConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

type AgentsConfig struct {
	Count int `json:"count" yaml:"count"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// BatchConfig controls headless multi-match runs.
type BatchConfig struct {
	Matches   int   `json:"matches" yaml:"matches"`
	Workers   int   `json:"workers" yaml:"workers"`
	MaxFrames int64 `json:"max_frames" yaml:"max_frames"`
}

// Default returns the stock configuration: 24 agents of size 25 at 60 ticks
// per second.
func Default() *Config {
	return &Config{
		Field:         FieldConfig{Width: 800, Height: 600},
		Agents:        AgentsConfig{Count: 24},
		CaptureRadius: 25,
		TickRate:      60,
		StopOnWin:     true,
		ReportEvery:   60,
		Log:           LogConfig{Level: "info"},
		Batch:         BatchConfig{Matches: 20, Workers: 4, MaxFrames: 50_000},
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode reads YAML from r on top of the defaults and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must have positive size, got %gx%g", c.Field.Width, c.Field.Height))
	}
	if c.Agents.Count < 3 {
		errs = append(errs, fmt.Errorf("agents.count must be at least 3, got %d", c.Agents.Count))
	}
	if c.CaptureRadius <= 0 {
		errs = append(errs, fmt.Errorf("capture_radius must be positive, got %g", c.CaptureRadius))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.MaxFrames < 0 || c.ReportEvery < 0 {
		errs = append(errs, errors.New("max_frames and report_every cannot be negative"))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Batch.Matches < 0 || c.Batch.Workers < 0 || c.Batch.MaxFrames < 0 {
		errs = append(errs, errors.New("batch settings cannot be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// TickInterval is the wall-clock time between ticks.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	l, _ := log.ParseLevel(c.Log.Level)
	return l
}
