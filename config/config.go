// Package config provides configuration loading and access for the falling
// sand simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hevezolly/fallingsand/element"
	"github.com/hevezolly/fallingsand/field"
	"github.com/hevezolly/fallingsand/geom"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Elements  ElementsConfig  `yaml:"elements"`
}

// WorldConfig holds the field's chunk-grid extent and worker concurrency.
type WorldConfig struct {
	ChunkBoundsWidth  int `yaml:"chunk_bounds_width"`
	ChunkBoundsHeight int `yaml:"chunk_bounds_height"`
	Threads           int `yaml:"threads"`
}

// TelemetryConfig holds telemetry output settings.
type TelemetryConfig struct {
	// OutputPath is the CSV file tick stats are appended to. Empty disables
	// telemetry entirely.
	OutputPath string `yaml:"output_path"`
}

// ElementsConfig holds per-kind physics overrides.
type ElementsConfig struct {
	Sand    MovableSolidConfig `yaml:"sand"`
	WetSand MovableSolidConfig `yaml:"wet_sand"`
	Water   LiquidConfig       `yaml:"water"`
	Oil     LiquidConfig       `yaml:"oil"`
	Acid    LiquidConfig       `yaml:"acid"`
	Block   BlockConfig        `yaml:"block"`
}

// MovableSolidConfig mirrors element.MovableSolidParams for YAML overrides.
type MovableSolidConfig struct {
	Density            float64 `yaml:"density"`
	FlowCoefficient    float64 `yaml:"flow_coefficient"`
	MoveTime           int     `yaml:"move_time"`
	UnstuckSpeed       int     `yaml:"unstuck_speed"`
	DisperseDistance   int     `yaml:"disperse_distance"`
	SlipThroughProb    float64 `yaml:"slip_through_prob"`
	KeepAliveExtraTime int     `yaml:"keep_alive_extra_time"`
}

// ToParams converts the config entry into runtime physics parameters.
func (m MovableSolidConfig) ToParams() element.MovableSolidParams {
	return element.MovableSolidParams{
		IsFalling:          true,
		Density:            m.Density,
		FlowCoefficient:    m.FlowCoefficient,
		MoveTime:           m.MoveTime,
		UnstuckSpeed:       m.UnstuckSpeed,
		DisperseDistance:   m.DisperseDistance,
		SlipThroughProb:    m.SlipThroughProb,
		KeepAliveExtraTime: m.KeepAliveExtraTime,
		HasKeepAliveExtra:  m.KeepAliveExtraTime > 0,
	}
}

// LiquidConfig mirrors element.LiquidParams for YAML overrides. Strength is
// only meaningful for Acid.
type LiquidConfig struct {
	Density          float64 `yaml:"density"`
	MoveTime         int     `yaml:"move_time"`
	DisperseDistance int     `yaml:"disperse_distance"`
	SlipThroughProb  float64 `yaml:"slip_through_prob"`
	DefaultStrength  int     `yaml:"default_strength"`
}

// ToParams converts the config entry into runtime physics parameters,
// picking the initial lateral side via rng.
func (l LiquidConfig) ToParams(rng element.RNG) element.LiquidParams {
	side := -1
	if rng.Bool() {
		side = 1
	}
	return element.LiquidParams{
		Side:             side,
		Density:          l.Density,
		MoveTime:         l.MoveTime,
		DisperseDistance: l.DisperseDistance,
		SlipThroughProb:  l.SlipThroughProb,
	}
}

// BlockConfig mirrors a StaticSolid's single physics parameter.
type BlockConfig struct {
	Density float64 `yaml:"density"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// NewField constructs a field.Field sized by cfg.World, ready to receive
// elements built from cfg.Elements.
func NewField(cfg *Config) *field.Field {
	bounds := geom.Rect{
		Left:   0,
		Top:    0,
		Right:  cfg.World.ChunkBoundsWidth,
		Bottom: cfg.World.ChunkBoundsHeight,
	}
	return field.New(bounds, cfg.World.Threads)
}
