// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Arena      ArenaConfig      `yaml:"arena"`
	Grid       GridConfig       `yaml:"grid"`
	Population PopulationConfig `yaml:"population"`
	Blocks     BlocksConfig     `yaml:"blocks"`
	Contest    ContestConfig    `yaml:"contest"`
	Steering   SteeringConfig   `yaml:"steering"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. The arena fills the whole window.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ArenaConfig holds arena geometry.
type ArenaConfig struct {
	Margin float64 `yaml:"margin"` // inset from the window edge agents bounce off
}

// GridConfig holds spatial grid dimensions.
// Cell side lengths are arena width/cols and height/rows; both divisions
// must be exact (see Validate).
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// PopulationConfig holds agent creation parameters.
type PopulationConfig struct {
	Kinder     int     `yaml:"kinder"`      // number of agents spawned at setup
	Speed      float64 `yaml:"speed"`       // pixels moved per tick
	HalfExtent float64 `yaml:"half_extent"` // half side of the agent bounding box
}

// BlocksConfig holds collectible block parameters.
type BlocksConfig struct {
	Count      int     `yaml:"count"`
	HalfExtent float64 `yaml:"half_extent"`
}

// ContestConfig holds stand-off timing parameters.
type ContestConfig struct {
	DurationTicks int `yaml:"duration_ticks"` // timer value on contest entry
	SnatchTick    int `yaml:"snatch_tick"`    // timer value at which the snatch executes
}

// SteeringConfig holds noise-steering parameters.
type SteeringConfig struct {
	RecenterInterval int     `yaml:"recenter_interval"` // 1/N chance per tick to recenter the baseline
	PhaseRate        float64 `yaml:"phase_rate"`        // phase advances by speed/phase_rate per tick
	MaxPhaseOffset   int     `yaml:"max_phase_offset"`  // reseeded phase drawn from [0, this)
	BounceRunTicks   int     `yaml:"bounce_run_ticks"`  // ticks of suppressed steering after a bounce
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindowTicks int `yaml:"stats_window_ticks"`
	PerfWindowTicks  int `yaml:"perf_window_ticks"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ArenaW32       float32 // arena width as float32
	ArenaH32       float32 // arena height as float32
	Margin32       float32
	CellW          float32 // grid cell width (exact integer division)
	CellH          float32 // grid cell height
	PerimeterSlots int     // perimeter grid cells available as bed slots
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
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
// If path is empty, only embedded defaults are used. The returned config has
// been validated; a simulation built from it cannot hit a setup error later.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
// These are pre-run fatal errors, surfaced before the loop starts.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("config: grid must have positive rows and cols, got %dx%d", c.Grid.Rows, c.Grid.Cols)
	}
	if c.Screen.Width%c.Grid.Cols != 0 {
		return fmt.Errorf("config: arena width %d not divisible by grid cols %d", c.Screen.Width, c.Grid.Cols)
	}
	if c.Screen.Height%c.Grid.Rows != 0 {
		return fmt.Errorf("config: arena height %d not divisible by grid rows %d", c.Screen.Height, c.Grid.Rows)
	}
	if c.Population.Kinder < 1 {
		return fmt.Errorf("config: population.kinder must be at least 1, got %d", c.Population.Kinder)
	}
	if c.Population.Speed <= 0 {
		return fmt.Errorf("config: population.speed must be positive, got %v", c.Population.Speed)
	}
	if c.Blocks.Count < 0 {
		return fmt.Errorf("config: blocks.count must not be negative, got %d", c.Blocks.Count)
	}
	if c.Contest.SnatchTick <= 0 || c.Contest.SnatchTick >= c.Contest.DurationTicks {
		return fmt.Errorf("config: contest.snatch_tick %d must fall inside (0, duration_ticks %d)",
			c.Contest.SnatchTick, c.Contest.DurationTicks)
	}
	if c.Steering.RecenterInterval < 1 || c.Steering.PhaseRate <= 0 || c.Steering.MaxPhaseOffset < 1 {
		return fmt.Errorf("config: invalid steering parameters")
	}
	if perim := perimeterSlots(c.Grid.Rows, c.Grid.Cols); perim < c.Population.Kinder {
		return fmt.Errorf("config: nap-time bed allocation impossible: %d perimeter slots for %d agents",
			perim, c.Population.Kinder)
	}
	if 2*c.Population.HalfExtent >= float64(c.Screen.Width) || 2*c.Population.HalfExtent >= float64(c.Screen.Height) {
		return fmt.Errorf("config: agent bounding box does not fit the arena")
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ArenaW32 = float32(c.Screen.Width)
	c.Derived.ArenaH32 = float32(c.Screen.Height)
	c.Derived.Margin32 = float32(c.Arena.Margin)
	// Integer division: Validate guarantees it is exact.
	c.Derived.CellW = float32(c.Screen.Width / c.Grid.Cols)
	c.Derived.CellH = float32(c.Screen.Height / c.Grid.Rows)
	c.Derived.PerimeterSlots = perimeterSlots(c.Grid.Rows, c.Grid.Cols)
}

// perimeterSlots counts the cells on the outer ring of the grid.
func perimeterSlots(rows, cols int) int {
	if rows == 1 {
		return cols
	}
	if cols == 1 {
		return rows
	}
	return 2*cols + 2*(rows-2)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
