package game

import (
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/kinderdrome/components"
	"github.com/pthm-cable/kinderdrome/config"
	"github.com/pthm-cable/kinderdrome/systems"
	"github.com/pthm-cable/kinderdrome/telemetry"
	"github.com/pthm-cable/kinderdrome/ui"
)

// Mode identifies the arena-wide behavioral phase.
type Mode uint8

const (
	// ModeSurplus is the initial phase: free blocks remain on the field.
	ModeSurplus Mode = iota
	// ModeSaturation begins the tick the last free block is claimed.
	ModeSaturation
	// ModeNapTime is toggled externally; agents drop blocks and seek beds.
	ModeNapTime
)

func (m Mode) String() string {
	switch m {
	case ModeSurplus:
		return "block-surplus"
	case ModeSaturation:
		return "block-saturation"
	case ModeNapTime:
		return "nap-time"
	}
	return "unknown"
}

// Options configures game creation.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	OutputDir      string
	StepsPerUpdate int
}

// Game holds the complete simulation state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	// Entity mappers - the six components every kinder carries
	kinderMapper *ecs.Map6[
		components.Position,
		components.Velocity,
		components.Trajectory,
		components.Kinder,
		components.Contest,
		components.Inventory,
	]
	kinderFilter *ecs.Filter6[
		components.Position,
		components.Velocity,
		components.Trajectory,
		components.Kinder,
		components.Contest,
		components.Inventory,
	]

	blockMapper *ecs.Map2[components.Position, components.Block]
	blockFilter *ecs.Filter2[components.Position, components.Block]

	// Individual component mappers for lookups
	posMap     *ecs.Map1[components.Position]
	velMap     *ecs.Map1[components.Velocity]
	trajMap    *ecs.Map1[components.Trajectory]
	kinderMap  *ecs.Map1[components.Kinder]
	contestMap *ecs.Map1[components.Contest]
	invMap     *ecs.Map1[components.Inventory]
	blockMap   *ecs.Map1[components.Block]

	// Noise streams (per agent by ID)
	noise map[uint32]*systems.Noise

	// Spatial index, rebuilt every tick
	grid *systems.Grid

	// Bed pool, non-empty only during nap time
	beds []Bed

	// State
	mode           Mode
	remaining      int // free blocks still on the field
	totalBlocks    int
	tick           int32
	paused         bool
	stepsPerUpdate int
	nextID         uint32
	nextBlockID    uint32
	agentCount     int

	// Telemetry
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats  bool

	// Rendering
	hud         *ui.HUD
	inspector   *ui.Inspector
	selected    ecs.Entity
	hasSelected bool
	headless    bool

	// Cached config values for hot paths
	arenaW, arenaH   float32
	margin           float32
	blockHalf        float32
	contestTicks     int32
	snatchTick       int32
	recenterInterval int
	phaseRate        float64
	maxPhaseOffset   int
	bounceRunTicks   int32

	// Scratch buffers reused across ticks
	fieldBlocks   []ecs.Entity
	cellEligible  []ecs.Entity
	cellCandidate []ecs.Entity
}

// NewGameWithOptions creates a new game instance.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		noise: make(map[uint32]*systems.Noise),
		kinderMapper: ecs.NewMap6[
			components.Position,
			components.Velocity,
			components.Trajectory,
			components.Kinder,
			components.Contest,
			components.Inventory,
		](world),
		kinderFilter: ecs.NewFilter6[
			components.Position,
			components.Velocity,
			components.Trajectory,
			components.Kinder,
			components.Contest,
			components.Inventory,
		](world),
		blockMapper: ecs.NewMap2[components.Position, components.Block](world),
		blockFilter: ecs.NewFilter2[components.Position, components.Block](world),
		posMap:      ecs.NewMap1[components.Position](world),
		velMap:      ecs.NewMap1[components.Velocity](world),
		trajMap:     ecs.NewMap1[components.Trajectory](world),
		kinderMap:   ecs.NewMap1[components.Kinder](world),
		contestMap:  ecs.NewMap1[components.Contest](world),
		invMap:      ecs.NewMap1[components.Inventory](world),
		blockMap:    ecs.NewMap1[components.Block](world),

		mode:           ModeSurplus,
		stepsPerUpdate: max(opts.StepsPerUpdate, 1),
		logStats:       opts.LogStats,
		headless:       opts.Headless,

		arenaW:           cfg.Derived.ArenaW32,
		arenaH:           cfg.Derived.ArenaH32,
		margin:           cfg.Derived.Margin32,
		blockHalf:        float32(cfg.Blocks.HalfExtent),
		contestTicks:     int32(cfg.Contest.DurationTicks),
		snatchTick:       int32(cfg.Contest.SnatchTick),
		recenterInterval: cfg.Steering.RecenterInterval,
		phaseRate:        cfg.Steering.PhaseRate,
		maxPhaseOffset:   cfg.Steering.MaxPhaseOffset,
		bounceRunTicks:   int32(cfg.Steering.BounceRunTicks),
	}

	g.grid = systems.NewGrid(cfg.Grid.Rows, cfg.Grid.Cols, cfg.Derived.CellW, cfg.Derived.CellH)
	g.collector = telemetry.NewCollector(cfg.Telemetry.StatsWindowTicks)
	g.perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfWindowTicks)

	if opts.OutputDir != "" {
		output, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("creating output manager: %w", err)
		}
		if err := output.WriteConfig(cfg); err != nil {
			return nil, fmt.Errorf("writing config snapshot: %w", err)
		}
		g.output = output
	}

	if !opts.Headless {
		g.hud = ui.NewHUD()
		g.inspector = ui.NewInspector()
	}

	g.spawnInitialPopulation()

	return g, nil
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Mode returns the current arena mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// RemainingBlocks returns the number of free blocks still on the field.
func (g *Game) RemainingBlocks() int {
	return g.remaining
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Pause halts the simulation; Update calls become no-ops.
func (g *Game) Pause() {
	g.paused = true
}

// Resume restarts a paused simulation.
func (g *Game) Resume() {
	g.paused = false
}

// TogglePause flips the paused state.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// StepsPerUpdate returns the ticks run per update call.
func (g *Game) StepsPerUpdate() int {
	return g.stepsPerUpdate
}

// Unload flushes and closes any open output files.
func (g *Game) Unload() {
	if g.output != nil {
		g.output.Close()
	}
}
