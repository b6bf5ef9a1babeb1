package telemetry

import (
	"log/slog"
	"sort"
	"time"
)

// Phase names for the simulation step.
const (
	PhaseSpatialGrid = "spatial_grid"
	PhaseAgents      = "agents"
	PhaseContests    = "contests"
	PhaseTelemetry   = "telemetry"
)

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector tracks per-phase timings over a rolling window of ticks.
type PerfCollector struct {
	windowSize  int
	samples     []PerfSample
	writeIndex  int
	sampleCount int

	currentPhases map[string]time.Duration
	tickStart     time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a performance collector averaging over windowSize
// ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartTick begins timing a new simulation tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase marks the beginning of a named phase, closing the previous one.
func (p *PerfCollector) StartPhase(name string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = name
}

// EndTick closes the current tick and stores its sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
		p.lastPhase = ""
	}

	p.samples[p.writeIndex] = PerfSample{
		TickDuration: now.Sub(p.tickStart),
		Phases:       p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// PerfStats holds averaged timings over the window.
type PerfStats struct {
	TickAvg time.Duration
	Phases  map[string]time.Duration
}

// Stats averages the collected samples.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{Phases: make(map[string]time.Duration)}
	if p.sampleCount == 0 {
		return stats
	}

	var tickTotal time.Duration
	phaseTotals := make(map[string]time.Duration)
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		tickTotal += s.TickDuration
		for name, d := range s.Phases {
			phaseTotals[name] += d
		}
	}

	n := time.Duration(p.sampleCount)
	stats.TickAvg = tickTotal / n
	for name, d := range phaseTotals {
		stats.Phases[name] = d / n
	}
	return stats
}

// SortedNames returns the phase names of a PerfStats in stable order.
func (s PerfStats) SortedNames() []string {
	names := make([]string, 0, len(s.Phases))
	for name := range s.Phases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LogStats writes the averaged timings via slog.
func (s PerfStats) LogStats() {
	args := []any{"tick_avg", s.TickAvg.String()}
	for _, name := range s.SortedNames() {
		args = append(args, name, s.Phases[name].String())
	}
	slog.Info("perf stats", args...)
}

// PerfStatsCSV is the flat CSV record for a perf window.
type PerfStatsCSV struct {
	WindowEnd   int32   `csv:"window_end"`
	TickAvgUs   float64 `csv:"tick_avg_us"`
	GridUs      float64 `csv:"spatial_grid_us"`
	AgentsUs    float64 `csv:"agents_us"`
	ContestsUs  float64 `csv:"contests_us"`
	TelemetryUs float64 `csv:"telemetry_us"`
}

// ToCSV converts averaged timings to a CSV record.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	us := func(name string) float64 {
		return float64(s.Phases[name]) / float64(time.Microsecond)
	}
	return PerfStatsCSV{
		WindowEnd:   windowEnd,
		TickAvgUs:   float64(s.TickAvg) / float64(time.Microsecond),
		GridUs:      us(PhaseSpatialGrid),
		AgentsUs:    us(PhaseAgents),
		ContestsUs:  us(PhaseContests),
		TelemetryUs: us(PhaseTelemetry),
	}
}
