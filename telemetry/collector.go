// Package telemetry provides windowed statistics collection and CSV output
// for the simulation.
package telemetry

// Collector accumulates economy events within tick windows and produces
// WindowStats. All counters reset when a window is flushed.
type Collector struct {
	windowTicks     int32
	windowStartTick int32

	// Event counters for the current window
	pickups           int
	contestsStarted   int
	snatches          int
	blocksTransferred int
	blocksDropped     int
	bedsClaimed       int
	bounces           int
}

// NewCollector creates a stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int32(windowTicks)}
}

// RecordPickup records a block claimed from the field.
func (c *Collector) RecordPickup() {
	c.pickups++
}

// RecordContestStarted records a contest initiated by the grid scan.
func (c *Collector) RecordContestStarted() {
	c.contestsStarted++
}

// RecordSnatch records an executed snatch and the blocks actually moved.
func (c *Collector) RecordSnatch(blocks int) {
	c.snatches++
	c.blocksTransferred += blocks
}

// RecordBlocksDropped records blocks returned to the field on nap-time entry.
func (c *Collector) RecordBlocksDropped(n int) {
	c.blocksDropped += n
}

// RecordBedClaimed records an agent falling asleep on a bed.
func (c *Collector) RecordBedClaimed() {
	c.bedsClaimed++
}

// RecordBounce records a boundary bounce.
func (c *Collector) RecordBounce() {
	c.bounces++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// The caller supplies current-state samples: global mode name, remaining
// on-field blocks, asleep count, and per-agent scores.
func (c *Collector) Flush(currentTick int32, mode string, remaining, asleep int, scores []float64) WindowStats {
	mean, std, p10, p50, p90, max := ScoreStats(scores)

	stats := WindowStats{
		WindowStartTick:   c.windowStartTick,
		WindowEndTick:     currentTick,
		Mode:              mode,
		Agents:            len(scores),
		RemainingBlocks:   remaining,
		Asleep:            asleep,
		Pickups:           c.pickups,
		ContestsStarted:   c.contestsStarted,
		Snatches:          c.snatches,
		BlocksTransferred: c.blocksTransferred,
		BlocksDropped:     c.blocksDropped,
		BedsClaimed:       c.bedsClaimed,
		Bounces:           c.bounces,
		ScoreMean:         mean,
		ScoreStd:          std,
		ScoreP10:          p10,
		ScoreP50:          p50,
		ScoreP90:          p90,
		ScoreMax:          max,
	}

	c.windowStartTick = currentTick
	c.pickups = 0
	c.contestsStarted = 0
	c.snatches = 0
	c.blocksTransferred = 0
	c.blocksDropped = 0
	c.bedsClaimed = 0
	c.bounces = 0

	return stats
}
