package telemetry

import (
	"math"
	"testing"
)

func TestScoreStats(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	mean, std, p10, p50, p90, max := ScoreStats(values)

	if math.Abs(mean-5.5) > 0.001 {
		t.Errorf("mean = %v, want 5.5", mean)
	}
	if std <= 0 {
		t.Errorf("std = %v, want > 0", std)
	}
	if p10 > p50 || p50 > p90 {
		t.Errorf("percentiles not ordered: p10=%v p50=%v p90=%v", p10, p50, p90)
	}
	if max != 10 {
		t.Errorf("max = %v, want 10", max)
	}
}

func TestScoreStatsEmpty(t *testing.T) {
	mean, std, p10, p50, p90, max := ScoreStats(nil)
	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 || max != 0 {
		t.Error("empty slice should return all zeros")
	}
}

func TestScoreStatsSingle(t *testing.T) {
	mean, std, _, p50, _, max := ScoreStats([]float64{3})
	if mean != 3 || p50 != 3 || max != 3 {
		t.Errorf("single value stats = (%v, %v, %v), want all 3", mean, p50, max)
	}
	if std != 0 {
		t.Errorf("std of single value = %v, want 0", std)
	}
}

func TestCollectorFlushResetsCounters(t *testing.T) {
	c := NewCollector(100)

	c.RecordPickup()
	c.RecordPickup()
	c.RecordContestStarted()
	c.RecordSnatch(3)
	c.RecordBedClaimed()
	c.RecordBlocksDropped(5)

	if c.ShouldFlush(50) {
		t.Error("ShouldFlush(50) = true before window elapsed")
	}
	if !c.ShouldFlush(100) {
		t.Error("ShouldFlush(100) = false after window elapsed")
	}

	stats := c.Flush(100, "saturation", 0, 0, []float64{2, 4})
	if stats.Pickups != 2 || stats.ContestsStarted != 1 || stats.Snatches != 1 {
		t.Errorf("unexpected event counts: %+v", stats)
	}
	if stats.BlocksTransferred != 3 || stats.BlocksDropped != 5 || stats.BedsClaimed != 1 {
		t.Errorf("unexpected block counts: %+v", stats)
	}
	if stats.Mode != "saturation" || stats.Agents != 2 {
		t.Errorf("unexpected state sample: %+v", stats)
	}

	// Second window starts clean.
	next := c.Flush(200, "saturation", 0, 0, nil)
	if next.Pickups != 0 || next.Snatches != 0 || next.BlocksTransferred != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WindowStartTick != 100 {
		t.Errorf("WindowStartTick = %d, want 100", next.WindowStartTick)
	}
}
