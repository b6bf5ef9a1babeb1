package game

import "log/slog"

// flushTelemetry closes the stats window when it is due, optionally logging
// and writing CSV rows.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	scores, asleep := g.sampleScores()
	stats := g.collector.Flush(g.tick, g.mode.String(), g.remaining, asleep, scores)
	perfStats := g.perf.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
		g.logWorldState()
	}

	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.output.WritePerf(perfStats, g.tick); err != nil {
			slog.Error("failed to write perf stats", "error", err)
		}
	}
}

// sampleScores collects every agent's score and counts sleepers.
func (g *Game) sampleScores() (scores []float64, asleep int) {
	scores = make([]float64, 0, g.agentCount)

	query := g.kinderFilter.Query()
	for query.Next() {
		_, _, _, kin, _, _ := query.Get()
		scores = append(scores, float64(kin.Score))
		if kin.Asleep {
			asleep++
		}
	}
	return scores, asleep
}
