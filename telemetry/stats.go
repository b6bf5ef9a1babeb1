package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int32  `csv:"-"`
	WindowEndTick   int32  `csv:"window_end"`
	Mode            string `csv:"mode"`

	// State sampled at window end
	Agents          int `csv:"agents"`
	RemainingBlocks int `csv:"remaining_blocks"`
	Asleep          int `csv:"asleep"`

	// Events during window
	Pickups           int `csv:"pickups"`
	ContestsStarted   int `csv:"contests"`
	Snatches          int `csv:"snatches"`
	BlocksTransferred int `csv:"blocks_transferred"`
	BlocksDropped     int `csv:"blocks_dropped"`
	BedsClaimed       int `csv:"beds_claimed"`
	Bounces           int `csv:"bounces"`

	// Score distribution (sampled at window end)
	ScoreMean float64 `csv:"score_mean"`
	ScoreStd  float64 `csv:"score_std"`
	ScoreP10  float64 `csv:"score_p10"`
	ScoreP50  float64 `csv:"score_p50"`
	ScoreP90  float64 `csv:"score_p90"`
	ScoreMax  float64 `csv:"score_max"`
}

// ScoreStats calculates the score distribution summary for a window.
// Returns zeros for an empty slice.
func ScoreStats(values []float64) (mean, std, p10, p50, p90, max float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	if n > 1 {
		std = stat.StdDev(sorted, nil)
	}
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	max = sorted[n-1]

	return mean, std, p10, p50, p90, max
}

// LogStats writes the window summary via slog.
func (s WindowStats) LogStats() {
	slog.Info("window stats",
		"window_end", s.WindowEndTick,
		"mode", s.Mode,
		"agents", s.Agents,
		"remaining_blocks", s.RemainingBlocks,
		"asleep", s.Asleep,
		"pickups", s.Pickups,
		"contests", s.ContestsStarted,
		"snatches", s.Snatches,
		"blocks_transferred", s.BlocksTransferred,
		"score_mean", s.ScoreMean,
		"score_std", s.ScoreStd,
		"score_p50", s.ScoreP50,
		"score_p90", s.ScoreP90,
	)
}
