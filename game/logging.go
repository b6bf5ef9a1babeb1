package game

import (
	"fmt"
	"io"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logWorldState logs a human-readable world summary: mode, block ledger,
// and the score distribution as a histogram.
func (g *Game) logWorldState() {
	held := 0
	engaged := 0
	asleep := 0
	hist := make(map[int32]int)
	var maxScore int32

	query := g.kinderFilter.Query()
	for query.Next() {
		_, _, _, kin, contest, inv := query.Get()
		held += len(inv.Blocks)
		hist[kin.Score]++
		if kin.Score > maxScore {
			maxScore = kin.Score
		}
		if contest.Engaged {
			engaged++
		}
		if kin.Asleep {
			asleep++
		}
	}

	Logf("=== World @ Tick %d | mode: %s ===", g.tick, g.mode)
	Logf("Blocks: %d free + %d held = %d total", g.remaining, held, g.totalBlocks)
	Logf("Agents: %d (%d engaged, %d asleep)", g.agentCount, engaged, asleep)

	for s := int32(0); s <= maxScore; s++ {
		if n := hist[s]; n > 0 {
			bar := ""
			for i := 0; i < n; i++ {
				bar += "#"
			}
			Logf("  score %2d: %3d %s", s, n, bar)
		}
	}
	Logf("")
}
