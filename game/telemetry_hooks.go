package game

import (
	"log/slog"

	"github.com/pthm-cable/arcade/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.simTime, g.scene)
	perfStats := g.perfCollector.Stats()

	// Call stats callback if provided
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.opts.LogStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		g.recordBookmark(bm)
	}
}

// recordBookmark logs, writes and snapshots a bookmark.
func (g *Game) recordBookmark(bm telemetry.Bookmark) {
	if g.opts.LogStats {
		bm.LogBookmark()
	}
	if err := g.outputManager.WriteBookmark(bm); err != nil {
		slog.Error("failed to write bookmark", "error", err)
	}
	g.saveSnapshot(&bm)
}

// saveSnapshot writes the scene to the snapshot directory, or under the
// output directory when only that is set.
func (g *Game) saveSnapshot(bookmark *telemetry.Bookmark) {
	if g.opts.SnapshotDir == "" && g.outputManager == nil {
		return
	}

	snapshot := g.createSnapshot(bookmark)

	var path string
	var err error
	if g.opts.SnapshotDir != "" {
		path, err = telemetry.SaveSnapshot(snapshot, g.opts.SnapshotDir)
	} else {
		path, err = g.outputManager.WriteSnapshot(snapshot)
	}
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}

	slog.Info("snapshot saved", "path", path, "tick", g.tick)
}

// createSnapshot builds a snapshot from the current state.
func (g *Game) createSnapshot(bookmark *telemetry.Bookmark) *telemetry.Snapshot {
	snapshot := telemetry.CaptureSnapshot(g.scene, g.demo.Name(), g.rngSeed, g.ctx.World, g.tick, g.simTime)
	snapshot.Bookmark = bookmark
	return snapshot
}
