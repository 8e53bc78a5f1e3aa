package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkCollisionBurst BookmarkType = "collision_burst"
	BookmarkBodyCrash      BookmarkType = "body_crash"
	BookmarkEnergySpike    BookmarkType = "energy_spike"
	BookmarkSettled        BookmarkType = "settled"
	BookmarkRestart        BookmarkType = "restart"
	BookmarkGameOver       BookmarkType = "game_over"
)

// Bookmark marks a notable moment in a run.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects notable windows from the stats history.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	recentBodyPeak int  // peak body count since the last crash
	settled        bool // last window was already reported as settled
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Reset forgets the history, for example after a demo restart.
func (bd *BookmarkDetector) Reset() {
	bd.historyIdx = 0
	bd.historyFull = false
	bd.recentBodyPeak = 0
	bd.settled = false
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if bd.historyFull || bd.historyIdx > 0 {
		// Collisions > 2x rolling average
		if b := bd.checkCollisionBurst(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}

		// Kinetic energy > 2x rolling average
		if b := bd.checkEnergySpike(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	// Body count dropped >30% from recent peak
	if b := bd.checkBodyCrash(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	// Every finite-mass body at rest
	if b := bd.checkSettled(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	if stats.Bodies > bd.recentBodyPeak {
		bd.recentBodyPeak = stats.Bodies
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkCollisionBurst(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int64
	for _, h := range history {
		total += h.Collisions
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return nil
	}

	if float64(stats.Collisions) > avg*2.0 && stats.Collisions >= 5 {
		return &Bookmark{
			Type:        BookmarkCollisionBurst,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d collisions is %.1fx average (%.1f)", stats.Collisions, float64(stats.Collisions)/avg, avg),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkEnergySpike(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h.KineticTotal
	}
	avg := total / float64(len(history))
	if avg == 0 {
		return nil
	}

	if stats.KineticTotal > avg*2.0 {
		return &Bookmark{
			Type:        BookmarkEnergySpike,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Kinetic energy %.3g is %.1fx average (%.3g)", stats.KineticTotal, stats.KineticTotal/avg, avg),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkBodyCrash(stats WindowStats) *Bookmark {
	if bd.recentBodyPeak == 0 {
		return nil
	}

	dropPercent := 1.0 - float64(stats.Bodies)/float64(bd.recentBodyPeak)
	if dropPercent > 0.30 && stats.Bodies <= bd.recentBodyPeak-5 {
		// Reset peak after crash
		oldPeak := bd.recentBodyPeak
		bd.recentBodyPeak = stats.Bodies

		return &Bookmark{
			Type:        BookmarkBodyCrash,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Bodies dropped %.0f%% from peak %d to %d", dropPercent*100, oldPeak, stats.Bodies),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkSettled(stats WindowStats) *Bookmark {
	atRest := stats.Moving > 0 && stats.SpeedP90 < 1e-3
	if !atRest {
		bd.settled = false
		return nil
	}
	if bd.settled {
		return nil
	}
	bd.settled = true
	return &Bookmark{
		Type:        BookmarkSettled,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%d bodies at rest", stats.Moving),
	}
}
