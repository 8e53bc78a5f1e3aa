package telemetry

import "testing"

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_CollisionBurst(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 300), Bodies: 20, Collisions: 4})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 1500, Bodies: 20, Collisions: 12})
	if !hasBookmark(bookmarks, BookmarkCollisionBurst) {
		t.Error("expected collision_burst bookmark")
	}

	// A small absolute count never triggers
	bd = NewBookmarkDetector(10)
	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 300), Collisions: 1})
	}
	if hasBookmark(bd.Check(WindowStats{WindowEndTick: 1500, Collisions: 3}), BookmarkCollisionBurst) {
		t.Error("unexpected collision_burst for 3 collisions")
	}
}

func TestBookmarkDetector_BodyCrash(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 300), Bodies: 21})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 1500, Bodies: 10})
	if !hasBookmark(bookmarks, BookmarkBodyCrash) {
		t.Error("expected body_crash bookmark")
	}

	// Peak resets after a crash
	if hasBookmark(bd.Check(WindowStats{WindowEndTick: 1800, Bodies: 9}), BookmarkBodyCrash) {
		t.Error("crash reported twice")
	}
}

func TestBookmarkDetector_EnergySpike(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 3; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 300), KineticTotal: 100})
	}

	if hasBookmark(bd.Check(WindowStats{WindowEndTick: 900, KineticTotal: 150}), BookmarkEnergySpike) {
		t.Error("unexpected energy_spike at 1.5x")
	}
	if !hasBookmark(bd.Check(WindowStats{WindowEndTick: 1200, KineticTotal: 500}), BookmarkEnergySpike) {
		t.Error("expected energy_spike bookmark")
	}
}

func TestBookmarkDetector_Settled(t *testing.T) {
	bd := NewBookmarkDetector(10)
	rest := WindowStats{Moving: 4, SpeedP90: 1e-6}

	if !hasBookmark(bd.Check(rest), BookmarkSettled) {
		t.Fatal("expected settled bookmark")
	}
	if hasBookmark(bd.Check(rest), BookmarkSettled) {
		t.Error("settled reported twice in a row")
	}
	bd.Check(WindowStats{Moving: 4, SpeedP90: 5})
	if !hasBookmark(bd.Check(rest), BookmarkSettled) {
		t.Error("expected settled bookmark after motion resumed")
	}
}

func TestBookmarkDetector_Reset(t *testing.T) {
	bd := NewBookmarkDetector(10)
	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{Bodies: 30})
	}
	bd.Reset()
	if got := bd.Check(WindowStats{Bodies: 2}); hasBookmark(got, BookmarkBodyCrash) {
		t.Error("crash reported against history from before Reset")
	}
}
