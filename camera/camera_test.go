package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= 0.01
}

func TestNew(t *testing.T) {
	cam := New(1000, 500, 1000, 500)

	// Should be centered on the field origin
	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at (0, 0), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 || cam.Scale() != 1.0 {
		t.Errorf("expected zoom and scale 1.0, got %f and %f", cam.Zoom, cam.Scale())
	}
}

func TestWorldToScreenYUp(t *testing.T) {
	cam := New(1000, 500, 1000, 500)

	tests := []struct {
		name   string
		wx, wy float32
		sx, sy float32
	}{
		{"origin at screen center", 0, 0, 500, 250},
		{"top-left corner", -500, 250, 0, 0},
		{"bottom-right corner", 500, -250, 1000, 500},
		{"up is up", 0, 100, 500, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := cam.WorldToScreen(tt.wx, tt.wy)
			if !near(sx, tt.sx) || !near(sy, tt.sy) {
				t.Errorf("WorldToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.wx, tt.wy, sx, sy, tt.sx, tt.sy)
			}
		})
	}
}

func TestFitPreservesAspect(t *testing.T) {
	// Wider window than the field: height limits, field is letterboxed left and right
	cam := New(1600, 500, 1000, 500)
	if cam.FitScale() != 1 {
		t.Fatalf("FitScale = %v, want 1", cam.FitScale())
	}
	x, y, w, h := cam.FieldRect()
	if !near(x, 300) || !near(y, 0) || !near(w, 1000) || !near(h, 500) {
		t.Errorf("FieldRect = (%v, %v, %v, %v), want (300, 0, 1000, 500)", x, y, w, h)
	}

	// Taller window: width limits
	cam = New(500, 1000, 1000, 500)
	if cam.FitScale() != 0.5 {
		t.Errorf("FitScale = %v, want 0.5", cam.FitScale())
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 1000, 500)
	cam.SetZoom(2)
	cam.Pan(40, -30)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestResizeRefits(t *testing.T) {
	cam := New(1000, 500, 1000, 500)
	cam.Resize(2000, 1000)
	if cam.Scale() != 2 {
		t.Errorf("Scale after resize = %v, want 2", cam.Scale())
	}
	sx, sy := cam.WorldToScreen(0, 0)
	if !near(sx, 1000) || !near(sy, 500) {
		t.Errorf("origin maps to (%v, %v), want window center", sx, sy)
	}
}

func TestPanClampsToField(t *testing.T) {
	cam := New(1000, 500, 1000, 500)

	// Screen right moves the view right; screen down moves it down in world y
	cam.Pan(100, 50)
	if !near(cam.X, 100) || !near(cam.Y, -50) {
		t.Errorf("after pan camera at (%v, %v), want (100, -50)", cam.X, cam.Y)
	}

	cam.Pan(10000, -10000)
	if cam.X != 500 || cam.Y != 250 {
		t.Errorf("expected clamp to field corner, got (%f, %f)", cam.X, cam.Y)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, 1000, 500)

	cam.SetZoom(0.1) // Below min
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom clamped to 1.0, got %f", cam.Zoom)
	}

	cam.SetZoom(10.0) // Above max
	if cam.Zoom != 4.0 {
		t.Errorf("expected zoom clamped to 4.0, got %f", cam.Zoom)
	}

	cam.SetZoom(1)
	cam.ZoomBy(2)
	if cam.Zoom != 2.0 {
		t.Errorf("expected zoom 2.0, got %f", cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1000, 500, 1000, 500)
	cam.SetZoom(2)

	// Visible range in world coords is (-250, -125) to (250, 125)
	if !cam.IsVisible(0, 0, 10) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(400, 200, 10) {
		t.Error("far point should not be visible")
	}
	if !cam.IsVisible(300, 0, 100) {
		t.Error("edge point with large radius should be visible")
	}

	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	if !near(minX, -250) || !near(minY, -125) || !near(maxX, 250) || !near(maxY, 125) {
		t.Errorf("bounds = (%v, %v, %v, %v)", minX, minY, maxX, maxY)
	}
}

func TestReset(t *testing.T) {
	cam := New(1000, 500, 1000, 500)
	cam.X = 100
	cam.Y = -50
	cam.Zoom = 2.5

	cam.Reset()

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected position (0, 0), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}
