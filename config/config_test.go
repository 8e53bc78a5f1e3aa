package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/geom"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Physics.Closeness != 6 || cfg.Physics.Debounce != 0.01 {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	if cfg.Derived.WorldSize != geom.Vec(1000, 500) {
		t.Errorf("world size = %v", cfg.Derived.WorldSize)
	}
	if cfg.Breakout.BallRole != components.RoleBullet {
		t.Errorf("ball role = %v", cfg.Breakout.BallRole)
	}
	if len(cfg.Breakout.BrickRoles) != 2 || cfg.Breakout.BrickRoles[0] != components.RoleTurnWhiteOnCollision {
		t.Errorf("brick roles = %v", cfg.Breakout.BrickRoles)
	}
	if cfg.Invaders.AlienShotRole != components.RoleNeverRemoveOnCollision {
		t.Errorf("alien shot role = %v", cfg.Invaders.AlienShotRole)
	}
	// (1000 - 8*5) / 7
	if want := 960.0 / 7; math.Abs(cfg.Derived.BrickWidth-want) > 1e-12 {
		t.Errorf("brick width = %v, want %v", cfg.Derived.BrickWidth, want)
	}
	if cfg.Derived.StatsWindowTicks != 300 {
		t.Errorf("stats window ticks = %d, want 300", cfg.Derived.StatsWindowTicks)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeFile(t, `
demo:
  name: invaders
world:
  width: 0
screen:
  width: 800
breakout:
  brick_roles: [remove_on_collision]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Demo.Name != "invaders" {
		t.Errorf("demo = %q", cfg.Demo.Name)
	}
	if cfg.Derived.WorldSize != geom.Vec(800, 500) {
		t.Errorf("world size = %v, want screen width fallback", cfg.Derived.WorldSize)
	}
	if len(cfg.Breakout.BrickRoles) != 1 || cfg.Breakout.BrickRoles[0] != components.RoleRemoveOnCollision {
		t.Errorf("brick roles = %v", cfg.Breakout.BrickRoles)
	}
	// Untouched sections keep their defaults.
	if cfg.NBody.Count != 50 {
		t.Errorf("nbody count = %d, want default 50", cfg.NBody.Count)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown role", "breakout:\n  ball_role: wizard\n"},
		{"zero dt", "physics:\n  dt: 0\n"},
		{"no steps", "physics:\n  steps_per_frame: 0\n"},
		{"bad radius range", "nbody:\n  min_radius: 20\n"},
		{"empty brick roles", "breakout:\n  brick_roles: []\n"},
		{"malformed yaml", "physics: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Invaders.Rows = 7
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if again.Invaders.Rows != 7 || again.Invaders.AlienShotRole != cfg.Invaders.AlienShotRole {
		t.Errorf("round trip lost values: %+v", again.Invaders)
	}
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Cfg()
}

func TestMustInit(t *testing.T) {
	saved := global
	defer func() { global = saved }()
	MustInit("")
	if Cfg().Demo.Name == "" {
		t.Error("demo name not loaded")
	}
}
