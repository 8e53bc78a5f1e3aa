// Package config provides configuration loading and access for the demos.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/geom"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Demo      DemoConfig      `yaml:"demo"`
	NBody     NBodyConfig     `yaml:"nbody"`
	Springs   SpringsConfig   `yaml:"springs"`
	Bounce    BounceConfig    `yaml:"bounce"`
	Breakout  BreakoutConfig  `yaml:"breakout"`
	Invaders  InvadersConfig  `yaml:"invaders"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// Vec2 is a YAML-friendly vector.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vector converts to a geom.Vector.
func (v Vec2) Vector() geom.Vector { return geom.Vec(v.X, v.Y) }

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the playfield size in world units.
// The camera fits it to the window.
type WorldConfig struct {
	Width  float64 `yaml:"width"`  // 0 = use screen width
	Height float64 `yaml:"height"` // 0 = use screen height
}

// PhysicsConfig holds stepping parameters.
type PhysicsConfig struct {
	DT            float64 `yaml:"dt"`
	MaxFrameDT    float64 `yaml:"max_frame_dt"`
	StepsPerFrame int     `yaml:"steps_per_frame"`
	Closeness     float64 `yaml:"closeness"`
	Debounce      float64 `yaml:"debounce"`
}

// DemoConfig selects the demo to run.
type DemoConfig struct {
	Name string `yaml:"name"`
	Seed int64  `yaml:"seed"`
}

// NBodyConfig holds the n-body gravity demo parameters.
type NBodyConfig struct {
	Count     int     `yaml:"count"`
	Points    int     `yaml:"points"`
	MinRadius int     `yaml:"min_radius"`
	MaxRadius int     `yaml:"max_radius"`
	MaxSpeed  int     `yaml:"max_speed"`
	G         float64 `yaml:"g"`
}

// SpringsConfig holds the spring chain demo parameters.
type SpringsConfig struct {
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
	K      float64 `yaml:"k"`
	Drag   float64 `yaml:"drag"`
}

// BounceConfig holds the kinematic bouncing stars demo parameters.
type BounceConfig struct {
	Radius         float64 `yaml:"radius"`
	MinPoints      int     `yaml:"min_points"`
	MaxPoints      int     `yaml:"max_points"`
	SpawnInterval  float64 `yaml:"spawn_interval"`
	LaunchVelocity Vec2    `yaml:"launch_velocity"`
	Gravity        float64 `yaml:"gravity"`
	Elasticity     Vec2    `yaml:"elasticity"`
	Spin           float64 `yaml:"spin"`
}

// BreakoutConfig holds the breakout demo parameters.
type BreakoutConfig struct {
	Rows         int               `yaml:"rows"`
	Cols         int               `yaml:"cols"`
	Gap          float64           `yaml:"gap"`
	BlockHeight  float64           `yaml:"block_height"`
	BallRadius   float64           `yaml:"ball_radius"`
	BallMass     float64           `yaml:"ball_mass"`
	BallVelocity Vec2              `yaml:"ball_velocity"`
	PaddleSpeed  float64           `yaml:"paddle_speed"`
	Elasticity   float64           `yaml:"elasticity"`
	BallRole     components.Role   `yaml:"ball_role"`
	BrickRoles   []components.Role `yaml:"brick_roles"` // Each brick picks one at random
}

// InvadersConfig holds the space invaders demo parameters.
type InvadersConfig struct {
	Rows           int             `yaml:"rows"`
	Cols           int             `yaml:"cols"`
	Radius         float64         `yaml:"radius"`
	Gap            float64         `yaml:"gap"`
	Mass           float64         `yaml:"mass"`
	InvaderSpeed   float64         `yaml:"invader_speed"`
	PlayerSpeed    float64         `yaml:"player_speed"`
	PlayerWidth    float64         `yaml:"player_width"`
	PlayerHeight   float64         `yaml:"player_height"`
	BulletWidth    float64         `yaml:"bullet_width"`
	BulletHeight   float64         `yaml:"bullet_height"`
	BulletSpeed    float64         `yaml:"bullet_speed"`
	FireInterval   float64         `yaml:"fire_interval"`
	DropRows       int             `yaml:"drop_rows"` // Rows descended on each wall hit
	PlayerShotRole components.Role `yaml:"player_shot_role"`
	AlienShotRole  components.Role `yaml:"alien_shot_role"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds of simulated time per window
	PerfWindow  int     `yaml:"perf_window"`  // Ticks averaged by the perf collector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldSize        geom.Vector // Effective playfield size
	ScreenW32        float32
	ScreenH32        float32
	BrickWidth       float64 // Breakout brick width filling the row with gaps
	StatsWindowTicks int     // Telemetry window in fixed-dt ticks
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.computeDerived()
	return cfg, nil
}

// validate rejects values the demos cannot run with.
func (c *Config) validate() error {
	var errs []error
	if c.Physics.DT <= 0 {
		errs = append(errs, fmt.Errorf("physics.dt must be positive, got %v", c.Physics.DT))
	}
	if c.Physics.StepsPerFrame < 1 {
		errs = append(errs, fmt.Errorf("physics.steps_per_frame must be at least 1, got %d", c.Physics.StepsPerFrame))
	}
	if c.NBody.MinRadius < 1 || c.NBody.MinRadius > c.NBody.MaxRadius {
		errs = append(errs, fmt.Errorf("nbody radius range [%d, %d] is invalid", c.NBody.MinRadius, c.NBody.MaxRadius))
	}
	if c.Bounce.MinPoints < 2 || c.Bounce.MinPoints > c.Bounce.MaxPoints {
		errs = append(errs, fmt.Errorf("bounce point range [%d, %d] is invalid", c.Bounce.MinPoints, c.Bounce.MaxPoints))
	}
	if c.Breakout.Cols < 1 || c.Breakout.Rows < 1 {
		errs = append(errs, fmt.Errorf("breakout needs at least one row and column"))
	}
	if len(c.Breakout.BrickRoles) == 0 {
		errs = append(errs, fmt.Errorf("breakout.brick_roles must not be empty"))
	}
	if c.Telemetry.StatsWindow <= 0 {
		errs = append(errs, fmt.Errorf("telemetry.stats_window must be positive, got %v", c.Telemetry.StatsWindow))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// World dimensions default to screen size if not specified
	w, h := c.World.Width, c.World.Height
	if w == 0 {
		w = float64(c.Screen.Width)
	}
	if h == 0 {
		h = float64(c.Screen.Height)
	}
	c.Derived.WorldSize = geom.Vec(w, h)

	cols := float64(c.Breakout.Cols)
	c.Derived.BrickWidth = (w - (cols+1)*c.Breakout.Gap) / cols

	c.Derived.StatsWindowTicks = int(c.Telemetry.StatsWindow/c.Physics.DT + 0.5)
	if c.Derived.StatsWindowTicks < 1 {
		c.Derived.StatsWindowTicks = 1
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
