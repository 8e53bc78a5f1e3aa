package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm-cable/arcade/body"
	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/geom"
	"github.com/pthm-cable/arcade/scene"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the bodies of a scene at one tick.
type Snapshot struct {
	Version int    `json:"version"`
	Demo    string `json:"demo"`
	RNGSeed int64  `json:"rng_seed"`

	WorldWidth  float64 `json:"world_width"`
	WorldHeight float64 `json:"world_height"`

	Tick    int32   `json:"tick"`
	SimTime float64 `json:"sim_time"`

	Bodies []BodyState `json:"bodies"`

	Bookmark *Bookmark `json:"bookmark,omitempty"`
}

// BodyState holds one body's state. Infinite mass is stored as a negative
// value since JSON has no infinity.
type BodyState struct {
	Vertices     [][2]float64     `json:"vertices"`
	Mass         float64          `json:"mass"`
	Velocity     [2]float64       `json:"velocity"`
	Acceleration [2]float64       `json:"acceleration"`
	Elasticity   [2]float64       `json:"elasticity"`
	Angle        float64          `json:"angle"`
	Color        components.Color `json:"color"`
	Role         components.Role  `json:"role"`
}

// CaptureSnapshot records every body in s.
func CaptureSnapshot(s *scene.Scene, demo string, seed int64, world geom.Vector, tick int32, simTime float64) *Snapshot {
	snap := &Snapshot{
		Version:     SnapshotVersion,
		Demo:        demo,
		RNGSeed:     seed,
		WorldWidth:  world.X,
		WorldHeight: world.Y,
		Tick:        tick,
		SimTime:     simTime,
		Bodies:      make([]BodyState, 0, s.NumBodies()),
	}
	for _, b := range s.Bodies() {
		snap.Bodies = append(snap.Bodies, captureBody(b))
	}
	return snap
}

func captureBody(b *body.Body) BodyState {
	verts := b.Vertices()
	st := BodyState{
		Vertices:     make([][2]float64, len(verts)),
		Mass:         b.Mass(),
		Velocity:     pair(b.Velocity()),
		Acceleration: pair(b.Acceleration()),
		Elasticity:   pair(b.Elasticity()),
		Angle:        b.Angle(),
		Color:        b.Color(),
		Role:         b.Role(),
	}
	if b.IsStatic() {
		st.Mass = -1
	}
	for i, v := range verts {
		st.Vertices[i] = pair(v)
	}
	return st
}

func pair(v geom.Vector) [2]float64 { return [2]float64{v.X, v.Y} }

// Restore rebuilds the snapshot's bodies into s in their recorded order and
// returns them. Bindings are not part of a snapshot.
func (snap *Snapshot) Restore(s *scene.Scene) ([]*body.Body, error) {
	out := make([]*body.Body, 0, len(snap.Bodies))
	for i, st := range snap.Bodies {
		b, err := st.Body()
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		s.AddBody(b)
		out = append(out, b)
	}
	return out, nil
}

// Body builds a detached body from the recorded state.
func (st BodyState) Body() (*body.Body, error) {
	shape := make(geom.Polygon, len(st.Vertices))
	for i, v := range st.Vertices {
		shape[i] = geom.Vec(v[0], v[1])
	}
	mass := st.Mass
	if mass < 0 {
		mass = body.Infinite
	}
	b, err := body.New(shape, mass, st.Color, st.Role)
	if err != nil {
		return nil, err
	}
	b.SetVelocity(geom.Vec(st.Velocity[0], st.Velocity[1]))
	b.SetAcceleration(geom.Vec(st.Acceleration[0], st.Acceleration[1]))
	b.SetElasticity(geom.Vec(st.Elasticity[0], st.Elasticity[1]))
	b.SetAngle(st.Angle)
	return b, nil
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	// Build filename
	name := fmt.Sprintf("snapshot_%s_%d", snapshot.Demo, snapshot.Tick)
	if snapshot.Bookmark != nil {
		// Sanitize bookmark type for filename
		sanitized := strings.ReplaceAll(string(snapshot.Bookmark.Type), " ", "_")
		name = fmt.Sprintf("%s_%s", name, sanitized)
	}
	name += ".json"

	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d, want %d", snapshot.Version, SnapshotVersion)
	}

	return &snapshot, nil
}
