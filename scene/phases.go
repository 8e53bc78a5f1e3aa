package scene

// Step phase identifiers reported to the PhaseObserver.
const (
	PhaseGenerators    = "generators"
	PhasePruneBindings = "prune_bindings"
	PhaseSweepBodies   = "sweep_bodies"
)

// PhaseInfo describes a step phase for UI and perf display.
type PhaseInfo struct {
	ID          string // Identifier passed to PhaseObserver
	Name        string // Display name
	Description string
}

// PhaseRegistry holds metadata about step phases so the UI and perf tracker
// agree on names.
type PhaseRegistry struct {
	phases []PhaseInfo
	byID   map[string]PhaseInfo
}

// NewPhaseRegistry creates a registry holding the scene's step phases.
func NewPhaseRegistry() *PhaseRegistry {
	r := &PhaseRegistry{byID: make(map[string]PhaseInfo)}
	r.Register(PhaseInfo{ID: PhaseGenerators, Name: "Generators", Description: "Runs force and collision bindings"})
	r.Register(PhaseInfo{ID: PhasePruneBindings, Name: "Prune", Description: "Drops bindings touching removed bodies"})
	r.Register(PhaseInfo{ID: PhaseSweepBodies, Name: "Sweep", Description: "Removes flagged bodies and integrates survivors"})
	return r
}

// Register adds a phase. Callers timing work outside Step register their own.
func (r *PhaseRegistry) Register(info PhaseInfo) {
	if _, ok := r.byID[info.ID]; !ok {
		r.phases = append(r.phases, info)
	}
	r.byID[info.ID] = info
}

// Get returns phase info by ID.
func (r *PhaseRegistry) Get(id string) (PhaseInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a phase ID, or the ID itself.
func (r *PhaseRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// IDs returns all phase IDs in registration order.
func (r *PhaseRegistry) IDs() []string {
	ids := make([]string, len(r.phases))
	for i, info := range r.phases {
		ids[i] = info.ID
	}
	return ids
}

// All returns all registered phases.
func (r *PhaseRegistry) All() []PhaseInfo {
	return r.phases
}
