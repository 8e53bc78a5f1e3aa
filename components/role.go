// Package components defines the small value types attached to bodies.
package components

import "fmt"

// Role tags a body with the part it plays in collisions.
type Role uint8

const (
	RoleNone Role = iota
	RolePlayer
	RoleEnemy
	RoleBullet                 // Debounced: repeated contacts within the debounce window are ignored
	RoleRemoveOnCollision      // Removed by any physics collision
	RoleTurnWhiteOnCollision   // First hit turns it white, second removes it
	RoleNeverRemoveOnCollision // Survives destructive collisions and removes the player it touches
)

var roleNames = []string{
	"none",
	"player",
	"enemy",
	"bullet",
	"remove_on_collision",
	"turn_white_on_collision",
	"never_remove_on_collision",
}

// String returns the snake_case name used in config files.
func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// RoleNames returns the names of all roles in constant order.
func RoleNames() []string {
	return roleNames
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	if int(r) >= len(roleNames) {
		return nil, fmt.Errorf("components: invalid role %d", r)
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	s := string(text)
	for i, name := range roleNames {
		if name == s {
			*r = Role(i)
			return nil
		}
	}
	return fmt.Errorf("components: unknown role %q", s)
}
