package game

import (
	"testing"

	"github.com/pthm-cable/arcade/body"
	"github.com/pthm-cable/arcade/components"
	"github.com/pthm-cable/arcade/geom"
)

func TestPickBody(t *testing.T) {
	below := body.MustNew(geom.Rectangle(geom.Zero, 10, 10), 1, components.White, components.RoleNone)
	above := body.MustNew(geom.Rectangle(geom.Vec(4, 0), 10, 10), 1, components.Red, components.RoleNone)
	gone := body.MustNew(geom.Rectangle(geom.Vec(-20, 0), 10, 10), 1, components.Red, components.RoleNone)
	gone.MarkRemoved()
	bodies := []*body.Body{below, above, gone}

	tests := []struct {
		name string
		pt   geom.Vector
		want *body.Body
	}{
		{"only below", geom.Vec(-3, 0), below},
		{"overlap picks topmost", geom.Vec(2, 0), above},
		{"only above", geom.Vec(8, 0), above},
		{"removed body ignored", geom.Vec(-20, 0), nil},
		{"empty space", geom.Vec(50, 50), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickBody(bodies, tt.pt)
			if ok != (tt.want != nil) || got != tt.want {
				t.Errorf("pickBody(%v) = %p, %v; want %p", tt.pt, got, ok, tt.want)
			}
		})
	}
}
