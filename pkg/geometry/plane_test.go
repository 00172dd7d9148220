package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-smallpt/pkg/core"
)

// newFloorPlane creates a 2x1 plane in the XZ plane at y=0 with normal +y
func newFloorPlane() *Plane {
	return NewPlane(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, 1), // right: Z direction, length 1
		core.NewVec3(2, 0, 0), // up: X direction, length 2
	)
}

func TestPlane_Normal(t *testing.T) {
	plane := newFloorPlane()
	if !vecNear(plane.Normal, core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected normal (0,1,0), got %v", plane.Normal)
	}
}

func TestPlane_Hit_Interior(t *testing.T) {
	plane := newFloorPlane()
	ray := core.NewRay(core.NewVec3(1, 1, 0.5), core.NewVec3(0, -1, 0))

	hit, isHit := plane.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1.0, got t=%f", hit.T)
	}
	if !vecNear(hit.Point, core.NewVec3(1, 0, 0.5), 1e-9) {
		t.Errorf("Expected hit point (1,0,0.5), got %v", hit.Point)
	}
	if !vecNear(hit.Normal, plane.Normal, 1e-12) {
		t.Errorf("Expected plane normal %v, got %v", plane.Normal, hit.Normal)
	}
}

func TestPlane_Hit_OutsideBounds(t *testing.T) {
	plane := newFloorPlane()

	tests := []struct {
		name      string
		rayOrigin core.Vec3
	}{
		{"beyond up edge", core.NewVec3(2.5, 1, 0.5)},
		{"before up edge", core.NewVec3(-0.5, 1, 0.5)},
		{"beyond right edge", core.NewVec3(1, 1, 1.5)},
		{"before right edge", core.NewVec3(1, 1, -0.1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, core.NewVec3(0, -1, 0))
			hit, isHit := plane.Hit(ray)
			if isHit {
				t.Errorf("Expected miss for ray outside bounds, but got hit at t=%f", hit.T)
			}
		})
	}
}

func TestPlane_Hit_Degenerate(t *testing.T) {
	plane := newFloorPlane()

	tests := []struct {
		name   string
		origin core.Vec3
		dir    core.Vec3
	}{
		{"parallel ray", core.NewVec3(0, 1, 0.5), core.NewVec3(1, 0, 0)},
		{"ray in plane", core.NewVec3(0, 0, 0.5), core.NewVec3(1, 0, 0)},
		{"pointing away", core.NewVec3(1, 1, 0.5), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, isHit := plane.Hit(core.NewRay(tt.origin, tt.dir)); isHit {
				t.Errorf("Expected miss, got hit at t=%f", hit.T)
			}
		})
	}

	flat := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	if _, isHit := flat.Hit(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))); isHit {
		t.Error("Expected zero-area plane to never be hit")
	}
}

func TestPlane_Hit_FromBehind(t *testing.T) {
	plane := newFloorPlane()
	ray := core.NewRay(core.NewVec3(1, -1, 0.5), core.NewVec3(0, 1, 0))

	hit, isHit := plane.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit from behind, but got miss")
	}

	// Geometric normal is reported unchanged
	if !vecNear(hit.Normal, core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected normal (0,1,0), got %v", hit.Normal)
	}
}
