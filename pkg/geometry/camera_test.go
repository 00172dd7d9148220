package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-smallpt/pkg/core"
)

func TestPinholeCamera_Basis(t *testing.T) {
	camera := NewPinholeCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), math.Pi/2)

	if !vecNear(camera.Right, core.NewVec3(1, 0, 0), 1e-12) {
		t.Errorf("Expected right (1,0,0), got %v", camera.Right)
	}
	if !vecNear(camera.Up, core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected up (0,1,0), got %v", camera.Up)
	}
	if math.Abs(camera.Focal-1.0) > 1e-12 {
		t.Errorf("Expected focal length 1, got %f", camera.Focal)
	}
}

func TestPinholeCamera_GetRay(t *testing.T) {
	camera := NewPinholeCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), math.Pi/2)

	center := camera.GetRay(0, 0)
	if !vecNear(center.Direction, core.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Expected center ray along forward, got %v", center.Direction)
	}

	corner := camera.GetRay(1, 1)
	expectedDir := core.NewVec3(-1, -1, -1).Normalize()
	if !vecNear(corner.Origin, core.NewVec3(1, 1, 0), 1e-12) {
		t.Errorf("Expected sensor position (1,1,0), got %v", corner.Origin)
	}
	if !vecNear(corner.Direction, expectedDir, 1e-12) {
		t.Errorf("Expected direction %v, got %v", expectedDir, corner.Direction)
	}
}

func TestPinholeCamera_LookingStraightUp(t *testing.T) {
	camera := NewPinholeCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), math.Pi/3)
	ray := camera.GetRay(0.5, -0.5)

	if !core.IsFinite(ray.Direction) || math.Abs(ray.Direction.Len()-1) > 1e-9 {
		t.Errorf("Expected finite unit direction, got %v", ray.Direction)
	}
}
