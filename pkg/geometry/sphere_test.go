package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-smallpt/pkg/core"
)

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) <= tolerance &&
		math.Abs(a.Y()-b.Y()) <= tolerance &&
		math.Abs(a.Z()-b.Z()) <= tolerance
}

func TestSphere_Hit_Basic(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, 1))

	hit, isHit := sphere.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1.0, got t=%f", hit.T)
	}
	if !vecNear(hit.Point, core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Expected hit point (0,0,-1), got %v", hit.Point)
	}
	if !vecNear(hit.Normal, core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Expected normal (0,0,-1), got %v", hit.Normal)
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, isHit := sphere.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit from inside, but got miss")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected far root t=1.0, got t=%f", hit.T)
	}

	// Normal stays outward facing
	if !vecNear(hit.Normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected outward normal (0,0,1), got %v", hit.Normal)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name      string
		tMin      float64
		tMax      float64
		expectHit bool
		expectedT float64
	}{
		{"full range", 0.001, 1000, true, 1.0},
		{"tMax before near root", 0.001, 0.5, false, 0},
		{"tMin skips near root", 1.5, 1000, true, 3.0},
		{"tMin after far root", 3.5, 1000, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.Ray{
				Origin:    core.NewVec3(0, 0, 2),
				Direction: core.NewVec3(0, 0, -1),
				TMin:      tt.tMin,
				TMax:      tt.tMax,
			}
			hit, isHit := sphere.Hit(ray)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_Hit_InwardNormal(t *testing.T) {
	tests := []struct {
		name     string
		origin   core.Vec3
		dir      core.Vec3
		expected core.Vec3
	}{
		{"from inside", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)},
		{"from outside", core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1)},
	}

	shell := NewInwardSphere(core.NewVec3(0, 0, 0), 2)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := shell.Hit(core.NewRay(tt.origin, tt.dir))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if !vecNear(hit.Normal, tt.expected, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expected, hit.Normal)
			}
		})
	}
}
