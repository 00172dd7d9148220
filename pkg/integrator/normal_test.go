package integrator

import (
	"testing"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/material"
	"github.com/df07/go-smallpt/pkg/scene"
)

func TestNormalIntegrator(t *testing.T) {
	b := scene.NewBuilder()
	b.AddSphere(core.NewVec3(0, 0, -3), 1, material.NewDiffuse(core.NewColor(0.5, 0.5, 0.5)))
	sc, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	integrator := NewNormalIntegrator()
	sampler := core.NewSampler(1)

	tests := []struct {
		name     string
		ray      core.Ray
		expected core.Color
	}{
		{"front of sphere", core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), core.NewColor(0.5, 0.5, 1)},
		{"miss", core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), core.Color{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := integrator.Integrate(sc, sampler, tt.ray)
			if !colorNear(got, tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
