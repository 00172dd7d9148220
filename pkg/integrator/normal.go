package integrator

import (
	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/scene"
)

// NormalIntegrator visualizes surface normals, mapping [-1,1] to [0,1]. Misses are black.
type NormalIntegrator struct{}

// NewNormalIntegrator creates a normal visualization integrator
func NewNormalIntegrator() *NormalIntegrator {
	return &NormalIntegrator{}
}

// Integrate returns the color-coded normal of the first hit
func (n *NormalIntegrator) Integrate(sc *scene.Scene, sampler core.Sampler, ray core.Ray) core.Color {
	hit, isHit := sc.Hit(ray)
	if !isHit {
		return core.Color{}
	}
	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Mul(0.5)
}
