package material

import (
	"github.com/df07/go-smallpt/pkg/core"
)

// BxDF describes how light scatters at a surface point. All directions are in the
// local shading frame, with y as the surface normal.
type BxDF interface {
	// SampleDirection proposes an incident direction for the frame's outgoing direction
	SampleDirection(frame core.ShadingFrame, sampler core.Sampler) BxDFSample
}

// BxDFSample contains the result of sampling a BxDF
type BxDFSample struct {
	F   core.Color // BxDF value
	Wi  core.Vec3  // Sampled incident direction in local space
	PDF float64    // Probability density of Wi; 1 by convention for delta distributions
}
