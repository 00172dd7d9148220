package material

import (
	"math"

	"github.com/df07/go-smallpt/pkg/core"
)

// Lambertian represents a perfectly diffuse BxDF
type Lambertian struct {
	Albedo core.Color
}

// NewLambertian creates a new lambertian BxDF
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// SampleDirection draws a cosine-weighted direction in the upper hemisphere.
// Consumes exactly one 2D sample.
func (l *Lambertian) SampleDirection(frame core.ShadingFrame, sampler core.Sampler) BxDFSample {
	wi, pdf := core.SampleCosineHemisphere(sampler.Get2D())

	return BxDFSample{
		F:   l.Albedo.Mul(1.0 / math.Pi),
		Wi:  wi,
		PDF: pdf,
	}
}
