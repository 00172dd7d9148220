package material

import (
	"github.com/df07/go-smallpt/pkg/core"
)

// IdealSpecular is a perfect mirror. Its distribution is a delta, so the sample is
// deterministic and reported with pdf 1.
type IdealSpecular struct {
	Reflectance core.Color
}

// NewIdealSpecular creates a mirror with the given reflectance
func NewIdealSpecular(reflectance core.Color) *IdealSpecular {
	return &IdealSpecular{Reflectance: reflectance}
}

// SampleDirection reflects the outgoing direction about the normal. Consumes no samples.
func (s *IdealSpecular) SampleDirection(frame core.ShadingFrame, sampler core.Sampler) BxDFSample {
	wi := core.Reflect(frame.Wo, core.NewVec3(0, 1, 0))

	cosTheta := core.AbsCosTheta(wi)
	if cosTheta == 0 {
		// Grazing reflection carries no energy
		return BxDFSample{Wi: wi, PDF: 1}
	}

	return BxDFSample{
		F:   s.Reflectance.Mul(1.0 / cosTheta),
		Wi:  wi,
		PDF: 1,
	}
}
