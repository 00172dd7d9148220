package material

import "github.com/df07/go-smallpt/pkg/core"

// Material holds the per-primitive reflectance and emission parameters
type Material struct {
	Diffuse  core.Color
	Specular core.Color
	Emission core.Color
}

// New creates a material
func New(diffuse, specular, emission core.Color) Material {
	return Material{
		Diffuse:  diffuse,
		Specular: specular,
		Emission: emission,
	}
}

// NewDiffuse creates a non-emissive matte material
func NewDiffuse(albedo core.Color) Material {
	return Material{Diffuse: albedo}
}

// NewEmissive creates a light source material
func NewEmissive(emission core.Color) Material {
	return Material{Emission: emission}
}

// NewMirror creates a perfectly specular material with the given reflectance
func NewMirror(reflectance core.Color) Material {
	return Material{Specular: reflectance}
}

// IsEmissive reports whether all three emission channels are strictly positive.
// A material emitting in only some channels counts as non-emissive.
func (m Material) IsEmissive() bool {
	return m.Emission.X() > 0 && m.Emission.Y() > 0 && m.Emission.Z() > 0
}
