package scene

import (
	"math"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/material"
)

// NewDefaultScene creates three overlapping spheres on a ground plane lit by a white sky
func NewDefaultScene() (*Setup, error) {
	b := NewBuilder()

	b.AddSphere(core.NewVec3(0, 0, 0), 1, material.NewDiffuse(core.NewColor(0.65, 0.25, 0.2)))
	b.AddSphere(core.NewVec3(-1, 0, -1), 1, material.NewMirror(core.NewColor(0.9, 0.9, 0.9)))
	b.AddSphere(core.NewVec3(1, 0, 1), 1, material.NewDiffuse(core.NewColor(0.1, 0.2, 0.5)))

	// Ground, normal +y
	b.AddPlane(
		core.NewVec3(-10, -1, -10),
		core.NewVec3(0, 0, 20),
		core.NewVec3(20, 0, 0),
		material.NewDiffuse(core.NewColor(0.8, 0.8, 0.8)),
	)

	s, err := b.Build(WithBxDFFactory(SpecularAwareBxDF))
	if err != nil {
		return nil, err
	}

	return &Setup{
		Scene:           s,
		Camera:          geometry.NewPinholeCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 50*math.Pi/180),
		Width:           400,
		Height:          400,
		SamplesPerPixel: 64,
		MaxDepth:        50,
	}, nil
}
