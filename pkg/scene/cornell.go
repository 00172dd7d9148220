package scene

import (
	"math"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/material"
)

// NewCornellScene creates a Cornell box with an open front, a ceiling light,
// a mirror sphere and a diffuse sphere
func NewCornellScene() (*Setup, error) {
	const boxSize = 5.55

	white := material.NewDiffuse(core.NewColor(0.73, 0.73, 0.73))
	red := material.NewDiffuse(core.NewColor(0.65, 0.05, 0.05))
	green := material.NewDiffuse(core.NewColor(0.12, 0.45, 0.15))

	b := NewBuilder()
	x := core.NewVec3(boxSize, 0, 0)
	y := core.NewVec3(0, boxSize, 0)
	z := core.NewVec3(0, 0, boxSize)
	origin := core.NewVec3(0, 0, 0)

	b.AddPlane(origin, z, x, white)        // floor
	b.AddPlane(y, x, z, white)             // ceiling
	b.AddPlane(z, y, x, white)             // back wall
	b.AddPlane(origin, y, z, red)          // left wall (x=0)
	b.AddPlane(origin.Add(x), z, y, green) // right wall (x=boxSize)

	// Ceiling light, slightly below the ceiling and facing down
	lightSize := 1.3
	lightOffset := (boxSize - lightSize) / 2.0
	b.AddPlane(
		core.NewVec3(lightOffset, boxSize-0.01, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		material.NewEmissive(core.NewColor(15, 15, 15)),
	)

	b.AddSphere(core.NewVec3(1.85, 0.825, 1.69), 0.825, material.NewMirror(core.NewColor(0.9, 0.9, 0.9)))
	b.AddSphere(core.NewVec3(3.70, 0.9, 3.51), 0.9, white)

	// Black background: the box is lit by its ceiling light only
	s, err := b.Build(
		WithBackground(core.NewColor(0, 0, 0)),
		WithBxDFFactory(SpecularAwareBxDF),
	)
	if err != nil {
		return nil, err
	}

	return &Setup{
		Scene:           s,
		Camera:          geometry.NewPinholeCamera(core.NewVec3(2.78, 2.78, -8), core.NewVec3(0, 0, 1), 40*math.Pi/180),
		Width:           400,
		Height:          400,
		SamplesPerPixel: 150,
		MaxDepth:        40,
	}, nil
}
