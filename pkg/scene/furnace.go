package scene

import (
	"math"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/material"
)

// NewFurnaceScene creates a closed, emitter-free box of perfectly white diffuse walls
// with a sphere inside. An inward-facing white shell surrounds the box and catches rays
// that slip through a wall seam within TMin of the next wall. Every path bounces until
// the depth limit and the frame is black.
func NewFurnaceScene() (*Setup, error) {
	white := material.NewDiffuse(core.NewColor(1, 1, 1))

	b := NewBuilder()
	b.AddBox(core.NewVec3(0, 0, 0), 4, [6]material.Material{white, white, white, white, white, white})
	b.AddSphere(core.NewVec3(2, 1, 1.5), 0.75, white)
	b.Add(geometry.NewInwardSphere(core.NewVec3(2, 2, 2), 10), white)

	s, err := b.Build()
	if err != nil {
		return nil, err
	}

	return &Setup{
		Scene:           s,
		Camera:          geometry.NewPinholeCamera(core.NewVec3(2, 2, 3.5), core.NewVec3(0, 0, -1), 60*math.Pi/180),
		Width:           128,
		Height:          128,
		SamplesPerPixel: 4,
		MaxDepth:        16,
	}, nil
}
