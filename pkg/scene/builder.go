package scene

import (
	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/material"
)

// Builder accumulates shapes together with their materials so the two lists stay parallel
type Builder struct {
	shapes    []geometry.Shape
	materials []material.Material
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a shape with its material and returns the primitive index
func (b *Builder) Add(shape geometry.Shape, m material.Material) int {
	b.shapes = append(b.shapes, shape)
	b.materials = append(b.materials, m)
	return len(b.shapes) - 1
}

// AddSphere adds a sphere
func (b *Builder) AddSphere(center core.Vec3, radius float64, m material.Material) int {
	return b.Add(geometry.NewSphere(center, radius), m)
}

// AddPlane adds a bounded plane. The normal is normalize(right × up).
func (b *Builder) AddPlane(corner, right, up core.Vec3, m material.Material) int {
	return b.Add(geometry.NewPlane(corner, right, up), m)
}

// AddBox adds the six inward-facing walls of an axis-aligned box from min to min+size.
// Walls are added in the order floor, ceiling, back, front, left, right.
func (b *Builder) AddBox(min core.Vec3, size float64, walls [6]material.Material) {
	x := core.NewVec3(size, 0, 0)
	y := core.NewVec3(0, size, 0)
	z := core.NewVec3(0, 0, size)

	b.AddPlane(min, z, x, walls[0])        // floor, normal +y
	b.AddPlane(min.Add(y), x, z, walls[1]) // ceiling, normal -y
	b.AddPlane(min.Add(z), y, x, walls[2]) // back, normal -z
	b.AddPlane(min, x, y, walls[3])        // front, normal +z
	b.AddPlane(min, y, z, walls[4])        // left, normal +x
	b.AddPlane(min.Add(x), z, y, walls[5]) // right, normal -x
}

// Build creates the scene
func (b *Builder) Build(opts ...Option) (*Scene, error) {
	return New(b.shapes, b.materials, opts...)
}
