package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/material"
)

// ErrMaterialCountMismatch is returned when the material table is not parallel to the shapes
var ErrMaterialCountMismatch = errors.New("scene: number of materials does not match number of primitives")

// BxDFFactory builds the BxDF used to shade a primitive with material m
type BxDFFactory func(m material.Material) material.BxDF

// LambertianBxDF shades every primitive with a Lambertian BxDF built from its diffuse color
func LambertianBxDF(m material.Material) material.BxDF {
	return material.NewLambertian(m.Diffuse)
}

// SpecularAwareBxDF shades primitives with a black diffuse color and a non-black specular
// color as ideal mirrors, and everything else as Lambertian.
func SpecularAwareBxDF(m material.Material) material.BxDF {
	if m.Diffuse == (core.Color{}) && m.Specular != (core.Color{}) {
		return material.NewIdealSpecular(m.Specular)
	}
	return material.NewLambertian(m.Diffuse)
}

// Option configures a Scene
type Option func(*Scene)

// WithBackground sets the radiance returned for rays that escape the scene
func WithBackground(c core.Color) Option {
	return func(s *Scene) {
		s.background = c
	}
}

// WithBxDFFactory overrides how materials are turned into BxDFs
func WithBxDFFactory(f BxDFFactory) Option {
	return func(s *Scene) {
		s.bxdfFactory = f
	}
}

// Scene owns the primitives, the parallel material table and the intersector over them.
// It is read-only after construction and may be shared by any number of goroutines.
type Scene struct {
	shapes      []geometry.Shape
	materials   []material.Material
	intersector *geometry.Intersector
	background  core.Color
	bxdfFactory BxDFFactory
}

// New creates a scene. materials[i] describes shapes[i].
func New(shapes []geometry.Shape, materials []material.Material, opts ...Option) (*Scene, error) {
	if len(shapes) != len(materials) {
		return nil, fmt.Errorf("%w: %d primitives, %d materials", ErrMaterialCountMismatch, len(shapes), len(materials))
	}

	s := &Scene{
		shapes:      shapes,
		materials:   materials,
		intersector: geometry.NewIntersector(shapes),
		background:  core.NewColor(1, 1, 1),
		bxdfFactory: LambertianBxDF,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// MustNew is like New but panics on error
func MustNew(shapes []geometry.Shape, materials []material.Material, opts ...Option) *Scene {
	s, err := New(shapes, materials, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Hit returns the nearest intersection along ray
func (s *Scene) Hit(ray core.Ray) (*geometry.GlobalHit, bool) {
	return s.intersector.Hit(ray)
}

// HasEmission reports whether primitive idx is a light source
func (s *Scene) HasEmission(idx int) bool {
	return s.materials[idx].IsEmissive()
}

// Emission returns the emitted radiance of primitive idx
func (s *Scene) Emission(idx int) core.Color {
	return s.materials[idx].Emission
}

// ShadingFrame builds the local frame at hit with woWorld as the outgoing direction
func (s *Scene) ShadingFrame(woWorld core.Vec3, hit *geometry.GlobalHit) core.ShadingFrame {
	return core.NewShadingFrame(hit.Point, hit.Normal, woWorld)
}

// BxDF returns the BxDF for primitive idx
func (s *Scene) BxDF(idx int) material.BxDF {
	return s.bxdfFactory(s.materials[idx])
}

// Shape returns primitive idx
func (s *Scene) Shape(idx int) geometry.Shape {
	return s.shapes[idx]
}

// Material returns the material of primitive idx
func (s *Scene) Material(idx int) material.Material {
	return s.materials[idx]
}

// Background returns the radiance carried by rays that leave the scene
func (s *Scene) Background() core.Color {
	return s.background
}

// PrimitiveCount returns the number of primitives in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.shapes)
}

// LightCount returns the number of emissive primitives
func (s *Scene) LightCount() int {
	count := 0
	for i := range s.materials {
		if s.HasEmission(i) {
			count++
		}
	}
	return count
}
