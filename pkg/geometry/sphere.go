package geometry

import (
	"math"

	"github.com/df07/go-smallpt/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Inward bool // Normals point toward the center
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// NewInwardSphere creates a sphere whose normals point toward its center, for use as
// an enclosing shell
func NewInwardSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Inward: true,
	}
}

// Hit tests if a ray intersects with the sphere. Assumes a unit ray direction.
func (s *Sphere) Hit(ray core.Ray) (*LocalHit, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Sub(s.Center)

	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := b*b - c

	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	t := -b - sqrtD
	if t < ray.TMin || t > ray.TMax {
		t = -b + sqrtD
		if t < ray.TMin || t > ray.TMax {
			return nil, false
		}
	}

	point := ray.At(t)
	normal, ok := core.SafeNormalize(point.Sub(s.Center))
	if !ok {
		// Zero radius sphere
		return nil, false
	}
	if s.Inward {
		normal = normal.Mul(-1)
	}

	return &LocalHit{
		T:      t,
		Point:  point,
		Normal: normal,
	}, true
}
