package geometry

import (
	"math"

	"github.com/df07/go-smallpt/pkg/core"
)

// parallelEpsilon is the smallest |d·n| treated as a crossing
const parallelEpsilon = 1e-8

// Plane is a bounded parallelogram spanned by two edge vectors from a corner.
// Its normal is normalize(Right × Up).
type Plane struct {
	Corner core.Vec3 // One corner of the plane
	Right  core.Vec3 // First edge vector
	Up     core.Vec3 // Second edge vector
	Normal core.Vec3 // Derived normal, zero for degenerate edges

	rightDir, upDir core.Vec3
	rightLen, upLen float64
}

// NewPlane creates a bounded plane from a corner point and two edge vectors
func NewPlane(corner, right, up core.Vec3) *Plane {
	normal, _ := core.SafeNormalize(right.Cross(up))
	rightDir, _ := core.SafeNormalize(right)
	upDir, _ := core.SafeNormalize(up)

	return &Plane{
		Corner:   corner,
		Right:    right,
		Up:       up,
		Normal:   normal,
		rightDir: rightDir,
		upDir:    upDir,
		rightLen: right.Len(),
		upLen:    up.Len(),
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray) (*LocalHit, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel ray, or degenerate plane with a zero normal
	if math.Abs(denominator) < parallelEpsilon {
		return nil, false
	}

	t := -ray.Origin.Sub(p.Corner).Dot(p.Normal) / denominator
	if t < ray.TMin || t > ray.TMax {
		return nil, false
	}

	point := ray.At(t)

	// Project onto the edge directions to bound the infinite plane
	local := point.Sub(p.Corner)
	dx := local.Dot(p.rightDir)
	dy := local.Dot(p.upDir)
	if dx < 0 || dx > p.rightLen || dy < 0 || dy > p.upLen {
		return nil, false
	}

	return &LocalHit{
		T:      t,
		Point:  point,
		Normal: p.Normal,
	}, true
}
