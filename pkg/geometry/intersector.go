package geometry

import "github.com/df07/go-smallpt/pkg/core"

// Intersector finds the nearest hit among a list of shapes by linear scan.
// It is read-only after construction and safe for concurrent use.
type Intersector struct {
	shapes []Shape
}

// NewIntersector creates an intersector over shapes. Shape indices are preserved
// and reported as GlobalHit.PrimIndex.
func NewIntersector(shapes []Shape) *Intersector {
	return &Intersector{shapes: shapes}
}

// Hit returns the hit with the smallest t in [ray.TMin, ray.TMax] over all shapes
func (in *Intersector) Hit(ray core.Ray) (*GlobalHit, bool) {
	if ray.TMin > ray.TMax {
		return nil, false
	}

	var closest *GlobalHit
	closestSoFar := ray.TMax

	for i, shape := range in.shapes {
		hit, isHit := shape.Hit(ray)
		if !isHit || hit.T >= closestSoFar {
			continue
		}
		closestSoFar = hit.T
		closest = &GlobalHit{LocalHit: *hit, PrimIndex: i}
	}

	return closest, closest != nil
}

// Len returns the number of shapes
func (in *Intersector) Len() int {
	return len(in.shapes)
}
