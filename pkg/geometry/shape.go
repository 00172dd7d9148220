package geometry

import "github.com/df07/go-smallpt/pkg/core"

// LocalHit contains information about a ray intersection with a single shape
type LocalHit struct {
	T      float64   // Parameter t along the ray
	Point  core.Vec3 // Point of intersection
	Normal core.Vec3 // Geometric surface normal at intersection
}

// GlobalHit is a LocalHit tagged with the index of the primitive that produced it.
// PrimIndex is the join key into the scene's material table.
type GlobalHit struct {
	LocalHit
	PrimIndex int
}
