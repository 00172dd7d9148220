package geometry

import (
	"github.com/df07/go-smallpt/pkg/core"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the nearest intersection with t in [ray.TMin, ray.TMax]
	Hit(ray core.Ray) (*LocalHit, bool)
}
