package core

const (
	// DefaultTMin keeps secondary rays from re-hitting the surface they leave.
	DefaultTMin = 1e-3
	// DefaultTMax is effectively unbounded for scene-scale geometry.
	DefaultTMax = 1e9
)

// Ray represents a ray with an origin, a unit direction and a valid parameter range
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
	TMax      float64
}

// NewRay creates a new ray with the default parameter range
func NewRay(origin, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction,
		TMin:      DefaultTMin,
		TMax:      DefaultTMax,
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
