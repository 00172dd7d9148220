package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SphericalToCartesian converts polar angle theta (measured from +y) and azimuth phi
// to a unit direction in local space
func SphericalToCartesian(theta, phi float64) Vec3 {
	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)
	return NewVec3(cosPhi*sinTheta, cosTheta, sinPhi*sinTheta)
}

// SampleCosineHemisphere maps a 2D sample to a cosine-weighted direction around local +y.
// Returns the direction and its pdf cos(θ)/π.
func SampleCosineHemisphere(sample Vec2) (Vec3, float64) {
	theta := 0.5 * math.Acos(mgl64.Clamp(1.0-2.0*sample.X, -1, 1))
	phi := 2.0 * math.Pi * sample.Y
	return SphericalToCartesian(theta, phi), math.Cos(theta) / math.Pi
}

// CosTheta returns the cosine between a local direction and the local normal
func CosTheta(v Vec3) float64 {
	return v.Y()
}

// AbsCosTheta returns |cos θ| for a local direction
func AbsCosTheta(v Vec3) float64 {
	return math.Abs(v.Y())
}

// Reflect mirrors v about n: -v + 2(v·n)n. Both point away from the surface.
func Reflect(v, n Vec3) Vec3 {
	return v.Mul(-1).Add(n.Mul(2 * v.Dot(n)))
}
