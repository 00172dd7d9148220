package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 represents a 3D vector. Add, Sub, Mul, Dot, Cross, Len and Normalize come from mgl64.
type Vec3 = mgl64.Vec3

// Color is an RGB radiance triple
type Color = mgl64.Vec3

// Vec2 holds a pair of sample values
type Vec2 struct {
	X, Y float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{r, g, b}
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// MultiplyVec returns component-wise multiplication of two vectors
func MultiplyVec(a, b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// MaxComponent returns the largest of the three components
func MaxComponent(v Vec3) float64 {
	return math.Max(v[0], math.Max(v[1], v[2]))
}

// IsFinite reports whether no component is NaN or infinite
func IsFinite(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// SafeNormalize returns the unit vector in the direction of v.
// Zero-length and non-finite input is reported with ok == false instead of producing NaNs.
func SafeNormalize(v Vec3) (Vec3, bool) {
	length := v.Len()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Vec3{}, false
	}
	return v.Mul(1.0 / length), true
}

// Luminance returns the perceptual luminance of an RGB color
// Uses Rec. 709 weights: 0.2126*R + 0.7152*G + 0.0722*B
func Luminance(c Color) float64 {
	return 0.2126*c[0] + 0.7152*c[1] + 0.0722*c[2]
}

// Clamp returns a color with components clamped to [min, max]
func Clamp(c Color, minVal, maxVal float64) Color {
	return Color{
		mgl64.Clamp(c[0], minVal, maxVal),
		mgl64.Clamp(c[1], minVal, maxVal),
		mgl64.Clamp(c[2], minVal, maxVal),
	}
}

// GammaCorrect applies gamma correction to color values
func GammaCorrect(c Color, gamma float64) Color {
	invGamma := 1.0 / gamma
	return Color{
		math.Pow(math.Max(c[0], 0), invGamma),
		math.Pow(math.Max(c[1], 0), invGamma),
		math.Pow(math.Max(c[2], 0), invGamma),
	}
}
