package core

import "math"

// BuildOrthonormalBasis derives a right-handed tangent frame {t, n, b} around the unit
// normal n, with n acting as local "up" (y axis).
func BuildOrthonormalBasis(n Vec3) (t, normal, b Vec3) {
	// Pick a reference axis that is far from parallel to n
	reference := NewVec3(0, 1, 0)
	if math.Abs(n.Y()) >= 0.9 {
		reference = NewVec3(0, 0, -1)
	}

	t, ok := SafeNormalize(n.Mul(-1).Cross(reference))
	if !ok {
		t = NewVec3(1, 0, 0)
	}
	b, ok = SafeNormalize(t.Cross(n))
	if !ok {
		b = NewVec3(0, 0, 1)
	}
	return t, n, b
}

// ShadingFrame is the local coordinate system at a hit point. Directions in local
// space use y as the surface normal.
type ShadingFrame struct {
	Point Vec3 // Hit position in world space
	N     Vec3 // Shading normal (local y)
	T     Vec3 // Tangent (local x)
	B     Vec3 // Bitangent (local z)
	Wo    Vec3 // Outgoing direction in local space
}

// NewShadingFrame builds the frame for a hit at point with the given normal and
// expresses the world-space outgoing direction woWorld in it.
func NewShadingFrame(point, normal, woWorld Vec3) ShadingFrame {
	t, n, b := BuildOrthonormalBasis(normal)
	frame := ShadingFrame{Point: point, N: n, T: t, B: b}
	frame.Wo = frame.WorldToLocal(woWorld)
	return frame
}

// WorldToLocal expresses a world-space vector in the frame's (t, n, b) coordinates
func (f ShadingFrame) WorldToLocal(v Vec3) Vec3 {
	return NewVec3(v.Dot(f.T), v.Dot(f.N), v.Dot(f.B))
}

// LocalToWorld maps a local-space vector back to world space
func (f ShadingFrame) LocalToWorld(v Vec3) Vec3 {
	return f.T.Mul(v.X()).Add(f.N.Mul(v.Y())).Add(f.B.Mul(v.Z()))
}
