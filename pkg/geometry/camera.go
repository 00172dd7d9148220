package geometry

import (
	"math"

	"github.com/df07/go-smallpt/pkg/core"
)

// Camera generates primary rays for sensor coordinates in [-1, 1]
type Camera interface {
	GetRay(u, v float64) core.Ray
}

// PinholeCamera projects a sensor plane through a pinhole placed one focal length in
// front of it. The image on the sensor is inverted, so callers map pixel (0, 0) to
// sensor (+aspect, -1) to get an upright frame.
type PinholeCamera struct {
	Position core.Vec3 // Sensor center
	Forward  core.Vec3 // Viewing direction
	Right    core.Vec3 // Sensor right direction
	Up       core.Vec3 // Sensor up direction
	Focal    float64   // Distance from sensor to pinhole
}

// NewPinholeCamera creates a camera at position looking along forward with vertical
// field of view fov in radians
func NewPinholeCamera(position, forward core.Vec3, fov float64) *PinholeCamera {
	forward, ok := core.SafeNormalize(forward)
	if !ok {
		forward = core.NewVec3(0, 0, -1)
	}

	right, ok := core.SafeNormalize(forward.Cross(core.NewVec3(0, 1, 0)))
	if !ok {
		// Looking straight up or down
		right = core.NewVec3(1, 0, 0)
	}
	up, _ := core.SafeNormalize(right.Cross(forward))

	return &PinholeCamera{
		Position: position,
		Forward:  forward,
		Right:    right,
		Up:       up,
		Focal:    1.0 / math.Tan(0.5*fov),
	}
}

// GetRay returns the ray from sensor point (u, v) through the pinhole
func (c *PinholeCamera) GetRay(u, v float64) core.Ray {
	sensor := c.Position.Add(c.Right.Mul(u)).Add(c.Up.Mul(v))
	pinhole := c.Position.Add(c.Forward.Mul(c.Focal))
	direction, _ := core.SafeNormalize(pinhole.Sub(sensor))
	return core.NewRay(sensor, direction)
}
