// Package camera implements the slowly orbiting scene camera.
package camera

import (
	stdmath "math"

	"github.com/prestream/prestream/pkg/math"
)

// Orbit circles the camera around a target point at a fixed radius and
// height, advancing the orbit angle with elapsed time.
type Orbit struct {
	target math.Vec3
	radius float32
	height float32
	speed  float32 // radians per second
	angle  float32

	fovY   float32
	aspect float32
	near   float32
	far    float32
}

// NewOrbit creates an orbiting camera looking at target.
func NewOrbit(target math.Vec3, radius, height, speed float32) *Orbit {
	return &Orbit{
		target: target,
		radius: radius,
		height: height,
		speed:  speed,
		fovY:   stdmath.Pi / 4,
		aspect: 16.0 / 9.0,
		near:   0.1,
		far:    100.0,
	}
}

// SetAspect updates the projection aspect ratio.
func (c *Orbit) SetAspect(aspect float32) {
	c.aspect = aspect
}

// Advance moves the orbit forward by dt seconds.
func (c *Orbit) Advance(dt float32) {
	c.angle += c.speed * dt
	if c.angle > 2*stdmath.Pi {
		c.angle -= 2 * stdmath.Pi
	}
}

// Position returns the current eye position on the orbit.
func (c *Orbit) Position() math.Vec3 {
	sin, cos := stdmath.Sincos(float64(c.angle))
	return math.Vec3{
		X: c.target.X + c.radius*float32(cos),
		Y: c.target.Y + c.height,
		Z: c.target.Z + c.radius*float32(sin),
	}
}

// ViewMatrix returns the world-to-view transform for the current position.
func (c *Orbit) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.target, math.Vec3{Y: 1})
}

// Transform returns the combined projection * view matrix.
func (c *Orbit) Transform() math.Mat4 {
	return math.Perspective(c.fovY, c.aspect, c.near, c.far).Mul(c.ViewMatrix())
}
