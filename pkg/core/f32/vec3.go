// Package f32 provides single-precision versions of the core vector and ray
// types. Sphere queries evaluated with them follow the float32 arithmetic a
// GPU kernel would use, so results can be compared against the float64 path.
package f32

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-sphere-core/pkg/core"
)

// Vec3 represents a single-precision 3D point or direction
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// FromVec3 narrows a float64 vector to single precision
func FromVec3(v core.Vec3) Vec3 {
	return Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Vec3 widens the vector back to float64
func (v Vec3) Vec3() core.Vec3 {
	return core.NewVec3(float64(v.X), float64(v.Y), float64(v.Z))
}

// Between returns the displacement from one point to another (to - from)
func Between(from, to Vec3) Vec3 {
	return Vec3{to.X - from.X, to.Y - from.Y, to.Z - from.Z}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vec3) Multiply(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// IsNaN reports whether any component is NaN
func (v Vec3) IsNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsNaN(v.Z)
}
