package f32

import "github.com/df07/go-sphere-core/pkg/core"

// Ray represents a single-precision ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// FromRay narrows a float64 ray to single precision
func FromRay(r core.Ray) Ray {
	return Ray{Origin: FromVec3(r.Origin), Direction: FromVec3(r.Direction)}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
