package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-sphere-core/pkg/core/f32"
)

// Sphere32 is the single-precision counterpart of Sphere. It evaluates the
// same formulas in float32, matching what a GPU kernel computes.
type Sphere32[M any] struct {
	position f32.Vec3
	radius   float32
	material M
}

// NewSphere32 creates a new single-precision sphere
func NewSphere32[M any](position f32.Vec3, radius float32, material M) Sphere32[M] {
	return Sphere32[M]{
		position: position,
		radius:   radius,
		material: material,
	}
}

func (s Sphere32[M]) Radius() float32 {
	return s.radius
}

func (s Sphere32[M]) Position() f32.Vec3 {
	return s.position
}

func (s Sphere32[M]) Material() M {
	return s.material
}

// CenterDistance returns the perpendicular distance from the center to the line through the ray
func (s Sphere32[M]) CenterDistance(ray f32.Ray) float32 {
	oc := f32.Between(ray.Origin, s.position)
	return oc.Cross(ray.Direction).Length()
}

// HitsRay has the same line semantics and strict comparison as Sphere.HitsRay
func (s Sphere32[M]) HitsRay(ray f32.Ray) bool {
	return s.CenterDistance(ray) < s.radius
}

// IntersectionPoint has the same precondition as Sphere.IntersectionPoint
func (s Sphere32[M]) IntersectionPoint(ray f32.Ray) f32.Vec3 {
	oc := f32.Between(ray.Origin, s.position)
	centerDistance := oc.Cross(ray.Direction).Length()
	positionDistance := oc.Dot(ray.Direction)

	checkHit(float64(centerDistance), float64(s.radius))

	offset := math32.Sqrt(s.radius*s.radius - centerDistance*centerDistance)

	return ray.Origin.Add(ray.Direction.Multiply(positionDistance - offset))
}
