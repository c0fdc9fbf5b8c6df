package geometry

import (
	"math"

	"github.com/df07/go-sphere-core/pkg/core"
	"github.com/df07/go-sphere-core/pkg/core/f32"
)

// Sphere represents an immutable sphere primitive. It holds no pointers, so
// it can be copied freely and queried from any number of goroutines at once.
// M is the material type; it is stored by value and never inspected.
type Sphere[M any] struct {
	position core.Vec3
	radius   float64
	material M
}

// NewSphere creates a new sphere. The radius must be positive; it is not checked.
func NewSphere[M any](position core.Vec3, radius float64, material M) Sphere[M] {
	return Sphere[M]{
		position: position,
		radius:   radius,
		material: material,
	}
}

func (s Sphere[M]) Radius() float64 {
	return s.radius
}

func (s Sphere[M]) Position() core.Vec3 {
	return s.position
}

func (s Sphere[M]) Material() M {
	return s.material
}

// CenterDistance returns the perpendicular distance from the sphere center to
// the infinite line through the ray. The ray direction must be unit length.
func (s Sphere[M]) CenterDistance(ray core.Ray) float64 {
	oc := core.Between(ray.Origin, s.position)
	return oc.Cross(ray.Direction).Length()
}

// HitsRay reports whether the line through the ray passes strictly closer
// than the radius to the sphere center.
//
// The whole line is tested, not just the forward half: a sphere behind the
// ray origin is reported as hit. A tangent line (distance == radius) is a miss.
func (s Sphere[M]) HitsRay(ray core.Ray) bool {
	return s.CenterDistance(ray) < s.radius
}

// IntersectionPoint returns the nearer of the two points where the line
// through the ray crosses the sphere surface. That point may lie behind the
// ray origin.
//
// Callers must check HitsRay first. For a ray that misses, the half-chord is
// the square root of a negative number and every component of the result is NaN.
func (s Sphere[M]) IntersectionPoint(ray core.Ray) core.Vec3 {
	oc := core.Between(ray.Origin, s.position)
	centerDistance := oc.Cross(ray.Direction).Length()
	positionDistance := oc.Dot(ray.Direction)

	checkHit(centerDistance, s.radius)

	offset := math.Sqrt(s.radius*s.radius - centerDistance*centerDistance)

	return ray.Origin.Add(ray.Direction.Multiply(positionDistance - offset))
}

// To32 converts the sphere to single precision
func (s Sphere[M]) To32() Sphere32[M] {
	return NewSphere32(f32.FromVec3(s.position), float32(s.radius), s.material)
}
