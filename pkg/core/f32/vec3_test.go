package f32

import (
	"math"
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-sphere-core/pkg/core"
)

func TestFromVec3_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input core.Vec3
	}{
		{"Zero", core.NewVec3(0, 0, 0)},
		{"Integers", core.NewVec3(1, -2, 5)},
		{"Halves", core.NewVec3(0.5, 0.25, -0.125)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FromVec3(tt.input).Vec3()
			if result != tt.input {
				t.Errorf("Expected exact round trip of %v, got %v", tt.input, result)
			}
		})
	}
}

func TestVec3_MatchesDoublePrecision(t *testing.T) {
	a := core.NewVec3(1.25, -3.5, 2.75)
	b := core.NewVec3(-0.5, 4.0, 1.5)
	fa, fb := FromVec3(a), FromVec3(b)

	const tolerance = 1e-5
	if d := fa.Cross(fb).Vec3().Subtract(a.Cross(b)).Length(); d > tolerance {
		t.Errorf("Cross differs from float64 result by %g", d)
	}
	if d := math.Abs(float64(fa.Dot(fb)) - a.Dot(b)); d > tolerance {
		t.Errorf("Dot differs from float64 result by %g", d)
	}
	if d := math.Abs(float64(fa.Length()) - a.Length()); d > tolerance {
		t.Errorf("Length differs from float64 result by %g", d)
	}
	if d := Between(fa, fb).Vec3().Subtract(core.Between(a, b)).Length(); d > tolerance {
		t.Errorf("Between differs from float64 result by %g", d)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math32.Abs(v.Length()-1) > 1e-6 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if zero := NewVec3(0, 0, 0).Normalize(); zero != (Vec3{}) {
		t.Errorf("Expected zero vector to stay zero, got %v", zero)
	}
}

func TestVec3_IsNaN(t *testing.T) {
	if NewVec3(1, 2, 3).IsNaN() {
		t.Error("Expected finite vector to not be NaN")
	}
	if !NewVec3(0, math32.Sqrt(-1), 0).IsNaN() {
		t.Error("Expected square root of a negative to produce NaN")
	}
}

func TestFromRay(t *testing.T) {
	ray := FromRay(core.NewRay(core.NewVec3(1, 2, 3), core.NewVec3(0, 0, 1)))
	if p := ray.At(2); p != NewVec3(1, 2, 5) {
		t.Errorf("Expected (1,2,5), got %v", p)
	}
}
