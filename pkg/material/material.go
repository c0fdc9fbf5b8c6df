// Package material holds the surface description attached to a sphere.
// Geometry stores and returns these values but never reads them.
package material

import (
	"fmt"

	"github.com/df07/go-sphere-core/pkg/core"
)

// Kind identifies how a renderer should shade a surface
type Kind int

const (
	Lambertian Kind = iota
	Metal
	Dielectric
	Emissive
)

func (k Kind) String() string {
	switch k {
	case Lambertian:
		return "lambertian"
	case Metal:
		return "metal"
	case Dielectric:
		return "dielectric"
	case Emissive:
		return "emissive"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Material is a plain comparable value describing a surface.
// Fields not used by a kind are left at zero.
type Material struct {
	Kind            Kind
	Albedo          core.Vec3 // Surface color
	Fuzzness        float64   // Metal only: 0.0 = perfect mirror, 1.0 = very fuzzy
	RefractiveIndex float64   // Dielectric only: e.g. 1.5 for glass
	Emission        core.Vec3 // Emissive only: emitted light color/intensity
}

// NewLambertian creates a diffuse material
func NewLambertian(albedo core.Vec3) Material {
	return Material{Kind: Lambertian, Albedo: albedo}
}

// NewMetal creates a metallic material
func NewMetal(albedo core.Vec3, fuzzness float64) Material {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return Material{Kind: Metal, Albedo: albedo, Fuzzness: fuzzness}
}

// NewDielectric creates a transparent material like glass
func NewDielectric(refractiveIndex float64) Material {
	return Material{Kind: Dielectric, Albedo: core.NewVec3(1, 1, 1), RefractiveIndex: refractiveIndex}
}

// NewEmissive creates a light-emitting material
func NewEmissive(emission core.Vec3) Material {
	return Material{Kind: Emissive, Emission: emission}
}
