package geometry

import (
	"math"

	"github.com/Fox32/vector-math/pkg/vmath"
)

// Aabb3 represents an axis-aligned bounding box in 3D space
type Aabb3 struct {
	Min vmath.Vec3 // Minimum corner
	Max vmath.Vec3 // Maximum corner
}

// NewAabb3 creates a new Aabb3 from min and max points. Min must be
// componentwise less than or equal to max.
func NewAabb3(min, max vmath.Vec3) Aabb3 {
	return Aabb3{Min: min, Max: max}
}

// NewAabb3FromPoints creates an Aabb3 that bounds all given points
func NewAabb3FromPoints(points ...vmath.Vec3) Aabb3 {
	if len(points) == 0 {
		return Aabb3{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return Aabb3{Min: min, Max: max}
}

// Union returns an Aabb3 that bounds both this box and another
func (aabb Aabb3) Union(other Aabb3) Aabb3 {
	min := vmath.Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := vmath.Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return Aabb3{Min: min, Max: max}
}

// Contains reports whether the point lies inside or on the box
func (aabb Aabb3) Contains(point vmath.Vec3) bool {
	return point.X >= aabb.Min.X && point.X <= aabb.Max.X &&
		point.Y >= aabb.Min.Y && point.Y <= aabb.Max.Y &&
		point.Z >= aabb.Min.Z && point.Z <= aabb.Max.Z
}

// Intersects reports whether this box and another overlap
func (aabb Aabb3) Intersects(other Aabb3) bool {
	return aabb.Min.X <= other.Max.X && aabb.Max.X >= other.Min.X &&
		aabb.Min.Y <= other.Max.Y && aabb.Max.Y >= other.Min.Y &&
		aabb.Min.Z <= other.Max.Z && aabb.Max.Z >= other.Min.Z
}

// Center returns the center point of the box
func (aabb Aabb3) Center() vmath.Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the box along each axis
func (aabb Aabb3) Size() vmath.Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// Expand returns a box grown by the given amount in all directions
func (aabb Aabb3) Expand(amount float64) Aabb3 {
	expansion := vmath.NewVec3(amount, amount, amount)
	return Aabb3{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}

// IsValid returns true if min <= max on all axes
func (aabb Aabb3) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
