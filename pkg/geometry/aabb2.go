package geometry

import (
	"math"

	"github.com/Fox32/vector-math/pkg/vmath"
)

// Aabb2 represents an axis-aligned bounding box in 2D space
type Aabb2 struct {
	Min vmath.Vec2 // Minimum corner
	Max vmath.Vec2 // Maximum corner
}

// NewAabb2 creates a new Aabb2 from min and max points
func NewAabb2(min, max vmath.Vec2) Aabb2 {
	return Aabb2{Min: min, Max: max}
}

// NewAabb2FromPoints creates an Aabb2 that bounds all given points
func NewAabb2FromPoints(points ...vmath.Vec2) Aabb2 {
	if len(points) == 0 {
		return Aabb2{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
	}

	return Aabb2{Min: min, Max: max}
}

// Union returns an Aabb2 that bounds both this box and another
func (aabb Aabb2) Union(other Aabb2) Aabb2 {
	return Aabb2{
		Min: vmath.Vec2{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
		},
		Max: vmath.Vec2{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
		},
	}
}

// Contains reports whether the point lies inside or on the box
func (aabb Aabb2) Contains(point vmath.Vec2) bool {
	return point.X >= aabb.Min.X && point.X <= aabb.Max.X &&
		point.Y >= aabb.Min.Y && point.Y <= aabb.Max.Y
}

// Intersects reports whether this box and another overlap
func (aabb Aabb2) Intersects(other Aabb2) bool {
	return aabb.Min.X <= other.Max.X && aabb.Max.X >= other.Min.X &&
		aabb.Min.Y <= other.Max.Y && aabb.Max.Y >= other.Min.Y
}

// Center returns the center point of the box
func (aabb Aabb2) Center() vmath.Vec2 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the box along each axis
func (aabb Aabb2) Size() vmath.Vec2 {
	return aabb.Max.Subtract(aabb.Min)
}

// IsValid returns true if min <= max on all axes
func (aabb Aabb2) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X && aabb.Min.Y <= aabb.Max.Y
}
