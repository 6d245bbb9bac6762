package geometry

import "github.com/Fox32/vector-math/pkg/vmath"

// Sphere represents a sphere defined by a center point and radius
type Sphere struct {
	Center vmath.Vec3
	Radius float64
}

// NewSphere creates a new sphere. The radius must be non-negative for
// intersection results to be meaningful; this is not validated.
func NewSphere(center vmath.Vec3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Contains reports whether the point lies inside or on the sphere
func (s Sphere) Contains(point vmath.Vec3) bool {
	return point.Subtract(s.Center).LengthSquared() <= s.Radius*s.Radius
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s Sphere) BoundingBox() Aabb3 {
	radius := vmath.NewVec3(s.Radius, s.Radius, s.Radius)
	return NewAabb3(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
