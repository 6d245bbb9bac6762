package geometry

import "github.com/Fox32/vector-math/pkg/vmath"

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  vmath.Vec3
	Normal vmath.Vec3
}

// NewPlane creates a new plane. The normal is normalized.
func NewPlane(point, normal vmath.Vec3) Plane {
	return Plane{Point: point, Normal: normal.Normalize()}
}

// NewPlaneFromPoints creates a plane through three points, with the
// normal following the winding order of the points
func NewPlaneFromPoints(p0, p1, p2 vmath.Vec3) Plane {
	normal := p1.Subtract(p0).Cross(p2.Subtract(p0)).Normalize()
	return Plane{Point: p0, Normal: normal}
}

// DistanceTo returns the signed distance from the point to the plane.
// Positive on the side the normal points to.
func (p Plane) DistanceTo(point vmath.Vec3) float64 {
	return point.Subtract(p.Point).Dot(p.Normal)
}
