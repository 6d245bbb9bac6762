package geometry

import (
	"math"

	"github.com/Fox32/vector-math/pkg/vmath"
)

// epsilon is the tolerance used by the intersection tests to reject
// near-parallel rays and to admit hits on primitive boundaries.
const epsilon = 1e-5

// Ray represents a ray with an origin and direction.
//
// The direction does not need to be unit length; every distance t
// returned by the intersection methods is expressed in multiples of
// the direction's length. Callers comparing distances across rays
// must normalize the directions first.
type Ray struct {
	Origin    vmath.Vec3
	Direction vmath.Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction vmath.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) vmath.Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// IntersectSphere returns the distance to the nearest intersection
// with the sphere, or false if the ray misses it.
//
// Uses the geometric method rather than the quadratic formula: it
// needs a single square root and stays stable at grazing incidence.
// When the origin is inside the sphere the exit distance is returned.
func (r Ray) IntersectSphere(sphere Sphere) (float64, bool) {
	l := sphere.Center.Subtract(r.Origin)
	s := l.Dot(r.Direction)
	l2 := l.Dot(l)
	r2 := sphere.Radius * sphere.Radius

	if s < 0 && l2 > r2 {
		// Sphere is behind the origin and the origin is outside
		return 0, false
	}

	// Squared distance from the sphere center to the ray line
	m2 := l2 - s*s
	if m2 > r2 {
		return 0, false
	}

	q := math.Sqrt(r2 - m2)
	if l2 > r2 {
		return s - q, true
	}
	return s + q, true
}

// IntersectTriangle returns the distance to the intersection with the
// triangle's plane inside the triangle bounds, or false if the ray
// misses it, using the Möller-Trumbore algorithm.
//
// The returned t is not clamped to t >= 0: a triangle behind the ray
// origin still reports its (negative) plane distance. Callers wanting
// ray rather than line semantics must reject negative t themselves.
func (r Ray) IntersectTriangle(triangle Triangle) (float64, bool) {
	e1 := triangle.P1.Subtract(triangle.P0)
	e2 := triangle.P2.Subtract(triangle.P0)

	q := r.Direction.Cross(e2)
	a := e1.Dot(q)

	// Near-zero determinant: ray is parallel to the triangle plane.
	// Degenerate (collinear) triangles land here too.
	if a > -epsilon && a < epsilon {
		return 0, false
	}

	f := 1.0 / a
	s := r.Origin.Subtract(triangle.P0)
	u := f * s.Dot(q)
	if u < 0 {
		return 0, false
	}

	sxe1 := s.Cross(e1)
	v := f * r.Direction.Dot(sxe1)
	if v < -epsilon || u+v > 1+epsilon {
		return 0, false
	}

	return f * e2.Dot(sxe1), true
}

// IntersectQuad returns the distance to the intersection with the
// quad, or false if the ray misses it.
//
// The quad is decomposed into the triangles (p0,p1,p2) and (p3,p0,p2)
// sharing the p0-p2 diagonal; the first triangle hit wins. For a
// planar convex quad at most one of the halves can be hit.
func (r Ray) IntersectQuad(quad Quad) (float64, bool) {
	first, second := quad.Triangles()
	if t, ok := r.IntersectTriangle(first); ok {
		return t, true
	}
	return r.IntersectTriangle(second)
}

// IntersectAabb3 returns the distance to the box entry point using the
// slab method, or false if the ray misses it.
//
// The entry distance is negative when the ray origin is inside the
// box; like IntersectTriangle this keeps line semantics and leaves the
// sign check to the caller.
func (r Ray) IntersectAabb3(aabb Aabb3) (float64, bool) {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		var minVal, maxVal, origin, direction float64
		switch axis {
		case 0:
			minVal, maxVal = aabb.Min.X, aabb.Max.X
			origin, direction = r.Origin.X, r.Direction.X
		case 1:
			minVal, maxVal = aabb.Min.Y, aabb.Max.Y
			origin, direction = r.Origin.Y, r.Direction.Y
		case 2:
			minVal, maxVal = aabb.Min.Z, aabb.Max.Z
			origin, direction = r.Origin.Z, r.Direction.Z
		}

		if direction == 0 {
			// Parallel to this slab: hit is only possible if the
			// origin already lies between the two planes
			if origin < minVal || origin > maxVal {
				return 0, false
			}
			continue
		}

		t1 := (minVal - origin) / direction
		t2 := (maxVal - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tNear = math.Max(tNear, t1)
		tFar = math.Min(tFar, t2)

		if tNear > tFar || tFar < 0 {
			return 0, false
		}
	}

	return tNear, true
}

// IntersectPlane returns the distance to the intersection with the
// infinite plane, or false if the ray is parallel to it. The same
// permissive sign convention as IntersectTriangle applies.
func (r Ray) IntersectPlane(plane Plane) (float64, bool) {
	denominator := r.Direction.Dot(plane.Normal)
	if math.Abs(denominator) < epsilon {
		return 0, false
	}
	t := plane.Point.Subtract(r.Origin).Dot(plane.Normal) / denominator
	return t, true
}
