package geometry

import "github.com/Fox32/vector-math/pkg/vmath"

// Quad represents a four-sided surface defined by its corner points.
// It is treated as the two triangles (p0,p1,p2) and (p3,p0,p2) for
// intersection testing; the corners should be planar and convex for
// the result to correspond to a visual quad, but this is not
// validated.
type Quad struct {
	P0, P1, P2, P3 vmath.Vec3
}

// NewQuad creates a new quad from four corner points
func NewQuad(p0, p1, p2, p3 vmath.Vec3) Quad {
	return Quad{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Triangles returns the two triangles sharing the p0-p2 diagonal that
// make up the quad
func (q Quad) Triangles() (Triangle, Triangle) {
	return NewTriangle(q.P0, q.P1, q.P2), NewTriangle(q.P3, q.P0, q.P2)
}

// Normal returns the unit normal of the quad's first triangle
func (q Quad) Normal() vmath.Vec3 {
	first, _ := q.Triangles()
	return first.Normal()
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q Quad) BoundingBox() Aabb3 {
	return NewAabb3FromPoints(q.P0, q.P1, q.P2, q.P3)
}
