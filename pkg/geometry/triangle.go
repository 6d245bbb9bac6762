package geometry

import "github.com/Fox32/vector-math/pkg/vmath"

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	P0, P1, P2 vmath.Vec3
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(p0, p1, p2 vmath.Vec3) Triangle {
	return Triangle{P0: p0, P1: p1, P2: p2}
}

// Normal returns the unit normal of the triangle's plane, following
// the winding order of the vertices. Degenerate (collinear) triangles
// return the zero vector.
func (t Triangle) Normal() vmath.Vec3 {
	edge1 := t.P1.Subtract(t.P0)
	edge2 := t.P2.Subtract(t.P0)
	return edge1.Cross(edge2).Normalize()
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t Triangle) BoundingBox() Aabb3 {
	return NewAabb3FromPoints(t.P0, t.P1, t.P2)
}
