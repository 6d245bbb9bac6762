package vmath

import "math"

// Vec4 represents a 4D homogeneous vector
type Vec4 struct {
	X, Y, Z, W float64
}

// NewVec4 creates a new Vec4
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Add returns the sum of two vectors
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Subtract returns the difference of two vectors
func (v Vec4) Subtract(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Multiply returns the vector scaled by a scalar
func (v Vec4) Multiply(scalar float64) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

// Length returns the magnitude of the vector
func (v Vec4) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Dot returns the dot product of two vectors
func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Normalize returns a unit vector in the same direction
func (v Vec4) Normalize() Vec4 {
	length := v.Length()
	if length == 0 {
		return Vec4{}
	}
	return Vec4{v.X / length, v.Y / length, v.Z / length, v.W / length}
}

// Negate returns the negative of the vector
func (v Vec4) Negate() Vec4 {
	return Vec4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Vec3 drops the W component without dividing by it
func (v Vec4) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}
