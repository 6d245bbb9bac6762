package vmath

import (
	"math"
	"testing"
)

func vec3Equal(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{
			name:     "add",
			result:   NewVec3(1, 2, 3).Add(NewVec3(4, 5, 6)),
			expected: NewVec3(5, 7, 9),
		},
		{
			name:     "subtract",
			result:   NewVec3(4, 5, 6).Subtract(NewVec3(1, 2, 3)),
			expected: NewVec3(3, 3, 3),
		},
		{
			name:     "multiply by scalar",
			result:   NewVec3(1, -2, 3).Multiply(2),
			expected: NewVec3(2, -4, 6),
		},
		{
			name:     "component-wise multiply",
			result:   NewVec3(1, 2, 3).MultiplyVec(NewVec3(2, 3, 4)),
			expected: NewVec3(2, 6, 12),
		},
		{
			name:     "negate",
			result:   NewVec3(1, -2, 3).Negate(),
			expected: NewVec3(-1, 2, -3),
		},
		{
			name:     "clamp",
			result:   NewVec3(-2, 0.5, 3).Clamp(0, 1),
			expected: NewVec3(0, 0.5, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vec3Equal(tt.result, tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{
			name:     "x cross y is z",
			a:        NewVec3(1, 0, 0),
			b:        NewVec3(0, 1, 0),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "y cross z is x",
			a:        NewVec3(0, 1, 0),
			b:        NewVec3(0, 0, 1),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "anti-commutative",
			a:        NewVec3(0, 1, 0),
			b:        NewVec3(1, 0, 0),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "parallel vectors give zero",
			a:        NewVec3(2, 4, 6),
			b:        NewVec3(1, 2, 3),
			expected: NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)
			if !vec3Equal(result, tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if dot := a.Dot(b); math.Abs(dot-12) > 1e-9 {
		t.Errorf("Expected dot product 12, got %f", dot)
	}

	v := NewVec3(3, 4, 0)
	if length := v.Length(); math.Abs(length-5) > 1e-9 {
		t.Errorf("Expected length 5, got %f", length)
	}
	if lengthSquared := v.LengthSquared(); math.Abs(lengthSquared-25) > 1e-9 {
		t.Errorf("Expected squared length 25, got %f", lengthSquared)
	}

	if distance := NewVec3(1, 1, 1).DistanceTo(NewVec3(1, 1, 4)); math.Abs(distance-3) > 1e-9 {
		t.Errorf("Expected distance 3, got %f", distance)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalize()
	if !vec3Equal(v, NewVec3(0.6, 0, 0.8), 1e-9) {
		t.Errorf("Expected (0.6, 0, 0.8), got %v", v)
	}
	if length := v.Length(); math.Abs(length-1) > 1e-9 {
		t.Errorf("Expected unit length, got %f", length)
	}

	// Zero vector stays zero rather than producing NaN
	zero := NewVec3(0, 0, 0).Normalize()
	if !vec3Equal(zero, NewVec3(0, 0, 0), 0) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3_Vec4(t *testing.T) {
	v := NewVec3(1, 2, 3).Vec4(4)
	if v != NewVec4(1, 2, 3, 4) {
		t.Errorf("Expected (1, 2, 3, 4), got %v", v)
	}
}
