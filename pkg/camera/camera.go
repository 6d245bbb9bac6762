// Package camera builds view and projection matrices and converts
// viewport coordinates back into world-space points and pick rays.
//
// All matrices follow the OpenGL conventions used by vmath.Mat4:
// column-major storage, right-handed eye space looking down -Z, and a
// clip-space Z range of [-1, 1].
package camera

import (
	"math"

	"github.com/Fox32/vector-math/pkg/geometry"
	"github.com/Fox32/vector-math/pkg/vmath"
)

// ViewMatrix creates a view matrix for a camera at eye looking at
// focus, with up roughly pointing along the camera's vertical axis
func ViewMatrix(eye, focus, up vmath.Vec3) vmath.Mat4 {
	f := focus.Subtract(eye).Normalize() // Forward
	s := f.Cross(up).Normalize()         // Right
	u := s.Cross(f)                      // Up, recomputed to be orthogonal

	return vmath.Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// PerspectiveMatrix creates a perspective projection matrix.
// fovY is the vertical field of view in radians, aspect is
// width/height, near and far are the distances to the clipping
// planes.
func PerspectiveMatrix(fovY, aspect, near, far float64) vmath.Mat4 {
	f := 1.0 / math.Tan(fovY/2)
	nf := 1.0 / (near - far)

	return vmath.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// FrustumMatrix creates a perspective projection matrix from an
// explicit, possibly asymmetric, near-plane rectangle
func FrustumMatrix(left, right, bottom, top, near, far float64) vmath.Mat4 {
	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	nf := 1.0 / (near - far)

	return vmath.Mat4{
		2 * near * rl, 0, 0, 0,
		0, 2 * near * tb, 0, 0,
		(right + left) * rl, (top + bottom) * tb, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// OrthographicMatrix creates an orthographic projection matrix
func OrthographicMatrix(left, right, bottom, top, near, far float64) vmath.Mat4 {
	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far - near)

	return vmath.Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
}

// Unproject maps a point in viewport coordinates back to world space.
//
// cameraMatrix is projection * view. pickX and pickY are in pixels
// with the origin at the lower-left corner of the viewport; pickZ is
// the normalized depth in [0, 1], 0 being the near plane and 1 the
// far plane. Returns false when the camera matrix is not invertible
// or the unprojected point is at infinity.
func Unproject(cameraMatrix vmath.Mat4, viewportX, viewportWidth, viewportY, viewportHeight, pickX, pickY, pickZ float64) (vmath.Vec3, bool) {
	if cameraMatrix.Determinant() == 0 {
		return vmath.Vec3{}, false
	}
	inverse := cameraMatrix.Inverse()

	// Viewport coordinates to normalized device coordinates [-1, 1]
	ndc := vmath.NewVec4(
		2*(pickX-viewportX)/viewportWidth-1,
		2*(pickY-viewportY)/viewportHeight-1,
		2*pickZ-1,
		1,
	)

	world := inverse.MulVec4(ndc)
	if world.W == 0 {
		return vmath.Vec3{}, false
	}

	return world.Vec3().Multiply(1 / world.W), true
}

// PickRay builds the world-space ray passing through the given pixel,
// origin on the near plane and unit direction toward the far plane.
//
// cameraMatrix is projection * view; pickX and pickY follow the same
// viewport conventions as Unproject. Returns false when the camera
// matrix cannot be unprojected.
func PickRay(cameraMatrix vmath.Mat4, viewportX, viewportWidth, viewportY, viewportHeight, pickX, pickY float64) (geometry.Ray, bool) {
	near, ok := Unproject(cameraMatrix, viewportX, viewportWidth, viewportY, viewportHeight, pickX, pickY, 0)
	if !ok {
		return geometry.Ray{}, false
	}
	far, ok := Unproject(cameraMatrix, viewportX, viewportWidth, viewportY, viewportHeight, pickX, pickY, 1)
	if !ok {
		return geometry.Ray{}, false
	}

	direction := far.Subtract(near).Normalize()
	return geometry.NewRay(near, direction), true
}
