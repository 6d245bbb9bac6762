// Package scene loads simple YAML scene descriptions into geometry
// primitives for the demo renderer.
package scene

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Fox32/vector-math/pkg/geometry"
	"github.com/Fox32/vector-math/pkg/vmath"
)

// Config is the on-disk YAML layout of a scene
type Config struct {
	Camera    CameraConfig     `yaml:"camera"`
	Spheres   []SphereConfig   `yaml:"spheres"`
	Triangles []TriangleConfig `yaml:"triangles"`
	Quads     []QuadConfig     `yaml:"quads"`
	Boxes     []BoxConfig      `yaml:"boxes"`
	Planes    []PlaneConfig    `yaml:"planes"`
}

// CameraConfig positions the camera
type CameraConfig struct {
	Eye    [3]float64 `yaml:"eye"`
	LookAt [3]float64 `yaml:"look_at"`
	Up     [3]float64 `yaml:"up"`
	Fov    float64    `yaml:"fov"` // Vertical field of view in degrees
}

// SphereConfig describes a sphere with a color
type SphereConfig struct {
	Center [3]float64 `yaml:"center"`
	Radius float64    `yaml:"radius"`
	Color  [3]float64 `yaml:"color"`
}

// TriangleConfig describes a triangle with a color
type TriangleConfig struct {
	Points [3][3]float64 `yaml:"points"`
	Color  [3]float64    `yaml:"color"`
}

// QuadConfig describes a quad with a color
type QuadConfig struct {
	Points [4][3]float64 `yaml:"points"`
	Color  [3]float64    `yaml:"color"`
}

// BoxConfig describes an axis-aligned box with a color
type BoxConfig struct {
	Min   [3]float64 `yaml:"min"`
	Max   [3]float64 `yaml:"max"`
	Color [3]float64 `yaml:"color"`
}

// PlaneConfig describes an infinite plane with a color
type PlaneConfig struct {
	Point  [3]float64 `yaml:"point"`
	Normal [3]float64 `yaml:"normal"`
	Color  [3]float64 `yaml:"color"`
}

// Camera holds the resolved camera parameters
type Camera struct {
	Eye   vmath.Vec3
	Focus vmath.Vec3
	Up    vmath.Vec3
	FovY  float64 // Radians
}

// Object pairs a primitive with a flat color
type Object struct {
	Color vmath.Vec3
	shape shape
}

// Hit holds the nearest forward intersection found in a scene
type Hit struct {
	T      float64
	Point  vmath.Vec3
	Normal vmath.Vec3
	Color  vmath.Vec3
}

type shape interface {
	intersect(ray geometry.Ray) (float64, bool)
	normalAt(point vmath.Vec3) vmath.Vec3
}

// Scene is a loaded scene ready for ray queries
type Scene struct {
	Camera  Camera
	Objects []Object
}

func vec3(v [3]float64) vmath.Vec3 {
	return vmath.NewVec3(v[0], v[1], v[2])
}

// Load reads and validates a YAML scene file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}

	return FromConfig(config)
}

// FromConfig builds a scene from a parsed configuration
func FromConfig(config Config) (*Scene, error) {
	if config.Camera.Fov <= 0 || config.Camera.Fov >= 180 {
		return nil, fmt.Errorf("camera fov must be in (0, 180) degrees, got %v", config.Camera.Fov)
	}

	s := &Scene{
		Camera: Camera{
			Eye:   vec3(config.Camera.Eye),
			Focus: vec3(config.Camera.LookAt),
			Up:    vec3(config.Camera.Up),
			FovY:  config.Camera.Fov * math.Pi / 180,
		},
	}
	if s.Camera.Up.Length() == 0 {
		s.Camera.Up = vmath.NewVec3(0, 1, 0)
	}

	for i, sc := range config.Spheres {
		if sc.Radius < 0 {
			return nil, fmt.Errorf("sphere %d: negative radius %v", i, sc.Radius)
		}
		s.add(sphereShape{geometry.NewSphere(vec3(sc.Center), sc.Radius)}, sc.Color)
	}
	for _, tc := range config.Triangles {
		s.add(triangleShape{geometry.NewTriangle(vec3(tc.Points[0]), vec3(tc.Points[1]), vec3(tc.Points[2]))}, tc.Color)
	}
	for _, qc := range config.Quads {
		s.add(quadShape{geometry.NewQuad(vec3(qc.Points[0]), vec3(qc.Points[1]), vec3(qc.Points[2]), vec3(qc.Points[3]))}, qc.Color)
	}
	for i, bc := range config.Boxes {
		box := geometry.NewAabb3(vec3(bc.Min), vec3(bc.Max))
		if !box.IsValid() {
			return nil, fmt.Errorf("box %d: min exceeds max", i)
		}
		s.add(boxShape{box}, bc.Color)
	}
	for i, pc := range config.Planes {
		normal := vec3(pc.Normal)
		if normal.Length() == 0 {
			return nil, fmt.Errorf("plane %d: zero normal", i)
		}
		s.add(planeShape{geometry.NewPlane(vec3(pc.Point), normal)}, pc.Color)
	}

	return s, nil
}

func (s *Scene) add(sh shape, color [3]float64) {
	s.Objects = append(s.Objects, Object{Color: vec3(color), shape: sh})
}

// Hit returns the nearest forward intersection along the ray. The
// intersection tests report line distances, so negative t values are
// rejected here.
func (s *Scene) Hit(ray geometry.Ray) (Hit, bool) {
	const tMin = 1e-9

	var nearest Hit
	found := false

	for _, object := range s.Objects {
		t, ok := object.shape.intersect(ray)
		if !ok || t < tMin {
			continue
		}
		if !found || t < nearest.T {
			point := ray.At(t)
			nearest = Hit{
				T:      t,
				Point:  point,
				Normal: object.shape.normalAt(point),
				Color:  object.Color,
			}
			found = true
		}
	}

	return nearest, found
}

type sphereShape struct{ sphere geometry.Sphere }

func (s sphereShape) intersect(ray geometry.Ray) (float64, bool) {
	return ray.IntersectSphere(s.sphere)
}

func (s sphereShape) normalAt(point vmath.Vec3) vmath.Vec3 {
	return point.Subtract(s.sphere.Center).Normalize()
}

type triangleShape struct{ triangle geometry.Triangle }

func (s triangleShape) intersect(ray geometry.Ray) (float64, bool) {
	return ray.IntersectTriangle(s.triangle)
}

func (s triangleShape) normalAt(vmath.Vec3) vmath.Vec3 {
	return s.triangle.Normal()
}

type quadShape struct{ quad geometry.Quad }

func (s quadShape) intersect(ray geometry.Ray) (float64, bool) {
	return ray.IntersectQuad(s.quad)
}

func (s quadShape) normalAt(vmath.Vec3) vmath.Vec3 {
	return s.quad.Normal()
}

type planeShape struct{ plane geometry.Plane }

func (s planeShape) intersect(ray geometry.Ray) (float64, bool) {
	return ray.IntersectPlane(s.plane)
}

func (s planeShape) normalAt(vmath.Vec3) vmath.Vec3 {
	return s.plane.Normal
}

type boxShape struct{ box geometry.Aabb3 }

func (s boxShape) intersect(ray geometry.Ray) (float64, bool) {
	return ray.IntersectAabb3(s.box)
}

// normalAt picks the face whose plane is closest to the hit point
func (s boxShape) normalAt(point vmath.Vec3) vmath.Vec3 {
	faces := []struct {
		distance float64
		normal   vmath.Vec3
	}{
		{math.Abs(point.X - s.box.Min.X), vmath.NewVec3(-1, 0, 0)},
		{math.Abs(point.X - s.box.Max.X), vmath.NewVec3(1, 0, 0)},
		{math.Abs(point.Y - s.box.Min.Y), vmath.NewVec3(0, -1, 0)},
		{math.Abs(point.Y - s.box.Max.Y), vmath.NewVec3(0, 1, 0)},
		{math.Abs(point.Z - s.box.Min.Z), vmath.NewVec3(0, 0, -1)},
		{math.Abs(point.Z - s.box.Max.Z), vmath.NewVec3(0, 0, 1)},
	}

	best := faces[0]
	for _, face := range faces[1:] {
		if face.distance < best.distance {
			best = face
		}
	}
	return best.normal
}

// Default returns the built-in demo scene: a sphere, a box, a quad
// backdrop and a triangle above a ground plane.
func Default() *Scene {
	s, err := FromConfig(Config{
		Camera: CameraConfig{
			Eye:    [3]float64{0, 2, 6},
			LookAt: [3]float64{0, 1, 0},
			Up:     [3]float64{0, 1, 0},
			Fov:    50,
		},
		Spheres: []SphereConfig{
			{Center: [3]float64{-1.5, 1, 0}, Radius: 1, Color: [3]float64{0.9, 0.3, 0.3}},
		},
		Boxes: []BoxConfig{
			{Min: [3]float64{0.6, 0, -0.7}, Max: [3]float64{2, 1.4, 0.7}, Color: [3]float64{0.3, 0.5, 0.9}},
		},
		Triangles: []TriangleConfig{
			{Points: [3][3]float64{{-0.8, 0, 1.6}, {0.8, 0, 1.6}, {0, 1.2, 1.6}}, Color: [3]float64{0.3, 0.8, 0.4}},
		},
		Quads: []QuadConfig{
			{Points: [4][3]float64{{-3, 0, -2}, {3, 0, -2}, {3, 3, -2}, {-3, 3, -2}}, Color: [3]float64{0.8, 0.8, 0.3}},
		},
		Planes: []PlaneConfig{
			{Point: [3]float64{0, 0, 0}, Normal: [3]float64{0, 1, 0}, Color: [3]float64{0.5, 0.5, 0.5}},
		},
	})
	if err != nil {
		// The built-in configuration is known to be valid
		panic(err)
	}
	return s
}
