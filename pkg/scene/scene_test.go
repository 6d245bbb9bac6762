package scene

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Fox32/vector-math/pkg/geometry"
	"github.com/Fox32/vector-math/pkg/vmath"
)

func validCamera() CameraConfig {
	return CameraConfig{
		Eye:    [3]float64{0, 0, 5},
		LookAt: [3]float64{0, 0, 0},
		Up:     [3]float64{0, 1, 0},
		Fov:    45,
	}
}

func TestFromConfig_Validation(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name:   "zero fov",
			config: Config{Camera: CameraConfig{Fov: 0}},
		},
		{
			name:   "fov too large",
			config: Config{Camera: CameraConfig{Fov: 180}},
		},
		{
			name: "negative sphere radius",
			config: Config{
				Camera:  validCamera(),
				Spheres: []SphereConfig{{Center: [3]float64{0, 0, 0}, Radius: -1}},
			},
		},
		{
			name: "inverted box",
			config: Config{
				Camera: validCamera(),
				Boxes:  []BoxConfig{{Min: [3]float64{1, 0, 0}, Max: [3]float64{0, 1, 1}}},
			},
		},
		{
			name: "zero plane normal",
			config: Config{
				Camera: validCamera(),
				Planes: []PlaneConfig{{Point: [3]float64{0, 0, 0}, Normal: [3]float64{0, 0, 0}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromConfig(tt.config); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestFromConfig_BuildsObjects(t *testing.T) {
	s, err := FromConfig(Config{
		Camera:    validCamera(),
		Spheres:   []SphereConfig{{Center: [3]float64{0, 0, 0}, Radius: 1, Color: [3]float64{1, 0, 0}}},
		Triangles: []TriangleConfig{{Points: [3][3]float64{{-1, -1, 0}, {1, -1, 0}, {0, 1, 0}}}},
		Quads:     []QuadConfig{{Points: [4][3]float64{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}}}},
		Boxes:     []BoxConfig{{Min: [3]float64{-1, -1, -1}, Max: [3]float64{1, 1, 1}}},
		Planes:    []PlaneConfig{{Point: [3]float64{0, 0, 0}, Normal: [3]float64{0, 1, 0}}},
	})
	if err != nil {
		t.Fatalf("Expected scene, got error: %v", err)
	}

	if len(s.Objects) != 5 {
		t.Errorf("Expected 5 objects, got %d", len(s.Objects))
	}
	if math.Abs(s.Camera.FovY-45*math.Pi/180) > 1e-9 {
		t.Errorf("Expected fov in radians, got %f", s.Camera.FovY)
	}
	if s.Objects[0].Color != vmath.NewVec3(1, 0, 0) {
		t.Errorf("Expected red sphere, got color %v", s.Objects[0].Color)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	sceneYAML := `
camera:
  eye: [0, 2, 6]
  look_at: [0, 1, 0]
  up: [0, 1, 0]
  fov: 50
spheres:
  - center: [0, 1, 0]
    radius: 1
    color: [0.9, 0.3, 0.3]
planes:
  - point: [0, 0, 0]
    normal: [0, 1, 0]
    color: [0.5, 0.5, 0.5]
`
	if err := os.WriteFile(path, []byte(sceneYAML), 0644); err != nil {
		t.Fatalf("writing scene file: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Expected scene, got error: %v", err)
	}

	if len(s.Objects) != 2 {
		t.Errorf("Expected 2 objects, got %d", len(s.Objects))
	}
	if s.Camera.Eye != vmath.NewVec3(0, 2, 6) {
		t.Errorf("Expected eye (0, 2, 6), got %v", s.Camera.Eye)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	malformed := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(malformed, []byte("camera: ["), 0644); err != nil {
		t.Fatalf("writing scene file: %v", err)
	}
	if _, err := Load(malformed); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestScene_Hit_ReturnsNearest(t *testing.T) {
	s, err := FromConfig(Config{
		Camera: validCamera(),
		Spheres: []SphereConfig{
			{Center: [3]float64{0, 0, 0}, Radius: 1, Color: [3]float64{1, 0, 0}},
			{Center: [3]float64{0, 0, -5}, Radius: 1, Color: [3]float64{0, 1, 0}},
		},
	})
	if err != nil {
		t.Fatalf("building scene: %v", err)
	}

	ray := geometry.NewRay(vmath.NewVec3(0, 0, 5), vmath.NewVec3(0, 0, -1))

	hit, found := s.Hit(ray)
	if !found {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected nearest hit at t=4, got t=%f", hit.T)
	}
	if hit.Color != vmath.NewVec3(1, 0, 0) {
		t.Errorf("Expected the red sphere, got color %v", hit.Color)
	}
	if !hitNormalNear(hit.Normal, vmath.NewVec3(0, 0, 1)) {
		t.Errorf("Expected normal (0, 0, 1), got %v", hit.Normal)
	}
}

func TestScene_Hit_IgnoresGeometryBehindRay(t *testing.T) {
	// The raw intersection tests keep line semantics; Scene.Hit
	// applies the forward-only filter
	s, err := FromConfig(Config{
		Camera:    validCamera(),
		Triangles: []TriangleConfig{{Points: [3][3]float64{{-1, -1, 0}, {1, -1, 0}, {0, 1, 0}}}},
	})
	if err != nil {
		t.Fatalf("building scene: %v", err)
	}

	ray := geometry.NewRay(vmath.NewVec3(0, 0, 1), vmath.NewVec3(0, 0, 1))
	if hit, found := s.Hit(ray); found {
		t.Errorf("Expected miss for geometry behind the ray, got hit at t=%f", hit.T)
	}
}

func TestScene_Hit_BoxFaceNormal(t *testing.T) {
	s, err := FromConfig(Config{
		Camera: validCamera(),
		Boxes:  []BoxConfig{{Min: [3]float64{-1, -1, -1}, Max: [3]float64{1, 1, 1}}},
	})
	if err != nil {
		t.Fatalf("building scene: %v", err)
	}

	ray := geometry.NewRay(vmath.NewVec3(5, 0, 0), vmath.NewVec3(-1, 0, 0))

	hit, found := s.Hit(ray)
	if !found {
		t.Fatal("Expected hit, but got miss")
	}
	if !hitNormalNear(hit.Normal, vmath.NewVec3(1, 0, 0)) {
		t.Errorf("Expected +X face normal, got %v", hit.Normal)
	}
}

func TestDefault_RendersHits(t *testing.T) {
	s := Default()
	if len(s.Objects) != 5 {
		t.Fatalf("Expected 5 objects in the default scene, got %d", len(s.Objects))
	}

	// Looking down from above must hit the ground plane
	ray := geometry.NewRay(vmath.NewVec3(10, 5, 10), vmath.NewVec3(0, -1, 0))
	hit, found := s.Hit(ray)
	if !found {
		t.Fatal("Expected ground plane hit, but got miss")
	}
	if math.Abs(hit.T-5) > 1e-9 {
		t.Errorf("Expected t=5, got t=%f", hit.T)
	}
}

func hitNormalNear(a, b vmath.Vec3) bool {
	return a.Subtract(b).Length() <= 1e-9
}
