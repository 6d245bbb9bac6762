package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"github.com/Fox32/vector-math/pkg/camera"
	"github.com/Fox32/vector-math/pkg/scene"
	"github.com/Fox32/vector-math/pkg/vmath"
)

func main() {
	// Parse command line flags
	scenePath := flag.String("scene", "default", "Scene: 'default' or path to a YAML scene file")
	output := flag.String("out", "render.png", "Output PNG file")
	width := flag.Int("width", 640, "Image width in pixels")
	height := flag.Int("height", 360, "Image height in pixels")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Vector-math demo renderer")
		fmt.Println("Usage: vector-math [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Casts a pick ray through every pixel of the viewport and")
		fmt.Println("shades the nearest primitive hit with a fixed light.")
		return
	}

	selectedScene, err := createScene(*scenePath)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %dx%d image...\n", *width, *height)
	startTime := time.Now()

	img := render(selectedScene, *width, *height)

	fmt.Printf("Rendered in %v\n", time.Since(startTime))

	file, err := os.Create(*output)
	if err != nil {
		fmt.Printf("Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error encoding PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %s\n", *output)
}

// createScene resolves the -scene flag into a loaded scene
func createScene(name string) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("empty scene name")
	}
	if name == "default" {
		return scene.Default(), nil
	}
	return scene.Load(name)
}

// render casts a pick ray through every pixel and shades hits with a
// fixed directional light
func render(s *scene.Scene, width, height int) *image.RGBA {
	cam := s.Camera
	view := camera.ViewMatrix(cam.Eye, cam.Focus, cam.Up)
	projection := camera.PerspectiveMatrix(cam.FovY, float64(width)/float64(height), 0.1, 100)
	cameraMatrix := projection.Mul(view)

	lightDirection := vmath.NewVec3(-0.4, 1, 0.6).Normalize()
	const ambient = 0.15

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			// Pick coordinates measure from the lower-left corner,
			// image rows from the top
			pickX := float64(px) + 0.5
			pickY := float64(height-1-py) + 0.5

			ray, ok := camera.PickRay(cameraMatrix, 0, float64(width), 0, float64(height), pickX, pickY)
			if !ok {
				continue
			}

			hit, found := s.Hit(ray)
			if !found {
				img.Set(px, py, color.RGBA{30, 30, 40, 255})
				continue
			}

			// Two-sided Lambert shading
			normal := hit.Normal
			if normal.Dot(ray.Direction) > 0 {
				normal = normal.Negate()
			}
			intensity := ambient + (1-ambient)*max(0, normal.Dot(lightDirection))
			shaded := hit.Color.Multiply(intensity).Clamp(0, 1)

			img.Set(px, py, color.RGBA{
				R: uint8(shaded.X * 255),
				G: uint8(shaded.Y * 255),
				B: uint8(shaded.Z * 255),
				A: 255,
			})
		}
	}

	return img
}
