package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-smallpt/pkg/geometry"
)

// ErrUnknownScene is returned when a scene id is not registered
var ErrUnknownScene = errors.New("scene: unknown scene")

// Setup bundles a scene with the camera and the sampling settings it is meant to be rendered with
type Setup struct {
	Scene           *Scene
	Camera          *geometry.PinholeCamera
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string
	DisplayName string
	Description string

	create func() (*Setup, error)
}

var builtinScenes = map[string]SceneInfo{
	"default": {
		ID:          "default",
		DisplayName: "Three Spheres",
		Description: "Diffuse and mirror spheres on a ground plane under a white sky",
		create:      NewDefaultScene,
	},
	"cornell": {
		ID:          "cornell",
		DisplayName: "Cornell Box",
		Description: "Open Cornell box with a ceiling light, a mirror sphere and a diffuse sphere",
		create:      NewCornellScene,
	},
	"furnace": {
		ID:          "furnace",
		DisplayName: "Closed Furnace",
		Description: "Closed white box without emitters; every path runs to the depth limit",
		create:      NewFurnaceScene,
	},
}

// ListScenes returns the built-in scenes sorted by id
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, info := range builtinScenes {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the built-in scene with the given id
func Create(id string) (*Setup, error) {
	info, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}

	setup, err := info.create()
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", id, err)
	}
	return setup, nil
}
