package scene

import (
	"fmt"
	"sort"
	"strings"
)

// Options carries the inputs scene constructors may depend on
type Options struct {
	Seed        int64  // Seeds procedural content such as random sphere fields and noise
	TexturePath string // Optional image used for the earth texture
}

// Builder constructs a scene from options
type Builder func(opts Options) (*Scene, error)

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string // Unique identifier used on the command line
	DisplayName string // Display name
	Description string
	Group       string // Grouping category
	build       Builder
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string
	Scenes []SceneInfo
}

var builtInScenes = []SceneInfo{
	{ID: "simple-spheres", Description: "Diffuse, hollow glass and fuzzy metal spheres with depth of field", Group: "Spheres", build: NewSimpleSpheresScene},
	{ID: "bouncing-spheres", Description: "Random sphere field with motion blur on a checker ground", Group: "Spheres", build: NewBouncingSpheresScene},
	{ID: "checkered-spheres", Description: "Two spheres sharing a spatial checker texture", Group: "Textures", build: NewCheckeredSpheresScene},
	{ID: "perlin-spheres", Description: "Marble Perlin noise on a sphere and the ground", Group: "Textures", build: NewPerlinSpheresScene},
	{ID: "earth", Description: "Image-textured globe", Group: "Textures", build: NewEarthScene},
	{ID: "texture-gallery", Description: "Generated image and noise textures, a rotated panel, tinted smoke and a gradient light", Group: "Textures", build: NewTextureGalleryScene},
	{ID: "quads", Description: "Five colored quads", Group: "Quads and Lights", build: NewQuadsScene},
	{ID: "planes-and-triangles", Description: "Triangle pyramid and mirror on an infinite tiled floor under a triangle light", Group: "Quads and Lights", build: NewPlanesAndTrianglesScene},
	{ID: "simple-light", Description: "Marble spheres lit by a sphere light and a quad light", Group: "Quads and Lights", build: NewSimpleLightScene},
	{ID: "cornell-box", Description: "Cornell box with a rotated block and a glass sphere", Group: "Cornell", build: NewCornellScene},
	{ID: "cornell-smoke", Description: "Cornell box with blocks of smoke", Group: "Cornell", build: NewCornellSmokeScene},
	{ID: "final", Description: "Every feature at once: nested BVHs, media, motion blur, textures", Group: "Showcase", build: NewFinalScene},
	{ID: "lambertian-sky", Description: "Diffuse sphere lit only by a sky gradient", Group: "Verification", build: NewLambertianSkyScene},
	{ID: "occluded-light", Description: "Quad light over an absorbing floor", Group: "Verification", build: NewOccludedLightScene},
}

func init() {
	for i := range builtInScenes {
		builtInScenes[i].DisplayName = titleCase(builtInScenes[i].ID)
	}
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtInScenes))
	copy(scenes, builtInScenes)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// ListSceneGroups returns the built-in scenes grouped by category, groups sorted alphabetically
func ListSceneGroups() []SceneGroup {
	groupMap := make(map[string][]SceneInfo)
	for _, scene := range ListScenes() {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	groupNames := make([]string, 0, len(groupMap))
	for groupName := range groupMap {
		groupNames = append(groupNames, groupName)
	}
	sort.Strings(groupNames)

	groups := make([]SceneGroup, 0, len(groupNames))
	for _, groupName := range groupNames {
		groups = append(groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}
	return groups
}

// Build constructs the built-in scene with the given ID
func Build(id string, opts Options) (*Scene, error) {
	for _, info := range builtInScenes {
		if info.ID == id {
			s, err := info.build(opts)
			if err != nil {
				return nil, fmt.Errorf("building scene %q: %w", id, err)
			}
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q", id)
}

// titleCase converts an ID-style string to title case
// e.g., "cornell-smoke" -> "Cornell Smoke"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
