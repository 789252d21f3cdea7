package renderer

import (
	"image"
	"math/rand"
	"time"
)

// PassResult contains the result of a single progressive pass
type PassResult struct {
	PassNumber  int
	Framebuffer *Framebuffer
	Stats       RenderStats
	Elapsed     time.Duration
	IsLast      bool
}

// samplesForPass returns the cumulative samples per pixel after the given pass.
// Samples are spread evenly, and the final pass always reaches the full count.
func samplesForPass(samplesPerPixel, passes, passNumber int) int {
	if passes <= 1 || passNumber >= passes {
		return samplesPerPixel
	}
	return (samplesPerPixel*passNumber + passes - 1) / passes // Ceiling division
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID              int             // Unique tile identifier
	Bounds          image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	PassesCompleted int             // Number of passes completed for this tile
	Random          *rand.Rand      // Tile-specific random generator for deterministic results
}

// NewTile creates a tile whose random stream is derived from the render seed and the tile ID
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(tileSeed(seed, id))),
	}
}

// tileSeed mixes the render seed and tile ID with the splitmix64 finalizer so
// neighbouring tiles and neighbouring seeds get unrelated streams
func tileSeed(seed int64, id int) int64 {
	z := uint64(seed) + uint64(id+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

// NewTileGrid creates a grid of tiles covering the entire image, row by row from the top
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}
