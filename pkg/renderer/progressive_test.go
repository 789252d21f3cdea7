package renderer

import (
	"image"
	"testing"
)

func TestSamplesForPass(t *testing.T) {
	tests := []struct {
		name     string
		spp      int
		passes   int
		expected []int
	}{
		{"single pass", 50, 1, []int{50}},
		{"even split", 40, 4, []int{10, 20, 30, 40}},
		{"uneven split", 10, 3, []int{4, 7, 10}},
		{"one sample per pass", 3, 3, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for pass := 1; pass <= tt.passes; pass++ {
				if got := samplesForPass(tt.spp, tt.passes, pass); got != tt.expected[pass-1] {
					t.Errorf("Pass %d: expected %d total samples, got %d", pass, tt.expected[pass-1], got)
				}
			}
		})
	}
}

func TestNewTileGrid(t *testing.T) {
	width, height, tileSize := 100, 70, 32
	tiles := NewTileGrid(width, height, tileSize, 42)

	// 4 columns by 3 rows, clipped at the right and bottom edges
	if len(tiles) != 12 {
		t.Fatalf("Expected 12 tiles, got %d", len(tiles))
	}
	if tiles[0].Bounds != image.Rect(0, 0, 32, 32) {
		t.Errorf("Unexpected first tile bounds %v", tiles[0].Bounds)
	}
	if last := tiles[len(tiles)-1]; last.Bounds != image.Rect(96, 64, 100, 70) {
		t.Errorf("Unexpected last tile bounds %v", last.Bounds)
	}

	// Tiles cover every pixel exactly once
	coverage := make([]int, width*height)
	for i, tile := range tiles {
		if tile.ID != i {
			t.Errorf("Expected tile ID %d, got %d", i, tile.ID)
		}
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				coverage[y*width+x]++
			}
		}
	}
	for i, count := range coverage {
		if count != 1 {
			t.Fatalf("Pixel %d covered %d times", i, count)
		}
	}
}

func TestTileRandomStreams(t *testing.T) {
	bounds := image.Rect(0, 0, 8, 8)

	a := NewTile(3, bounds, 42).Random.Int63()
	b := NewTile(3, bounds, 42).Random.Int63()
	if a != b {
		t.Error("Expected the same seed and tile ID to give the same stream")
	}

	seen := make(map[int64]bool)
	for id := 0; id < 64; id++ {
		seen[tileSeed(42, id)] = true
	}
	if len(seen) != 64 {
		t.Errorf("Expected 64 distinct tile seeds, got %d", len(seen))
	}
	if tileSeed(1, 0) == tileSeed(2, 0) {
		t.Error("Expected different render seeds to give different tile seeds")
	}
}
