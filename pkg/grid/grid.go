package grid

import (
	"math"
	"math/rand/v2"

	"github.com/mflstudio/concours/pkg/config"
	"github.com/mflstudio/concours/pkg/game/types"
)

// Options fixes the composition of a grid.
type Options struct {
	TilesPerPlayer int
	NeutralTiles   int
	// Width in tiles; 0 derives the smallest square that fits every tile.
	Width int
}

// OptionsFromConfig converts the grid section of the server configuration.
func OptionsFromConfig(cfg config.GridConfig) Options {
	return Options{
		TilesPerPlayer: cfg.TilesPerPlayer,
		NeutralTiles:   cfg.NeutralTiles,
		Width:          cfg.Width,
	}
}

// Size returns the number of tiles a roster of n players produces.
func (o Options) Size(n int) int {
	return n*o.TilesPerPlayer + o.NeutralTiles
}

// GridWidth returns the row length for a grid of size tiles.
func (o Options) GridWidth(size int) int {
	if o.Width > 0 {
		return o.Width
	}
	if size == 0 {
		return 1
	}
	return int(math.Ceil(math.Sqrt(float64(size))))
}

// Generate lays out a fresh grid. The owner multiset is fixed by opts and
// the roster; only its order is random.
func Generate(roster []string, opts Options, rng *rand.Rand) []types.Tile {
	size := opts.Size(len(roster))
	owners := make([]string, 0, size)
	for _, name := range roster {
		for i := 0; i < opts.TilesPerPlayer; i++ {
			owners = append(owners, name)
		}
	}
	for i := 0; i < opts.NeutralTiles; i++ {
		owners = append(owners, config.NeutralOwner)
	}

	rng.Shuffle(len(owners), func(i, j int) {
		owners[i], owners[j] = owners[j], owners[i]
	})

	width := opts.GridWidth(size)
	tiles := make([]types.Tile, size)
	for id := range tiles {
		tiles[id] = types.Tile{
			ID:       id,
			Owner:    owners[id],
			Revealed: false,
			X:        id % width,
			Y:        id / width,
		}
	}
	return tiles
}

// Counts returns how many tiles each owner has.
func Counts(tiles []types.Tile) map[string]int {
	counts := make(map[string]int)
	for _, tile := range tiles {
		counts[tile.Owner]++
	}
	return counts
}
