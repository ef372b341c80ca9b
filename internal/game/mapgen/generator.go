package mapgen

import (
	"math/rand"

	"github.com/mitchelldurbincs/boardgame/internal/common"
	"github.com/mitchelldurbincs/boardgame/internal/game/core"
)

// MapConfig holds configuration for board generation
type MapConfig struct {
	Width         int
	Height        int
	Terrain       string // terrain of flat fields
	BaseElevation int
	Hills         int  // number of hill peaks to scatter
	MaxElevation  int  // peak height cap; fields at the cap become mountains
	Ramp          bool // add x to every elevation
}

// DefaultMapConfig returns a flat plain of the given size
func DefaultMapConfig(w, h int) MapConfig {
	return MapConfig{
		Width:        w,
		Height:       h,
		Terrain:      core.TerrainPlain,
		MaxElevation: 3,
	}
}

// Generator builds boards with a deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new board generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// GenerateBoard creates a board: the flat base, then the optional ramp,
// then hills on top
func (g *Generator) GenerateBoard() (*core.Board, error) {
	w, h := g.config.Width, g.config.Height
	if w <= 0 || h <= 0 {
		return nil, core.ErrEmptyBoard
	}

	elev := make([][]int, h)
	for y := range elev {
		elev[y] = make([]int, w)
		for x := range elev[y] {
			elev[y][x] = g.config.BaseElevation
			if g.config.Ramp {
				elev[y][x] += x
			}
		}
	}

	hill := g.placeHills(w, h)

	fields := make([][]core.Field, h)
	for y := range fields {
		fields[y] = make([]core.Field, w)
		for x := range fields[y] {
			terrain := g.config.Terrain
			switch {
			case hill[y][x] > 0 && hill[y][x] >= g.config.MaxElevation:
				terrain = core.TerrainMountain
			case hill[y][x] > 0:
				terrain = core.TerrainHill
			}
			fields[y][x] = core.Field{Elevation: elev[y][x] + hill[y][x], Terrain: terrain}
		}
	}
	return core.NewBoard(fields)
}

// placeHills returns the hill height of every field. Each peak falls off
// by one per 8-connected step; overlapping hills keep the higher value.
func (g *Generator) placeHills(w, h int) [][]int {
	hill := make([][]int, h)
	for y := range hill {
		hill[y] = make([]int, w)
	}
	if g.config.Hills <= 0 || g.config.MaxElevation <= 0 {
		return hill
	}

	for i := 0; i < g.config.Hills; i++ {
		cx, cy := g.rng.Intn(w), g.rng.Intn(h)
		peak := 1 + g.rng.Intn(g.config.MaxElevation)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := common.Clamp(peak-common.ChebyshevDistance(x, y, cx, cy), 0, g.config.MaxElevation)
				hill[y][x] = max(hill[y][x], v)
			}
		}
	}
	return hill
}
