// Package platformer implements a deterministic tile-based platformer:
// a fixed-timestep simulation with axis-separated tile collision, one-way
// platforms, jump-assist heuristics (coyote time, jump buffering, variable
// jump height) and patrolling enemies. The package contains pure game logic;
// the platform handles input mapping, timing, and terminal display.
package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// TileSize is the edge length of one tile in world units. All spatial math
// in the simulation shares this constant.
const TileSize = 16.0

// TileKind identifies the contents of a grid cell.
type TileKind uint8

const (
	TileEmpty  TileKind = iota
	TileSolid           // blocks from every side
	TileGround          // solid, rendered as terrain
	TileOneWay          // blocks downward landings only
	TileCoin            // collectible marker, non-colliding
	TileFlag            // level goal marker, non-colliding
	TileSpawn           // player start marker, non-colliding
)

// IsSolid reports whether the kind blocks motion on all sides.
func (k TileKind) IsSolid() bool {
	return k == TileSolid || k == TileGround
}

// IsOneWay reports whether the kind blocks downward landings only.
func (k TileKind) IsOneWay() bool {
	return k == TileOneWay
}

// String returns a short name for the tile kind.
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "empty"
	case TileSolid:
		return "solid"
	case TileGround:
		return "ground"
	case TileOneWay:
		return "oneway"
	case TileCoin:
		return "coin"
	case TileFlag:
		return "flag"
	case TileSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// TileWorld is a fixed-size grid of tile kinds. Dimensions never change after
// load; the only runtime mutation is collecting coins (Coin -> Empty), which
// Restore undoes without reallocating the grid.
type TileWorld struct {
	width   int
	height  int
	tiles   []TileKind
	initial []TileKind // load-time copy for restart
}

// NewTileWorld creates a world from a row-major tile slice.
// The slice length must be width*height; this is a load-time contract.
func NewTileWorld(width, height int, tiles []TileKind) *TileWorld {
	initial := make([]TileKind, len(tiles))
	copy(initial, tiles)
	return &TileWorld{
		width:   width,
		height:  height,
		tiles:   tiles,
		initial: initial,
	}
}

// Width returns the grid width in tiles.
func (w *TileWorld) Width() int {
	return w.width
}

// Height returns the grid height in tiles.
func (w *TileWorld) Height() int {
	return w.height
}

// WorldWidth returns the world width in units.
func (w *TileWorld) WorldWidth() float64 {
	return float64(w.width) * TileSize
}

// WorldHeight returns the world height in units.
func (w *TileWorld) WorldHeight() float64 {
	return float64(w.height) * TileSize
}

// At returns the tile kind at grid cell (cx, cy).
// Out-of-bounds lookups return TileEmpty, never an error.
func (w *TileWorld) At(cx, cy int) TileKind {
	if cx < 0 || cx >= w.width || cy < 0 || cy >= w.height {
		return TileEmpty
	}
	return w.tiles[cy*w.width+cx]
}

// Set overwrites the tile kind at grid cell (cx, cy).
// Out-of-bounds writes are ignored.
func (w *TileWorld) Set(cx, cy int, kind TileKind) {
	if cx < 0 || cx >= w.width || cy < 0 || cy >= w.height {
		return
	}
	w.tiles[cy*w.width+cx] = kind
}

// IsSolid reports whether the tile at (cx, cy) blocks from every side.
func (w *TileWorld) IsSolid(cx, cy int) bool {
	return w.At(cx, cy).IsSolid()
}

// IsOneWay reports whether the tile at (cx, cy) is a one-way platform.
func (w *TileWorld) IsOneWay(cx, cy int) bool {
	return w.At(cx, cy).IsOneWay()
}

// TileRect returns the AABB of the tile cell (cx, cy) in world units.
func (w *TileWorld) TileRect(cx, cy int) core.Rect {
	return core.NewRect(float64(cx)*TileSize, float64(cy)*TileSize, TileSize, TileSize)
}

// TileAtPoint returns the tile kind containing the world point (x, y).
// Floor division keeps points left of or above the grid out of bounds;
// plain int conversion would truncate (-16, 0) into column 0.
func (w *TileWorld) TileAtPoint(x, y float64) TileKind {
	return w.At(int(math.Floor(x/TileSize)), int(math.Floor(y/TileSize)))
}

// CountCoins returns the number of uncollected coins left in the grid.
func (w *TileWorld) CountCoins() int {
	n := 0
	for _, k := range w.tiles {
		if k == TileCoin {
			n++
		}
	}
	return n
}

// Restore resets the grid to its load-time contents (un-collects coins)
// without reallocating.
func (w *TileWorld) Restore() {
	copy(w.tiles, w.initial)
}
