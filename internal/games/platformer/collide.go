package platformer

import "math"

// Collision tolerances in world units.
const (
	// snagTolerance is the vertical overlap a horizontal hit must exceed.
	// Prevents snagging on a tile's top or bottom edge while sliding past
	// a corner.
	snagTolerance = 2.0

	// oneWayTolerance is how far the entity's foot may already be below a
	// one-way platform's top surface before the displacement and still land
	// on it.
	oneWayTolerance = 6.0

	// oneWayEdgeMargin shrinks a one-way platform's catch area at each side
	// so an entity grazing the very edge slips past instead of landing.
	oneWayEdgeMargin = 2.0
)

// MoveAndCollide displaces the body by (dx, dy) against the tile world,
// resolving the horizontal axis first and then the vertical axis. It updates
// position, velocity, and the grounded flag in place.
//
// Resolution is "first qualifying hit wins" in row-major scan order over the
// broad-phase window, not minimum-penetration or swept resolution. At high
// velocity or with several simultaneous overlaps the body may resolve against
// a tile that is not the nearest, which can snap visually or, at extreme
// speed, tunnel. That is a known property of this resolver, kept as-is.
func MoveAndCollide(w *TileWorld, b *Body, dx, dy float64) {
	moveHorizontal(w, b, dx)
	moveVertical(w, b, dy)
}

// tileWindow returns the inclusive tile index range covering the body's AABB
// expanded by one tile in every direction.
func tileWindow(b *Body) (minCX, minCY, maxCX, maxCY int) {
	minCX = int(math.Floor((b.X - TileSize) / TileSize))
	minCY = int(math.Floor((b.Y - TileSize) / TileSize))
	maxCX = int(math.Floor((b.X + b.W + TileSize) / TileSize))
	maxCY = int(math.Floor((b.Y + b.H + TileSize) / TileSize))
	return
}

func moveHorizontal(w *TileWorld, b *Body, dx float64) {
	if dx == 0 {
		return
	}

	b.X += dx
	r := b.Rect()

	minCX, minCY, maxCX, maxCY := tileWindow(b)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			// One-way platforms never block lateral passage.
			if !w.At(cx, cy).IsSolid() {
				continue
			}

			tile := w.TileRect(cx, cy)
			if r.Right() <= tile.X || r.X >= tile.Right() {
				continue
			}
			// Edge-grazing contact within the tolerance band slides past.
			if r.OverlapY(tile) <= snagTolerance {
				continue
			}

			if dx > 0 {
				b.X = tile.X - b.W
			} else {
				b.X = tile.Right()
			}
			b.VX = 0
			return
		}
	}
}

func moveVertical(w *TileWorld, b *Body, dy float64) {
	if dy == 0 {
		return
	}

	footBefore := b.Foot()
	topBefore := b.Y

	b.Y += dy
	b.OnGround = false
	r := b.Rect()

	minCX, minCY, maxCX, maxCY := tileWindow(b)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			kind := w.At(cx, cy)
			if !kind.IsSolid() && !kind.IsOneWay() {
				continue
			}

			tile := w.TileRect(cx, cy)
			if r.Right() <= tile.X || r.X >= tile.Right() {
				continue
			}

			if dy > 0 {
				if kind.IsSolid() {
					// Landing: the foot crossed the tile's top this step.
					if footBefore <= tile.Y && r.Bottom() > tile.Y {
						land(b, tile.Y)
						return
					}
				} else {
					// One-way platform: only catches a foot that was at most
					// oneWayTolerance below the surface before this step, and
					// only when the horizontal overlap reaches past the edge
					// margins. Upward and lateral passage are never blocked.
					if footBefore <= tile.Y+oneWayTolerance &&
						r.Bottom() >= tile.Y &&
						r.Right() > tile.X+oneWayEdgeMargin &&
						r.X < tile.Right()-oneWayEdgeMargin {
						land(b, tile.Y)
						return
					}
				}
			} else if kind.IsSolid() {
				// Head bump: the top crossed the tile's bottom this step.
				if topBefore >= tile.Bottom() && r.Y < tile.Bottom() {
					b.Y = tile.Bottom()
					b.VY = 0
					return
				}
			}
		}
	}
}

// land clamps the body to rest on a surface at the given top coordinate.
func land(b *Body, surfaceTop float64) {
	b.Y = surfaceTop - b.H
	b.VY = 0
	b.OnGround = true
}
