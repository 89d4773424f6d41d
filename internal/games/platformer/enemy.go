package platformer

import "math"

// blockedEpsilon: horizontal displacement below this counts as "blocked by a
// wall" and reverses the patrol direction.
const blockedEpsilon = 0.001

// stepEnemies advances every live enemy: constant-speed patrol with gravity,
// reversing at walls and (while grounded) at platform edges.
func (g *Game) stepEnemies() {
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive {
			continue
		}
		g.stepEnemy(e)
	}
}

func (g *Game) stepEnemy(e *Enemy) {
	e.VX = g.cfg.Enemy.Speed * e.Dir

	// Gravity identical to the player's.
	e.VY += g.cfg.Physics.Gravity
	if e.VY > g.cfg.Physics.MaxFallSpeed {
		e.VY = g.cfg.Physics.MaxFallSpeed
	}

	beforeX := e.X
	MoveAndCollide(g.world, &e.Body, e.VX, e.VY)

	moved := e.X - beforeX
	if math.Abs(moved) < blockedEpsilon {
		g.reverseEnemy(e)
		return
	}

	// Edge-of-ledge detection: probe one unit past the leading edge at foot
	// height; without support ahead, turn around instead of walking off.
	if e.OnGround && !g.hasSupportAhead(e) {
		g.reverseEnemy(e)
	}
}

// hasSupportAhead reports whether the tile one unit past the enemy's leading
// edge, just below its foot, is something it can stand on.
func (g *Game) hasSupportAhead(e *Enemy) bool {
	var probeX float64
	if e.Dir > 0 {
		probeX = e.Rect().Right() + 1
	} else {
		probeX = e.X - 1
	}
	probeY := e.Foot() + 1

	cx := int(math.Floor(probeX / TileSize))
	cy := int(math.Floor(probeY / TileSize))
	return g.world.IsSolid(cx, cy) || g.world.IsOneWay(cx, cy)
}

func (g *Game) reverseEnemy(e *Enemy) {
	e.Dir = -e.Dir
	e.FacingRight = e.Dir > 0
}
