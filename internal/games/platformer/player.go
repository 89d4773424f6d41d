package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const (
	// stompTolerance is how far the player's foot may penetrate below a live
	// enemy's top edge for the contact to count as a stomp instead of damage.
	stompTolerance = 10.0

	// stompReboundFactor scales the jump impulse for the bounce off a
	// stomped enemy.
	stompReboundFactor = 0.7

	// fallMargin is how far below the world's bottom edge the player may fall
	// before losing a life.
	fallMargin = 3 * TileSize
)

// stepPlayer advances the player by one tick: jump-assist timers, horizontal
// intent, jump state machine, gravity, collision, pickups, and enemy contact.
func (g *Game) stepPlayer(in core.InputFrame) {
	p := &g.player

	// Timers count down toward zero, never below.
	if p.CoyoteTicks > 0 {
		p.CoyoteTicks--
	}
	if p.JumpBufferTicks > 0 {
		p.JumpBufferTicks--
	}
	if p.InvulnTicks > 0 {
		p.InvulnTicks--
	}

	g.applyRunIntent(p, in)
	g.applyJump(p, in)

	// Gravity with terminal velocity.
	p.VY += g.cfg.Physics.Gravity
	if p.VY > g.cfg.Physics.MaxFallSpeed {
		p.VY = g.cfg.Physics.MaxFallSpeed
	}

	MoveAndCollide(g.world, &p.Body, p.VX, p.VY)
	if p.OnGround {
		p.CoyoteTicks = g.cfg.Jump.CoyoteTicks
	}

	g.collectCoins(p)
	g.checkFlag(p)
	g.touchEnemies(p)

	if p.Foot() > g.world.WorldHeight()+fallMargin {
		g.loseLife(false)
	}
}

// applyRunIntent maps the two exclusive movement intents onto horizontal
// velocity. Both-held is treated as neither.
func (g *Game) applyRunIntent(p *Player, in core.InputFrame) {
	left := in.Has(core.ActionLeft)
	right := in.Has(core.ActionRight)

	phys := g.cfg.Physics
	switch {
	case left && !right:
		p.VX -= phys.MoveAccel
		p.FacingRight = false
	case right && !left:
		p.VX += phys.MoveAccel
		p.FacingRight = true
	default:
		p.VX *= phys.Friction
		if math.Abs(p.VX) < phys.StopEpsilon {
			p.VX = 0
		}
	}

	p.VX = core.ClampF(p.VX, -phys.MaxRunSpeed, phys.MaxRunSpeed)
}

// applyJump runs the buffered-jump + coyote-time state machine and the
// variable-height cutoff.
func (g *Game) applyJump(p *Player, in core.InputFrame) {
	jumpHeld := in.Has(core.ActionJump)
	if jumpHeld {
		p.JumpBufferTicks = g.cfg.Jump.BufferTicks
	}

	// A jump pressed slightly before landing, or slightly after walking off
	// a ledge, still registers. Firing consumes both windows.
	if (p.OnGround || p.CoyoteTicks > 0) && p.JumpBufferTicks > 0 {
		p.VY = g.cfg.Jump.Impulse
		p.OnGround = false
		p.CoyoteTicks = 0
		p.JumpBufferTicks = 0
	}

	// Short hop: releasing jump while still rising damps the ascent.
	if p.VY < 0 && !jumpHeld {
		p.VY *= g.cfg.Jump.CutFactor
	}
}

// collectCoins clears every coin tile overlapped by the player's footprint.
func (g *Game) collectCoins(p *Player) {
	r := p.Rect()
	minCX := int(math.Floor(r.X / TileSize))
	maxCX := int(math.Ceil(r.Right()/TileSize)) - 1
	minCY := int(math.Floor(r.Y / TileSize))
	maxCY := int(math.Ceil(r.Bottom()/TileSize)) - 1

	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			if g.world.At(cx, cy) == TileCoin {
				g.world.Set(cx, cy, TileEmpty)
				p.Coins++
			}
		}
	}
}

// checkFlag wins the run when the tile under the player's center is the flag.
func (g *Game) checkFlag(p *Player) {
	cx, cy := p.Rect().Center()
	if g.world.TileAtPoint(cx, cy) == TileFlag {
		g.won = true
		g.gameOver = true
	}
}

// touchEnemies classifies player/enemy overlap as stomp or damage.
// Invulnerability suppresses damage but never stomps.
func (g *Game) touchEnemies(p *Player) {
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive || !p.Rect().Intersects(e.Rect()) {
			continue
		}

		penetration := p.Foot() - e.Y
		if p.VY > 0 && penetration < stompTolerance {
			e.Alive = false
			p.VY = stompReboundFactor * g.cfg.Jump.Impulse
			p.OnGround = false
			continue
		}

		if !p.Invulnerable() {
			g.loseLife(false)
			return
		}
	}
}

// loseLife handles enemy damage, falling off-world, and timer expiry: all
// three share this path. Timeout additionally resets the countdown.
func (g *Game) loseLife(resetTimer bool) {
	p := &g.player
	p.Lives--
	if p.Lives <= 0 {
		g.gameOver = true
		g.won = false
		return
	}

	p.X = g.spawnX
	p.Y = g.spawnY
	p.VX = 0
	p.VY = 0
	p.OnGround = false
	p.CoyoteTicks = 0
	p.JumpBufferTicks = 0
	p.InvulnTicks = g.cfg.Gameplay.InvulnTicks

	if resetTimer {
		g.timeLeft = g.timeLimit
	}
}
