package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Entity dimensions in world units.
const (
	PlayerW = 12.0
	PlayerH = 14.0
	EnemyW  = 12.0
	EnemyH  = 12.0
)

// Body holds the kinematic state shared by all entities. Position and
// velocity are continuous; size is fixed per entity. The collision resolver
// and gravity operate on Body regardless of the owning variant.
type Body struct {
	X, Y        float64 // top-left corner
	W, H        float64
	VX, VY      float64 // units per tick
	OnGround    bool
	FacingRight bool
}

// Rect returns the entity's AABB.
func (b *Body) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Foot returns the y-coordinate of the entity's bottom edge.
func (b *Body) Foot() float64 {
	return b.Y + b.H
}

// Player is the controllable entity. Timers are counted in simulation ticks
// and decremented toward zero each tick, never below it.
type Player struct {
	Body

	Coins int
	Lives int

	CoyoteTicks     int // >0: left the ground fewer than N ticks ago
	JumpBufferTicks int // >0: jump requested within the last M ticks, unconsumed
	InvulnTicks     int // >0: damage collisions suppressed (stomps still apply)
}

// Invulnerable reports whether damage collisions are currently suppressed.
func (p *Player) Invulnerable() bool {
	return p.InvulnTicks > 0
}

// Enemy is a patrolling entity. Dead enemies stay in storage but are skipped
// by simulation and rendering until the next restart revives them.
type Enemy struct {
	Body

	Dir   float64 // persisted horizontal direction sign, +1 or -1
	Alive bool
}

// enemySpawn records an enemy's load-time state for restarts.
type enemySpawn struct {
	x, y float64
	dir  float64
}
