package platformer

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// newTestGame builds a game on the given rows with default tuning.
func newTestGame(t *testing.T, rows []string) *Game {
	t.Helper()
	SetConfigPath("")
	SetDifficultyPreset("")
	SetLevel(&Level{ID: "test", Name: "Test", Rows: rows})

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

// settle runs empty input frames so the player lands and comes to rest.
func settle(g *Game, ticks int) {
	for i := 0; i < ticks; i++ {
		g.Step(core.NewInputFrame())
	}
}

var flatRows = []string{
	"S               ",
	"================",
}

func TestJumpFromGround(t *testing.T) {
	g := newTestGame(t, flatRows)
	settle(g, 20)

	if !g.player.OnGround {
		t.Fatal("player should be grounded after settling")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in)

	if g.player.OnGround {
		t.Error("player should be airborne after jumping")
	}
	if g.player.VY >= 0 {
		t.Errorf("VY = %v, want rising", g.player.VY)
	}
	if g.player.CoyoteTicks != 0 || g.player.JumpBufferTicks != 0 {
		t.Errorf("jump must consume both windows, got coyote=%d buffer=%d",
			g.player.CoyoteTicks, g.player.JumpBufferTicks)
	}
}

func TestCoyoteJump(t *testing.T) {
	g := newTestGame(t, flatRows)
	settle(g, 20)

	// Walked off a ledge moments ago: airborne, coyote window still open.
	g.player.Y -= 12
	g.player.OnGround = false
	g.player.CoyoteTicks = 3

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in)

	if g.player.VY > g.cfg.Jump.Impulse+1 {
		t.Errorf("VY = %v, coyote jump should have fired", g.player.VY)
	}

	// With the window closed the same press does nothing immediately.
	g2 := newTestGame(t, flatRows)
	settle(g2, 20)
	g2.player.Y -= 12
	g2.player.OnGround = false
	g2.player.CoyoteTicks = 0
	g2.Step(in)

	if g2.player.VY < 0 {
		t.Errorf("VY = %v, jump must not fire without ground or coyote", g2.player.VY)
	}
}

func TestJumpBuffer(t *testing.T) {
	g := newTestGame(t, flatRows)
	settle(g, 20)

	// Airborne just above the ground with the coyote window closed; the
	// press lands in the buffer and fires on touchdown.
	g.player.Y -= 4
	g.player.OnGround = false
	g.player.CoyoteTicks = 0
	g.player.VY = 0

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in)

	fired := false
	for i := 0; i < 12; i++ {
		g.Step(core.NewInputFrame())
		if g.player.VY < g.cfg.Jump.Impulse/2 {
			fired = true
			break
		}
	}
	if !fired {
		t.Error("buffered jump never fired after landing")
	}
}

func TestShortHopRisesLess(t *testing.T) {
	apex := func(holdTicks int) float64 {
		g := newTestGame(t, flatRows)
		settle(g, 20)

		top := g.player.Y
		for i := 0; i < 60; i++ {
			in := core.NewInputFrame()
			if i < holdTicks {
				in.Set(core.ActionJump)
			}
			g.Step(in)
			if g.player.Y < top {
				top = g.player.Y
			}
		}
		return top
	}

	fullApex := apex(30)
	shortApex := apex(2)

	if fullApex >= shortApex {
		t.Errorf("held jump apex %v should be above short hop apex %v", fullApex, shortApex)
	}
}

func TestStompKillsEnemy(t *testing.T) {
	g := newTestGame(t, flatRows)
	settle(g, 20)

	e := Enemy{Body: Body{X: g.player.X, Y: g.player.Y + 20, W: EnemyW, H: EnemyH}, Dir: -1, Alive: true}
	g.enemies = append(g.enemies, e)

	// Falling with the foot just past the enemy's top edge.
	g.player.Y = g.enemies[0].Y - PlayerH + 4
	g.player.VY = 2
	g.player.OnGround = false
	livesBefore := g.player.Lives

	g.touchEnemies(&g.player)

	if g.enemies[0].Alive {
		t.Error("stomped enemy should be dead")
	}
	want := stompReboundFactor * g.cfg.Jump.Impulse
	if g.player.VY != want {
		t.Errorf("rebound VY = %v, want %v", g.player.VY, want)
	}
	if g.player.Lives != livesBefore {
		t.Error("stomp must not cost a life")
	}
}

func TestSideContactCostsLifeAndGrantsInvuln(t *testing.T) {
	g := newTestGame(t, flatRows)
	settle(g, 20)

	g.enemies = append(g.enemies, Enemy{
		Body: Body{X: g.player.X + 4, Y: g.player.Y, W: EnemyW, H: EnemyH},
		Dir:  -1, Alive: true,
	})
	livesBefore := g.player.Lives

	g.touchEnemies(&g.player)

	if g.player.Lives != livesBefore-1 {
		t.Errorf("lives = %d, want %d", g.player.Lives, livesBefore-1)
	}
	if g.player.X != g.spawnX || g.player.Y != g.spawnY {
		t.Error("player should respawn at the level spawn point")
	}
	if !g.player.Invulnerable() {
		t.Error("respawn should grant invulnerability")
	}

	// Overlapping again while invulnerable costs nothing.
	g.player.X = g.enemies[0].X
	g.player.Y = g.enemies[0].Y
	g.touchEnemies(&g.player)

	if g.player.Lives != livesBefore-1 {
		t.Error("invulnerable contact must not cost a life")
	}
}

func TestFallOffWorldCostsLife(t *testing.T) {
	g := newTestGame(t, flatRows)
	settle(g, 20)
	livesBefore := g.player.Lives

	g.player.Y = g.world.WorldHeight() + fallMargin + 10
	g.player.OnGround = false
	g.Step(core.NewInputFrame())

	if g.player.Lives != livesBefore-1 {
		t.Errorf("lives = %d, want %d", g.player.Lives, livesBefore-1)
	}
	if g.player.X != g.spawnX {
		t.Error("player should respawn after falling off the world")
	}
}

func TestTimeoutCostsLifeAndResetsTimer(t *testing.T) {
	g := newTestGame(t, flatRows)
	settle(g, 20)
	livesBefore := g.player.Lives

	g.timeLeft = 1
	g.Step(core.NewInputFrame())

	if g.player.Lives != livesBefore-1 {
		t.Errorf("lives = %d, want %d", g.player.Lives, livesBefore-1)
	}
	if g.timeLeft != g.timeLimit {
		t.Errorf("timeLeft = %d, want full reset %d", g.timeLeft, g.timeLimit)
	}
	if g.gameOver {
		t.Error("timeout with lives remaining must not end the game")
	}

	// On the last life a timeout ends the run.
	g.player.Lives = 1
	g.timeLeft = 1
	g.Step(core.NewInputFrame())

	if !g.gameOver || g.won {
		t.Errorf("gameOver=%v won=%v, want loss", g.gameOver, g.won)
	}
}

func TestCoinPickup(t *testing.T) {
	g := newTestGame(t, flatRows)
	settle(g, 20)

	cx, cy := playerTile(g)
	g.world.Set(cx, cy, TileCoin)

	g.Step(core.NewInputFrame())

	if g.player.Coins != 1 {
		t.Errorf("coins = %d, want 1", g.player.Coins)
	}
	if g.world.At(cx, cy) != TileEmpty {
		t.Error("collected coin tile should be cleared")
	}
}

func TestFlagWinsRun(t *testing.T) {
	g := newTestGame(t, flatRows)
	settle(g, 20)

	cx, cy := playerTile(g)
	g.world.Set(cx, cy, TileFlag)

	g.Step(core.NewInputFrame())

	if !g.gameOver || !g.won {
		t.Errorf("gameOver=%v won=%v, want win", g.gameOver, g.won)
	}
	if g.State().Status != "YOU WIN!" {
		t.Errorf("status = %q", g.State().Status)
	}
}

// playerTile returns the tile under the player's center.
func playerTile(g *Game) (int, int) {
	cx, cy := g.player.Rect().Center()
	return int(cx / TileSize), int(cy / TileSize)
}
