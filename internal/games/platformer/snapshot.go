package platformer

// Snapshot captures the observable simulation state for determinism testing.
type Snapshot struct {
	Tick       int
	LevelID    string
	PlayerX    float64
	PlayerY    float64
	PlayerVX   float64
	PlayerVY   float64
	OnGround   bool
	Coins      int
	CoinsLeft  int
	Lives      int
	InvulnLeft int
	Enemies    []EnemySnapshot
	TimeLeft   int // ticks
	Paused     bool
	GameOver   bool
	Won        bool
}

// EnemySnapshot is one enemy's observable state.
type EnemySnapshot struct {
	X     float64
	Y     float64
	Dir   float64
	Alive bool
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	enemies := make([]EnemySnapshot, len(g.enemies))
	for i, e := range g.enemies {
		enemies[i] = EnemySnapshot{X: e.X, Y: e.Y, Dir: e.Dir, Alive: e.Alive}
	}

	return Snapshot{
		Tick:       g.tick,
		LevelID:    g.LevelID(),
		PlayerX:    g.player.X,
		PlayerY:    g.player.Y,
		PlayerVX:   g.player.VX,
		PlayerVY:   g.player.VY,
		OnGround:   g.player.OnGround,
		Coins:      g.player.Coins,
		CoinsLeft:  g.world.CountCoins(),
		Lives:      g.player.Lives,
		InvulnLeft: g.player.InvulnTicks,
		Enemies:    enemies,
		TimeLeft:   g.timeLeft,
		Paused:     g.paused,
		GameOver:   g.gameOver,
		Won:        g.won,
	}
}
