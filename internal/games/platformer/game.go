package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Package-level wiring set by the CLI before the game is constructed.
var (
	configPath       string
	difficultyPreset string
	selectedLevel    *Level
)

// SetConfigPath sets a custom config file path (empty uses the search order).
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects easy/normal/hard tuning on top of the config.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLevel selects the level to play. Nil selects the first built-in level.
func SetLevel(l *Level) {
	selectedLevel = l
}

// Game is a side-scrolling tile platformer: run, jump, collect coins, stomp
// patrolling enemies, and reach the flag before the timer runs out.
type Game struct {
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig

	level       *Level
	world       *TileWorld
	player      Player
	enemies     []Enemy
	enemySpawns []enemySpawn
	spawnX      float64
	spawnY      float64

	tick      int
	tickRate  int
	timeLeft  int // ticks
	timeLimit int // ticks

	paused   bool
	gameOver bool
	won      bool
}

// New creates a new platformer game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "platformer" }

// Title returns the human-readable name.
func (g *Game) Title() string { return "Tile Runner" }

// LevelID returns the ID of the loaded level.
func (g *Game) LevelID() string {
	if g.level == nil {
		return ""
	}
	return g.level.ID
}

// Reset initializes the game with the given runtime config. It loads the
// tuning config and builds the selected level from scratch.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	pcfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		pcfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&pcfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = pcfg

	g.level = selectedLevel
	if g.level == nil {
		g.level = GetLevel(0)
	}
	g.world, g.spawnX, g.spawnY, g.enemySpawns = g.level.Build()

	seconds := g.cfg.Gameplay.TimeLimitSeconds
	if g.level.TimeLimitSeconds > 0 {
		seconds = g.level.TimeLimitSeconds
	}
	g.timeLimit = seconds * g.tickRate

	g.restart()
}

// restart rebuilds the run in place: tiles back to their initial state,
// enemies revived at their spawns, player back at the start with full lives.
func (g *Game) restart() {
	g.world.Restore()

	g.enemies = g.enemies[:0]
	for _, s := range g.enemySpawns {
		g.enemies = append(g.enemies, Enemy{
			Body:  Body{X: s.x, Y: s.y, W: EnemyW, H: EnemyH, FacingRight: s.dir > 0},
			Dir:   s.dir,
			Alive: true,
		})
	}

	g.player = Player{
		Body:  Body{X: g.spawnX, Y: g.spawnY, W: PlayerW, H: PlayerH, FacingRight: true},
		Lives: g.cfg.Gameplay.Lives,
	}

	g.tick = 0
	g.timeLeft = g.timeLimit
	g.paused = false
	g.gameOver = false
	g.won = false
}

// Step advances the simulation by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		if g.gameOver {
			g.restart()
		} else {
			g.paused = !g.paused
		}
		return core.StepResult{State: g.State()}
	}

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if g.timeLeft > 0 {
		g.timeLeft--
		if g.timeLeft == 0 {
			g.loseLife(true)
			return core.StepResult{State: g.State()}
		}
	}

	g.stepPlayer(input)
	if !g.gameOver {
		g.stepEnemies()
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := ""
	switch {
	case g.gameOver && g.won:
		status = "YOU WIN!"
	case g.gameOver:
		status = "GAME OVER"
	case g.paused:
		status = "PAUSED"
	}

	return core.GameState{
		Score:    g.player.Coins,
		Lives:    g.player.Lives,
		TimeLeft: g.timeLeftSeconds(),
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
		Status:   status,
	}
}

// timeLeftSeconds rounds the remaining ticks up to whole seconds, so the HUD
// shows 1 until the final tick expires.
func (g *Game) timeLeftSeconds() int {
	return int(math.Ceil(float64(g.timeLeft) / float64(g.tickRate)))
}
