package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Terminal cells are roughly twice as tall as wide, so one tile maps to a
// 2x1 block of cells: 8 world units per cell horizontally, 16 vertically.
const (
	cellUnitsX = 8.0
	cellUnitsY = 16.0
)

const hudRows = 1

// Render draws the visible slice of the world to the screen, camera centered
// on the player and clamped to the level bounds.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	camX, camY := g.camera(dst)
	viewH := dst.Height() - hudRows

	g.drawTiles(dst, camX, camY, viewH)
	g.drawEnemies(dst, camX, camY, viewH)
	g.drawPlayer(dst, camX, camY, viewH)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		if g.won {
			g.drawCenteredMessage(dst, "YOU WIN!",
				fmt.Sprintf("Coins: %d  |  Press R to play again", g.player.Coins))
		} else {
			g.drawCenteredMessage(dst, "GAME OVER",
				fmt.Sprintf("Coins: %d  |  Press R to restart", g.player.Coins))
		}
	}
}

// camera returns the world coordinates of the top-left visible corner.
func (g *Game) camera(dst *core.Screen) (float64, float64) {
	viewW := float64(dst.Width()) * cellUnitsX
	viewH := float64(dst.Height()-hudRows) * cellUnitsY

	cx, cy := g.player.Rect().Center()
	camX := cx - viewW/2
	camY := cy - viewH/2

	camX = core.ClampF(camX, 0, math.Max(0, g.world.WorldWidth()-viewW))
	camY = core.ClampF(camY, 0, math.Max(0, g.world.WorldHeight()-viewH))
	return camX, camY
}

var tileGlyphs = map[TileKind]core.Cell{
	TileSolid:  {Rune: '█', Color: core.ColorGray},
	TileGround: {Rune: '▓', Color: core.ColorGreen},
	TileOneWay: {Rune: '▔', Color: core.ColorCyan},
	TileCoin:   {Rune: '●', Color: core.ColorBrightYellow},
	TileFlag:   {Rune: '⚑', Color: core.ColorBrightMagenta},
}

func (g *Game) drawTiles(dst *core.Screen, camX, camY float64, viewH int) {
	minCX := int(math.Floor(camX / TileSize))
	minCY := int(math.Floor(camY / TileSize))
	maxCX := int(math.Ceil((camX + float64(dst.Width())*cellUnitsX) / TileSize))
	maxCY := int(math.Ceil((camY + float64(viewH)*cellUnitsY) / TileSize))

	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			kind := g.world.At(cx, cy)
			glyph, ok := tileGlyphs[kind]
			if !ok {
				continue
			}
			sx, sy := g.toScreen(float64(cx)*TileSize, float64(cy)*TileSize, camX, camY)
			dst.SetCell(sx, sy, glyph.Rune, glyph.Color)
			// A tile spans two cells horizontally; coins render as a single
			// glyph instead of a bar.
			if kind != TileCoin {
				dst.SetCell(sx+1, sy, glyph.Rune, glyph.Color)
			}
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, camX, camY float64, viewH int) {
	p := &g.player

	// Flicker while invulnerable after a respawn.
	if p.Invulnerable() && (g.tick/4)%2 == 0 {
		return
	}

	cx, cy := p.Rect().Center()
	sx, sy := g.toScreen(cx, cy, camX, camY)
	if sy >= viewH+hudRows {
		return
	}
	dst.SetCell(sx, sy, '@', core.ColorBrightWhite)
}

func (g *Game) drawEnemies(dst *core.Screen, camX, camY float64, viewH int) {
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive {
			continue
		}
		cx, cy := e.Rect().Center()
		sx, sy := g.toScreen(cx, cy, camX, camY)
		if sy >= viewH+hudRows {
			continue
		}
		glyph := '◄'
		if e.FacingRight {
			glyph = '►'
		}
		dst.SetCell(sx, sy, glyph, core.ColorBrightRed)
	}
}

// toScreen converts world coordinates to screen cells, offset below the HUD.
func (g *Game) toScreen(x, y, camX, camY float64) (int, int) {
	sx := int(math.Floor((x - camX) / cellUnitsX))
	sy := int(math.Floor((y-camY)/cellUnitsY)) + hudRows
	return sx, sy
}

func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" ● %d  ♥ %d ", g.player.Coins, g.player.Lives)
	dst.DrawTextColored(1, 0, left, core.ColorBrightYellow)

	name := g.level.Name
	dst.DrawText((dst.Width()-len(name))/2, 0, name)

	timeText := fmt.Sprintf(" %d:%02d ", g.timeLeftSeconds()/60, g.timeLeftSeconds()%60)
	dst.DrawText(dst.Width()-len(timeText)-1, 0, timeText)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
