package platformer

// Default player start used when a level has no 'S' marker.
const (
	defaultSpawnX = TileSize
	defaultSpawnY = TileSize
)

// Level is a level definition: a rectangular array of equal-length text rows.
// Characters:
//
//	'#' = solid block
//	'=' = ground (solid)
//	'-' = one-way platform
//	'C' = coin
//	'E' = enemy spawn (converted to an entity, cleared to empty)
//	'F' = flag (level goal)
//	'S' = player spawn marker (non-colliding)
//	' ' = empty
//
// Rows of differing length are a load-time contract violation; the grid is
// sized by the first row.
type Level struct {
	ID               string
	Name             string
	TimeLimitSeconds int // 0 means use the configured default
	Rows             []string
}

// tileAnchor places an entity of the given size standing on the bottom edge
// of tile (cx, cy), centered horizontally.
func tileAnchor(cx, cy int, w, h float64) (float64, float64) {
	x := float64(cx)*TileSize + (TileSize-w)/2
	y := float64(cy+1)*TileSize - h
	return x, y
}

// Build converts the character rows into a tile grid, the player spawn point,
// and the enemy spawn list. Enemy markers are cleared to empty at load; the
// spawn marker stays in the grid as a non-colliding tile.
func (l *Level) Build() (world *TileWorld, spawnX, spawnY float64, enemies []enemySpawn) {
	height := len(l.Rows)
	width := 0
	if height > 0 {
		width = len(l.Rows[0])
	}

	tiles := make([]TileKind, width*height)
	spawnX, spawnY = defaultSpawnX, defaultSpawnY

	for cy, row := range l.Rows {
		for cx := 0; cx < width && cx < len(row); cx++ {
			var kind TileKind
			switch row[cx] {
			case '#':
				kind = TileSolid
			case '=':
				kind = TileGround
			case '-':
				kind = TileOneWay
			case 'C':
				kind = TileCoin
			case 'F':
				kind = TileFlag
			case 'S':
				kind = TileSpawn
				spawnX, spawnY = tileAnchor(cx, cy, PlayerW, PlayerH)
			case 'E':
				x, y := tileAnchor(cx, cy, EnemyW, EnemyH)
				enemies = append(enemies, enemySpawn{x: x, y: y, dir: -1})
				kind = TileEmpty
			default:
				kind = TileEmpty
			}
			tiles[cy*width+cx] = kind
		}
	}

	return NewTileWorld(width, height, tiles), spawnX, spawnY, enemies
}

// BuiltinLevels returns all built-in levels.
func BuiltinLevels() []*Level {
	return []*Level{
		{
			ID:   "meadow",
			Name: "Meadow",
			Rows: []string{
				"                                                ",
				"                                                ",
				"                 CCC                            ",
				"                -----                       C   ",
				"       C                                   ###  ",
				"      ###           C C        CCC           F  ",
				"  S          C     #####      -----         ##  ",
				" ===   ==   ###          E              E       ",
				"====================  ====================  ====",
				"====================  ====================  ====",
			},
		},
		{
			ID:   "caverns",
			Name: "Caverns",
			Rows: []string{
				"################################################",
				"#                                              #",
				"#  S        C C C                  C C         #",
				"# ===      -------        ###    -----     F   #",
				"#                 C                       ###  #",
				"#      E         ###   C      E                #",
				"#   ########          ###   ######   C C C     #",
				"#                                    #######   #",
				"#        C C                                   #",
				"#      ========        E                       #",
				"#                 ==========          =====    #",
				"################################################",
			},
			TimeLimitSeconds: 240,
		},
		{
			ID:   "summit",
			Name: "Summit",
			Rows: []string{
				"                                        ",
				"                                   F    ",
				"                                  ###   ",
				"                         C C            ",
				"                        -----           ",
				"                  C            E        ",
				"                 ###       ########     ",
				"           C C                          ",
				"          -----     E                   ",
				"    C            #######                ",
				"   ###                                  ",
				" S                                      ",
				"=====   ======                          ",
				"=====   ======                          ",
			},
			TimeLimitSeconds: 150,
		},
	}
}

// GetLevelByID returns a built-in level by its ID.
func GetLevelByID(id string) (*Level, bool) {
	for _, l := range BuiltinLevels() {
		if l.ID == id {
			return l, true
		}
	}
	return nil, false
}

// GetLevel returns a built-in level by index (wraps around if index >= len).
func GetLevel(index int) *Level {
	levels := BuiltinLevels()
	return levels[index%len(levels)]
}

// LevelCount returns the number of built-in levels.
func LevelCount() int {
	return len(BuiltinLevels())
}
