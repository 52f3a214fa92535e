package sim

// Simulation scale constants. Speeds are calibrated in pixels per reference
// frame, so motion stays frame-rate independent for any injected delta time.
const (
	TileSize         = 8.0
	ReferenceFrameMs = 1000.0 / 60.0

	// AlignTolerance is how close to a cell center an entity must be to
	// count as grid-aligned (a quarter tile).
	AlignTolerance = TileSize / 4

	// EatRadius doubles as the collision radius. Keeping them identical
	// guarantees a power pellet sharing a cell with a ghost is consumed
	// before the ghost collision resolves.
	EatRadius = 0.8 * TileSize
)

// CellKind tags one maze cell.
type CellKind int

const (
	CellWall CellKind = iota
	CellPath
	CellTunnel
	CellGhostHouse
	CellGhostDoor
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Maze is the static level geometry plus everything precomputed from it:
// collectible positions, spawn points, scatter corners, and the ghost-house
// return target. It is immutable for the whole session.
type Maze struct {
	Width, Height int
	TunnelRow     int

	PlayerStart    Point
	GhostStarts    map[GhostType]Point
	ScatterCorners map[GhostType]Point
	HouseTarget    Point

	Pellets      []Point
	PowerPellets []Point

	cells [][]CellKind
}

// Layout legend:
//
//	'#' wall          '.' pellet        'o' power pellet
//	' ' open path     '=' ghost door    'H' ghost house
//	'T' tunnel mouth  'P' player start
var mazeLayout = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"######.##### ## #####.######",
	"######.##          ##.######",
	"######.## ###==### ##.######",
	"######.## #HHHHHH# ##.######",
	"T     .   #HHHHHH#   .     T",
	"######.## #HHHHHH# ##.######",
	"######.## ######## ##.######",
	"######.##          ##.######",
	"######.## ######## ##.######",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o..##.......P .......##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// DefaultMaze parses the built-in layout. The result is freshly built each
// call so callers can never alias each other's precomputed slices.
func DefaultMaze() *Maze {
	m := &Maze{
		Height:         len(mazeLayout),
		Width:          len(mazeLayout[0]),
		GhostStarts:    make(map[GhostType]Point),
		ScatterCorners: make(map[GhostType]Point),
	}

	m.cells = make([][]CellKind, m.Height)
	for y, row := range mazeLayout {
		m.cells[y] = make([]CellKind, m.Width)
		for x, ch := range row {
			switch ch {
			case '#':
				m.cells[y][x] = CellWall
			case '.':
				m.cells[y][x] = CellPath
				m.Pellets = append(m.Pellets, Point{X: x, Y: y})
			case 'o':
				m.cells[y][x] = CellPath
				m.PowerPellets = append(m.PowerPellets, Point{X: x, Y: y})
			case '=':
				m.cells[y][x] = CellGhostDoor
			case 'H':
				m.cells[y][x] = CellGhostHouse
			case 'T':
				m.cells[y][x] = CellTunnel
				m.TunnelRow = y
			case 'P':
				m.cells[y][x] = CellPath
				m.PlayerStart = Point{X: x, Y: y}
			default:
				m.cells[y][x] = CellPath
			}
		}
	}

	// Blinky waits just above the door; the other three start in the house.
	m.GhostStarts[GhostBlinky] = Point{X: 13, Y: 11}
	m.GhostStarts[GhostPinky] = Point{X: 13, Y: 14}
	m.GhostStarts[GhostInky] = Point{X: 11, Y: 14}
	m.GhostStarts[GhostClyde] = Point{X: 16, Y: 14}
	m.HouseTarget = Point{X: 13, Y: 14}

	m.ScatterCorners[GhostBlinky] = Point{X: m.Width - 3, Y: 0}
	m.ScatterCorners[GhostPinky] = Point{X: 2, Y: 0}
	m.ScatterCorners[GhostInky] = Point{X: m.Width - 1, Y: m.Height - 1}
	m.ScatterCorners[GhostClyde] = Point{X: 0, Y: m.Height - 1}

	return m
}

// Cell returns the kind at (x, y). Out-of-bounds columns on the tunnel row
// read as tunnel (so wraparound motion is legal); everything else
// out-of-bounds reads as wall.
func (m *Maze) Cell(x, y int) CellKind {
	if y < 0 || y >= m.Height {
		return CellWall
	}
	if x < 0 || x >= m.Width {
		if y == m.TunnelRow {
			return CellTunnel
		}
		return CellWall
	}
	return m.cells[y][x]
}

// Walkable reports whether an entity may occupy (x, y). Ghost-house and
// ghost-door cells are off limits for the player only.
func (m *Maze) Walkable(x, y int, player bool) bool {
	switch m.Cell(x, y) {
	case CellWall:
		return false
	case CellGhostHouse, CellGhostDoor:
		return !player
	default:
		return true
	}
}

// CellCenter returns the pixel coordinates of a cell's exact center.
func CellCenter(x, y int) (px, py float64) {
	return (float64(x) + 0.5) * TileSize, (float64(y) + 0.5) * TileSize
}

// GridAt converts a pixel coordinate to its grid cell (floor division).
func GridAt(p float64) int {
	g := int(p / TileSize)
	if p < 0 && float64(g)*TileSize != p {
		g--
	}
	return g
}
