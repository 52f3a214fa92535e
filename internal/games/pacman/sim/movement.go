package sim

import "math"

// MovementSystem advances every entity holding both Position and Velocity by
// one tick: queued turns, sub-pixel displacement, tunnel wraparound, and wall
// collision with a flush stop. It mutates components in place and runs only
// while the game is playing.
type MovementSystem struct {
	maze *Maze
}

// NewMovementSystem creates a movement system over the given maze.
func NewMovementSystem(maze *Maze) *MovementSystem {
	return &MovementSystem{maze: maze}
}

// Update advances all movable entities by the world's delta time.
func (s *MovementSystem) Update(w *World) {
	if w.Status() != StatusPlaying || w.DeltaTime() == 0 {
		return
	}

	reg := w.Registry()
	for _, id := range reg.Query(KindPosition, KindVelocity) {
		pos := reg.Position(id)
		vel := reg.Velocity(id)
		if pos == nil || vel == nil {
			continue
		}
		s.move(w, id, pos, vel)
	}
}

func (s *MovementSystem) move(w *World, id Entity, pos *Position, vel *Velocity) {
	if vel.Direction == DirNone && vel.NextDirection == DirNone {
		return
	}

	isPlayer := w.Registry().Has(id, KindPlayerControlled)

	// Grid coordinates are never trusted as stored state: recompute from
	// pixels before any decision that depends on them.
	pos.GridX = GridAt(pos.PixelX)
	pos.GridY = GridAt(pos.PixelY)

	s.applyQueuedTurn(pos, vel, isPlayer)

	if vel.Direction == DirNone {
		return
	}

	disp := vel.Speed * (w.DeltaTime() / ReferenceFrameMs)
	dx, dy := vel.Direction.Delta()
	nx := pos.PixelX + float64(dx)*disp
	ny := pos.PixelY + float64(dy)*disp

	// Tunnel wraparound: modulo, not clamping.
	if pos.GridY == s.maze.TunnelRow {
		span := float64(s.maze.Width) * TileSize
		if nx < 0 {
			nx += span
		} else if nx >= span {
			nx -= span
		}
	}

	nx, ny = s.blockWalls(vel.Direction, nx, ny, isPlayer)

	pos.PixelX = nx
	pos.PixelY = ny
	pos.GridX = clampInt(GridAt(nx), 0, s.maze.Width-1)
	pos.GridY = clampInt(GridAt(ny), 0, s.maze.Height-1)
}

// applyQueuedTurn resolves NextDirection. A 180° reversal is always legal and
// applies immediately; any other turn is adopted only at grid alignment, with
// the position snapped to the cell center so the new axis starts clean.
func (s *MovementSystem) applyQueuedTurn(pos *Position, vel *Velocity, isPlayer bool) {
	if vel.NextDirection == DirNone {
		return
	}

	if vel.Direction != DirNone && vel.NextDirection == vel.Direction.Opposite() {
		vel.Direction = vel.NextDirection
		vel.NextDirection = DirNone
		return
	}

	if !isAligned(pos) {
		return
	}

	dx, dy := vel.NextDirection.Delta()
	if !s.maze.Walkable(pos.GridX+dx, pos.GridY+dy, isPlayer) {
		return
	}

	pos.PixelX, pos.PixelY = CellCenter(pos.GridX, pos.GridY)
	vel.Direction = vel.NextDirection
	vel.NextDirection = DirNone
}

// blockWalls checks the leading edge of the entity's extent against the maze
// and, on a hit, snaps the entity flush against the wall. Four symmetric
// cases, one per direction of travel.
func (s *MovementSystem) blockWalls(dir Direction, nx, ny float64, isPlayer bool) (float64, float64) {
	const half = TileSize / 2

	switch dir {
	case DirRight:
		cell := int(math.Floor((nx + half) / TileSize))
		if !s.maze.Walkable(cell, GridAt(ny), isPlayer) {
			nx = float64(cell)*TileSize - half
		}
	case DirLeft:
		cell := int(math.Floor((nx - half) / TileSize))
		if !s.maze.Walkable(cell, GridAt(ny), isPlayer) {
			nx = float64(cell+1)*TileSize + half
		}
	case DirDown:
		cell := int(math.Floor((ny + half) / TileSize))
		if !s.maze.Walkable(GridAt(nx), cell, isPlayer) {
			ny = float64(cell)*TileSize - half
		}
	case DirUp:
		cell := int(math.Floor((ny - half) / TileSize))
		if !s.maze.Walkable(GridAt(nx), cell, isPlayer) {
			ny = float64(cell+1)*TileSize + half
		}
	}
	return nx, ny
}

// isAligned reports whether the position is within tolerance of its cell's
// exact center on both axes.
func isAligned(pos *Position) bool {
	cx, cy := CellCenter(pos.GridX, pos.GridY)
	return math.Abs(pos.PixelX-cx) <= AlignTolerance &&
		math.Abs(pos.PixelY-cy) <= AlignTolerance
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
