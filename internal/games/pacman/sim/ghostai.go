package sim

import (
	"math"
	"math/rand"
)

// GhostAISystem resolves each ghost's mode and picks its next direction every
// tick. The global scatter/chase oscillation is owned by the engine; this
// system reacts to the mode-change, power-up, and ghost-eaten events and
// keeps its per-session state (pending eaten set, forced-reversal flag)
// encapsulated here.
type GhostAISystem struct {
	maze *Maze
	bus  *Bus
	rng  *rand.Rand

	ghostSpeed      float64
	frightenedSpeed float64

	globalMode   GhostMode
	pendingEaten map[Entity]struct{}
	reverseAll   bool

	unsubs []func()
}

// NewGhostAISystem creates the system. The rng seed makes frightened
// wandering reproducible.
func NewGhostAISystem(maze *Maze, bus *Bus, seed int64, ghostSpeed, frightenedSpeed float64) *GhostAISystem {
	s := &GhostAISystem{
		maze:            maze,
		bus:             bus,
		rng:             rand.New(rand.NewSource(seed)),
		ghostSpeed:      ghostSpeed,
		frightenedSpeed: frightenedSpeed,
		globalMode:      ModeScatter,
		pendingEaten:    make(map[Entity]struct{}),
	}

	s.unsubs = append(s.unsubs,
		bus.Subscribe(EventGhostMode, func(payload any) {
			if ev, ok := payload.(GhostModeEvent); ok {
				s.globalMode = ev.Mode
				s.reverseAll = true
			}
		}),
		bus.Subscribe(EventGhostEaten, func(payload any) {
			if ev, ok := payload.(GhostEatenEvent); ok {
				s.pendingEaten[ev.Ghost] = struct{}{}
			}
		}),
	)

	return s
}

// Reset restores session state for a fresh game.
func (s *GhostAISystem) Reset() {
	s.globalMode = ModeScatter
	s.pendingEaten = make(map[Entity]struct{})
	s.reverseAll = false
}

// ClearPending empties the pending-eaten set (player respawn rewinds ghosts
// to their spawn cells, so nobody is travelling home anymore).
func (s *GhostAISystem) ClearPending() {
	s.pendingEaten = make(map[Entity]struct{})
}

// Destroy unsubscribes the system from the bus.
func (s *GhostAISystem) Destroy() {
	for _, u := range s.unsubs {
		u()
	}
	s.unsubs = nil
}

// Update recomputes mode, speed, and steering for every ghost.
func (s *GhostAISystem) Update(w *World) {
	if w.Status() != StatusPlaying {
		return
	}

	reg := w.Registry()
	for _, id := range reg.Query(KindGhostAI, KindPosition, KindVelocity) {
		ai := reg.GhostAI(id)
		pos := reg.Position(id)
		vel := reg.Velocity(id)
		if ai == nil || pos == nil || vel == nil {
			continue
		}

		s.resolveMode(w, id, ai, pos)
		s.applySpeed(ai, vel)

		// A global mode flip reverses everyone immediately, overriding
		// normal steering for this tick only.
		if s.reverseAll && vel.Direction != DirNone {
			vel.Direction = vel.Direction.Opposite()
			vel.NextDirection = DirNone
			continue
		}

		s.steer(w, ai, pos, vel)
	}

	s.reverseAll = false
}

// resolveMode applies the priority order: eaten (until home), frightened
// (vulnerable or power-up active), then the global mode.
func (s *GhostAISystem) resolveMode(w *World, id Entity, ai *GhostAI, pos *Position) {
	if _, eaten := s.pendingEaten[id]; eaten {
		if pos.GridX == s.maze.HouseTarget.X && pos.GridY == s.maze.HouseTarget.Y {
			delete(s.pendingEaten, id)
			ai.Mode = s.globalMode
		} else {
			ai.Mode = ModeEaten
		}
		return
	}

	v := w.Registry().Vulnerable(id)
	if (v != nil && v.RemainingMs > 0) || w.PowerUpTimeRemaining() > 0 {
		ai.Mode = ModeFrightened
		return
	}

	ai.Mode = s.globalMode
}

func (s *GhostAISystem) applySpeed(ai *GhostAI, vel *Velocity) {
	speed := s.ghostSpeed
	if ai.Mode == ModeFrightened {
		speed = s.frightenedSpeed
	}
	if vel.Speed != speed {
		vel.Speed = speed
	}
}

// steer writes the ghost's next direction. Frightened ghosts wander randomly;
// everyone else heads for a target cell.
func (s *GhostAISystem) steer(w *World, ai *GhostAI, pos *Position, vel *Velocity) {
	if ai.Mode == ModeFrightened {
		s.steerRandom(pos, vel)
		return
	}

	target := s.target(w, ai, pos)
	s.steerToward(target, pos, vel)
}

// target computes the chase/scatter/eaten target cell for a ghost.
func (s *GhostAISystem) target(w *World, ai *GhostAI, pos *Position) Point {
	if ai.Mode == ModeEaten {
		return s.maze.HouseTarget
	}
	if ai.Mode == ModeScatter {
		return Point{X: ai.ScatterX, Y: ai.ScatterY}
	}

	playerPos, playerDir, ok := s.playerState(w)
	if !ok {
		return Point{X: ai.ScatterX, Y: ai.ScatterY}
	}

	switch ai.Type {
	case GhostBlinky:
		return playerPos

	case GhostPinky:
		// Four tiles ahead of the player. When the player faces up the
		// original arcade also shifts four tiles left; that quirk is
		// reproduced on purpose.
		dx, dy := playerDir.Delta()
		t := Point{X: playerPos.X + 4*dx, Y: playerPos.Y + 4*dy}
		if playerDir == DirUp {
			t.X -= 4
		}
		return t

	case GhostInky:
		dx, dy := playerDir.Delta()
		pivot := Point{X: playerPos.X + 2*dx, Y: playerPos.Y + 2*dy}
		blinky, ok := s.ghostCell(w, GhostBlinky)
		if !ok {
			return playerPos
		}
		return Point{
			X: blinky.X + 2*(pivot.X-blinky.X),
			Y: blinky.Y + 2*(pivot.Y-blinky.Y),
		}

	case GhostClyde:
		dx := float64(pos.GridX - playerPos.X)
		dy := float64(pos.GridY - playerPos.Y)
		if math.Sqrt(dx*dx+dy*dy) > 8 {
			return playerPos
		}
		return Point{X: ai.ScatterX, Y: ai.ScatterY}

	default:
		return playerPos
	}
}

// steerToward scores the candidate directions by squared distance from the
// resulting cell to the target and queues the best one. Ghosts never reverse
// voluntarily; ties break in the fixed order up > left > down > right.
func (s *GhostAISystem) steerToward(target Point, pos *Position, vel *Velocity) {
	forbidden := vel.Direction.Opposite()

	best := DirNone
	bestDist := math.MaxFloat64
	for _, dir := range directionOrder {
		if dir == forbidden && vel.Direction != DirNone {
			continue
		}
		dx, dy := dir.Delta()
		cx, cy := pos.GridX+dx, pos.GridY+dy
		if !s.maze.Walkable(cx, cy, false) {
			continue
		}
		ddx := float64(cx - target.X)
		ddy := float64(cy - target.Y)
		dist := ddx*ddx + ddy*ddy
		if dist < bestDist {
			bestDist = dist
			best = dir
		}
	}

	if best == DirNone {
		s.reverseAtDeadEnd(pos, vel)
		return
	}
	vel.NextDirection = best
}

// steerRandom picks uniformly among legal non-reversing directions, falling
// back to reversal at dead ends.
func (s *GhostAISystem) steerRandom(pos *Position, vel *Velocity) {
	forbidden := vel.Direction.Opposite()

	var candidates []Direction
	for _, dir := range directionOrder {
		if dir == forbidden && vel.Direction != DirNone {
			continue
		}
		dx, dy := dir.Delta()
		if s.maze.Walkable(pos.GridX+dx, pos.GridY+dy, false) {
			candidates = append(candidates, dir)
		}
	}

	if len(candidates) == 0 {
		s.reverseAtDeadEnd(pos, vel)
		return
	}
	vel.NextDirection = candidates[s.rng.Intn(len(candidates))]
}

func (s *GhostAISystem) reverseAtDeadEnd(pos *Position, vel *Velocity) {
	rev := vel.Direction.Opposite()
	if rev == DirNone {
		return
	}
	dx, dy := rev.Delta()
	if s.maze.Walkable(pos.GridX+dx, pos.GridY+dy, false) {
		vel.NextDirection = rev
	}
}

// playerState returns the player's grid cell and travel direction.
func (s *GhostAISystem) playerState(w *World) (Point, Direction, bool) {
	reg := w.Registry()
	for _, id := range reg.Query(KindPlayerControlled, KindPosition) {
		pos := reg.Position(id)
		if pos == nil {
			continue
		}
		dir := DirNone
		if vel := reg.Velocity(id); vel != nil {
			dir = vel.Direction
		}
		return Point{X: pos.GridX, Y: pos.GridY}, dir, true
	}
	return Point{}, DirNone, false
}

// ghostCell locates a ghost of the given identity.
func (s *GhostAISystem) ghostCell(w *World, t GhostType) (Point, bool) {
	reg := w.Registry()
	for _, id := range reg.Query(KindGhostAI, KindPosition) {
		ai := reg.GhostAI(id)
		pos := reg.Position(id)
		if ai == nil || pos == nil || ai.Type != t {
			continue
		}
		return Point{X: pos.GridX, Y: pos.GridY}, true
	}
	return Point{}, false
}
