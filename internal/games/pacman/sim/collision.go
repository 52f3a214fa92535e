package sim

// CollisionSystem resolves player-ghost overlap: a vulnerable ghost is eaten
// for streak-doubled points; a dangerous ghost costs a life and ends the tick
// (at most one death per tick, by design).
type CollisionSystem struct {
	bus *Bus
}

// Ghost point schedule: doubling per kill within one power-up, capped.
const (
	baseGhostPoints = 200
	maxGhostPoints  = 1600
)

// NewCollisionSystem creates the system.
func NewCollisionSystem(bus *Bus) *CollisionSystem {
	return &CollisionSystem{bus: bus}
}

// Update processes colliding ghosts in discovery order.
func (s *CollisionSystem) Update(w *World) {
	if w.Status() != StatusPlaying {
		return
	}

	reg := w.Registry()
	playerPos := playerPosition(w)
	if playerPos == nil {
		return
	}

	var colliding []Entity
	for _, id := range reg.Query(KindGhostAI, KindPosition) {
		ai := reg.GhostAI(id)
		pos := reg.Position(id)
		if ai == nil || pos == nil || ai.Mode == ModeEaten {
			continue
		}
		if pixelDistance(playerPos, pos) < EatRadius {
			colliding = append(colliding, id)
		}
	}

	for _, id := range colliding {
		if reg.Vulnerable(id) != nil {
			s.eatGhost(w, id)
			continue
		}

		w.LoseLife()
		s.bus.Dispatch(EventPlayerDied, PlayerDiedEvent{LivesRemaining: w.Lives()})
		if w.Lives() == 0 {
			w.SetStatus(StatusLost)
			s.bus.Dispatch(EventGameOver, GameOverEvent{
				FinalScore: w.Score(),
				Level:      w.Level(),
			})
		}
		// A death short-circuits the loop no matter how many other
		// ghosts were overlapping this tick.
		return
	}
}

func (s *CollisionSystem) eatGhost(w *World, id Entity) {
	reg := w.Registry()
	ai := reg.GhostAI(id)
	pos := reg.Position(id)
	if ai == nil || pos == nil {
		return
	}

	streak := w.IncrementGhostEatenStreak()
	points := ghostPoints(streak)
	w.AddScore(points)

	reg.Remove(id, KindVulnerable)
	ai.Mode = ModeEaten

	s.bus.Dispatch(EventGhostEaten, GhostEatenEvent{
		Ghost:  id,
		Type:   ai.Type,
		Points: points,
		Streak: streak,
		GridX:  pos.GridX,
		GridY:  pos.GridY,
	})
}

// ghostPoints returns 200, 400, 800, 1600 for streaks 1..4; deeper streaks
// stay capped at 1600.
func ghostPoints(streak int) int {
	if streak < 1 {
		streak = 1
	}
	points := baseGhostPoints << (streak - 1)
	if points > maxGhostPoints {
		points = maxGhostPoints
	}
	return points
}
