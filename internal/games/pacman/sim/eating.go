package sim

import "math"

// EatingSystem consumes collectibles the player overlaps: score, power-up
// activation, destruction of the eaten entity, and win detection when the
// board empties.
type EatingSystem struct {
	bus *Bus
}

// NewEatingSystem creates the system.
func NewEatingSystem(bus *Bus) *EatingSystem {
	return &EatingSystem{bus: bus}
}

// Update checks every edible against the player position and consumes the
// overlapping ones.
func (s *EatingSystem) Update(w *World) {
	if w.Status() != StatusPlaying {
		return
	}

	reg := w.Registry()
	playerPos := playerPosition(w)
	if playerPos == nil {
		return
	}

	var eaten []Entity
	for _, id := range reg.Query(KindEdible, KindPosition) {
		pos := reg.Position(id)
		if pos == nil {
			continue
		}
		if pixelDistance(playerPos, pos) < EatRadius {
			eaten = append(eaten, id)
		}
	}

	for _, id := range eaten {
		s.consume(w, id)
	}

	if len(eaten) > 0 && len(reg.Query(KindEdible)) == 0 {
		w.SetStatus(StatusWon)
		s.bus.Dispatch(EventLevelComplete, LevelCompleteEvent{
			Level: w.Level(),
			Score: w.Score(),
		})
	}
}

func (s *EatingSystem) consume(w *World, id Entity) {
	reg := w.Registry()
	ed := reg.Edible(id)
	pos := reg.Position(id)
	if ed == nil || pos == nil {
		return
	}

	w.AddScore(ed.Points)

	if pu := reg.PowerUp(id); pu != nil {
		// A fresh power pellet restarts the timer and the kill streak,
		// even if one is already running.
		w.SetPowerUpTimeRemaining(pu.DurationMs)
		w.ResetGhostEatenStreak()
		s.bus.Dispatch(EventPowerPelletEaten, PowerPelletEatenEvent{
			Entity:     id,
			GridX:      pos.GridX,
			GridY:      pos.GridY,
			Points:     ed.Points,
			DurationMs: pu.DurationMs,
		})
		s.bus.Dispatch(EventPowerUpStarted, PowerUpTimeEvent{RemainingMs: pu.DurationMs})
	} else {
		s.bus.Dispatch(EventPelletEaten, PelletEatenEvent{
			Entity: id,
			GridX:  pos.GridX,
			GridY:  pos.GridY,
			Points: ed.Points,
		})
	}

	reg.Destroy(id)
}

// playerPosition returns the live player's position, or nil if no player
// entity exists (the system then degrades to a no-op).
func playerPosition(w *World) *Position {
	reg := w.Registry()
	for _, id := range reg.Query(KindPlayerControlled, KindPosition) {
		if pos := reg.Position(id); pos != nil {
			return pos
		}
	}
	return nil
}

// pixelDistance is the Euclidean pixel distance between two positions.
func pixelDistance(a, b *Position) float64 {
	dx := a.PixelX - b.PixelX
	dy := a.PixelY - b.PixelY
	return math.Sqrt(dx*dx + dy*dy)
}
