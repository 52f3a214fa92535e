package sim

import "testing"

func newAISystem(bus *Bus, seed int64) *GhostAISystem {
	return NewGhostAISystem(DefaultMaze(), bus, seed, 1.0, 0.6)
}

func TestGhostSteersTowardTarget(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := newAISystem(bus, 1)
	defer s.Destroy()

	addPlayerAt(w, 1, 1, DirNone, 1.2)
	ghost := addGhostAt(w, GhostBlinky, ModeChase, 6, 5)

	bus.Dispatch(EventGhostMode, GhostModeEvent{Mode: ModeChase})
	s.Update(w)

	// From (6,5) the cheapest step toward (1,1) is left.
	if got := w.Registry().Velocity(ghost).NextDirection; got != DirLeft {
		t.Errorf("NextDirection = %v, want left", got)
	}
}

func TestGhostTieBreaksUpBeforeLeft(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := newAISystem(bus, 1)
	defer s.Destroy()

	// Target (5,4) is exactly one step up or one step left from (6,5).
	addPlayerAt(w, 5, 4, DirNone, 1.2)
	ghost := addGhostAt(w, GhostBlinky, ModeChase, 6, 5)

	bus.Dispatch(EventGhostMode, GhostModeEvent{Mode: ModeChase})
	s.Update(w)

	if got := w.Registry().Velocity(ghost).NextDirection; got != DirUp {
		t.Errorf("NextDirection = %v, want up (tie-break order)", got)
	}
}

func TestGhostNeverReversesVoluntarily(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := newAISystem(bus, 1)
	defer s.Destroy()

	// The player sits directly behind a right-moving ghost.
	addPlayerAt(w, 1, 5, DirNone, 1.2)
	ghost := addGhostAt(w, GhostBlinky, ModeChase, 6, 5)
	w.Registry().Velocity(ghost).Direction = DirRight

	bus.Dispatch(EventGhostMode, GhostModeEvent{Mode: ModeChase})
	s.Update(w) // this tick is the forced reversal from the mode flip
	s.Update(w) // from now on reversal must be off the table

	if got := w.Registry().Velocity(ghost).NextDirection; got == DirRight {
		t.Errorf("ghost queued a voluntary reversal")
	}
}

func TestGhostModeFlipForcesReversal(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := newAISystem(bus, 1)
	defer s.Destroy()

	addPlayerAt(w, 1, 1, DirNone, 1.2)
	ghost := addGhostAt(w, GhostBlinky, ModeScatter, 6, 5)
	vel := w.Registry().Velocity(ghost)
	vel.Direction = DirRight

	bus.Dispatch(EventGhostMode, GhostModeEvent{Mode: ModeChase})
	s.Update(w)

	if vel.Direction != DirLeft {
		t.Errorf("direction after mode flip = %v, want left", vel.Direction)
	}
	if vel.NextDirection != DirNone {
		t.Errorf("queued turn should be cleared on forced reversal")
	}
}

func TestGhostFrightenedWhilePowerUpActive(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := newAISystem(bus, 1)
	defer s.Destroy()

	addPlayerAt(w, 1, 1, DirNone, 1.2)
	ghost := addGhostAt(w, GhostBlinky, ModeChase, 6, 5)
	w.SetPowerUpTimeRemaining(3000)

	s.Update(w)

	ai := w.Registry().GhostAI(ghost)
	vel := w.Registry().Velocity(ghost)
	if ai.Mode != ModeFrightened {
		t.Errorf("mode = %v, want frightened", ai.Mode)
	}
	if vel.Speed != 0.6 {
		t.Errorf("speed = %v, want frightened speed 0.6", vel.Speed)
	}
}

func TestGhostFrightenedWanderIsSeeded(t *testing.T) {
	run := func(seed int64) []Direction {
		w := newPlayingWorld()
		bus := NewBus()
		s := newAISystem(bus, seed)
		defer s.Destroy()

		addPlayerAt(w, 1, 1, DirNone, 1.2)
		ghost := addGhostAt(w, GhostBlinky, ModeChase, 6, 5)
		w.SetPowerUpTimeRemaining(1e9)

		var picks []Direction
		for i := 0; i < 10; i++ {
			s.Update(w)
			picks = append(picks, w.Registry().Velocity(ghost).NextDirection)
		}
		return picks
	}

	a := run(42)
	b := run(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at pick %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGhostEatenHeadsHomeThenRejoins(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := newAISystem(bus, 1)
	defer s.Destroy()

	addPlayerAt(w, 1, 1, DirNone, 1.2)
	ghost := addGhostAt(w, GhostPinky, ModeChase, 6, 5)

	bus.Dispatch(EventGhostEaten, GhostEatenEvent{Ghost: ghost, Type: GhostPinky})
	s.Update(w)

	ai := w.Registry().GhostAI(ghost)
	if ai.Mode != ModeEaten {
		t.Fatalf("mode = %v, want eaten", ai.Mode)
	}

	// Teleport the ghost onto the house target; the next update should
	// release it back into the global mode.
	home := s.maze.HouseTarget
	pos := w.Registry().Position(ghost)
	pos.GridX, pos.GridY = home.X, home.Y
	pos.PixelX, pos.PixelY = CellCenter(home.X, home.Y)

	s.Update(w)

	if ai.Mode != ModeScatter {
		t.Errorf("mode after reaching home = %v, want scatter", ai.Mode)
	}
}

func TestPinkyTargetsFourAheadWithUpQuirk(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := newAISystem(bus, 1)
	defer s.Destroy()

	addPlayerAt(w, 10, 10, DirRight, 1.2)
	ghost := addGhostAt(w, GhostPinky, ModeChase, 20, 20)
	ai := w.Registry().GhostAI(ghost)
	pos := w.Registry().Position(ghost)

	if got := s.target(w, ai, pos); got != (Point{X: 14, Y: 10}) {
		t.Errorf("target facing right = %+v, want (14,10)", got)
	}

	// Facing up also shifts the target four tiles left.
	player, _ := Player(w)
	w.Registry().Velocity(player.Entity).Direction = DirUp
	if got := s.target(w, ai, pos); got != (Point{X: 6, Y: 6}) {
		t.Errorf("target facing up = %+v, want (6,6)", got)
	}
}

func TestInkyDoublesBlinkyVector(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := newAISystem(bus, 1)
	defer s.Destroy()

	addPlayerAt(w, 10, 10, DirRight, 1.2)
	addGhostAt(w, GhostBlinky, ModeChase, 4, 10)
	ghost := addGhostAt(w, GhostInky, ModeChase, 20, 20)
	ai := w.Registry().GhostAI(ghost)
	pos := w.Registry().Position(ghost)

	// Pivot is (12,10); doubling from blinky (4,10) lands on (20,10).
	if got := s.target(w, ai, pos); got != (Point{X: 20, Y: 10}) {
		t.Errorf("target = %+v, want (20,10)", got)
	}
}

func TestClydeRetreatsWhenClose(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := newAISystem(bus, 1)
	defer s.Destroy()

	addPlayerAt(w, 10, 10, DirNone, 1.2)
	ghost := addGhostAt(w, GhostClyde, ModeChase, 24, 10)
	ai := w.Registry().GhostAI(ghost)
	pos := w.Registry().Position(ghost)

	// 14 tiles away: chase the player directly.
	if got := s.target(w, ai, pos); got != (Point{X: 10, Y: 10}) {
		t.Errorf("far target = %+v, want player cell", got)
	}

	// 4 tiles away: fall back to the scatter corner.
	pos.GridX = 14
	if got := s.target(w, ai, pos); got != (Point{X: ai.ScatterX, Y: ai.ScatterY}) {
		t.Errorf("near target = %+v, want scatter corner", got)
	}
}

func TestGhostAIGatedOnPlayingStatus(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := newAISystem(bus, 1)
	defer s.Destroy()

	addPlayerAt(w, 1, 1, DirNone, 1.2)
	ghost := addGhostAt(w, GhostBlinky, ModeChase, 6, 5)
	w.SetStatus(StatusPaused)

	s.Update(w)

	if got := w.Registry().Velocity(ghost).NextDirection; got != DirNone {
		t.Errorf("ghost steered while paused: %v", got)
	}
}
