package sim

import "testing"

func TestCollisionEatsVulnerableGhost(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := NewCollisionSystem(bus)

	addPlayerAt(w, 5, 5, DirNone, 1.2)
	ghost := addGhostAt(w, GhostBlinky, ModeFrightened, 5, 5)
	w.Registry().SetVulnerable(ghost, Vulnerable{RemainingMs: 3000})

	var got GhostEatenEvent
	bus.Subscribe(EventGhostEaten, func(p any) { got = p.(GhostEatenEvent) })

	s.Update(w)

	if w.Score() != 200 {
		t.Errorf("score = %d, want 200", w.Score())
	}
	if w.Lives() != 3 {
		t.Errorf("lives = %d, want 3 (no death)", w.Lives())
	}
	if w.Registry().Vulnerable(ghost) != nil {
		t.Error("eaten ghost still vulnerable")
	}
	if mode := w.Registry().GhostAI(ghost).Mode; mode != ModeEaten {
		t.Errorf("ghost mode = %v, want eaten", mode)
	}
	if got.Ghost != ghost || got.Points != 200 || got.Streak != 1 {
		t.Errorf("ghost:eaten payload = %+v", got)
	}
}

func TestCollisionStreakDoublesAndCaps(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := NewCollisionSystem(bus)

	addPlayerAt(w, 5, 5, DirNone, 1.2)
	for i := 0; i < 5; i++ {
		g := addGhostAt(w, GhostType(i%4), ModeFrightened, 5, 5)
		w.Registry().SetVulnerable(g, Vulnerable{RemainingMs: 3000})
	}

	var points []int
	bus.Subscribe(EventGhostEaten, func(p any) {
		points = append(points, p.(GhostEatenEvent).Points)
	})

	s.Update(w)

	want := []int{200, 400, 800, 1600, 1600}
	if len(points) != len(want) {
		t.Fatalf("ate %d ghosts, want %d", len(points), len(want))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("kill %d scored %d, want %d", i+1, points[i], want[i])
		}
	}
	if w.Score() != 200+400+800+1600+1600 {
		t.Errorf("total score = %d", w.Score())
	}
}

func TestCollisionDangerousGhostCostsOneLife(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := NewCollisionSystem(bus)

	addPlayerAt(w, 5, 5, DirNone, 1.2)
	addGhostAt(w, GhostBlinky, ModeChase, 5, 5)
	addGhostAt(w, GhostPinky, ModeChase, 5, 5) // second overlap, same tick

	var died PlayerDiedEvent
	deaths := 0
	bus.Subscribe(EventPlayerDied, func(p any) {
		died = p.(PlayerDiedEvent)
		deaths++
	})

	s.Update(w)

	if w.Lives() != 2 {
		t.Errorf("lives = %d, want 2 (one death per tick)", w.Lives())
	}
	if deaths != 1 {
		t.Errorf("player:died fired %d times, want 1", deaths)
	}
	if died.LivesRemaining != 2 {
		t.Errorf("payload lives = %d, want 2", died.LivesRemaining)
	}
}

func TestCollisionLastLifeEndsGame(t *testing.T) {
	w := NewWorld(1)
	w.SetStatus(StatusPlaying)
	w.SetDeltaTime(ReferenceFrameMs)
	bus := NewBus()
	s := NewCollisionSystem(bus)

	addPlayerAt(w, 5, 5, DirNone, 1.2)
	addGhostAt(w, GhostBlinky, ModeChase, 5, 5)
	w.AddScore(1230)

	var over GameOverEvent
	bus.Subscribe(EventGameOver, func(p any) { over = p.(GameOverEvent) })

	s.Update(w)

	if w.Status() != StatusLost {
		t.Fatalf("status = %v, want lost", w.Status())
	}
	if w.Lives() != 0 {
		t.Errorf("lives = %d, want 0", w.Lives())
	}
	if over.FinalScore != 1230 || over.Level != 1 {
		t.Errorf("game:over payload = %+v", over)
	}
}

func TestCollisionIgnoresEatenGhosts(t *testing.T) {
	w := newPlayingWorld()
	s := NewCollisionSystem(NewBus())

	addPlayerAt(w, 5, 5, DirNone, 1.2)
	addGhostAt(w, GhostBlinky, ModeEaten, 5, 5)

	s.Update(w)

	if w.Lives() != 3 || w.Score() != 0 {
		t.Errorf("eaten ghost interacted: lives=%d score=%d", w.Lives(), w.Score())
	}
}

func TestCollisionIgnoresGhostOutOfRange(t *testing.T) {
	w := newPlayingWorld()
	s := NewCollisionSystem(NewBus())

	addPlayerAt(w, 5, 5, DirNone, 1.2)
	addGhostAt(w, GhostBlinky, ModeChase, 6, 5) // 8px away, radius is 6.4

	s.Update(w)

	if w.Lives() != 3 {
		t.Errorf("lives = %d, want 3", w.Lives())
	}
}

func TestPowerPelletShieldsSameTickOverlap(t *testing.T) {
	// A power pellet sharing the player's cell with a ghost must flip the
	// ghost to vulnerable before the overlap resolves: the pipeline runs
	// eating, then power-up, then collision.
	w := newPlayingWorld()
	bus := NewBus()
	eating := NewEatingSystem(bus)
	powerup := NewPowerUpSystem(bus, 2000)
	collision := NewCollisionSystem(bus)

	addPlayerAt(w, 5, 5, DirNone, 1.2)
	ghost := addGhostAt(w, GhostBlinky, ModeChase, 5, 5)
	addPowerPelletAt(w, 5, 5, 50, 6000)
	addPelletAt(w, 20, 5, 10)

	eating.Update(w)
	powerup.Update(w)
	collision.Update(w)

	if w.Lives() != 3 {
		t.Fatalf("lives = %d, want 3 (pellet must shield the player)", w.Lives())
	}
	if w.Score() != 50+200 {
		t.Errorf("score = %d, want 250", w.Score())
	}
	if mode := w.Registry().GhostAI(ghost).Mode; mode != ModeEaten {
		t.Errorf("ghost mode = %v, want eaten", mode)
	}
}

func TestGhostPointsSchedule(t *testing.T) {
	cases := []struct {
		streak, want int
	}{
		{1, 200}, {2, 400}, {3, 800}, {4, 1600}, {5, 1600}, {9, 1600}, {0, 200},
	}
	for _, c := range cases {
		if got := ghostPoints(c.streak); got != c.want {
			t.Errorf("ghostPoints(%d) = %d, want %d", c.streak, got, c.want)
		}
	}
}
