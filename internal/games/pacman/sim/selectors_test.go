package sim

import "testing"

func TestGhostsSortedByIdentity(t *testing.T) {
	w := newPlayingWorld()

	// Insert out of order; the view must come back blinky first.
	addGhostAt(w, GhostClyde, ModeScatter, 16, 14)
	addGhostAt(w, GhostBlinky, ModeScatter, 13, 11)
	addGhostAt(w, GhostInky, ModeScatter, 11, 14)
	addGhostAt(w, GhostPinky, ModeScatter, 13, 14)

	ghosts := Ghosts(w)
	if len(ghosts) != 4 {
		t.Fatalf("ghost count = %d, want 4", len(ghosts))
	}
	want := []GhostType{GhostBlinky, GhostPinky, GhostInky, GhostClyde}
	for i, g := range ghosts {
		if g.Type != want[i] {
			t.Errorf("ghosts[%d] = %v, want %v", i, g.Type, want[i])
		}
	}
}

func TestGhostViewReflectsVulnerability(t *testing.T) {
	w := newPlayingWorld()

	id := addGhostAt(w, GhostBlinky, ModeFrightened, 6, 5)
	w.Registry().SetVulnerable(id, Vulnerable{RemainingMs: 900, Flashing: true})

	g, ok := Ghost(w, GhostBlinky)
	if !ok {
		t.Fatal("blinky not found")
	}
	if !g.Vulnerable || !g.Flashing {
		t.Errorf("view = %+v, want vulnerable and flashing", g)
	}
}

func TestCollectiblesViewMarksPowerPellets(t *testing.T) {
	w := newPlayingWorld()

	addPelletAt(w, 5, 5, 10)
	addPowerPelletAt(w, 1, 3, 50, 6000)

	views := Collectibles(w)
	if len(views) != 2 {
		t.Fatalf("collectible count = %d, want 2", len(views))
	}

	var power int
	for _, c := range views {
		if c.PowerUp {
			power++
			if c.Points != 50 {
				t.Errorf("power pellet points = %d, want 50", c.Points)
			}
		}
	}
	if power != 1 {
		t.Errorf("power pellet count = %d, want 1", power)
	}
}

func TestPlayerViewCarriesMovementState(t *testing.T) {
	w := newPlayingWorld()
	addPlayerAt(w, 13, 22, DirLeft, 1.2)

	p, ok := Player(w)
	if !ok {
		t.Fatal("player not found")
	}
	if p.Direction != DirLeft {
		t.Errorf("Direction = %v, want %v", p.Direction, DirLeft)
	}
	if p.Speed != 1.2 {
		t.Errorf("Speed = %v, want 1.2", p.Speed)
	}
}

func TestPowerPelletsReturnsOnlyPowerPellets(t *testing.T) {
	w := newPlayingWorld()

	addPelletAt(w, 5, 5, 10)
	addPelletAt(w, 6, 5, 10)
	want := addPowerPelletAt(w, 1, 3, 50, 6000)

	views := PowerPellets(w)
	if len(views) != 1 {
		t.Fatalf("power pellet count = %d, want 1", len(views))
	}
	got := views[0]
	if got.Entity != want {
		t.Errorf("entity = %d, want %d", got.Entity, want)
	}
	if !got.PowerUp || got.Points != 50 {
		t.Errorf("view = %+v, want power pellet worth 50", got)
	}
	if got.GridX != 1 || got.GridY != 3 {
		t.Errorf("position = (%d, %d), want (1, 3)", got.GridX, got.GridY)
	}
}

func TestPlayerViewAbsentWithoutPlayer(t *testing.T) {
	w := newPlayingWorld()
	if _, ok := Player(w); ok {
		t.Error("Player reported a view on an empty world")
	}
}
