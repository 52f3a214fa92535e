package pacman

import "github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"

// Snapshot contains the observable game state for determinism testing.
// Pixel coordinates are scaled to integers for stable hashing.
type Snapshot struct {
	Tick   uint64
	Score  int
	Lives  int
	Level  int
	Status string

	PowerUpMs int

	PlayerX int
	PlayerY int

	// Each ghost is 4 ints: type, mode, scaled pixel X, scaled pixel Y.
	GhostCount int
	GhostData  []int

	CollectiblesRemaining int
}

const pixelScale = 1000

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.engine.World()

	snap := Snapshot{
		Tick:                  g.tick,
		Score:                 w.Score(),
		Lives:                 w.Lives(),
		Level:                 w.Level(),
		Status:                w.Status().String(),
		PowerUpMs:             int(w.PowerUpTimeRemaining()),
		CollectiblesRemaining: sim.RemainingCollectibles(w),
	}

	if p, ok := sim.Player(w); ok {
		snap.PlayerX = int(p.PixelX * pixelScale)
		snap.PlayerY = int(p.PixelY * pixelScale)
	}

	ghosts := sim.Ghosts(w)
	snap.GhostCount = len(ghosts)
	snap.GhostData = make([]int, 0, len(ghosts)*4)
	for _, gh := range ghosts {
		snap.GhostData = append(snap.GhostData,
			int(gh.Type),
			int(gh.Mode),
			int(gh.PixelX*pixelScale),
			int(gh.PixelY*pixelScale),
		)
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)
	h = h*31 + uint64(snap.Lives)
	h = h*31 + uint64(snap.Level)
	h = h*31 + uint64(snap.PowerUpMs)
	h = h*31 + uint64(snap.PlayerX)
	h = h*31 + uint64(snap.PlayerY)
	h = h*31 + uint64(snap.GhostCount)
	h = h*31 + uint64(snap.CollectiblesRemaining)

	for _, c := range snap.Status {
		h = h*31 + uint64(c)
	}
	for _, v := range snap.GhostData {
		h = h*31 + uint64(v)
	}

	return h
}
