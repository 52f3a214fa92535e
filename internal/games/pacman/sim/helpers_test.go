package sim

// Shared fixtures for the simulation tests. Everything is built directly on
// the registry so each test controls exactly which entities exist.

func newPlayingWorld() *World {
	w := NewWorld(3)
	w.SetStatus(StatusPlaying)
	w.SetDeltaTime(ReferenceFrameMs)
	return w
}

func addPlayerAt(w *World, gx, gy int, dir Direction, speed float64) Entity {
	reg := w.Registry()
	id := reg.Create()
	px, py := CellCenter(gx, gy)
	reg.SetPosition(id, Position{GridX: gx, GridY: gy, PixelX: px, PixelY: py})
	reg.SetVelocity(id, Velocity{Direction: dir, Speed: speed})
	reg.SetPlayerControlled(id)
	return id
}

func addGhostAt(w *World, t GhostType, mode GhostMode, gx, gy int) Entity {
	reg := w.Registry()
	id := reg.Create()
	px, py := CellCenter(gx, gy)
	reg.SetPosition(id, Position{GridX: gx, GridY: gy, PixelX: px, PixelY: py})
	reg.SetVelocity(id, Velocity{Direction: DirNone, Speed: 1.0})
	reg.SetGhostAI(id, GhostAI{Type: t, Mode: mode, ScatterX: 25, ScatterY: 0})
	return id
}

func addPelletAt(w *World, gx, gy, points int) Entity {
	reg := w.Registry()
	id := reg.Create()
	px, py := CellCenter(gx, gy)
	reg.SetPosition(id, Position{GridX: gx, GridY: gy, PixelX: px, PixelY: py})
	reg.SetEdible(id, Edible{Points: points})
	return id
}

func addPowerPelletAt(w *World, gx, gy, points int, durationMs float64) Entity {
	id := addPelletAt(w, gx, gy, points)
	w.Registry().SetPowerUp(id, PowerUp{DurationMs: durationMs})
	return id
}
