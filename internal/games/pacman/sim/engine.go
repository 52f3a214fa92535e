package sim

// Config holds the simulation tunables. Values come from the platform's YAML
// config; DefaultConfig is the embedded fallback.
type Config struct {
	Lives int

	PelletPoints      int
	PowerPelletPoints int

	// Speeds in pixels per reference frame (16.67 ms).
	PlayerSpeed     float64
	GhostSpeed      float64
	FrightenedSpeed float64

	// Durations in milliseconds.
	PowerUpMs float64
	WarningMs float64
	ScatterMs float64
	ChaseMs   float64
	RespawnMs float64

	Seed int64
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		Lives:             3,
		PelletPoints:      10,
		PowerPelletPoints: 50,
		PlayerSpeed:       1.2,
		GhostSpeed:        1.0,
		FrightenedSpeed:   0.6,
		PowerUpMs:         6000,
		WarningMs:         2000,
		ScatterMs:         7000,
		ChaseMs:           20000,
		RespawnMs:         2000,
	}
}

// Engine is the composition root: it owns the world, the event bus, the maze,
// and every system, and runs the fixed pipeline once per tick. It also owns
// the two pieces of timing that live above the systems: the scatter/chase
// oscillation and the death→respawn countdown.
type Engine struct {
	cfg  Config
	maze *Maze

	world *World
	bus   *Bus

	input     *InputSystem
	ghosts    *GhostAISystem
	movement  *MovementSystem
	eating    *EatingSystem
	powerup   *PowerUpSystem
	collision *CollisionSystem

	globalMode       GhostMode
	phaseTimerMs     float64
	respawnTimerMs   float64
	restartRequested bool

	unsubs []func()
}

// NewEngine wires the world, bus, and systems together. Call Init before the
// first Update.
func NewEngine(cfg Config) *Engine {
	maze := DefaultMaze()
	bus := NewBus()

	e := &Engine{
		cfg:        cfg,
		maze:       maze,
		world:      NewWorld(cfg.Lives),
		bus:        bus,
		input:      NewInputSystem(bus),
		ghosts:     NewGhostAISystem(maze, bus, cfg.Seed, cfg.GhostSpeed, cfg.FrightenedSpeed),
		movement:   NewMovementSystem(maze),
		eating:     NewEatingSystem(bus),
		powerup:    NewPowerUpSystem(bus, cfg.WarningMs),
		collision:  NewCollisionSystem(bus),
		globalMode: ModeScatter,
	}

	e.unsubs = append(e.unsubs,
		bus.Subscribe(EventGameRestart, func(any) {
			e.restartRequested = true
		}),
		bus.Subscribe(EventPlayerDied, func(payload any) {
			ev, ok := payload.(PlayerDiedEvent)
			if !ok || ev.LivesRemaining <= 0 {
				return
			}
			e.world.SetStatus(StatusDying)
			e.respawnTimerMs = e.cfg.RespawnMs
		}),
	)

	return e
}

// World exposes the engine's world for selectors and tests.
func (e *Engine) World() *World { return e.world }

// Bus exposes the engine's event bus.
func (e *Engine) Bus() *Bus { return e.bus }

// Maze exposes the static level geometry.
func (e *Engine) Maze() *Maze { return e.maze }

// Init fully resets the world and populates the board: one player, four
// ghosts, and every collectible. The game waits in the ready state.
func (e *Engine) Init() {
	e.world.Reset()
	e.input.Reset()
	e.ghosts.Reset()
	e.powerup.Reset()

	e.globalMode = ModeScatter
	e.phaseTimerMs = e.cfg.ScatterMs
	e.respawnTimerMs = 0
	e.restartRequested = false

	e.spawnPlayer()
	e.spawnGhosts()
	e.spawnCollectibles()
}

// Update advances the simulation by one frame of dtMs milliseconds.
func (e *Engine) Update(dtMs float64) {
	if e.restartRequested {
		e.restartRequested = false
		e.Init()
		return
	}

	w := e.world
	w.SetDeltaTime(dtMs)

	switch {
	case w.Status() == StatusDying:
		e.respawnTimerMs -= dtMs
		if e.respawnTimerMs <= 0 {
			e.respawn()
			w.SetStatus(StatusPlaying)
		}
		return // the pipeline is skipped while dying

	case w.Status() == StatusPlaying && w.PowerUpTimeRemaining() == 0:
		// The scatter/chase clock is frozen while a power-up runs.
		e.phaseTimerMs -= dtMs
		if e.phaseTimerMs <= 0 {
			if e.globalMode == ModeScatter {
				e.globalMode = ModeChase
				e.phaseTimerMs = e.cfg.ChaseMs
			} else {
				e.globalMode = ModeScatter
				e.phaseTimerMs = e.cfg.ScatterMs
			}
			e.bus.Dispatch(EventGhostMode, GhostModeEvent{Mode: e.globalMode})
		}
	}

	// The pipeline order is load-bearing: eating must run before collision
	// so a power pellet picked up in the same tick as a ghost overlap makes
	// the ghost vulnerable before the overlap is resolved.
	e.input.Update(w)
	e.ghosts.Update(w)
	e.movement.Update(w)
	e.eating.Update(w)
	e.powerup.Update(w)
	e.collision.Update(w)
}

// Start begins play from the ready screen.
func (e *Engine) Start() {
	if e.world.Status() == StatusReady {
		e.world.SetStatus(StatusPlaying)
		e.bus.Dispatch(EventGameStarted, nil)
	}
}

// Pause suspends play.
func (e *Engine) Pause() {
	if e.world.Status() == StatusPlaying {
		e.world.SetStatus(StatusPaused)
		e.bus.Dispatch(EventGamePaused, nil)
	}
}

// Resume continues from a pause.
func (e *Engine) Resume() {
	if e.world.Status() == StatusPaused {
		e.world.SetStatus(StatusPlaying)
		e.bus.Dispatch(EventGameResumed, nil)
	}
}

// Destroy unsubscribes everything and clears the bus. The engine must not be
// used afterwards.
func (e *Engine) Destroy() {
	for _, u := range e.unsubs {
		u()
	}
	e.unsubs = nil
	e.input.Destroy()
	e.ghosts.Destroy()
	e.bus.Clear()
}

// NextLevel repopulates the board for endless play: collectibles respawn,
// everyone returns to their spawn cells, the level counter increments, and
// the ghosts get a little faster.
func (e *Engine) NextLevel() {
	reg := e.world.Registry()
	for _, id := range reg.Query(KindEdible) {
		reg.Destroy(id)
	}
	e.spawnCollectibles()
	e.respawn()

	e.world.SetLevel(e.world.Level() + 1)
	e.globalMode = ModeScatter
	e.phaseTimerMs = e.cfg.ScatterMs

	speed := e.cfg.GhostSpeed + 0.05*float64(e.world.Level()-1)
	if speed > e.cfg.PlayerSpeed {
		speed = e.cfg.PlayerSpeed
	}
	e.ghosts.ghostSpeed = speed

	e.world.SetStatus(StatusPlaying)
}

// respawn rewinds the player and ghosts to their spawn cells and clears all
// power-up state and the kill streak.
func (e *Engine) respawn() {
	reg := e.world.Registry()

	for _, id := range reg.Query(KindRespawnable, KindPosition, KindVelocity) {
		rs := reg.Respawnable(id)
		pos := reg.Position(id)
		vel := reg.Velocity(id)
		if rs == nil || pos == nil || vel == nil {
			continue
		}

		pos.GridX, pos.GridY = rs.SpawnX, rs.SpawnY
		pos.PixelX, pos.PixelY = CellCenter(rs.SpawnX, rs.SpawnY)
		vel.Direction = DirNone
		vel.NextDirection = DirNone

		if ai := reg.GhostAI(id); ai != nil {
			ai.Mode = e.globalMode
			vel.Speed = e.ghosts.ghostSpeed
			reg.Remove(id, KindVulnerable)
		}
	}

	e.ghosts.ClearPending()
	e.world.SetPowerUpTimeRemaining(0)
	e.world.ResetGhostEatenStreak()
}

func (e *Engine) spawnPlayer() {
	reg := e.world.Registry()
	start := e.maze.PlayerStart

	id := reg.Create()
	px, py := CellCenter(start.X, start.Y)
	reg.SetPosition(id, Position{GridX: start.X, GridY: start.Y, PixelX: px, PixelY: py})
	reg.SetVelocity(id, Velocity{Direction: DirNone, Speed: e.cfg.PlayerSpeed, NextDirection: DirNone})
	reg.SetPlayerControlled(id)
	reg.SetRespawnable(id, Respawnable{SpawnX: start.X, SpawnY: start.Y, DelayMs: e.cfg.RespawnMs})
	reg.SetCollider(id, Collider{Width: TileSize, Height: TileSize})
}

func (e *Engine) spawnGhosts() {
	reg := e.world.Registry()

	for _, t := range []GhostType{GhostBlinky, GhostPinky, GhostInky, GhostClyde} {
		start := e.maze.GhostStarts[t]
		corner := e.maze.ScatterCorners[t]

		id := reg.Create()
		px, py := CellCenter(start.X, start.Y)
		reg.SetPosition(id, Position{GridX: start.X, GridY: start.Y, PixelX: px, PixelY: py})
		reg.SetVelocity(id, Velocity{Direction: DirNone, Speed: e.cfg.GhostSpeed, NextDirection: DirNone})
		reg.SetGhostAI(id, GhostAI{Type: t, Mode: ModeScatter, ScatterX: corner.X, ScatterY: corner.Y})
		reg.SetRespawnable(id, Respawnable{SpawnX: start.X, SpawnY: start.Y, DelayMs: e.cfg.RespawnMs})
		reg.SetCollider(id, Collider{Width: TileSize, Height: TileSize})
	}
}

func (e *Engine) spawnCollectibles() {
	reg := e.world.Registry()

	for _, p := range e.maze.Pellets {
		id := reg.Create()
		px, py := CellCenter(p.X, p.Y)
		reg.SetPosition(id, Position{GridX: p.X, GridY: p.Y, PixelX: px, PixelY: py})
		reg.SetEdible(id, Edible{Points: e.cfg.PelletPoints})
	}

	for _, p := range e.maze.PowerPellets {
		id := reg.Create()
		px, py := CellCenter(p.X, p.Y)
		reg.SetPosition(id, Position{GridX: p.X, GridY: p.Y, PixelX: px, PixelY: py})
		reg.SetEdible(id, Edible{Points: e.cfg.PowerPelletPoints})
		reg.SetPowerUp(id, PowerUp{DurationMs: e.cfg.PowerUpMs})
	}
}
