// Package pacman adapts the maze-chase simulation to the platform's Game
// interface. The simulation itself lives in the sim subpackage and knows
// nothing about screens, ticks, or key bindings; this package translates
// platform actions into simulation events and world state into cells.
package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// hudHeight is the number of screen rows reserved above the maze.
const hudHeight = 2

// Game implements the platform Game interface over the simulation engine.
type Game struct {
	mode   Mode
	engine *sim.Engine
	tick   uint64
	dtMs   float64

	screenW    int
	screenH    int
	tooSmall   bool
	mapOffsetX int
	mapOffsetY int

	seed int64
}

// Package-level variables for config/difficulty (set from CLI flags).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new classic mode game: one maze, game over when it's cleared.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a new endless mode game: cleared mazes repopulate with
// faster ghosts.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
	registry.Register("pacman_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "pacman_endless"
	}
	return "pacman"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Pacman (Endless)"
	}
	return "Pacman"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	pc, err := config.LoadPacman(configPath)
	if err != nil {
		pc = config.DefaultPacmanConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPacmanPreset(&pc, config.DifficultyPreset(difficultyPreset))
	}

	if g.engine != nil {
		g.engine.Destroy()
	}

	g.seed = cfg.Seed
	g.engine = sim.NewEngine(sim.Config{
		Lives:             pc.Gameplay.Lives,
		PelletPoints:      pc.Gameplay.PelletPoints,
		PowerPelletPoints: pc.Gameplay.PowerPelletPoints,
		PlayerSpeed:       pc.Speeds.Player,
		GhostSpeed:        pc.Speeds.Ghost,
		FrightenedSpeed:   pc.Speeds.Frightened,
		PowerUpMs:         pc.Timing.PowerUpMs,
		WarningMs:         pc.Timing.WarningMs,
		ScatterMs:         pc.Timing.ScatterMs,
		ChaseMs:           pc.Timing.ChaseMs,
		RespawnMs:         pc.Timing.RespawnMs,
		Seed:              cfg.Seed,
	})
	g.engine.Init()

	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dtMs = 1000.0 / float64(tickRate)

	maze := g.engine.Maze()
	requiredW := maze.Width + 2
	requiredH := maze.Height + hudHeight + 1
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
	g.mapOffsetX = (g.screenW - maze.Width) / 2
	g.mapOffsetY = hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	bus := g.engine.Bus()

	switch {
	case input.Has(core.ActionUp):
		bus.Dispatch(sim.EventInputDirection, sim.DirectionEvent{Direction: sim.DirUp})
	case input.Has(core.ActionDown):
		bus.Dispatch(sim.EventInputDirection, sim.DirectionEvent{Direction: sim.DirDown})
	case input.Has(core.ActionLeft):
		bus.Dispatch(sim.EventInputDirection, sim.DirectionEvent{Direction: sim.DirLeft})
	case input.Has(core.ActionRight):
		bus.Dispatch(sim.EventInputDirection, sim.DirectionEvent{Direction: sim.DirRight})
	}

	if input.Has(core.ActionConfirm) {
		bus.Dispatch(sim.EventInputStart, nil)
	}
	if input.Has(core.ActionPause) {
		bus.Dispatch(sim.EventInputPause, nil)
	}
	if input.Has(core.ActionRestart) {
		bus.Dispatch(sim.EventInputRestart, nil)
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.engine.Update(g.dtMs)

	// Endless mode rolls a cleared maze straight into the next level.
	if g.mode == ModeEndless && sim.IsWon(g.engine.World()) {
		g.engine.NextLevel()
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	w := g.engine.World()
	status := w.Status()
	return core.GameState{
		Score:    w.Score(),
		GameOver: status == sim.StatusLost || status == sim.StatusWon,
		Paused:   status == sim.StatusPaused,
	}
}

// World exposes the simulation world (used by the renderer and tests).
func (g *Game) World() *sim.World {
	return g.engine.World()
}
