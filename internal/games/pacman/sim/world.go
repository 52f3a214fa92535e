package sim

// Status is the top-level game state.
type Status int

const (
	StatusReady Status = iota
	StatusPlaying
	StatusPaused
	StatusWon
	StatusLost
	StatusDying
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusDying:
		return "dying"
	default:
		return "unknown"
	}
}

// World composes the entity registry with scalar game state. It is the single
// owner of all mutable simulation state and is passed explicitly to every
// system; nothing in the package is ambient or global.
type World struct {
	registry *Registry

	status               Status
	score                int
	lives                int
	initialLives         int
	level                int
	powerUpTimeRemaining float64 // ms
	deltaTime            float64 // ms, last tick's frame duration
	ghostEatenStreak     int
}

// NewWorld creates a world with the given starting life count.
func NewWorld(initialLives int) *World {
	w := &World{
		registry:     NewRegistry(),
		initialLives: initialLives,
	}
	w.Reset()
	return w
}

// Registry returns the world's entity registry.
func (w *World) Registry() *Registry {
	return w.registry
}

// Reset clears all entities and restores the initial scalar state.
// The registry instance (and its id counter) is kept: ids keep incrementing
// across restarts, which preserves uniqueness with no extra bookkeeping.
func (w *World) Reset() {
	w.registry.Clear()
	w.status = StatusReady
	w.score = 0
	w.lives = w.initialLives
	w.level = 1
	w.powerUpTimeRemaining = 0
	w.deltaTime = 0
	w.ghostEatenStreak = 0
}

func (w *World) Status() Status          { return w.status }
func (w *World) SetStatus(s Status)      { w.status = s }
func (w *World) Score() int              { return w.score }
func (w *World) Lives() int              { return w.lives }
func (w *World) Level() int              { return w.level }
func (w *World) SetLevel(l int)          { w.level = l }
func (w *World) DeltaTime() float64      { return w.deltaTime }
func (w *World) SetDeltaTime(dt float64) { w.deltaTime = dt }

// AddScore adds points to the score. Non-positive deltas are ignored.
func (w *World) AddScore(points int) {
	if points <= 0 {
		return
	}
	w.score += points
}

// LoseLife decrements lives, never below zero.
func (w *World) LoseLife() {
	if w.lives > 0 {
		w.lives--
	}
}

// PowerUpTimeRemaining returns the active power-up time in milliseconds.
func (w *World) PowerUpTimeRemaining() float64 {
	return w.powerUpTimeRemaining
}

// SetPowerUpTimeRemaining replaces the power-up timer (new pellet eaten).
func (w *World) SetPowerUpTimeRemaining(ms float64) {
	if ms < 0 {
		ms = 0
	}
	w.powerUpTimeRemaining = ms
}

// DecreasePowerUpTime counts the power-up timer down, clamped at zero.
func (w *World) DecreasePowerUpTime(delta float64) {
	w.powerUpTimeRemaining -= delta
	if w.powerUpTimeRemaining < 0 {
		w.powerUpTimeRemaining = 0
	}
}

// GhostEatenStreak returns the current kill streak within one power-up.
func (w *World) GhostEatenStreak() int {
	return w.ghostEatenStreak
}

// IncrementGhostEatenStreak bumps the kill streak and returns the new value.
func (w *World) IncrementGhostEatenStreak() int {
	w.ghostEatenStreak++
	return w.ghostEatenStreak
}

// ResetGhostEatenStreak zeroes the kill streak (power-up ended or renewed).
func (w *World) ResetGhostEatenStreak() {
	w.ghostEatenStreak = 0
}
