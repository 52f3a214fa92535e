package sim

// PowerUpSystem counts the vulnerability timer down and keeps every ghost's
// Vulnerable component in lockstep with it. It owns the start-edge detection
// and the once-per-activation warning.
type PowerUpSystem struct {
	bus       *Bus
	warningMs float64

	wasActive bool
	warned    bool
}

// NewPowerUpSystem creates the system. warningMs is how much remaining time
// triggers the flashing warning.
func NewPowerUpSystem(bus *Bus, warningMs float64) *PowerUpSystem {
	return &PowerUpSystem{bus: bus, warningMs: warningMs}
}

// Reset restores the edge-detection state for a fresh game.
func (s *PowerUpSystem) Reset() {
	s.wasActive = false
	s.warned = false
}

// Update propagates the world's power-up timer to ghost vulnerability.
func (s *PowerUpSystem) Update(w *World) {
	if w.Status() != StatusPlaying {
		return
	}

	reg := w.Registry()
	active := w.PowerUpTimeRemaining() > 0

	if active && !s.wasActive {
		// Start edge: make every ghost vulnerable that isn't already.
		for _, id := range reg.Query(KindGhostAI) {
			if reg.Vulnerable(id) == nil {
				reg.SetVulnerable(id, Vulnerable{RemainingMs: w.PowerUpTimeRemaining()})
			}
		}
		s.warned = false
	}

	if active {
		w.DecreasePowerUpTime(w.DeltaTime())
		remaining := w.PowerUpTimeRemaining()
		shouldFlash := remaining <= s.warningMs

		for _, id := range reg.Query(KindGhostAI, KindVulnerable) {
			if v := reg.Vulnerable(id); v != nil {
				v.RemainingMs = remaining
				v.Flashing = shouldFlash
			}
		}

		if shouldFlash && !s.warned {
			s.bus.Dispatch(EventPowerUpWarning, PowerUpTimeEvent{RemainingMs: remaining})
			s.warned = true
		}

		if remaining == 0 {
			for _, id := range reg.Query(KindGhostAI) {
				reg.Remove(id, KindVulnerable)
			}
			w.ResetGhostEatenStreak()
			s.bus.Dispatch(EventPowerUpEnded, nil)
		}
	}

	s.wasActive = w.PowerUpTimeRemaining() > 0
}
