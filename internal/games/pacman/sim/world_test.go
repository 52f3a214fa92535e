package sim

import "testing"

func TestWorldAddScoreIgnoresNonPositive(t *testing.T) {
	w := NewWorld(3)

	w.AddScore(10)
	w.AddScore(0)
	w.AddScore(-50)

	if w.Score() != 10 {
		t.Errorf("score = %d, want 10", w.Score())
	}
}

func TestWorldLivesNeverNegative(t *testing.T) {
	w := NewWorld(2)

	w.LoseLife()
	w.LoseLife()
	w.LoseLife()

	if w.Lives() != 0 {
		t.Errorf("lives = %d, want 0", w.Lives())
	}
}

func TestWorldPowerUpTimerClampsAtZero(t *testing.T) {
	w := NewWorld(3)

	w.SetPowerUpTimeRemaining(100)
	w.DecreasePowerUpTime(500)
	if w.PowerUpTimeRemaining() != 0 {
		t.Errorf("remaining = %v, want 0", w.PowerUpTimeRemaining())
	}

	w.SetPowerUpTimeRemaining(-10)
	if w.PowerUpTimeRemaining() != 0 {
		t.Errorf("negative set: remaining = %v, want 0", w.PowerUpTimeRemaining())
	}
}

func TestWorldGhostEatenStreak(t *testing.T) {
	w := NewWorld(3)

	if got := w.IncrementGhostEatenStreak(); got != 1 {
		t.Errorf("first increment = %d, want 1", got)
	}
	if got := w.IncrementGhostEatenStreak(); got != 2 {
		t.Errorf("second increment = %d, want 2", got)
	}

	w.ResetGhostEatenStreak()
	if w.GhostEatenStreak() != 0 {
		t.Errorf("streak after reset = %d, want 0", w.GhostEatenStreak())
	}
}

func TestWorldResetRestoresInitialState(t *testing.T) {
	w := NewWorld(3)
	w.SetStatus(StatusPlaying)
	w.AddScore(500)
	w.LoseLife()
	w.SetLevel(4)
	w.SetPowerUpTimeRemaining(3000)
	w.IncrementGhostEatenStreak()

	id := w.Registry().Create()
	w.Registry().SetPosition(id, Position{})

	w.Reset()

	if w.Status() != StatusReady {
		t.Errorf("status = %v, want ready", w.Status())
	}
	if w.Score() != 0 || w.Lives() != 3 || w.Level() != 1 {
		t.Errorf("score/lives/level = %d/%d/%d, want 0/3/1", w.Score(), w.Lives(), w.Level())
	}
	if w.PowerUpTimeRemaining() != 0 || w.GhostEatenStreak() != 0 {
		t.Error("timers or streak survived reset")
	}
	if len(w.Registry().AllIDs()) != 0 {
		t.Error("entities survived reset")
	}
}
