package sim

import "testing"

func TestInputDirectionSteersPlayer(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := NewInputSystem(bus)
	defer s.Destroy()

	player := addPlayerAt(w, 5, 5, DirRight, 1.2)

	bus.Dispatch(EventInputDirection, DirectionEvent{Direction: DirUp})
	s.Update(w)

	if got := w.Registry().Velocity(player).NextDirection; got != DirUp {
		t.Errorf("NextDirection = %v, want up", got)
	}
}

func TestInputLastDirectionWins(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := NewInputSystem(bus)
	defer s.Destroy()

	player := addPlayerAt(w, 5, 5, DirRight, 1.2)

	bus.Dispatch(EventInputDirection, DirectionEvent{Direction: DirUp})
	bus.Dispatch(EventInputDirection, DirectionEvent{Direction: DirDown})
	s.Update(w)

	if got := w.Registry().Velocity(player).NextDirection; got != DirDown {
		t.Errorf("NextDirection = %v, want the later request (down)", got)
	}
}

func TestInputDirectionIgnoredOutsidePlay(t *testing.T) {
	w := NewWorld(3)
	bus := NewBus()
	s := NewInputSystem(bus)
	defer s.Destroy()

	player := addPlayerAt(w, 5, 5, DirNone, 1.2)

	bus.Dispatch(EventInputDirection, DirectionEvent{Direction: DirUp})
	s.Update(w) // status is ready

	if got := w.Registry().Velocity(player).NextDirection; got != DirNone {
		t.Errorf("steering applied outside play: %v", got)
	}
}

func TestInputStartBeginsPlay(t *testing.T) {
	w := NewWorld(3)
	bus := NewBus()
	s := NewInputSystem(bus)
	defer s.Destroy()

	started := 0
	bus.Subscribe(EventGameStarted, func(any) { started++ })

	bus.Dispatch(EventInputStart, nil)
	s.Update(w)

	if w.Status() != StatusPlaying {
		t.Errorf("status = %v, want playing", w.Status())
	}
	if started != 1 {
		t.Errorf("game:started fired %d times, want 1", started)
	}

	// Start is a no-op once the game is running.
	bus.Dispatch(EventInputStart, nil)
	s.Update(w)
	if started != 1 {
		t.Error("game:started fired again from the playing state")
	}
}

func TestInputPauseToggles(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := NewInputSystem(bus)
	defer s.Destroy()

	paused, resumed := 0, 0
	bus.Subscribe(EventGamePaused, func(any) { paused++ })
	bus.Subscribe(EventGameResumed, func(any) { resumed++ })

	bus.Dispatch(EventInputPause, nil)
	s.Update(w)
	if w.Status() != StatusPaused || paused != 1 {
		t.Fatalf("status = %v, paused events = %d", w.Status(), paused)
	}

	bus.Dispatch(EventInputPause, nil)
	s.Update(w)
	if w.Status() != StatusPlaying || resumed != 1 {
		t.Fatalf("status = %v, resumed events = %d", w.Status(), resumed)
	}
}

func TestInputRestartForwardsToBus(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := NewInputSystem(bus)
	defer s.Destroy()

	restarts := 0
	bus.Subscribe(EventGameRestart, func(any) { restarts++ })

	bus.Dispatch(EventInputRestart, nil)
	s.Update(w)

	if restarts != 1 {
		t.Errorf("game:restart fired %d times, want 1", restarts)
	}
}

func TestInputResetDropsQueue(t *testing.T) {
	w := newPlayingWorld()
	bus := NewBus()
	s := NewInputSystem(bus)
	defer s.Destroy()

	player := addPlayerAt(w, 5, 5, DirRight, 1.2)

	bus.Dispatch(EventInputDirection, DirectionEvent{Direction: DirUp})
	s.Reset()
	s.Update(w)

	if got := w.Registry().Velocity(player).NextDirection; got != DirNone {
		t.Errorf("queued input survived Reset: %v", got)
	}
}
