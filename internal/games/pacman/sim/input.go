package sim

// InputSystem translates queued external input events into mutations on the
// player's velocity component or the world's game state. Events arrive via
// the bus at any point in the frame and are applied, in arrival order, when
// the system runs at the head of the pipeline.
type InputSystem struct {
	bus     *Bus
	pending []pendingInput
	unsubs  []func()
}

type pendingInput struct {
	event     EventType
	direction Direction
}

// NewInputSystem creates the system and subscribes it to the input events.
func NewInputSystem(bus *Bus) *InputSystem {
	s := &InputSystem{bus: bus}

	s.unsubs = append(s.unsubs,
		bus.Subscribe(EventInputDirection, func(payload any) {
			if ev, ok := payload.(DirectionEvent); ok {
				s.pending = append(s.pending, pendingInput{event: EventInputDirection, direction: ev.Direction})
			}
		}),
		bus.Subscribe(EventInputPause, func(any) {
			s.pending = append(s.pending, pendingInput{event: EventInputPause})
		}),
		bus.Subscribe(EventInputStart, func(any) {
			s.pending = append(s.pending, pendingInput{event: EventInputStart})
		}),
		bus.Subscribe(EventInputRestart, func(any) {
			s.pending = append(s.pending, pendingInput{event: EventInputRestart})
		}),
	)

	return s
}

// Update drains the queue. Each queued event represents one discrete intent;
// key-repeat filtering is the input translator's job, not ours.
func (s *InputSystem) Update(w *World) {
	queue := s.pending
	s.pending = nil

	for _, in := range queue {
		switch in.event {
		case EventInputDirection:
			s.steer(w, in.direction)
		case EventInputPause:
			s.togglePause(w)
		case EventInputStart:
			if w.Status() == StatusReady {
				w.SetStatus(StatusPlaying)
				s.bus.Dispatch(EventGameStarted, nil)
			}
		case EventInputRestart:
			// Consumed by the engine's subscriber within this same
			// dispatch; the re-init happens on the next update.
			s.bus.Dispatch(EventGameRestart, nil)
		}
	}
}

// steer queues a turn on the player. Does nothing if no player entity exists.
func (s *InputSystem) steer(w *World, dir Direction) {
	if w.Status() != StatusPlaying {
		return
	}
	reg := w.Registry()
	for _, id := range reg.Query(KindPlayerControlled, KindVelocity) {
		if vel := reg.Velocity(id); vel != nil {
			vel.NextDirection = dir
		}
		return
	}
}

func (s *InputSystem) togglePause(w *World) {
	switch w.Status() {
	case StatusPlaying:
		w.SetStatus(StatusPaused)
		s.bus.Dispatch(EventGamePaused, nil)
	case StatusPaused:
		w.SetStatus(StatusPlaying)
		s.bus.Dispatch(EventGameResumed, nil)
	}
}

// Reset drops any queued input (used on re-init).
func (s *InputSystem) Reset() {
	s.pending = nil
}

// Destroy unsubscribes the system from the bus.
func (s *InputSystem) Destroy() {
	for _, u := range s.unsubs {
		u()
	}
	s.unsubs = nil
}
