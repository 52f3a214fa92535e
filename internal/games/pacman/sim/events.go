package sim

// EventType names an event on the bus. The vocabulary is closed; each type
// carries a fixed payload shape (or nil where noted).
type EventType string

const (
	// UI → logic
	EventInputDirection EventType = "input:direction" // DirectionEvent
	EventInputPause     EventType = "input:pause"     // nil
	EventInputStart     EventType = "input:start"     // nil
	EventInputRestart   EventType = "input:restart"   // nil

	// Logic → UI
	EventGameStarted      EventType = "game:started"    // nil
	EventGamePaused       EventType = "game:paused"     // nil
	EventGameResumed      EventType = "game:resumed"    // nil
	EventGameOver         EventType = "game:over"       // GameOverEvent
	EventLevelComplete    EventType = "level:complete"  // LevelCompleteEvent
	EventPelletEaten      EventType = "pellet:eaten"    // PelletEatenEvent
	EventPowerPelletEaten EventType = "power:eaten"     // PowerPelletEatenEvent
	EventGhostEaten       EventType = "ghost:eaten"     // GhostEatenEvent
	EventPowerUpStarted   EventType = "powerup:started" // PowerUpTimeEvent
	EventPowerUpWarning   EventType = "powerup:warning" // PowerUpTimeEvent
	EventPowerUpEnded     EventType = "powerup:ended"   // nil

	// Logic-internal (also observable by UI)
	EventGameRestart EventType = "game:restart" // nil, triggers re-init
	EventPlayerDied  EventType = "player:died"  // PlayerDiedEvent
	EventGhostMode   EventType = "ghost:mode"   // GhostModeEvent
)

// DirectionEvent carries a requested player direction.
type DirectionEvent struct {
	Direction Direction
}

// GameOverEvent carries the final score and level when the game is lost.
type GameOverEvent struct {
	FinalScore int
	Level      int
}

// LevelCompleteEvent fires when the last collectible is consumed.
type LevelCompleteEvent struct {
	Level int
	Score int
}

// PelletEatenEvent fires for every plain pellet consumed.
type PelletEatenEvent struct {
	Entity Entity
	GridX  int
	GridY  int
	Points int
}

// PowerPelletEatenEvent fires for every power pellet consumed.
type PowerPelletEatenEvent struct {
	Entity     Entity
	GridX      int
	GridY      int
	Points     int
	DurationMs float64
}

// GhostEatenEvent fires when the player eats a vulnerable ghost.
type GhostEatenEvent struct {
	Ghost  Entity
	Type   GhostType
	Points int
	Streak int
	GridX  int
	GridY  int
}

// PlayerDiedEvent fires on a fatal ghost collision.
type PlayerDiedEvent struct {
	LivesRemaining int
}

// PowerUpTimeEvent carries the power-up time remaining in milliseconds.
type PowerUpTimeEvent struct {
	RemainingMs float64
}

// GhostModeEvent announces a global scatter/chase flip.
type GhostModeEvent struct {
	Mode GhostMode
}

// Handler receives a dispatched event payload.
type Handler func(payload any)

type subscription struct {
	id   int
	fn   Handler
	once bool
}

// Bus is a synchronous typed publish/subscribe channel.
//
// Dispatch calls all subscribers registered at dispatch time, in subscription
// order, on the caller's goroutine. There is no reentrancy protection: a
// handler that dispatches its own triggering event will recurse unboundedly.
// Handlers may subscribe or unsubscribe during delivery; such changes take
// effect on the next dispatch.
type Bus struct {
	nextID int
	subs   map[EventType][]*subscription
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[EventType][]*subscription),
	}
}

// Subscribe registers a handler and returns its unsubscribe function.
// Unsubscribing twice is harmless.
func (b *Bus) Subscribe(t EventType, h Handler) func() {
	return b.add(t, h, false)
}

// Once registers a handler that auto-unsubscribes after its first delivery.
func (b *Bus) Once(t EventType, h Handler) func() {
	return b.add(t, h, true)
}

func (b *Bus) add(t EventType, h Handler, once bool) func() {
	b.nextID++
	sub := &subscription{id: b.nextID, fn: h, once: once}
	b.subs[t] = append(b.subs[t], sub)
	id := sub.id
	return func() {
		b.remove(t, id)
	}
}

func (b *Bus) remove(t EventType, id int) {
	list := b.subs[t]
	for i, s := range list {
		if s.id == id {
			b.subs[t] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Dispatch delivers payload to every current subscriber of t, synchronously.
// Dispatching an event with no subscribers is a silent no-op.
func (b *Bus) Dispatch(t EventType, payload any) {
	list := b.subs[t]
	if len(list) == 0 {
		return
	}
	snapshot := make([]*subscription, len(list))
	copy(snapshot, list)
	for _, s := range snapshot {
		if s.once {
			// Drop before invoking so a reentrant dispatch cannot
			// deliver to the same once-handler twice.
			b.remove(t, s.id)
		}
		s.fn(payload)
	}
}

// Clear drops every subscription on every event.
func (b *Bus) Clear() {
	b.subs = make(map[EventType][]*subscription)
}
