package sim

// Kind identifies a component type. The set is closed: every component the
// simulation uses is enumerated here, which keeps the registry's storage
// fully typed (one sparse map per kind) instead of string-tagged.
type Kind int

const (
	KindPosition Kind = iota
	KindVelocity
	KindGhostAI
	KindEdible
	KindPowerUp
	KindVulnerable
	KindRespawnable
	KindPlayerControlled
	KindCollider
)

// Position holds an entity's location. Pixel coordinates are authoritative;
// grid coordinates are always recomputed as the floor division of pixels by
// the tile size and must never drift independently.
type Position struct {
	GridX, GridY   int
	PixelX, PixelY float64
}

// Velocity holds the direction currently applied plus a queued turn request.
// NextDirection is adopted opportunistically at grid alignment, or immediately
// when it is an exact 180° reversal.
type Velocity struct {
	Direction     Direction
	Speed         float64 // pixels per reference frame (16.67 ms)
	NextDirection Direction
}

// GhostType is one of the four fixed ghost identities.
type GhostType int

const (
	GhostBlinky GhostType = iota // direct chaser
	GhostPinky                   // ambusher
	GhostInky                    // flanker
	GhostClyde                   // opportunist
)

func (t GhostType) String() string {
	switch t {
	case GhostBlinky:
		return "blinky"
	case GhostPinky:
		return "pinky"
	case GhostInky:
		return "inky"
	case GhostClyde:
		return "clyde"
	default:
		return "unknown"
	}
}

// GhostMode is a ghost's behavior state.
type GhostMode int

const (
	ModeChase GhostMode = iota
	ModeScatter
	ModeFrightened
	ModeEaten
)

func (m GhostMode) String() string {
	switch m {
	case ModeChase:
		return "chase"
	case ModeScatter:
		return "scatter"
	case ModeFrightened:
		return "frightened"
	case ModeEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// GhostAI holds a ghost's identity, current mode, and fixed scatter corner.
type GhostAI struct {
	Type               GhostType
	Mode               GhostMode
	ScatterX, ScatterY int
}

// Edible marks an entity as consumable by the player.
type Edible struct {
	Points int
}

// PowerUp marks a power pellet; present only alongside Edible.
type PowerUp struct {
	DurationMs float64
}

// Vulnerable marks a ghost as currently eatable. Presence is the contract:
// only the power-up system adds it and only the power-up and collision
// systems remove it.
type Vulnerable struct {
	RemainingMs float64
	Flashing    bool
}

// Respawnable carries an entity's spawn cell and respawn delay.
type Respawnable struct {
	SpawnX, SpawnY int
	DelayMs        float64
	TimerMs        float64
}

// PlayerControlled is a zero-data marker for the single player entity.
type PlayerControlled struct{}

// Collider is reserved for future bounding-box collision; actual overlap
// checks use radius-from-center.
type Collider struct {
	Width, Height float64
}
