package sim

import "sort"

// Entity is an opaque identifier grouping zero or more components.
// Ids are handed out by a monotonic counter and are never reused within a
// registry's lifetime.
type Entity int

// Registry owns entity liveness and component storage. Components live in
// one typed sparse map per kind, so lookups stay type-safe while keeping the
// "optional component" semantics: absence is meaningful, not an error.
//
// Every operation on a dead or unknown entity degrades to a no-op or a nil
// return. Systems routinely touch entities another system destroyed earlier
// in the same tick, so nothing here ever panics.
type Registry struct {
	nextID Entity
	alive  map[Entity]struct{}

	positions    map[Entity]*Position
	velocities   map[Entity]*Velocity
	ghosts       map[Entity]*GhostAI
	edibles      map[Entity]*Edible
	powerUps     map[Entity]*PowerUp
	vulnerables  map[Entity]*Vulnerable
	respawnables map[Entity]*Respawnable
	players      map[Entity]*PlayerControlled
	colliders    map[Entity]*Collider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.allocate()
	return r
}

func (r *Registry) allocate() {
	r.alive = make(map[Entity]struct{})
	r.positions = make(map[Entity]*Position)
	r.velocities = make(map[Entity]*Velocity)
	r.ghosts = make(map[Entity]*GhostAI)
	r.edibles = make(map[Entity]*Edible)
	r.powerUps = make(map[Entity]*PowerUp)
	r.vulnerables = make(map[Entity]*Vulnerable)
	r.respawnables = make(map[Entity]*Respawnable)
	r.players = make(map[Entity]*PlayerControlled)
	r.colliders = make(map[Entity]*Collider)
}

// Create allocates a new live entity id.
func (r *Registry) Create() Entity {
	id := r.nextID
	r.nextID++
	r.alive[id] = struct{}{}
	return id
}

// Destroy removes the entity and purges all of its components.
// Idempotent: destroying a dead or unknown id does nothing.
func (r *Registry) Destroy(id Entity) {
	if !r.IsAlive(id) {
		return
	}
	delete(r.alive, id)
	delete(r.positions, id)
	delete(r.velocities, id)
	delete(r.ghosts, id)
	delete(r.edibles, id)
	delete(r.powerUps, id)
	delete(r.vulnerables, id)
	delete(r.respawnables, id)
	delete(r.players, id)
	delete(r.colliders, id)
}

// IsAlive reports whether the entity exists.
func (r *Registry) IsAlive(id Entity) bool {
	_, ok := r.alive[id]
	return ok
}

// Has reports whether a live entity holds a component of the given kind.
func (r *Registry) Has(id Entity, k Kind) bool {
	if !r.IsAlive(id) {
		return false
	}
	switch k {
	case KindPosition:
		_, ok := r.positions[id]
		return ok
	case KindVelocity:
		_, ok := r.velocities[id]
		return ok
	case KindGhostAI:
		_, ok := r.ghosts[id]
		return ok
	case KindEdible:
		_, ok := r.edibles[id]
		return ok
	case KindPowerUp:
		_, ok := r.powerUps[id]
		return ok
	case KindVulnerable:
		_, ok := r.vulnerables[id]
		return ok
	case KindRespawnable:
		_, ok := r.respawnables[id]
		return ok
	case KindPlayerControlled:
		_, ok := r.players[id]
		return ok
	case KindCollider:
		_, ok := r.colliders[id]
		return ok
	default:
		return false
	}
}

// Remove drops a single component from an entity. No-op if absent.
func (r *Registry) Remove(id Entity, k Kind) {
	if !r.IsAlive(id) {
		return
	}
	switch k {
	case KindPosition:
		delete(r.positions, id)
	case KindVelocity:
		delete(r.velocities, id)
	case KindGhostAI:
		delete(r.ghosts, id)
	case KindEdible:
		delete(r.edibles, id)
	case KindPowerUp:
		delete(r.powerUps, id)
	case KindVulnerable:
		delete(r.vulnerables, id)
	case KindRespawnable:
		delete(r.respawnables, id)
	case KindPlayerControlled:
		delete(r.players, id)
	case KindCollider:
		delete(r.colliders, id)
	}
}

// Query returns all live entities holding ALL of the given component kinds,
// in ascending id order. The ordering is part of the contract: systems that
// consume randomness or dispatch events per entity stay reproducible only if
// they visit entities the same way every tick.
func (r *Registry) Query(kinds ...Kind) []Entity {
	var result []Entity
	for id := range r.alive {
		match := true
		for _, k := range kinds {
			if !r.Has(id, k) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// AllIDs returns every live entity id, in ascending order.
func (r *Registry) AllIDs() []Entity {
	ids := make([]Entity, 0, len(r.alive))
	for id := range r.alive {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clear drops every entity and component. The id counter is NOT rewound:
// ids stay unique across clears within the same registry instance.
func (r *Registry) Clear() {
	r.allocate()
}

// --- Typed accessors ---
//
// Setters no-op when the entity is not alive. Getters return nil when the
// component is absent; the returned pointer aliases the stored component, so
// systems mutate in place.

func (r *Registry) SetPosition(id Entity, p Position) {
	if r.IsAlive(id) {
		r.positions[id] = &p
	}
}

func (r *Registry) Position(id Entity) *Position {
	return r.positions[id]
}

func (r *Registry) SetVelocity(id Entity, v Velocity) {
	if r.IsAlive(id) {
		r.velocities[id] = &v
	}
}

func (r *Registry) Velocity(id Entity) *Velocity {
	return r.velocities[id]
}

func (r *Registry) SetGhostAI(id Entity, g GhostAI) {
	if r.IsAlive(id) {
		r.ghosts[id] = &g
	}
}

func (r *Registry) GhostAI(id Entity) *GhostAI {
	return r.ghosts[id]
}

func (r *Registry) SetEdible(id Entity, e Edible) {
	if r.IsAlive(id) {
		r.edibles[id] = &e
	}
}

func (r *Registry) Edible(id Entity) *Edible {
	return r.edibles[id]
}

func (r *Registry) SetPowerUp(id Entity, p PowerUp) {
	if r.IsAlive(id) {
		r.powerUps[id] = &p
	}
}

func (r *Registry) PowerUp(id Entity) *PowerUp {
	return r.powerUps[id]
}

func (r *Registry) SetVulnerable(id Entity, v Vulnerable) {
	if r.IsAlive(id) {
		r.vulnerables[id] = &v
	}
}

func (r *Registry) Vulnerable(id Entity) *Vulnerable {
	return r.vulnerables[id]
}

func (r *Registry) SetRespawnable(id Entity, s Respawnable) {
	if r.IsAlive(id) {
		r.respawnables[id] = &s
	}
}

func (r *Registry) Respawnable(id Entity) *Respawnable {
	return r.respawnables[id]
}

func (r *Registry) SetPlayerControlled(id Entity) {
	if r.IsAlive(id) {
		r.players[id] = &PlayerControlled{}
	}
}

func (r *Registry) SetCollider(id Entity, c Collider) {
	if r.IsAlive(id) {
		r.colliders[id] = &c
	}
}

func (r *Registry) Collider(id Entity) *Collider {
	return r.colliders[id]
}
