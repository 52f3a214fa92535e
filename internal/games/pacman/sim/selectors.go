package sim

import "sort"

// Read-only views over the world, for rendering and tests. The views are
// value copies: holding one across a tick never observes a half-updated
// entity.

// PlayerView is a snapshot of the player entity.
type PlayerView struct {
	Entity    Entity
	GridX     int
	GridY     int
	PixelX    float64
	PixelY    float64
	Direction Direction
	NextTurn  Direction
	Speed     float64
}

// GhostView is a snapshot of one ghost.
type GhostView struct {
	Entity     Entity
	Type       GhostType
	Mode       GhostMode
	GridX      int
	GridY      int
	PixelX     float64
	PixelY     float64
	Direction  Direction
	Vulnerable bool
	Flashing   bool
}

// CollectibleView is a snapshot of one pellet or power pellet.
type CollectibleView struct {
	Entity  Entity
	GridX   int
	GridY   int
	Points  int
	PowerUp bool
}

// Player returns a snapshot of the player, or false if none exists.
func Player(w *World) (PlayerView, bool) {
	reg := w.Registry()
	for _, id := range reg.Query(KindPlayerControlled, KindPosition) {
		pos := reg.Position(id)
		if pos == nil {
			continue
		}
		v := PlayerView{
			Entity: id,
			GridX:  pos.GridX,
			GridY:  pos.GridY,
			PixelX: pos.PixelX,
			PixelY: pos.PixelY,
		}
		if vel := reg.Velocity(id); vel != nil {
			v.Direction = vel.Direction
			v.NextTurn = vel.NextDirection
			v.Speed = vel.Speed
		}
		return v, true
	}
	return PlayerView{}, false
}

// Ghosts returns all ghosts, ordered by identity (blinky first).
func Ghosts(w *World) []GhostView {
	reg := w.Registry()

	var out []GhostView
	for _, id := range reg.Query(KindGhostAI, KindPosition) {
		ai := reg.GhostAI(id)
		pos := reg.Position(id)
		if ai == nil || pos == nil {
			continue
		}
		v := GhostView{
			Entity: id,
			Type:   ai.Type,
			Mode:   ai.Mode,
			GridX:  pos.GridX,
			GridY:  pos.GridY,
			PixelX: pos.PixelX,
			PixelY: pos.PixelY,
		}
		if vel := reg.Velocity(id); vel != nil {
			v.Direction = vel.Direction
		}
		if vul := reg.Vulnerable(id); vul != nil {
			v.Vulnerable = true
			v.Flashing = vul.Flashing
		}
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// Ghost returns the ghost of the given identity, or false if absent.
func Ghost(w *World, t GhostType) (GhostView, bool) {
	for _, g := range Ghosts(w) {
		if g.Type == t {
			return g, true
		}
	}
	return GhostView{}, false
}

// Collectibles returns every remaining pellet and power pellet.
func Collectibles(w *World) []CollectibleView {
	reg := w.Registry()

	var out []CollectibleView
	for _, id := range reg.Query(KindEdible, KindPosition) {
		ed := reg.Edible(id)
		pos := reg.Position(id)
		if ed == nil || pos == nil {
			continue
		}
		out = append(out, CollectibleView{
			Entity:  id,
			GridX:   pos.GridX,
			GridY:   pos.GridY,
			Points:  ed.Points,
			PowerUp: reg.PowerUp(id) != nil,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Entity < out[j].Entity })
	return out
}

// PowerPellets returns only the remaining power pellets.
func PowerPellets(w *World) []CollectibleView {
	reg := w.Registry()

	var out []CollectibleView
	for _, id := range reg.Query(KindEdible, KindPowerUp, KindPosition) {
		ed := reg.Edible(id)
		pos := reg.Position(id)
		if ed == nil || pos == nil {
			continue
		}
		out = append(out, CollectibleView{
			Entity:  id,
			GridX:   pos.GridX,
			GridY:   pos.GridY,
			Points:  ed.Points,
			PowerUp: true,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Entity < out[j].Entity })
	return out
}

// RemainingCollectibles counts the pellets and power pellets still on the
// board.
func RemainingCollectibles(w *World) int {
	return len(w.Registry().Query(KindEdible))
}

func Score(w *World) int                { return w.Score() }
func Lives(w *World) int                { return w.Lives() }
func Level(w *World) int                { return w.Level() }
func StatusOf(w *World) Status          { return w.Status() }
func PowerUpRemaining(w *World) float64 { return w.PowerUpTimeRemaining() }
func IsPlaying(w *World) bool           { return w.Status() == StatusPlaying }
func IsPaused(w *World) bool            { return w.Status() == StatusPaused }
func IsReady(w *World) bool             { return w.Status() == StatusReady }
func IsWon(w *World) bool               { return w.Status() == StatusWon }
func IsOver(w *World) bool              { return w.Status() == StatusLost || w.Status() == StatusWon }
