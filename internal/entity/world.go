// internal/entity/world.go
package entity

import (
	"jungle-defense/internal/config"
	"jungle-defense/internal/event"
	"jungle-defense/internal/types"
	"jungle-defense/internal/utils"
)

// World owns every live entity of a session together with the counters
// entities share (bananas, score, game over).
//
// Removal is mark-and-reap: Destroy marks the entity dead and drops it from the
// index at once, so it disappears from queries and Len; the slice itself is
// compacted when no pass over it is running. A pass only visits the entities
// that existed when it started.
type World struct {
	rules  *config.Config
	rng    *utils.PRNGService
	frames FrameSource
	events *event.Dispatcher

	entities []Entity
	index    map[types.EntityID]Entity
	nextID   types.EntityID
	systems  []System

	passes int // nested passes over entities in progress
	dirty  bool

	bananas  int
	score    int
	gameOver bool
	ticks    uint64
}

// NewWorld creates an empty world. frames and events may be nil.
func NewWorld(rules *config.Config, rng *utils.PRNGService, frames FrameSource, events *event.Dispatcher) *World {
	if events == nil {
		events = event.NewDispatcher()
	}
	if rng == nil {
		rng = utils.NewPRNGService(rules.Session.Seed)
	}
	return &World{
		rules:   rules,
		rng:     rng,
		frames:  frames,
		events:  events,
		index:   make(map[types.EntityID]Entity),
		nextID:  1,
		bananas: rules.Session.StartingBananas,
	}
}

// Create registers e, assigns its id and back reference, and runs OnReady.
func (w *World) Create(e Entity) types.EntityID {
	b := e.Core()
	b.id = w.nextID
	w.nextID++
	b.world = w
	b.alive = true

	w.entities = append(w.entities, e)
	w.index[b.id] = e
	e.OnReady()
	return b.id
}

// Destroy removes the entity with the given id. Unknown or already destroyed
// ids are ignored.
func (w *World) Destroy(id types.EntityID) {
	e, ok := w.index[id]
	if !ok {
		return
	}
	e.Core().alive = false
	delete(w.index, id)
	w.dirty = true
	if w.passes == 0 {
		w.reap()
	}
}

func (w *World) Get(id types.EntityID) (Entity, bool) {
	e, ok := w.index[id]
	return e, ok
}

// Len is the number of live entities.
func (w *World) Len() int {
	return len(w.index)
}

// AddSystem registers a system to run after the entity updates of every tick.
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
}

// Each calls visit for every live entity in insertion order until visit
// returns false. Entities created during the walk are not visited.
func (w *World) Each(visit func(Entity) bool) {
	w.passes++
	defer w.endPass()

	n := len(w.entities)
	for i := 0; i < n; i++ {
		e := w.entities[i]
		if !e.Core().alive {
			continue
		}
		if !visit(e) {
			return
		}
	}
}

// Tick advances the simulation by dt: entity updates, then systems, then reaping.
func (w *World) Tick(dt float64) {
	w.passes++
	n := len(w.entities)
	for i := 0; i < n; i++ {
		e := w.entities[i]
		if !e.Core().alive {
			continue
		}
		e.Update(dt)
	}
	for _, s := range w.systems {
		s.Update(dt)
	}
	w.ticks++
	w.endPass()
}

func (w *World) endPass() {
	w.passes--
	if w.passes == 0 && w.dirty {
		w.reap()
	}
}

func (w *World) reap() {
	live := w.entities[:0]
	for _, e := range w.entities {
		if e.Core().alive {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = live
	w.dirty = false
}

// Clear destroys every entity, keeping counters.
func (w *World) Clear() {
	w.Each(func(e Entity) bool {
		w.Destroy(e.Core().id)
		return true
	})
}

func (w *World) Rules() *config.Config { return w.rules }

func (w *World) Rand() *utils.PRNGService { return w.rng }

func (w *World) Events() *event.Dispatcher { return w.events }

func (w *World) Frames() FrameSource { return w.frames }

// DeltaTime is the fixed step all integration uses.
func (w *World) DeltaTime() float64 { return w.rules.DeltaTime() }

// Ticks counts completed calls to Tick.
func (w *World) Ticks() uint64 { return w.ticks }

func (w *World) Bananas() int { return w.bananas }

func (w *World) AddBananas(n int) { w.bananas += n }

// SpendBananas deducts n if the player can afford it.
func (w *World) SpendBananas(n int) bool {
	if n > w.bananas {
		return false
	}
	w.bananas -= n
	return true
}

func (w *World) Score() int { return w.score }

func (w *World) AddScore(n int) { w.score += n }

func (w *World) GameOver() bool { return w.gameOver }

// SetGameOver raises the game over flag and announces it once.
func (w *World) SetGameOver() {
	if w.gameOver {
		return
	}
	w.gameOver = true
	w.events.Dispatch(event.Event{Type: event.GameOver})
}
