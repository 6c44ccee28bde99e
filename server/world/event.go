package world

import "github.com/go-gl/mathgl/mgl64"

// EventKind discriminates the closed set of observable mutations described
// in spec.md §3. Grounded on the discriminated-event pattern in
// annel0-mmo-game/internal/world/events.go (an enrichment source: the
// teacher itself streams changes straight to per-viewer RPC calls rather
// than through a log, since it is built around live client sessions — out
// of scope here), rewritten as a closed Go sum type in the teacher's own
// ViewXxx/NotifyXxx naming idiom.
type EventKind uint8

const (
	EventBlockSet EventKind = iota
	EventBlockSound
	EventPistonMove
	EventNoteBlockPlay
	EventEntitySpawn
	EventEntityRemove
	EventEntityPosition
	EventEntityLook
	EventEntityVelocity
	EventEntityPickup
	EventEntityDamage
	EventEntityDead
	EventEntityMetadataChange
	EventBlockEntitySet
	EventBlockEntityRemove
	EventBlockEntityStorageChange
	EventBlockEntityProgressChange
	EventBlockEntitySignChange
	EventChunkSet
	EventChunkRemove
	EventChunkDirty
	EventWeatherChange
	EventExplosion
	EventDebugParticle
)

// Event is one entry in the world's observable event log. Only the fields
// relevant to Kind are populated; callers switch on Kind. This mirrors the
// teacher's use of small value types per observable change
// (ViewEntityMovement, ViewBlockUpdate etc) collapsed into a single queued
// record since the core, unlike the teacher, has no live viewer to push to
// directly — see spec.md §3 "Event".
type Event struct {
	Kind EventKind

	Pos      BlockPos
	ChunkPos ChunkPos

	BlockID, BlockMeta       uint8
	PrevBlockID, PrevMeta    uint8

	EntityID uint32
	TargetID uint32
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Yaw, Pitch float64

	Weather Weather

	Damage float64

	ExplosionPower float64

	Sound string
	Meta  any
}

// EventQueue is an ordered, appendable log of Events. It is optional and
// swappable by the host (spec.md §3); a nil *World.events means events are
// simply dropped.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

func (q *EventQueue) push(e Event) {
	if q == nil {
		return
	}
	q.events = append(q.events, e)
}

// Events returns the queued events in emission order.
func (q *EventQueue) Events() []Event {
	if q == nil {
		return nil
	}
	return q.events
}

// Drain returns the queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
