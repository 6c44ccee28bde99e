package world

import (
	"fmt"
	"math"

	"github.com/brentp/intintmap"
	"github.com/go-gl/mathgl/mgl64"
)

// Entity is the minimal contract the core needs from any entity kind to
// store, move and query it; per-kind behaviour is supplied separately via
// EntityBehavior (spec.md §6). Grounded on the position/velocity/rotation/
// bounding-box vocabulary of server/entity/movement.go's MovementComputer
// and Movement types.
type Entity interface {
	Position() mgl64.Vec3
	SetPosition(mgl64.Vec3)
	Velocity() mgl64.Vec3
	SetVelocity(mgl64.Vec3)
	Rotation() (yaw, pitch float64)
	SetRotation(yaw, pitch float64)
	BoundingBox() BBox
	OnGround() bool
	SetOnGround(bool)
	// Persistent reports whether the entity should survive chunk unload
	// cycles (host policy; the core only threads the flag through).
	Persistent() bool
	// SetPersistent lets the core override the flag, e.g. natural spawn
	// forcing persistent=true on a successful placement (spec.md §4.9 step 4).
	SetPersistent(bool)
	RNG() *Rand
}

// EntityKind is the closed set of entity kinds named in spec.md §3.
type EntityKind uint16

const (
	KindPlayer EntityKind = iota
	KindItem
	KindBoat
	KindMinecart
	KindFallingBlock
	KindTNT
	KindArrow
	KindSnowball
	KindEgg
	KindFireball
	KindFishingHook
	KindLiving // generic living/mob marker; concrete species live in Behavior.Kind-adjacent metadata
)

type entitySlot struct {
	id       uint32
	ent      Entity
	behavior EntityBehavior
	chunk    ChunkPos
	loaded   bool
	// taken marks a slot whose entity is currently out being ticked
	// (take-out-tick-put-back, spec.md §9): queries must not yield it.
	taken bool
}

// entityRegistry holds every entity live in the World plus the cross
// indexes spec.md §3 requires: id->index (E1), chunk membership (E2), and
// the player subset (E3). Grounded on World.entities/EntityHandle bookkeeping
// in the teacher's server/world/world.go, factored into its own type.
type entityRegistry struct {
	slots  *tickVec[entitySlot]
	ids    *intintmap.Map // int64(id) -> int64(index), C3's id->index cross-index
	nextID uint32

	playerOrder []uint32
	playerSet   map[uint32]struct{}
}

func newEntityRegistry() *entityRegistry {
	return &entityRegistry{
		slots:     newTickVec[entitySlot](),
		ids:       intintmap.New(256, 0.75),
		playerSet: make(map[uint32]struct{}),
	}
}

// errEntityIDSpaceExhausted is a programming-error sentinel: spec.md §3
// treats 32-bit id counter overflow as fatal corruption, never a recoverable
// condition.
var errEntityIDSpaceExhausted = fmt.Errorf("world: entity id space exhausted")

// SpawnEntity registers a new entity, assigning it the next monotonically
// increasing id. Legal to call from inside an entity's own Tick: the new
// entity is only visited starting the next orchestrator pass, per the
// TickVec contract (spec.md §4.4).
func (w *World) SpawnEntity(ent Entity, behavior EntityBehavior) uint32 {
	reg := w.entities
	if reg.nextID == math.MaxUint32 {
		w.log.Warn("entity id space exhausted")
		panic(errEntityIDSpaceExhausted)
	}
	id := reg.nextID
	reg.nextID++

	cp := chunkPosOf(ent.Position())
	idx := reg.slots.push(entitySlot{id: id, ent: ent, behavior: behavior, chunk: cp})
	reg.ids.Put(int64(id), int64(idx))

	cc := w.chunkComponentFor(cp)
	cc.addEntity(id)
	slot := reg.slots.at(idx)
	slot.loaded = cc.loaded()
	reg.slots.set(idx, slot)

	w.events.push(Event{Kind: EventEntitySpawn, EntityID: id, Position: ent.Position()})
	w.dirty(cp)
	return id
}

// reinsertEntity registers ent under an explicit id rather than minting a
// fresh one, used by InsertSnapshot to restore entities with the same id
// they had at capture time (spec.md §4.12's round-trip guarantee). A no-op
// if id is already registered. Advances the id counter past id so a later
// SpawnEntity can never collide with a restored id.
func (w *World) reinsertEntity(id uint32, ent Entity, behavior EntityBehavior) {
	reg := w.entities
	if _, ok := reg.ids.Get(int64(id)); ok {
		return
	}

	cp := chunkPosOf(ent.Position())
	idx := reg.slots.push(entitySlot{id: id, ent: ent, behavior: behavior, chunk: cp})
	reg.ids.Put(int64(id), int64(idx))

	cc := w.chunkComponentFor(cp)
	cc.addEntity(id)
	slot := reg.slots.at(idx)
	slot.loaded = cc.loaded()
	reg.slots.set(idx, slot)

	if id >= reg.nextID {
		reg.nextID = id + 1
	}

	w.events.push(Event{Kind: EventEntitySpawn, EntityID: id, Position: ent.Position()})
	w.dirty(cp)
}

func chunkPosOf(pos mgl64.Vec3) ChunkPos {
	return BlockPos{X: int(math.Floor(pos.X())), Y: 0, Z: int(math.Floor(pos.Z()))}.ChunkPos()
}

// RemoveEntity removes the entity by id. O(1) via swap-remove, fixing up
// the swapped entity's id->index mapping, its chunk membership if it
// differs (it never does: chunk membership is keyed by id, not index, so
// only the id->index map needs the fixup), and the player subset. If the
// removed entity is the one currently being ticked, its slot is simply
// marked gone so the orchestrator's tick loop continues without touching it
// (spec.md §4.4, §8 scenario 5).
func (w *World) RemoveEntity(id uint32) {
	w.removeEntity(id, EventEntityRemove)
}

// KillEntity removes the entity exactly like RemoveEntity, but emits
// EventEntityDead instead of EventEntityRemove: the closed event vocabulary
// (spec.md §3) distinguishes a death from any other removal (despawn, chunk
// unload cleanup), a distinction the core can't infer on its own since it
// has no health model — the host calls this instead of RemoveEntity when it
// knows the removal is a death.
func (w *World) KillEntity(id uint32) {
	w.removeEntity(id, EventEntityDead)
}

func (w *World) removeEntity(id uint32, kind EventKind) {
	reg := w.entities
	idxVal, ok := reg.ids.Get(int64(id))
	if !ok {
		return
	}
	idx := int(idxVal)
	removed, move := reg.slots.remove(idx)
	reg.ids.Del(int64(id))
	if move != nil {
		reg.ids.Put(int64(move.value.id), int64(move.movedTo))
	}

	cc := w.chunkComponentFor(removed.chunk)
	cc.removeEntity(id)
	delete(reg.playerSet, id)
	for i, v := range reg.playerOrder {
		if v == id {
			reg.playerOrder = append(reg.playerOrder[:i], reg.playerOrder[i+1:]...)
			break
		}
	}

	w.events.push(Event{Kind: kind, EntityID: id})
	w.dirty(removed.chunk)
}

// SetEntityLook updates id's look angles and emits EventEntityLook. Returns
// false if id is absent or currently being ticked.
func (w *World) SetEntityLook(id uint32, yaw, pitch float64) bool {
	ent := w.Entity(id)
	if ent == nil {
		return false
	}
	ent.SetRotation(yaw, pitch)
	w.events.push(Event{Kind: EventEntityLook, EntityID: id, Yaw: yaw, Pitch: pitch})
	return true
}

// SetEntityVelocity updates id's velocity and emits EventEntityVelocity.
// Returns false if id is absent or currently being ticked.
func (w *World) SetEntityVelocity(id uint32, vel mgl64.Vec3) bool {
	ent := w.Entity(id)
	if ent == nil {
		return false
	}
	ent.SetVelocity(vel)
	w.events.push(Event{Kind: EventEntityVelocity, EntityID: id, Velocity: vel})
	return true
}

// DamageEntity reports a damage event for id without mutating anything —
// health bookkeeping is the host's concern (spec.md §6); the core only
// records that the damage happened. Returns false if id is absent or
// currently being ticked.
func (w *World) DamageEntity(id uint32, amount float64) bool {
	if w.Entity(id) == nil {
		return false
	}
	w.events.push(Event{Kind: EventEntityDamage, EntityID: id, Damage: amount})
	return true
}

// PickupEntity removes targetID (typically an item or arrow resting on the
// ground) and emits EventEntityPickup crediting collectorID, grounded on
// mc173/src/world.rs's Event::EntityPickup{id, target_id}. Returns false if
// either entity is absent or currently being ticked.
func (w *World) PickupEntity(collectorID, targetID uint32) bool {
	if w.Entity(collectorID) == nil || w.Entity(targetID) == nil {
		return false
	}
	w.RemoveEntity(targetID)
	w.events.push(Event{Kind: EventEntityPickup, EntityID: collectorID, TargetID: targetID})
	return true
}

// SetEntityMetadata reports a host-defined display-state change for id (e.g.
// sneaking, on-fire, health bar value) without the core interpreting or
// storing it — metadata content is entirely the host's concern (spec.md §6).
// Returns false if id is absent or currently being ticked.
func (w *World) SetEntityMetadata(id uint32, meta any) bool {
	if w.Entity(id) == nil {
		return false
	}
	w.events.push(Event{Kind: EventEntityMetadataChange, EntityID: id, Meta: meta})
	return true
}

// SetPlayerEntity toggles membership of id in the player subset (E3),
// preserving insertion order.
func (w *World) SetPlayerEntity(id uint32, isPlayer bool) {
	reg := w.entities
	if _, ok := reg.ids.Get(int64(id)); !ok {
		return
	}
	_, already := reg.playerSet[id]
	if isPlayer == already {
		return
	}
	if isPlayer {
		reg.playerSet[id] = struct{}{}
		reg.playerOrder = append(reg.playerOrder, id)
	} else {
		delete(reg.playerSet, id)
		for i, v := range reg.playerOrder {
			if v == id {
				reg.playerOrder = append(reg.playerOrder[:i], reg.playerOrder[i+1:]...)
				break
			}
		}
	}
}

// Entity returns the entity registered under id, or nil if absent or
// currently being ticked (its slot is temporarily empty).
func (w *World) Entity(id uint32) Entity {
	idxVal, ok := w.entities.ids.Get(int64(id))
	if !ok {
		return nil
	}
	slot := w.entities.slots.at(int(idxVal))
	if slot.taken {
		return nil
	}
	return slot.ent
}

// EntityCount returns the number of live entities, ticked or not.
func (w *World) EntityCount() int {
	return w.entities.slots.len()
}

// Players returns the player-subset ids in insertion order.
func (w *World) Players() []uint32 {
	out := make([]uint32, len(w.entities.playerOrder))
	copy(out, w.entities.playerOrder)
	return out
}
