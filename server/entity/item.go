package entity

import (
	"github.com/beta173/corestone/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// itemDespawnAge matches vanilla Beta's dropped-item lifetime: 6000 ticks
// (5 minutes) before an unpicked item despawns (mc173-server/src/entity.rs).
const itemDespawnAge = 6000

// Item is a dropped item stack entity. The actual item payload is left to
// the host (opaque Stack), matching spec.md §6's treatment of inventory
// contents as outside the core's concern.
type Item struct {
	pos, vel mgl64.Vec3
	yaw, pitch float64
	onGround   bool
	persistent bool
	age        int
	stack      any

	rng *world.Rand
}

// NewItem constructs an Item entity carrying the given opaque stack.
func NewItem(pos mgl64.Vec3, stack any, rng *world.Rand) *Item {
	return &Item{pos: pos, stack: stack, rng: rng}
}

func (e *Item) Position() mgl64.Vec3         { return e.pos }
func (e *Item) SetPosition(p mgl64.Vec3)     { e.pos = p }
func (e *Item) Velocity() mgl64.Vec3         { return e.vel }
func (e *Item) SetVelocity(v mgl64.Vec3)     { e.vel = v }
func (e *Item) Rotation() (float64, float64) { return e.yaw, e.pitch }
func (e *Item) SetRotation(yaw, pitch float64) { e.yaw, e.pitch = yaw, pitch }
func (e *Item) BoundingBox() world.BBox {
	return world.BBox{Min: mgl64.Vec3{-0.125, 0, -0.125}, Max: mgl64.Vec3{0.125, 0.25, 0.125}}.Translate(e.pos)
}
func (e *Item) OnGround() bool           { return e.onGround }
func (e *Item) SetOnGround(v bool)       { e.onGround = v }
func (e *Item) Persistent() bool         { return e.persistent }
func (e *Item) SetPersistent(v bool)     { e.persistent = v }
func (e *Item) RNG() *world.Rand         { return e.rng }

// Stack returns the host-opaque item stack this entity carries.
func (e *Item) Stack() any { return e.stack }

// ItemBehavior is the EntityBehavior for Item: falls under gravity, ages by
// one each tick, and despawns once itemDespawnAge is reached.
type ItemBehavior struct {
	computer MovementComputer
}

// NewItemBehavior builds the standard dropped-item physics profile.
func NewItemBehavior() *ItemBehavior {
	return &ItemBehavior{computer: MovementComputer{Gravity: 0.04, Drag: 0.02}}
}

func (b *ItemBehavior) Tick(e world.Entity, w *world.World, id uint32) {
	it, ok := e.(*Item)
	if !ok {
		return
	}
	it.age++
	if it.age >= itemDespawnAge {
		w.RemoveEntity(id)
		return
	}
	pos, vel, onGround := b.computer.TickMovement(w, it.pos, it.vel)
	it.pos, it.vel, it.onGround = pos, vel, onGround
}

func (b *ItemBehavior) Category() world.EntityCategory { return world.CategoryOther }
func (b *ItemBehavior) Kind() world.EntityKind         { return world.KindItem }
func (b *ItemBehavior) InitNaturalSpawn(world.Entity, *world.World) {}
func (b *ItemBehavior) CanNaturalSpawn(world.Entity, *world.World) bool { return false }
