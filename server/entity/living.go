package entity

import (
	"github.com/beta173/corestone/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// yawVelocityMul matches mc173's tick_living_ai constant, 20 degrees in
// radians: a ground mob's random yaw nudge, (NextFloat()-0.5)*yawVelocityMul,
// lies within ±10 degrees per retarget.
const yawVelocityMul = 0.3490658503988659

// Living is a generic ground mob used as the natural-spawn/mob-spawner
// filler kind, grounded on mc173/src/entity/tick_ai.rs's tick_ground_ai
// fallback (the "just look in random directions" path every non-special-
// cased hostile/passive mob shares).
type Living struct {
	pos, vel    mgl64.Vec3
	yaw, pitch  float64
	yawVelocity float64
	onGround    bool
	persistent  bool
	category    world.EntityCategory

	rng *world.Rand
}

// NewLiving constructs a generic mob of the given natural-spawn category.
func NewLiving(pos mgl64.Vec3, category world.EntityCategory, rng *world.Rand) *Living {
	return &Living{pos: pos, category: category, rng: rng}
}

func (e *Living) Position() mgl64.Vec3           { return e.pos }
func (e *Living) SetPosition(p mgl64.Vec3)       { e.pos = p }
func (e *Living) Velocity() mgl64.Vec3           { return e.vel }
func (e *Living) SetVelocity(v mgl64.Vec3)       { e.vel = v }
func (e *Living) Rotation() (float64, float64)   { return e.yaw, e.pitch }
func (e *Living) SetRotation(yaw, pitch float64) { e.yaw, e.pitch = yaw, pitch }
func (e *Living) BoundingBox() world.BBox {
	return world.BBox{Min: mgl64.Vec3{-0.3, 0, -0.3}, Max: mgl64.Vec3{0.3, 0.9, 0.3}}.Translate(e.pos)
}
func (e *Living) OnGround() bool       { return e.onGround }
func (e *Living) SetOnGround(v bool)   { e.onGround = v }
func (e *Living) Persistent() bool     { return e.persistent }
func (e *Living) SetPersistent(v bool) { e.persistent = v }
func (e *Living) RNG() *world.Rand     { return e.rng }

// LivingBehavior drives the generic ground-AI wander fallback: occasionally
// picks a new random yaw velocity and integrates gravity/horizontal drift.
type LivingBehavior struct {
	category world.EntityCategory
	computer MovementComputer
}

// NewLivingBehavior builds a generic mob behavior for the given category.
func NewLivingBehavior(category world.EntityCategory) *LivingBehavior {
	return &LivingBehavior{category: category, computer: MovementComputer{Gravity: 0.08, Drag: 0.02}}
}

func (b *LivingBehavior) Tick(e world.Entity, w *world.World, id uint32) {
	l, ok := e.(*Living)
	if !ok {
		return
	}
	if l.rng.NextFloat() < 0.02 {
		l.yawVelocity = (float64(l.rng.NextFloat()) - 0.5) * yawVelocityMul
	}
	l.yaw += l.yawVelocity

	forward := mgl64.Vec3{0, 0, 0.02}
	l.vel = l.vel.Add(forward)

	pos, vel, onGround := b.computer.TickMovement(w, l.pos, l.vel)
	l.pos, l.vel, l.onGround = pos, vel, onGround
}

func (b *LivingBehavior) Category() world.EntityCategory { return b.category }
func (b *LivingBehavior) Kind() world.EntityKind         { return world.KindLiving }
func (b *LivingBehavior) InitNaturalSpawn(world.Entity, *world.World) {}

// CanNaturalSpawn requires a non-air block directly underfoot; the space
// at/above the entity's feet is not checked here (server/world/spawn.go
// checks it before construction). This is the per-kind final veto spec.md
// §4.9 reserves for EntityBehavior.
func (b *LivingBehavior) CanNaturalSpawn(e world.Entity, w *world.World) bool {
	pos := e.Position()
	feet := world.BlockPos{X: int(floor(pos.X())), Y: int(floor(pos.Y())) - 1, Z: int(floor(pos.Z()))}
	id, _ := w.GetBlock(feet)
	return id != 0
}
