package entity

import (
	"github.com/beta173/corestone/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// tntFuseTicks is vanilla Beta's primed-TNT fuse length (4 seconds at 20
// ticks/s), per mc173-server/src/entity.rs.
const tntFuseTicks = 80

// TNT is primed TNT: falls under gravity and detonates when its fuse runs
// out, a feature supplemented from the distillation source per
// SPEC_FULL.md §C (spec.md's closed module list only names the block
// mutation primitives the explosion itself uses).
type TNT struct {
	pos, vel   mgl64.Vec3
	yaw, pitch float64
	onGround   bool
	persistent bool
	fuse       int
	power      float64

	rng *world.Rand
}

// NewTNT constructs a primed TNT entity with the standard fuse and power.
func NewTNT(pos mgl64.Vec3, rng *world.Rand) *TNT {
	return &TNT{pos: pos, fuse: tntFuseTicks, power: 4, rng: rng, persistent: true}
}

func (e *TNT) Position() mgl64.Vec3           { return e.pos }
func (e *TNT) SetPosition(p mgl64.Vec3)       { e.pos = p }
func (e *TNT) Velocity() mgl64.Vec3           { return e.vel }
func (e *TNT) SetVelocity(v mgl64.Vec3)       { e.vel = v }
func (e *TNT) Rotation() (float64, float64)   { return e.yaw, e.pitch }
func (e *TNT) SetRotation(yaw, pitch float64) { e.yaw, e.pitch = yaw, pitch }
func (e *TNT) BoundingBox() world.BBox {
	return world.BBox{Min: mgl64.Vec3{-0.49, 0, -0.49}, Max: mgl64.Vec3{0.49, 0.98, 0.49}}.Translate(e.pos)
}
func (e *TNT) OnGround() bool       { return e.onGround }
func (e *TNT) SetOnGround(v bool)   { e.onGround = v }
func (e *TNT) Persistent() bool     { return e.persistent }
func (e *TNT) SetPersistent(v bool) { e.persistent = v }
func (e *TNT) RNG() *world.Rand     { return e.rng }

// TNTBehavior counts down the fuse and detonates via World.Explosion.
type TNTBehavior struct {
	computer MovementComputer
}

// NewTNTBehavior builds the standard primed-TNT physics/fuse profile.
func NewTNTBehavior() *TNTBehavior {
	return &TNTBehavior{computer: MovementComputer{Gravity: 0.04, Drag: 0.02}}
}

func (b *TNTBehavior) Tick(e world.Entity, w *world.World, id uint32) {
	t, ok := e.(*TNT)
	if !ok {
		return
	}
	pos, vel, onGround := b.computer.TickMovement(w, t.pos, t.vel)
	t.pos, t.vel, t.onGround = pos, vel, onGround

	t.fuse--
	if t.fuse <= 0 {
		w.Explosion(t.pos, t.power)
		w.RemoveEntity(id)
	}
}

func (b *TNTBehavior) Category() world.EntityCategory { return world.CategoryOther }
func (b *TNTBehavior) Kind() world.EntityKind         { return world.KindTNT }
func (b *TNTBehavior) InitNaturalSpawn(world.Entity, *world.World) {}
func (b *TNTBehavior) CanNaturalSpawn(world.Entity, *world.World) bool { return false }
