package entity

import (
	"github.com/beta173/corestone/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// FallingBlock is the entity form gravity-affected blocks (sand, gravel)
// take while falling, grounded on mc173-server/src/entity.rs's FallingBlock
// kind.
type FallingBlock struct {
	pos, vel   mgl64.Vec3
	yaw, pitch float64
	onGround   bool
	persistent bool

	blockID, blockMeta uint8
	rng                *world.Rand
}

// NewFallingBlock constructs a falling-block entity that will place
// (blockID, blockMeta) on landing.
func NewFallingBlock(pos mgl64.Vec3, blockID, blockMeta uint8, rng *world.Rand) *FallingBlock {
	return &FallingBlock{pos: pos, blockID: blockID, blockMeta: blockMeta, rng: rng, persistent: true}
}

func (e *FallingBlock) Position() mgl64.Vec3           { return e.pos }
func (e *FallingBlock) SetPosition(p mgl64.Vec3)       { e.pos = p }
func (e *FallingBlock) Velocity() mgl64.Vec3           { return e.vel }
func (e *FallingBlock) SetVelocity(v mgl64.Vec3)       { e.vel = v }
func (e *FallingBlock) Rotation() (float64, float64)   { return e.yaw, e.pitch }
func (e *FallingBlock) SetRotation(yaw, pitch float64) { e.yaw, e.pitch = yaw, pitch }
func (e *FallingBlock) BoundingBox() world.BBox {
	return world.BBox{Min: mgl64.Vec3{-0.49, 0, -0.49}, Max: mgl64.Vec3{0.49, 0.98, 0.49}}.Translate(e.pos)
}
func (e *FallingBlock) OnGround() bool       { return e.onGround }
func (e *FallingBlock) SetOnGround(v bool)   { e.onGround = v }
func (e *FallingBlock) Persistent() bool     { return e.persistent }
func (e *FallingBlock) SetPersistent(v bool) { e.persistent = v }
func (e *FallingBlock) RNG() *world.Rand     { return e.rng }

// FallingBlockBehavior falls under gravity and places its block back down
// (self-notifying) the tick it lands.
type FallingBlockBehavior struct {
	computer MovementComputer
}

// NewFallingBlockBehavior builds the standard falling-block physics profile.
func NewFallingBlockBehavior() *FallingBlockBehavior {
	return &FallingBlockBehavior{computer: MovementComputer{Gravity: 0.04}}
}

func (b *FallingBlockBehavior) Tick(e world.Entity, w *world.World, id uint32) {
	fb, ok := e.(*FallingBlock)
	if !ok {
		return
	}
	pos, vel, onGround := b.computer.TickMovement(w, fb.pos, fb.vel)
	fb.pos, fb.vel, fb.onGround = pos, vel, onGround

	if onGround {
		landed := world.BlockPos{X: int(floor(fb.pos.X())), Y: int(floor(fb.pos.Y())), Z: int(floor(fb.pos.Z()))}
		w.SetBlockSelfNotify(landed, fb.blockID, fb.blockMeta)
		w.RemoveEntity(id)
	}
}

func (b *FallingBlockBehavior) Category() world.EntityCategory { return world.CategoryOther }
func (b *FallingBlockBehavior) Kind() world.EntityKind         { return world.KindFallingBlock }
func (b *FallingBlockBehavior) InitNaturalSpawn(world.Entity, *world.World) {}
func (b *FallingBlockBehavior) CanNaturalSpawn(world.Entity, *world.World) bool { return false }
