package world

import "github.com/go-gl/mathgl/mgl64"

// fakeBlocks is a minimal BlockTable for tests: id 0 is air, id 1 is an
// opaque, solid, light-emitting-0 "stone" stand-in, id 2 is a light source.
type fakeBlocks struct{}

func (fakeBlocks) Info(id uint8) BlockInfo {
	switch id {
	case 1:
		return BlockInfo{Material: MaterialSolid, OpaqueCube: true, LightOpacity: 15, ExplosionResist: 30}
	case 2:
		return BlockInfo{Material: MaterialSolid, OpaqueCube: false, LightOpacity: 1, LightEmission: 14}
	case 3:
		return BlockInfo{Material: MaterialSolid, OpaqueCube: true, LightOpacity: 15, ExplosionResist: 0}
	default:
		return BlockInfo{Material: MaterialAir}
	}
}

type fakeBiomes struct {
	b Biome
}

func (f fakeBiomes) Biome(id uint8) Biome { return f.b }

type fakeEntity struct {
	pos, vel   mgl64.Vec3
	yaw, pitch float64
	onGround   bool
	persistent bool
	rng        *Rand
	box        BBox
}

func (e *fakeEntity) Position() mgl64.Vec3       { return e.pos }
func (e *fakeEntity) SetPosition(p mgl64.Vec3)   { e.pos = p }
func (e *fakeEntity) Velocity() mgl64.Vec3       { return e.vel }
func (e *fakeEntity) SetVelocity(v mgl64.Vec3)   { e.vel = v }
func (e *fakeEntity) Rotation() (float64, float64) { return e.yaw, e.pitch }
func (e *fakeEntity) SetRotation(yaw, pitch float64) { e.yaw, e.pitch = yaw, pitch }
func (e *fakeEntity) BoundingBox() BBox          { return e.box.Translate(e.pos) }
func (e *fakeEntity) OnGround() bool             { return e.onGround }
func (e *fakeEntity) SetOnGround(v bool)         { e.onGround = v }
func (e *fakeEntity) Persistent() bool           { return e.persistent }
func (e *fakeEntity) SetPersistent(v bool)       { e.persistent = v }
func (e *fakeEntity) RNG() *Rand                 { return e.rng }

func newFakeEntity() *fakeEntity {
	return &fakeEntity{rng: NewRand(1), box: BBox{Min: mgl64.Vec3{-0.5, 0, -0.5}, Max: mgl64.Vec3{0.5, 1, 0.5}}}
}

// fakeEntityBehavior records Tick invocations and optionally runs a callback,
// letting tests script self-removal, self-spawn, or movement from inside Tick.
type fakeEntityBehavior struct {
	kind     EntityKind
	category EntityCategory
	ticks    int
	onTick   func(e Entity, w *World, id uint32)
	canSpawn bool
}

func (b *fakeEntityBehavior) Tick(e Entity, w *World, id uint32) {
	b.ticks++
	if b.onTick != nil {
		b.onTick(e, w, id)
	}
}
func (b *fakeEntityBehavior) Category() EntityCategory                 { return b.category }
func (b *fakeEntityBehavior) Kind() EntityKind                         { return b.kind }
func (b *fakeEntityBehavior) InitNaturalSpawn(e Entity, w *World)      {}
func (b *fakeEntityBehavior) CanNaturalSpawn(e Entity, w *World) bool  { return b.canSpawn }

type fakeBlockEntity struct {
	kind BlockEntityKind
}

func (b *fakeBlockEntity) Kind() BlockEntityKind { return b.kind }

type fakeBlockEntityBehavior struct {
	ticks  int
	onTick func(be BlockEntity, w *World, pos BlockPos)
}

func (b *fakeBlockEntityBehavior) Tick(be BlockEntity, w *World, pos BlockPos) {
	b.ticks++
	if b.onTick != nil {
		b.onTick(be, w, pos)
	}
}

type fakeBlockBehavior struct {
	ticked     int
	notified   int
	neighbored int
}

func (b *fakeBlockBehavior) TickAt(pos BlockPos, id, meta uint8, random bool, w *World) { b.ticked++ }
func (b *fakeBlockBehavior) NotifyChange(w *World, pos BlockPos, prevID, prevMeta, newID, newMeta uint8) {
	b.notified++
}
func (b *fakeBlockBehavior) NotifyNeighbor(w *World, pos BlockPos, source BlockPos) { b.neighbored++ }

type fakeBlockBehaviors struct {
	behaviors map[uint8]BlockBehavior
}

func (f fakeBlockBehaviors) Behavior(id uint8) BlockBehavior { return f.behaviors[id] }

func newTestWorld() *World {
	return New(Config{
		Blocks: fakeBlocks{},
		Biomes: fakeBiomes{},
		Seed:   42,
	})
}

func fullyLitColumn() *Column {
	return NewColumn()
}
