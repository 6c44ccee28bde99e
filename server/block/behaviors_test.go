package block

import (
	"testing"

	"github.com/beta173/corestone/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

func newTestWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.New(world.Config{
		Blocks:         BlockTable{},
		BlockBehaviors: NewBehaviors(),
		Seed:           7,
	})
	w.SetChunk(world.ChunkPos{X: 0, Z: 0}, world.NewColumn())
	return w
}

func TestContainerBehaviorInstallsAndRemoves(t *testing.T) {
	w := newTestWorld(t)
	pos := world.BlockPos{X: 1, Y: 5, Z: 1}

	w.SetBlockNotify(pos, Chest, 0)
	be := w.BlockEntityAt(pos)
	cont, ok := be.(*Container)
	if !ok {
		t.Fatalf("expected *Container, got %T", be)
	}
	if len(cont.Slots) != 27 {
		t.Fatalf("expected 27 chest slots, got %d", len(cont.Slots))
	}

	w.BreakBlock(pos)
	if w.BlockEntityAt(pos) != nil {
		t.Fatalf("expected block entity removed after BreakBlock")
	}
}

func TestContainerBehaviorDispenserSlotCount(t *testing.T) {
	w := newTestWorld(t)
	pos := world.BlockPos{X: 2, Y: 5, Z: 2}

	w.SetBlockNotify(pos, Dispenser, 0)
	cont, ok := w.BlockEntityAt(pos).(*Container)
	if !ok {
		t.Fatalf("expected *Container, got %T", w.BlockEntityAt(pos))
	}
	if len(cont.Slots) != 9 {
		t.Fatalf("expected 9 dispenser slots, got %d", len(cont.Slots))
	}
}

func TestFurnaceBurnsOutAndUnlights(t *testing.T) {
	w := newTestWorld(t)
	pos := world.BlockPos{X: 3, Y: 5, Z: 3}

	w.SetBlockNotify(pos, FurnaceLit, 0)
	be := w.BlockEntityAt(pos)
	f, ok := be.(*Furnace)
	if !ok {
		t.Fatalf("expected *Furnace, got %T", be)
	}
	f.BurnTimeLeft = 1

	tb := &furnaceTickBehavior{owner: &furnaceBehavior{litID: FurnaceLit, unlitID: Furnace}, pos: pos}
	tb.Tick(f, w, pos)

	id, _ := w.GetBlock(pos)
	if id != Furnace {
		t.Fatalf("expected furnace to unlight once burn time reaches 0, id=%d", id)
	}
}

func TestSignSetLineFoldsWidthAndEmitsEvent(t *testing.T) {
	queue := &world.EventQueue{}
	w := world.New(world.Config{Blocks: BlockTable{}, BlockBehaviors: NewBehaviors(), Events: queue, Seed: 1})
	pos := world.BlockPos{X: 1, Y: 1, Z: 1}

	s := &Sign{}
	s.SetLine(w, pos, 0, "ｈｅｌｌｏ")
	if s.Lines[0] != "hello" {
		t.Fatalf("expected fullwidth text folded to %q, got %q", "hello", s.Lines[0])
	}

	found := false
	for _, e := range queue.Drain() {
		if e.Kind == world.EventBlockEntitySignChange && e.Pos == pos {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a sign-change event")
	}
}

func TestSignSetLineOutOfRangeIsNoop(t *testing.T) {
	queue := &world.EventQueue{}
	w := world.New(world.Config{Blocks: BlockTable{}, BlockBehaviors: NewBehaviors(), Events: queue, Seed: 1})
	pos := world.BlockPos{X: 1, Y: 1, Z: 1}

	s := &Sign{}
	s.SetLine(w, pos, -1, "x")
	s.SetLine(w, pos, 4, "x")
	if s.Lines != ([4]string{}) {
		t.Fatalf("expected no lines set, got %v", s.Lines)
	}
	if len(queue.Drain()) != 0 {
		t.Fatalf("expected no events for out-of-range line indices")
	}
}

func TestContainerSetSlotStoresItemAndEmitsEvent(t *testing.T) {
	queue := &world.EventQueue{}
	w := world.New(world.Config{Blocks: BlockTable{}, BlockBehaviors: NewBehaviors(), Events: queue, Seed: 1})
	pos := world.BlockPos{X: 2, Y: 2, Z: 2}

	c := NewContainer(world.BlockEntityChest)
	c.SetSlot(w, pos, 3, "stack")
	if c.Slots[3] != "stack" {
		t.Fatalf("expected slot 3 to hold the stored item, got %v", c.Slots[3])
	}

	found := false
	for _, e := range queue.Drain() {
		if e.Kind == world.EventBlockEntityStorageChange && e.Pos == pos && e.Meta == 3 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a storage-change event for slot 3")
	}
}

func TestContainerSetSlotOutOfRangeIsNoop(t *testing.T) {
	queue := &world.EventQueue{}
	w := world.New(world.Config{Blocks: BlockTable{}, BlockBehaviors: NewBehaviors(), Events: queue, Seed: 1})
	c := NewContainer(world.BlockEntityDispenser)
	c.SetSlot(w, world.BlockPos{}, -1, "x")
	c.SetSlot(w, world.BlockPos{}, 99, "x")
	if len(queue.Drain()) != 0 {
		t.Fatalf("expected no events for out-of-range slot indices")
	}
}

type countingSpawnFactory struct{ spawned int }

func (f *countingSpawnFactory) NewEntity(kind world.EntityKind) (world.Entity, world.EntityBehavior) {
	return &testSpawnedEntity{}, &testSpawnedBehavior{f: f}
}

type testSpawnedEntity struct {
	pos        mgl64.Vec3
	persistent bool
}

func (e *testSpawnedEntity) Position() mgl64.Vec3         { return e.pos }
func (e *testSpawnedEntity) SetPosition(p mgl64.Vec3)     { e.pos = p }
func (e *testSpawnedEntity) Velocity() mgl64.Vec3         { return mgl64.Vec3{} }
func (e *testSpawnedEntity) SetVelocity(mgl64.Vec3)       {}
func (e *testSpawnedEntity) Rotation() (float64, float64) { return 0, 0 }
func (e *testSpawnedEntity) SetRotation(float64, float64) {}
func (e *testSpawnedEntity) BoundingBox() world.BBox       { return world.BBox{} }
func (e *testSpawnedEntity) OnGround() bool                { return true }
func (e *testSpawnedEntity) SetOnGround(bool)              {}
func (e *testSpawnedEntity) Persistent() bool              { return e.persistent }
func (e *testSpawnedEntity) SetPersistent(v bool)          { e.persistent = v }
func (e *testSpawnedEntity) RNG() *world.Rand              { return world.NewRand(1) }

type testSpawnedBehavior struct{ f *countingSpawnFactory }

func (b *testSpawnedBehavior) Tick(world.Entity, *world.World, uint32)   {}
func (b *testSpawnedBehavior) Category() world.EntityCategory            { return world.CategoryMob }
func (b *testSpawnedBehavior) Kind() world.EntityKind                    { return world.KindLiving }
func (b *testSpawnedBehavior) InitNaturalSpawn(world.Entity, *world.World) { b.f.spawned++ }
func (b *testSpawnedBehavior) CanNaturalSpawn(world.Entity, *world.World) bool { return true }

func TestSpawnerTickSpawnsWhenDelayElapsesAndRoomIsEmpty(t *testing.T) {
	factory := &countingSpawnFactory{}
	w := world.New(world.Config{
		Blocks:         BlockTable{},
		BlockBehaviors: NewBehaviors(),
		SpawnFactory:   factory,
		Seed:           7,
	})
	w.SetChunk(world.ChunkPos{X: 0, Z: 0}, world.NewColumn())
	pos := world.BlockPos{X: 4, Y: 5, Z: 4}
	w.SetBlockNotify(pos, MobSpawner, 0)

	sp := w.BlockEntityAt(pos).(*Spawner)
	sp.Delay = 0

	tb := &spawnerTickBehavior{}
	tb.Tick(sp, w, pos)

	if factory.spawned != 1 {
		t.Fatalf("expected exactly 1 spawn, got %d", factory.spawned)
	}
	if sp.Delay <= 0 {
		t.Fatalf("expected delay reset after spawn attempt, got %d", sp.Delay)
	}
}

func TestSpawnerTickSkipsWithoutFactory(t *testing.T) {
	w := newTestWorld(t)
	pos := world.BlockPos{X: 5, Y: 5, Z: 5}
	w.SetBlockNotify(pos, MobSpawner, 0)

	sp := w.BlockEntityAt(pos).(*Spawner)
	sp.Delay = 0

	tb := &spawnerTickBehavior{}
	tb.Tick(sp, w, pos)
}

func TestFurnaceTickAdvancesCookProgressAndEmitsEvent(t *testing.T) {
	queue := &world.EventQueue{}
	w := world.New(world.Config{
		Blocks:         BlockTable{},
		BlockBehaviors: NewBehaviors(),
		Events:         queue,
		Seed:           7,
	})
	w.SetChunk(world.ChunkPos{X: 0, Z: 0}, world.NewColumn())
	pos := world.BlockPos{X: 3, Y: 5, Z: 3}
	w.SetBlockNotify(pos, FurnaceLit, 0)

	f := w.BlockEntityAt(pos).(*Furnace)
	f.BurnTimeLeft = 5

	tb := &furnaceTickBehavior{owner: &furnaceBehavior{litID: FurnaceLit, unlitID: Furnace}, pos: pos}
	tb.Tick(f, w, pos)

	if f.CookProgress != 1 {
		t.Fatalf("expected cook progress 1, got %d", f.CookProgress)
	}

	found := false
	for _, e := range queue.Drain() {
		if e.Kind == world.EventBlockEntityProgressChange {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a progress-change event to be emitted")
	}
}

func TestPistonExtendsAndRetractsOnNeighborTrigger(t *testing.T) {
	queue := &world.EventQueue{}
	w := world.New(world.Config{
		Blocks:         BlockTable{},
		BlockBehaviors: NewBehaviors(),
		Events:         queue,
		Seed:           7,
	})
	w.SetChunk(world.ChunkPos{X: 0, Z: 0}, world.NewColumn())
	pos := world.BlockPos{X: 7, Y: 5, Z: 7}
	w.SetBlockNotify(pos, Piston, uint8(world.DirectionPosX))

	p := w.BlockEntityAt(pos).(*Piston)
	if p.Face != world.DirectionPosX {
		t.Fatalf("expected face derived from placement metadata, got %v", p.Face)
	}

	pb := pistonBehavior{}
	pb.NotifyNeighbor(w, pos, world.BlockPos{X: 6, Y: 5, Z: 7})
	if p.Stage != PistonExtending {
		t.Fatalf("expected extending after trigger, got %v", p.Stage)
	}

	tb := &pistonTickBehavior{}
	for i := 0; i < pistonMoveTicks; i++ {
		tb.Tick(p, w, pos)
	}
	if p.Stage != PistonExtended {
		t.Fatalf("expected extended after move completes, got %v", p.Stage)
	}
	headID, _ := w.GetBlock(world.BlockPos{X: 8, Y: 5, Z: 7})
	if headID != PistonHead {
		t.Fatalf("expected piston head placed one block ahead, got id %d", headID)
	}

	pb.NotifyNeighbor(w, pos, world.BlockPos{X: 6, Y: 5, Z: 7})
	if p.Stage != PistonRetracting {
		t.Fatalf("expected retracting after second trigger, got %v", p.Stage)
	}
	for i := 0; i < pistonMoveTicks; i++ {
		tb.Tick(p, w, pos)
	}
	if p.Stage != PistonIdle {
		t.Fatalf("expected idle after retract completes, got %v", p.Stage)
	}
	headID, _ = w.GetBlock(world.BlockPos{X: 8, Y: 5, Z: 7})
	if headID != 0 {
		t.Fatalf("expected piston head removed after retract, got id %d", headID)
	}

	events := queue.Drain()
	moveEvents := 0
	for _, e := range events {
		if e.Kind == world.EventPistonMove {
			moveEvents++
		}
	}
	if moveEvents != 2 {
		t.Fatalf("expected 2 piston-move events (extend + retract), got %d", moveEvents)
	}
}

func TestNoteBlockNotifyNeighborEmitsPlayEventWithMetadata(t *testing.T) {
	queue := &world.EventQueue{}
	w := world.New(world.Config{Blocks: BlockTable{}, BlockBehaviors: NewBehaviors(), Events: queue, Seed: 1})
	w.SetChunk(world.ChunkPos{X: 0, Z: 0}, world.NewColumn())
	pos := world.BlockPos{X: 9, Y: 5, Z: 9}
	w.SetBlockRaw(pos, NoteBlock, 12)

	nb := noteBlockBehavior{}
	nb.NotifyNeighbor(w, pos, world.BlockPos{X: 9, Y: 5, Z: 10})

	found := false
	for _, e := range queue.Drain() {
		if e.Kind == world.EventNoteBlockPlay && e.Pos == pos && e.BlockMeta == 12 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a note-block-play event carrying metadata 12")
	}
}

func TestRedstoneTorchSchedulesTickOnNeighborChange(t *testing.T) {
	w := newTestWorld(t)
	pos := world.BlockPos{X: 6, Y: 5, Z: 6}
	w.SetBlockRaw(pos, RedstoneTorch, 0)

	rt := redstoneTorchBehavior{}
	rt.NotifyNeighbor(w, pos, world.BlockPos{X: 6, Y: 5, Z: 7})

	if w.ScheduledTickCount() != 1 {
		t.Fatalf("expected 1 scheduled tick, got %d", w.ScheduledTickCount())
	}
}
