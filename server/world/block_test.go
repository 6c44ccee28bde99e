package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestGetBlockOnUnloadedChunkIsAir(t *testing.T) {
	w := newTestWorld()
	id, meta := w.GetBlock(BlockPos{X: 1000, Y: 10, Z: 1000})
	if id != 0 || meta != 0 {
		t.Fatalf("expected air on an unloaded chunk, got id=%d meta=%d", id, meta)
	}
}

func TestGetBlockOutOfYRangeIsAir(t *testing.T) {
	w := newTestWorld()
	w.SetChunk(ChunkPos{}, NewColumn())
	id, _ := w.GetBlock(BlockPos{X: 0, Y: 500, Z: 0})
	if id != 0 {
		t.Fatalf("expected air above world height, got id=%d", id)
	}
}

func TestSetBlockUpdatesHeightMapOnOpaquePlacement(t *testing.T) {
	w := newTestWorld()
	w.SetChunk(ChunkPos{}, NewColumn())
	pos := BlockPos{X: 2, Y: 10, Z: 2}

	w.SetBlock(pos, 1, 0)

	if got := w.GetHeight(pos); got != 11 {
		t.Fatalf("expected height 11 after placing an opaque block at y=10, got %d", got)
	}
}

func TestSetBlockNotifyCallsOwnAndNeighborBehaviors(t *testing.T) {
	w := newTestWorld()
	w.SetChunk(ChunkPos{}, NewColumn())
	pos := BlockPos{X: 5, Y: 5, Z: 5}

	placed := &fakeBlockBehavior{}
	neighbor := &fakeBlockBehavior{}
	w.blockBehaviors = fakeBlockBehaviors{behaviors: map[uint8]BlockBehavior{1: placed, 2: neighbor}}
	w.SetBlockRaw(pos.Side(DirectionPosX), 2, 0)

	w.SetBlockNotify(pos, 1, 0)

	if placed.notified != 1 {
		t.Fatalf("expected the placed block's own NotifyChange to fire once, got %d", placed.notified)
	}
	if neighbor.neighbored != 1 {
		t.Fatalf("expected the neighboring block's NotifyNeighbor to fire once, got %d", neighbor.neighbored)
	}
}

func TestBreakBlockSetsAirAndNotifiesThePreviousBehavior(t *testing.T) {
	w := newTestWorld()
	w.SetChunk(ChunkPos{}, NewColumn())
	pos := BlockPos{X: 0, Y: 0, Z: 0}
	prevBehavior := &fakeBlockBehavior{}
	w.blockBehaviors = fakeBlockBehaviors{behaviors: map[uint8]BlockBehavior{1: prevBehavior}}
	w.SetBlockRaw(pos, 1, 0)

	prevID, _, ok := w.BreakBlock(pos)

	if !ok {
		t.Fatalf("expected BreakBlock on a loaded chunk to succeed")
	}
	if prevID != 1 {
		t.Fatalf("expected the previous id 1 to be reported, got %d", prevID)
	}
	id, _ := w.GetBlock(pos)
	if id != 0 {
		t.Fatalf("expected air after BreakBlock, got %d", id)
	}
	if prevBehavior.notified != 1 {
		t.Fatalf("expected the broken block's own behavior to be notified, got %d", prevBehavior.notified)
	}
}

func TestBreakTicksScalesInverselyWithToolSpeed(t *testing.T) {
	bare := BreakTicks(1.5, ToolNone)
	diamond := BreakTicks(1.5, ToolDiamond)
	if diamond >= bare {
		t.Fatalf("expected a diamond tool to break faster than bare hands, got diamond=%d bare=%d", diamond, bare)
	}
}

func TestBreakTicksUnbreakableForNegativeHardness(t *testing.T) {
	if got := BreakTicks(-1, ToolDiamond); got != -1 {
		t.Fatalf("expected -1 for an unbreakable (negative hardness) block, got %d", got)
	}
}

func TestBreakBlockWithToolEmitsSoundEvent(t *testing.T) {
	w := newTestWorld()
	w.SetChunk(ChunkPos{}, NewColumn())
	queue := &EventQueue{}
	w.events = queue
	pos := BlockPos{X: 0, Y: 0, Z: 0}
	w.SetBlockRaw(pos, 1, 0)

	_, _, ticks, ok := w.BreakBlockWithTool(pos, ToolIron)
	if !ok {
		t.Fatalf("expected BreakBlockWithTool to succeed on a loaded chunk")
	}
	if ticks < 0 {
		t.Fatalf("expected a finite break time for a breakable block, got %d", ticks)
	}

	found := false
	for _, e := range queue.Drain() {
		if e.Kind == EventBlockSound {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Block::Sound event after breaking")
	}
}

func TestExplosionClearsWeakBlocksWithinRadiusOnly(t *testing.T) {
	w := newTestWorld()
	w.SetChunk(ChunkPos{}, NewColumn())
	near := BlockPos{X: 0, Y: 10, Z: 0}
	far := BlockPos{X: 12, Y: 10, Z: 0}
	w.SetBlockRaw(near, 3, 0) // weak block: ExplosionResist 0
	w.SetBlockRaw(far, 1, 0)  // sturdy block: ExplosionResist 30

	w.Explosion(mgl64.Vec3{0, 10, 0}, 4)

	if id, _ := w.GetBlock(near); id != 0 {
		t.Fatalf("expected the nearby block to be cleared by the explosion, got id %d", id)
	}
	if id, _ := w.GetBlock(far); id != 1 {
		t.Fatalf("expected the distant block to survive the explosion, got id %d", id)
	}
}

func TestExplosionAppliesVelocityAndDamageToNearbyEntitiesOnly(t *testing.T) {
	queue := &EventQueue{}
	w := New(Config{Blocks: fakeBlocks{}, Biomes: fakeBiomes{}, Events: queue, Seed: 1})
	w.SetChunk(ChunkPos{}, NewColumn())

	near := newFakeEntity()
	near.pos = mgl64.Vec3{2, 10, 0}
	nearID := w.SpawnEntity(near, &fakeEntityBehavior{})

	far := newFakeEntity()
	far.pos = mgl64.Vec3{50, 10, 0}
	farID := w.SpawnEntity(far, &fakeEntityBehavior{})
	queue.Drain()

	w.Explosion(mgl64.Vec3{0, 10, 0}, 4)

	if near.Velocity().X() <= 0 {
		t.Fatalf("expected the nearby entity pushed away from the explosion center, got velocity %v", near.Velocity())
	}
	if far.Velocity() != (mgl64.Vec3{}) {
		t.Fatalf("expected the distant entity untouched, got velocity %v", far.Velocity())
	}

	var sawVelocity, sawDamage, sawFarEvent bool
	for _, ev := range queue.Drain() {
		switch ev.Kind {
		case EventEntityVelocity:
			if ev.EntityID == nearID {
				sawVelocity = true
			}
			if ev.EntityID == farID {
				sawFarEvent = true
			}
		case EventEntityDamage:
			if ev.EntityID == nearID && ev.Damage > 0 {
				sawDamage = true
			}
		}
	}
	if !sawVelocity {
		t.Fatalf("expected an EventEntityVelocity for the nearby entity")
	}
	if !sawDamage {
		t.Fatalf("expected an EventEntityDamage for the nearby entity")
	}
	if sawFarEvent {
		t.Fatalf("expected no impulse events for the distant entity")
	}
}
