package world

import "testing"

func TestTickPanicsOnReentrantCall(t *testing.T) {
	w := newTestWorld()
	behavior := &fakeEntityBehavior{}
	behavior.onTick = func(_ Entity, w *World, _ uint32) {
		w.Tick()
	}
	w.SpawnEntity(newFakeEntity(), behavior)
	w.SetChunk(ChunkPos{}, NewColumn())

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected a reentrant Tick() call to panic")
		}
	}()
	w.Tick()
}

func TestTickAdvancesTimeByExactlyOne(t *testing.T) {
	w := newTestWorld()
	before := w.Time()
	w.Tick()
	if w.Time() != before+1 {
		t.Fatalf("expected time to advance by 1, got %d -> %d", before, w.Time())
	}
}

func TestTickFiresADueScheduledBlockTick(t *testing.T) {
	w := newTestWorld()
	w.SetChunk(ChunkPos{}, NewColumn())
	pos := BlockPos{X: 0, Y: 0, Z: 0}
	w.SetBlockRaw(pos, 1, 0)
	behavior := &fakeBlockBehavior{}
	w.blockBehaviors = fakeBlockBehaviors{behaviors: map[uint8]BlockBehavior{1: behavior}}

	w.ScheduleBlockTick(pos, 1, 1)
	w.Tick() // time becomes 1, entry due at time 1 fires this tick

	if behavior.ticked == 0 {
		t.Fatalf("expected the scheduled block tick to have fired via TickAt")
	}
}

func TestNaturalSpawnRespectsZeroCategoryCap(t *testing.T) {
	w := New(Config{
		Blocks: fakeBlocks{},
		Biomes: fakeBiomes{b: Biome{SpawnTables: map[EntityCategory][]SpawnEntry{
			CategoryMob: {{Kind: KindLiving, Weight: 1}},
		}}},
		SpawnCaps:    map[EntityCategory]int{CategoryMob: 0},
		SpawnFactory: &countingSpawnFactory{},
		Seed:         1,
	})
	w.SetChunk(ChunkPos{}, NewColumn())
	col := w.GetChunk(ChunkPos{})
	col.setHeightAt(0, 0, 64)
	ent := newFakeEntity()
	id := w.SpawnEntity(ent, &fakeEntityBehavior{})
	w.SetPlayerEntity(id, true)

	w.tickNaturalSpawn()

	if w.EntityCount() != 1 {
		t.Fatalf("expected natural spawn to place nothing under a 0 cap, got %d entities", w.EntityCount())
	}
}

type countingSpawnFactory struct {
	spawned int
}

func (f *countingSpawnFactory) NewEntity(kind EntityKind) (Entity, EntityBehavior) {
	f.spawned++
	return newFakeEntity(), &fakeEntityBehavior{kind: kind, canSpawn: true}
}
