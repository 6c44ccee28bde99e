package world

import "testing"

func TestScheduleBlockTickDedupesSamePositionAndID(t *testing.T) {
	w := newTestWorld()
	pos := BlockPos{X: 0, Y: 0, Z: 0}

	w.ScheduleBlockTick(pos, 1, 4)
	w.ScheduleBlockTick(pos, 1, 10)

	if got := w.ScheduledTickCount(); got != 1 {
		t.Fatalf("expected duplicate (pos, id) scheduling to be a no-op, got %d entries", got)
	}
}

func TestScheduleBlockTickAllowsDifferentIDAtSamePosition(t *testing.T) {
	w := newTestWorld()
	pos := BlockPos{X: 0, Y: 0, Z: 0}

	w.ScheduleBlockTick(pos, 1, 4)
	w.ScheduleBlockTick(pos, 2, 4)

	if got := w.ScheduledTickCount(); got != 2 {
		t.Fatalf("expected 2 distinct (pos, id) entries, got %d", got)
	}
}

func TestDrainScheduledTicksFiresInTimeThenSeqOrder(t *testing.T) {
	w := newTestWorld()
	w.SetChunk(ChunkPos{}, NewColumn())
	w.SetBlockRaw(BlockPos{X: 0, Y: 0, Z: 0}, 1, 0)
	w.SetBlockRaw(BlockPos{X: 1, Y: 0, Z: 0}, 1, 0)
	w.SetBlockRaw(BlockPos{X: 2, Y: 0, Z: 0}, 1, 0)

	w.ScheduleBlockTick(BlockPos{X: 1, Y: 0, Z: 0}, 1, 2)
	w.ScheduleBlockTick(BlockPos{X: 0, Y: 0, Z: 0}, 1, 1)
	w.ScheduleBlockTick(BlockPos{X: 2, Y: 0, Z: 0}, 1, 1)

	var fired []BlockPos
	w.time = 10 // fast-forward so every entry is due
	w.drainScheduledTicks(func(pos BlockPos, id uint8) {
		fired = append(fired, pos)
	})

	if len(fired) != 3 {
		t.Fatalf("expected all 3 due entries to fire, got %d", len(fired))
	}
	// Entries at time=1 (x=0 and x=2, scheduled in that order) must fire
	// before the time=2 entry (x=1), and among equal times, insertion order
	// (sequence) must be preserved.
	if fired[0] != (BlockPos{X: 0, Y: 0, Z: 0}) || fired[1] != (BlockPos{X: 2, Y: 0, Z: 0}) {
		t.Fatalf("expected (x=0, x=2) to fire first in scheduling order, got %v", fired[:2])
	}
	if fired[2] != (BlockPos{X: 1, Y: 0, Z: 0}) {
		t.Fatalf("expected the later-firing x=1 entry last, got %v", fired[2])
	}
}

func TestDrainScheduledTicksSkipsEntryIfBlockChanged(t *testing.T) {
	w := newTestWorld()
	w.SetChunk(ChunkPos{}, NewColumn())
	pos := BlockPos{X: 0, Y: 0, Z: 0}
	w.SetBlockRaw(pos, 1, 0)
	w.ScheduleBlockTick(pos, 1, 1)

	w.SetBlockRaw(pos, 2, 0) // block changed before the tick fires

	w.time = 5
	var fired bool
	w.drainScheduledTicks(func(BlockPos, uint8) { fired = true })

	if fired {
		t.Fatalf("expected the stale scheduled tick to be skipped once the block no longer matches")
	}
}
