package world

import (
	"fmt"
	"sort"
)

// scheduledTick is a single (fire-time, sequence, position, expected block
// id) entry (spec.md §3, §4.6). Ordering is primarily by Time ascending,
// then Seq ascending (stable FIFO among equal times) — used for
// deterministic cascades such as redstone, per spec.md §9.
type scheduledTick struct {
	Time int64
	Seq  uint64
	Pos  BlockPos
	ID   uint8
}

// scheduledTickKey is the (position, expected block id) de-duplication key:
// spec.md §4.6 requires that scheduling a duplicate is a no-op. Its
// comparison-key shape is adapted from the teacher's now-deleted
// server/world/redstone/event.go EventKey/Key(), which coalesced duplicate
// cross-chunk events on the same (position, kind) pair before a concurrent
// dispatch — here reused, single-threaded, as the de-dup set key itself.
type scheduledTickKey struct {
	Pos BlockPos
	ID  uint8
}

// scheduledTickQueue is the time-ordered set plus its de-dup companion set
// (spec.md §3, §4.6). Grounded on mc173-server/src/world.rs's scheduled-tick
// queue.
type scheduledTickQueue struct {
	entries []scheduledTick // kept sorted by (Time, Seq)
	dedup   map[scheduledTickKey]struct{}
	nextSeq uint64
}

func newScheduledTickQueue() *scheduledTickQueue {
	return &scheduledTickQueue{dedup: make(map[scheduledTickKey]struct{})}
}

var errScheduledTickSeqOverflow = fmt.Errorf("world: scheduled tick sequence overflow")

// ScheduleBlockTick schedules a block tick at pos for the given expected
// block id, firing at now+delay. A duplicate (pos, id) pair already pending
// is a no-op (spec.md §4.6, §8).
func (w *World) ScheduleBlockTick(pos BlockPos, id uint8, delay int64) {
	q := w.scheduledTicks
	key := scheduledTickKey{Pos: pos, ID: id}
	if _, ok := q.dedup[key]; ok {
		return
	}
	if q.nextSeq == ^uint64(0) {
		w.log.Warn("scheduled tick sequence overflow")
		panic(errScheduledTickSeqOverflow)
	}
	seq := q.nextSeq
	q.nextSeq++

	entry := scheduledTick{Time: w.time + delay, Seq: seq, Pos: pos, ID: id}
	i := sort.Search(len(q.entries), func(i int) bool {
		e := q.entries[i]
		return e.Time > entry.Time || (e.Time == entry.Time && e.Seq > entry.Seq)
	})
	q.entries = append(q.entries, scheduledTick{})
	copy(q.entries[i+1:], q.entries[i:])
	q.entries[i] = entry
	q.dedup[key] = struct{}{}
}

// drainScheduledTicks pops every entry whose fire time has arrived (now >=
// Time) in (Time, Seq) order and, for each, invokes cb if the block at Pos
// still matches the expected id (spec.md §4.6). The ordered primary key
// guarantees early termination: the first not-yet-due entry stops the drain.
func (w *World) drainScheduledTicks(cb func(pos BlockPos, id uint8)) {
	q := w.scheduledTicks
	i := 0
	for ; i < len(q.entries); i++ {
		if q.entries[i].Time > w.time {
			break
		}
		e := q.entries[i]
		delete(q.dedup, scheduledTickKey{Pos: e.Pos, ID: e.ID})
		if id, _ := w.GetBlock(e.Pos); id == e.ID {
			cb(e.Pos, e.ID)
		}
	}
	q.entries = q.entries[i:]
}

// ScheduledTickCount returns the number of pending scheduled ticks, used by
// tests asserting the dedup-set/ordered-set cardinality invariant (spec.md §8).
func (w *World) ScheduledTickCount() int {
	return len(w.scheduledTicks.entries)
}
