package world

import "github.com/google/uuid"

// ChunkSnapshot is an immutable, point-in-time view of a chunk's voxel data,
// captured by reference via the Column copy-on-write scheme rather than by
// deep copy (spec.md §4.12, §3 "copy-on-write invariant"). Tagged with a
// UUID so a host holding many concurrent snapshots (e.g. for anti-cheat
// replay or async chunk serialization) can identify which one it is done
// with, following the teacher's practice of tagging long-lived handles with
// google/uuid (an enrichment: the teacher itself tags player sessions, not
// chunk data, with uuid.UUID — generalized here to the core's snapshot
// concept).
//
// Entities and BlockEntities hold the handles registered against the chunk
// at capture time (spec.md §4.12's "deep-copied lists"): the core has no
// generic way to clone a host-owned Entity/BlockEntity's internal fields
// across the interface boundary, so the "deep copy" is of the registration
// list itself — every id/position captured here is frozen regardless of
// what happens to the live chunk afterward, which is exactly what the §8
// round-trip property (ids and block-entity positions survive a
// Snapshot/InsertSnapshot cycle) requires.
type ChunkSnapshot struct {
	ID            uuid.UUID
	Pos           ChunkPos
	data          *Column
	Entities      []EntitySnapshot
	BlockEntities []BlockEntitySnapshot
}

// EntitySnapshot is one entity captured by a ChunkSnapshot.
type EntitySnapshot struct {
	ID       uint32
	Ent      Entity
	Behavior EntityBehavior
}

// BlockEntitySnapshot is one block entity captured by a ChunkSnapshot.
type BlockEntitySnapshot struct {
	Pos      BlockPos
	BE       BlockEntity
	Behavior BlockEntityBehavior
}

// Block returns the block id and metadata at the local (x,y,z) offset
// within the snapshot, frozen at capture time regardless of subsequent
// writes to the live world.
func (s *ChunkSnapshot) Block(x, y, z int) (id, meta uint8) {
	return s.data.block(x, y, z)
}

// Light returns the stored light level at the local offset, frozen at
// capture time.
func (s *ChunkSnapshot) Light(x, y, z int, kind LightKind) uint8 {
	return s.data.light(x, y, z, kind)
}

// HeightAt returns the stored height-map entry at the local (x,z) offset,
// frozen at capture time.
func (s *ChunkSnapshot) HeightAt(x, z int) int {
	return s.data.heightAt(x, z)
}

// BiomeAt returns the stored biome id at the local (x,z) offset, frozen at
// capture time.
func (s *ChunkSnapshot) BiomeAt(x, z int) uint8 {
	return s.data.biomeAt(x, z)
}

// Snapshot captures the chunk at pos, sharing its underlying columnData by
// reference and bumping its refcount (a later write to the live chunk will
// copy-on-write rather than mutate data the snapshot still observes), plus
// the id/position-tagged lists of every entity and block entity currently
// registered against the chunk. An entity or block entity presently out
// being ticked (its slot taken) is silently skipped, per spec.md §4.12.
// Returns false if the chunk is unloaded.
func (w *World) Snapshot(pos ChunkPos) (*ChunkSnapshot, bool) {
	col := w.GetChunk(pos)
	if col == nil {
		return nil, false
	}
	cc, ok := w.chunks.get(pos)
	if !ok {
		return nil, false
	}

	randomID, err := uuid.NewRandom()
	if err != nil {
		randomID = uuid.Nil
	}
	snap := &ChunkSnapshot{ID: randomID, Pos: pos, data: col.share()}

	for _, eid := range cc.entityOrder {
		idxVal, ok := w.entities.ids.Get(int64(eid))
		if !ok {
			continue
		}
		slot := w.entities.slots.at(int(idxVal))
		if slot.taken {
			continue
		}
		snap.Entities = append(snap.Entities, EntitySnapshot{ID: eid, Ent: slot.ent, Behavior: slot.behavior})
	}
	cc.blockEntities.each(func(bp BlockPos, idx int) {
		beSlot := w.blockEntities.slots.at(idx)
		if beSlot.taken {
			return
		}
		snap.BlockEntities = append(snap.BlockEntities, BlockEntitySnapshot{Pos: bp, BE: beSlot.be, Behavior: beSlot.behavior})
	})
	return snap, true
}

// InsertSnapshot installs snap's chunk data and respawns its captured
// entities and block entities (spec.md §4.2, §4.12). Entities are
// reregistered under their original ids rather than minting new ones, and
// block entities are reinstalled at their original positions, satisfying
// the §8 round-trip testable property.
func (w *World) InsertSnapshot(snap *ChunkSnapshot) {
	w.SetChunk(snap.Pos, snap.data)
	for _, e := range snap.Entities {
		w.reinsertEntity(e.ID, e.Ent, e.Behavior)
	}
	for _, be := range snap.BlockEntities {
		w.SetBlockEntity(be.Pos, be.BE, be.Behavior)
	}
}

// RemoveSnapshot removes the chunk at pos entirely, deregistering every
// entity and block entity against it, and returns what was captured just
// before removal (spec.md §4.12). Unlike RemoveChunk, which only unloads
// the voxel data and leaves registrations in place for a later reload,
// RemoveSnapshot tears the whole chunk component down — the counterpart a
// host uses to move a chunk out of memory (serialize the snapshot, drop the
// live state) rather than merely unload it.
func (w *World) RemoveSnapshot(pos ChunkPos) (*ChunkSnapshot, bool) {
	snap, ok := w.Snapshot(pos)
	if !ok {
		return nil, false
	}
	for _, e := range snap.Entities {
		w.RemoveEntity(e.ID)
	}
	for _, be := range snap.BlockEntities {
		w.RemoveBlockEntity(be.Pos)
	}
	w.RemoveChunk(pos)
	w.chunks.delete(pos)
	return snap, true
}

// Release drops the snapshot's reference to the shared columnData. Snapshots
// are otherwise garbage-collected normally; Release only matters for
// refcount-accurate cloneIfShared accounting under heavy snapshot churn.
func (s *ChunkSnapshot) Release() {
	if s.data != nil {
		s.data.data.refs--
		s.data = nil
	}
}
