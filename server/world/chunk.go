package world

// chunkComponent is the per-(cx,cz) bookkeeping unit: an optional Column of
// voxel data plus the entity ids and block-entity indices currently
// registered against this chunk. Grounded on the teacher's World.chunks map
// plus its per-chunk entity/column bookkeeping comments (server/world/world.go);
// spec.md §4.2 names this split explicitly ("a mapping from (cx, cz) to a
// chunk component").
type chunkComponent struct {
	data *Column // nil means unloaded: entities persist but are not ticked

	// entityOrder preserves insertion order for deterministic iteration
	// (spec.md §4.11 "entities in chunk").
	entityOrder []uint32
	entitySet   map[uint32]struct{}

	blockEntities *blockPosMap // position -> index into World.blockEntities
}

func newChunkComponent() *chunkComponent {
	return &chunkComponent{
		entitySet:     make(map[uint32]struct{}),
		blockEntities: newBlockPosMap(),
	}
}

func (cc *chunkComponent) loaded() bool {
	return cc.data != nil
}

func (cc *chunkComponent) addEntity(id uint32) {
	if _, ok := cc.entitySet[id]; ok {
		return
	}
	cc.entitySet[id] = struct{}{}
	cc.entityOrder = append(cc.entityOrder, id)
}

func (cc *chunkComponent) removeEntity(id uint32) {
	if _, ok := cc.entitySet[id]; !ok {
		return
	}
	delete(cc.entitySet, id)
	for i, v := range cc.entityOrder {
		if v == id {
			cc.entityOrder = append(cc.entityOrder[:i], cc.entityOrder[i+1:]...)
			break
		}
	}
}

// SetChunk installs or replaces the voxel data at (cx, cz). If the chunk was
// previously unloaded, every entity and block entity already registered
// against it transitions to loaded (spec.md §4.2).
func (w *World) SetChunk(pos ChunkPos, col *Column) {
	cc, ok := w.chunks.get(pos)
	if !ok {
		cc = newChunkComponent()
		w.chunks.set(pos, cc)
	}
	wasLoaded := cc.data != nil
	cc.data = col
	if !wasLoaded {
		w.setChunkMembersLoaded(cc, true)
	}
	w.events.push(Event{Kind: EventChunkSet, ChunkPos: pos})
}

// RemoveChunk clears the voxel data at (cx, cz), leaving registered entities
// and block entities in place but unloaded (skipped by tick). Returns the
// removed Column, or nil if the chunk had no data.
func (w *World) RemoveChunk(pos ChunkPos) *Column {
	cc, ok := w.chunks.get(pos)
	if !ok || cc.data == nil {
		return nil
	}
	col := cc.data
	cc.data = nil
	w.setChunkMembersLoaded(cc, false)
	w.events.push(Event{Kind: EventChunkRemove, ChunkPos: pos})
	return col
}

// setChunkMembersLoaded flips the loaded flag on every entity and block
// entity currently registered against cc, following a load/unload
// transition (spec.md §4.2).
func (w *World) setChunkMembersLoaded(cc *chunkComponent, loaded bool) {
	for _, id := range cc.entityOrder {
		idxVal, ok := w.entities.ids.Get(int64(id))
		if !ok {
			continue
		}
		slot := w.entities.slots.at(int(idxVal))
		slot.loaded = loaded
		w.entities.slots.set(int(idxVal), slot)
	}
	cc.blockEntities.each(func(_ BlockPos, idx int) {
		beSlot := w.blockEntities.slots.at(idx)
		beSlot.loaded = loaded
		w.blockEntities.slots.set(idx, beSlot)
	})
}

// GetChunk returns the Column at (cx, cz), or nil if unloaded.
func (w *World) GetChunk(pos ChunkPos) *Column {
	cc, ok := w.chunks.get(pos)
	if !ok {
		return nil
	}
	return cc.data
}

// ChunkLoaded reports whether the chunk at (cx, cz) has data present.
func (w *World) ChunkLoaded(pos ChunkPos) bool {
	cc, ok := w.chunks.get(pos)
	return ok && cc.data != nil
}

// getChunkMut returns the Column at (cx, cz) ready for exclusive mutation,
// performing copy-on-write if the column is shared with an outstanding
// snapshot, or nil if unloaded.
func (w *World) getChunkMut(pos ChunkPos) *Column {
	cc, ok := w.chunks.get(pos)
	if !ok || cc.data == nil {
		return nil
	}
	cc.data = cc.data.cloneIfShared()
	return cc.data
}

// chunkComponentFor returns the chunk component at pos, creating an empty
// (unloaded) one if absent. Used when registering entities/block entities
// against a chunk that has no voxel data yet.
func (w *World) chunkComponentFor(pos ChunkPos) *chunkComponent {
	cc, ok := w.chunks.get(pos)
	if !ok {
		cc = newChunkComponent()
		w.chunks.set(pos, cc)
	}
	return cc
}

// LoadedChunkCount returns the number of chunks with voxel data present.
func (w *World) LoadedChunkCount() int {
	n := 0
	w.chunks.each(func(_ ChunkPos, cc *chunkComponent) {
		if cc.data != nil {
			n++
		}
	})
	return n
}

// dirty marks the chunk's column as having changed and emits ChunkDirty,
// following spec.md §3's event vocabulary (Block::Set/other writers always
// pair with a Chunk::Dirty event).
func (w *World) dirty(pos ChunkPos) {
	w.events.push(Event{Kind: EventChunkDirty, ChunkPos: pos})
}
