package world

// BlockEntity is the minimal contract the core needs from any block-entity
// kind (spec.md §3): chest, furnace, dispenser, spawner, note block,
// piston-moving, sign, jukebox. Concrete kinds live in server/block as
// values satisfying this interface plus whatever kind-specific methods
// their BlockEntityBehavior needs.
type BlockEntity interface {
	// Kind reports the closed-set block-entity kind discriminator.
	Kind() BlockEntityKind
}

// BlockEntityKind is the closed set named in spec.md §3.
type BlockEntityKind uint8

const (
	BlockEntityChest BlockEntityKind = iota
	BlockEntityFurnace
	BlockEntityDispenser
	BlockEntitySpawner
	BlockEntityNoteBlock
	BlockEntityPiston
	BlockEntitySign
	BlockEntityJukebox
)

type blockEntitySlot struct {
	pos      BlockPos
	be       BlockEntity
	behavior BlockEntityBehavior
	chunk    ChunkPos
	loaded   bool
	taken    bool
}

// blockEntityRegistry is analogous to entityRegistry but keyed by block
// position (spec.md §4.5). Grounded on the same swap-remove discipline as
// the entity registry, since E2's invariant ("registered in exactly one
// chunk's set") applies to block entities too.
type blockEntityRegistry struct {
	slots *tickVec[blockEntitySlot]
	byPos *blockPosMap
}

func newBlockEntityRegistry() *blockEntityRegistry {
	return &blockEntityRegistry{
		slots: newTickVec[blockEntitySlot](),
		byPos: newBlockPosMap(),
	}
}

// SetBlockEntity installs a block entity at pos. If the position is already
// occupied, the previous occupant is replaced in place: its TickVec slot is
// invalidated so an in-flight tick on that slot is not resumed, and the
// registry emits BlockEntityRemove then BlockEntitySet (spec.md §4.5, §7).
func (w *World) SetBlockEntity(pos BlockPos, be BlockEntity, behavior BlockEntityBehavior) {
	reg := w.blockEntities
	cp := pos.ChunkPos()
	if idx, ok := reg.byPos.get(pos); ok {
		reg.slots.invalidate(idx)
		w.events.push(Event{Kind: EventBlockEntityRemove, Pos: pos})
		cc := w.chunkComponentFor(cp)
		cc.blockEntities.delete(pos)
		slot := blockEntitySlot{pos: pos, be: be, behavior: behavior, chunk: cp, loaded: cc.loaded()}
		reg.slots.set(idx, slot)
		cc.blockEntities.set(pos, idx)
		w.events.push(Event{Kind: EventBlockEntitySet, Pos: pos})
		w.dirty(cp)
		return
	}

	cc := w.chunkComponentFor(cp)
	idx := reg.slots.push(blockEntitySlot{pos: pos, be: be, behavior: behavior, chunk: cp, loaded: cc.loaded()})
	reg.byPos.set(pos, idx)
	cc.blockEntities.set(pos, idx)
	w.events.push(Event{Kind: EventBlockEntitySet, Pos: pos})
	w.dirty(cp)
}

// RemoveBlockEntity removes the block entity at pos, if any, with the same
// swap-remove fix-up discipline as RemoveEntity.
func (w *World) RemoveBlockEntity(pos BlockPos) {
	reg := w.blockEntities
	idx, ok := reg.byPos.get(pos)
	if !ok {
		return
	}
	removed, move := reg.slots.remove(idx)
	reg.byPos.delete(pos)
	if move != nil {
		reg.byPos.set(move.value.pos, move.movedTo)
	}

	cc := w.chunkComponentFor(removed.chunk)
	cc.blockEntities.delete(pos)

	w.events.push(Event{Kind: EventBlockEntityRemove, Pos: pos})
	w.dirty(removed.chunk)
}

// BlockEntityAt returns the block entity at pos, or nil if absent or
// currently being ticked.
func (w *World) BlockEntityAt(pos BlockPos) BlockEntity {
	idx, ok := w.blockEntities.byPos.get(pos)
	if !ok {
		return nil
	}
	slot := w.blockEntities.slots.at(idx)
	if slot.taken {
		return nil
	}
	return slot.be
}
