package world

import (
	"sort"

	"golang.org/x/exp/maps"
)

// EntitiesInChunk returns the ids of every entity currently registered
// against pos, in insertion order, excluding any entity currently being
// ticked (spec.md §4.11). Grounded on the teacher's World.entitiesWithin /
// allEntities range-over-func iterators (world.go), adapted to return a
// materialized slice since the core has no live-viewer streaming consumer.
func (w *World) EntitiesInChunk(pos ChunkPos) []uint32 {
	cc, ok := w.chunks.get(pos)
	if !ok {
		return nil
	}
	out := make([]uint32, 0, len(cc.entityOrder))
	for _, id := range cc.entityOrder {
		idxVal, ok := w.entities.ids.Get(int64(id))
		if !ok {
			continue
		}
		if w.entities.slots.at(int(idxVal)).taken {
			continue
		}
		out = append(out, id)
	}
	return out
}

// EntitiesColliding returns the ids of every entity (excluding excludeID,
// typically the entity currently being ticked) whose bounding box intersects
// box, searching only the chunks box overlaps (spec.md §4.11).
func (w *World) EntitiesColliding(box BBox, excludeID uint32) []uint32 {
	minCP := BlockPos{X: int(floor(box.Min.X())), Z: int(floor(box.Min.Z()))}.ChunkPos()
	maxCP := BlockPos{X: int(floor(box.Max.X())), Z: int(floor(box.Max.Z()))}.ChunkPos()

	var out []uint32
	for cx := minCP.X; cx <= maxCP.X; cx++ {
		for cz := minCP.Z; cz <= maxCP.Z; cz++ {
			for _, id := range w.EntitiesInChunk(ChunkPos{X: cx, Z: cz}) {
				if id == excludeID {
					continue
				}
				ent := w.Entity(id)
				if ent == nil {
					continue
				}
				if ent.BoundingBox().Intersects(box) {
					out = append(out, id)
				}
			}
		}
	}
	return out
}

func floor(v float64) float64 {
	i := int64(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return float64(i)
}

// AllEntities returns every live, non-ticking entity id in storage order.
func (w *World) AllEntities() []uint32 {
	var out []uint32
	for _, idx := range w.entities.slots.indices() {
		slot := w.entities.slots.at(idx)
		if slot.taken {
			continue
		}
		out = append(out, slot.id)
	}
	return out
}

// LoadedChunkPositions returns every loaded chunk position in a
// deterministic (sorted) order, following the teacher's convention of
// sorting positions at the API boundary rather than depending on Go's
// randomized map iteration (spec.md §4.11's "deterministic enumeration"
// requirement). Uses golang.org/x/exp/maps to gather the key set before
// sorting.
func (w *World) LoadedChunkPositions() []ChunkPos {
	present := make(map[ChunkPos]struct{})
	w.chunks.each(func(p ChunkPos, cc *chunkComponent) {
		if cc.data != nil {
			present[p] = struct{}{}
		}
	})
	out := maps.Keys(present)
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Z < out[j].Z
	})
	return out
}

// BlocksInBox calls fn for every block position within box (inclusive min,
// exclusive max per BBox.ContainsBlock), in ascending Y, then Z, then X
// order, skipping unloaded chunks entirely (spec.md §4.11).
func (w *World) BlocksInBox(box BBox, fn func(pos BlockPos, id, meta uint8)) {
	minX, maxX := int(floor(box.Min.X())), int(floor(box.Max.X()))
	minY, maxY := int(floor(box.Min.Y())), int(floor(box.Max.Y()))
	minZ, maxZ := int(floor(box.Min.Z())), int(floor(box.Max.Z()))

	for y := minY; y < maxY; y++ {
		if y < 0 || y >= WorldHeight {
			continue
		}
		for z := minZ; z < maxZ; z++ {
			for x := minX; x < maxX; x++ {
				pos := BlockPos{X: x, Y: y, Z: z}
				col := w.GetChunk(pos.ChunkPos())
				if col == nil {
					continue
				}
				id, meta := col.block(localX(pos), y, localZ(pos))
				fn(pos, id, meta)
			}
		}
	}
}
