package world

// randomTicksPerColumn bounds how many random block-tick candidates are
// drawn per loaded chunk per world tick, following vanilla's three-per-
// 16x16x16-subchunk convention (spec.md §4.10 step 6; WorldHeight/16 == 8
// subchunks per column).
const randomTicksPerColumn = 3 * (WorldHeight / 16)

// lightningRollBound is the per-chunk-per-tick odds denominator for a
// thunderstorm lightning strike, matching vanilla's rng.nextInt(100000)==0
// roll (spec.md's closed module list has no lightning/weather-damage
// component of its own).
const lightningRollBound = 100000

// Tick advances the world by exactly one game tick, running the fixed-order
// pipeline named in spec.md §4.10: weather, natural spawn, sky light
// recompute, time increment, scheduled-tick drain, random block ticks and
// lightning, entity tick, block-entity tick, light settle. Grounded on the
// teacher's ticker.tick (server/world/tick.go, deleted) fixed-order pipeline,
// stripped of its Exec/Tx concurrency plumbing per the single-threaded
// Non-goal. Panics if called reentrantly (internal/guard).
func (w *World) Tick() {
	release := w.guard.Enter()
	defer release()

	w.tickWeather()
	w.tickNaturalSpawn()
	w.recomputeSkyLightSubtracted()
	w.time++

	w.drainScheduledTicks(w.tickScheduledBlock)
	w.tickRandomBlocksAndLightning()
	w.tickEntities()
	w.tickBlockEntities()
	w.tickLight(w.lightBudget)
}

// Time returns the current world time in ticks, incremented once per Tick.
func (w *World) Time() int64 {
	return w.time
}

// Weather returns the current world-wide weather state.
func (w *World) Weather() Weather {
	return w.weather
}

// SkyLightSubtracted returns the current global sky-light attenuation,
// recomputed once per tick (spec.md §4.8).
func (w *World) SkyLightSubtracted() uint8 {
	return w.skySubtracted
}

func (w *World) tickScheduledBlock(pos BlockPos, id uint8) {
	if w.blockBehaviors == nil {
		return
	}
	b := w.blockBehaviors.Behavior(id)
	if b == nil {
		return
	}
	_, meta := w.GetBlock(pos)
	b.TickAt(pos, id, meta, false, w)
}

// tickRandomBlocksAndLightning draws randomTicksPerColumn random positions
// per loaded chunk for a random block tick, and — during a thunderstorm —
// rolls a lightning strike per chunk (spec.md §4.10 step 6, §C).
func (w *World) tickRandomBlocksAndLightning() {
	thunder := w.weather == WeatherThunder
	w.chunks.each(func(cp ChunkPos, cc *chunkComponent) {
		if cc.data == nil {
			return
		}

		if w.blockBehaviors != nil {
			for i := 0; i < randomTicksPerColumn; i++ {
				lx := int(w.rng.NextIntBounded(ColumnWidth))
				lz := int(w.rng.NextIntBounded(ColumnDepth))
				y := int(w.rng.NextIntBounded(WorldHeight))
				id, meta := cc.data.block(lx, y, lz)
				if id == 0 {
					continue
				}
				if b := w.blockBehaviors.Behavior(id); b != nil {
					pos := BlockPos{X: cp.X*ColumnWidth + lx, Y: y, Z: cp.Z*ColumnDepth + lz}
					b.TickAt(pos, id, meta, true, w)
				}
			}
		}

		if thunder && w.rng.NextIntBounded(lightningRollBound) == 0 {
			lx := int(w.rng.NextIntBounded(ColumnWidth))
			lz := int(w.rng.NextIntBounded(ColumnDepth))
			h := cc.data.heightAt(lx, lz)
			pos := BlockPos{X: cp.X*ColumnWidth + lx, Y: h, Z: cp.Z*ColumnDepth + lz}
			w.events.push(Event{Kind: EventDebugParticle, Pos: pos, Sound: "lightning"})
		}
	})
}

// tickEntities runs the take-out-tick-put-back loop over every loaded
// entity (spec.md §4.4, §4.10 step 7): the slot is marked taken before
// invoking its behaviour, so a lookup of the entity by id from inside its
// own Tick call observes it as absent, and restored (with a chunk-membership
// fixup if it moved) afterward — unless the entity removed itself, in which
// case there is nothing left to restore.
func (w *World) tickEntities() {
	reg := w.entities
	reg.slots.reset()
	for reg.slots.valid() {
		idx := reg.slots.currentIndex()
		slot := reg.slots.at(idx)
		if !slot.loaded {
			reg.slots.advance()
			continue
		}

		id := slot.id
		slot.taken = true
		reg.slots.set(idx, slot)

		slot.behavior.Tick(slot.ent, w, id)

		if curIdxVal, ok := reg.ids.Get(int64(id)); ok {
			curIdx := int(curIdxVal)
			cur := reg.slots.at(curIdx)
			if cur.taken {
				newChunk := chunkPosOf(cur.ent.Position())
				if newChunk != cur.chunk {
					oldChunk := cur.chunk
					oldCC := w.chunkComponentFor(oldChunk)
					oldCC.removeEntity(id)
					newCC := w.chunkComponentFor(newChunk)
					newCC.addEntity(id)
					cur.chunk = newChunk
					cur.loaded = newCC.loaded()
					w.events.push(Event{Kind: EventEntityPosition, EntityID: id, Position: cur.ent.Position()})
					w.dirty(oldChunk)
					w.dirty(newChunk)
				}
				cur.taken = false
				reg.slots.set(curIdx, cur)
			}
		}
		reg.slots.advance()
	}
}

// tickBlockEntities runs the same take-out-tick-put-back discipline over
// every loaded block entity (spec.md §4.5, §4.10 step 8). Block entities
// never migrate chunks, so the only fix-up needed is the taken flag itself.
func (w *World) tickBlockEntities() {
	reg := w.blockEntities
	reg.slots.reset()
	for reg.slots.valid() {
		idx := reg.slots.currentIndex()
		slot := reg.slots.at(idx)
		if !slot.loaded {
			reg.slots.advance()
			continue
		}

		pos := slot.pos
		slot.taken = true
		reg.slots.set(idx, slot)

		slot.behavior.Tick(slot.be, w, pos)

		if curIdx, ok := reg.byPos.get(pos); ok {
			cur := reg.slots.at(curIdx)
			if cur.taken {
				cur.taken = false
				reg.slots.set(curIdx, cur)
			}
		}
		reg.slots.advance()
	}
}
