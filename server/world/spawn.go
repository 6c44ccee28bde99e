package world

import "github.com/go-gl/mathgl/mgl64"

// NaturalSpawnFactory lets the host construct a concrete Entity/EntityBehavior
// pair for a chosen EntityKind; the core only decides where and when to
// spawn, never how a given kind is represented (spec.md §4.9, §6).
type NaturalSpawnFactory interface {
	NewEntity(kind EntityKind) (Entity, EntityBehavior)
}

// spawnRadiusChunks bounds the player-proximity working set natural spawn
// draws candidate chunks from (spec.md §4.9 step 2, Chebyshev distance).
const spawnRadiusChunks = 8

// spawnCapScaleDivisor is the 256 in spec.md §4.9 step 1's
// "cap × loaded_chunk_count / 256" population ceiling.
const spawnCapScaleDivisor = 256

const (
	maxSpawnPacks       = 3
	maxPackSize         = 4
	packSpreadBlocks    = 3
	minPlayerRangeClose = 24
	maxPlayerRangeFar   = 128
)

// naturalSpawnCategories lists the categories natural spawn considers, in a
// fixed order so a capped category never starves a later one nondeterministically.
var naturalSpawnCategories = [4]EntityCategory{CategoryAnimal, CategoryWaterAnimal, CategoryMob, CategoryAmbient}

// tickNaturalSpawn implements spec.md §4.9 in full: for each category with a
// nonzero cap, skip if the population already exceeds cap scaled by loaded
// chunk count, else attempt up to 3 packs of up to 4 entities drawn from the
// player-proximity working set. A no-op if the host never set a
// NaturalSpawnFactory.
func (w *World) tickNaturalSpawn() {
	if w.spawnFactory == nil {
		return
	}

	working := w.spawnWorkingSet()
	if len(working) == 0 {
		return
	}

	loadedChunks := w.LoadedChunkCount()
	counts := w.categoryCounts()

	for _, cat := range naturalSpawnCategories {
		limit := w.spawnCaps[cat]
		if limit <= 0 {
			continue
		}
		if counts[cat] > limit*loadedChunks/spawnCapScaleDivisor {
			continue
		}
		counts[cat] += w.attemptNaturalSpawnPacks(cat, working, limit-counts[cat])
	}
}

func (w *World) spawnWorkingSet() []ChunkPos {
	seen := make(map[ChunkPos]struct{})
	var out []ChunkPos
	for _, id := range w.Players() {
		ent := w.Entity(id)
		if ent == nil {
			continue
		}
		center := chunkPosOf(ent.Position())
		for dx := -spawnRadiusChunks; dx <= spawnRadiusChunks; dx++ {
			for dz := -spawnRadiusChunks; dz <= spawnRadiusChunks; dz++ {
				cp := ChunkPos{X: center.X + dx, Z: center.Z + dz}
				if !w.ChunkLoaded(cp) {
					continue
				}
				if _, ok := seen[cp]; ok {
					continue
				}
				seen[cp] = struct{}{}
				out = append(out, cp)
			}
		}
	}
	return out
}

func (w *World) categoryCounts() map[EntityCategory]int {
	counts := make(map[EntityCategory]int, len(naturalSpawnCategories))
	for _, idx := range w.entities.slots.indices() {
		slot := w.entities.slots.at(idx)
		if slot.behavior == nil {
			continue
		}
		counts[slot.behavior.Category()]++
	}
	return counts
}

// attemptNaturalSpawnPacks runs up to maxSpawnPacks pack attempts for cat
// (spec.md §4.9 step 4), returning the number of entities actually spawned.
// budget caps the total across every pack, mirroring the per-category
// population cap still binding mid-attempt.
func (w *World) attemptNaturalSpawnPacks(cat EntityCategory, working []ChunkPos, budget int) int {
	spawned := 0
	for pack := 0; pack < maxSpawnPacks && spawned < budget; pack++ {
		spawned += w.attemptNaturalSpawnPack(cat, working, budget-spawned)
	}
	return spawned
}

// attemptNaturalSpawnPack picks a random chunk, position and kind (spec.md
// §4.9 step 3), then tries to place up to maxPackSize entities of that kind
// clustered around the pack center with small random offsets (step 4).
func (w *World) attemptNaturalSpawnPack(cat EntityCategory, working []ChunkPos, budget int) int {
	cp := working[w.rng.NextIntBounded(int32(len(working)))]
	col := w.GetChunk(cp)
	if col == nil {
		return 0
	}

	lx := int(w.rng.NextIntBounded(ColumnWidth))
	lz := int(w.rng.NextIntBounded(ColumnDepth))
	h := col.heightAt(lx, lz)
	if h <= 0 || h >= WorldHeight-1 {
		return 0
	}

	center := BlockPos{X: cp.X*ColumnWidth + lx, Y: h, Z: cp.Z*ColumnDepth + lz}
	biome := w.GetBiome(center)
	table := biome.SpawnTables[cat]
	if len(table) == 0 {
		return 0
	}
	entry := weightedPick(w.rng, table)

	spawned := 0
	for i := 0; i < maxPackSize && spawned < budget; i++ {
		pos := center.Add(BlockPos{
			X: int(w.rng.NextIntBounded(2*packSpreadBlocks+1)) - packSpreadBlocks,
			Z: int(w.rng.NextIntBounded(2*packSpreadBlocks+1)) - packSpreadBlocks,
		})
		if w.trySpawnAt(cat, entry.Kind, pos) {
			spawned++
		}
	}
	return spawned
}

// trySpawnAt validates one candidate position against spec.md §4.9 step 4's
// clearance and player-proximity rules, then defers to the entity's own
// pre-spawn hook and "can spawn" predicate.
func (w *World) trySpawnAt(cat EntityCategory, kind EntityKind, pos BlockPos) bool {
	if pos.Y <= 0 || pos.Y >= WorldHeight-1 {
		return false
	}
	if !w.spawnSiteClear(cat, pos) {
		return false
	}
	if cat == CategoryMob {
		block, sky := w.GetLight(pos)
		total := block
		if sky > total {
			total = sky
		}
		if total > 7 {
			return false
		}
	}
	if !w.playerInSpawnRange(blockCenter(pos)) {
		return false
	}

	ent, behavior := w.spawnFactory.NewEntity(kind)
	ent.SetPosition(blockCenter(pos))
	ent.SetPersistent(true)
	if !behavior.CanNaturalSpawn(ent, w) {
		return false
	}
	behavior.InitNaturalSpawn(ent, w)
	id := w.SpawnEntity(ent, behavior)
	w.SetEntityLook(id, float64(w.rng.NextFloat())*360, 0)
	return true
}

// spawnSiteClear checks the 2-block column at pos is free and, for land
// categories, that the block below is solid; water categories instead
// require the column itself to be fluid (spec.md §4.9 step 3's material
// rule, step 4's "2-block column free, solid below for land").
func (w *World) spawnSiteClear(cat EntityCategory, pos BlockPos) bool {
	lowID, _ := w.GetBlock(pos)
	highID, _ := w.GetBlock(pos.Side(DirectionPosY))
	low, high := w.blocks.Info(lowID), w.blocks.Info(highID)

	if cat == CategoryWaterAnimal {
		return low.Material == MaterialFluid && high.Material == MaterialFluid
	}

	belowID, _ := w.GetBlock(pos.Side(DirectionNegY))
	below := w.blocks.Info(belowID)
	return low.Material == MaterialAir && high.Material == MaterialAir && below.Material == MaterialSolid
}

// playerInSpawnRange reports whether at least one player is within
// maxPlayerRangeFar blocks of pos and none is within minPlayerRangeClose
// (spec.md §4.9 step 4).
func (w *World) playerInSpawnRange(pos mgl64.Vec3) bool {
	farEnough := false
	for _, id := range w.Players() {
		ent := w.Entity(id)
		if ent == nil {
			continue
		}
		dist := ent.Position().Sub(pos).Len()
		if dist < minPlayerRangeClose {
			return false
		}
		if dist <= maxPlayerRangeFar {
			farEnough = true
		}
	}
	return farEnough
}

func weightedPick(r *Rand, table []SpawnEntry) SpawnEntry {
	total := 0
	for _, e := range table {
		total += e.Weight
	}
	if total <= 0 {
		return table[0]
	}
	roll := int(r.NextIntBounded(int32(total)))
	for _, e := range table {
		if roll < e.Weight {
			return e
		}
		roll -= e.Weight
	}
	return table[len(table)-1]
}

func blockCenter(p BlockPos) mgl64.Vec3 {
	return mgl64.Vec3{float64(p.X) + 0.5, float64(p.Y), float64(p.Z) + 0.5}
}
