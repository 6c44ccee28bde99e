package world

// LightKind discriminates block light from sky light (spec.md §3).
type LightKind uint8

const (
	LightBlock LightKind = iota
	LightSky
)

// lightEntry is one queued light update: a position, a kind, and the
// remaining BFS propagation depth ("credit", spec.md GLOSSARY). The queue
// is FIFO (spec.md §4.7).
type lightEntry struct {
	Pos    BlockPos
	Kind   LightKind
	Credit int
}

// lightQueue is a simple FIFO. Grounded in spirit on the teacher's deleted
// server/world/redstone budget-per-tick vocabulary (Config.BudgetPerTick),
// adapted from a concurrent per-chunk worker queue down to the single FIFO
// spec.md §4.7 calls for.
type lightQueue struct {
	entries []lightEntry
	head    int
}

func newLightQueue() *lightQueue {
	return &lightQueue{}
}

func (q *lightQueue) push(e lightEntry) {
	q.entries = append(q.entries, e)
}

func (q *lightQueue) pop() (lightEntry, bool) {
	if q.head >= len(q.entries) {
		q.entries = q.entries[:0]
		q.head = 0
		return lightEntry{}, false
	}
	e := q.entries[q.head]
	q.head++
	if q.head == len(q.entries) {
		q.entries = q.entries[:0]
		q.head = 0
	}
	return e, true
}

func (q *lightQueue) len() int {
	return len(q.entries) - q.head
}

// DefaultLightBudget is the per-tick processing cap named in spec.md §4.7.
const DefaultLightBudget = 1000

// ScheduleLightUpdate enqueues a light update at pos for kind with full
// credit (15), as external callers (e.g. set_block) must do any time a
// block's emission/opacity category changes (spec.md §4.3 step 4).
func (w *World) ScheduleLightUpdate(pos BlockPos, kind LightKind) {
	w.lightQueue.push(lightEntry{Pos: pos, Kind: kind, Credit: 15})
}

// tickLight processes up to budget queued light updates (spec.md §4.7,
// §4.10 step 9). Residual entries carry over to the next tick.
func (w *World) tickLight(budget int) {
	for i := 0; i < budget; i++ {
		e, ok := w.lightQueue.pop()
		if !ok {
			return
		}
		w.settleLight(e)
	}
}

func (w *World) settleLight(e lightEntry) {
	cp := e.Pos.ChunkPos()
	col := w.getChunkMut(cp)
	if col == nil {
		return
	}

	maxNeighbor := uint8(0)
	for _, d := range Directions {
		np := e.Pos.Side(d)
		if lvl := w.rawLight(np, e.Kind); lvl > maxNeighbor {
			maxNeighbor = lvl
		}
	}

	id, _ := w.GetBlock(e.Pos)
	info := w.blocks.Info(id)

	var emission uint8
	openSky := false
	if e.Kind == LightBlock {
		emission = info.LightEmission
	} else {
		h := col.heightAt(localX(e.Pos), localZ(e.Pos))
		if e.Pos.Y >= h {
			emission = 15
			openSky = true
		}
	}

	opacity := info.LightOpacity
	if opacity < 1 {
		opacity = 1
	}

	newLevel := emission
	if diff := int(maxNeighbor) - int(opacity); diff > int(newLevel) {
		newLevel = uint8(diff)
	}

	old := col.light(localX(e.Pos), e.Pos.Y, localZ(e.Pos), e.Kind)
	if old == newLevel {
		return
	}
	col.setLight(localX(e.Pos), e.Pos.Y, localZ(e.Pos), e.Kind, newLevel)
	w.dirty(cp)

	if e.Credit < 1 {
		return
	}
	for _, d := range Directions {
		if e.Kind == LightSky && openSky && d == DirectionPosY {
			// Already at 15 above; no need to re-propagate upward.
			continue
		}
		w.lightQueue.push(lightEntry{Pos: e.Pos.Side(d), Kind: e.Kind, Credit: e.Credit - 1})
	}
}

func localX(p BlockPos) int { return ((p.X % ColumnWidth) + ColumnWidth) % ColumnWidth }
func localZ(p BlockPos) int { return ((p.Z % ColumnDepth) + ColumnDepth) % ColumnDepth }

// rawLight reads the stored light level at pos without the sky-light
// subtraction GetLight applies, defaulting to sky=15/block=0 for unloaded
// chunks and clamping y to [0,127] (spec.md §4.3, §8 boundary behaviour).
func (w *World) rawLight(pos BlockPos, kind LightKind) uint8 {
	y := pos.Y
	if y > WorldHeight-1 {
		y = WorldHeight - 1
	}
	if y < 0 {
		if kind == LightSky {
			return 15
		}
		return 0
	}
	col := w.GetChunk(pos.ChunkPos())
	if col == nil {
		if kind == LightSky {
			return 15
		}
		return 0
	}
	return col.light(localX(pos), y, localZ(pos), kind)
}

// GetLight returns the block light and sky_real (stored sky light minus the
// world's current sky-light attenuation) at pos, per spec.md §4.3/§4.8.
func (w *World) GetLight(pos BlockPos) (block, skyReal uint8) {
	y := pos.Y
	if y > WorldHeight-1 {
		y = WorldHeight - 1
	}
	if y < 0 {
		return 0, 15
	}
	col := w.GetChunk(pos.ChunkPos())
	var sky uint8 = 15
	var blk uint8
	if col != nil {
		blk = col.light(localX(pos), y, localZ(pos), LightBlock)
		sky = col.light(localX(pos), y, localZ(pos), LightSky)
	}
	real := int(sky) - int(w.skySubtracted)
	if real < 0 {
		real = 0
	}
	return blk, uint8(real)
}
