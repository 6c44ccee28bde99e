package block

import (
	"github.com/beta173/corestone/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// Behaviors adapts a handful of id-keyed world.BlockBehavior values to
// world.BlockBehaviorTable. Ids with no entry behave as inert: no
// TickAt/NotifyChange/NotifyNeighbor reaction, matching plain terrain
// blocks like Stone or Dirt.
type Behaviors struct {
	m map[uint8]world.BlockBehavior
}

// NewBehaviors builds the default behavior table covering the
// container/redstone/interactive block ids named in spec.md §3's
// block-entity kind set plus a couple of representative redstone
// components, grounded on the teacher's one-file-per-block-type layout
// (server/block/lever.go, redstone_dust.go, redstone_lamp.go) collapsed
// into small per-concern structs implementing world.BlockBehavior instead
// of dragonfly's richer world.Block/item.User-facing interface (out of
// scope: this core has no player interaction surface).
func NewBehaviors() *Behaviors {
	b := &Behaviors{m: make(map[uint8]world.BlockBehavior)}
	container := &containerBehavior{}
	b.m[Chest] = container
	b.m[Furnace] = &furnaceBehavior{litID: FurnaceLit, unlitID: Furnace}
	b.m[FurnaceLit] = &furnaceBehavior{litID: FurnaceLit, unlitID: Furnace}
	b.m[SignPost] = &signBehavior{}
	b.m[WallSign] = &signBehavior{}
	b.m[Dispenser] = container
	b.m[MobSpawner] = &spawnerBehavior{}
	b.m[NoteBlock] = &noteBlockBehavior{}
	b.m[RedstoneTorch] = &redstoneTorchBehavior{}
	piston := &pistonBehavior{}
	b.m[Piston] = piston
	b.m[PistonSticky] = piston
	return b
}

// Behavior implements world.BlockBehaviorTable.
func (b *Behaviors) Behavior(id uint8) world.BlockBehavior {
	return b.m[id]
}

// containerBehavior installs/removes a generic container block entity
// (chest or dispenser) as its block is placed/broken (spec.md §4.5, §7).
type containerBehavior struct{}

func (containerBehavior) TickAt(pos world.BlockPos, id, meta uint8, random bool, w *world.World) {}

func (containerBehavior) NotifyChange(w *world.World, pos world.BlockPos, prevID, prevMeta, newID, newMeta uint8) {
	switch {
	case newID != 0 && prevID == 0:
		kind := world.BlockEntityChest
		if newID == Dispenser {
			kind = world.BlockEntityDispenser
		}
		w.SetBlockEntity(pos, NewContainer(kind), &containerTickBehavior{})
	case newID == 0 && prevID != 0:
		w.RemoveBlockEntity(pos)
	}
}

func (containerBehavior) NotifyNeighbor(w *world.World, pos, source world.BlockPos) {}

// containerTickBehavior is the block-entity-side Tick hook for Container;
// Beta containers have no per-tick behaviour of their own (no hoppers to
// feed), so this is intentionally a no-op kept for symmetry with the
// furnace's non-trivial tick.
type containerTickBehavior struct{}

func (containerTickBehavior) Tick(be world.BlockEntity, w *world.World, pos world.BlockPos) {}

// furnaceBehavior manages the Furnace<->FurnaceLit id swap that Beta 1.7.3
// uses in place of modern Java's single-id "lit" blockstate property
// (grounded on redstone_lamp.go's analogous on/off-id pattern).
type furnaceBehavior struct {
	litID, unlitID uint8
}

func (f *furnaceBehavior) TickAt(pos world.BlockPos, id, meta uint8, random bool, w *world.World) {}

func (f *furnaceBehavior) NotifyChange(w *world.World, pos world.BlockPos, prevID, prevMeta, newID, newMeta uint8) {
	if newID != f.litID && newID != f.unlitID {
		if prevID == f.litID || prevID == f.unlitID {
			w.RemoveBlockEntity(pos)
		}
		return
	}
	if prevID != f.litID && prevID != f.unlitID {
		w.SetBlockEntity(pos, &Furnace{}, &furnaceTickBehavior{owner: f, pos: pos})
	}
}

func (f *furnaceBehavior) NotifyNeighbor(w *world.World, pos, source world.BlockPos) {}

// furnaceTickBehavior, while the furnace has burn time left, decrements the
// burn timer and advances the cook progress each tick, and switches a lit
// furnace to its unlit id once the burn timer reaches 0. It never switches
// an unlit furnace to lit.
type furnaceTickBehavior struct {
	owner *furnaceBehavior
	pos   world.BlockPos
}

// furnaceCookTimeTotal is the number of lit ticks a smelt takes, matching
// vanilla Beta's 200-tick (10s) furnace smelt time.
const furnaceCookTimeTotal = 200

func (t *furnaceTickBehavior) Tick(be world.BlockEntity, w *world.World, pos world.BlockPos) {
	f, ok := be.(*Furnace)
	if !ok || f.BurnTimeLeft <= 0 {
		return
	}
	f.BurnTimeLeft--
	f.CookProgress++
	w.Emit(world.Event{Kind: world.EventBlockEntityProgressChange, Pos: pos, Meta: f.CookProgress})
	if f.CookProgress >= furnaceCookTimeTotal {
		f.CookProgress = 0
	}
	if f.BurnTimeLeft == 0 {
		id, meta := w.GetBlock(pos)
		if id == t.owner.litID {
			w.SetBlockSelfNotify(pos, t.owner.unlitID, meta)
		}
	}
}

// signBehavior installs/removes a Sign block entity (spec.md §4.5).
type signBehavior struct{}

func (signBehavior) TickAt(pos world.BlockPos, id, meta uint8, random bool, w *world.World) {}

func (signBehavior) NotifyChange(w *world.World, pos world.BlockPos, prevID, prevMeta, newID, newMeta uint8) {
	switch {
	case newID != 0 && prevID == 0:
		w.SetBlockEntity(pos, &Sign{}, signTickBehavior{})
	case newID == 0 && prevID != 0:
		w.RemoveBlockEntity(pos)
	}
}

func (signBehavior) NotifyNeighbor(w *world.World, pos, source world.BlockPos) {}

type signTickBehavior struct{}

func (signTickBehavior) Tick(be world.BlockEntity, w *world.World, pos world.BlockPos) {}

// spawnerBehavior installs a mob spawner block entity, whose own Tick drives
// periodic spawn attempts local to its block (spec.md §4.9's "per-block"
// supplemented spawner path, distinct from ambient natural spawn).
type spawnerBehavior struct{}

func (spawnerBehavior) TickAt(pos world.BlockPos, id, meta uint8, random bool, w *world.World) {}

func (spawnerBehavior) NotifyChange(w *world.World, pos world.BlockPos, prevID, prevMeta, newID, newMeta uint8) {
	switch {
	case newID != 0 && prevID == 0:
		w.SetBlockEntity(pos, &Spawner{Kind: world.KindLiving, Delay: 200}, &spawnerTickBehavior{})
	case newID == 0 && prevID != 0:
		w.RemoveBlockEntity(pos)
	}
}

func (spawnerBehavior) NotifyNeighbor(w *world.World, pos, source world.BlockPos) {}

type spawnerTickBehavior struct{}

func (spawnerTickBehavior) Tick(be world.BlockEntity, w *world.World, pos world.BlockPos) {
	s, ok := be.(*Spawner)
	if !ok {
		return
	}
	if s.Delay > 0 {
		s.Delay--
		return
	}
	s.Delay = 200 + int(w.RNG().NextIntBounded(600))

	factory := w.SpawnFactory()
	if factory == nil {
		return
	}
	box := world.BBox{
		Min: mgl64.Vec3{float64(pos.X - 4), float64(pos.Y - 1), float64(pos.Z - 4)},
		Max: mgl64.Vec3{float64(pos.X + 5), float64(pos.Y + 2), float64(pos.Z + 5)},
	}
	if len(w.EntitiesColliding(box, 0)) >= 4 {
		return
	}

	ent, behavior := factory.NewEntity(s.Kind)
	ent.SetPosition(mgl64.Vec3{float64(pos.X) + 0.5, float64(pos.Y), float64(pos.Z) + 0.5})
	if !behavior.CanNaturalSpawn(ent, w) {
		return
	}
	behavior.InitNaturalSpawn(ent, w)
	w.SpawnEntity(ent, behavior)
}

// noteBlockBehavior plays on any neighbour change, the same simplification
// pistonBehavior already makes (no modeled redstone power network to gate
// on a rising edge specifically).
type noteBlockBehavior struct{}

func (noteBlockBehavior) TickAt(pos world.BlockPos, id, meta uint8, random bool, w *world.World) {}
func (noteBlockBehavior) NotifyChange(w *world.World, pos world.BlockPos, prevID, prevMeta, newID, newMeta uint8) {
}

// NotifyNeighbor emits Note::Play carrying the block's own metadata as the
// note pitch (a 4-bit nibble, so 0-15).
func (noteBlockBehavior) NotifyNeighbor(w *world.World, pos, source world.BlockPos) {
	_, meta := w.GetBlock(pos)
	w.Emit(world.Event{Kind: world.EventNoteBlockPlay, Pos: pos, BlockMeta: meta})
}

// redstoneTorchBehavior schedules a 2-tick update after any neighbour
// change, following vanilla's redstone torch update-delay (grounded on
// redstone_dust.go's scheduled-update pattern, the teacher's closest
// analogue to Beta redstone timing before the dropped concurrent redstone
// package).
type redstoneTorchBehavior struct{}

func (redstoneTorchBehavior) TickAt(pos world.BlockPos, id, meta uint8, random bool, w *world.World) {
}

func (redstoneTorchBehavior) NotifyChange(w *world.World, pos world.BlockPos, prevID, prevMeta, newID, newMeta uint8) {
}

func (redstoneTorchBehavior) NotifyNeighbor(w *world.World, pos, source world.BlockPos) {
	id, _ := w.GetBlock(pos)
	w.ScheduleBlockTick(pos, id, 2)
}

// pistonBehavior installs a Piston block entity on placement, deriving its
// push face from the placement metadata, whose 0-5 values already match
// world.Direction's own NegY/PosY/NegZ/PosZ/NegX/PosX ordering (Beta reuses
// the same six-face encoding for piston facing as it does for block faces).
type pistonBehavior struct{}

func (pistonBehavior) TickAt(pos world.BlockPos, id, meta uint8, random bool, w *world.World) {}

func (pistonBehavior) NotifyChange(w *world.World, pos world.BlockPos, prevID, prevMeta, newID, newMeta uint8) {
	switch {
	case newID != 0 && prevID == 0:
		face := world.Direction(newMeta & 0x7)
		w.SetBlockEntity(pos, &Piston{Face: face}, &pistonTickBehavior{})
	case newID == 0 && prevID != 0:
		w.RemoveBlockEntity(pos)
	}
}

// NotifyNeighbor toggles the piston between its two stable states: a
// neighbour change while Idle starts extending, one while Extended starts
// retracting. A move already in progress ignores further triggers, matching
// vanilla's refusal to reverse mid-stroke.
func (pistonBehavior) NotifyNeighbor(w *world.World, pos, source world.BlockPos) {
	be := w.BlockEntityAt(pos)
	p, ok := be.(*Piston)
	if !ok {
		return
	}
	switch p.Stage {
	case PistonIdle:
		p.Stage = PistonExtending
		p.Elapsed = 0
	case PistonExtended:
		p.Stage = PistonRetracting
		p.Elapsed = 0
	}
}

// pistonTickBehavior drives the Idle -> Extending -> Extended -> Retracting
// -> Idle animation, moving the single block directly ahead of the piston
// head on each completed stroke (spec.md §3 names the piston-moving kind;
// the move animation itself is a SPEC_FULL.md §C supplement, since the
// distillation source's own piston tick is an unimplemented stub).
type pistonTickBehavior struct{}

func (pistonTickBehavior) Tick(be world.BlockEntity, w *world.World, pos world.BlockPos) {
	p, ok := be.(*Piston)
	if !ok || p.Stage == PistonIdle {
		return
	}
	p.Elapsed++
	if p.Elapsed < pistonMoveTicks {
		return
	}
	p.Elapsed = 0

	head := pos.Side(p.Face)
	switch p.Stage {
	case PistonExtending:
		// push whatever occupies the head position one block further before
		// the head itself moves in, a single-block cascade (no multi-block
		// push chain, matching the simplification spec.md's block mutation
		// API surface implies for a headless core with no stack-of-blocks
		// push-limit concept).
		existingID, existingMeta := w.GetBlock(head)
		if existingID != 0 {
			w.SetBlockSelfNotify(head.Side(p.Face), existingID, existingMeta)
		}
		w.SetBlockSelfNotify(head, PistonHead, 0)
		w.Emit(world.Event{Kind: world.EventPistonMove, Pos: pos, BlockID: PistonHead})
		p.Stage = PistonExtended
	case PistonRetracting:
		w.SetBlockSelfNotify(head, 0, 0)
		w.Emit(world.Event{Kind: world.EventPistonMove, Pos: pos, BlockID: 0})
		p.Stage = PistonIdle
	}
}
