// Package block supplies the Beta 1.7.3 block table and a representative
// set of block behaviors consumed by server/world's BlockTable and
// BlockBehaviorTable interfaces. Grounded on the teacher's per-block-type
// file layout (server/block/*.go, one file per block) and BreakInfo/
// material vocabulary, adapted from dragonfly's modern block id space down
// to Beta 1.7.3's flat byte id space (mc173/src/block/mod.rs).
package block

import "github.com/beta173/corestone/server/world"

// A representative slice of the Beta 1.7.3 block id space (mc173/src/block/mod.rs).
const (
	Air           uint8 = 0
	Stone         uint8 = 1
	Grass         uint8 = 2
	Dirt          uint8 = 3
	Cobblestone   uint8 = 4
	Wood          uint8 = 5
	Sapling       uint8 = 6
	Bedrock       uint8 = 7
	Water         uint8 = 8
	WaterStill    uint8 = 9
	Lava          uint8 = 10
	LavaStill     uint8 = 11
	Sand          uint8 = 12
	Gravel        uint8 = 13
	Leaves        uint8 = 18
	Glass         uint8 = 20
	Lever         uint8 = 69
	RedstoneTorch uint8 = 76
	RedstoneWire  uint8 = 55
	Chest         uint8 = 54
	Furnace       uint8 = 61
	FurnaceLit    uint8 = 62
	SignPost      uint8 = 63
	WallSign      uint8 = 68
	Dispenser     uint8 = 23
	NoteBlock     uint8 = 25
	Jukebox       uint8 = 84
	MobSpawner    uint8 = 52
	Piston        uint8 = 33
	PistonSticky  uint8 = 29
	PistonHead    uint8 = 34
	TNT           uint8 = 46
)

// Table is the static Beta 1.7.3 block info table (spec.md §6 BlockTable).
var Table = map[uint8]world.BlockInfo{
	Air:           {Material: world.MaterialAir},
	Stone:         {Material: world.MaterialSolid, OpaqueCube: true, LightOpacity: 15, ExplosionResist: 30, BreakHardness: 1.5},
	Grass:         {Material: world.MaterialSolid, OpaqueCube: true, LightOpacity: 15, ExplosionResist: 3, BreakHardness: 0.6},
	Dirt:          {Material: world.MaterialSolid, OpaqueCube: true, LightOpacity: 15, ExplosionResist: 2.5, BreakHardness: 0.5},
	Cobblestone:   {Material: world.MaterialSolid, OpaqueCube: true, LightOpacity: 15, ExplosionResist: 30, BreakHardness: 2},
	Wood:          {Material: world.MaterialSolid, OpaqueCube: true, LightOpacity: 15, ExplosionResist: 10, BreakHardness: 2},
	Sapling:       {Material: world.MaterialPlant, ExplosionResist: 0, BreakHardness: 0},
	Bedrock:       {Material: world.MaterialSolid, OpaqueCube: true, LightOpacity: 15, ExplosionResist: 1_800_000, BreakHardness: -1},
	Water:         {Material: world.MaterialFluid, Slipperiness: 0.8},
	WaterStill:    {Material: world.MaterialFluid, Slipperiness: 0.8},
	Lava:          {Material: world.MaterialFluid, LightEmission: 15},
	LavaStill:     {Material: world.MaterialFluid, LightEmission: 15},
	Sand:          {Material: world.MaterialSolid, OpaqueCube: true, LightOpacity: 15, ExplosionResist: 2.5, BreakHardness: 0.5},
	Gravel:        {Material: world.MaterialSolid, OpaqueCube: true, LightOpacity: 15, ExplosionResist: 3, BreakHardness: 0.6},
	Leaves:        {Material: world.MaterialSolid, OpaqueCube: false, LightOpacity: 1, ExplosionResist: 1, BreakHardness: 0.2},
	Glass:         {Material: world.MaterialSolid, OpaqueCube: false, LightOpacity: 0, ExplosionResist: 1.5, BreakHardness: 0.3},
	Lever:         {Material: world.MaterialSolid, OpaqueCube: false, ExplosionResist: 2.5, BreakHardness: 0.5},
	RedstoneTorch: {Material: world.MaterialSolid, OpaqueCube: false, LightEmission: 7, ExplosionResist: 0, BreakHardness: 0},
	RedstoneWire:  {Material: world.MaterialSolid, OpaqueCube: false, ExplosionResist: 0, BreakHardness: 0},
	Chest:         {Material: world.MaterialSolid, OpaqueCube: false, ExplosionResist: 12.5, BreakHardness: 2.5},
	Furnace:       {Material: world.MaterialSolid, OpaqueCube: true, LightOpacity: 15, ExplosionResist: 17.5, BreakHardness: 3.5},
	FurnaceLit:    {Material: world.MaterialSolid, OpaqueCube: true, LightOpacity: 15, LightEmission: 13, ExplosionResist: 17.5, BreakHardness: 3.5},
	SignPost:      {Material: world.MaterialSolid, OpaqueCube: false, ExplosionResist: 5, BreakHardness: 1},
	WallSign:      {Material: world.MaterialSolid, OpaqueCube: false, ExplosionResist: 5, BreakHardness: 1},
	Dispenser:     {Material: world.MaterialSolid, OpaqueCube: true, LightOpacity: 15, ExplosionResist: 17.5, BreakHardness: 3.5},
	NoteBlock:     {Material: world.MaterialSolid, OpaqueCube: true, LightOpacity: 15, ExplosionResist: 4, BreakHardness: 0.8},
	Jukebox:       {Material: world.MaterialSolid, OpaqueCube: true, LightOpacity: 15, ExplosionResist: 30, BreakHardness: 2},
	MobSpawner:    {Material: world.MaterialSolid, OpaqueCube: true, LightOpacity: 15, ExplosionResist: 25, BreakHardness: 5},
	Piston:        {Material: world.MaterialSolid, OpaqueCube: false, ExplosionResist: 2.5, BreakHardness: 0.5},
	PistonSticky:  {Material: world.MaterialSolid, OpaqueCube: false, ExplosionResist: 2.5, BreakHardness: 0.5},
	PistonHead:    {Material: world.MaterialSolid, OpaqueCube: false, ExplosionResist: 2.5, BreakHardness: 0.5},
	TNT:           {Material: world.MaterialSolid, OpaqueCube: true, LightOpacity: 15, ExplosionResist: 0, BreakHardness: 0},
}

// BlockTable adapts Table to world.BlockTable.
type BlockTable struct{}

// Info returns id's static info, or the zero (air-like) BlockInfo if
// unknown.
func (BlockTable) Info(id uint8) world.BlockInfo {
	return Table[id]
}
