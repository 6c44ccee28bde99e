package world

// This file defines the external collaborator vocabularies named in
// spec.md §6. The core consumes these as pluggable tables/callbacks; it
// never implements block/entity/biome *behaviour* bodies itself (those live
// in server/block, server/entity, server/biome as separate packages the
// host wires in). Grounded on the teacher's split between server/world
// (the engine) and server/block, server/entity (behaviour implementations
// invoked through small interfaces such as NeighbourUpdateTick,
// UseOnBlock, etc).

// Material classifies a block for spawn/physics/light purposes.
type Material uint8

const (
	MaterialAir Material = iota
	MaterialSolid
	MaterialFluid
	MaterialReplaceable
	MaterialPlant
)

// BlockInfo is the static, per-id lookup table described in spec.md §6:
// light emission/opacity, material class, opacity-cube predicate,
// explosion resistance, slipperiness and break hardness.
type BlockInfo struct {
	LightEmission     uint8
	LightOpacity      uint8
	Material          Material
	OpaqueCube        bool
	ExplosionResist   float64
	Slipperiness      float64
	BreakHardness     float64
}

// BlockTable answers BlockInfo lookups for every block id known to the host.
type BlockTable interface {
	Info(id uint8) BlockInfo
}

// Biome describes precipitation and natural-spawn parameters for one biome,
// grounded on ChickenIQ-VibeShitCraft/pkg/world/biome.go's table shape
// (enrichment from the wider example pack, since the teacher repo has no
// Beta-era biome/spawn-table equivalent).
type Biome struct {
	ID              uint8
	Name            string
	Rains           bool
	Cold            bool
	SpawnTables     map[EntityCategory][]SpawnEntry
}

// SpawnEntry is one weighted candidate in a biome's natural spawn table for
// a category.
type SpawnEntry struct {
	Kind   EntityKind
	Weight int
}

// BiomeTable answers Biome lookups for every biome id known to the host.
type BiomeTable interface {
	Biome(id uint8) Biome
}

// EntityCategory groups entity kinds for natural-spawn capping (spec.md §4.9).
type EntityCategory uint8

const (
	CategoryOther EntityCategory = iota
	CategoryAnimal
	CategoryWaterAnimal
	CategoryMob
	CategoryAmbient
)

// EntityBehavior is the per-kind behaviour body an entity delegates to.
// Entities own their state; behaviour is invoked with (entity, world, id).
type EntityBehavior interface {
	// Tick advances the entity's behaviour by one game tick.
	Tick(e Entity, w *World, id uint32)
	// Category reports the natural-spawn category used for capping.
	Category() EntityCategory
	// Kind reports the closed-set kind discriminator.
	Kind() EntityKind
	// InitNaturalSpawn lets the behaviour set up any kind-specific initial
	// state right after a natural-spawn placement.
	InitNaturalSpawn(e Entity, w *World)
	// CanNaturalSpawn is the kind's final veto over a natural-spawn attempt.
	CanNaturalSpawn(e Entity, w *World) bool
}

// BlockBehavior is the per-id behaviour body a block type delegates to.
type BlockBehavior interface {
	// TickAt performs a scheduled or random tick on the block at pos.
	TickAt(pos BlockPos, id uint8, metadata uint8, random bool, w *World)
	// NotifyChange is invoked after the block itself was just placed,
	// removed or replaced, so it can react (e.g. schedule a tick, wake).
	NotifyChange(w *World, pos BlockPos, prevID, prevMeta, newID, newMeta uint8)
	// NotifyNeighbor is invoked on a block when one of its six neighbours
	// changed, identified by the position that changed.
	NotifyNeighbor(w *World, pos BlockPos, source BlockPos)
}

// BlockEntityBehavior is the per-kind behaviour body a block entity
// delegates to during the block-entity tick loop.
type BlockEntityBehavior interface {
	Tick(be BlockEntity, w *World, pos BlockPos)
}
