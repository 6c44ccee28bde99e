package entity

import (
	"sync/atomic"

	"github.com/beta173/corestone/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// seedCounter hands each constructed entity a distinct deterministic seed
// for its own per-entity Rand, so a crowd of spawned mobs don't all share
// one identical AI random stream. spec.md's Non-goals explicitly exclude
// bit-for-bit RNG reproduction of cosmetic detail, so this need only be
// distinct, not vanilla-accurate.
var seedCounter int64

// Factory is a world.NaturalSpawnFactory constructing the concrete kinds
// this package implements, grounded on the teacher's DefaultRegistry
// dispatch table (server/entity/register.go) collapsed to a switch over
// this core's closed EntityKind set rather than dragonfly's open
// world.EntityType registry (the Beta id space needs no such extensibility).
type Factory struct {
	// Category assigns a natural-spawn category to KindLiving spawns; the
	// caller (natural spawn or a mob spawner block entity) picks the
	// category upstream of NewEntity, so Factory just threads it through.
	Category world.EntityCategory
}

// NewEntity implements world.NaturalSpawnFactory.
func (f Factory) NewEntity(kind world.EntityKind) (world.Entity, world.EntityBehavior) {
	rng := world.NewRand(atomic.AddInt64(&seedCounter, 1))
	origin := mgl64.Vec3{}
	switch kind {
	case world.KindItem:
		return NewItem(origin, nil, rng), NewItemBehavior()
	case world.KindFallingBlock:
		return NewFallingBlock(origin, 0, 0, rng), NewFallingBlockBehavior()
	case world.KindTNT:
		return NewTNT(origin, rng), NewTNTBehavior()
	case world.KindLiving:
		return NewLiving(origin, f.Category, rng), NewLivingBehavior(f.Category)
	default:
		return NewLiving(origin, world.CategoryOther, rng), NewLivingBehavior(world.CategoryOther)
	}
}
