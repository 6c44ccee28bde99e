package biome

import (
	"testing"

	"github.com/beta173/corestone/server/world"
)

func TestBiomeTableKnownID(t *testing.T) {
	bt := BiomeTable{}
	b := bt.Biome(Plains)
	if b.Name != "Plains" {
		t.Fatalf("expected Plains, got %q", b.Name)
	}
	if !b.Rains {
		t.Fatalf("expected Plains to rain")
	}
	if b.Cold {
		t.Fatalf("expected Plains not cold")
	}
}

func TestBiomeTableUnknownIDIsZeroValue(t *testing.T) {
	bt := BiomeTable{}
	b := bt.Biome(200)
	if b.Name != "" {
		t.Fatalf("expected zero Biome for unknown id, got %+v", b)
	}
}

func TestColdBiomesCarrySnowSpawnHint(t *testing.T) {
	bt := BiomeTable{}
	for _, id := range []uint8{Taiga, FrozenOcean, FrozenRiver, IcePlains, IceMountains} {
		if !bt.Biome(id).Cold {
			t.Fatalf("expected biome %d to be marked Cold", id)
		}
	}
}

func TestDesertHasNoAnimalSpawnTable(t *testing.T) {
	bt := BiomeTable{}
	b := bt.Biome(Desert)
	if _, ok := b.SpawnTables[world.CategoryAnimal]; ok {
		t.Fatalf("expected Desert to have no animal spawn table")
	}
	if _, ok := b.SpawnTables[world.CategoryMob]; !ok {
		t.Fatalf("expected Desert to have a mob spawn table")
	}
}

func TestSpawnTableWeightsPositive(t *testing.T) {
	bt := BiomeTable{}
	for id := range Table {
		b := bt.Biome(id)
		for cat, entries := range b.SpawnTables {
			for _, e := range entries {
				if e.Weight <= 0 {
					t.Fatalf("biome %d category %d has non-positive weight %d", id, cat, e.Weight)
				}
			}
		}
	}
}
