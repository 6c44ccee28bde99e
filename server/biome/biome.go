// Package biome supplies the Beta 1.7.3 biome table consumed by
// server/world's BiomeTable interface. Grounded on
// ChickenIQ-VibeShitCraft/pkg/world/biome.go's predefined-biome-table shape,
// an enrichment source: the teacher repo (dm-vev-adamant) has no Beta-era
// biome table of its own, having been built against modern Java/Bedrock
// biome ids.
package biome

import "github.com/beta173/corestone/server/world"

// Beta 1.7.3 biome ids, as referenced by mc173's biome module.
const (
	Ocean        uint8 = 0
	Plains       uint8 = 1
	Desert       uint8 = 2
	ExtremeHills uint8 = 3
	Forest       uint8 = 4
	Taiga        uint8 = 5
	Swampland    uint8 = 6
	River        uint8 = 7
	Hell         uint8 = 8
	Sky          uint8 = 9
	FrozenOcean  uint8 = 10
	FrozenRiver  uint8 = 11
	IcePlains    uint8 = 12
	IceMountains uint8 = 13
	Jungle       uint8 = 21
)

func animalTable() []world.SpawnEntry {
	return []world.SpawnEntry{{Kind: world.KindLiving, Weight: 12}}
}

func mobTable() []world.SpawnEntry {
	return []world.SpawnEntry{{Kind: world.KindLiving, Weight: 100}}
}

func ambientTable() []world.SpawnEntry {
	return []world.SpawnEntry{{Kind: world.KindLiving, Weight: 10}}
}

func waterTable() []world.SpawnEntry {
	return []world.SpawnEntry{{Kind: world.KindLiving, Weight: 3}}
}

// Table is the static, by-id Beta 1.7.3 biome table.
var Table = map[uint8]world.Biome{
	Ocean: {ID: Ocean, Name: "Ocean", Rains: true,
		SpawnTables: map[world.EntityCategory][]world.SpawnEntry{world.CategoryWaterAnimal: waterTable(), world.CategoryMob: mobTable()}},
	Plains: {ID: Plains, Name: "Plains", Rains: true,
		SpawnTables: map[world.EntityCategory][]world.SpawnEntry{world.CategoryAnimal: animalTable(), world.CategoryMob: mobTable(), world.CategoryAmbient: ambientTable()}},
	Desert: {ID: Desert, Name: "Desert", Rains: false,
		SpawnTables: map[world.EntityCategory][]world.SpawnEntry{world.CategoryMob: mobTable()}},
	ExtremeHills: {ID: ExtremeHills, Name: "Extreme Hills", Rains: true,
		SpawnTables: map[world.EntityCategory][]world.SpawnEntry{world.CategoryAnimal: animalTable(), world.CategoryMob: mobTable()}},
	Forest: {ID: Forest, Name: "Forest", Rains: true,
		SpawnTables: map[world.EntityCategory][]world.SpawnEntry{world.CategoryAnimal: animalTable(), world.CategoryMob: mobTable(), world.CategoryAmbient: ambientTable()}},
	Taiga: {ID: Taiga, Name: "Taiga", Rains: true, Cold: true,
		SpawnTables: map[world.EntityCategory][]world.SpawnEntry{world.CategoryAnimal: animalTable(), world.CategoryMob: mobTable()}},
	Swampland: {ID: Swampland, Name: "Swampland", Rains: true,
		SpawnTables: map[world.EntityCategory][]world.SpawnEntry{world.CategoryMob: mobTable(), world.CategoryWaterAnimal: waterTable()}},
	River: {ID: River, Name: "River", Rains: true,
		SpawnTables: map[world.EntityCategory][]world.SpawnEntry{world.CategoryWaterAnimal: waterTable()}},
	Hell: {ID: Hell, Name: "Hell", Rains: false,
		SpawnTables: map[world.EntityCategory][]world.SpawnEntry{world.CategoryMob: mobTable()}},
	Sky: {ID: Sky, Name: "Sky", Rains: false},
	FrozenOcean: {ID: FrozenOcean, Name: "Frozen Ocean", Rains: true, Cold: true,
		SpawnTables: map[world.EntityCategory][]world.SpawnEntry{world.CategoryWaterAnimal: waterTable()}},
	FrozenRiver: {ID: FrozenRiver, Name: "Frozen River", Rains: true, Cold: true},
	IcePlains: {ID: IcePlains, Name: "Ice Plains", Rains: true, Cold: true,
		SpawnTables: map[world.EntityCategory][]world.SpawnEntry{world.CategoryMob: mobTable()}},
	IceMountains: {ID: IceMountains, Name: "Ice Mountains", Rains: true, Cold: true,
		SpawnTables: map[world.EntityCategory][]world.SpawnEntry{world.CategoryMob: mobTable()}},
	Jungle: {ID: Jungle, Name: "Jungle", Rains: true,
		SpawnTables: map[world.EntityCategory][]world.SpawnEntry{world.CategoryAnimal: animalTable(), world.CategoryMob: mobTable(), world.CategoryAmbient: ambientTable()}},
}

// BiomeTable adapts Table to world.BiomeTable.
type BiomeTable struct{}

// Biome returns the registered biome for id, or the zero Biome (no
// precipitation, no spawn tables) if id is unknown.
func (BiomeTable) Biome(id uint8) world.Biome {
	return Table[id]
}
