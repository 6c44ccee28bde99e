package world

import (
	"log/slog"

	"github.com/beta173/corestone/internal/guard"
)

// Config configures a new World. Only Blocks is mandatory; every other field
// has a usable zero value or default, following the teacher's Config-struct-
// with-defaults convention (server/world/world.go's world.Config).
type Config struct {
	// Dim selects dimension-specific tick behaviour (weather, sky light).
	Dim Dimension
	// Seed drives the world's deterministic Rand (spec.md §6).
	Seed int64

	Log *slog.Logger

	Blocks         BlockTable
	Biomes         BiomeTable
	BlockBehaviors BlockBehaviorTable
	SpawnFactory   NaturalSpawnFactory
	SpawnCaps      map[EntityCategory]int

	// Events receives every emitted Event; nil means events are dropped
	// (spec.md §3's "optional, swappable" requirement).
	Events *EventQueue

	// LightBudget caps how many queued light updates tickLight drains per
	// Tick; defaults to DefaultLightBudget.
	LightBudget int
}

// World is the authoritative single-threaded simulation core: chunk store,
// entity/block-entity registries, scheduled ticks, light queue, weather and
// the tick orchestrator, all named as components in spec.md §3-§4. Grounded
// on the shape of the teacher's deleted server/world/world.go World struct
// (chunks, entities, weather fields), rebuilt around direct synchronous
// method calls instead of its Exec/Tx channel-based concurrency model.
type World struct {
	conf Config

	chunks        *chunkMap
	entities      *entityRegistry
	blockEntities *blockEntityRegistry
	scheduledTicks *scheduledTickQueue
	lightQueue    *lightQueue
	lightBudget   int

	events *EventQueue
	log    *slog.Logger

	blocks         BlockTable
	biomes         BiomeTable
	blockBehaviors BlockBehaviorTable
	spawnFactory   NaturalSpawnFactory
	spawnCaps      map[EntityCategory]int

	rng *Rand

	time              int64
	weather           Weather
	nextWeatherChange int64
	skySubtracted     uint8

	guard *guard.Guard
}

// New constructs a World ready to Tick. Blocks must be non-nil: every block
// write and light update consults it.
func New(conf Config) *World {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.LightBudget <= 0 {
		conf.LightBudget = DefaultLightBudget
	}
	if conf.SpawnCaps == nil {
		conf.SpawnCaps = map[EntityCategory]int{
			CategoryAnimal:      10,
			CategoryWaterAnimal: 5,
			CategoryMob:         70,
			CategoryAmbient:     15,
		}
	}

	w := &World{
		conf:           conf,
		chunks:         newChunkMap(),
		entities:       newEntityRegistry(),
		blockEntities:  newBlockEntityRegistry(),
		scheduledTicks: newScheduledTickQueue(),
		lightQueue:     newLightQueue(),
		lightBudget:    conf.LightBudget,
		events:         conf.Events,
		log:            conf.Log,
		blocks:         conf.Blocks,
		biomes:         conf.Biomes,
		blockBehaviors: conf.BlockBehaviors,
		spawnFactory:   conf.SpawnFactory,
		spawnCaps:      conf.SpawnCaps,
		rng:            NewRand(conf.Seed),
		weather:        WeatherClear,
		guard:          &guard.Guard{},
	}
	w.nextWeatherChange = int64(w.rng.NextIntBounded(12000)) + 12000
	w.recomputeSkyLightSubtracted()
	return w
}

// Dimension returns the dimension this world simulates.
func (w *World) Dimension() Dimension {
	return w.conf.Dim
}

// RNG returns the world's own deterministic Rand, the one spec.md §6 asks
// world-scoped (not per-entity) RNG-driven behaviour to use.
func (w *World) RNG() *Rand {
	return w.rng
}

// SpawnFactory returns the host's NaturalSpawnFactory, or nil if the host
// never configured one. Exposed so block behaviors (e.g. a mob spawner) can
// drive their own spawn attempts through the same construction path natural
// spawn uses.
func (w *World) SpawnFactory() NaturalSpawnFactory {
	return w.spawnFactory
}

// Emit pushes e onto the world's event queue. Block/block-entity behaviors
// live in a host package outside server/world, so unlike the block mutation
// API's own internal w.events.push calls, they need an exported hook to
// report events spec.md §3 doesn't otherwise have a method for (piston
// movement, block-entity progress).
func (w *World) Emit(e Event) {
	w.events.push(e)
}
