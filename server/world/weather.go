package world

import "math"

// Weather is the world-wide weather state (spec.md §3, §4.8). The teacher's
// `mc173-server` original models rain and thunder as two independent state
// machines; this spec collapses them into one tri-state, an explicit Open
// Question decision recorded in DESIGN.md.
type Weather uint8

const (
	WeatherClear Weather = iota
	WeatherRain
	WeatherThunder
)

// Dimension selects dimension-specific tick behaviour: weather is a no-op
// in the Nether, and sky light never reaches a loaded column there.
type Dimension uint8

const (
	DimensionOverworld Dimension = iota
	DimensionNether
	DimensionEnd
)

// Precipitation is the local weather at a single position (spec.md §4.8).
type Precipitation uint8

const (
	PrecipitationClear Precipitation = iota
	PrecipitationRain
	PrecipitationSnow
)

// tickWeather advances the weather state machine and, on a Clear<->Rain or
// Clear<->Thunder transition, emits Weather (spec.md §4.8, §4.10 step 1). A
// no-op in the Nether.
func (w *World) tickWeather() {
	if w.conf.Dim == DimensionNether {
		return
	}
	if w.time < w.nextWeatherChange {
		return
	}

	prev := w.weather
	if w.weather == WeatherClear {
		if w.rng.NextIntBounded(2) == 0 {
			w.weather = WeatherThunder
		} else {
			w.weather = WeatherRain
		}
	} else {
		w.weather = WeatherClear
	}

	bound := int32(12000)
	if w.weather == WeatherClear {
		bound = 168000
	}
	w.nextWeatherChange = w.time + int64(w.rng.NextIntBounded(bound)) + 12000

	if w.weather != prev {
		w.events.push(Event{Kind: EventWeatherChange, Weather: w.weather})
	}
}

// recomputeSkyLightSubtracted recomputes sky_light_subtracted from the
// current time-of-day's celestial angle and the current weather factor
// (spec.md §4.8, §4.10 step 3). The daylight factor is clamped to [0,1]
// *before* the weather factor is applied, so a clear sky plateaus at full
// brightness (skySubtracted=0) across the whole daytime arc rather than
// following a smooth cosine through it.
func (w *World) recomputeSkyLightSubtracted() {
	if w.conf.Dim != DimensionOverworld {
		w.skySubtracted = 11
		return
	}

	angle := celestialAngle(w.time)
	factor := math.Cos(angle*2*math.Pi)*2 + 0.5
	if factor < 0 {
		factor = 0
	} else if factor > 1 {
		factor = 1
	}

	switch w.weather {
	case WeatherRain:
		factor *= 0.6875
	case WeatherThunder:
		factor *= 0.47265625
	}

	w.skySubtracted = uint8((1 - factor) * 11)
}

// celestialAngle maps a tick count through the 24000-tick day/night cycle
// into a [0,1) angle, following vanilla's frac-then-cosine-ease formula.
func celestialAngle(time int64) float64 {
	t := float64(((time%24000)+24000)%24000) / 24000.0
	frac := t - 0.25
	if frac < 0 {
		frac += 1
	}
	ease := 0.5 - math.Cos(frac*math.Pi)/2
	return (frac*2 + ease) / 3
}

// LocalWeather reports the precipitation type at pos (spec.md §4.8).
func (w *World) LocalWeather(pos BlockPos, biome Biome) Precipitation {
	if w.weather == WeatherClear {
		return PrecipitationClear
	}
	col := w.GetChunk(pos.ChunkPos())
	if col == nil {
		return PrecipitationClear
	}
	if pos.Y < col.heightAt(localX(pos), localZ(pos)) {
		return PrecipitationClear
	}
	if !biome.Rains {
		return PrecipitationClear
	}
	if biome.Cold {
		return PrecipitationSnow
	}
	return PrecipitationRain
}
