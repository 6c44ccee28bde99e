// Package tuning loads the handful of per-world tuning knobs a host might
// want to adjust without a rebuild — natural-spawn caps and the light
// engine's per-tick budget — from a TOML file. Grounded on the teacher's
// server/whitelist.go (toml-tagged struct, Unmarshal/Marshal via
// github.com/pelletier/go-toml, read-or-create-default file handling).
package tuning

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/beta173/corestone/server/world"
	"github.com/pelletier/go-toml"
)

// file is the on-disk TOML shape.
type file struct {
	LightBudget int `toml:"light_budget"`
	SpawnCaps   struct {
		Animal      int `toml:"animal"`
		WaterAnimal int `toml:"water_animal"`
		Mob         int `toml:"mob"`
		Ambient     int `toml:"ambient"`
	} `toml:"spawn_caps"`
}

func defaultFile() file {
	var f file
	f.LightBudget = world.DefaultLightBudget
	f.SpawnCaps.Animal = 10
	f.SpawnCaps.WaterAnimal = 5
	f.SpawnCaps.Mob = 70
	f.SpawnCaps.Ambient = 15
	return f
}

// Load reads tuning knobs from path, creating the file with defaults first
// if it does not yet exist, mirroring the teacher's read-or-create
// convention for its own TOML-backed files.
func Load(path string) (lightBudget int, spawnCaps map[world.EntityCategory]int, err error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return 0, nil, fmt.Errorf("tuning: read %s: %w", path, err)
		}
		f := defaultFile()
		if err := writeFile(path, f); err != nil {
			return 0, nil, err
		}
		return f.LightBudget, capsFromFile(f), nil
	}

	f := defaultFile()
	if len(contents) != 0 {
		if err := toml.Unmarshal(contents, &f); err != nil {
			return 0, nil, fmt.Errorf("tuning: decode %s: %w", path, err)
		}
	}
	return f.LightBudget, capsFromFile(f), nil
}

func capsFromFile(f file) map[world.EntityCategory]int {
	return map[world.EntityCategory]int{
		world.CategoryAnimal:      f.SpawnCaps.Animal,
		world.CategoryWaterAnimal: f.SpawnCaps.WaterAnimal,
		world.CategoryMob:         f.SpawnCaps.Mob,
		world.CategoryAmbient:     f.SpawnCaps.Ambient,
	}
}

func writeFile(path string, f file) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("tuning: create directory for %s: %w", path, err)
		}
	}
	encoded, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("tuning: encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("tuning: write %s: %w", path, err)
	}
	return nil
}
