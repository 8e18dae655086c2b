// Package prefs stores named "feel profiles": bundles of gesture thresholds
// and spring tuning a user can switch between without editing the main
// config. Profiles live in a toml file under the user config dir and are
// written atomically.
package prefs

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/jask/glide/internal/config"
)

const profilesFile = "profiles.toml"

// Profile is one feel bundle. Zero fields mean "keep the config value".
type Profile struct {
	DeadZone          float64 `toml:"dead_zone,omitempty"`
	AxisRatio         float64 `toml:"axis_ratio,omitempty"`
	VelocityThreshold float64 `toml:"velocity_threshold,omitempty"`
	OpenFraction      float64 `toml:"open_fraction,omitempty"`
	DistanceFraction  float64 `toml:"distance_fraction,omitempty"`
	Frequency         float64 `toml:"frequency,omitempty"`
	Damping           float64 `toml:"damping,omitempty"`
}

// builtins are always available; a profiles file may override or extend them.
func builtins() map[string]Profile {
	return map[string]Profile{
		"default": {},
		"crisp": {
			VelocityThreshold: 0.22,
			Frequency:         9.5,
			Damping:           0.95,
		},
		"floaty": {
			VelocityThreshold: 0.4,
			Frequency:         5.0,
			Damping:           0.75,
		},
	}
}

func profilesPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "glide")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, profilesFile), nil
}

type profilesDoc struct {
	Profiles map[string]Profile `toml:"profiles"`
}

// LoadProfiles returns the built-in profiles merged with the user's file,
// user entries winning.
func LoadProfiles() (map[string]Profile, error) {
	merged := builtins()
	path, err := profilesPath()
	if err != nil {
		return merged, err
	}
	var doc profilesDoc
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return merged, nil
		}
		return merged, err
	}
	for name, p := range doc.Profiles {
		merged[name] = p
	}
	return merged, nil
}

// SaveProfiles writes the user's profiles atomically (tmp then rename).
// Built-ins that were not modified do not need saving, but saving them is
// harmless.
func SaveProfiles(profiles map[string]Profile) error {
	path, err := profilesPath()
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(profilesDoc{Profiles: profiles}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Names lists available profile names, sorted.
func Names(profiles map[string]Profile) []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Apply overlays a profile's non-zero fields onto cfg.
func Apply(cfg config.Config, p Profile) config.Config {
	if p.DeadZone > 0 {
		cfg.Gesture.DeadZone = p.DeadZone
	}
	if p.AxisRatio > 0 {
		cfg.Gesture.AxisRatio = p.AxisRatio
	}
	if p.VelocityThreshold > 0 {
		cfg.Gesture.VelocityThreshold = p.VelocityThreshold
	}
	if p.OpenFraction > 0 {
		cfg.Gesture.OpenFraction = p.OpenFraction
	}
	if p.DistanceFraction > 0 {
		cfg.Gesture.DistanceFraction = p.DistanceFraction
	}
	if p.Frequency > 0 {
		cfg.Spring.Frequency = p.Frequency
	}
	if p.Damping > 0 {
		cfg.Spring.Damping = p.Damping
	}
	return cfg
}
