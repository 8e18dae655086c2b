package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/glide/internal/config"
)

func TestLoadProfilesBuiltinsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	profiles, err := LoadProfiles()
	require.NoError(t, err)
	require.Contains(t, profiles, "default")
	require.Contains(t, profiles, "crisp")
	require.Contains(t, profiles, "floaty")
}

func TestSaveThenLoadMergesUserProfiles(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	custom := map[string]Profile{
		"snappy": {VelocityThreshold: 0.18, Frequency: 11, Damping: 1.0},
	}
	require.NoError(t, SaveProfiles(custom))

	profiles, err := LoadProfiles()
	require.NoError(t, err)
	require.Contains(t, profiles, "snappy")
	require.InDelta(t, 0.18, profiles["snappy"].VelocityThreshold, 1e-9)
	// built-ins survive alongside user entries
	require.Contains(t, profiles, "floaty")

	// no stray tmp file after the atomic write
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "glide")
	_, err = os.Stat(filepath.Join(dir, "profiles.toml.tmp"))
	require.True(t, os.IsNotExist(err))
}

func TestApplyOverlaysOnlyNonZeroFields(t *testing.T) {
	t.Parallel()

	cfg := config.Config{}
	cfg.Gesture.DeadZone = 8
	cfg.Gesture.VelocityThreshold = 0.3
	cfg.Spring.Frequency = 7
	cfg.Spring.Damping = 0.85

	got := Apply(cfg, Profile{VelocityThreshold: 0.22, Damping: 0.95})
	require.InDelta(t, 0.22, got.Gesture.VelocityThreshold, 1e-9)
	require.InDelta(t, 0.95, got.Spring.Damping, 1e-9)
	// untouched fields pass through
	require.InDelta(t, 8.0, got.Gesture.DeadZone, 1e-9)
	require.InDelta(t, 7.0, got.Spring.Frequency, 1e-9)
}

func TestNamesSorted(t *testing.T) {
	t.Parallel()

	names := Names(map[string]Profile{"floaty": {}, "crisp": {}, "default": {}})
	require.Equal(t, []string{"crisp", "default", "floaty"}, names)
}
