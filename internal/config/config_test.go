package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GLIDE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.InDelta(t, 8.0, cfg.Gesture.DeadZone, 1e-9)
	require.InDelta(t, 0.3, cfg.Gesture.VelocityThreshold, 1e-9)
	require.InDelta(t, 1.0/3.0, cfg.Gesture.OpenFraction, 1e-9)
	require.Equal(t, 60, cfg.Spring.FPS)
	require.Equal(t, 16, cfg.UI.PanelWidth)
	require.Equal(t, "default", cfg.UI.Profile)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := []byte("[gesture]\ndead_zone = 5.0\nvelocity_threshold = 0.45\n\n[ui]\nprofile = \"crisp\"\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))
	t.Setenv("GLIDE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.InDelta(t, 5.0, cfg.Gesture.DeadZone, 1e-9)
	require.InDelta(t, 0.45, cfg.Gesture.VelocityThreshold, 1e-9)
	require.Equal(t, "crisp", cfg.UI.Profile)
	// untouched keys keep their defaults
	require.InDelta(t, 1.5, cfg.Gesture.AxisRatio, 1e-9)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("GLIDE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("GLIDE_UI_PROFILE", "floaty")
	t.Setenv("GLIDE_SPRING_FPS", "120")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "floaty", cfg.UI.Profile)
	require.Equal(t, 120, cfg.Spring.FPS)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("GLIDE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Gesture.DeadZone = 6.5
	cfg.UI.CardSpacing = 30
	require.NoError(t, Save(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	require.InDelta(t, 6.5, loaded.Gesture.DeadZone, 1e-9)
	require.Equal(t, 30, loaded.UI.CardSpacing)
}
