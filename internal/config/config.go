package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Gesture GestureConfig
	Spring  SpringConfig
	UI      UIConfig
}

// GestureConfig holds the claim and commit thresholds. These are empirical
// UI-feel constants; the defaults are the shipped feel, not derived values.
type GestureConfig struct {
	DeadZone          float64 `mapstructure:"dead_zone"`
	AxisRatio         float64 `mapstructure:"axis_ratio"`
	EarlyDeadZone     float64 `mapstructure:"early_dead_zone"`
	EarlyAxisRatio    float64 `mapstructure:"early_axis_ratio"`
	VelocityThreshold float64 `mapstructure:"velocity_threshold"`
	OpenFraction      float64 `mapstructure:"open_fraction"`
	DistanceFraction  float64 `mapstructure:"distance_fraction"` // of one card slot
}

// SpringConfig holds the settle-animation tuning.
type SpringConfig struct {
	FPS       int
	Frequency float64
	Damping   float64
}

// UIConfig holds presentation settings.
type UIConfig struct {
	PanelWidth  int    `mapstructure:"panel_width"`
	CardSpacing int    `mapstructure:"card_spacing"`
	Profile     string `mapstructure:"profile"`
}

// Load reads configuration from file and env. Env var overrides use prefix GLIDE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("gesture.dead_zone", 8.0)
	v.SetDefault("gesture.axis_ratio", 1.5)
	v.SetDefault("gesture.early_dead_zone", 12.0)
	v.SetDefault("gesture.early_axis_ratio", 2.0)
	v.SetDefault("gesture.velocity_threshold", 0.3)
	v.SetDefault("gesture.open_fraction", 1.0/3.0)
	v.SetDefault("gesture.distance_fraction", 0.3)
	v.SetDefault("spring.fps", 60)
	v.SetDefault("spring.frequency", 7.0)
	v.SetDefault("spring.damping", 0.85)
	v.SetDefault("ui.panel_width", 16)
	v.SetDefault("ui.card_spacing", 22)
	v.SetDefault("ui.profile", "default")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GLIDE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "glide"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GLIDE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the demo's tuning overlay to persist a retuned feel.
func Save(cfg Config) error {
	path := os.Getenv("GLIDE_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "glide", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("gesture.dead_zone", cfg.Gesture.DeadZone)
	v.Set("gesture.axis_ratio", cfg.Gesture.AxisRatio)
	v.Set("gesture.early_dead_zone", cfg.Gesture.EarlyDeadZone)
	v.Set("gesture.early_axis_ratio", cfg.Gesture.EarlyAxisRatio)
	v.Set("gesture.velocity_threshold", cfg.Gesture.VelocityThreshold)
	v.Set("gesture.open_fraction", cfg.Gesture.OpenFraction)
	v.Set("gesture.distance_fraction", cfg.Gesture.DistanceFraction)
	v.Set("spring.fps", cfg.Spring.FPS)
	v.Set("spring.frequency", cfg.Spring.Frequency)
	v.Set("spring.damping", cfg.Spring.Damping)
	v.Set("ui.panel_width", cfg.UI.PanelWidth)
	v.Set("ui.card_spacing", cfg.UI.CardSpacing)
	v.Set("ui.profile", cfg.UI.Profile)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
