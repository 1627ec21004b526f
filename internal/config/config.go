// Package config resolves runtime configuration from .pagerank.yaml,
// PAGERANK_* environment variables, and CLI flags, in that order of
// precedence (lowest to highest).
package config

import "github.com/spf13/viper"

// Config holds all tunables for a rank computation and its presentation.
type Config struct {
	Damping            float64 `mapstructure:"damping"`
	Epsilon            float64 `mapstructure:"epsilon"`
	MaxIterations      int     `mapstructure:"max_iterations"`
	Workers            int     `mapstructure:"workers"`
	Labels             string  `mapstructure:"labels"`
	Category           string  `mapstructure:"category"`
	TopN               int     `mapstructure:"top_n"`
	NeighborThreshold  float64 `mapstructure:"neighbor_threshold"`
	HighlightThreshold float64 `mapstructure:"highlight_threshold"`
	Verbose            bool    `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("damping", 0.85)
	viper.SetDefault("epsilon", 0.000001)
	viper.SetDefault("max_iterations", 150)
	viper.SetDefault("workers", 1)
	viper.SetDefault("labels", "")
	viper.SetDefault("category", "")
	viper.SetDefault("top_n", 10)
	viper.SetDefault("neighbor_threshold", 0.0010)
	viper.SetDefault("highlight_threshold", 0.0015)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
