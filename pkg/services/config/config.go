// Package config loads application configuration via viper: defaults
// first, optional config file on top, ATLAS_* environment variables
// last.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Seeds struct {
	Nodes     string `mapstructure:"nodes"`
	Workloads string `mapstructure:"workloads"`
}

type Planner struct {
	MaxCandidates int `mapstructure:"max_candidates"`
}

type Config struct {
	Server  Server  `mapstructure:"server"`
	Seeds   Seeds   `mapstructure:"seeds"`
	Planner Planner `mapstructure:"planner"`
}

// Load reads configuration. An empty path skips the file and uses
// defaults plus environment overrides only.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("seeds.nodes", "seeds/nodes.yaml")
	v.SetDefault("seeds.workloads", "seeds/workloads.yaml")
	v.SetDefault("planner.max_candidates", 10000)

	v.SetEnvPrefix("ATLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
