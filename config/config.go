package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type (
	// Config is the decoded configuration document. It is a passive
	// record: semantic constraints (reserved names, undefined
	// references) are enforced by BuildScope and the backup service.
	Config struct {
		Vars  []*Variable `mapstructure:"var"`
		Games []*Game     `mapstructure:"game"`
	}

	Variable struct {
		Name  string `mapstructure:"name"`
		Value string `mapstructure:"value"`
	}

	Game struct {
		Name    string          `mapstructure:"name"`
		Enabled *bool           `mapstructure:"enabled"`
		Saves   []*SaveLocation `mapstructure:"save"`
	}

	SaveLocation struct {
		Path  string   `mapstructure:"path"`
		Files []string `mapstructure:"files"`
	}
)

// IsEnabled reports whether the game should be acted upon.
// A game with no `enabled` key is enabled.
func (g *Game) IsEnabled() bool {
	return g.Enabled == nil || *g.Enabled
}

func Read(configFile string) (config *Config, v *viper.Viper, err error) {
	v = viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	err = v.ReadInConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("could not read config file %s: %w", configFile, err)
	}
	config = new(Config)
	err = v.Unmarshal(config)
	if err != nil {
		return nil, nil, fmt.Errorf("could not parse config file %s: %w", configFile, err)
	}
	return
}
