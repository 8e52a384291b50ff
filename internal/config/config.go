package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DBPath      string
	AuthLatency time.Duration
	Verbose     bool
}

// Load reads config.{yaml,json} from the usual locations, falling back
// to defaults. Environment variables (VILIGANT_*) override file values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.viligant")

	v.SetDefault("DBPath", "")
	v.SetDefault("AuthLatency", 500*time.Millisecond)
	v.SetDefault("Verbose", false)

	v.SetEnvPrefix("VILIGANT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return &Config{
		DBPath:      v.GetString("DBPath"),
		AuthLatency: v.GetDuration("AuthLatency"),
		Verbose:     v.GetBool("Verbose"),
	}, nil
}
