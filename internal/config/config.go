package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const envPrefix = "vocab"

// Config holds the settings of the vocab tool. Each field is read from
// the VOCAB_ prefixed environment variable of the same name.
type Config struct {
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	DevMode       bool   `envconfig:"DEV_MODE" default:"false"`
	DefaultFormat string `envconfig:"DEFAULT_FORMAT" default:"json"`
}

// Load reads an optional .env file and then the environment. A missing
// .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	// godotenv never overrides variables that are already set.
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse configuration")
	}
	return &cfg, nil
}
