// Package config loads the tour client's settings from the environment.
package config

import (
	"fmt"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	APIURL          string        `env:"TOUR_API_URL,default=http://localhost:8080" validate:"required,url"`
	MessageCapacity int           `env:"TOUR_MESSAGE_CAPACITY,default=100"          validate:"gte=1"`
	SearchDebounce  time.Duration `env:"TOUR_SEARCH_DEBOUNCE,default=300ms"         validate:"gte=0"`
	LogLevel        string        `env:"LOG_LEVEL,default=warn"                     validate:"oneof=debug info warn error"`
	// NoColorValue is NO_COLOR as set. Any non-empty value disables colour
	// (https://no-color.org); use NoColor.
	NoColorValue string `env:"NO_COLOR"`
}

// NoColor reports whether NO_COLOR is set to a non-empty value.
func (c Config) NoColor() bool { return c.NoColorValue != "" }

// Load reads Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
