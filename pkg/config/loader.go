package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings holds the settings read from VALIDATE_* environment variables.
type Settings struct {
	Selector      string `env:"VALIDATE_SELECTOR" envDefault:"[data-validate]"`
	FieldClass    string `env:"VALIDATE_FIELD_CLASS" envDefault:"error"`
	ErrorClass    string `env:"VALIDATE_ERROR_CLASS" envDefault:"error-message"`
	MessagesFile  string `env:"VALIDATE_MESSAGES_FILE"`
	DisableSubmit bool   `env:"VALIDATE_DISABLE_SUBMIT" envDefault:"false"`

	PatternCacheSize int           `env:"VALIDATE_PATTERN_CACHE_SIZE" envDefault:"256"`
	PatternTimeout   time.Duration `env:"VALIDATE_PATTERN_TIMEOUT" envDefault:"100ms"`

	LogLevel  string `env:"VALIDATE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"VALIDATE_LOG_FORMAT" envDefault:"text"`
}

// LoadEnv loads the given .env files into the process environment. Variables
// that are already set, including ones set by an earlier file, win. With no
// paths it loads ./.env when present.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		// the default file is optional
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v based on its env tags. Every call
// reads the environment again.
//
// Example:
//
//	var cfg config.Settings
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// Default returns the settings used when the environment is empty.
func Default() Settings {
	var s Settings
	// defaults only; an empty environment cannot fail to parse
	_ = env.ParseWithOptions(&s, env.Options{Environment: map[string]string{}})
	return s
}
