package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilConfig is returned when Load receives a nil destination.
	ErrNilConfig = errors.New("config: nil destination")
	// ErrParseFailed wraps environment parsing failures.
	ErrParseFailed = errors.New("config: parse failed")
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> parsed value
)

// Load parses environment variables into cfg using its env struct tags.
// Each configuration type is parsed at most once per process; subsequent
// calls for the same type receive the cached value, so two loads of the same
// type always observe identical configuration. A .env file in the working
// directory, when present, is loaded into the environment before the first
// parse.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		// Missing .env files are fine; explicit environment wins anyway.
		_ = godotenv.Load()
	})

	t := reflect.TypeOf(*cfg)
	if v, ok := cache.Load(t); ok {
		*cfg = v.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	v, _ := cache.LoadOrStore(t, *cfg)
	*cfg = v.(T)
	return nil
}

// MustLoad is Load that panics on failure, for use during startup wiring
// where a missing required variable should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
