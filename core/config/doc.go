// Package config loads typed configuration from the environment. Struct
// fields declare their variables with env tags, Load parses them, and the
// result is cached per type so every caller in the process sees the same
// values.
//
//	type DatabaseConfig struct {
//		Host     string `env:"DB_HOST" envDefault:"localhost"`
//		Port     int    `env:"DB_PORT" envDefault:"5432"`
//		Password string `env:"DB_PASS,required"`
//	}
//
//	var db DatabaseConfig
//	if err := config.Load(&db); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad panics instead of returning an error, which reads better in
// main() wiring where a missing required variable should end the process.
//
// A .env file in the working directory is folded into the environment once,
// before the first parse; variables already set in the real environment win.
// Parsing failures wrap ErrParseFailed.
//
// The per-type cache means tests that mutate the environment must use a
// fresh struct type per scenario, and a type's first Load decides its values
// for the lifetime of the process.
package config
