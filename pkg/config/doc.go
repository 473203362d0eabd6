// Package config loads application configuration from environment variables
// and .env files into tagged structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// .env files are read without touching the process environment, merged
// underneath it, and the result is parsed with env.ParseWithOptions.
//
//	type Config struct {
//	    Addr   string `env:"ADDR" envDefault:":8080"`
//	    Schema string `env:"SCHEMA"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FORMDEMO_")); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// WithEnvironment substitutes a fixed map for the process environment, which
// keeps tests independent of the machine they run on.
//
// Errors can be compared with `errors.Is`: ErrParsingConfig, ErrReadingEnvFile
// and ErrNilPointer.
package config
