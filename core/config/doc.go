// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file from the working directory on first use, if
// one exists, and uses the caarlos0/env library for parsing environment
// variables into struct fields.
//
// Basic usage:
//
//	type Config struct {
//		Server   server.Config
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure (useful for startup)
//	config.MustLoad(&cfg)
//
// Variables already present in the environment take precedence over values
// from .env.
package config
