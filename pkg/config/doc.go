// Package config loads typed configuration from the environment.
//
// It wraps github.com/joho/godotenv, for optional or explicit .env files, and
// github.com/caarlos0/env/v11, which fills a struct from its env tags:
//
//	type OAuth struct {
//		ClientID     string `env:"OAUTH_CLIENT_ID"`
//		ClientSecret string `env:"OAUTH_CLIENT_SECRET"`
//		Timeout      time.Duration `env:"OAUTH_TIMEOUT" envDefault:"60s"`
//	}
//
//	cfg, err := config.Load[OAuth](config.WithOptionalEnvFile())
//
// .env files never override variables already present in the process. Tests
// pass WithVars to parse from a map and leave the process environment alone.
package config
