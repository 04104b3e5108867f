// Package config loads typed configuration structs from environment
// variables, with one-time .env loading and per-type caching.
//
// Struct fields map to variables through caarlos0/env tags. The first Load
// call in a process reads a .env file if one exists (real environment
// variables win), and every configuration type is parsed exactly once: later
// loads of the same type return the cached value.
//
//	import "github.com/dmitrymomot/lingo/core/config"
//
//	type RedisConfig struct {
//		ConnectionURL string        `env:"REDIS_URL,required"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg RedisConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup:
//	config.MustLoad(&cfg)
//
// Caching is keyed by the struct type, so distinct configuration types load
// independently while repeated loads of one type stay consistent:
//
//	var a, b RedisConfig
//	config.MustLoad(&a)
//	config.MustLoad(&b) // cached; a == b even if the environment changed
package config
