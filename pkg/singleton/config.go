package singleton

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Config parses environment variables into a fresh T and caches the result
// per struct type, so each configuration type is loaded exactly once for the
// process lifetime. The default .env file is loaded on first use; a missing
// file is not an error.
//
//	type RedisConfig struct {
//	    URL     string        `env:"REDIS_URL,required"`
//	    Timeout time.Duration `env:"REDIS_TIMEOUT" envDefault:"5s"`
//	}
//
//	cfg, err := singleton.Config[RedisConfig]()
func Config[T any]() (T, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional; real environments set variables directly.
		_ = godotenv.Load()
	})

	return Instance("config:"+typeName[T](), func() (T, error) {
		var v T
		if err := env.Parse(&v); err != nil {
			var zero T
			return zero, errors.Join(ErrParsingConfig, err)
		}
		return v, nil
	})
}

// MustConfig works like Config but panics if parsing fails. For configuration
// required at startup.
func MustConfig[T any]() T {
	cfg, err := Config[T]()
	if err != nil {
		panic(fmt.Sprintf("singleton: failed to load required configuration: %v", err))
	}
	return cfg
}

func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.String()
}
