package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

func requiredEnv() map[string]string {
	return map[string]string{
		"HOST_IP":    "127.0.0.1",
		"REST_PORT":  "8080",
		"DB_HOST":    "localhost",
		"DB_PORT":    "27017",
		"DB_USER":    "maze",
		"DB_PASS":    "secret",
		"DB_NAME":    "mazes",
		"REDIS_ADDR": "localhost:6379",
		"JWT_SECRET": "jwt-secret",
		"JWT_ISSUER": "vinom-maze",
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		cfg, err := fromEnv(lookupFrom(requiredEnv()))
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.RESTPort)
		assert.Equal(t, 27017, cfg.DBPort)
		assert.Equal(t, "release", cfg.GinMode)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 600, cfg.CacheTTLSeconds)
		assert.Equal(t, 100, cfg.MaxMazeDimension)
		assert.Equal(t, 0.5, cfg.DefaultBias)
	})

	t.Run("Reads overrides", func(t *testing.T) {
		env := requiredEnv()
		env["GIN_MODE"] = "debug"
		env["MAX_MAZE_DIMENSION"] = "40"
		env["DEFAULT_BIAS"] = "0.25"
		env["CACHE_TTL_SECONDS"] = "30"

		cfg, err := fromEnv(lookupFrom(env))
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.GinMode)
		assert.Equal(t, 40, cfg.MaxMazeDimension)
		assert.Equal(t, 0.25, cfg.DefaultBias)
		assert.Equal(t, 30, cfg.CacheTTLSeconds)
	})

	t.Run("Missing variable", func(t *testing.T) {
		env := requiredEnv()
		delete(env, "JWT_SECRET")

		_, err := fromEnv(lookupFrom(env))
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("Malformed integer", func(t *testing.T) {
		env := requiredEnv()
		env["REST_PORT"] = "eighty"

		_, err := fromEnv(lookupFrom(env))
		assert.ErrorContains(t, err, "REST_PORT must be an integer")
	})

	t.Run("Malformed number", func(t *testing.T) {
		env := requiredEnv()
		env["DEFAULT_BIAS"] = "half"

		_, err := fromEnv(lookupFrom(env))
		assert.ErrorContains(t, err, "DEFAULT_BIAS must be a number")
	})
}
