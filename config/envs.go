package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string  // Host IP for the server
	RESTPort         int     // Port for the REST API
	GinMode          string  // Mode for the Gin framework (e.g., release, debug, test)
	LogLevel         string  // Minimum log level (debug, info, warn, error)
	DBHost           string  // Hostname or IP address for the database
	DBPort           int     // Port number for the database
	DBUser           string  // Username for the database
	DBPassword       string  // Password for the database
	DBName           string  // Name of the database
	RedisAddr        string  // Address of the Redis server used for the diagram cache
	RedisPassword    string  // Password for the Redis server
	CacheTTLSeconds  int     // Lifetime of cached diagrams
	MaxMazeDimension int     // Largest accepted maze width or height
	DefaultBias      float64 // Probability of a coin flip landing true when a request gives none
	JWTSecret        string  // Secret key for JWT signing
	JWTIssuer        string  // Issuer claim for JWTs
}

// Load reads the application configuration from the environment.
// Variables from a .env file in the working directory are loaded first when present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return fromEnv(os.LookupEnv)
}

// fromEnv populates a Config using lookup to read variables.
func fromEnv(lookup func(string) (string, bool)) (Config, error) {
	e := &envReader{lookup: lookup}

	cfg := Config{
		HostIP:           e.get("HOST_IP"),
		RESTPort:         e.getInt("REST_PORT"),
		GinMode:          e.getWithDefault("GIN_MODE", "release"),
		LogLevel:         e.getWithDefault("LOG_LEVEL", "info"),
		DBHost:           e.get("DB_HOST"),
		DBPort:           e.getInt("DB_PORT"),
		DBUser:           e.get("DB_USER"),
		DBPassword:       e.get("DB_PASS"),
		DBName:           e.get("DB_NAME"),
		RedisAddr:        e.get("REDIS_ADDR"),
		RedisPassword:    e.getWithDefault("REDIS_PASSWORD", ""),
		CacheTTLSeconds:  e.getIntWithDefault("CACHE_TTL_SECONDS", 600),
		MaxMazeDimension: e.getIntWithDefault("MAX_MAZE_DIMENSION", 100),
		DefaultBias:      e.getFloatWithDefault("DEFAULT_BIAS", 0.5),
		JWTSecret:        e.get("JWT_SECRET"),
		JWTIssuer:        e.get("JWT_ISSUER"),
	}

	if e.err != nil {
		return Config{}, e.err
	}
	return cfg, nil
}

// envReader reads variables and remembers the first failure.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

// get retrieves the value of a required environment variable.
func (e *envReader) get(key string) string {
	value, exists := e.lookup(key)
	if !exists {
		e.fail(fmt.Errorf("environment variable %s is not set", key))
	}
	return value
}

// getInt retrieves the value of a required environment variable as an integer.
func (e *envReader) getInt(key string) int {
	valueStr := e.get(key)
	if valueStr == "" {
		return 0
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		e.fail(fmt.Errorf("environment variable %s must be an integer: %w", key, err))
	}
	return value
}

// getWithDefault retrieves the value of an environment variable or returns a default value if not set.
func (e *envReader) getWithDefault(key, defaultValue string) string {
	if value, exists := e.lookup(key); exists {
		return value
	}
	return defaultValue
}

func (e *envReader) getIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := e.lookup(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		e.fail(fmt.Errorf("environment variable %s must be an integer: %w", key, err))
	}
	return value
}

func (e *envReader) getFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := e.lookup(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		e.fail(fmt.Errorf("environment variable %s must be a number: %w", key, err))
	}
	return value
}

func (e *envReader) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}
