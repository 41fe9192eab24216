package config

import (
	"errors"
	"os"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	RedisAddr string
	JWTSecret string
	Env       string
}

// LoadConfig reads configuration from environment variables.
// JWT_SECRET and MONGO_URI have no defaults: a missing value is a startup
// error, not a silent fallback to an insecure placeholder.
func LoadConfig() (*Config, error) {
	config := &Config{
		Port:      getEnvOrDefault("PORT", "8080"),
		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   getEnvOrDefault("MONGO_DB", "habitquest"),
		RedisAddr: getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Env:       getEnvOrDefault("APP_ENV", "development"),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.MongoURI == "" {
		return errors.New("MONGO_URI is required")
	}
	if config.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

// IsProduction reports whether the server should apply production-only
// behaviour such as the Secure cookie flag.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
