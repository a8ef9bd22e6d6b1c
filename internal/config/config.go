package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the process-wide configuration, read once at startup and passed
// explicitly into every component that needs it.
type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	JWTSecret string
	TokenTTL  time.Duration
	HTTPPort  string
	Debug     bool
}

func Load() *Config {
	return &Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "survey_be"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  getEnvSeconds("TOKEN_TTL", 12*time.Hour),
		HTTPPort:  getEnv("PORT", "8000"),
		Debug:     os.Getenv("DEBUG") != "",
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvSeconds(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	secs, err := strconv.Atoi(val)
	if err != nil || secs <= 0 {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}
