package config

import (
	"os"
	"strconv"

	"wheel_backend/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort       string
	StorageDriver string // "file" or "postgres"
	DataDir       string
	DatabaseURL   string
	JWTSecret     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	APIRateLimit          int
	APIRateWindowSeconds  int
	AuthRateLimit         int
	AuthRateWindowSeconds int
	SpinRateLimit         int
	SpinRateWindowSeconds int

	LogLevel string
	LogJSON  bool
}

// Load reads configuration from the environment, optionally seeded
// from a .env file. Missing required values are fatal.
func Load() *Config {
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "file"
	}
	if driver != "file" && driver != "postgres" {
		logger.Fatal("STORAGE_DRIVER must be file or postgres", "driver", driver)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if driver == "postgres" && dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	return &Config{
		AppPort:       port,
		StorageDriver: driver,
		DataDir:       dataDir,
		DatabaseURL:   dbURL,
		JWTSecret:     jwtSecret,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		APIRateLimit:          envInt("API_RATE_LIMIT", 60),
		APIRateWindowSeconds:  envInt("API_RATE_WINDOW_SECONDS", 60),
		AuthRateLimit:         envInt("AUTH_RATE_LIMIT", 5),
		AuthRateWindowSeconds: envInt("AUTH_RATE_WINDOW_SECONDS", 60),
		SpinRateLimit:         envInt("SPIN_RATE_LIMIT", 10),
		SpinRateWindowSeconds: envInt("SPIN_RATE_WINDOW_SECONDS", 60),

		LogLevel: os.Getenv("LOG_LEVEL"),
		LogJSON:  os.Getenv("LOG_JSON") == "true",
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
