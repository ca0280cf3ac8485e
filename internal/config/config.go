package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
	CORS     CORSConfig
	Booking  BookingConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	// DSN starting with postgres:// selects the Postgres driver,
	// anything else is opened as SQLite.
	DSN      string
	SeedData bool
}

type RedisConfig struct {
	// Addr empty disables rate limiting.
	Addr string
	// Public write limit per window per client IP.
	RateLimit  int
	RateWindow time.Duration
}

type KafkaConfig struct {
	// Brokers empty disables event publishing.
	Brokers []string
}

type AuthConfig struct {
	AdminUsername string
	AdminPassword string
	// AdminPasswordHash, when set, takes precedence over AdminPassword
	// and is compared with bcrypt.
	AdminPasswordHash string
	JWTSecret         string
	TokenTTL          time.Duration
	QRSecret          string
}

type CORSConfig struct {
	AllowedOrigin string
}

type BookingConfig struct {
	MaxPlayers int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "5000"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:      getEnv("DATABASE_DSN", "file:gameopolis.db?cache=shared&_fk=1"),
			SeedData: getEnvBool("SEED_DATA", true),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", ""),
			RateLimit:  getEnvInt("RATE_LIMIT", 10),
			RateWindow: time.Duration(getEnvInt("RATE_WINDOW_SECONDS", 60)) * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers: splitNonEmpty(getEnv("KAFKA_ADDR", "")),
		},
		Auth: AuthConfig{
			AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword:     getEnv("ADMIN_PASSWORD", "gameopolis123"),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			JWTSecret:         getEnv("JWT_SECRET", ""),
			TokenTTL:          time.Duration(getEnvInt("TOKEN_TTL_HOURS", 168)) * time.Hour,
			QRSecret:          getEnv("QR_SECRET_KEY", ""),
		},
		CORS: CORSConfig{
			AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		},
		Booking: BookingConfig{
			MaxPlayers: getEnvInt("MAX_PLAYERS", 12),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
