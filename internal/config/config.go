package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the registry service.
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Logger    LoggerConfig
	RateLimit RateLimitConfig
	Kafka     KafkaConfig
	Positions []PositionSeed
}

type AppConfig struct {
	Name string
	Env  string
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type LoggerConfig struct {
	Level string
}

// RateLimitConfig is per client IP. RPS <= 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// KafkaConfig enables the event publisher when Brokers is non-empty.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// PositionSeed is a position created at startup.
type PositionSeed struct {
	ID        string
	Title     string
	MinSalary float64
	MaxSalary float64
}

// Load reads configuration from the environment, after loading a .env file
// when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	rps, err := getEnvAsFloat("RATE_LIMIT_RPS", 20)
	if err != nil {
		return nil, err
	}

	burst, err := getEnvAsInt("RATE_LIMIT_BURST", 40)
	if err != nil {
		return nil, err
	}

	readTimeout, err := getEnvAsSeconds("HTTP_READ_TIMEOUT_SECONDS", 5)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := getEnvAsSeconds("HTTP_WRITE_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	idleTimeout, err := getEnvAsSeconds("HTTP_IDLE_TIMEOUT_SECONDS", 60)
	if err != nil {
		return nil, err
	}

	seeds, err := parsePositionSeeds(os.Getenv("POSITIONS_SEED"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "employee-registry"),
			Env:  getEnv("APP_ENV", "development"),
		},
		HTTP: HTTPConfig{
			Port:         getEnv("PORT", "3000"),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		RateLimit: RateLimitConfig{
			RPS:   rps,
			Burst: burst,
		},
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   os.Getenv("KAFKA_TOPIC"),
		},
		Positions: seeds,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return i, nil
}

func getEnvAsSeconds(key string, fallback int) (time.Duration, error) {
	n, err := getEnvAsInt(key, fallback)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parsePositionSeeds reads "id|title|min|max" entries separated by ";".
func parsePositionSeeds(v string) ([]PositionSeed, error) {
	var seeds []PositionSeed
	for _, entry := range strings.Split(v, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, "|")
		if len(parts) != 4 {
			return nil, fmt.Errorf("invalid POSITIONS_SEED entry %q: want id|title|min|max", entry)
		}
		minSalary, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid POSITIONS_SEED min salary in %q: %w", entry, err)
		}
		maxSalary, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid POSITIONS_SEED max salary in %q: %w", entry, err)
		}
		seeds = append(seeds, PositionSeed{
			ID:        strings.TrimSpace(parts[0]),
			Title:     strings.TrimSpace(parts[1]),
			MinSalary: minSalary,
			MaxSalary: maxSalary,
		})
	}
	return seeds, nil
}
