package params

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Node struct {
	LogFile string
	Verbose bool
	// SeedDemo submits the six sample orders (feeder.DemoOrders) at startup.
	SeedDemo bool
}

type API struct {
	Addr           string
	AllowedOrigins []string
}

type Feeder struct {
	Enabled   bool
	Interval  time.Duration
	BatchSize int
	// BasePrice is the centre of the generated price band (±5%).
	BasePrice float64
}

type Config struct {
	Node   Node
	API    API
	Feeder Feeder
}

func Default() Config {
	return Config{
		Node: Node{
			LogFile:  "data/tradebook.log",
			SeedDemo: true,
		},
		API: API{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Feeder: Feeder{
			Enabled:   false,
			Interval:  500 * time.Millisecond,
			BatchSize: 2,
			BasePrice: 50.0,
		},
	}
}

// LoadFromEnv loads configuration from .env file (if exists) and environment variables
// Priority: ENV > .env file > defaults
func LoadFromEnv(envPath string) Config {
	cfg := Default()

	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	cfg.Node.LogFile = getEnv("LOG_FILE", cfg.Node.LogFile)
	cfg.Node.Verbose = getBool("VERBOSE", cfg.Node.Verbose)
	cfg.Node.SeedDemo = getBool("SEED_DEMO", cfg.Node.SeedDemo)

	cfg.API.Addr = getEnv("API_ADDR", cfg.API.Addr)
	if origins := os.Getenv("API_ALLOWED_ORIGINS"); origins != "" {
		cfg.API.AllowedOrigins = splitList(origins)
	}

	cfg.Feeder.Enabled = getBool("ENABLE_FEEDER", cfg.Feeder.Enabled)
	if v := os.Getenv("FEEDER_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.Feeder.Interval = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv("FEEDER_BATCH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Feeder.BatchSize = n
		}
	}
	if v := os.Getenv("FEEDER_BASE_PRICE"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil && p > 0 {
			cfg.Feeder.BasePrice = p
		}
	}

	return cfg
}

// getEnv returns environment variable value or default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true"
	}
	return defaultValue
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
