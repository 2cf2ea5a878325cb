package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds process-wide settings. Precedence: defaults, then the YAML
// file named by CONFIG_FILE, then environment variables.
type Config struct {
	GoogleAPIKey   string        `yaml:"google_api_key"`
	Port           string        `yaml:"port"`
	DatabaseURL    string        `yaml:"database_url"`
	RedisURL       string        `yaml:"redis_url"`
	HotelRadiusM   int           `yaml:"hotel_radius_m"`
	LookupCacheTTL time.Duration `yaml:"lookup_cache_ttl"`
	ProviderRPS    float64       `yaml:"provider_rps"`
	RoutePause     time.Duration `yaml:"route_pause"`
	TravelMode     string        `yaml:"travel_mode"`
	// AllowedOrigins are extra browser origins allowed to open WebSockets.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func Defaults() Config {
	return Config{
		Port:           "8080",
		HotelRadiusM:   7000,
		LookupCacheTTL: 24 * time.Hour,
		ProviderRPS:    10,
		RoutePause:     200 * time.Millisecond,
		TravelMode:     "driving",
	}
}

// Load reads .env (if present), the optional YAML file and the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := Defaults()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Get returns the environment value for key or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load config: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("load config: parse %q: %w", path, err)
	}

	return nil
}

func (c *Config) mergeEnv() error {
	c.GoogleAPIKey = Get("GOOGLE_API_KEY", c.GoogleAPIKey)
	c.Port = Get("PORT", c.Port)
	c.DatabaseURL = Get("DATABASE_URL", c.DatabaseURL)
	c.RedisURL = Get("REDIS_URL", c.RedisURL)
	c.TravelMode = Get("TRAVEL_MODE", c.TravelMode)

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.AllowedOrigins = append(c.AllowedOrigins, o)
			}
		}
	}

	if v := os.Getenv("HOTEL_RADIUS_M"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("load config: HOTEL_RADIUS_M: %w", err)
		}
		c.HotelRadiusM = n
	}

	if v := os.Getenv("PROVIDER_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("load config: PROVIDER_RPS: %w", err)
		}
		c.ProviderRPS = f
	}

	for key, dst := range map[string]*time.Duration{
		"LOOKUP_CACHE_TTL": &c.LookupCacheTTL,
		"ROUTE_PAUSE":      &c.RoutePause,
	} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("load config: %s: %w", key, err)
		}
		*dst = d
	}

	return nil
}

func (c *Config) validate() error {
	if c.HotelRadiusM <= 0 {
		return fmt.Errorf("load config: hotel radius must be positive, got %d", c.HotelRadiusM)
	}
	if c.ProviderRPS <= 0 {
		return fmt.Errorf("load config: provider rps must be positive, got %v", c.ProviderRPS)
	}
	if c.RoutePause < 0 || c.LookupCacheTTL < 0 {
		return fmt.Errorf("load config: durations must not be negative")
	}
	return nil
}
