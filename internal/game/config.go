package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed         = "DUNGEONCRAWL_SEED"
	EnvMapWidth     = "DUNGEONCRAWL_MAP_WIDTH"
	EnvMapHeight    = "DUNGEONCRAWL_MAP_HEIGHT"
	EnvMaxRooms     = "DUNGEONCRAWL_MAX_ROOMS"
	EnvMaxMonsters  = "DUNGEONCRAWL_MAX_MONSTERS"
	EnvMaxItems     = "DUNGEONCRAWL_MAX_ITEMS"
	EnvOTLPEndpoint = "DUNGEONCRAWL_OTLP_ENDPOINT"
	EnvOTLPHeaders  = "DUNGEONCRAWL_OTLP_HEADERS"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Dungeon world.Params

	// OTLPEndpoint is where traces are exported. Empty disables tracing.
	OTLPEndpoint string
	// OTLPHeaders are sent with every export, e.g. an API key.
	OTLPHeaders map[string]string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{Dungeon: world.DefaultParams()}
}

// LoadConfigFromEnv reads the configuration from the process environment.
// Callers wanting .env support load it with godotenv first.
func LoadConfigFromEnv() (Config, error) {
	return LoadConfig(os.LookupEnv)
}

// LoadConfig builds a Config from DefaultConfig, overriding each field whose
// variable lookup finds. Malformed values are errors, not silently ignored.
func LoadConfig(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	ints := []struct {
		name string
		dst  *int
		min  int
	}{
		{EnvMapWidth, &cfg.Dungeon.Width, cfg.Dungeon.RoomMaxSize + 2},
		{EnvMapHeight, &cfg.Dungeon.Height, cfg.Dungeon.RoomMaxSize + 2},
		{EnvMaxRooms, &cfg.Dungeon.MaxRooms, 1},
		{EnvMaxMonsters, &cfg.Dungeon.MaxMonstersPerRoom, 0},
		{EnvMaxItems, &cfg.Dungeon.MaxItemsPerRoom, 0},
	}
	for _, f := range ints {
		v, ok := lookup(f.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", f.name, err)
		}
		if n < f.min {
			return cfg, fmt.Errorf("%s: %d is below the minimum of %d", f.name, n, f.min)
		}
		*f.dst = n
	}

	if v, ok := lookup(EnvOTLPEndpoint); ok {
		cfg.OTLPEndpoint = v
	}
	if v, ok := lookup(EnvOTLPHeaders); ok && v != "" {
		headers, err := parseHeaders(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvOTLPHeaders, err)
		}
		cfg.OTLPHeaders = headers
	}

	return cfg, nil
}

// parseHeaders reads comma-separated key=value pairs, the format of
// OTEL_EXPORTER_OTLP_HEADERS. Header names may contain dashes.
func parseHeaders(s string) (map[string]string, error) {
	headers := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("malformed header %q, want key=value", pair)
		}
		headers[key] = strings.TrimSpace(value)
	}
	return headers, nil
}
