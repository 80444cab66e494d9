package config

import (
	"os"
	"strconv"

	apperr "github.com/pillzarena/pillz-arena/internal/errors"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// MaxRounds is how many rounds a battle lasts
	MaxRounds int

	// RandomSeed seeds the roller when non-zero; zero means time-seeded
	RandomSeed int64

	// RosterPath points at an optional YAML fighter roster
	RosterPath string
}

// RosterFighter is one fighter definition from the roster file
type RosterFighter struct {
	Name       string `yaml:"name"`
	Damage     int    `yaml:"damage"`
	Resistance int    `yaml:"resistance"`
}

// Roster is the parsed fighter roster
type Roster struct {
	Fighters []RosterFighter `yaml:"fighters"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		MaxRounds:  getEnvAsIntOrDefault("MAX_ROUNDS", 6),
		RandomSeed: int64(getEnvAsIntOrDefault("RANDOM_SEED", 0)),
		RosterPath: os.Getenv("ROSTER_PATH"),
	}

	if cfg.MaxRounds < 1 {
		return nil, apperr.Validationf("MAX_ROUNDS must be positive, got %d", cfg.MaxRounds)
	}

	return cfg, nil
}

// LoadRoster parses the YAML roster at the given path
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrapf(err, "reading roster %s", path)
	}

	var roster Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, apperr.Wrapf(err, "parsing roster %s", path)
	}

	if len(roster.Fighters) < 2 {
		return nil, apperr.Validationf("roster needs at least 2 fighters, got %d", len(roster.Fighters))
	}

	return &roster, nil
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
