package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Extensions    []string `validate:"min=1,dive,startswith=."`
	Variant       string   `validate:"oneof=conservative aggressive"`
	PhrasesFile   string   `validate:"omitempty,file"`
	DatabaseURL   string   `validate:"omitempty,url"`
	Neo4jURI      string   `validate:"omitempty,uri"`
	Neo4jUser     string
	Neo4jPassword string
	CoverageLimit int    `validate:"gte=1"`
	LogLevel      string `validate:"oneof=debug info warn error"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{
		Extensions:    getEnvList("SCRUB_EXTENSIONS", []string{".ts", ".tsx"}),
		Variant:       strings.ToLower(getEnv("SCRUB_VARIANT", "aggressive")),
		PhrasesFile:   getEnv("PHRASES_FILE", ""),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		Neo4jURI:      getEnv("NEO4J_URI", ""),
		Neo4jUser:     getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword: getEnv("NEO4J_PASSWORD", ""),
		CoverageLimit: getEnvInt("COVERAGE_LIMIT", 25),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration after flags have been applied.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// getEnvList splits a comma-separated variable, dropping empty items.
func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
