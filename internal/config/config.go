package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Input   string
	Columns string
	Output  OutputConfig
}

type OutputConfig struct {
	Directory string
	Formats   []string // csv, xlsx, sqlite, json, html
}

var validFormats = map[string]bool{
	"csv":    true,
	"xlsx":   true,
	"sqlite": true,
	"json":   true,
	"html":   true,
}

func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Input:   os.Getenv("LABELFLAT_INPUT"),
		Columns: os.Getenv("COLUMNS_FILE"),
		Output: OutputConfig{
			Directory: getEnvOrDefault("OUTPUT_DIR", "out"),
			Formats:   SplitFormats(getEnvOrDefault("OUTPUT_FORMAT", "csv")),
		},
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("no input file configured (set LABELFLAT_INPUT or use --input)")
	}

	if len(c.Output.Formats) == 0 {
		return fmt.Errorf("no output formats configured")
	}

	for _, format := range c.Output.Formats {
		if !validFormats[format] {
			return fmt.Errorf("unknown output format %q (valid: csv, xlsx, sqlite, json, html)", format)
		}
	}

	return nil
}

// SplitFormats parses a comma-separated format list, lowercased and trimmed.
func SplitFormats(input string) []string {
	var formats []string
	for _, part := range strings.Split(input, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			formats = append(formats, part)
		}
	}
	return formats
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
