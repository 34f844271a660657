// Package config loads notekit configuration from the environment.
package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file read by Load.
const DefaultEnvFile = ".env"

// Config holds environment configuration.
type Config struct {
	HFToken      string `env:"HF_TOKEN"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	DBPath       string `env:"NOTEKIT_DB"`
	ModelDir     string `env:"NOTEKIT_MODEL_DIR" envDefault:"models"`
}

// Load reads files into the process environment, overriding variables that
// are already set, then parses the environment. Missing files are ignored.
// With no files, DefaultEnvFile is read.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, file := range files {
		if err := godotenv.Overload(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	return Parse()
}

// Parse reads Config from the current environment.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
