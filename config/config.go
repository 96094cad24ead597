// config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DataConfig struct {
	Dir   string            `yaml:"dir" validate:"required"`
	Files map[string]string `yaml:"files" validate:"required,dive,keys,oneof=chicago 'new york' washington,endkeys,required"`
}

type DisplayConfig struct {
	Color       bool `yaml:"color"`
	ClearScreen bool `yaml:"clear_screen"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file"` // empty logs to stderr
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	Data    DataConfig    `yaml:"data"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
	Cache   CacheConfig   `yaml:"cache"`
}

var AppConfig Config

// Default returns the configuration used when no file is found: data files
// in the working directory, colour on, warnings logged to stderr.
func Default() Config {
	return Config{
		Data: DataConfig{
			Dir: ".",
			Files: map[string]string{
				"chicago":    "chicago.csv",
				"new york":   "new_york_city.csv",
				"washington": "washington.csv",
			},
		},
		Display: DisplayConfig{Color: true, ClearScreen: false},
		Log:     LogConfig{Level: "warn"},
		Cache:   CacheConfig{Enabled: true},
	}
}

var potentialPaths = []string{
	"config.yaml",
	"config/config.yaml",
}

// LoadConfig builds AppConfig from defaults, the YAML file at configPath (or
// the first standard location that exists when configPath is empty), a
// .env file if present, and BIKESHARE_* environment variables, then validates it.
func LoadConfig(configPath string) error {
	cfg := Default()

	if configPath == "" {
		for _, p := range potentialPaths {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
	}

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	// .env is optional
	_ = godotenv.Load()
	if err := applyEnv(&cfg); err != nil {
		return err
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	AppConfig = cfg
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("BIKESHARE_DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("BIKESHARE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("BIKESHARE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("BIKESHARE_NO_COLOR"); v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid BIKESHARE_NO_COLOR: %q", v)
		}
		cfg.Display.Color = !noColor
	}
	if v := os.Getenv("BIKESHARE_CACHE"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid BIKESHARE_CACHE: %q", v)
		}
		cfg.Cache.Enabled = enabled
	}
	return nil
}

// Validate checks struct constraints and that every supported city has a file.
func Validate(cfg Config) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for _, city := range []string{"chicago", "new york", "washington"} {
		if cfg.Data.Files[city] == "" {
			return fmt.Errorf("invalid config: no data file configured for %s", city)
		}
	}
	return nil
}

// CityFilePath resolves the trip log path for a city key.
func (c Config) CityFilePath(city string) string {
	return filepath.Join(c.Data.Dir, c.Data.Files[city])
}
