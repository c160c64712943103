package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env        string   `yaml:"env" env:"PLANNER_ENV" env-default:"prod" validate:"oneof=local dev prod"`
	LogPath    string   `yaml:"log_path" env:"PLANNER_LOG_PATH"`
	Locale     string   `yaml:"locale" env:"PLANNER_LOCALE" env-default:"en-US" validate:"required"`
	NoColor    bool     `yaml:"no_color" env:"PLANNER_NO_COLOR"`
	VenuesPath string   `yaml:"venues_path" env:"PLANNER_VENUES_PATH"`
	Planning   Planning `yaml:"planning"`
}

type Planning struct {
	DefaultFeesPercent float64 `yaml:"default_fees_percent" env:"PLANNER_DEFAULT_FEES_PERCENT" env-default:"0.10" validate:"gte=0"`
	PlaceholderArtist  string  `yaml:"placeholder_artist" env:"PLANNER_PLACEHOLDER_ARTIST" env-default:"Unknown Artist" validate:"required"`
}

// MustLoad reads the config file named by -config or CONFIG_PATH, falling
// back to environment variables only. A .env file is loaded first if present.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("cannot load .env file: %s", err)
	}

	cfg, err := Load(fetchConfigPath())
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

// Load reads configPath, or only the environment when configPath is empty.
func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("%s: config file does not exist: %w", op, err)
		}

		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

// fetchConfigPath prefers the -config flag over CONFIG_PATH.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
