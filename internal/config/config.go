package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	UIConsole = "console"
	UITUI     = "tui"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	LogFile  string `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	UI       string `yaml:"ui" env:"TICTACTOE_UI" env-default:"console" validate:"oneof=console tui"`
	Bot      Bot    `yaml:"bot"`
}

type Bot struct {
	Difficulty string `yaml:"difficulty" env:"TICTACTOE_BOT_DIFFICULTY" env-default:"hard" validate:"oneof=easy medium hard"`
	// Seed feeds the random bots; 0 picks a random seed.
	Seed uint64 `yaml:"seed" env:"TICTACTOE_BOT_SEED" env-default:"0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the YAML file at path with environment overrides. A missing file is not an error:
// the configuration then comes from the environment and the defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
