package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var ErrUnknownStorage = errors.New("unknown storage")

type Config struct {
	LogLevel    string `yaml:"log-level" env:"TENTEN_LOG_LEVEL" env-default:"error"`
	LogFile     string `yaml:"log-file" env:"TENTEN_LOG_FILE"`
	Storage     string `yaml:"storage" env:"TENTEN_STORAGE" env-default:"memory"`
	Redis       Redis  `yaml:"redis"`
	NoClear     bool   `yaml:"no-clear" env:"TENTEN_NO_CLEAR"`
	NoColor     bool   `yaml:"no-color" env:"TENTEN_NO_COLOR"`
}

type Redis struct {
	Host string `yaml:"host" env:"TENTEN_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TENTEN_REDIS_PORT" env-default:"6379"`
}

// Load reads the yaml file at path when it exists and the environment otherwise.
// Environment variables override values from the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	switch that.Storage {
	case StorageMemory, StorageRedis:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, that.Storage)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
