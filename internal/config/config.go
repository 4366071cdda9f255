package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

const logLevelEnv = "GAMETRACKER_LOG_LEVEL"

type App struct {
	Debug bool `toml:"debug_mode"`
}

type Log struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

type Config struct {
	App App `toml:"app"`
	Log Log `toml:"log"`
}

func New(path string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	level := os.Getenv(logLevelEnv)
	if level != "" {
		cfg.Log.Level = level
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return cfg, nil
}
