package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	HistoryDriverRedis  = "redis"
	HistoryDriverSQLite = "sqlite"
	HistoryDriverRemote = "remote"
)

var ErrInvalidHistoryLimit = errors.New("history limit must be at least 1")

type Config struct {
	LogLevel    string      `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort    string      `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort  string      `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis       Redis       `yaml:"redis"`
	Leaderboard Leaderboard `yaml:"leaderboard"`
	History     History     `yaml:"history"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Leaderboard struct {
	Key string `yaml:"key" env:"LEADERBOARD_KEY" env-default:"leaderboard"`
	// WinsOnly stops counting a loss for the loser of a won game.
	WinsOnly bool `yaml:"wins-only" env:"LEADERBOARD_WINS_ONLY"`
}

type History struct {
	Driver     string        `yaml:"driver" env:"HISTORY_DRIVER" env-default:"redis"`
	Limit      int           `yaml:"limit" env:"HISTORY_LIMIT" env-default:"10"`
	SQLitePath string        `yaml:"sqlite-path" env:"HISTORY_SQLITE_PATH" env-default:"history.db"`
	RemoteURL  string        `yaml:"remote-url" env:"HISTORY_REMOTE_URL" env-default:"http://localhost:5000"`
	Timeout    time.Duration `yaml:"timeout" env:"HISTORY_TIMEOUT" env-default:"10s"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

// Validate - checks the values the storage layer can't work with.
func (that *Config) Validate() error {
	if that.History.Limit < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidHistoryLimit, that.History.Limit)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
