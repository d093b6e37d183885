package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeBatch      = "batch"
	ModeTournament = "tournament"
	ModePlay       = "play"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode       string     `yaml:"mode" env:"MODE" env-default:"batch"`
	Seed       uint64     `yaml:"seed" env:"SEED" env-default:"1"`
	Batch      Batch      `yaml:"batch"`
	MonteCarlo MonteCarlo `yaml:"monte-carlo"`
	Tournament Tournament `yaml:"tournament"`
	Play       Play       `yaml:"play"`
	Redis      Redis      `yaml:"redis"`
}

type Batch struct {
	Games             int    `yaml:"games" env:"BATCH_GAMES" env-default:"100"`
	Workers           int    `yaml:"workers" env:"BATCH_WORKERS" env-default:"1"`
	StrategyA         string `yaml:"strategy-a" env:"BATCH_STRATEGY_A" env-default:"two-ply"`
	StrategyB         string `yaml:"strategy-b" env:"BATCH_STRATEGY_B" env-default:"monte-carlo"`
	IllegalMovePolicy string `yaml:"illegal-move-policy" env:"BATCH_ILLEGAL_MOVE_POLICY" env-default:"retry"`
	MaxIllegalMoves   int    `yaml:"max-illegal-moves" env:"BATCH_MAX_ILLEGAL_MOVES" env-default:"10"`
	ShowMoves         bool   `yaml:"show-moves" env:"BATCH_SHOW_MOVES"`
}

type MonteCarlo struct {
	Playouts int           `yaml:"playouts" env:"MONTE_CARLO_PLAYOUTS" env-default:"25"`
	Workers  int           `yaml:"workers" env:"MONTE_CARLO_WORKERS" env-default:"1"`
	Deadline time.Duration `yaml:"deadline" env:"MONTE_CARLO_DEADLINE" env-default:"0s"`
}

type Tournament struct {
	Strategies []string `yaml:"strategies" env:"TOURNAMENT_STRATEGIES" env-default:"random,one-ply,two-ply,monte-carlo"`
	Games      int      `yaml:"games" env:"TOURNAMENT_GAMES" env-default:"100"`
}

type Play struct {
	Opponent      string `yaml:"opponent" env:"PLAY_OPPONENT" env-default:"monte-carlo"`
	ComputerFirst bool   `yaml:"computer-first" env:"PLAY_COMPUTER_FIRST"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"REDIS_CHANNEL" env-default:"tictactoe:batches"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads the file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
