package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

type Config struct {
	LogLevel          string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort        string        `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	SessionStore      string        `yaml:"session-store" env:"SESSION_STORE" env-default:"redis"`
	SessionTTL        time.Duration `yaml:"session-ttl" env:"SESSION_TTL" env-default:"2h"`
	Redis             Redis         `yaml:"redis"`
	SQLiteStoragePath string        `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH"`
	Voice             Voice         `yaml:"voice"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Voice holds the settings of the voice provider bridge.
type Voice struct {
	ToolNamePrefix      string        `yaml:"tool-name-prefix" env:"VOICE_TOOL_NAME_PREFIX" env-default:"tic_tac_toe_move"`
	ProcessedCallsLimit int           `yaml:"processed-calls-limit" env:"VOICE_PROCESSED_CALLS_LIMIT" env-default:"1024"`
	MaxMessageBytes     int64         `yaml:"ws-max-message-bytes" env:"VOICE_WS_MAX_MESSAGE_BYTES" env-default:"65536"`
	PingInterval        time.Duration `yaml:"ws-ping-interval" env:"VOICE_WS_PING_INTERVAL" env-default:"20s"`
	WriteTimeout        time.Duration `yaml:"ws-write-timeout" env:"VOICE_WS_WRITE_TIMEOUT" env-default:"5s"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads config.yml, falling back to environment variables and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// LoadEnv - builds the config from environment variables and defaults only.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
