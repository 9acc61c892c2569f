package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string      `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string      `yaml:"http-port" env:"HTTP_PORT" env-default:"8000"`
	SQLiteStoragePath string      `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"tictactoe.db"`
	SessionSecret     string      `yaml:"session-secret" env:"SESSION_SECRET" env-default:"change-me-session-secret"`
	Redis             Redis       `yaml:"redis"`
	JWT               JWT         `yaml:"jwt"`
	GoogleOAuth       GoogleOAuth `yaml:"google-oauth"`
	RateLimit         RateLimit   `yaml:"rate-limit"`
	WebSocket         WebSocket   `yaml:"websocket"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type JWT struct {
	SecretKey string        `yaml:"secret-key" env:"SECRET_KEY" env-default:"your-secret-key-change-in-production"`
	TTL       time.Duration `yaml:"ttl" env:"ACCESS_TOKEN_TTL" env-default:"120m"`
}

type GoogleOAuth struct {
	ClientID     string   `yaml:"client-id" env:"GOOGLE_CLIENT_ID" env-default:""`
	ClientSecret string   `yaml:"client-secret" env:"GOOGLE_CLIENT_SECRET" env-default:""`
	RedirectURL  string   `yaml:"redirect-url" env:"GOOGLE_REDIRECT_URL" env-default:""`
	Scopes       []string `yaml:"scopes" env:"GOOGLE_SCOPES" env-default:"https://www.googleapis.com/auth/userinfo.email"`
}

type RateLimit struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"5"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"20"`
}

type WebSocket struct {
	WriteTimeout time.Duration `yaml:"write-timeout" env:"WS_WRITE_TIMEOUT" env-default:"10s"`
	PongTimeout  time.Duration `yaml:"pong-timeout" env:"WS_PONG_TIMEOUT" env-default:"60s"`
	SendBuffer   int           `yaml:"send-buffer" env:"WS_SEND_BUFFER" env-default:"16"`
}

// Load - reads config.yml when it exists, otherwise configuration comes from the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err = cleanenv.ReadConfig(path, config); err != nil {
				return nil, fmt.Errorf("unable to load config file: %w", err)
			}

			return config, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read config from env: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *GoogleOAuth) Enabled() bool {
	return that.ClientID != "" && that.ClientSecret != ""
}
