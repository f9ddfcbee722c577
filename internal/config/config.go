package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port    string `mapstructure:"PORT"`
	Env     string `mapstructure:"ENV"`
	AppName string `mapstructure:"APP_NAME"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// DBDSN vacío = storage en memoria.
	DBDSN string `mapstructure:"DB_DSN"`
	// RedisURL vacío = login sin throttle.
	RedisURL string `mapstructure:"REDIS_URL"`

	PostalBaseURL string        `mapstructure:"POSTAL_BASE_URL"`
	PostalTimeout time.Duration `mapstructure:"POSTAL_TIMEOUT"`

	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	LoginMaxAttempts   int           `mapstructure:"LOGIN_MAX_ATTEMPTS"`
	LoginLockoutWindow time.Duration `mapstructure:"LOGIN_LOCKOUT_WINDOW"`
	BcryptCost         int           `mapstructure:"BCRYPT_COST"`
}

var keys = []string{
	"PORT", "ENV", "APP_NAME",
	"LOG_LEVEL", "LOG_FORMAT",
	"DB_DSN", "REDIS_URL",
	"POSTAL_BASE_URL", "POSTAL_TIMEOUT",
	"CORS_ORIGINS",
	"LOGIN_MAX_ATTEMPTS", "LOGIN_LOCKOUT_WINDOW", "BCRYPT_COST",
}

// Load lee .env (opcional) y el entorno; el entorno gana.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("APP_NAME", "remedios-api")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("POSTAL_BASE_URL", "https://viacep.com.br")
	v.SetDefault("POSTAL_TIMEOUT", "5s")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOGIN_MAX_ATTEMPTS", 5)
	v.SetDefault("LOGIN_LOCKOUT_WINDOW", "15m")
	v.SetDefault("BCRYPT_COST", 10)

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// sin .env se sigue con entorno + defaults
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if len(cfg.CORSOrigins) == 1 && strings.Contains(cfg.CORSOrigins[0], ",") {
		cfg.CORSOrigins = strings.Split(cfg.CORSOrigins[0], ",")
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) Validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("PORT must be a valid TCP port, got %q", c.Port)
	}

	u, err := url.Parse(c.PostalBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("POSTAL_BASE_URL must be an absolute URL, got %q", c.PostalBaseURL)
	}
	if c.PostalTimeout <= 0 {
		return errors.New("POSTAL_TIMEOUT must be > 0")
	}

	if c.RedisURL != "" {
		if c.LoginMaxAttempts <= 0 {
			return errors.New("LOGIN_MAX_ATTEMPTS must be > 0 when REDIS_URL is set")
		}
		if c.LoginLockoutWindow <= 0 {
			return errors.New("LOGIN_LOCKOUT_WINDOW must be > 0 when REDIS_URL is set")
		}
	}
	return nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
