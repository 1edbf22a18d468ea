package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type BackendConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

type SessionConfig struct {
	CookieName string `yaml:"cookie_name"`
	TTL        string `yaml:"ttl"`
	Secure     bool   `yaml:"secure"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type RateLimitConfig struct {
	PerSecond int `yaml:"per_second"`
	Burst     int `yaml:"burst"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Backend   BackendConfig   `yaml:"backend"`
	Session   SessionConfig   `yaml:"session"`
	Redis     RedisConfig     `yaml:"redis"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Inflight  struct {
		TTL string `yaml:"ttl"`
	} `yaml:"inflight"`
}

type Config struct {
	Port           string
	GinMode        string
	BackendBaseURL string
	BackendTimeout time.Duration

	SessionCookieName string
	SessionSecret     string
	SessionTTL        time.Duration
	SecureCookies     bool

	CSRFKey string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RateLimitPerSecond int
	RateLimitBurst     int
	InflightTTL        time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides. Secrets
// (session signing key, CSRF key) come from the environment only.
func Load() (*Config, error) {
	return LoadFrom("config/config.yml")
}

func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	backendTimeout, err := time.ParseDuration(configFile.Backend.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid backend timeout: %w", err)
	}

	sessionTTL, err := time.ParseDuration(configFile.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	inflightTTL, err := time.ParseDuration(configFile.Inflight.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid inflight TTL: %w", err)
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET must be set")
	}

	return &Config{
		Port:           env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		GinMode:        configFile.App.GinMode,
		BackendBaseURL: env("BACKEND_BASE_URL", configFile.Backend.BaseURL),
		BackendTimeout: backendTimeout,

		SessionCookieName: configFile.Session.CookieName,
		SessionSecret:     secret,
		SessionTTL:        sessionTTL,
		SecureCookies:     configFile.Session.Secure,

		CSRFKey: env("CSRF_KEY", secret),

		RedisAddr:     env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:       configFile.Redis.DB,

		RateLimitPerSecond: configFile.RateLimit.PerSecond,
		RateLimitBurst:     configFile.RateLimit.Burst,
		InflightTTL:        inflightTTL,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
