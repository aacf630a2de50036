package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Port              string `toml:"port"`
	AllowedOrigin     string `toml:"allowed_origin"`
	DatabaseURL       string `toml:"database_url"`
	RedisAddr         string `toml:"redis_addr"`
	RedisPassword     string `toml:"redis_password"`
	RedisDB           int    `toml:"redis_db"`
	AuthSecret        string `toml:"auth_secret"`
	TokenTTLMinutes   int    `toml:"token_ttl_minutes"`
	LoginDelayMillis  int    `toml:"login_delay_millis"`
	PaymentDelayMs    int    `toml:"payment_delay_millis"`
	NoticeTTLMillis   int    `toml:"notice_ttl_millis"`
	WhatsAppLink      string `toml:"whatsapp_link"`
	ClampCartToStock  bool   `toml:"clamp_cart_to_stock"`
}

// Load reads configuration from the environment, with an optional TOML file
// (CONFIG_FILE) providing the base values. Environment variables win.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.AllowedOrigin = getEnv("ALLOWED_ORIGIN", cfg.AllowedOrigin)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisDB = getEnvInt("REDIS_DB", cfg.RedisDB)
	cfg.AuthSecret = strings.TrimSpace(getEnv("AUTH_SECRET", cfg.AuthSecret))
	cfg.TokenTTLMinutes = getEnvInt("TOKEN_TTL_MINUTES", cfg.TokenTTLMinutes)
	cfg.LoginDelayMillis = getEnvInt("LOGIN_DELAY_MILLIS", cfg.LoginDelayMillis)
	cfg.PaymentDelayMs = getEnvInt("PAYMENT_DELAY_MILLIS", cfg.PaymentDelayMs)
	cfg.NoticeTTLMillis = getEnvInt("NOTICE_TTL_MILLIS", cfg.NoticeTTLMillis)
	cfg.WhatsAppLink = getEnv("WHATSAPP_LINK", cfg.WhatsAppLink)
	if val := os.Getenv("CLAMP_CART_TO_STOCK"); val != "" {
		cfg.ClampCartToStock = val == "1" || strings.EqualFold(val, "true")
	}

	if cfg.TokenTTLMinutes < 1 {
		cfg.TokenTTLMinutes = 1440
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		Port:             "8080",
		AllowedOrigin:    "http://127.0.0.1:3000",
		TokenTTLMinutes:  1440,
		LoginDelayMillis: 1000,
		PaymentDelayMs:   2000,
		NoticeTTLMillis:  3000,
		WhatsAppLink:     "https://wa.me/919876543210",
	}
}

func (c Config) Address() string {
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}
