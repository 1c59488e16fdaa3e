// Package config は環境変数からアプリケーション設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultPort          = "8080"
	defaultSessionSecret = "secret"
	defaultSessionTTL    = 24 * time.Hour
	defaultCookieName    = "todos_session"
	defaultAllowedOrigin = "http://localhost:3000"
)

var ErrMissingSecret = errors.New("SESSION_SECRET must be set in release mode")

// Config はサーバーの設定です。
type Config struct {
	Port           string
	GinMode        string
	SessionSecret  string
	SessionTTL     time.Duration
	CookieName     string
	CookieSecure   bool
	AllowedOrigins []string
}

// Load は環境変数から設定を構築します。.env の読み込みは main.go で行います。
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", defaultPort),
		GinMode:        getEnv("GIN_MODE", gin.DebugMode),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		SessionTTL:     defaultSessionTTL,
		CookieName:     getEnv("SESSION_COOKIE_NAME", defaultCookieName),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", defaultAllowedOrigin)),
	}

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q", cfg.GinMode)
	}

	if len(cfg.AllowedOrigins) == 0 {
		return nil, errors.New("ALLOWED_ORIGINS must list at least one origin")
	}

	if cfg.SessionSecret == "" {
		if cfg.GinMode == gin.ReleaseMode {
			return nil, ErrMissingSecret
		}
		cfg.SessionSecret = defaultSessionSecret
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("invalid SESSION_TTL: must be positive, got %s", ttl)
		}
		cfg.SessionTTL = ttl
	}

	if v := os.Getenv("SESSION_COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_COOKIE_SECURE: %w", err)
		}
		cfg.CookieSecure = secure
	}

	return cfg, nil
}

// Addr は gin.Engine.Run に渡すアドレスを返します。
func (c *Config) Addr() string {
	return ":" + c.Port
}

// TokenTTL はセッショントークンとCookieの有効期間です。
// 有効期間の半分で再発行されるため、最後のリクエストから少なくとも SessionTTL は有効なままです。
// セッションの期限はリポジトリ側のアイドル時間で決まります。
func (c *Config) TokenTTL() time.Duration {
	return 2 * c.SessionTTL
}

// PurgeInterval は期限切れセッションを掃除する間隔です。
func (c *Config) PurgeInterval() time.Duration {
	if c.SessionTTL < 10*time.Minute {
		return c.SessionTTL
	}
	return 10 * time.Minute
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
