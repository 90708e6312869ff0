// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// JWT 簽發與驗證存取令牌所需的設定
type JWT struct {
	Secret        string
	Issuer        string
	Audience      string
	ExpiryMinutes int
}

// Config 於程式啟動時一次載入，之後以指標傳入各層
type Config struct {
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	ListenAddr    string
	WorkerCount   int
	JWT           JWT
}

// ExpiryDuration returns the access-token lifetime as a time.Duration.
func (j JWT) ExpiryDuration() time.Duration {
	return time.Duration(j.ExpiryMinutes) * time.Minute
}

// Load 從環境變數建立 Config，缺少必要變數時回傳錯誤
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		JWT: JWT{
			Secret:   os.Getenv("JWT_SECRET"),
			Issuer:   getEnv("JWT_ISSUER", "MockMateApi"),
			Audience: getEnv("JWT_AUDIENCE", "MockMateClient"),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}

	redisDB, err := parseIntEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	cfg.RedisDB = redisDB

	expiry, err := parseIntEnv("JWT_EXPIRY_MINUTES", 60)
	if err != nil {
		return nil, err
	}
	if expiry <= 0 {
		return nil, fmt.Errorf("無效的 JWT_EXPIRY_MINUTES: %d", expiry)
	}
	cfg.JWT.ExpiryMinutes = expiry

	workers, err := parseIntEnv("WORKER_COUNT", 1)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		return nil, fmt.Errorf("無效的 WORKER_COUNT: %d", workers)
	}
	cfg.WorkerCount = workers

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return n, nil
}
