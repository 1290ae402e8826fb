package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	DatabaseURL    string
	GormLogLevel   string
	RedisURL       string
	ServerPort     string
	CartTTL        int
	CurrencySymbol string
	Timezone       string
	TopItemsLimit  int
	CORSOrigins    []string
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		AppEnv:         getEnv("APP_ENV", "production"),
		DatabaseURL:    getEnv("DATABASE_URL", "pos.db"),
		GormLogLevel:   getEnv("GORM_LOG_LEVEL", "warn"),
		RedisURL:       getEnv("REDIS_URL", ""),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		CartTTL:        getEnvAsInt("CART_TTL", 43200),
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "₱"),
		Timezone:       getEnv("TIMEZONE", "Asia/Manila"),
		TopItemsLimit:  getEnvAsInt("TOP_ITEMS_LIMIT", 8),
		CORSOrigins:    getEnvAsList("CORS_ORIGINS", []string{"*"}),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
