package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	BotToken   string
	AccessIDs  []int64
	DBPath     string
	Timezone   string
	Categories []string
	StaticDir  string
	LogLevel   string
}

var defaultCategories = []string{
	"Продукты", "Кафе", "Транспорт", "Связь", "Дом",
	"Здоровье", "Развлечения", "Подарки", "Прочее",
}

func Load() (*Config, error) {
	cfg := &Config{
		BotToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		DBPath:    getEnv("DB_PATH", "./db/expenses.db"),
		Timezone:  getEnv("TIMEZONE", "Europe/Moscow"),
		StaticDir: getEnv("STATIC_DIR", "./static"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	if raw := getEnv("CATEGORIES", ""); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Categories = append(cfg.Categories, name)
			}
		}
	} else {
		cfg.Categories = defaultCategories
	}

	if raw := getEnv("TELEGRAM_ACCESS_IDS", ""); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid TELEGRAM_ACCESS_IDS entry %q: %w", part, err)
			}
			cfg.AccessIDs = append(cfg.AccessIDs, id)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("category list cannot be empty")
	}
	return nil
}
