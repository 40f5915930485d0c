package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры бота.
type Config struct {
	BotToken        string  `env:"BOT_TOKEN,required,notEmpty"`
	AdminIDs        []int64 `env:"ADMIN_IDS,required,notEmpty" envSeparator:","`
	RequiredChannel string  `env:"REQUIRED_CHANNEL,required,notEmpty"`

	SpreadsheetID    string `env:"SPREADSHEET_ID"`
	SheetName        string `env:"SHEET_NAME" envDefault:"Roster"`
	SheetCredentials string `env:"SHEET_CREDENTIALS" envDefault:"credentials.json"`

	// Если задан, ростер хранится в Postgres вместо Google Sheets.
	PostgresDSN string `env:"POSTGRES_DSN"`

	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	InstructionsTTL time.Duration `env:"INSTRUCTIONS_TTL" envDefault:"5s"`
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.PostgresDSN == "" && cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("no roster backend configured: set SPREADSHEET_ID or POSTGRES_DSN")
	}
	if len(cfg.AdminIDs) == 0 {
		return nil, fmt.Errorf("ADMIN_IDS must contain at least one id")
	}

	return &cfg, nil
}
