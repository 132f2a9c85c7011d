package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config содержит настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Payroll  PayrollConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port string
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// PayrollConfig - настройки расчёта зарплаты
type PayrollConfig struct {
	// TaxRate - ставка налога, применяемая к валовому доходу (например 0.10)
	TaxRate decimal.Decimal
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Load загружает конфигурацию из переменных окружения.
// Файл .env подхватывается автоматически, если присутствует.
func Load() (*Config, error) {
	_ = godotenv.Load()

	taxRate, err := decimal.NewFromString(getEnv("PAYROLL_TAX_RATE", "0.10"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_TAX_RATE: %w", err)
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("PAYROLL_TAX_RATE must be within [0, 1], got %s", taxRate)
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "hrpayroll"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Payroll: PayrollConfig{
			TaxRate: taxRate,
		},
	}, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
