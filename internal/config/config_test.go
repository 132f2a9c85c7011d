package config_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hr-payroll-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	// Пустое значение считается незаданным и не перекрывается .env
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PAYROLL_TAX_RATE", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if !cfg.Payroll.TaxRate.Equal(decimal.RequireFromString("0.10")) {
		t.Errorf("expected default tax rate 0.10, got %s", cfg.Payroll.TaxRate)
	}
}

func TestLoadTaxRateOverride(t *testing.T) {
	t.Setenv("PAYROLL_TAX_RATE", "0.25")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Payroll.TaxRate.Equal(decimal.RequireFromString("0.25")) {
		t.Errorf("expected tax rate 0.25, got %s", cfg.Payroll.TaxRate)
	}
}

func TestLoadTaxRateInvalid(t *testing.T) {
	for _, value := range []string{"abc", "-0.1", "1.5"} {
		t.Setenv("PAYROLL_TAX_RATE", value)
		if _, err := config.Load(); err == nil {
			t.Errorf("expected error for tax rate %q", value)
		}
	}
}

func TestDatabaseDSN(t *testing.T) {
	db := config.DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "hr",
		Password: "secret",
		DBName:   "payroll",
		SSLMode:  "disable",
	}

	want := "host=db port=5433 user=hr password=secret dbname=payroll sslmode=disable"
	if got := db.DSN(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
