package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Catalog  *Catalog
	Payment  *Payment
	Kafka    *Kafka
	Approval *Approval
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Catalog struct {
	HostString string `env:"CATALOG_ADDRESS"`
}

type Payment struct {
	HostString string `env:"PAYMENT_ADDRESS"`
}

type Kafka struct {
	Brokers string `env:"KAFKA_BROKERS"`
	Topic   string `env:"KAFKA_NOTIFY_TOPIC" envDefault:"order-notifications"`
}

type Approval struct {
	AdminEmail   string `env:"ADMIN_EMAIL"`
	LinkBase     string `env:"APPROVAL_LINK_BASE"`
	ReminderSpec string `env:"APPROVAL_REMINDER_SPEC" envDefault:"@every 1h"`
}

func NewConfig() (*Config, error) {
	// Missing .env is fine, env vars and flags still apply.
	_ = godotenv.Load()

	var db Database
	var http HTTP
	var catalog Catalog
	var payment Payment
	var kafka Kafka
	var approval Approval
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&catalog.HostString, "c", "", "Catalog service address")
	flag.StringVar(&payment.HostString, "p", "", "Payment gateway address")
	flag.StringVar(&kafka.Brokers, "k", "", "Kafka brokers, comma separated")
	flag.StringVar(&approval.AdminEmail, "e", "", "Store admin email for direct approvals")
	flag.StringVar(&approval.LinkBase, "b", `http://localhost:3000`, "Base URL for approval links")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	for name, target := range map[string]any{
		"database": &db,
		"http":     &http,
		"catalog":  &catalog,
		"payment":  &payment,
		"kafka":    &kafka,
		"approval": &approval,
		"app":      &app,
	} {
		if err := env.Parse(target); err != nil {
			return nil, fmt.Errorf("error parsing %s config: %w", name, err)
		}
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Catalog:  &catalog,
		Payment:  &payment,
		Kafka:    &kafka,
		Approval: &approval,
		App:      &app,
	}

	return &config, nil
}
