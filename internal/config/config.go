package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	AppPort       string
	AppEnv        string
	JWTSecret     string
	CORSOrigin    string
	PaymentAPIKey string
	SMTPHost      string
	SMTPUser      string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        os.Getenv("DB_PORT"),
		AppPort:       os.Getenv("APP_PORT"),
		AppEnv:        os.Getenv("APP_ENV"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CORSOrigin:    os.Getenv("CORS_ORIGIN"),
		PaymentAPIKey: os.Getenv("PAYMENT_APIKEY"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPUser:      os.Getenv("SMTP_USER"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

// PaymentConfigured reports whether a payment provider key is present.
func (c *Config) PaymentConfigured() bool {
	return c.PaymentAPIKey != ""
}

// EmailConfigured reports whether outbound mail settings are present.
func (c *Config) EmailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != ""
}
