package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "8080")
		t.Setenv("APP_ENV", "test")
		t.Setenv("JWT_SECRET", "jwt_secret")
		t.Setenv("CORS_ORIGIN", "http://localhost:5173")
		t.Setenv("PAYMENT_APIKEY", "pay_secret")
		t.Setenv("SMTP_HOST", "smtp.example.com")
		t.Setenv("SMTP_USER", "mailer@example.com")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "jwt_secret", cfg.JWTSecret)
		assert.Equal(t, "http://localhost:5173", cfg.CORSOrigin)
	})
}

func TestConfiguredFlags(t *testing.T) {
	t.Run("Payment", func(t *testing.T) {
		cfg := &Config{}
		assert.False(t, cfg.PaymentConfigured())

		cfg.PaymentAPIKey = "key"
		assert.True(t, cfg.PaymentConfigured())
	})

	t.Run("Email", func(t *testing.T) {
		cfg := &Config{SMTPHost: "smtp.example.com"}
		assert.False(t, cfg.EmailConfigured())

		cfg.SMTPUser = "mailer@example.com"
		assert.True(t, cfg.EmailConfigured())
	})
}
