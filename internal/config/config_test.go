package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.NotEmpty(t, cfg.Port)
	assert.NotEmpty(t, cfg.MongoURI)
	assert.NotEmpty(t, cfg.DatabaseName)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("JWT_EXPIRE", "1h")
	t.Setenv("SMTP_HOST", "smtp.example.edu")
	t.Setenv("SMTP_PORT", "2525")

	cfg := LoadConfig()
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "smtp.example.edu", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.True(t, cfg.SMTP.Configured())
}

func TestLoadConfigBadValuesFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRE", "sometime")
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 587, cfg.SMTP.Port)
}
