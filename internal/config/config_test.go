package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "lavanderia-panel", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "http://localhost:5095", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 8, cfg.UI.PageSize)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, 60, cfg.RateLimit.Duration)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://192.168.0.10:5000")
	t.Setenv("UI_PAGE_SIZE", "12")

	cfg := Load()

	assert.Equal(t, "http://192.168.0.10:5000", cfg.API.BaseURL)
	assert.Equal(t, 12, cfg.UI.PageSize)
}
