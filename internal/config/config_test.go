package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_TTL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	LoadConfig()

	assert.Equal(t, 24*time.Hour, JwtTTL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, CORSAllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DEADLINE_POLICY", "fixed")
	t.Setenv("DEADLINE_FIXED_HOURS", "96")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	LoadConfig()

	assert.Equal(t, "fixed", DeadlinePolicy)
	assert.Equal(t, 96, DeadlineFixedHours)
	assert.Equal(t, 2*time.Hour, JwtTTL)
	assert.True(t, MinioUseSSL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, CORSAllowedOrigins)
}

func TestGetEnvAsInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))
}
