package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"ENV", "PORT", "ALLOWED_ORIGINS", "FRONTEND_URL", "REDIS_URI", "MEDIA_DIR",
		"CLOUDINARY_CLOUD_NAME", "CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET", "MAX_UPLOAD_MB",
		"RECENT_LIMIT", "LOG_LEVEL", "TRUST_PROXY"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, "", cfg.RedisURI)
	assert.Equal(t, "./media", cfg.MediaDir)
	assert.Equal(t, int64(50<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 10, cfg.RecentLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.UseCloudinary())
	assert.False(t, cfg.TrustProxy)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ENV", " Production ")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("MAX_UPLOAD_MB", "5")
	t.Setenv("RECENT_LIMIT", "-3")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "wave")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")
	t.Setenv("TRUST_PROXY", "true")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 10, cfg.RecentLimit, "non-positive values fall back to the default")
	assert.True(t, cfg.UseCloudinary())
	assert.True(t, cfg.TrustProxy)
}
