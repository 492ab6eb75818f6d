package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/AnshRaj112/wave-backend/internal/models"
)

type Config struct {
	Port                string
	Environment         string   // ENV: production, development, etc.
	AllowedOrigins      []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL
	RedisURI            string   // empty disables the shared rate limiter
	MediaDir            string
	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string
	MaxUploadBytes      int64
	RecentLimit         int
	LogLevel            string
	TrustProxy          bool // read client IP from X-Forwarded-For
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{getEnv("FRONTEND_URL", "http://localhost:3000")}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		Environment:         env,
		AllowedOrigins:      allowedOrigins,
		RedisURI:            getEnv("REDIS_URI", ""),
		MediaDir:            getEnv("MEDIA_DIR", "./media"),
		CloudinaryName:      getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "wave"),
		MaxUploadBytes:      int64(getEnvInt("MAX_UPLOAD_MB", 50)) << 20,
		RecentLimit:         getEnvInt("RECENT_LIMIT", models.DefaultRecentLimit),
		LogLevel:            strings.ToLower(getEnv("LOG_LEVEL", "info")),
		TrustProxy:          getEnvBool("TRUST_PROXY", false),
	}
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UseCloudinary reports whether all Cloudinary credentials are present.
func (c *Config) UseCloudinary() bool {
	return c.CloudinaryName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt falls back to defaultValue for unset, malformed or non-positive values.
func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return defaultValue
	}
	return b
}
