package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ServerPort   string
	GinMode      string
	IsProduction bool

	DatabaseURL string
	DbHost      string
	DbPort      string
	DbUser      string
	DbPassword  string
	DbName      string

	JwtSecret string
	JwtTTL    time.Duration
	Issuer    string

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	DeadlinePolicy     string
	DeadlineFixedHours int

	CORSAllowedOrigins []string
	AuthRatePerMinute  int
	MaxUploadMB        int64
	LogLevel           string
	DefaultLanguage    string

	SubmissionLockTTL = 30 * time.Second
)

// Roles allowed through the admin console gate.
var StaffRoles = []string{"admin", "super_admin"}

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	GinMode = getEnv("GIN_MODE", "release")
	IsProduction = getEnvAsBool("PRODUCTION", false)

	DatabaseURL = getEnv("DATABASE_URL", "")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "portal")

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	JwtTTL = getEnvAsDuration("JWT_TTL", 24*time.Hour)
	Issuer = getEnv("ISSUER", "portal")

	RedisAddress = getEnv("REDIS_ADDRESS", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB = getEnvAsInt("REDIS_DB", 0)

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "questionnaires")
	MinioUseSSL = getEnvAsBool("MINIO_USE_SSL", false)

	DeadlinePolicy = getEnv("DEADLINE_POLICY", "tiered")
	DeadlineFixedHours = getEnvAsInt("DEADLINE_FIXED_HOURS", 72)

	CORSAllowedOrigins = getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})
	AuthRatePerMinute = getEnvAsInt("AUTH_RATE_PER_MIN", 20)
	MaxUploadMB = int64(getEnvAsInt("MAX_UPLOAD_MB", 20))
	LogLevel = getEnv("LOG_LEVEL", "info")
	DefaultLanguage = getEnv("DEFAULT_LANGUAGE", "fr")

	if IsProduction && len(JwtSecret) < 32 {
		log.Fatal("JWT_SECRET must be at least 32 characters in production")
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsSlice(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
