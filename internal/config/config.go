package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JwtSecret          string
	Issuer             string
	ServerPort         string
	GinMode            string
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	DbSSLMode          string
	DbStatementTimeout int // milliseconds
	DbLockTimeout      int // milliseconds
	MinioEndpoint      string
	MinioAccessKey     string
	MinioSecretKey     string
	MinioBucket        string
	MinioUseSSL        bool
	MaxUploadBytes     int64
	AuditRetentionDays int
	CorsAllowedOrigins []string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "projecthub")
	ServerPort = getEnv("SERVER_PORT", "8080")
	GinMode = getEnv("GIN_MODE", "release")

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "projecthub")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")
	DbStatementTimeout = getEnvInt("DB_STATEMENT_TIMEOUT", 15000)
	DbLockTimeout = getEnvInt("DB_LOCK_TIMEOUT", 5000)

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "phase-files")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	MaxUploadBytes = int64(getEnvInt("MAX_UPLOAD_BYTES", 20<<20))
	AuditRetentionDays = getEnvInt("AUDIT_RETENTION_DAYS", 90)
	CorsAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:,http://127.0.0.1:"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		log.Printf("[Config] %s=%q is not a number, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
