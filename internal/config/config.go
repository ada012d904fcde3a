package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret          string
	Issuer             string
	TokenTTL           time.Duration
	IsProduction       bool
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	ServerPort         string
	MinioEndpoint      string
	MinioAccessKey     string
	MinioSecretKey     string
	MinioUseSSL        bool
	MinioBucket        string
	AuditRetentionDays int
	MaxImageSize       int64 = 5 << 20
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "litreview")
	TokenTTL = time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour
	IsProduction, _ = strconv.ParseBool(getEnv("IS_PRODUCTION", "false"))

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "litreview")
	ServerPort = getEnv("SERVER_PORT", "8080")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "ticket-images")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	AuditRetentionDays = getEnvInt("AUDIT_RETENTION_DAYS", 30)
	MaxImageSize = int64(getEnvInt("MAX_IMAGE_SIZE_MB", 5)) << 20
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
